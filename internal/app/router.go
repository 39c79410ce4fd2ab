package app

import (
	"errors"

	"github.com/guttosm/lysate-impact/config"
	"github.com/guttosm/lysate-impact/internal/http"
	"github.com/guttosm/lysate-impact/internal/middleware"
	"github.com/guttosm/lysate-impact/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Limiter       *middleware.RateLimiter
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
// The caller must Close the returned components to stop the rate limiter.
func InitializeRouter(calculator service.ScenarioCalculator, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("calculator", http.HealthCheckFunc(func() error {
		if !(calculator.BaselineTotal() > 0) {
			return errors.New("baseline total is not positive")
		}
		return nil
	}))

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
		healthHandler.RegisterChecker("rate_limiter", http.HealthCheckFunc(func() error {
			if limiter.Stopped() {
				return errors.New("rate limiter stopped")
			}
			return nil
		}))
	}

	return &RouterComponents{
		Handler:       http.NewHandler(calculator),
		HealthHandler: healthHandler,
		Limiter:       limiter,
		Config: http.RouterConfig{
			RateLimiter:    limiter,
			RequestTimeout: cfg.Server.RequestTimeout,
			EnableAuth:     cfg.Auth.Enabled,
			APIKeys:        cfg.Auth.APIKeys(),
			CORSOrigins:    cfg.Server.CORSOrigins,
			SwaggerUser:    cfg.Server.SwaggerUser,
			SwaggerPass:    cfg.Server.SwaggerPass,
		},
	}
}

// Close stops the rate limiter's cleanup goroutine.
func (r *RouterComponents) Close() {
	if r == nil || r.Limiter == nil {
		return
	}
	r.Limiter.Stop()
}
