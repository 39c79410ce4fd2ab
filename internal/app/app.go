// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/lysate-impact/config"
	"github.com/guttosm/lysate-impact/internal/http"
)

// App is the wired HTTP application.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents
	Routes   *RouterComponents
}

// InitializeApp creates and wires all application dependencies for the HTTP server.
// The returned App must be closed once the server has stopped.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, err
	}

	routes := InitializeRouter(services.Calculator, cfg)

	return &App{
		Router:   http.NewRouter(routes.Handler, routes.HealthHandler, routes.Config),
		Services: services,
		Routes:   routes,
	}, nil
}

// Close stops the rate limiter and releases the calculator's cache.
func (a *App) Close() {
	if a == nil {
		return
	}
	a.Routes.Close()
	a.Services.Close()
}
