package app

import (
	"github.com/guttosm/lysate-impact/config"
	"github.com/guttosm/lysate-impact/internal/domain/model"
	"github.com/guttosm/lysate-impact/internal/logger"
	"github.com/guttosm/lysate-impact/internal/parameters"
	"github.com/guttosm/lysate-impact/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Parameters model.ParameterSet
	Calculator service.ScenarioCalculator
}

// InitializeServices loads the parameter set and builds the scenario calculator.
func InitializeServices(cfg config.Config) (*ServiceComponents, error) {
	params, err := parameters.LoadOrDefault(cfg.Model.ParametersFile)
	if err != nil {
		return nil, err
	}

	opts := []service.Option{service.WithParameters(params)}
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	calculator, err := service.NewScenarioCalculatorService(opts...)
	if err != nil {
		return nil, err
	}

	logger.Logger().Info().
		Str("parameters_file", cfg.Model.ParametersFile).
		Int64("children_with_rrti", calculator.ChildrenWithRRTI()).
		Float64("baseline_total", calculator.BaselineTotal()).
		Int("cache_size", cfg.Cache.Size).
		Msg("Services initialized")

	return &ServiceComponents{
		Parameters: params,
		Calculator: calculator,
	}, nil
}

// Close releases the calculator's cache.
func (s *ServiceComponents) Close() {
	if s == nil || s.Calculator == nil {
		return
	}
	s.Calculator.Close()
}
