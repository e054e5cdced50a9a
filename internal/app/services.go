package app

import (
	"github.com/guttosm/salinity-service/config"
	"github.com/guttosm/salinity-service/internal/logger"
	"github.com/guttosm/salinity-service/internal/metrics"
	"github.com/guttosm/salinity-service/internal/service"
	"github.com/guttosm/salinity-service/internal/thermo"
)

// ServiceComponents holds the calculator and the provider it was built on.
type ServiceComponents struct {
	Calculator service.SalinityCalculator
	Provider   thermo.Provider
}

// InitializeServices builds the calculator. It fails only when the
// configured thermodynamic strategy is unknown.
func InitializeServices(cacheCfg config.CacheConfig, solverCfg config.SolverConfig) (*ServiceComponents, error) {
	provider, err := thermo.New(solverCfg.ThermoBackend)
	if err != nil {
		return nil, err
	}

	calculator := service.NewSalinityCalculatorService(
		service.WithProvider(provider),
		service.WithSolverDefaults(solverCfg.MaxIter, solverCfg.Tolerance),
		service.WithCache(cacheCfg.Size, cacheCfg.TTL),
	)
	metrics.SetThermoStrategy(provider.Name())

	l := logger.Component("calculator")
	l.Info().
		Str("thermo_strategy", provider.Name()).
		Int("solver_max_iter", solverCfg.MaxIter).
		Float64("solver_tolerance", solverCfg.Tolerance).
		Int("cache_size", cacheCfg.Size).
		Msg("Salinity calculator initialized")

	return &ServiceComponents{
		Calculator: calculator,
		Provider:   provider,
	}, nil
}
