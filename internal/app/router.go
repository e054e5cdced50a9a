package app

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/salinity-service/config"
	"github.com/guttosm/salinity-service/internal/http"
)

// NewEngine wires the HTTP handlers over the calculator. A nil storage
// yields a stateless engine: built-in assumptions, no history and request
// logs on stdout only.
func NewEngine(svc *ServiceComponents, storage *Storage, cfg config.Config) *gin.Engine {
	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
	}
	handlerOpts := []http.HandlerOption{http.WithAssumptionsCacheTTL(cfg.Cache.AssumptionsTTL)}
	healthOpts := []http.HealthOption{http.WithCalculatorInfo(calculatorInfo(svc, cfg, storage != nil))}

	if storage != nil {
		// Assigned field by field: a nil *LogShipper in the interface would
		// not compare equal to nil.
		routerCfg.LogSink = storage.Shipper
		routerCfg.AssumptionProfiles = storage.AssumptionProfiles
		routerCfg.CalculationHistory = storage.CalculationHistory
		handlerOpts = append(handlerOpts, http.WithHistory(storage.CalculationHistory))
		healthOpts = append(healthOpts,
			http.WithChecker("mongodb", storage.DB),
			http.WithCircuitBreakers(storage.Breakers...),
		)
	}

	handler := http.NewHandler(svc.Calculator, routerCfg.AssumptionProfiles, handlerOpts...)
	return http.NewRouter(handler, http.NewHealthHandler(healthOpts...), routerCfg)
}

func calculatorInfo(svc *ServiceComponents, cfg config.Config, storage bool) http.CalculatorInfo {
	return http.CalculatorInfo{
		ThermoStrategy:  svc.Provider.Name(),
		MaxIter:         cfg.Solver.MaxIter,
		Tolerance:       cfg.Solver.Tolerance,
		CacheCapacity:   cfg.Cache.Size,
		CacheTTLSeconds: cfg.Cache.TTL.Seconds(),
		StorageEnabled:  storage,
	}
}
