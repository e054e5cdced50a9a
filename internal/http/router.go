package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/salinity-service/internal/i18n"
	"github.com/guttosm/salinity-service/internal/metrics"
	"github.com/guttosm/salinity-service/internal/middleware"
	"github.com/guttosm/salinity-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	APIKeys        map[string]bool
	EnableAuth     bool
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	// LogSink receives request and audit entries; nil logs to stdout only.
	LogSink            middleware.LogSink
	AssumptionProfiles service.AssumptionProfilesService
	CalculationHistory service.CalculationHistoryService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
	}
}

// NewRouter creates and configures the Gin router for the salinity service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		middleware.Abort(c, http.StatusNotFound, i18n.ErrKeyNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		middleware.Abort(c, http.StatusMethodNotAllowed, i18n.ErrKeyMethodNotAllowed)
	})

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}

	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})),
		middleware.AccessLog(cfg.LogSink),
		middleware.ErrorHandler(),
	)
	if limiter != nil {
		router.Use(limiter.RateLimit())
	}

	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerSwagger(router, cfg.SwaggerUser, cfg.SwaggerPass)

	api := router.Group("/api")
	api.Use(middleware.Timeout(cfg.RequestTimeout))
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		// Each key also gets its own budget on top of the per-IP one.
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
		if limiter != nil {
			api.Use(limiter.ClientRateLimit())
		}
	}

	if handler != nil {
		NewSalinityRoutes(handler, cfg.AssumptionProfiles, cfg.CalculationHistory).RegisterRoutes(api)
	}
	return router
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Encoding", "Accept-Language", middleware.APIKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
}

// registerSwagger serves the API docs, behind basic auth when credentials
// are configured.
func registerSwagger(router *gin.Engine, user, pass string) {
	docs := ginSwagger.WrapHandler(swaggerFiles.Handler)
	if user == "" || pass == "" {
		router.GET("/swagger/*any", docs)
		return
	}
	router.Group("/swagger", gin.BasicAuth(gin.Accounts{user: pass})).GET("/*any", docs)
}
