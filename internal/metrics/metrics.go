// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "salinity"

var (
	// HTTPRequestDuration tracks request latency by route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
		[]string{"method", "route", "status_code"},
	)

	// HTTPRequestTotal counts requests by route and status.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	// RateLimitedTotal counts requests rejected by a rate limiter scope.
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		},
		[]string{"scope"},
	)

	// CalculationsTotal counts calculations by outcome.
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Total number of salinity calculations",
		},
		[]string{"status"},
	)

	// CalculationDuration tracks end-to-end calculation time.
	CalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Salinity calculation duration in seconds",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	// SolverIterations tracks fixed-point passes per solve.
	SolverIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "iterations",
			Help:      "Fixed-point iterations per salinity solve",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10, 15, 20, 30, 50, 100},
		},
	)

	// SolverNonConvergedTotal counts solves that hit the iteration cap.
	SolverNonConvergedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "nonconverged_total",
			Help:      "Solves that reached the iteration cap without converging",
		},
	)

	// DensityFallbackTotal counts density evaluations replaced by the fallback.
	DensityFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "thermo",
			Name:      "density_fallback_total",
			Help:      "Density evaluations that fell back to the default density",
		},
	)

	// ThermoStrategy is 1 for the active thermodynamic strategy.
	ThermoStrategy = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "thermo",
			Name:      "strategy_info",
			Help:      "Active thermodynamic strategy (1 for the strategy in use)",
		},
		[]string{"strategy"},
	)

	// CacheOperationsTotal counts summary cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "summary_cache",
			Name:      "operations_total",
			Help:      "Summary cache operations by result",
		},
		[]string{"operation", "result"},
	)

	// CacheSize is the number of cached summaries.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "summary_cache",
			Name:      "entries",
			Help:      "Cached calculation summaries",
		},
	)

	// CacheCapacity is the summary cache's entry limit.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "summary_cache",
			Name:      "capacity",
			Help:      "Summary cache capacity",
		},
	)

	// RequestLogsTotal counts request log entries by shipping outcome.
	RequestLogsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "request_logs",
			Name:      "entries_total",
			Help:      "Request log entries by outcome (stored, failed, dropped)",
		},
		[]string{"outcome"},
	)

	// CircuitBreakerState reports each breaker's state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware records latency and counts per matched route.
// Unmatched paths share one label so scanners cannot explode cardinality.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(c.Request.Method, route, status).Inc()
	}
}

// RecordSalinityCalculation records one calculation's duration and outcome.
func RecordSalinityCalculation(duration time.Duration, status string) {
	CalculationDuration.Observe(duration.Seconds())
	CalculationsTotal.WithLabelValues(status).Inc()
}

// RecordSolverRun records the iteration count and convergence of one solve.
func RecordSolverRun(iterations int, converged bool) {
	SolverIterations.Observe(float64(iterations))
	if !converged {
		SolverNonConvergedTotal.Inc()
	}
}

func RecordDensityFallback() {
	DensityFallbackTotal.Inc()
}

// SetThermoStrategy marks strategy as the one in use.
func SetThermoStrategy(strategy string) {
	ThermoStrategy.Reset()
	ThermoStrategy.WithLabelValues(strategy).Set(1)
}

func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics sets the summary cache gauges.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// RecordRateLimited counts one rejected request for scope ("ip" or "client").
func RecordRateLimited(scope string) {
	RateLimitedTotal.WithLabelValues(scope).Inc()
}

// RecordRequestLogs counts n request log entries with the given outcome.
func RecordRequestLogs(outcome string, n int) {
	RequestLogsTotal.WithLabelValues(outcome).Add(float64(n))
}

func RecordCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
