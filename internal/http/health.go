package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/salinity-service/internal/circuitbreaker"
)

const healthCheckTimeout = 2 * time.Second

// Checker probes one backing dependency.
type Checker interface {
	HealthCheck(ctx context.Context) error
}

// CalculatorInfo describes how calculations are being served, so operators
// can confirm a deployment's solver tuning from /readyz.
type CalculatorInfo struct {
	ThermoStrategy  string  `json:"thermo_strategy"`
	MaxIter         int     `json:"max_iter"`
	Tolerance       float64 `json:"tolerance"`
	CacheCapacity   int     `json:"cache_capacity"`
	CacheTTLSeconds float64 `json:"cache_ttl_seconds"`
	StorageEnabled  bool    `json:"storage_enabled"`
}

// CircuitStatus is the readiness view of one storage circuit.
type CircuitStatus struct {
	State       string     `json:"state"`
	Failures    int        `json:"failures"`
	LastFailure *time.Time `json:"last_failure,omitempty"`
}

// ReadinessResponse is the /readyz body.
type ReadinessResponse struct {
	Status     string                   `json:"status" example:"ok"`
	Checks     map[string]string        `json:"checks"`
	Circuits   map[string]CircuitStatus `json:"circuits,omitempty"`
	Calculator *CalculatorInfo          `json:"calculator,omitempty"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checkers   map[string]Checker
	breakers   []*circuitbreaker.CircuitBreaker
	calculator *CalculatorInfo
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithChecker fails readiness while c reports an error.
func WithChecker(name string, c Checker) HealthOption {
	return func(h *HealthHandler) {
		h.checkers[name] = c
	}
}

// WithCircuitBreakers fails readiness while any of cbs is not closed.
func WithCircuitBreakers(cbs ...*circuitbreaker.CircuitBreaker) HealthOption {
	return func(h *HealthHandler) {
		h.breakers = append(h.breakers, cbs...)
	}
}

// WithCalculatorInfo adds the solver configuration to the readiness body.
func WithCalculatorInfo(info CalculatorInfo) HealthOption {
	return func(h *HealthHandler) {
		h.calculator = &info
	}
}

func NewHealthHandler(opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{checkers: make(map[string]Checker)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register adds /healthz and /readyz.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK while the process is serving requests.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Reports dependency checks, storage circuit states and the solver configuration. Answers 503 when a check fails or a storage circuit is not closed.
// @Tags        Health
// @Produce     json
// @Success     200 {object} ReadinessResponse "Service is ready"
// @Failure     503 {object} ReadinessResponse "Service is degraded"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	resp := ReadinessResponse{
		Status:     "ok",
		Checks:     make(map[string]string, len(h.checkers)+1),
		Calculator: h.calculator,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()
	for name, checker := range h.checkers {
		if err := checker.HealthCheck(ctx); err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			continue
		}
		resp.Checks[name] = "ok"
	}
	if len(resp.Checks) == 0 {
		resp.Checks["calculator"] = "ok"
	}

	if len(h.breakers) > 0 {
		resp.Circuits = make(map[string]CircuitStatus, len(h.breakers))
	}
	for _, cb := range h.breakers {
		s := cb.Snapshot()
		status := CircuitStatus{State: s.State.String(), Failures: s.Failures}
		if !s.LastFailure.IsZero() {
			last := s.LastFailure.UTC()
			status.LastFailure = &last
		}
		resp.Circuits[s.Name] = status
		if !s.Healthy() {
			resp.Status = "degraded"
		}
	}

	code := http.StatusOK
	if resp.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}
