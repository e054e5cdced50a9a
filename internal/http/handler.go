package http

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/salinity-service/internal/domain/dto"
	"github.com/guttosm/salinity-service/internal/domain/model"
	"github.com/guttosm/salinity-service/internal/i18n"
	"github.com/guttosm/salinity-service/internal/logger"
	"github.com/guttosm/salinity-service/internal/metrics"
	"github.com/guttosm/salinity-service/internal/middleware"
	"github.com/guttosm/salinity-service/internal/service"
)

const (
	profileLookupTimeout = 2 * time.Second
	historyWriteTimeout  = 2 * time.Second
)

// assumptionsCache provides thread-safe caching of the base assumptions.
type assumptionsCache struct {
	value     atomic.Value // holds model.Assumptions
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newAssumptionsCache creates a new assumptions cache with the given TTL.
func newAssumptionsCache(ttl time.Duration) *assumptionsCache {
	c := &assumptionsCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached assumptions if still valid.
func (c *assumptionsCache) get() (model.Assumptions, bool) {
	if exp, ok := c.expiresAt.Load().(time.Time); ok && time.Now().Before(exp) {
		if a, ok := c.value.Load().(model.Assumptions); ok {
			return a, true
		}
	}
	return model.Assumptions{}, false
}

// set stores the assumptions with TTL.
func (c *assumptionsCache) set(a model.Assumptions) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp, ok := c.expiresAt.Load().(time.Time); ok && time.Now().Before(exp) {
		return
	}

	c.value.Store(a)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *assumptionsCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for the salinity routes.
type Handler struct {
	calculator       service.SalinityCalculator
	profiles         service.AssumptionProfilesService
	history          service.CalculationHistoryService
	assumptionsCache *assumptionsCache
	reference        dto.ReferenceCompositionResponse
	log              zerolog.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithAssumptionsCacheTTL sets the TTL for caching the active assumption profile.
func WithAssumptionsCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.assumptionsCache = newAssumptionsCache(ttl)
	}
}

// WithHistory records every summary in the calculation history.
func WithHistory(history service.CalculationHistoryService) HandlerOption {
	return func(h *Handler) {
		h.history = history
	}
}

// NewHandler creates a new Handler instance. profiles may be nil, in which
// case requests are resolved against the built-in default assumptions.
func NewHandler(calculator service.SalinityCalculator, profiles service.AssumptionProfilesService, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator:       calculator,
		profiles:         profiles,
		assumptionsCache: newAssumptionsCache(30 * time.Second),
		reference:        dto.NewReferenceCompositionResponse(),
		log:              logger.Component("http"),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// baseAssumptions returns the active profile's assumptions, falling back to
// the built-in defaults when no profile is stored or storage is unavailable.
func (h *Handler) baseAssumptions(ctx context.Context) model.Assumptions {
	if a, ok := h.assumptionsCache.get(); ok {
		return a
	}

	if h.profiles == nil {
		return model.DefaultAssumptions()
	}

	ctx, cancel := context.WithTimeout(ctx, profileLookupTimeout)
	defer cancel()

	profile, err := h.profiles.GetActive(ctx)
	if err != nil {
		h.log.Warn().Err(err).Msg("active assumption profile unavailable, using defaults")
		return model.DefaultAssumptions()
	}

	a := model.DefaultAssumptions()
	if profile != nil {
		a = profile.Assumptions
	}
	h.assumptionsCache.set(a)
	return a
}

// InvalidateAssumptionsCache drops the cached base assumptions.
// Call this when the active profile changes.
func (h *Handler) InvalidateAssumptionsCache() {
	h.assumptionsCache.invalidate()
}

// bindCalculation decodes and validates a salinity request and merges its
// assumptions onto the base assumptions. It writes the error response itself
// and returns false when the request cannot be served.
func (h *Handler) bindCalculation(c *gin.Context, builder *ResponseBuilder) (*dto.CalculateSalinityRequest, model.Calculation, bool) {
	req, err := BuildRequestAndValidate[dto.CalculateSalinityRequest](c)
	if err != nil {
		metrics.RecordSalinityCalculation(0, "validation_error")
		builder.bindError(err, validationMessageKey)
		return nil, model.Calculation{}, false
	}

	assumptions, err := h.baseAssumptions(c.Request.Context()).Overlay(req.Assumptions)
	if err != nil {
		metrics.RecordSalinityCalculation(0, "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationAssumptions, err)
		return nil, model.Calculation{}, false
	}

	return req, model.NewCalculation(*req.Inputs, assumptions), true
}

// CalculateSalinity handles POST /api/salinity requests.
//
// @Summary      Calculate salinity
// @Description  Estimates Practical and Absolute Salinity from measured ion concentrations by iterating density and the density-normalised mass budget to a fixed point. Missing chloride is estimated from charge balance and reference ion ratios. Assumptions omitted from the request come from the active assumption profile, or the built-in defaults.
// @Tags         Salinity
// @Accept       json
// @Produce      json
// @Param        request body dto.CalculateSalinityRequest true "Measured ions and optional assumptions"
// @Success      200 {object} dto.SuccessResponse{data=model.SalinityResult} "Solver result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/salinity [post]
func (h *Handler) CalculateSalinity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, calc, ok := h.bindCalculation(c, builder)
	if !ok {
		return
	}

	middleware.Audit(c, (&model.LogEntry{
		Message:    "Salinity calculation requested",
		ActionType: model.ActionCalculate,
	}).
		Set("chloride_measured", req.Inputs.Cl != nil).
		Set("detailed", req.Detailed).
		Set("has_assumptions", len(req.Assumptions) > 0))

	opts := req.SolverOptions(model.SolverOptions{})
	opts.Detailed = req.Detailed

	start := time.Now()
	result := h.calculator.Calculate(calc, opts)
	metrics.RecordSalinityCalculation(time.Since(start), calculationStatus(result.Converged))

	builder.SuccessOK(result)
}

// SummarizeSalinity handles POST /api/salinity/summary requests.
//
// @Summary      Summarize salinity
// @Description  Runs the solver with the default tuning and returns SP, SA, in-situ density and the 20/20 and 25/25 specific gravities. Identical requests are served from cache. When calculation history is enabled the summary is recorded.
// @Tags         Salinity
// @Accept       json
// @Produce      json
// @Param        request body dto.CalculateSalinityRequest true "Measured ions and optional assumptions"
// @Success      200 {object} dto.SuccessResponse{data=model.CalculationSummary} "Calculation summary"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/salinity/summary [post]
func (h *Handler) SummarizeSalinity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	_, calc, ok := h.bindCalculation(c, builder)
	if !ok {
		return
	}

	start := time.Now()
	summary := h.calculator.Summarize(calc)
	metrics.RecordSalinityCalculation(time.Since(start), calculationStatus(summary.Converged))

	if h.history != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), historyWriteTimeout)
		if _, err := h.history.Record(ctx, calc, summary, middleware.GetRequestID(c)); err != nil {
			middleware.RequestLog(c).Warn().Err(err).Msg("failed to record calculation")
		}
		cancel()
	}

	middleware.Audit(c, (&model.LogEntry{
		Message:    "Salinity summary requested",
		ActionType: model.ActionSummarize,
	}).
		Set("sp", summary.SP).
		Set("converged", summary.Converged))

	builder.SuccessOK(summary)
}

// SpecificGravity handles GET /api/salinity/specific-gravity requests.
//
// @Summary      Specific gravity
// @Description  Returns the ratio of seawater density to pure-water density at the given temperature and pressure.
// @Tags         Salinity
// @Produce      json
// @Param        sp query number true "Practical Salinity"
// @Param        t query number false "Temperature in °C" default(20)
// @Param        p query number false "Sea pressure in dbar" default(0)
// @Success      200 {object} dto.SuccessResponse{data=dto.SpecificGravityResponse} "Specific gravity"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid query"
// @Security     ApiKeyAuth
// @Router       /api/salinity/specific-gravity [get]
func (h *Handler) SpecificGravity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sp, err := queryFloat(c, "sp", nil)
	if err == nil && sp < 0 {
		err = dto.ErrInvalidSpecificGravityInput
	}
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationSpecificGravity, err)
		return
	}
	t, err := queryFloat(c, "t", model.Float(service.SGTemp20C))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationSpecificGravity, err)
		return
	}
	p, err := queryFloat(c, "p", model.Float(0))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationSpecificGravity, err)
		return
	}

	builder.SuccessOK(dto.SpecificGravityResponse{
		SP:              sp,
		TempC:           t,
		PressureDbar:    p,
		SpecificGravity: h.calculator.SpecificGravity(sp, t, p),
	})
}

// ReferenceComposition handles GET /api/salinity/reference requests.
//
// @Summary      Reference composition
// @Description  Returns the reference seawater composition the solver compares measurements against.
// @Tags         Salinity
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ReferenceCompositionResponse} "Reference composition"
// @Security     ApiKeyAuth
// @Router       /api/salinity/reference [get]
func (h *Handler) ReferenceComposition(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.reference)
}

// queryFloat parses a finite float query parameter. A missing parameter
// yields def, or an error when def is nil.
func queryFloat(c *gin.Context, name string, def *float64) (float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		if def == nil {
			return 0, &dto.ValidationError{Field: name, Message: "is required"}
		}
		return *def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isFinite(v) {
		return 0, &dto.ValidationError{Field: name, Message: "must be a finite number"}
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validationMessageKey(err error) string {
	switch {
	case errors.Is(err, dto.ErrInvalidMaxIter), errors.Is(err, dto.ErrInvalidTolerance):
		return i18n.ErrKeyValidationSolver
	case errors.Is(err, dto.ErrMissingInputs), errors.Is(err, dto.ErrNonFiniteInputs):
		return i18n.ErrKeyValidationInputs
	default:
		return i18n.ErrKeyInvalidRequestBody
	}
}

func calculationStatus(converged bool) string {
	if converged {
		return "success"
	}
	return "not_converged"
}
