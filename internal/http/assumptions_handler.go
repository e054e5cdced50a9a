package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/salinity-service/internal/circuitbreaker"
	"github.com/guttosm/salinity-service/internal/domain/dto"
	"github.com/guttosm/salinity-service/internal/domain/model"
	"github.com/guttosm/salinity-service/internal/i18n"
	"github.com/guttosm/salinity-service/internal/middleware"
	"github.com/guttosm/salinity-service/internal/repository"
	"github.com/guttosm/salinity-service/internal/service"
)

// AssumptionsHandler provides HTTP handlers for the assumption profile routes.
type AssumptionsHandler struct {
	profiles   service.AssumptionProfilesService
	calculator service.SalinityCalculator
	handler    *Handler
}

// NewAssumptionsHandler creates a new AssumptionsHandler instance. calculator
// and handler have their caches invalidated when the active profile changes;
// either may be nil.
func NewAssumptionsHandler(profiles service.AssumptionProfilesService, calculator service.SalinityCalculator, handler *Handler) *AssumptionsHandler {
	return &AssumptionsHandler{
		profiles:   profiles,
		calculator: calculator,
		handler:    handler,
	}
}

// GetActiveAssumptions handles GET /api/assumptions requests.
//
// @Summary      Get active assumptions
// @Description  Returns the assumptions applied to requests that do not override them: the active stored profile, or the built-in defaults when none is stored.
// @Tags         Assumptions
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.AssumptionsResponse} "Active assumptions"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/assumptions [get]
func (h *AssumptionsHandler) GetActiveAssumptions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	profile, err := h.profiles.GetActive(c.Request.Context())
	if err != nil {
		builder.Error(storageErrorStatus(err), storageErrorKey(err), err)
		return
	}

	if profile == nil {
		builder.SuccessOK(dto.AssumptionsResponse{
			Source:      "default",
			Assumptions: model.DefaultAssumptions(),
		})
		return
	}

	builder.SuccessOK(profileResponse(profile))
}

// UpdateAssumptions handles PUT /api/assumptions requests.
//
// @Summary      Update assumptions
// @Description  Stores a new active assumption profile. Omitted fields take the built-in defaults. Cached summaries are discarded.
// @Tags         Assumptions
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateAssumptionsRequest true "New assumptions"
// @Success      201 {object} dto.SuccessResponse{data=dto.AssumptionsResponse} "Stored profile"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Security     ApiKeyAuth
// @Router       /api/assumptions [put]
func (h *AssumptionsHandler) UpdateAssumptions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateAssumptionsRequest](c)
	if err != nil {
		builder.bindError(err, func(error) string { return i18n.ErrKeyValidationAssumptions })
		return
	}

	assumptions, err := model.DefaultAssumptions().Overlay(req.Assumptions)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationAssumptions, err)
		return
	}

	profile, err := h.profiles.Create(c.Request.Context(), assumptions, req.CreatedBy)
	if err != nil {
		middleware.Audit(c, (&model.LogEntry{
			Message:    "Assumption profile update failed",
			ActionType: model.ActionUpdateAssumptions,
			Error:      err.Error(),
		}).Set("created_by", req.CreatedBy))
		builder.Error(storageErrorStatus(err), storageErrorKey(err), err)
		return
	}

	if h.calculator != nil {
		h.calculator.InvalidateCache()
	}
	if h.handler != nil {
		h.handler.InvalidateAssumptionsCache()
	}

	middleware.Audit(c, (&model.LogEntry{
		Message:    "Assumption profile updated",
		ActionType: model.ActionUpdateAssumptions,
	}).
		Set("version", profile.Version).
		Set("created_by", req.CreatedBy))

	builder.SuccessCreated(profileResponse(profile))
}

// ListAssumptions handles GET /api/assumptions/history requests.
//
// @Summary      List assumption history
// @Description  Returns stored assumption profiles, newest first.
// @Tags         Assumptions
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.AssumptionsResponse} "Assumption history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/assumptions/history [get]
func (h *AssumptionsHandler) ListAssumptions(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	profiles, err := h.profiles.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(storageErrorStatus(err), storageErrorKey(err), err)
		return
	}

	out := make([]dto.AssumptionsResponse, len(profiles))
	for i := range profiles {
		out[i] = profileResponse(&profiles[i])
	}
	builder.SuccessOK(out)
}

func profileResponse(p *repository.AssumptionProfile) dto.AssumptionsResponse {
	createdAt, updatedAt := p.CreatedAt, p.UpdatedAt
	return dto.AssumptionsResponse{
		Source:      "profile",
		ID:          p.ID.Hex(),
		Version:     p.Version,
		Assumptions: p.Assumptions,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   &createdAt,
		UpdatedAt:   &updatedAt,
	}
}

// storageErrorStatus maps repository failures to a response status.
func storageErrorStatus(err error) int {
	switch {
	case errors.Is(err, circuitbreaker.ErrCircuitOpen), errors.Is(err, service.ErrRepositoryNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func storageErrorKey(err error) string {
	switch storageErrorStatus(err) {
	case http.StatusServiceUnavailable:
		return i18n.ErrKeyServiceUnavailable
	case http.StatusGatewayTimeout:
		return i18n.ErrKeyTimeout
	default:
		return i18n.ErrKeyInternalError
	}
}
