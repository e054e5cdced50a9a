package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/salinity-service/internal/domain/dto"
	"github.com/guttosm/salinity-service/internal/i18n"
	"github.com/guttosm/salinity-service/internal/repository"
	"github.com/guttosm/salinity-service/internal/service"
)

// defaultHistoryPageSize is used when the limit query parameter is absent.
const defaultHistoryPageSize = 20

// CalculationsHandler provides HTTP handlers for the calculation history routes.
type CalculationsHandler struct {
	history service.CalculationHistoryService
}

// NewCalculationsHandler creates a new CalculationsHandler instance.
func NewCalculationsHandler(history service.CalculationHistoryService) *CalculationsHandler {
	return &CalculationsHandler{history: history}
}

// ListCalculations handles GET /api/calculations requests.
//
// @Summary      List calculations
// @Description  Returns recorded summaries, newest first. since and until are RFC 3339 timestamps.
// @Tags         Calculations
// @Produce      json
// @Param        limit query int false "Page size (max 100)" default(20)
// @Param        skip query int false "Records to skip" default(0)
// @Param        since query string false "Only records created at or after this time"
// @Param        until query string false "Only records created at or before this time"
// @Success      200 {object} dto.SuccessResponse{data=dto.CalculationListResponse} "Calculation history"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid query"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/calculations [get]
func (h *CalculationsHandler) ListCalculations(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opts, err := calculationQuery(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidHistoryQuery, err)
		return
	}

	records, total, err := h.history.List(c.Request.Context(), opts)
	if err != nil {
		builder.Error(storageErrorStatus(err), storageErrorKey(err), err)
		return
	}
	if records == nil {
		records = []repository.CalculationRecord{}
	}

	limit := opts.Limit
	if limit > service.MaxHistoryPageSize {
		limit = service.MaxHistoryPageSize
	}
	builder.SuccessOK(dto.CalculationListResponse{
		Items: records,
		Total: total,
		Limit: limit,
		Skip:  opts.Skip,
	})
}

// GetCalculation handles GET /api/calculations/:id requests.
//
// @Summary      Get calculation
// @Description  Returns one recorded summary with its inputs and assumptions.
// @Tags         Calculations
// @Produce      json
// @Param        id path string true "Calculation ID"
// @Success      200 {object} dto.SuccessResponse{data=repository.CalculationRecord} "Calculation"
// @Failure      400 {object} dto.ErrorResponse "Invalid calculation ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "Calculation not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/calculations/{id} [get]
func (h *CalculationsHandler) GetCalculation(c *gin.Context) {
	builder := NewResponseBuilder(c)

	record, err := h.history.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, service.ErrInvalidCalculationID):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidCalculationID, err)
	case errors.Is(err, repository.ErrCalculationNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyCalculationNotFound, err)
	case err != nil:
		builder.Error(storageErrorStatus(err), storageErrorKey(err), err)
	default:
		builder.SuccessOK(record)
	}
}

func calculationQuery(c *gin.Context) (repository.CalculationQueryOptions, error) {
	opts := repository.CalculationQueryOptions{Limit: defaultHistoryPageSize}

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return opts, &dto.ValidationError{Field: "limit", Message: "must be a positive integer"}
		}
		opts.Limit = n
	}
	if v := c.Query("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, &dto.ValidationError{Field: "skip", Message: "must be a non-negative integer"}
		}
		opts.Skip = n
	}
	for name, dst := range map[string]**time.Time{"since": &opts.Since, "until": &opts.Until} {
		if v := c.Query(name); v != "" {
			ts, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return opts, &dto.ValidationError{Field: name, Message: "must be an RFC 3339 timestamp"}
			}
			*dst = &ts
		}
	}
	return opts, nil
}
