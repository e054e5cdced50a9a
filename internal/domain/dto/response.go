package dto

import (
	"maps"
	"net/http"
	"time"

	"github.com/guttosm/salinity-service/internal/chemistry"
	"github.com/guttosm/salinity-service/internal/domain/model"
)

// errorCodes maps response statuses to the machine-readable "error" field.
// Unlisted statuses report internal_error.
var errorCodes = map[int]string{
	http.StatusBadRequest:          "invalid_request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusNotFound:            "not_found",
	http.StatusMethodNotAllowed:    "method_not_allowed",
	http.StatusRequestTimeout:      "timeout",
	http.StatusConflict:            "conflict",
	http.StatusTooManyRequests:     "rate_limit_exceeded",
	http.StatusServiceUnavailable:  "service_unavailable",
	http.StatusGatewayTimeout:      "timeout",
	http.StatusInternalServerError: "internal_error",
}

// ErrorCode returns the "error" field value for status.
func ErrorCode(status int) string {
	if code, ok := errorCodes[status]; ok {
		return code
	}
	return "internal_error"
}

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (SalinityResult for the salinity endpoint)
	// Example: {"sp": 35.2011, "sa": 35.3678, "density_kg_per_m3": 1024.93, "converged": true}
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"max_iter: must be between 1 and 1000"`
	// Details contains additional error details (optional)
	// Example: {"field": "error message"}
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError builds the envelope for status with a translated message.
func NewError(status int, message string) ErrorResponse {
	return ErrorResponse{
		Error:     ErrorCode(status),
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID stamps the envelope with the request ID.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetail returns a copy of e with field set in Details; e is unchanged.
func (e ErrorResponse) WithDetail(field, message string) ErrorResponse {
	details := maps.Clone(e.Details)
	if details == nil {
		details = make(map[string]string, 1)
	}
	details[field] = message
	e.Details = details
	return e
}

// SpecificGravityResponse is the result of a specific-gravity query.
// @Description Specific gravity of seawater relative to pure water at the same conditions
type SpecificGravityResponse struct {
	SP              float64 `json:"sp" example:"35"`
	TempC           float64 `json:"t" example:"20"`
	PressureDbar    float64 `json:"p" example:"0"`
	SpecificGravity float64 `json:"specific_gravity" example:"1.02664"`
} // @name SpecificGravityResponse

// ReferenceIonResponse is one row of the reference composition.
// @Description Reference seawater ion
type ReferenceIonResponse struct {
	Symbol     string  `json:"symbol" example:"Cl"`
	MolarMass  float64 `json:"molar_mass_g_mol" example:"35.453"`
	MmolPerKg  float64 `json:"mmol_per_kg" example:"545.8696"`
	GramsPerKg float64 `json:"g_per_kg" example:"19.3529"`
	// RatioToChloride is the molar ratio of the ion to chloride.
	RatioToChloride float64 `json:"ratio_to_chloride" example:"1"`
} // @name ReferenceIonResponse

// ReferenceCompositionResponse is the full reference composition.
// @Description Reference seawater composition at SP 35
type ReferenceCompositionResponse struct {
	Ions        []ReferenceIonResponse `json:"ions"`
	TotalGPerKg float64                `json:"total_g_per_kg" example:"35.02"`
} // @name ReferenceCompositionResponse

// NewReferenceCompositionResponse renders the reference composition table.
func NewReferenceCompositionResponse() ReferenceCompositionResponse {
	table := chemistry.ReferenceTable()
	ions := make([]ReferenceIonResponse, len(table))
	for i, r := range table {
		ions[i] = ReferenceIonResponse{
			Symbol:          r.Symbol,
			MolarMass:       r.MolarMass,
			MmolPerKg:       r.MmolPerKg,
			GramsPerKg:      r.GramsPerKg(),
			RatioToChloride: chemistry.RatioToChloride(r.Ion),
		}
	}
	return ReferenceCompositionResponse{Ions: ions, TotalGPerKg: chemistry.SumRefGkg()}
}

// AssumptionsResponse describes the assumptions the service applies when a request carries none.
// @Description Active assumptions and where they came from
type AssumptionsResponse struct {
	// Source is "profile" for a stored profile or "default" for the built-in values.
	Source      string            `json:"source" example:"profile"`
	ID          string            `json:"id,omitempty" example:"6650f0c2a3b4c5d6e7f80912"`
	Version     int               `json:"version,omitempty" example:"3"`
	Assumptions model.Assumptions `json:"assumptions"`
	CreatedBy   string            `json:"created_by,omitempty" example:"lab-01"`
	CreatedAt   *time.Time        `json:"created_at,omitempty"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty"`
} // @name AssumptionsResponse

// CalculationListResponse is one page of calculation history.
// @Description Page of recorded calculations, newest first
type CalculationListResponse struct {
	Items interface{} `json:"items" swaggertype:"array,object"`
	Total int64       `json:"total" example:"42"`
	Limit int         `json:"limit" example:"20"`
	Skip  int         `json:"skip" example:"0"`
} // @name CalculationListResponse
