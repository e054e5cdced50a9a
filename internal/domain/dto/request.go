// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"unicode/utf8"

	"github.com/guttosm/salinity-service/internal/domain/model"
)

// Solver tuning bounds accepted from clients.
const (
	MaxSolverIterations = 1000
	MinSolverIterations = 1
)

// MaxCreatedByLength bounds the profile author recorded with a new profile.
const MaxCreatedByLength = 64

// CalculateSalinityRequest represents the JSON request body for the salinity endpoints.
//
// Inputs is required. Assumptions is a partial document overlaid on the
// active assumption profile; omitted fields keep their configured value.
//
// @Description Request to estimate salinity from measured ion concentrations
// @Example {"inputs": {"na": 11980, "ca": 357, "mg": 1246, "k": 464, "sr": 6.96, "br": 73.2, "cl": 19570, "f": 1.14, "s": 814, "b": 5.57}}
type CalculateSalinityRequest struct {
	// Inputs are the measured ion concentrations in mg/L.
	Inputs *model.IonMeasurement `json:"inputs" binding:"required"`
	// Assumptions overrides individual assumption fields.
	Assumptions json.RawMessage `json:"assumptions,omitempty" swaggertype:"object"`
	// MaxIter caps the solver iterations; zero uses the server default.
	MaxIter int `json:"max_iter,omitempty" example:"30" minimum:"1" maximum:"1000"`
	// Tolerance is the SP convergence threshold; zero uses the server default.
	Tolerance float64 `json:"tolerance,omitempty" example:"1e-8"`
	// Detailed requests the per-species component tables.
	Detailed bool `json:"detailed,omitempty" example:"false"`
} // @name CalculateSalinityRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrMissingInputs is returned when the inputs document is absent.
	ErrMissingInputs = &ValidationError{
		Field:   "inputs",
		Message: "is required",
	}
	// ErrNonFiniteInputs is returned when a concentration is NaN or infinite.
	ErrNonFiniteInputs = &ValidationError{
		Field:   "inputs",
		Message: "concentrations must be finite numbers",
	}
	// ErrInvalidMaxIter is returned when max_iter is outside the accepted range.
	ErrInvalidMaxIter = &ValidationError{
		Field:   "max_iter",
		Message: "must be between 1 and 1000",
	}
	// ErrInvalidTolerance is returned when tolerance is not in (0, 1).
	ErrInvalidTolerance = &ValidationError{
		Field:   "tolerance",
		Message: "must be greater than 0 and less than 1",
	}
	// ErrInvalidAssumptionsDocument is returned when assumptions is not a JSON object.
	ErrInvalidAssumptionsDocument = &ValidationError{
		Field:   "assumptions",
		Message: "must be a JSON object",
	}
	// ErrCreatedByTooLong is returned when created_by exceeds MaxCreatedByLength.
	ErrCreatedByTooLong = &ValidationError{
		Field:   "created_by",
		Message: "must be at most 64 characters",
	}
	// ErrInvalidSpecificGravityInput is returned when sp, t or p cannot be used.
	ErrInvalidSpecificGravityInput = &ValidationError{
		Field:   "sp",
		Message: "must be a finite non-negative number",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *CalculateSalinityRequest) Validate() error {
	if r.Inputs == nil {
		return ErrMissingInputs
	}
	if !r.Inputs.HasFiniteValues() {
		return ErrNonFiniteInputs
	}
	if r.MaxIter != 0 && (r.MaxIter < MinSolverIterations || r.MaxIter > MaxSolverIterations) {
		return ErrInvalidMaxIter
	}
	if r.Tolerance != 0 && (math.IsNaN(r.Tolerance) || r.Tolerance <= 0 || r.Tolerance >= 1) {
		return ErrInvalidTolerance
	}
	return nil
}

// SolverOptions merges the request tuning with the server defaults.
func (r *CalculateSalinityRequest) SolverOptions(defaults model.SolverOptions) model.SolverOptions {
	opts := defaults
	if r.MaxIter > 0 {
		opts.MaxIter = r.MaxIter
	}
	if r.Tolerance > 0 {
		opts.Tolerance = r.Tolerance
	}
	return opts
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// UpdateAssumptionsRequest represents the JSON request body for replacing the active assumption profile.
//
// @Description New active assumption profile
type UpdateAssumptionsRequest struct {
	// Assumptions is a partial document overlaid on the built-in defaults.
	Assumptions json.RawMessage `json:"assumptions" binding:"required" swaggertype:"object"`
	// CreatedBy is the identifier of who created this profile.
	CreatedBy string `json:"created_by,omitempty" example:"lab-01"`
} // @name UpdateAssumptionsRequest

// Validate checks that assumptions is an object; individual fields are
// checked when the document is overlaid on the defaults.
func (r *UpdateAssumptionsRequest) Validate() error {
	trimmed := bytes.TrimSpace(r.Assumptions)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrInvalidAssumptionsDocument
	}
	if utf8.RuneCountInString(r.CreatedBy) > MaxCreatedByLength {
		return ErrCreatedByTooLong
	}
	return nil
}
