package i18n

// Keys for errors any route can produce.
const (
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyMethodNotAllowed   = "error.method_not_allowed"
	ErrKeyTimeout            = "error.timeout"
	// ErrKeyServiceUnavailable is used while MongoDB is disabled or its circuit is open.
	ErrKeyServiceUnavailable = "error.service_unavailable"
)

// Keys for the API key and rate limit guards.
const (
	ErrKeyAPIKeyRequired    = "error.api_key_required"
	ErrKeyInvalidAPIKey     = "error.invalid_api_key"
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
)

// Keys naming the request part a calculation rejected.
const (
	// ErrKeyValidationInputs covers missing or non-finite ion concentrations.
	ErrKeyValidationInputs = "error.validation.inputs"
	// ErrKeyValidationSolver covers max_iter or tolerance out of range.
	ErrKeyValidationSolver          = "error.validation.solver"
	ErrKeyValidationAssumptions     = "error.validation.assumptions"
	ErrKeyValidationSpecificGravity = "error.validation.specific_gravity"
)

// Keys for the calculation history routes.
const (
	ErrKeyInvalidHistoryQuery  = "error.invalid_history_query"
	ErrKeyInvalidCalculationID = "error.invalid_calculation_id"
	ErrKeyCalculationNotFound  = "error.calculation_not_found"
)
