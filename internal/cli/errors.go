package cli

import (
	"errors"
	"fmt"
)

// Exit codes
const (
	ExitFailure      = 1 // Calculation could not be run (bad input data)
	ExitCommandError = 2 // Invalid flag combination or unknown option value
)

// Input errors reported by the calc command.
var (
	ErrMissingInputData = errors.New("missing input data")
	ErrInputsJSON       = errors.New("invalid inputs JSON")
	ErrAssumptionsJSON  = errors.New("invalid assumptions JSON")
	ErrInputDocument    = errors.New("invalid input document")
	ErrReadStdin        = errors.New("read stdin")
	ErrReadFile         = errors.New("read input file")
)

// exitMessages is the text printed for each input failure.
var exitMessages = map[error]string{
	ErrMissingInputData: "Missing input data: provide --input or --inputs-json",
	ErrInputsJSON:       "Invalid JSON for --inputs-json",
	ErrAssumptionsJSON:  "Invalid JSON for --assumptions-json",
	ErrInputDocument:    "Invalid JSON in input document",
	ErrReadStdin:        "Error reading from stdin",
	ErrReadFile:         "Error reading file",
}

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error

	// kind is the sentinel matched by errors.Is.
	kind error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel this error was raised as.
func (e *ExitError) Is(target error) bool {
	return e.kind != nil && target == e.kind
}

// NewExitError creates an ExitError without an underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// inputError reports an input failure of the given kind. message defaults
// to the kind's exit message.
func inputError(kind error, message string, cause error) *ExitError {
	if message == "" {
		message = exitMessages[kind]
	}
	return &ExitError{Code: ExitFailure, Message: message, Err: cause, kind: kind}
}
