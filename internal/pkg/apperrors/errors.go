package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
)

// Member errors
var (
	ErrMemberNotFound  = NewCustomError(ErrResourceNotFound, "member not found").WithCode("RES_001")
	ErrInvalidMemberID = NewCustomError(ErrValidationFailed, "member ID must be a positive integer").WithCode("VAL_001")
)

// Database errors
var (
	// ErrDatabaseUnavailable means the store could not be reached, as opposed to a query failing.
	ErrDatabaseUnavailable = errors.New("database unavailable")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
