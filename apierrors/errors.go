package apierrors

import "fmt"

// Error codes surfaced by the HTTP layer.
const (
	ErrCodeUnknown            = "UNKNOWN_ERROR"
	ErrCodeNotFound           = "RESOURCE_NOT_FOUND"
	ErrCodeRequestValidation  = "REQUEST_VALIDATION_ERROR"
	ErrCodeInternalProcessing = "INTERNAL_PROCESSING_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeNetworkError       = "NETWORK_ERROR"
	ErrCodeMalformedData      = "MALFORMED_DATA"
	ErrCodeRequestTimeout     = "REQUEST_TIMEOUT"
	ErrCodeSystemPanic        = "SYSTEM_PANIC"
)

// AppError defines a standard application error.
type AppError struct {
	Code    string // Application-specific error code
	Message string // User-friendly error message
	Err     error  // Original underlying error (optional)
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("AppError(Code=%s, Message=%s, Cause=%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("AppError(Code=%s, Message=%s)", e.Code, e.Message)
}

// Unwrap provides compatibility for errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}
