package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	cause   error
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains
func (e *AppError) Unwrap() error {
	return e.cause
}

// Common errors
var (
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}

	// ErrInvalidAmount reports a quantity, rate, tax or discount value that is
	// not a well-formed decimal. Computation for the invoice aborts; a default
	// monetary value is never substituted.
	ErrInvalidAmount = &AppError{Code: http.StatusUnprocessableEntity, Message: "Invalid monetary amount"}

	// ErrUnknownTemplate reports a design identifier the registry cannot
	// resolve. This is a configuration error, not a user-recoverable one.
	ErrUnknownTemplate = &AppError{Code: http.StatusInternalServerError, Message: "Unknown document template"}

	// ErrRenderFailure reports a failure while drawing or serializing pages.
	ErrRenderFailure = &AppError{Code: http.StatusInternalServerError, Message: "Document rendering failed"}
)

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewBadRequestError creates a bad request error with a custom message.
// errors.Is(err, ErrBadRequest) holds for the result.
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrBadRequest.Code,
		Message: message,
		cause:   ErrBadRequest,
	}
}

// InvalidAmount wraps a decimal parse failure for the named field.
// errors.Is(err, ErrInvalidAmount) holds for the result.
func InvalidAmount(field string, cause error) *AppError {
	return &AppError{
		Code:    ErrInvalidAmount.Code,
		Message: fmt.Sprintf("%s: %s", ErrInvalidAmount.Message, field),
		Errors:  []FieldError{{Field: field, Message: "must be a valid decimal number"}},
		cause:   wrap(ErrInvalidAmount, cause),
	}
}

// UnknownTemplate wraps an unresolved design identifier.
// errors.Is(err, ErrUnknownTemplate) holds for the result.
func UnknownTemplate(design string) *AppError {
	return &AppError{
		Code:    ErrUnknownTemplate.Code,
		Message: fmt.Sprintf("%s: %q", ErrUnknownTemplate.Message, design),
		cause:   ErrUnknownTemplate,
	}
}

// RenderFailure wraps a drawing or serialization error.
// errors.Is(err, ErrRenderFailure) holds for the result.
func RenderFailure(cause error) *AppError {
	return &AppError{
		Code:    ErrRenderFailure.Code,
		Message: ErrRenderFailure.Message,
		cause:   wrap(ErrRenderFailure, cause),
	}
}

// wrap chains a sentinel with an underlying cause so both match errors.Is.
func wrap(sentinel *AppError, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}

// GetAppError converts an error to AppError if possible. Anything else is
// reported as an internal server error; the original error stays reachable
// through Unwrap but never leaks into the response message.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    ErrInternalServer.Code,
		Message: ErrInternalServer.Message,
		cause:   err,
	}
}
