package core

import (
	"errors"
	"fmt"

	apperr "github.com/KirkDiggler/counterpick-bot/internal/errors"
)

// HandlerError represents an error that occurred during handler execution
type HandlerError struct {
	// The underlying error
	Err error

	// User-friendly message to display
	UserMessage string

	// Whether this error should be shown to the user
	ShowToUser bool

	// HTTP-like status code for categorization
	Code int
}

// Error implements the error interface
func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMessage
}

// Unwrap returns the underlying error
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrorCodeBadRequest  = 400
	ErrorCodeNotFound    = 404
	ErrorCodeConflict    = 409
	ErrorCodeTooMany     = 429
	ErrorCodeInternal    = 500
	ErrorCodeUnavailable = 503
)

const (
	internalErrorMessage = "An internal error occurred. Please try again later."
	unavailableMessage   = "The bot's storage is unavailable right now. Please try again later."
	wrongStepMessage     = "That step has expired. Open the menu with /counters menu and start again."
)

// NewHandlerError creates a new handler error
func NewHandlerError(err error, userMessage string, code int) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: userMessage,
		ShowToUser:  true,
		Code:        code,
	}
}

// NewInternalError wraps an error the user shouldn't see the details of
func NewInternalError(err error) *HandlerError {
	return NewHandlerError(err, internalErrorMessage, ErrorCodeInternal)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *HandlerError {
	return &HandlerError{
		UserMessage: fmt.Sprintf("%s not found", resource),
		ShowToUser:  true,
		Code:        ErrorCodeNotFound,
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *HandlerError {
	return &HandlerError{
		UserMessage: message,
		ShowToUser:  true,
		Code:        ErrorCodeBadRequest,
	}
}

// FromError maps a service error onto a HandlerError by its application
// code. HandlerErrors pass through untouched.
func FromError(err error) *HandlerError {
	if err == nil {
		return nil
	}

	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr
	}

	switch apperr.GetCode(err) {
	case apperr.CodeInvalidArgument:
		var appErr *apperr.Error
		msg := err.Error()
		if errors.As(err, &appErr) {
			msg = appErr.Message
		}
		return NewHandlerError(err, msg, ErrorCodeBadRequest)
	case apperr.CodeNotFound:
		return NewHandlerError(err, "Not found.", ErrorCodeNotFound)
	case apperr.CodeFailedPrecondition:
		return NewHandlerError(err, wrongStepMessage, ErrorCodeConflict)
	case apperr.CodeUnavailable:
		return NewHandlerError(err, unavailableMessage, ErrorCodeUnavailable)
	default:
		return NewInternalError(err)
	}
}
