package core

import (
	"errors"
	"fmt"
	"strings"

	herr "github.com/KirkDiggler/herald-bot/internal/errors"
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
	ErrorCodeBadRequest   = 400
	ErrorCodeForbidden    = 403
	ErrorCodeNotFound     = 404
	ErrorCodeConflict     = 409
	ErrorCodeTooMany      = 429
	ErrorCodeInternal     = 500
	ErrorCodeUnavailable  = 503
	internalMessage       = "An internal error occurred. Please try again later."
	unavailableMessage    = "Herald can't reach its records right now. Please try again shortly."
	userMessagePrefix     = "❌ "
	validationHeadingText = "**Validation Error**"
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

// NewInternalError creates an internal error whose cause is hidden from users
func NewInternalError(err error) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: internalMessage,
		ShowToUser:  true,
		Code:        ErrorCodeInternal,
	}
}

// NewUserError creates an error with a user-friendly message
func NewUserError(message string, code int) *HandlerError {
	return &HandlerError{
		UserMessage: message,
		ShowToUser:  true,
		Code:        code,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *HandlerError {
	return NewUserError(fmt.Sprintf("%s not found", resource), ErrorCodeNotFound)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *HandlerError {
	return NewUserError(message, ErrorCodeBadRequest)
}

// FromError turns any error into a HandlerError. Coded errors from the service
// layer keep their message for the user; anything internal is masked.
func FromError(err error) *HandlerError {
	if err == nil {
		return nil
	}

	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr
	}

	switch herr.GetCode(err) {
	case herr.CodeInvalidArgument, herr.CodeFailedPrecondition:
		return NewHandlerError(err, userMessagePrefix+sentence(herr.GetRootMessage(err)), ErrorCodeBadRequest)
	case herr.CodeValidation:
		return NewHandlerError(err, userMessagePrefix+validationHeadingText+"\n"+validationDetail(err), ErrorCodeBadRequest)
	case herr.CodeNotFound:
		return NewHandlerError(err, userMessagePrefix+sentence(herr.GetRootMessage(err)), ErrorCodeNotFound)
	case herr.CodeAlreadyExists:
		return NewHandlerError(err, userMessagePrefix+sentence(herr.GetRootMessage(err)), ErrorCodeConflict)
	case herr.CodePermissionDenied:
		return NewHandlerError(err, userMessagePrefix+sentence(herr.GetRootMessage(err)), ErrorCodeForbidden)
	case herr.CodeUnavailable:
		return NewHandlerError(err, unavailableMessage, ErrorCodeUnavailable)
	default:
		return NewInternalError(err)
	}
}

func validationDetail(err error) string {
	fields, ok := herr.GetMeta(err)["fields"].(map[string][]string)
	if !ok || len(fields) == 0 {
		return sentence(herr.GetRootMessage(err))
	}

	lines := make([]string, 0, len(fields))
	for _, name := range herr.ValidationFields(err) {
		lines = append(lines, fmt.Sprintf("• **%s** %s", name, strings.Join(fields[name], ", ")))
	}
	return strings.Join(lines, "\n")
}

// sentence capitalizes the first letter of a service message
func sentence(msg string) string {
	if msg == "" {
		return "Something went wrong."
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
