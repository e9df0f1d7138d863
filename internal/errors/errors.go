package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned on login when the username or
	// password is wrong. Deliberately generic: it never distinguishes an
	// unknown user from a bad password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthorized is returned when a protected operation is invoked
	// without a resolved identity.
	ErrUnauthorized = errors.New("authentication required")
	// ErrUserExists is returned when onboarding collides with an existing
	// username or email.
	ErrUserExists = errors.New("an account with that email already exists")
)

// ValidationError reports the first constraint-violating field of a
// submission payload. Always recoverable by resubmission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ErrorResponse is the wire shape for every failure. Field is set only for
// validation errors.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Field      string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to its wire shape.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message, Field: e.Field}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Persistence failures
// deliberately collapse to a generic 500: internal detail goes to the signup
// audit log, never to the caller.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: verr.Message, Field: verr.Field}
	}
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusConflict, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
