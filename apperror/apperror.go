// Package apperror defines the application's error taxonomy. Services
// return typed errors; handlers pass them to a single writer that maps
// each type to an HTTP status and a uniform JSON body, so no stack
// traces or driver details ever reach a client.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes an application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors.
	UnknownError ErrorType = iota
	// AuthError represents an authentication failure (invalid credentials,
	// missing or bad token).
	AuthError
	// NotFoundError represents a missing resource.
	NotFoundError
	// ValidationError represents an input validation failure.
	ValidationError
	// BadRequestError represents a malformed request.
	BadRequestError
	// ConflictError represents a uniqueness conflict, e.g. a taken email.
	ConflictError
	// DatabaseError represents a persistence failure.
	DatabaseError
	// ExternalServiceError represents a failure in an upstream collaborator,
	// e.g. the asset store.
	ExternalServiceError
	// InternalError represents any other server-side failure.
	InternalError
)

// AppError carries the error type, a client-safe message, and an optional
// underlying cause kept for logs only.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status appropriate for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case AuthError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError, BadRequestError:
		return http.StatusBadRequest
	case ConflictError:
		return http.StatusConflict
	case ExternalServiceError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError of an arbitrary type.
func NewAppError(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

// NewAuthError creates an authentication error (HTTP 401).
func NewAuthError(message string, underlying error) *AppError {
	return NewAppError(AuthError, message, underlying)
}

// NewNotFoundError creates a missing-resource error (HTTP 404).
func NewNotFoundError(message string, underlying error) *AppError {
	return NewAppError(NotFoundError, message, underlying)
}

// NewValidationError creates an input validation error (HTTP 400).
func NewValidationError(message string, underlying error) *AppError {
	return NewAppError(ValidationError, message, underlying)
}

// NewBadRequestError creates a malformed-request error (HTTP 400).
func NewBadRequestError(message string, underlying error) *AppError {
	return NewAppError(BadRequestError, message, underlying)
}

// NewConflictError creates a conflict error (HTTP 409).
func NewConflictError(message string, underlying error) *AppError {
	return NewAppError(ConflictError, message, underlying)
}

// NewDatabaseError creates a persistence error (HTTP 500).
func NewDatabaseError(message string, underlying error) *AppError {
	return NewAppError(DatabaseError, message, underlying)
}

// NewExternalServiceError creates an upstream-collaborator error (HTTP 502).
func NewExternalServiceError(message string, underlying error) *AppError {
	return NewAppError(ExternalServiceError, message, underlying)
}

// NewInternalError creates a generic server error (HTTP 500).
func NewInternalError(message string, underlying error) *AppError {
	return NewAppError(InternalError, message, underlying)
}

// ErrorResponse is the JSON body sent for every failure. Status is "fail"
// for client errors (4xx) and "error" for server errors (5xx).
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ToResponse converts an AppError into its client-facing body. Only the
// Message field is exposed, never the underlying cause.
func (e *AppError) ToResponse() ErrorResponse {
	status := "error"
	if code := e.StatusCode(); code >= 400 && code < 500 {
		status = "fail"
	}
	return ErrorResponse{Status: status, Message: e.Message}
}

// FromError attempts to convert a generic error to an *AppError.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsAuthError reports whether an error in the chain is an AuthError.
func IsAuthError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == AuthError
}

// IsNotFound reports whether an error in the chain is a NotFoundError.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsValidationError reports whether an error in the chain is a ValidationError.
func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// IsConflictError reports whether an error in the chain is a ConflictError.
func IsConflictError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}
