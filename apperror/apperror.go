// Package apperror defines a centralized system for application-specific errors.
// Every failure that reaches the request boundary is expressed as an *AppError,
// which knows its HTTP status code and its client-facing response shape. This
// keeps error handling and error responses consistent across the application.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType defines the category of an application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors.
	UnknownError ErrorType = iota
	// DatabaseError represents an error originating from the database.
	DatabaseError
	// ConfigError represents an error related to application configuration.
	ConfigError
	// AuthError represents an authentication failure (invalid credentials).
	AuthError
	// UnauthorizedError represents a rejected request (missing or invalid token).
	UnauthorizedError
	// NotFoundError represents a resource not found error.
	NotFoundError
	// ValidationError represents an input validation error.
	ValidationError
	// BadRequestError represents a generic malformed request.
	BadRequestError
	// DuplicateEmailError represents an attempt to reuse an email that is
	// already taken by another account.
	DuplicateEmailError
	// InternalError represents a generic internal server error.
	InternalError
	// MigrationError represents an error during database migrations.
	MigrationError
)

// AppError is the application's error type. It wraps an optional underlying
// error for debugging while keeping Message as the only client-visible part.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error // underlying error, never serialized
}

// Error satisfies the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error so errors.Is and errors.As can inspect
// the chain.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error type.
// Both authentication failures and missing/invalid tokens map to 401; the
// service deliberately never distinguishes the two for a caller.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case AuthError, UnauthorizedError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError, BadRequestError, DuplicateEmailError:
		return http.StatusBadRequest
	case DatabaseError, ConfigError, InternalError, MigrationError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError. Prefer the typed constructors below.
func NewAppError(errType ErrorType, message string, underlyingError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlyingError,
	}
}

// NewDatabaseError creates a new DatabaseError.
func NewDatabaseError(message string, underlyingError error) *AppError {
	return NewAppError(DatabaseError, message, underlyingError)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string, underlyingError error) *AppError {
	return NewAppError(ConfigError, message, underlyingError)
}

// NewAuthError creates a new AuthError.
func NewAuthError(message string, underlyingError error) *AppError {
	return NewAppError(AuthError, message, underlyingError)
}

// NewUnauthorizedError creates a new UnauthorizedError.
func NewUnauthorizedError(message string, underlyingError error) *AppError {
	return NewAppError(UnauthorizedError, message, underlyingError)
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(message string, underlyingError error) *AppError {
	return NewAppError(NotFoundError, message, underlyingError)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string, underlyingError error) *AppError {
	return NewAppError(ValidationError, message, underlyingError)
}

// NewBadRequestError creates a new BadRequestError.
func NewBadRequestError(message string, underlyingError error) *AppError {
	return NewAppError(BadRequestError, message, underlyingError)
}

// NewDuplicateEmailError creates a new DuplicateEmailError.
func NewDuplicateEmailError(message string, underlyingError error) *AppError {
	return NewAppError(DuplicateEmailError, message, underlyingError)
}

// NewInternalError creates a new InternalError.
func NewInternalError(message string, underlyingError error) *AppError {
	return NewAppError(InternalError, message, underlyingError)
}

// NewMigrationError creates a new MigrationError.
func NewMigrationError(message string, underlyingError error) *AppError {
	return NewAppError(MigrationError, message, underlyingError)
}

// ErrorResponse is the JSON envelope returned to clients for any failure.
type ErrorResponse struct {
	Status  bool   `json:"status" example:"false"`
	Message string `json:"message" example:"A description of the error"`
}

// ToResponse converts an AppError to its client-facing envelope. Only the
// Message is exposed, never the wrapped error.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Status: false, Message: e.Message}
}

// FromError attempts to convert a generic error to an *AppError.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsAuthError checks if an error is an AuthError.
func IsAuthError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == AuthError
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// IsDuplicateEmail checks if an error is a DuplicateEmailError.
func IsDuplicateEmail(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == DuplicateEmailError
}
