package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeValidation indicates the payload violated one or more field rules
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeBadReference indicates a well-formed payload pointing at a
	// referenced record that does not exist
	ErrorTypeBadReference ErrorType = "BAD_REFERENCE"

	// ErrorTypeInvalidID indicates a malformed identifier that never reached the store
	ErrorTypeInvalidID ErrorType = "INVALID_ID"

	// ErrorTypeConflict indicates a conflict with existing data
	ErrorTypeConflict ErrorType = "CONFLICT"

	// ErrorTypeUnauthorized indicates unauthorized access
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"

	// ErrorTypeInternal indicates an internal server error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	// Details carries the accumulated rule violations for validation errors.
	Details []string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s: %s", e.Type, e.Message, strings.Join(e.Details, "; "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewValidationErrors creates a validation error carrying the full violation list
func NewValidationErrors(message string, details []string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Details: details,
	}
}

// NewBadReferenceError creates a new bad reference error
func NewBadReferenceError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeBadReference,
		Message: message,
	}
}

// NewInvalidIDError creates a new invalid identifier error
func NewInvalidIDError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidID,
		Message: message,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConflict,
		Message: message,
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnauthorized,
		Message: message,
	}
}

// IsNotFound reports whether err is a not found application error
func IsNotFound(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Type == ErrorTypeNotFound
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}
