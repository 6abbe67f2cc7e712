package domain

import (
	"errors"
	"strings"
)

// Errors returned by repositories and services. The HTTP layer maps each
// one to a status code, so wrap them with %w rather than replacing them.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	// ErrConflict means a queue item already left the pending state.
	ErrConflict = errors.New("conflict")
	// ErrInvalidState is raised by database guards such as the
	// append-only trigger on the moderation log.
	ErrInvalidState = errors.New("invalid state")
	// ErrUnavailable marks a dependency that is down or timing out.
	ErrUnavailable = errors.New("unavailable")
)

// FieldError is one rejected request field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every rejected field of a request.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError rejects a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// FieldErrors accumulates problems while an input is validated.
// The zero value is ready to use.
type FieldErrors []FieldError

// Add records a problem with field.
func (f *FieldErrors) Add(field, message string) {
	*f = append(*f, FieldError{Field: field, Message: message})
}

// Err returns the collected problems as a *ValidationError, or nil.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Errors: f}
}
