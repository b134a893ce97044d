package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrConstraintViolation indicates that the datastore rejected a record,
	// for example a missing required field or a broken foreign key
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrInvalidField indicates that a field name or value does not fit the entity type
	ErrInvalidField = errors.New("invalid field")

	// ErrStoreUnavailable indicates that the datastore could not be reached
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError represents a rejected required field.
// It unwraps to ErrConstraintViolation so callers can match it with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap returns ErrConstraintViolation.
func (e *ValidationError) Unwrap() error {
	return ErrConstraintViolation
}

// FieldError reports a factory override that does not fit the entity type.
// It unwraps to ErrInvalidField.
type FieldError struct {
	Kind   Kind
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q: %s", e.Kind, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}
