package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is
	ErrValidation = errors.New("validation failed")
	// ErrNotFound matches every *NotFoundError via errors.Is
	ErrNotFound = errors.New("not found")
)

// ValidationError means a precondition was violated and nothing was persisted.
// The caller may retry with corrected input.
type ValidationError struct {
	Reason string
}

// NewValidationError creates a validation error with a formatted reason
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError means a referenced language or word does not exist
type NotFoundError struct {
	Entity string
	ID     int64
}

// NewNotFoundError creates a not-found error for the given entity
func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
