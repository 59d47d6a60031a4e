package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyProcessed is returned when a completion event's prediction
	// id has already been applied.
	ErrAlreadyProcessed = errors.New("callback already processed")

	// ErrConflict is returned when a conditional status transition matched
	// zero rows, meaning another handler won the race.
	ErrConflict = errors.New("concurrent status transition lost")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// PlanCapError is returned when a request exceeds the principal's plan cap.
type PlanCapError struct {
	Plan     string
	MaxScale int
}

func (e *PlanCapError) Error() string {
	return fmt.Sprintf("plan %q allows scales up to %d", e.Plan, e.MaxScale)
}
