// Package services implements the persistence-facing operations of the
// execution core: sessions, tickets, claims and leases, the transcript,
// approvals, and the durable event log. Handlers and workers call into
// these services; nothing above this layer touches ent directly.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/pkg/fault"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when a conditional update lost
	// the race to another writer
	ErrConcurrentModification = errors.New("concurrent modification detected")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// classifyEnt translates ent driver errors into the fault taxonomy at the
// storage boundary. Constraint violations surface as Conflict so callers
// can distinguish races from infrastructure failures.
func classifyEnt(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case ent.IsNotFound(err):
		return fault.Wrap(fault.NotFound, op, "not found", err)
	case ent.IsConstraintError(err):
		return fault.Wrap(fault.Conflict, op, "constraint violation", err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fault.Wrap(fault.Timeout, op, "storage call cancelled", err)
	default:
		return fault.Wrap(fault.Transient, op, "storage failure", err)
	}
}
