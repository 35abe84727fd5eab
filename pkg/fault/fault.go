// Package fault defines the error taxonomy shared by all core components.
//
// Adapters translate their native failures (gRPC codes, HTTP statuses,
// driver errors) into one of the seven classes below at the boundary; the
// rest of the core treats the taxonomy as exhaustive and branches on class,
// never on adapter-specific error values.
package fault

import (
	"errors"
	"fmt"
)

// Class categorizes an error for retry and surfacing decisions.
type Class int

const (
	// Unknown is the zero value for errors that never passed a boundary
	// translation. Treated like Fatal by retry logic.
	Unknown Class = iota

	// InvalidState means a transition precondition was not met.
	// Surfaced to the caller, never retried.
	InvalidState

	// NotFound means a referenced entity is absent.
	NotFound

	// Conflict means an optimistic-state mismatch (e.g. a claim raced).
	// The dispatcher re-polls; HITL surfaces it to the user.
	Conflict

	// Transient is an infrastructure failure in an adapter. Retried with
	// exponential backoff inside a budget; on exhaustion it becomes a
	// failed attempt, not a failed ticket.
	Transient

	// Fatal is a deterministic failure (malformed spec, schema violation,
	// unknown agent id). Fails fast with a human-readable reason.
	Fatal

	// Timeout is a lease expiry or an external-call deadline.
	Timeout

	// PolicyViolation is a security/auth/tenant boundary breach. The
	// request is rejected and an audit event is emitted.
	PolicyViolation
)

// String returns the snake_case name used in logs and event payloads.
func (c Class) String() string {
	switch c {
	case InvalidState:
		return "invalid_state"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Transient:
		return "transient"
	case Fatal:
		return "fatal"
	case Timeout:
		return "timeout"
	case PolicyViolation:
		return "policy_violation"
	default:
		return "unknown"
	}
}

// Error is a classified error with the operation that produced it.
type Error struct {
	Class  Class
	Op     string // e.g. "ticket.claim", "vm.spawn"
	Reason string // short human-readable reason
	Err    error  // wrapped cause, may be nil
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Reason != "":
		return fmt.Sprintf("%s: %s [%s]: %v", e.Op, e.Reason, e.Class, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Class, e.Err)
	default:
		return fmt.Sprintf("%s: %s [%s]", e.Op, e.Reason, e.Class)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error without a wrapped cause.
func New(class Class, op, reason string) *Error {
	return &Error{Class: class, Op: op, Reason: reason}
}

// Newf creates a classified error with a formatted reason.
func Newf(class Class, op, format string, args ...any) *Error {
	return &Error{Class: class, Op: op, Reason: fmt.Sprintf(format, args...)}
}

// Wrap classifies an existing error. A nil err returns nil so call sites
// can wrap unconditionally.
func Wrap(class Class, op, reason string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Class: class, Op: op, Reason: reason, Err: err}
}

// ClassOf returns the class of the outermost *Error in err's chain,
// or Unknown when err carries no classification.
func ClassOf(err error) Class {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Class
	}
	return Unknown
}

// Is reports whether err carries the given class.
func Is(err error, class Class) bool {
	return ClassOf(err) == class
}

// Retryable reports whether err should be retried with backoff.
// Only Transient and Timeout failures qualify.
func Retryable(err error) bool {
	c := ClassOf(err)
	return c == Transient || c == Timeout
}

// Reason returns the classified reason, falling back to err.Error().
func Reason(err error) string {
	var fe *Error
	if errors.As(err, &fe) && fe.Reason != "" {
		return fe.Reason
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
