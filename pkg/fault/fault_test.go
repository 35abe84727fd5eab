package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassOf(t *testing.T) {
	t.Run("direct fault error", func(t *testing.T) {
		err := New(Conflict, "ticket.claim", "claim raced")
		assert.Equal(t, Conflict, ClassOf(err))
	})

	t.Run("wrapped fault error", func(t *testing.T) {
		inner := New(Transient, "vm.spawn", "backend unreachable")
		outer := fmt.Errorf("dispatch failed: %w", inner)
		assert.Equal(t, Transient, ClassOf(outer))
	})

	t.Run("unclassified error", func(t *testing.T) {
		assert.Equal(t, Unknown, ClassOf(errors.New("plain")))
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, Unknown, ClassOf(nil))
	})
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(Transient, "vcs.push", "push failed", nil))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(New(Transient, "llm.complete", "upstream 503")))
	assert.True(t, Retryable(New(Timeout, "verifier.verify", "deadline exceeded")))
	assert.False(t, Retryable(New(Fatal, "ticketgen.activate", "dependency cycle")))
	assert.False(t, Retryable(New(InvalidState, "session.approve", "not reviewing")))
	assert.False(t, Retryable(errors.New("plain")))
}

func TestErrorString(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Transient, "vm.spawn", "backend unreachable", cause)
	assert.Contains(t, err.Error(), "vm.spawn")
	assert.Contains(t, err.Error(), "transient")
	assert.Contains(t, err.Error(), "connection refused")

	// Unwrap preserves the cause for errors.Is checks.
	assert.True(t, errors.Is(err, cause))
}

func TestReason(t *testing.T) {
	assert.Equal(t, "claim raced", Reason(New(Conflict, "ticket.claim", "claim raced")))
	assert.Equal(t, "plain", Reason(errors.New("plain")))
	assert.Equal(t, "", Reason(nil))
}
