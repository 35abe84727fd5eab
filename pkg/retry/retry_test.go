package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/fault"
)

func fastPolicy(attempts uint64) Policy {
	return Policy{
		MaxAttempts:     attempts,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
	}
}

func TestDoRetriesTransientUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(5), "test.op", func() error {
		calls++
		if calls < 3 {
			return fault.New(fault.Transient, "test.op", "flaky")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	calls := 0
	fatal := fault.New(fault.Fatal, "test.op", "broken input")
	err := Do(context.Background(), fastPolicy(5), "test.op", func() error {
		calls++
		return fatal
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls, "fatal errors must not be retried")
	assert.Equal(t, fault.Fatal, fault.ClassOf(err))
}

func TestDoExhaustsAttemptBudget(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(3), "test.op", func() error {
		calls++
		return fault.New(fault.Timeout, "test.op", "deadline")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, fault.Timeout, fault.ClassOf(err))
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, fastPolicy(100), "test.op", func() error {
		calls++
		if calls == 2 {
			cancel()
		}
		return fault.New(fault.Transient, "test.op", "still down")
	})

	require.Error(t, err)
	assert.LessOrEqual(t, calls, 3)
}

func TestDoUnclassifiedErrorsAreNotRetried(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(5), "test.op", func() error {
		calls++
		return errors.New("raw error")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls, "errors without a class default to non-retryable")
}
