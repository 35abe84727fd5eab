// Package retry runs adapter calls under a bounded exponential backoff.
//
// Only failures classified Transient or Timeout are retried; everything
// else aborts the loop immediately and is returned as-is. This keeps
// retry decisions in one place instead of scattered across adapters.
package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/swarmstack/swarm/pkg/fault"
)

// Policy bounds one retry loop.
type Policy struct {
	// MaxAttempts is the total call budget including the first attempt.
	MaxAttempts uint64

	InitialInterval time.Duration
	MaxInterval     time.Duration

	// MaxElapsedTime caps the whole loop regardless of attempt count.
	// Zero means no elapsed-time cap.
	MaxElapsedTime time.Duration
}

// DefaultPolicy suits short adapter calls (VCS, verifier requests).
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:     3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
	}
}

// Do invokes fn under the policy, retrying retryable failures with
// exponential backoff. The op name is only used for logging.
func Do(ctx context.Context, p Policy, op string, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}
	b.MaxElapsedTime = p.MaxElapsedTime

	var policy backoff.BackOff = b
	if p.MaxAttempts > 0 {
		policy = backoff.WithMaxRetries(policy, p.MaxAttempts-1)
	}
	policy = backoff.WithContext(policy, ctx)

	wrapped := func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if !fault.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		slog.Debug("Retrying after transient failure",
			"op", op,
			"wait", wait,
			"error", err)
	}

	return backoff.RetryNotify(wrapped, policy, notify)
}
