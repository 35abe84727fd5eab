package config

import "time"

// DispatchConfig controls how the coordinator polls for ready tickets and
// how much concurrent agent work it allows.
type DispatchConfig struct {
	// MaxFleet is the hard ceiling of concurrently leased tickets (and
	// therefore running agent VMs) across the whole deployment.
	MaxFleet int

	// TenantConcurrencyCap limits in-flight tickets per tenant.
	// Zero means "inherit MaxFleet" (single-tenant deployments).
	TenantConcurrencyCap int

	// PollInterval is the base interval for scanning ready tickets when
	// the fleet has free capacity.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// dispatches to settle during shutdown. Leases outlive the process,
	// so this only covers VM spawn calls already underway.
	GracefulShutdownTimeout time.Duration
}

// DefaultDispatchConfig returns the built-in dispatcher defaults.
func DefaultDispatchConfig() *DispatchConfig {
	return &DispatchConfig{
		MaxFleet:                10,
		TenantConcurrencyCap:    0,
		PollInterval:            5 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}

// TenantCap resolves the effective per-tenant ceiling.
func (c *DispatchConfig) TenantCap() int {
	if c.TenantConcurrencyCap > 0 {
		return c.TenantConcurrencyCap
	}
	return c.MaxFleet
}

// LeaseConfig controls ticket lease lifetimes and the reaper that reclaims
// work from dead agents.
type LeaseConfig struct {
	// Duration is how long a claim holds a ticket without extension.
	Duration time.Duration

	// HeartbeatInterval is how often agents are expected to check in.
	// Served to agents in claim responses.
	HeartbeatInterval time.Duration

	// StaleAfter is how long a ticket may go without a heartbeat before
	// the reaper treats its agent as dead, even if the lease itself has
	// not expired yet.
	StaleAfter time.Duration

	// ReaperInterval is how often the reaper scans for expired leases
	// and stale heartbeats.
	ReaperInterval time.Duration
}

// DefaultLeaseConfig returns the built-in lease defaults.
func DefaultLeaseConfig() *LeaseConfig {
	return &LeaseConfig{
		Duration:          30 * time.Minute,
		HeartbeatInterval: 30 * time.Second,
		StaleAfter:        5 * time.Minute,
		ReaperInterval:    1 * time.Minute,
	}
}

// BuildPolicy controls retry behavior for failed ticket attempts.
type BuildPolicy struct {
	// MaxAttempts is the default attempt budget per ticket. Projects may
	// not raise it above this value.
	MaxAttempts int

	// RetryBackoffBase is the not_before delay after the first failure;
	// each subsequent failure doubles it up to RetryBackoffMax.
	RetryBackoffBase time.Duration
	RetryBackoffMax  time.Duration
}

// DefaultBuildPolicy returns the built-in retry defaults.
func DefaultBuildPolicy() *BuildPolicy {
	return &BuildPolicy{
		MaxAttempts:      3,
		RetryBackoffBase: 30 * time.Second,
		RetryBackoffMax:  10 * time.Minute,
	}
}

// Backoff returns the not_before delay to apply after the given failed
// attempt count (1-based).
func (p *BuildPolicy) Backoff(attempt int) time.Duration {
	d := p.RetryBackoffBase
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= p.RetryBackoffMax {
			return p.RetryBackoffMax
		}
	}
	if d > p.RetryBackoffMax {
		return p.RetryBackoffMax
	}
	return d
}
