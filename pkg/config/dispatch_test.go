package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDispatchConfig(t *testing.T) {
	cfg := DefaultDispatchConfig()
	assert.Equal(t, 10, cfg.MaxFleet)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.PollIntervalJitter)
	assert.Equal(t, 30*time.Second, cfg.GracefulShutdownTimeout)
}

func TestTenantCap(t *testing.T) {
	cfg := &DispatchConfig{MaxFleet: 10}
	// Zero inherits the fleet ceiling.
	assert.Equal(t, 10, cfg.TenantCap())

	cfg.TenantConcurrencyCap = 3
	assert.Equal(t, 3, cfg.TenantCap())
}

func TestDefaultLeaseConfig(t *testing.T) {
	cfg := DefaultLeaseConfig()
	assert.Equal(t, 30*time.Minute, cfg.Duration)
	assert.Equal(t, 30*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 5*time.Minute, cfg.StaleAfter)
	assert.Equal(t, time.Minute, cfg.ReaperInterval)
}

func TestBuildPolicyBackoff(t *testing.T) {
	p := &BuildPolicy{
		MaxAttempts:      3,
		RetryBackoffBase: 30 * time.Second,
		RetryBackoffMax:  10 * time.Minute,
	}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 30 * time.Second},
		{2, time.Minute},
		{3, 2 * time.Minute},
		{5, 8 * time.Minute},
		{6, 10 * time.Minute},  // capped
		{20, 10 * time.Minute}, // stays capped, no overflow
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Backoff(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestDefaultHITLConfig(t *testing.T) {
	cfg := DefaultHITLConfig()
	assert.Equal(t, 10, cfg.MaxClarificationTurns)
	assert.Equal(t, 80, cfg.CoverageReadyThreshold)
	assert.Equal(t, 50, cfg.SkipCoverageFloor)

	total := 0
	for _, w := range cfg.CategoryWeights {
		total += w
	}
	assert.Equal(t, 100, total, "category weights must sum to 100")
}
