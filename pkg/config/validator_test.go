package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig builds a config that passes ValidateAll, for tests to
// mutate one field at a time.
func validTestConfig() *Config {
	builtin := GetBuiltinConfig()
	return &Config{
		Defaults: &Defaults{
			LLMProvider: "anthropic-default",
			VMBackend:   "firecracker-local",
			Tenant:      "default",
			BaseBranch:  "main",
			SecretMasking: &SecretMaskingDefaults{
				Enabled:      true,
				PatternGroup: "security",
			},
		},
		Dispatch:            DefaultDispatchConfig(),
		Lease:               DefaultLeaseConfig(),
		HITL:                DefaultHITLConfig(),
		Build:               DefaultBuildPolicy(),
		Retention:           DefaultRetentionConfig(),
		LLMProviderRegistry: NewLLMProviderRegistry(mergeLLMProviders(builtin.LLMProviders, nil)),
		VMBackendRegistry:   NewVMBackendRegistry(mergeVMBackends(builtin.VMBackends, nil)),
	}
}

func TestValidateAllAcceptsDefaults(t *testing.T) {
	cfg := validTestConfig()
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateDispatch(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero max_fleet",
			mutate:  func(c *Config) { c.Dispatch.MaxFleet = 0 },
			wantErr: "max_fleet",
		},
		{
			name:    "tenant cap above fleet",
			mutate:  func(c *Config) { c.Dispatch.TenantConcurrencyCap = c.Dispatch.MaxFleet + 1 },
			wantErr: "tenant_concurrency_cap",
		},
		{
			name:    "negative poll interval",
			mutate:  func(c *Config) { c.Dispatch.PollInterval = -time.Second },
			wantErr: "poll_interval",
		},
		{
			name:    "jitter not below interval",
			mutate:  func(c *Config) { c.Dispatch.PollIntervalJitter = c.Dispatch.PollInterval },
			wantErr: "poll_interval_jitter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateLease(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "heartbeat longer than lease",
			mutate:  func(c *Config) { c.Lease.HeartbeatInterval = c.Lease.Duration },
			wantErr: "heartbeat_interval",
		},
		{
			name:    "stale threshold below heartbeat",
			mutate:  func(c *Config) { c.Lease.StaleAfter = c.Lease.HeartbeatInterval / 2 },
			wantErr: "stale_after",
		},
		{
			name:    "zero reaper interval",
			mutate:  func(c *Config) { c.Lease.ReaperInterval = 0 },
			wantErr: "reaper_interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateHITL(t *testing.T) {
	t.Run("weights must sum to 100", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.HITL.CategoryWeights[CategoryFeatures] += 5
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sum to 100")
	})

	t.Run("skip floor above ready threshold", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.HITL.SkipCoverageFloor = cfg.HITL.CoverageReadyThreshold + 1
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "skip_coverage_floor")
	})

	t.Run("turn budget at least one", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.HITL.MaxClarificationTurns = 0
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_clarification_turns")
	})
}

func TestValidateRegistries(t *testing.T) {
	t.Run("provider without model", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"broken": {Type: LLMProviderTypeAnthropic, APIKeyEnv: "KEY"},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model")
	})

	t.Run("provider with unknown type", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"broken": {Type: "watson", Model: "m1", APIKeyEnv: "KEY"},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("local provider needs no api key env", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Defaults.LLMProvider = "ollama"
		cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"ollama": {Type: LLMProviderTypeLocal, Model: "llama3", BaseURL: "http://localhost:11434"},
		})
		require.NoError(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("backend without address", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Defaults.VMBackend = "broken"
		cfg.VMBackendRegistry = NewVMBackendRegistry(map[string]*VMBackendConfig{
			"broken": {CPUs: 2, MemoryMB: 1024},
		})
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "address")
	})
}

func TestValidateDefaultsCrossReferences(t *testing.T) {
	t.Run("unknown default llm provider", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Defaults.LLMProvider = "nope"
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("unknown default vm backend", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Defaults.VMBackend = "nope"
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("unknown masking group", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Defaults.SecretMasking.PatternGroup = "nope"
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestBuildPolicyBackoff(t *testing.T) {
	p := DefaultBuildPolicy()

	assert.Equal(t, 30*time.Second, p.Backoff(1))
	assert.Equal(t, 1*time.Minute, p.Backoff(2))
	assert.Equal(t, 2*time.Minute, p.Backoff(3))

	// Caps at the configured max regardless of attempt count
	assert.Equal(t, p.RetryBackoffMax, p.Backoff(10))
	assert.Equal(t, p.RetryBackoffMax, p.Backoff(100))
}

func TestDispatchTenantCap(t *testing.T) {
	d := DefaultDispatchConfig()
	assert.Equal(t, d.MaxFleet, d.TenantCap(), "zero cap inherits max_fleet")

	d.TenantConcurrencyCap = 3
	assert.Equal(t, 3, d.TenantCap())
}
