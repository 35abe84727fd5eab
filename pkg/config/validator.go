package config

import (
	"fmt"
	"os"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate registries before the sections that reference them

	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateVMBackends(); err != nil {
		return fmt.Errorf("VM backend validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validateDispatch(); err != nil {
		return fmt.Errorf("dispatch validation failed: %w", err)
	}

	if err := v.validateLease(); err != nil {
		return fmt.Errorf("lease validation failed: %w", err)
	}

	if err := v.validateHITL(); err != nil {
		return fmt.Errorf("hitl validation failed: %w", err)
	}

	if err := v.validateBuild(); err != nil {
		return fmt.Errorf("build policy validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if provider.Type == "" {
			return NewValidationError("llm_provider", name, "type", ErrMissingRequiredField)
		}
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("%w: %s", ErrInvalidValue, provider.Type))
		}
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}
		if provider.MaxOutputTokens != 0 && provider.MaxOutputTokens < 256 {
			return NewValidationError("llm_provider", name, "max_output_tokens", fmt.Errorf("must be at least 256"))
		}
		if provider.RateLimitRPS < 0 {
			return NewValidationError("llm_provider", name, "rate_limit_rps", fmt.Errorf("must not be negative"))
		}

		// Warn-level check deferred to runtime: the key env var may be set
		// later in the deployment environment than at validation time, so
		// only hard-fail when the variable name itself is missing.
		if provider.APIKeyEnv == "" && provider.Type != LLMProviderTypeLocal {
			return NewValidationError("llm_provider", name, "api_key_env", ErrMissingRequiredField)
		}
	}

	return nil
}

func (v *ConfigValidator) validateVMBackends() error {
	for name, backend := range v.cfg.VMBackendRegistry.GetAll() {
		if backend.Address == "" {
			return NewValidationError("vm_backend", name, "address", ErrMissingRequiredField)
		}
		if backend.CPUs < 1 {
			return NewValidationError("vm_backend", name, "cpus", fmt.Errorf("must be at least 1"))
		}
		if backend.MemoryMB < 128 {
			return NewValidationError("vm_backend", name, "memory_mb", fmt.Errorf("must be at least 128"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults

	if !v.cfg.LLMProviderRegistry.Has(d.LLMProvider) {
		return NewValidationError("defaults", "defaults", "llm_provider",
			fmt.Errorf("%w: LLM provider '%s' not found", ErrInvalidReference, d.LLMProvider))
	}
	if !v.cfg.VMBackendRegistry.Has(d.VMBackend) {
		return NewValidationError("defaults", "defaults", "vm_backend",
			fmt.Errorf("%w: VM backend '%s' not found", ErrInvalidReference, d.VMBackend))
	}
	if d.SecretMasking != nil && d.SecretMasking.Enabled {
		groups := GetBuiltinConfig().PatternGroups
		if _, ok := groups[d.SecretMasking.PatternGroup]; !ok {
			return NewValidationError("defaults", "defaults", "secret_masking.pattern_group",
				fmt.Errorf("%w: pattern group '%s' not found", ErrInvalidReference, d.SecretMasking.PatternGroup))
		}
	}

	return nil
}

func (v *ConfigValidator) validateDispatch() error {
	d := v.cfg.Dispatch

	if d.MaxFleet < 1 {
		return NewValidationError("dispatch", "dispatch", "max_fleet", fmt.Errorf("must be at least 1"))
	}
	if d.TenantConcurrencyCap < 0 {
		return NewValidationError("dispatch", "dispatch", "tenant_concurrency_cap", fmt.Errorf("must not be negative"))
	}
	if d.TenantConcurrencyCap > d.MaxFleet {
		return NewValidationError("dispatch", "dispatch", "tenant_concurrency_cap",
			fmt.Errorf("must not exceed max_fleet (%d)", d.MaxFleet))
	}
	if d.PollInterval <= 0 {
		return NewValidationError("dispatch", "dispatch", "poll_interval", fmt.Errorf("must be positive"))
	}
	if d.PollIntervalJitter < 0 || d.PollIntervalJitter >= d.PollInterval {
		return NewValidationError("dispatch", "dispatch", "poll_interval_jitter",
			fmt.Errorf("must be non-negative and less than poll_interval"))
	}

	return nil
}

func (v *ConfigValidator) validateLease() error {
	l := v.cfg.Lease

	if l.Duration <= 0 {
		return NewValidationError("lease", "lease", "duration", fmt.Errorf("must be positive"))
	}
	if l.HeartbeatInterval <= 0 {
		return NewValidationError("lease", "lease", "heartbeat_interval", fmt.Errorf("must be positive"))
	}
	if l.HeartbeatInterval >= l.Duration {
		return NewValidationError("lease", "lease", "heartbeat_interval",
			fmt.Errorf("must be shorter than lease duration (%s)", l.Duration))
	}
	if l.StaleAfter < l.HeartbeatInterval {
		return NewValidationError("lease", "lease", "stale_after",
			fmt.Errorf("must be at least heartbeat_interval (%s)", l.HeartbeatInterval))
	}
	if l.ReaperInterval <= 0 {
		return NewValidationError("lease", "lease", "reaper_interval", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateHITL() error {
	h := v.cfg.HITL

	if h.MaxClarificationTurns < 1 {
		return NewValidationError("hitl", "hitl", "max_clarification_turns", fmt.Errorf("must be at least 1"))
	}
	if h.CoverageReadyThreshold < 0 || h.CoverageReadyThreshold > 100 {
		return NewValidationError("hitl", "hitl", "coverage_ready_threshold", fmt.Errorf("must be in [0,100]"))
	}
	if h.SkipCoverageFloor < 0 || h.SkipCoverageFloor > h.CoverageReadyThreshold {
		return NewValidationError("hitl", "hitl", "skip_coverage_floor",
			fmt.Errorf("must be in [0,%d]", h.CoverageReadyThreshold))
	}
	if h.MaxQuestionsPerTurn < 1 {
		return NewValidationError("hitl", "hitl", "max_questions_per_turn", fmt.Errorf("must be at least 1"))
	}

	sum := 0
	for category, weight := range h.CategoryWeights {
		if weight < 0 {
			return NewValidationError("hitl", "hitl", "category_weights",
				fmt.Errorf("weight for '%s' must not be negative", category))
		}
		sum += weight
	}
	if sum != 100 {
		return NewValidationError("hitl", "hitl", "category_weights",
			fmt.Errorf("weights must sum to 100, got %d", sum))
	}

	return nil
}

func (v *ConfigValidator) validateBuild() error {
	b := v.cfg.Build

	if b.MaxAttempts < 1 {
		return NewValidationError("build", "build", "max_attempts", fmt.Errorf("must be at least 1"))
	}
	if b.RetryBackoffBase <= 0 {
		return NewValidationError("build", "build", "retry_backoff_base", fmt.Errorf("must be positive"))
	}
	if b.RetryBackoffMax < b.RetryBackoffBase {
		return NewValidationError("build", "build", "retry_backoff_max",
			fmt.Errorf("must be at least retry_backoff_base (%s)", b.RetryBackoffBase))
	}

	return nil
}

// RequireEnv returns the value of the named environment variable or an
// error naming it. Used at adapter construction, not at config load, so
// deployments can inject credentials after validation.
func RequireEnv(name string) (string, error) {
	val := os.Getenv(name)
	if val == "" {
		return "", fmt.Errorf("%w: environment variable %s", ErrMissingRequiredField, name)
	}
	return val, nil
}
