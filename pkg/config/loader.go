package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// SwarmYAMLConfig represents the complete swarm.yaml file structure
type SwarmYAMLConfig struct {
	System   *SystemYAMLConfig   `yaml:"system"`
	Defaults *Defaults           `yaml:"defaults"`
	Dispatch *DispatchYAMLConfig `yaml:"dispatch"`
	Lease    *LeaseYAMLConfig    `yaml:"lease"`
	HITL     *HITLYAMLConfig     `yaml:"hitl"`
	Build    *BuildYAMLConfig    `yaml:"build"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	DashboardURL     string                 `yaml:"dashboard_url"`
	AllowedWSOrigins []string               `yaml:"allowed_ws_origins"`
	VCS              *VCSYAMLConfig         `yaml:"vcs"`
	Verifier         *VerifierYAMLConfig    `yaml:"verifier"`
	Notify           *NotifyYAMLConfig      `yaml:"notify"`
	RepoContext      *RepoContextYAMLConfig `yaml:"repo_context"`
	Retention        *RetentionYAMLConfig   `yaml:"retention"`
}

// Duration values in YAML are strings ("30s", "15m") parsed with
// time.ParseDuration; invalid values log a warning and keep the default.

// DispatchYAMLConfig holds dispatcher settings from YAML.
type DispatchYAMLConfig struct {
	MaxFleet                int    `yaml:"max_fleet,omitempty"`
	TenantConcurrencyCap    *int   `yaml:"tenant_concurrency_cap,omitempty"`
	PollInterval            string `yaml:"poll_interval,omitempty"`
	PollIntervalJitter      string `yaml:"poll_interval_jitter,omitempty"`
	GracefulShutdownTimeout string `yaml:"graceful_shutdown_timeout,omitempty"`
}

// LeaseYAMLConfig holds lease settings from YAML.
type LeaseYAMLConfig struct {
	Duration          string `yaml:"duration,omitempty"`
	HeartbeatInterval string `yaml:"heartbeat_interval,omitempty"`
	StaleAfter        string `yaml:"stale_after,omitempty"`
	ReaperInterval    string `yaml:"reaper_interval,omitempty"`
}

// HITLYAMLConfig holds clarification loop settings from YAML.
type HITLYAMLConfig struct {
	MaxClarificationTurns  int            `yaml:"max_clarification_turns,omitempty"`
	CoverageReadyThreshold *int           `yaml:"coverage_ready_threshold,omitempty"`
	SkipCoverageFloor      *int           `yaml:"skip_coverage_floor,omitempty"`
	MaxQuestionsPerTurn    int            `yaml:"max_questions_per_turn,omitempty"`
	DraftTimeout           string         `yaml:"draft_timeout,omitempty"`
	CategoryWeights        map[string]int `yaml:"category_weights,omitempty"`
}

// BuildYAMLConfig holds retry policy settings from YAML.
type BuildYAMLConfig struct {
	MaxAttempts      int    `yaml:"max_attempts,omitempty"`
	RetryBackoffBase string `yaml:"retry_backoff_base,omitempty"`
	RetryBackoffMax  string `yaml:"retry_backoff_max,omitempty"`
}

// VCSYAMLConfig holds version control settings from YAML.
type VCSYAMLConfig struct {
	Provider   string `yaml:"provider,omitempty"`
	TokenEnv   string `yaml:"token_env,omitempty"` // Defaults to "GITHUB_TOKEN" if omitted
	APIBaseURL string `yaml:"api_base_url,omitempty"`
}

// VerifierYAMLConfig holds verification runner settings from YAML.
type VerifierYAMLConfig struct {
	BaseURL        string `yaml:"base_url,omitempty"`
	TokenEnv       string `yaml:"token_env,omitempty"`
	RequestTimeout string `yaml:"request_timeout,omitempty"`
}

// NotifyYAMLConfig holds webhook notification settings from YAML.
type NotifyYAMLConfig struct {
	Enabled       *bool  `yaml:"enabled,omitempty"`
	WebhookURLEnv string `yaml:"webhook_url_env,omitempty"`
}

// RepoContextYAMLConfig holds repository context settings from YAML.
type RepoContextYAMLConfig struct {
	CacheTTL       string   `yaml:"cache_ttl,omitempty"`
	AllowedDomains []string `yaml:"allowed_domains,omitempty"`
	MaxFileBytes   int64    `yaml:"max_file_bytes,omitempty"`
}

// RetentionYAMLConfig holds retention settings from YAML.
type RetentionYAMLConfig struct {
	SessionRetentionDays int    `yaml:"session_retention_days,omitempty"`
	EventTTL             string `yaml:"event_ttl,omitempty"`
	CleanupInterval      string `yaml:"cleanup_interval,omitempty"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// VMBackendsYAMLConfig represents the complete vm-backends.yaml file structure
type VMBackendsYAMLConfig struct {
	VMBackends map[string]VMBackendYAMLConfig `yaml:"vm_backends"`
}

// VMBackendYAMLConfig holds one backend entry from YAML.
type VMBackendYAMLConfig struct {
	Address         string `yaml:"address"`
	Image           string `yaml:"image,omitempty"`
	CPUs            int    `yaml:"cpus,omitempty"`
	MemoryMB        int    `yaml:"memory_mb,omitempty"`
	SpawnTimeout    string `yaml:"spawn_timeout,omitempty"`
	TeardownTimeout string `yaml:"teardown_timeout,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Build in-memory registries
//  6. Apply default values
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"vm_backends", stats.VMBackends,
		"max_fleet", cfg.Dispatch.MaxFleet)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load swarm.yaml (system, defaults, dispatch, lease, hitl, build)
	swarmConfig, err := loader.loadSwarmYAML()
	if err != nil {
		return nil, NewLoadError("swarm.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Load vm-backends.yaml (optional; built-in local backend otherwise)
	vmBackends, err := loader.loadVMBackendsYAML()
	if err != nil {
		return nil, NewLoadError("vm-backends.yaml", err)
	}

	// 4. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 5. Merge built-in + user-defined components (user overrides built-in)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)
	vmBackendsMerged := mergeVMBackends(builtin.VMBackends, vmBackends)

	// 6. Build registries
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)
	vmBackendRegistry := NewVMBackendRegistry(vmBackendsMerged)

	// 7. Resolve defaults (YAML overrides built-in)
	defaults := swarmConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.LLMProvider == "" {
		defaults.LLMProvider = "anthropic-default"
	}
	if defaults.VMBackend == "" {
		defaults.VMBackend = "firecracker-local"
	}
	if defaults.Tenant == "" {
		defaults.Tenant = builtin.DefaultTenant
	}
	if defaults.BaseBranch == "" {
		defaults.BaseBranch = builtin.DefaultBranch
	}
	if defaults.SecretMasking == nil {
		defaults.SecretMasking = &SecretMaskingDefaults{
			Enabled:      true,
			PatternGroup: "security",
		}
	}

	// 8. Resolve tunable sections over built-in defaults
	hitlConfig, err := resolveHITLConfig(swarmConfig.HITL)
	if err != nil {
		return nil, err
	}

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Dispatch:            resolveDispatchConfig(swarmConfig.Dispatch),
		Lease:               resolveLeaseConfig(swarmConfig.Lease),
		HITL:                hitlConfig,
		Build:               resolveBuildPolicy(swarmConfig.Build),
		Retention:           resolveRetentionConfig(swarmConfig.System),
		VCS:                 resolveVCSConfig(swarmConfig.System),
		Verifier:            resolveVerifierConfig(swarmConfig.System),
		Notify:              resolveNotifyConfig(swarmConfig.System),
		RepoContext:         resolveRepoContextConfig(swarmConfig.System),
		DashboardURL:        resolveDashboardURL(swarmConfig.System),
		AllowedWSOrigins:    resolveAllowedWSOrigins(swarmConfig.System),
		LLMProviderRegistry: llmProviderRegistry,
		VMBackendRegistry:   vmBackendRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution
	// errors, letting the YAML parser produce the clearer message.
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadSwarmYAML() (*SwarmYAMLConfig, error) {
	var config SwarmYAMLConfig

	if err := l.loadYAML("swarm.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}

func (l *configLoader) loadVMBackendsYAML() (map[string]VMBackendConfig, error) {
	var config VMBackendsYAMLConfig

	// Initialize map to avoid nil map
	config.VMBackends = make(map[string]VMBackendYAMLConfig)

	// The file is optional; the built-in local backend is enough to run
	if err := l.loadYAML("vm-backends.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return nil, nil
		}
		return nil, err
	}

	backends := make(map[string]VMBackendConfig, len(config.VMBackends))
	for name, raw := range config.VMBackends {
		backends[name] = VMBackendConfig{
			Address:         raw.Address,
			Image:           raw.Image,
			CPUs:            raw.CPUs,
			MemoryMB:        raw.MemoryMB,
			SpawnTimeout:    parseDurationOrDefault("vm_backends."+name, "spawn_timeout", raw.SpawnTimeout, 0),
			TeardownTimeout: parseDurationOrDefault("vm_backends."+name, "teardown_timeout", raw.TeardownTimeout, 0),
		}
	}

	return backends, nil
}

// parseDurationOrDefault parses a duration string from YAML, logging a
// warning and keeping the default on bad input. Empty input is not an
// error; it means "use the default".
func parseDurationOrDefault(section, field, raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("Invalid duration in config, using default",
			"section", section,
			"field", field,
			"value", raw,
			"default", def,
			"error", err)
		return def
	}
	return d
}

// resolveDispatchConfig resolves dispatcher configuration from YAML, applying defaults.
func resolveDispatchConfig(raw *DispatchYAMLConfig) *DispatchConfig {
	cfg := DefaultDispatchConfig()

	if raw == nil {
		return cfg
	}

	if raw.MaxFleet > 0 {
		cfg.MaxFleet = raw.MaxFleet
	}
	if raw.TenantConcurrencyCap != nil {
		cfg.TenantConcurrencyCap = *raw.TenantConcurrencyCap
	}
	cfg.PollInterval = parseDurationOrDefault("dispatch", "poll_interval", raw.PollInterval, cfg.PollInterval)
	cfg.PollIntervalJitter = parseDurationOrDefault("dispatch", "poll_interval_jitter", raw.PollIntervalJitter, cfg.PollIntervalJitter)
	cfg.GracefulShutdownTimeout = parseDurationOrDefault("dispatch", "graceful_shutdown_timeout", raw.GracefulShutdownTimeout, cfg.GracefulShutdownTimeout)

	return cfg
}

// resolveLeaseConfig resolves lease configuration from YAML, applying defaults.
func resolveLeaseConfig(raw *LeaseYAMLConfig) *LeaseConfig {
	cfg := DefaultLeaseConfig()

	if raw == nil {
		return cfg
	}

	cfg.Duration = parseDurationOrDefault("lease", "duration", raw.Duration, cfg.Duration)
	cfg.HeartbeatInterval = parseDurationOrDefault("lease", "heartbeat_interval", raw.HeartbeatInterval, cfg.HeartbeatInterval)
	cfg.StaleAfter = parseDurationOrDefault("lease", "stale_after", raw.StaleAfter, cfg.StaleAfter)
	cfg.ReaperInterval = parseDurationOrDefault("lease", "reaper_interval", raw.ReaperInterval, cfg.ReaperInterval)

	return cfg
}

// resolveHITLConfig resolves clarification loop configuration from YAML,
// applying defaults. Partial category_weights merge over the built-in
// weights; the validator enforces that the result sums to 100.
func resolveHITLConfig(raw *HITLYAMLConfig) (*HITLConfig, error) {
	cfg := DefaultHITLConfig()

	if raw == nil {
		return cfg, nil
	}

	if raw.MaxClarificationTurns > 0 {
		cfg.MaxClarificationTurns = raw.MaxClarificationTurns
	}
	if raw.CoverageReadyThreshold != nil {
		cfg.CoverageReadyThreshold = *raw.CoverageReadyThreshold
	}
	if raw.SkipCoverageFloor != nil {
		cfg.SkipCoverageFloor = *raw.SkipCoverageFloor
	}
	if raw.MaxQuestionsPerTurn > 0 {
		cfg.MaxQuestionsPerTurn = raw.MaxQuestionsPerTurn
	}
	cfg.DraftTimeout = parseDurationOrDefault("hitl", "draft_timeout", raw.DraftTimeout, cfg.DraftTimeout)

	if len(raw.CategoryWeights) > 0 {
		if err := mergo.Merge(&cfg.CategoryWeights, raw.CategoryWeights, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge category weights: %w", err)
		}
	}

	return cfg, nil
}

// resolveBuildPolicy resolves retry policy from YAML, applying defaults.
func resolveBuildPolicy(raw *BuildYAMLConfig) *BuildPolicy {
	cfg := DefaultBuildPolicy()

	if raw == nil {
		return cfg
	}

	if raw.MaxAttempts > 0 {
		cfg.MaxAttempts = raw.MaxAttempts
	}
	cfg.RetryBackoffBase = parseDurationOrDefault("build", "retry_backoff_base", raw.RetryBackoffBase, cfg.RetryBackoffBase)
	cfg.RetryBackoffMax = parseDurationOrDefault("build", "retry_backoff_max", raw.RetryBackoffMax, cfg.RetryBackoffMax)

	return cfg
}

// resolveVCSConfig resolves VCS configuration from system YAML, applying defaults.
func resolveVCSConfig(sys *SystemYAMLConfig) *VCSConfig {
	cfg := &VCSConfig{
		Provider: VCSProviderGitHub,
		TokenEnv: "GITHUB_TOKEN",
	}

	if sys == nil || sys.VCS == nil {
		return cfg
	}

	v := sys.VCS
	if v.Provider != "" {
		cfg.Provider = VCSProviderType(v.Provider)
	}
	if v.TokenEnv != "" {
		cfg.TokenEnv = v.TokenEnv
	}
	if v.APIBaseURL != "" {
		cfg.APIBaseURL = v.APIBaseURL
	}

	return cfg
}

// resolveVerifierConfig resolves verifier configuration from system YAML, applying defaults.
func resolveVerifierConfig(sys *SystemYAMLConfig) *VerifierConfig {
	cfg := &VerifierConfig{
		TokenEnv:       "VERIFIER_TOKEN",
		RequestTimeout: 15 * time.Minute,
	}

	if sys == nil || sys.Verifier == nil {
		return cfg
	}

	v := sys.Verifier
	if v.BaseURL != "" {
		cfg.BaseURL = v.BaseURL
	}
	if v.TokenEnv != "" {
		cfg.TokenEnv = v.TokenEnv
	}
	cfg.RequestTimeout = parseDurationOrDefault("verifier", "request_timeout", v.RequestTimeout, cfg.RequestTimeout)

	return cfg
}

// resolveNotifyConfig resolves notification configuration from system YAML, applying defaults.
func resolveNotifyConfig(sys *SystemYAMLConfig) *NotifyConfig {
	cfg := &NotifyConfig{
		Enabled:       false,
		WebhookURLEnv: "SWARM_WEBHOOK_URL",
	}

	if sys == nil || sys.Notify == nil {
		return cfg
	}

	n := sys.Notify
	if n.Enabled != nil {
		cfg.Enabled = *n.Enabled
	}
	if n.WebhookURLEnv != "" {
		cfg.WebhookURLEnv = n.WebhookURLEnv
	}

	return cfg
}

// resolveRepoContextConfig resolves repo context configuration from system YAML, applying defaults.
func resolveRepoContextConfig(sys *SystemYAMLConfig) *RepoContextConfig {
	cfg := &RepoContextConfig{
		CacheTTL:       1 * time.Minute,
		AllowedDomains: []string{"github.com", "raw.githubusercontent.com"},
		MaxFileBytes:   256 * 1024,
	}

	if sys == nil || sys.RepoContext == nil {
		return cfg
	}

	rc := sys.RepoContext
	cfg.CacheTTL = parseDurationOrDefault("repo_context", "cache_ttl", rc.CacheTTL, cfg.CacheTTL)
	if len(rc.AllowedDomains) > 0 {
		cfg.AllowedDomains = rc.AllowedDomains
	}
	if rc.MaxFileBytes > 0 {
		cfg.MaxFileBytes = rc.MaxFileBytes
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.SessionRetentionDays > 0 {
		cfg.SessionRetentionDays = r.SessionRetentionDays
	}
	cfg.EventTTL = parseDurationOrDefault("retention", "event_ttl", r.EventTTL, cfg.EventTTL)
	cfg.CleanupInterval = parseDurationOrDefault("retention", "cleanup_interval", r.CleanupInterval, cfg.CleanupInterval)

	return cfg
}

// resolveDashboardURL resolves the dashboard base URL from system YAML, applying defaults.
func resolveDashboardURL(sys *SystemYAMLConfig) string {
	if sys != nil && sys.DashboardURL != "" {
		return sys.DashboardURL
	}
	return "http://localhost:5173"
}

// resolveAllowedWSOrigins returns additional WebSocket origin patterns from system YAML.
func resolveAllowedWSOrigins(sys *SystemYAMLConfig) []string {
	if sys != nil {
		return sys.AllowedWSOrigins
	}
	return nil
}
