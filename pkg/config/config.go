package config

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application. It aggregates the resolved
// sections and the provider/backend registries.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Dispatcher fleet and polling configuration
	Dispatch *DispatchConfig

	// Lease, heartbeat, and reaper configuration
	Lease *LeaseConfig

	// Clarification and review loop configuration
	HITL *HITLConfig

	// Retry and backoff policy for ticket execution
	Build *BuildPolicy

	// Data retention and cleanup
	Retention *RetentionConfig

	// Outbound integrations
	VCS         *VCSConfig
	Verifier    *VerifierConfig
	Notify      *NotifyConfig
	RepoContext *RepoContextConfig

	// Dashboard origin used in notification links and WS origin checks
	DashboardURL     string
	AllowedWSOrigins []string

	// Component registries
	LLMProviderRegistry *LLMProviderRegistry
	VMBackendRegistry   *VMBackendRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	LLMProviders int
	VMBackends   int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	if c.VMBackendRegistry != nil {
		s.VMBackends = c.VMBackendRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// DefaultLLMProvider returns the configured default LLM provider.
func (c *Config) DefaultLLMProvider() (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(c.Defaults.LLMProvider)
}

// GetVMBackend retrieves a VM backend configuration by name.
// This is a convenience method that wraps VMBackendRegistry.Get().
func (c *Config) GetVMBackend(name string) (*VMBackendConfig, error) {
	return c.VMBackendRegistry.Get(name)
}

// DefaultVMBackend returns the configured default VM backend.
func (c *Config) DefaultVMBackend() (*VMBackendConfig, error) {
	return c.VMBackendRegistry.Get(c.Defaults.VMBackend)
}
