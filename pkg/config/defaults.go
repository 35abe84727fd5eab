package config

// Defaults contains system-wide default configurations.
// These values are used when specific components don't specify their own.
type Defaults struct {
	// LLM provider used for clarification, drafting, and verification
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// VM backend the dispatcher spawns agent VMs through
	VMBackend string `yaml:"vm_backend,omitempty"`

	// Tenant assigned to sessions created without one
	Tenant string `yaml:"tenant,omitempty"`

	// Base branch for projects that don't configure one
	BaseBranch string `yaml:"base_branch,omitempty"`

	// Secret masking applied to logs, events, and notifications
	SecretMasking *SecretMaskingDefaults `yaml:"secret_masking,omitempty"`
}

// SecretMaskingDefaults holds outbound masking settings. Applied to
// anything that leaves the core: log records, bus events, webhooks.
type SecretMaskingDefaults struct {
	Enabled      bool   `yaml:"enabled"`
	PatternGroup string `yaml:"pattern_group"`
}
