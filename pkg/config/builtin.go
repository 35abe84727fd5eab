package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data: the default LLM
// providers, VM backends, and masking patterns a bare install starts with.
type BuiltinConfig struct {
	LLMProviders    map[string]LLMProviderConfig
	VMBackends      map[string]VMBackendConfig
	MaskingPatterns map[string]MaskingPattern
	PatternGroups   map[string][]string
	DefaultTenant   string
	DefaultBranch   string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		LLMProviders:    initBuiltinLLMProviders(),
		VMBackends:      initBuiltinVMBackends(),
		MaskingPatterns: initBuiltinMaskingPatterns(),
		PatternGroups:   initBuiltinPatternGroups(),
		DefaultTenant:   "default",
		DefaultBranch:   "main",
	}
}

func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"anthropic-default": {
			Type:            LLMProviderTypeAnthropic,
			Model:           "claude-sonnet-4-5",
			APIKeyEnv:       "ANTHROPIC_API_KEY",
			MaxOutputTokens: 8192,
			RateLimitRPS:    2,
			RateLimitBurst:  4,
		},
		"openai-default": {
			Type:            LLMProviderTypeOpenAI,
			Model:           "gpt-4o",
			APIKeyEnv:       "OPENAI_API_KEY",
			MaxOutputTokens: 8192,
			RateLimitRPS:    2,
			RateLimitBurst:  4,
		},
	}
}

func initBuiltinVMBackends() map[string]VMBackendConfig {
	return map[string]VMBackendConfig{
		"firecracker-local": {
			Address:  "localhost:9090",
			Image:    "swarm-agent:latest",
			CPUs:     2,
			MemoryMB: 2048,
		},
	}
}

// initBuiltinMaskingPatterns returns regex patterns applied to outbound
// text (logs, events, webhooks) before it leaves the core.
func initBuiltinMaskingPatterns() map[string]MaskingPattern {
	return map[string]MaskingPattern{
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
			Replacement: `"api_key": "__MASKED_API_KEY__"`,
			Description: "API keys",
		},
		"password": {
			Pattern:     `(?i)(?:password|pwd|pass)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
			Replacement: `"password": "__MASKED_PASSWORD__"`,
			Description: "Passwords",
		},
		"token": {
			Pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"token": "__MASKED_TOKEN__"`,
			Description: "Access tokens",
		},
		"github_pat": {
			Pattern:     `\b(?:ghp|gho|ghu|ghs|ghr)_[A-Za-z0-9]{36,}\b`,
			Replacement: `__MASKED_GITHUB_TOKEN__`,
			Description: "GitHub personal access tokens",
		},
		"certificate": {
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: `__MASKED_CERTIFICATE__`,
			Description: "PEM blocks, including private keys",
		},
		"ssh_key": {
			Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			Replacement: `__MASKED_SSH_KEY__`,
			Description: "SSH public keys",
		},
	}
}

// initBuiltinPatternGroups returns predefined groups of masking patterns.
func initBuiltinPatternGroups() map[string][]string {
	return map[string][]string{
		"security": {
			"api_key",
			"password",
			"token",
			"github_pat",
			"certificate",
			"ssh_key",
		},
		"credentials": {
			"api_key",
			"password",
			"token",
		},
	}
}
