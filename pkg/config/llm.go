package config

import (
	"fmt"
	"sync"
)

// LLMProviderConfig defines an LLM provider entry. Providers are resolved
// by name; the prompt sidecar receives the model and credentials and does
// the actual inference.
type LLMProviderConfig struct {
	// Provider type (required)
	Type LLMProviderType `yaml:"type" validate:"required"`

	// Model name (required)
	Model string `yaml:"model" validate:"required"`

	// Environment variable name for the API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL
	BaseURL string `yaml:"base_url,omitempty"`

	// Upper bound on generated tokens per call
	MaxOutputTokens int `yaml:"max_output_tokens,omitempty" validate:"omitempty,min=256"`

	// Client-side pacing. Zero RPS disables the limiter.
	RateLimitRPS   float64 `yaml:"rate_limit_rps,omitempty"`
	RateLimitBurst int     `yaml:"rate_limit_burst,omitempty"`
}

// LLMProviderRegistry stores LLM provider configurations in memory with thread-safe access
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new LLM provider registry
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &LLMProviderRegistry{
		providers: copied,
	}
}

// Get retrieves an LLM provider configuration by name (thread-safe)
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// GetAll returns all LLM provider configurations (thread-safe, returns copy)
func (r *LLMProviderRegistry) GetAll() map[string]*LLMProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*LLMProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Has checks if an LLM provider exists in the registry (thread-safe)
func (r *LLMProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of LLM providers in the registry (thread-safe)
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
