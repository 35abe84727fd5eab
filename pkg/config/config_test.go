package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		configDir: "/etc/swarm",
		Defaults: &Defaults{
			LLMProvider: "anthropic-default",
			VMBackend:   "firecracker-local",
			Tenant:      "default",
		},
		LLMProviderRegistry: NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"anthropic-default": {Type: LLMProviderTypeAnthropic, Model: "claude-sonnet-4-5"},
			"openai-default":    {Type: LLMProviderTypeOpenAI, Model: "gpt-4o"},
		}),
		VMBackendRegistry: NewVMBackendRegistry(map[string]*VMBackendConfig{
			"firecracker-local": {Address: "localhost:9090", Image: "swarm-agent:latest"},
		}),
	}
}

func TestConfigStats(t *testing.T) {
	cfg := testConfig()
	stats := cfg.Stats()
	assert.Equal(t, 2, stats.LLMProviders)
	assert.Equal(t, 1, stats.VMBackends)

	// Nil registries don't panic.
	empty := &Config{}
	assert.Equal(t, Stats{}, empty.Stats())
}

func TestConfigLookups(t *testing.T) {
	cfg := testConfig()

	assert.Equal(t, "/etc/swarm", cfg.ConfigDir())

	p, err := cfg.GetLLMProvider("openai-default")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", p.Model)

	_, err = cfg.GetLLMProvider("missing")
	assert.ErrorIs(t, err, ErrLLMProviderNotFound)

	b, err := cfg.GetVMBackend("firecracker-local")
	require.NoError(t, err)
	assert.Equal(t, "localhost:9090", b.Address)

	_, err = cfg.GetVMBackend("missing")
	assert.ErrorIs(t, err, ErrVMBackendNotFound)
}

func TestConfigDefaultResolution(t *testing.T) {
	cfg := testConfig()

	p, err := cfg.DefaultLLMProvider()
	require.NoError(t, err)
	assert.Equal(t, LLMProviderTypeAnthropic, p.Type)

	b, err := cfg.DefaultVMBackend()
	require.NoError(t, err)
	assert.Equal(t, "swarm-agent:latest", b.Image)

	// A default pointing at a missing entry surfaces the registry error.
	cfg.Defaults.LLMProvider = "gone"
	_, err = cfg.DefaultLLMProvider()
	assert.ErrorIs(t, err, ErrLLMProviderNotFound)
}

func TestRegistryIsolation(t *testing.T) {
	providers := map[string]*LLMProviderConfig{
		"a": {Type: LLMProviderTypeAnthropic, Model: "m"},
	}
	reg := NewLLMProviderRegistry(providers)

	// Mutating the source map after construction must not affect the registry.
	delete(providers, "a")
	assert.True(t, reg.Has("a"))
	assert.Equal(t, 1, reg.Len())

	// GetAll returns a copy.
	all := reg.GetAll()
	delete(all, "a")
	assert.True(t, reg.Has("a"))
}
