package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeLLMProviders(t *testing.T) {
	builtin := map[string]LLMProviderConfig{
		"anthropic-default": {Type: LLMProviderTypeAnthropic, Model: "claude-sonnet-4-5", MaxOutputTokens: 8192},
		"openai-default":    {Type: LLMProviderTypeOpenAI, Model: "gpt-4o", MaxOutputTokens: 8192},
	}

	t.Run("no user providers keeps builtins", func(t *testing.T) {
		result := mergeLLMProviders(builtin, nil)
		require.Len(t, result, 2)
		assert.Equal(t, "claude-sonnet-4-5", result["anthropic-default"].Model)
	})

	t.Run("user provider overrides builtin wholesale", func(t *testing.T) {
		user := map[string]LLMProviderConfig{
			"anthropic-default": {Type: LLMProviderTypeAnthropic, Model: "claude-opus-4-1", MaxOutputTokens: 16384},
		}
		result := mergeLLMProviders(builtin, user)
		require.Len(t, result, 2)
		assert.Equal(t, "claude-opus-4-1", result["anthropic-default"].Model)
		assert.Equal(t, 16384, result["anthropic-default"].MaxOutputTokens)
		// Untouched builtin survives.
		assert.Equal(t, "gpt-4o", result["openai-default"].Model)
	})

	t.Run("user provider adds new entry", func(t *testing.T) {
		user := map[string]LLMProviderConfig{
			"local-llama": {Type: LLMProviderTypeLocal, Model: "llama-3.3-70b", BaseURL: "http://llm.internal:8000"},
		}
		result := mergeLLMProviders(builtin, user)
		require.Len(t, result, 3)
		assert.Equal(t, "http://llm.internal:8000", result["local-llama"].BaseURL)
	})

	t.Run("result is decoupled from inputs", func(t *testing.T) {
		result := mergeLLMProviders(builtin, nil)
		result["anthropic-default"].Model = "mutated"
		assert.Equal(t, "claude-sonnet-4-5", builtin["anthropic-default"].Model)
	})
}

func TestMergeVMBackends(t *testing.T) {
	builtin := map[string]VMBackendConfig{
		"firecracker-local": {Address: "localhost:9090", Image: "swarm-agent:latest", CPUs: 2, MemoryMB: 2048},
	}

	t.Run("user backend overrides builtin", func(t *testing.T) {
		user := map[string]VMBackendConfig{
			"firecracker-local": {Address: "fleet.internal:9090", Image: "swarm-agent:v2"},
		}
		result := mergeVMBackends(builtin, user)
		require.Len(t, result, 1)
		assert.Equal(t, "fleet.internal:9090", result["firecracker-local"].Address)
	})

	t.Run("defaults fill unset fields after merge", func(t *testing.T) {
		user := map[string]VMBackendConfig{
			"big": {Address: "big.internal:9090", Image: "swarm-agent:latest", MemoryMB: 8192},
		}
		result := mergeVMBackends(builtin, user)
		b := result["big"]
		assert.Equal(t, 8192, b.MemoryMB)
		assert.Equal(t, 2, b.CPUs)
		assert.Equal(t, 2*time.Minute, b.SpawnTimeout)
		assert.Equal(t, 30*time.Second, b.TeardownTimeout)
	})
}
