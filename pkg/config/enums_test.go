package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLLMProviderTypeIsValid(t *testing.T) {
	valid := []LLMProviderType{
		LLMProviderTypeAnthropic,
		LLMProviderTypeOpenAI,
		LLMProviderTypeGoogle,
		LLMProviderTypeLocal,
	}
	for _, typ := range valid {
		assert.True(t, typ.IsValid(), "%s should be valid", typ)
	}

	invalid := []LLMProviderType{"", "azure", "Anthropic", "ANTHROPIC"}
	for _, typ := range invalid {
		assert.False(t, typ.IsValid(), "%q should be invalid", typ)
	}
}

func TestVCSProviderTypeIsValid(t *testing.T) {
	assert.True(t, VCSProviderGitHub.IsValid())
	assert.True(t, VCSProviderGitLab.IsValid())

	assert.False(t, VCSProviderType("").IsValid())
	assert.False(t, VCSProviderType("bitbucket").IsValid())
	assert.False(t, VCSProviderType("GitHub").IsValid())
}
