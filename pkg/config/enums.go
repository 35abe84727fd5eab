package config

// LLMProviderType defines supported LLM providers
type LLMProviderType string

const (
	// LLMProviderTypeAnthropic is Anthropic Claude API
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
	// LLMProviderTypeOpenAI is OpenAI API
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeGoogle is Google Gemini API
	LLMProviderTypeGoogle LLMProviderType = "google"
	// LLMProviderTypeLocal is a self-hosted OpenAI-compatible endpoint
	LLMProviderTypeLocal LLMProviderType = "local"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeAnthropic,
		LLMProviderTypeOpenAI,
		LLMProviderTypeGoogle,
		LLMProviderTypeLocal:
		return true
	default:
		return false
	}
}

// VCSProviderType defines supported version control hosts
type VCSProviderType string

const (
	// VCSProviderGitHub targets the GitHub REST API
	VCSProviderGitHub VCSProviderType = "github"
	// VCSProviderGitLab targets the GitLab REST API
	VCSProviderGitLab VCSProviderType = "gitlab"
)

// IsValid checks if the VCS provider type is valid
func (t VCSProviderType) IsValid() bool {
	return t == VCSProviderGitHub || t == VCSProviderGitLab
}
