package config

import "time"

// VCSConfig holds resolved version control integration settings. Agents
// push branches themselves; the core only reads PR state and posts review
// comments through this client.
type VCSConfig struct {
	Provider   VCSProviderType
	TokenEnv   string // Env var name containing the API token (default: "GITHUB_TOKEN")
	APIBaseURL string // Override for GitHub Enterprise / self-hosted GitLab
}

// VerifierConfig holds resolved settings for the external verification
// runner that executes project test suites against integration branches.
type VerifierConfig struct {
	BaseURL        string        // HTTP endpoint of the runner (empty = verification disabled)
	TokenEnv       string        // Env var name for the runner token (default: "VERIFIER_TOKEN")
	RequestTimeout time.Duration // Per-run ceiling (default: 15m)
}

// NotifyConfig holds resolved webhook notification settings for terminal
// session transitions and review-gate events.
type NotifyConfig struct {
	Enabled       bool
	WebhookURLEnv string // Env var name for the webhook URL (default: "SWARM_WEBHOOK_URL")
}

// RepoContextConfig holds resolved settings for fetching repository
// context files (README, contributing docs) used to seed clarification
// and spec drafting.
type RepoContextConfig struct {
	CacheTTL       time.Duration // Cache duration (default: 1m)
	AllowedDomains []string      // Allowed URL domains (default: ["github.com", "raw.githubusercontent.com"])
	MaxFileBytes   int64         // Per-file size cap (default: 256 KiB)
}
