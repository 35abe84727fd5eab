package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// SessionRetentionDays is how many days terminal sessions keep their
	// event rows before the sweeper prunes them.
	SessionRetentionDays int

	// EventTTL is the maximum age of event rows with no surviving
	// session. Per-session cleanup handles the normal case; this is a
	// safety net for fleet-level rooms.
	EventTTL time.Duration

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SessionRetentionDays: 30,
		EventTTL:             24 * time.Hour,
		CleanupInterval:      12 * time.Hour,
	}
}
