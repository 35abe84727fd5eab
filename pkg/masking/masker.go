// Package masking redacts secret-looking material from text before it
// leaves the core: agent outputs, failure reasons, event payloads, and
// webhook bodies. Two layers run in order: exact credential literals
// the platform knows about, then a regex sweep over the configured
// pattern group.
package masking

// Masker is the interface for code-based maskers that need knowledge
// beyond regex pattern matching (e.g., the exact credential values
// handed to a VM at spawn time).
type Masker interface {
	// Name returns the unique identifier for this masker.
	Name() string

	// AppliesTo performs a lightweight check on whether this masker
	// should process the data. Should be fast (string contains, not parsing).
	AppliesTo(data string) bool

	// Mask applies masking logic and returns the masked result.
	// Must be defensive: return original data on processing errors.
	Mask(data string) string
}
