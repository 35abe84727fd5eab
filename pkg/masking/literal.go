package masking

import (
	"sort"
	"strings"
	"sync"
)

// MaskedCredentialValue is the replacement string for known credential
// literals.
const MaskedCredentialValue = "__MASKED_CREDENTIAL__"

// minLiteralLength guards against registering short values that would
// shred ordinary prose ("main", "true").
const minLiteralLength = 6

// LiteralMasker redacts exact credential values. The dispatcher feeds
// it every secret it hands to a VM, so backend errors and agent output
// that echo an injected value never reach the database or the bus in
// the clear.
type LiteralMasker struct {
	mu     sync.RWMutex
	values map[string]struct{}
}

// NewLiteralMasker creates a masker seeded with the given values.
func NewLiteralMasker(values ...string) *LiteralMasker {
	m := &LiteralMasker{values: make(map[string]struct{})}
	m.Add(values...)
	return m
}

// Name returns the unique identifier for this masker.
func (m *LiteralMasker) Name() string { return "credential_literal" }

// Add registers values to redact. Values shorter than the minimum
// length are ignored. Safe for concurrent use.
func (m *LiteralMasker) Add(values ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range values {
		if len(v) < minLiteralLength {
			continue
		}
		m.values[v] = struct{}{}
	}
}

// AppliesTo reports whether the data contains any registered value.
func (m *LiteralMasker) AppliesTo(data string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for v := range m.values {
		if strings.Contains(data, v) {
			return true
		}
	}
	return false
}

// Mask replaces every occurrence of every registered value. Longer
// values are replaced first so a value that prefixes another is never
// left half-masked.
func (m *LiteralMasker) Mask(data string) string {
	m.mu.RLock()
	ordered := make([]string, 0, len(m.values))
	for v := range m.values {
		ordered = append(ordered, v)
	}
	m.mu.RUnlock()

	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) > len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})

	for _, v := range ordered {
		data = strings.ReplaceAll(data, v, MaskedCredentialValue)
	}
	return data
}
