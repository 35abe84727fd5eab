package masking

import (
	"log/slog"

	"github.com/swarmstack/swarm/pkg/config"
)

// Service applies outbound masking. Created once at startup; thread-safe.
// A disabled service is inert: every method returns its input unchanged.
type Service struct {
	enabled  bool
	patterns []*CompiledPattern
	literals *LiteralMasker
}

// NewService creates a masking service from the deployment defaults.
// Patterns compile eagerly; invalid ones are logged and skipped.
func NewService(cfg *config.SecretMaskingDefaults) *Service {
	s := &Service{literals: NewLiteralMasker()}
	if cfg == nil || !cfg.Enabled {
		return s
	}
	s.enabled = true
	s.patterns = compileGroup(cfg.PatternGroup)

	slog.Info("Masking service initialized",
		"pattern_group", cfg.PatternGroup,
		"compiled_patterns", len(s.patterns))
	return s
}

// Enabled reports whether masking is active.
func (s *Service) Enabled() bool {
	return s.enabled
}

// AddLiterals registers credential values for exact redaction. The
// dispatcher calls this with every secret it injects into a VM.
func (s *Service) AddLiterals(values map[string]string) {
	if !s.enabled {
		return
	}
	for _, v := range values {
		s.literals.Add(v)
	}
}

// Mask redacts known credential literals, then runs the regex sweep.
func (s *Service) Mask(text string) string {
	if !s.enabled || text == "" {
		return text
	}
	masked := text
	if s.literals.AppliesTo(masked) {
		masked = s.literals.Mask(masked)
	}
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}

// MaskMap returns a copy of the payload with every string leaf masked.
// Nested maps and slices are walked; non-string leaves pass through.
func (s *Service) MaskMap(payload map[string]interface{}) map[string]interface{} {
	if !s.enabled || len(payload) == 0 {
		return payload
	}
	return s.maskValue(payload).(map[string]interface{})
}

func (s *Service) maskValue(v interface{}) interface{} {
	switch t := v.(type) {
	case string:
		return s.Mask(t)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = s.maskValue(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = s.maskValue(val)
		}
		return out
	case []string:
		out := make([]string, len(t))
		for i, val := range t {
			out[i] = s.Mask(val)
		}
		return out
	default:
		return v
	}
}
