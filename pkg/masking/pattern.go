package masking

import (
	"log/slog"
	"regexp"

	"github.com/swarmstack/swarm/pkg/config"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// compileGroup compiles the built-in patterns named by a pattern group,
// preserving the group's order. Invalid patterns are logged and skipped.
func compileGroup(group string) []*CompiledPattern {
	builtin := config.GetBuiltinConfig()

	names, ok := builtin.PatternGroups[group]
	if !ok {
		slog.Error("Unknown masking pattern group, regex masking disabled",
			"group", group)
		return nil
	}

	out := make([]*CompiledPattern, 0, len(names))
	for _, name := range names {
		pattern, ok := builtin.MaskingPatterns[name]
		if !ok {
			slog.Error("Pattern group references unknown pattern, skipping",
				"group", group, "pattern", name)
			continue
		}
		compiled, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		out = append(out, &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		})
	}
	return out
}
