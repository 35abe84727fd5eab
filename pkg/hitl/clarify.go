package hitl

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"dario.cat/mergo"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/pkg/models"
)

// categoryTargetFields is how many answered fields saturate one coverage
// category. Three concrete facts per category is enough for the drafter;
// anything beyond that stops moving the score.
const categoryTargetFields = 3

// TurnReply is the structured record the model returns each clarification
// turn. Progress is the model's own estimate; the machine recomputes
// coverage from the configured weights and trusts only its own number.
type TurnReply struct {
	Message      string                 `json:"message"`
	Gathered     models.GatheredContext `json:"gathered,omitempty"`
	Progress     int                    `json:"progress,omitempty"`
	ReadyForSpec bool                   `json:"ready_for_spec,omitempty"`
	NextCategory string                 `json:"next_category,omitempty"`
}

// parseTurnReply extracts the JSON object from a model reply. A reply
// with no user-facing message is useless even if it parses.
func parseTurnReply(text string) (*TurnReply, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}
	var reply TurnReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, fmt.Errorf("turn reply is not valid JSON: %w", err)
	}
	if strings.TrimSpace(reply.Message) == "" {
		return nil, fmt.Errorf("turn reply has no message")
	}
	return &reply, nil
}

// extractJSON returns the outermost JSON object in text, tolerating prose
// and markdown fences around it.
func extractJSON(text string) ([]byte, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in reply")
	}
	return []byte(text[start : end+1]), nil
}

// mergeGathered folds one turn's findings into the accumulated context.
// New values win within a category, but nothing already known is dropped.
func mergeGathered(prior models.GatheredContext, update models.GatheredContext) (models.GatheredContext, error) {
	merged := make(models.GatheredContext, len(prior)+len(update))
	for cat, fields := range prior {
		copied := make(map[string]any, len(fields))
		for k, v := range fields {
			copied[k] = v
		}
		merged[cat] = copied
	}
	if err := mergo.Merge(&merged, update, mergo.WithOverride); err != nil {
		return nil, err
	}
	return merged, nil
}

// computeCoverage scores the gathered context against the category
// weights. Each category contributes fields/target of its weight, capped
// at the weight; the total is the weighted percentage across all
// configured categories.
func computeCoverage(gathered models.GatheredContext, weights map[string]int) models.Coverage {
	cov := models.Coverage{Categories: make(map[string]int, len(weights))}
	weightSum := 0
	weighted := 0
	for cat, weight := range weights {
		weightSum += weight
		filled := 0
		for _, v := range gathered[cat] {
			if !emptyValue(v) {
				filled++
			}
		}
		pct := filled * 100 / categoryTargetFields
		if pct > 100 {
			pct = 100
		}
		cov.Categories[cat] = pct
		weighted += weight * pct
	}
	if weightSum > 0 {
		cov.Total = weighted / weightSum
	}
	return cov
}

// weakestCategory picks the category most in need of questions: lowest
// score first, then the heavier weight. Ties resolve alphabetically so
// prompts stay stable across turns.
func weakestCategory(cov models.Coverage, weights map[string]int) string {
	cats := make([]string, 0, len(weights))
	for cat := range weights {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	best := ""
	bestPct := 101
	bestWeight := -1
	for _, cat := range cats {
		pct := cov.Categories[cat]
		if pct < bestPct || (pct == bestPct && weights[cat] > bestWeight) {
			best, bestPct, bestWeight = cat, pct, weights[cat]
		}
	}
	return best
}

// emptyValue reports whether a gathered field carries no information.
func emptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

// gatheredFromSession rebuilds the typed context from the stored JSON.
// JSONB round-trips hand back map[string]interface{} at every level, so
// anything that is not a category map is skipped.
func gatheredFromSession(sess *ent.Session) models.GatheredContext {
	out := make(models.GatheredContext, len(sess.GatheredContext))
	for cat, v := range sess.GatheredContext {
		if fields, ok := v.(map[string]any); ok {
			out[cat] = fields
		}
	}
	return out
}

// coverageFromSession rebuilds the coverage snapshot. The total rides on
// the dedicated progress column; per-category scores come out of the
// JSON blob as float64 and are coerced back.
func coverageFromSession(sess *ent.Session) models.Coverage {
	cov := models.Coverage{Total: sess.Progress}
	raw, ok := sess.Coverage["categories"].(map[string]any)
	if !ok {
		return cov
	}
	cov.Categories = make(map[string]int, len(raw))
	for cat, v := range raw {
		cov.Categories[cat] = toInt(v)
	}
	return cov
}

// toInt coerces the numeric types a JSON round-trip can produce.
func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	default:
		return 0
	}
}

// compactJSON renders a value for prompt embedding. Encoding failures
// degrade to an empty object rather than poisoning the prompt.
func compactJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil || len(b) == 0 {
		return "{}"
	}
	return string(b)
}
