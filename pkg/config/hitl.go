package config

import "time"

// HITLConfig controls the clarification and review loop between prompt
// intake and build activation.
type HITLConfig struct {
	// MaxClarificationTurns caps the question/answer rounds before the
	// machine force-advances to drafting with whatever coverage it has.
	MaxClarificationTurns int

	// CoverageReadyThreshold is the weighted coverage percentage at which
	// clarification stops voluntarily and drafting begins.
	CoverageReadyThreshold int

	// SkipCoverageFloor is the minimum coverage required to honor an
	// explicit skip-clarification request.
	SkipCoverageFloor int

	// MaxQuestionsPerTurn bounds how many questions one clarification
	// round may ask.
	MaxQuestionsPerTurn int

	// DraftTimeout bounds a single spec-drafting LLM call.
	DraftTimeout time.Duration

	// CategoryWeights define how much each requirement category
	// contributes to total coverage. Values must sum to 100.
	CategoryWeights map[string]int
}

// Requirement categories tracked by the clarification loop.
const (
	CategoryProjectType = "project_type"
	CategoryTechStack   = "tech_stack"
	CategoryScale       = "scale"
	CategoryFeatures    = "features"
	CategoryConstraints = "constraints"
)

// DefaultHITLConfig returns the built-in clarification defaults.
func DefaultHITLConfig() *HITLConfig {
	return &HITLConfig{
		MaxClarificationTurns:  10,
		CoverageReadyThreshold: 80,
		SkipCoverageFloor:      50,
		MaxQuestionsPerTurn:    3,
		DraftTimeout:           5 * time.Minute,
		CategoryWeights: map[string]int{
			CategoryProjectType: 20,
			CategoryTechStack:   25,
			CategoryScale:       15,
			CategoryFeatures:    25,
			CategoryConstraints: 15,
		},
	}
}
