package models

import (
	"fmt"
	"strings"
)

// Acceptance criterion status values.
const (
	CriterionPending   = "pending"
	CriterionSatisfied = "satisfied"
	CriterionPartial   = "partial"
	CriterionBlocked   = "blocked"
)

// AcceptanceCriterion is a single verifiable requirement attached to a
// ticket. Agents report a status per criterion when completing work.
type AcceptanceCriterion struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Status string `json:"status"`
}

// SpecFeature is one buildable feature from an approved spec. The generator
// emits at least one ticket per feature, copying its acceptance criteria.
type SpecFeature struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Acceptance  []AcceptanceCriterion `json:"acceptance,omitempty"`
}

// Spec is the structured artifact produced by the HITL flow and consumed by
// the ticket generator. Stored as JSON on the session.
type Spec struct {
	Title      string        `json:"title"`
	Summary    string        `json:"summary,omitempty"`
	Goals      []string      `json:"goals,omitempty"`
	Features   []SpecFeature `json:"features"`
	NonGoals   []string      `json:"non_goals,omitempty"`
	Risks      []string      `json:"risks,omitempty"`
	Acceptance []string      `json:"acceptance,omitempty"`
}

// Validate checks the structural requirements for build activation:
// a title and at least one feature with a title.
func (s *Spec) Validate() error {
	if s == nil {
		return fmt.Errorf("spec is empty")
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("spec title is required")
	}
	if len(s.Features) == 0 {
		return fmt.Errorf("spec has no features")
	}
	for i, f := range s.Features {
		if strings.TrimSpace(f.Title) == "" {
			return fmt.Errorf("feature %d has no title", i+1)
		}
	}
	return nil
}
