// Package ticketgen converts an approved spec into the dependency DAG of
// tickets for one build. Generation is deterministic: no LLM, no I/O. Each
// spec feature becomes a ticket carrying its acceptance criteria, a
// verification ticket gates on every feature, a packaging ticket gates on
// verification, and an epic rolls the whole build up for tracking.
package ticketgen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/models"
)

// Options tunes generation per build.
type Options struct {
	// MaxAttempts is the per-ticket attempt budget. Zero falls back to the
	// store default.
	MaxAttempts int

	// Priority is the claim priority assigned to generated tickets;
	// 0 is most urgent.
	Priority int
}

// Generate emits the ticket seeds for an approved spec. The epic is first
// in the returned slice and depends on every other seed, so it is never
// claimable and completes through the cascade; it carries assignee_kind
// human to keep it out of agent claim scans on principle. The seeds are
// validated as a DAG before they are returned.
func Generate(spec *models.Spec, opts Options) ([]models.TicketSeed, error) {
	if err := spec.Validate(); err != nil {
		return nil, fault.Wrap(fault.Fatal, "ticketgen.generate", "spec is not buildable", err)
	}

	epicID := newTicketID()
	seeds := make([]models.TicketSeed, 0, len(spec.Features)+3)
	seeds = append(seeds, models.TicketSeed{
		ID:           epicID,
		Kind:         models.TicketKindEpic,
		Title:        spec.Title,
		Description:  spec.Summary,
		Priority:     opts.Priority,
		MaxAttempts:  opts.MaxAttempts,
		AssigneeKind: models.AssigneeHuman,
	})

	featureIDs := make([]string, 0, len(spec.Features))
	for i, f := range spec.Features {
		featureID := f.ID
		if featureID == "" {
			featureID = fmt.Sprintf("feat-%d", i+1)
		}
		id := newTicketID()
		featureIDs = append(featureIDs, id)
		seeds = append(seeds, models.TicketSeed{
			ID:                 id,
			Kind:               models.TicketKindFeature,
			Title:              f.Title,
			Description:        f.Description,
			FeatureID:          featureID,
			ParentID:           epicID,
			Priority:           opts.Priority,
			MaxAttempts:        opts.MaxAttempts,
			AcceptanceCriteria: copyCriteria(featureID, f.Acceptance),
		})
	}

	verifyID := newTicketID()
	seeds = append(seeds, models.TicketSeed{
		ID:                 verifyID,
		Kind:               models.TicketKindVerification,
		Title:              "End-to-end verification",
		Description:        "Run every feature's acceptance criteria against the integrated build.",
		ParentID:           epicID,
		Priority:           opts.Priority,
		MaxAttempts:        opts.MaxAttempts,
		AcceptanceCriteria: specAcceptance(spec.Acceptance),
		DependsOn:          featureIDs,
	})

	packagingID := newTicketID()
	seeds = append(seeds, models.TicketSeed{
		ID:          packagingID,
		Kind:        models.TicketKindPackaging,
		Title:       "Package build outputs",
		Description: "Assemble and publish the verified build outputs.",
		ParentID:    epicID,
		Priority:    opts.Priority,
		MaxAttempts: opts.MaxAttempts,
		DependsOn:   []string{verifyID},
	})

	all := make([]string, 0, len(seeds)-1)
	for _, s := range seeds[1:] {
		all = append(all, s.ID)
	}
	seeds[0].DependsOn = all

	if err := ValidateDAG(seeds); err != nil {
		return nil, err
	}
	return seeds, nil
}

// ValidateDAG rejects dependency graphs the activation step cannot order:
// duplicate ids, duplicate or unknown references, and cycles. A violation
// is a generator bug, so the whole build start aborts instead of inserting
// a plan that can never drain.
func ValidateDAG(seeds []models.TicketSeed) error {
	const op = "ticketgen.validate"

	indegree := make(map[string]int, len(seeds))
	for _, s := range seeds {
		if _, dup := indegree[s.ID]; dup {
			return fault.Newf(fault.Fatal, op, "duplicate ticket id %s", s.ID)
		}
		indegree[s.ID] = 0
	}

	dependents := make(map[string][]string, len(seeds))
	for _, s := range seeds {
		seen := make(map[string]struct{}, len(s.DependsOn))
		for _, dep := range s.DependsOn {
			if _, ok := indegree[dep]; !ok {
				return fault.Newf(fault.Fatal, op, "ticket %s depends on unknown ticket %s", s.ID, dep)
			}
			if _, ok := seen[dep]; ok {
				return fault.Newf(fault.Fatal, op, "ticket %s lists dependency %s twice", s.ID, dep)
			}
			seen[dep] = struct{}{}
			indegree[s.ID]++
			dependents[dep] = append(dependents[dep], s.ID)
		}
	}

	// Kahn's algorithm: repeatedly settle tickets with no unresolved
	// dependencies. Anything left unsettled sits on or behind a cycle.
	queue := make([]string, 0, len(seeds))
	for _, s := range seeds {
		if indegree[s.ID] == 0 {
			queue = append(queue, s.ID)
		}
	}
	settled := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		settled++
		for _, next := range dependents[id] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	if settled == len(seeds) {
		return nil
	}

	stuck := make([]string, 0, len(seeds)-settled)
	for _, s := range seeds {
		if indegree[s.ID] > 0 {
			stuck = append(stuck, s.ID)
		}
	}
	return fault.Newf(fault.Fatal, op, "dependency cycle among tickets: %s", strings.Join(stuck, ", "))
}

// copyCriteria carries a feature's acceptance criteria onto its ticket,
// assigning ids and the pending status where the spec left them blank.
func copyCriteria(featureID string, acs []models.AcceptanceCriterion) []models.AcceptanceCriterion {
	if len(acs) == 0 {
		return nil
	}
	out := make([]models.AcceptanceCriterion, 0, len(acs))
	for i, ac := range acs {
		id := ac.ID
		if id == "" {
			id = fmt.Sprintf("%s-ac-%d", featureID, i+1)
		}
		status := ac.Status
		if status == "" {
			status = models.CriterionPending
		}
		out = append(out, models.AcceptanceCriterion{ID: id, Text: ac.Text, Status: status})
	}
	return out
}

// specAcceptance turns the spec-level acceptance list into the
// verification ticket's criteria.
func specAcceptance(items []string) []models.AcceptanceCriterion {
	if len(items) == 0 {
		return nil
	}
	out := make([]models.AcceptanceCriterion, 0, len(items))
	for i, text := range items {
		out = append(out, models.AcceptanceCriterion{
			ID:     fmt.Sprintf("spec-ac-%d", i+1),
			Text:   text,
			Status: models.CriterionPending,
		})
	}
	return out
}

func newTicketID() string {
	return "tkt-" + uuid.NewString()
}
