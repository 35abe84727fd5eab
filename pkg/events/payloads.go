package events

import (
	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/pkg/models"
)

// Envelope is one publishable event: its canonical room, the mirror
// rooms that receive NOTIFY-only copies, and the fields persisted to
// the event log when Persist is set. Constructors below build envelopes
// from entity snapshots so callers never assemble rooms by hand.
type Envelope struct {
	Room    string
	Mirrors []string
	Persist bool

	Type      string
	SessionID string
	TicketID  string
	FromState string
	ToState   string
	Action    string
	Actor     string
	ActorID   string
	Payload   map[string]any
}

// merge folds extra into base, extra keys winning. Base may be nil.
func merge(base, extra map[string]any) map[string]any {
	if len(extra) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]any, len(extra))
	}
	for k, v := range extra {
		base[k] = v
	}
	return base
}

// ticketSnapshot captures the fields subscribers need to render a
// ticket row without a follow-up fetch.
func ticketSnapshot(t *ent.Ticket) map[string]any {
	p := map[string]any{
		"state":               string(t.State),
		"kind":                string(t.Kind),
		"title":               t.Title,
		"priority":            t.Priority,
		"attempt":             t.Attempt,
		"max_attempts":        t.MaxAttempts,
		"blocked_by_count":    t.BlockedByCount,
		"rejection_count":     t.RejectionCount,
		"verification_status": string(t.VerificationStatus),
	}
	if t.VMID != nil {
		p["vm_id"] = *t.VMID
	}
	if t.PrURL != nil {
		p["pr_url"] = *t.PrURL
	}
	if t.LastError != nil {
		p["last_error"] = *t.LastError
	}
	if t.BranchName != "" {
		p["branch"] = t.BranchName
	}
	return p
}

// sessionSnapshot captures the list-row fields of a session.
func sessionSnapshot(s *ent.Session) map[string]any {
	p := map[string]any{
		"state":        string(s.State),
		"progress":     s.Progress,
		"spec_version": s.SpecVersion,
	}
	if s.Title != "" {
		p["title"] = s.Title
	}
	if s.ProjectName != "" {
		p["project_name"] = s.ProjectName
	}
	if s.ErrorMessage != nil {
		p["error"] = *s.ErrorMessage
	}
	return p
}

// TicketUpdate builds a durable ticket.update envelope for any
// non-terminal ticket change. From is empty for the activation event of
// a freshly inserted ticket.
func TicketUpdate(t *ent.Ticket, from, action, actor, actorID string, extra map[string]any) Envelope {
	return Envelope{
		Room:      TicketRoom(t.ID),
		Mirrors:   []string{SessionRoom(t.SessionID), ProjectRoom(t.ProjectID)},
		Persist:   true,
		Type:      models.EventTicketUpdate,
		SessionID: t.SessionID,
		TicketID:  t.ID,
		FromState: from,
		ToState:   string(t.State),
		Action:    action,
		Actor:     actor,
		ActorID:   actorID,
		Payload:   merge(ticketSnapshot(t), extra),
	}
}

// TicketCompleted builds the terminal ticket.completed envelope. The
// cascade and session settlement hang off this one, so it is a
// distinct type rather than a ticket.update variant.
func TicketCompleted(t *ent.Ticket, from, action, actor, actorID string, extra map[string]any) Envelope {
	return Envelope{
		Room:      TicketRoom(t.ID),
		Mirrors:   []string{SessionRoom(t.SessionID), ProjectRoom(t.ProjectID)},
		Persist:   true,
		Type:      models.EventTicketCompleted,
		SessionID: t.SessionID,
		TicketID:  t.ID,
		FromState: from,
		ToState:   string(t.State),
		Action:    action,
		Actor:     actor,
		ActorID:   actorID,
		Payload:   merge(ticketSnapshot(t), extra),
	}
}

// SessionState builds a durable session.state envelope for a lifecycle
// transition. From is empty for session creation.
func SessionState(s *ent.Session, from, action, actor, actorID string, extra map[string]any) Envelope {
	return Envelope{
		Room:      SessionRoom(s.ID),
		Mirrors:   []string{TenantRoom(s.TenantID)},
		Persist:   true,
		Type:      models.EventSessionState,
		SessionID: s.ID,
		FromState: from,
		ToState:   string(s.State),
		Action:    action,
		Actor:     actor,
		ActorID:   actorID,
		Payload:   merge(sessionSnapshot(s), extra),
	}
}

// SessionUpdate builds a durable session.update envelope for changes
// that are not lifecycle transitions (coverage movement, spec drafts,
// project binding).
func SessionUpdate(s *ent.Session, action string, extra map[string]any) Envelope {
	return Envelope{
		Room:      SessionRoom(s.ID),
		Mirrors:   []string{TenantRoom(s.TenantID)},
		Persist:   true,
		Type:      models.EventSessionUpdate,
		SessionID: s.ID,
		ToState:   string(s.State),
		Action:    action,
		Actor:     models.ActorSystem,
		Payload:   merge(sessionSnapshot(s), extra),
	}
}

// MessageNew builds a durable message.new envelope carrying the full
// transcript entry; clients append it without refetching.
func MessageNew(m *ent.Message) Envelope {
	p := map[string]any{
		"message_id":   m.ID,
		"seq":          m.Seq,
		"role":         string(m.Role),
		"message_type": string(m.MessageType),
		"content":      m.Content,
	}
	if m.ActorID != nil {
		p["actor_id"] = *m.ActorID
	}
	env := Envelope{
		Room:      SessionRoom(m.SessionID),
		Persist:   true,
		Type:      models.EventMessageNew,
		SessionID: m.SessionID,
		Action:    "append",
		Actor:     string(m.Role),
		Payload:   p,
	}
	if m.ActorID != nil {
		env.ActorID = *m.ActorID
	}
	return env
}

// SpecGenerated builds the durable spec.generated envelope announcing a
// new draft spec version ready for review.
func SpecGenerated(s *ent.Session, version int) Envelope {
	return Envelope{
		Room:      SessionRoom(s.ID),
		Mirrors:   []string{TenantRoom(s.TenantID)},
		Persist:   true,
		Type:      models.EventSpecGenerated,
		SessionID: s.ID,
		ToState:   string(s.State),
		Action:    "generate_spec",
		Actor:     models.ActorAI,
		Payload: merge(sessionSnapshot(s), map[string]any{
			"spec_version": version,
		}),
	}
}

// ApprovalRequired builds the durable approval.required envelope that
// prompts a human to review the current draft.
func ApprovalRequired(s *ent.Session, version int) Envelope {
	return Envelope{
		Room:      SessionRoom(s.ID),
		Mirrors:   []string{TenantRoom(s.TenantID)},
		Persist:   true,
		Type:      models.EventApprovalRequired,
		SessionID: s.ID,
		ToState:   string(s.State),
		Action:    "review",
		Actor:     models.ActorSystem,
		Payload: merge(sessionSnapshot(s), map[string]any{
			"spec_version": version,
		}),
	}
}

// BuildProgress builds a transient build.progress envelope with the
// session's current ticket counts. High-frequency; dashboards render it
// and reconcile from durable events on reconnect.
func BuildProgress(s *ent.Session, counts models.SessionCounts) Envelope {
	env := Envelope{
		Room:      SessionRoom(s.ID),
		Mirrors:   []string{TenantRoom(s.TenantID)},
		Persist:   false,
		Type:      models.EventBuildProgress,
		SessionID: s.ID,
		Action:    "progress",
		Actor:     models.ActorSystem,
		Payload: map[string]any{
			"total":     counts.Total,
			"completed": counts.Completed,
			"failed":    counts.Failed,
			"in_flight": counts.Claimed + counts.InProgress + counts.Review,
			"ready":     counts.Ready,
			"blocked":   counts.Blocked,
			"cancelled": counts.Cancelled,
		},
	}
	if s.ProjectID != nil {
		env.Mirrors = append(env.Mirrors, ProjectRoom(*s.ProjectID))
	}
	return env
}

// VMState builds a transient vm.state envelope for fleet dashboards.
// TicketID may be empty while a VM is spawning or after release.
func VMState(vmID, state, ticketID string) Envelope {
	env := Envelope{
		Room:    FleetRoom,
		Persist: false,
		Type:    models.EventVMState,
		Action:  state,
		Actor:   models.ActorSystem,
		ActorID: vmID,
		Payload: map[string]any{
			"vm_id": vmID,
			"state": state,
		},
	}
	if ticketID != "" {
		env.TicketID = ticketID
		env.Mirrors = []string{TicketRoom(ticketID)}
		env.Payload["ticket_id"] = ticketID
	}
	return env
}
