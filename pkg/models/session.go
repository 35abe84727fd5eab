// Package models holds the domain types shared across services, the event
// bus, and the API layer. Everything here is plain data; persistence lives
// in ent and behavior lives in the service packages.
package models

// Session states. Transitions between them are driven by the HITL state
// machine for the front half and by build progress for the back half.
const (
	SessionInput        = "input"
	SessionClarifying   = "clarifying"
	SessionReadyForDocs = "ready_for_docs"
	SessionReviewing    = "reviewing"
	SessionApproved     = "approved"
	SessionBuilding     = "building"
	SessionCompleted    = "completed"
	SessionFailed       = "failed"
	SessionCancelled    = "cancelled"
)

// Session source types.
const (
	SourceDirect  = "direct"
	SourceBacklog = "backlog"
	SourceAPI     = "api"
)

// Actors recorded on state transitions and events.
const (
	ActorUser   = "user"
	ActorSystem = "system"
	ActorAI     = "ai"
)

// SessionTerminal reports whether a session state admits no further
// transitions.
func SessionTerminal(state string) bool {
	switch state {
	case SessionCompleted, SessionFailed, SessionCancelled:
		return true
	}
	return false
}

// GatheredContext is the requirement knowledge accumulated by the
// clarification loop, keyed by category (project_type, tech_stack, scale,
// features, constraints) with free-form fields under each.
type GatheredContext map[string]map[string]any

// Coverage summarizes how much of the requirement space the clarification
// loop has filled in, per category and in total. The total is a weighted
// percentage in [0,100].
type Coverage struct {
	Total      int            `json:"total"`
	Categories map[string]int `json:"categories,omitempty"`
}

// CreateSessionRequest is the payload for opening a new session.
type CreateSessionRequest struct {
	Prompt      string         `json:"prompt"`
	TenantID    string         `json:"tenant_id,omitempty"`
	ProjectName string         `json:"project_name,omitempty"`
	SourceType  string         `json:"source_type,omitempty"`
	RepoURL     string         `json:"repo_url,omitempty"`
	Author      string         `json:"author,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// ReviewDecision is a human verdict on a drafted spec.
type ReviewDecision struct {
	Approved bool   `json:"approved"`
	Feedback string `json:"feedback,omitempty"`
	ActorID  string `json:"actor_id,omitempty"`
}

// SessionCounts aggregates ticket states under one session, used for
// progress reporting and completion checks.
type SessionCounts struct {
	Total      int `json:"total"`
	Draft      int `json:"draft"`
	Blocked    int `json:"blocked"`
	Ready      int `json:"ready"`
	Claimed    int `json:"claimed"`
	InProgress int `json:"in_progress"`
	Review     int `json:"review"`
	Hold       int `json:"hold"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
	Cancelled  int `json:"cancelled"`
}

// Terminal returns how many tickets have reached a terminal state.
func (c SessionCounts) Terminal() int {
	return c.Completed + c.Failed + c.Cancelled
}

// Settled reports whether no ticket can make further progress. Blocked
// tickets do not keep a session alive: once nothing is runnable or held,
// anything still blocked sits behind a failed or cancelled dependency and
// will never activate.
func (c SessionCounts) Settled() bool {
	return c.Draft == 0 && c.Ready == 0 && c.Claimed == 0 &&
		c.InProgress == 0 && c.Review == 0 && c.Hold == 0
}

// Succeeded reports whether every ticket finished and none failed, was
// cancelled, or remains stuck behind one.
func (c SessionCounts) Succeeded() bool {
	return c.Settled() && c.Blocked == 0 && c.Failed == 0 &&
		c.Cancelled == 0 && c.Completed > 0
}
