package models

import "time"

// Ticket states.
const (
	TicketDraft      = "draft"
	TicketBlocked    = "blocked"
	TicketReady      = "ready"
	TicketClaimed    = "claimed"
	TicketInProgress = "in_progress"
	TicketReview     = "review"
	TicketCompleted  = "completed"
	TicketFailed     = "failed"
	TicketHold       = "hold"
	TicketCancelled  = "cancelled"
)

// Ticket kinds. Epics group feature tickets and are never claimed by agents;
// they complete automatically when all their dependencies resolve.
const (
	TicketKindEpic         = "epic"
	TicketKindFeature      = "feature"
	TicketKindVerification = "verification"
	TicketKindPackaging    = "packaging"
)

// Assignee kinds.
const (
	AssigneeAgent = "agent"
	AssigneeHuman = "human"
)

// Verification outcomes recorded on a ticket after review.
const (
	VerificationPending = "pending"
	VerificationPassed  = "passed"
	VerificationFailed  = "failed"
	VerificationSkipped = "skipped"
)

// TicketTerminal reports whether a ticket state admits no further
// transitions.
func TicketTerminal(state string) bool {
	switch state {
	case TicketCompleted, TicketFailed, TicketCancelled:
		return true
	}
	return false
}

// TicketClaimable reports whether a ticket in this state can be handed to
// an agent.
func TicketClaimable(state string) bool {
	return state == TicketReady
}

// TicketSeed is the insert shape produced by the ticket generator: one
// ticket plus the IDs it depends on. Seeds are inserted and activated in
// the same transaction that starts the build.
type TicketSeed struct {
	ID                 string
	Kind               string
	Title              string
	Description        string
	FeatureID          string
	ParentID           string
	Priority           int
	MaxAttempts        int
	AssigneeKind       string
	AcceptanceCriteria []AcceptanceCriterion
	DependsOn          []string
}

// ClaimRequest identifies the worker asking for the next ready ticket.
type ClaimRequest struct {
	AgentID   string `json:"agent_id"`
	VMID      string `json:"vm_id,omitempty"`
	TenantID  string `json:"tenant_id"`
	ProjectID string `json:"project_id,omitempty"`
}

// CriterionResult is an agent's verdict on one acceptance criterion.
type CriterionResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// AgentResult is the completion report an agent submits for a claimed
// ticket. Success routes the ticket into review; failure routes it into
// retry or failed depending on the remaining attempt budget.
type AgentResult struct {
	AgentID        string            `json:"agent_id"`
	Success        bool              `json:"success"`
	Summary        string            `json:"summary,omitempty"`
	PRURL          string            `json:"pr_url,omitempty"`
	BranchName     string            `json:"branch_name,omitempty"`
	Error          string            `json:"error,omitempty"`
	FilesChanged   []string          `json:"files_changed,omitempty"`
	CriteriaStatus []CriterionResult `json:"criteria_status,omitempty"`
}

// JobContext is everything an agent needs to work a ticket: the task
// itself, repository coordinates, and feedback from any prior attempt.
// It is assembled at claim time and handed to the dispatched VM.
type JobContext struct {
	TicketID           string                `json:"ticket_id"`
	SessionID          string                `json:"session_id"`
	ProjectID          string                `json:"project_id"`
	TenantID           string                `json:"tenant_id"`
	Kind               string                `json:"kind"`
	Title              string                `json:"title"`
	Description        string                `json:"description,omitempty"`
	AcceptanceCriteria []AcceptanceCriterion `json:"acceptance_criteria,omitempty"`
	RepoURL            string                `json:"repo_url"`
	BaseBranch         string                `json:"base_branch"`
	BranchName         string                `json:"branch_name"`
	CredentialNames    []string              `json:"credential_names,omitempty"`
	PriorFeedback      []string              `json:"prior_feedback,omitempty"`
	Attempt            int                   `json:"attempt"`
	LeaseExpiresAt     time.Time             `json:"lease_expires_at"`
}

// Lease describes an active claim on a ticket.
type Lease struct {
	TicketID        string    `json:"ticket_id"`
	AssigneeID      string    `json:"assignee_id"`
	VMID            string    `json:"vm_id,omitempty"`
	ExpiresAt       time.Time `json:"expires_at"`
	LastHeartbeatAt time.Time `json:"last_heartbeat_at"`
}
