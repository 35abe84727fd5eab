package api

import (
	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/pkg/models"
)

// ClaimResponse is returned by POST /api/v1/claim when a ticket was won.
// Credential values never appear here; agents receive names and the VM
// backend injects the material out of band.
type ClaimResponse struct {
	Ticket          models.JobContext      `json:"ticket"`
	ProjectSettings map[string]interface{} `json:"project_settings,omitempty"`
}

// TicketDetailResponse is returned by GET /api/v1/tickets/:id.
type TicketDetailResponse struct {
	Ticket       *ent.Ticket `json:"ticket"`
	Dependencies []string    `json:"dependencies,omitempty"`
}

// SessionListResponse is returned by GET /api/v1/sessions.
type SessionListResponse struct {
	Sessions []*ent.Session `json:"sessions"`
	Total    int            `json:"total"`
	Limit    int            `json:"limit"`
	Offset   int            `json:"offset"`
}

// MessageListResponse is returned by GET /api/v1/sessions/:id/messages.
type MessageListResponse struct {
	Messages []*ent.Message `json:"messages"`
}

// TicketListResponse is returned by GET /api/v1/sessions/:id/tickets.
type TicketListResponse struct {
	Tickets []*ent.Ticket `json:"tickets"`
}

// TurnResponse is returned by POST /api/v1/sessions/:id/respond.
type TurnResponse struct {
	Session  *ent.Session    `json:"session"`
	Message  *ent.Message    `json:"message,omitempty"`
	Coverage models.Coverage `json:"coverage"`

	Advanced    bool `json:"advanced"`
	Stalled     bool `json:"stalled"`
	ParseFailed bool `json:"parse_failed,omitempty"`
}

// SpecResponse pairs a session with its draft spec after generate-spec,
// update-spec, or request-revision.
type SpecResponse struct {
	Session *ent.Session `json:"session"`
	Spec    *models.Spec `json:"spec,omitempty"`
}

// StartBuildResponse is returned by POST /api/v1/sessions/:id/start-build.
type StartBuildResponse struct {
	Session *ent.Session  `json:"session"`
	Tickets []*ent.Ticket `json:"tickets"`
}

// CancelSessionResponse is returned by POST /api/v1/sessions/:id/cancel.
type CancelSessionResponse struct {
	SessionID        string `json:"session_id"`
	CancelledTickets int    `json:"cancelled_tickets"`
	Message          string `json:"message"`
}

// ReplayResponse is returned by GET /api/v1/debug/tickets/:id/replay.
type ReplayResponse struct {
	TicketID string            `json:"ticket_id"`
	Events   []models.BusEvent `json:"events"`
	Count    int               `json:"count"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck is the status of a single component in HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
