package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/message"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/models"
)

func strPtr(s string) *string { return &s }

func sampleTicket() *ent.Ticket {
	return &ent.Ticket{
		ID:                 "tkt-1",
		SessionID:          "sess-1",
		ProjectID:          "proj-1",
		TenantID:           "acme",
		Kind:               ticket.KindFeature,
		Title:              "Add health endpoint",
		State:              ticket.StateReady,
		Priority:           1,
		Attempt:            2,
		MaxAttempts:        3,
		BlockedByCount:     0,
		RejectionCount:     1,
		VerificationStatus: ticket.VerificationStatusPending,
		BranchName:         "swarm/tkt-1",
		VMID:               strPtr("vm-7"),
	}
}

func sampleSession() *ent.Session {
	return &ent.Session{
		ID:          "sess-1",
		TenantID:    "acme",
		State:       session.StateClarifying,
		Title:       "Health endpoint",
		ProjectName: "api",
		Progress:    45,
		SpecVersion: 1,
	}
}

func TestTicketUpdateEnvelope(t *testing.T) {
	env := TicketUpdate(sampleTicket(), models.TicketClaimed, "start_work", models.ActorAI, "vm-7", nil)

	assert.Equal(t, "ticket:tkt-1", env.Room)
	assert.Equal(t, []string{"session:sess-1", "project:proj-1"}, env.Mirrors)
	assert.True(t, env.Persist)
	assert.Equal(t, models.EventTicketUpdate, env.Type)
	assert.Equal(t, "sess-1", env.SessionID)
	assert.Equal(t, "tkt-1", env.TicketID)
	assert.Equal(t, models.TicketClaimed, env.FromState)
	assert.Equal(t, models.TicketReady, env.ToState)
	assert.Equal(t, "start_work", env.Action)
	assert.Equal(t, models.ActorAI, env.Actor)
	assert.Equal(t, "vm-7", env.ActorID)

	assert.Equal(t, "ready", env.Payload["state"])
	assert.Equal(t, 2, env.Payload["attempt"])
	assert.Equal(t, "vm-7", env.Payload["vm_id"])
	assert.Equal(t, "swarm/tkt-1", env.Payload["branch"])
	_, hasPR := env.Payload["pr_url"]
	assert.False(t, hasPR)
}

func TestTicketUpdateExtraOverrides(t *testing.T) {
	env := TicketUpdate(sampleTicket(), "", "activate", models.ActorSystem, "", map[string]any{
		"state":  "shadowed",
		"reason": "deps complete",
	})

	assert.Equal(t, "shadowed", env.Payload["state"])
	assert.Equal(t, "deps complete", env.Payload["reason"])
}

func TestTicketCompletedEnvelope(t *testing.T) {
	tk := sampleTicket()
	tk.State = ticket.StateCompleted
	tk.VerificationStatus = ticket.VerificationStatusPassed
	tk.PrURL = strPtr("https://git.example.com/pr/42")

	env := TicketCompleted(tk, models.TicketReview, "verify_pass", models.ActorSystem, "", nil)

	assert.Equal(t, models.EventTicketCompleted, env.Type)
	assert.Equal(t, models.TicketCompleted, env.ToState)
	assert.Equal(t, "passed", env.Payload["verification_status"])
	assert.Equal(t, "https://git.example.com/pr/42", env.Payload["pr_url"])
}

func TestSessionStateEnvelope(t *testing.T) {
	env := SessionState(sampleSession(), models.SessionInput, "respond", models.ActorUser, "alice", nil)

	assert.Equal(t, "session:sess-1", env.Room)
	assert.Equal(t, []string{"tenant:acme"}, env.Mirrors)
	assert.True(t, env.Persist)
	assert.Equal(t, models.EventSessionState, env.Type)
	assert.Equal(t, models.SessionInput, env.FromState)
	assert.Equal(t, models.SessionClarifying, env.ToState)
	assert.Equal(t, "alice", env.ActorID)
	assert.Equal(t, 45, env.Payload["progress"])
	assert.Equal(t, "Health endpoint", env.Payload["title"])
}

func TestSessionUpdateEnvelope(t *testing.T) {
	env := SessionUpdate(sampleSession(), "coverage", map[string]any{"coverage_total": 45})

	assert.Equal(t, models.EventSessionUpdate, env.Type)
	assert.Equal(t, models.ActorSystem, env.Actor)
	assert.Empty(t, env.FromState)
	assert.Equal(t, 45, env.Payload["coverage_total"])
}

func TestMessageNewEnvelope(t *testing.T) {
	env := MessageNew(&ent.Message{
		ID:          "msg-1",
		SessionID:   "sess-1",
		Seq:         4,
		Role:        message.RoleUser,
		MessageType: message.MessageTypeClarification,
		Content:     "It should return JSON",
		ActorID:     strPtr("alice"),
	})

	assert.Equal(t, "session:sess-1", env.Room)
	assert.Empty(t, env.Mirrors)
	assert.Equal(t, models.EventMessageNew, env.Type)
	assert.Equal(t, "user", env.Actor)
	assert.Equal(t, "alice", env.ActorID)
	assert.Equal(t, 4, env.Payload["seq"])
	assert.Equal(t, "It should return JSON", env.Payload["content"])
}

func TestSpecAndApprovalEnvelopes(t *testing.T) {
	sess := sampleSession()
	sess.State = session.StateReviewing
	sess.SpecVersion = 2

	gen := SpecGenerated(sess, 2)
	assert.Equal(t, models.EventSpecGenerated, gen.Type)
	assert.Equal(t, models.ActorAI, gen.Actor)
	assert.Equal(t, 2, gen.Payload["spec_version"])

	app := ApprovalRequired(sess, 2)
	assert.Equal(t, models.EventApprovalRequired, app.Type)
	assert.Equal(t, "reviewing", app.ToState)
	assert.Equal(t, []string{"tenant:acme"}, app.Mirrors)
}

func TestBuildProgressEnvelope(t *testing.T) {
	sess := sampleSession()
	sess.State = session.StateBuilding
	sess.ProjectID = strPtr("proj-1")

	env := BuildProgress(sess, models.SessionCounts{
		Total: 5, Completed: 2, Ready: 1, InProgress: 1, Blocked: 1,
	})

	require.False(t, env.Persist)
	assert.Equal(t, models.EventBuildProgress, env.Type)
	assert.Contains(t, env.Mirrors, "project:proj-1")
	assert.Equal(t, 5, env.Payload["total"])
	assert.Equal(t, 1, env.Payload["in_flight"])
}

func TestVMStateEnvelope(t *testing.T) {
	env := VMState("vm-7", "spawned", "tkt-1")

	assert.Equal(t, FleetRoom, env.Room)
	assert.False(t, env.Persist)
	assert.Equal(t, []string{"ticket:tkt-1"}, env.Mirrors)
	assert.Equal(t, "tkt-1", env.TicketID)
	assert.Equal(t, "vm-7", env.Payload["vm_id"])

	bare := VMState("vm-8", "reaped", "")
	assert.Empty(t, bare.Mirrors)
	assert.Empty(t, bare.TicketID)
}
