package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/events"
	"github.com/swarmstack/swarm/pkg/models"
)

// TestPipeline_PromptToCompletedBuild walks the whole system front to
// back: prompt intake, one clarification turn that saturates coverage,
// spec drafting, approval, build activation into the ticket DAG, and
// three pulling agents working the DAG to a completed session, with the
// dashboard watching over WebSocket the entire time.
func TestPipeline_PromptToCompletedBuild(t *testing.T) {
	app := NewTestApp(t)

	// Intake. No LLM call yet; the session opens in input.
	sess := app.CreateSession(t, models.CreateSessionRequest{
		Prompt:  "a service that shortens URLs and tracks click counts",
		RepoURL: "https://git.example.com/acme/links.git",
		Author:  "user-1",
	})
	assert.Equal(t, session.StateInput, sess.State)

	ws := app.ConnectWS(t)
	ws.Subscribe(t, events.SessionRoom(sess.ID))

	// One saturating clarification turn advances straight to drafting.
	app.LLM.Push(clarifyReply("Understood, drafting now.", saturatedContext(), true))
	turn := app.Respond(t, sess.ID, "Go, single tenant, 10k links, no auth needed")
	assert.True(t, turn.Advanced)
	assert.False(t, turn.Stalled)
	assert.GreaterOrEqual(t, turn.Coverage.Total, 80)
	assert.Equal(t, session.StateReadyForDocs, turn.Session.State)

	// Draft the spec and land in reviewing.
	app.LLM.Push(specReply("URL Shortener"))
	draft := app.GenerateSpec(t, sess.ID)
	assert.Equal(t, session.StateReviewing, draft.Session.State)
	assert.Equal(t, 1, draft.Session.SpecVersion)
	require.NotNil(t, draft.Spec)
	assert.Equal(t, "URL Shortener", draft.Spec.Title)

	ws.WaitFor(t, models.EventSpecGenerated)
	ws.WaitFor(t, models.EventApprovalRequired)

	// Approve and activate.
	approved := app.Approve(t, sess.ID)
	assert.Equal(t, session.StateApproved, approved.State)

	build := app.StartBuild(t, sess.ID, "links", "")
	assert.Equal(t, session.StateBuilding, build.Session.State)
	require.Len(t, build.Tickets, 4)

	epic := ticketByKind(t, build.Tickets, "epic")
	feature := ticketByKind(t, build.Tickets, "feature")
	verification := ticketByKind(t, build.Tickets, "verification")
	packaging := ticketByKind(t, build.Tickets, "packaging")

	// Only the dependency-free feature is claimable; the epic never is.
	assert.Equal(t, ticket.StateBlocked, epic.State)
	assert.Equal(t, ticket.StateReady, feature.State)
	assert.Equal(t, ticket.StateBlocked, verification.State)
	assert.Equal(t, ticket.StateBlocked, packaging.State)

	ws.WaitForState(t, models.EventSessionState, "building")

	// First agent works the feature.
	agent := app.NewAgent()
	claim := agent.ClaimTicket(t, feature.ID)
	assert.Equal(t, "https://git.example.com/acme/links.git", claim.Ticket.RepoURL)
	assert.Equal(t, "main", claim.Ticket.BaseBranch)
	assert.Equal(t, "swarm/"+feature.ID, claim.Ticket.BranchName)
	assert.Equal(t, 1, claim.Ticket.Attempt)
	require.Len(t, claim.Ticket.AcceptanceCriteria, 1)

	ack := agent.Heartbeat(t, feature.ID)
	assert.False(t, ack.CancelRequested)

	agent.CompleteOK(t, feature.ID)

	// Settlement is asynchronous: verification passes, a PR opens, and
	// the cascade readies the verification ticket.
	app.WaitTicketState(t, feature.ID, "completed")
	app.WaitTicketState(t, verification.ID, "ready")

	done := app.GetTicket(t, feature.ID)
	require.NotNil(t, done.PrURL)
	assert.True(t, strings.HasPrefix(*done.PrURL, "https://git.example.com/acme/links/pull/"))

	// Second and third agents work the rest of the chain.
	app.NewAgent().runTicket(t, verification.ID)
	app.WaitTicketState(t, verification.ID, "completed")
	app.WaitTicketState(t, packaging.ID, "ready")

	app.NewAgent().runTicket(t, packaging.ID)
	app.WaitTicketState(t, packaging.ID, "completed")

	// The epic settles through the cascade without ever being claimed,
	// and the session follows.
	app.WaitTicketState(t, epic.ID, "completed")
	app.WaitSessionState(t, sess.ID, "completed")

	ws.WaitForState(t, models.EventSessionState, "completed")

	// Every verified branch got a pull request.
	prs := app.VCS.OpenedPRs()
	assert.Len(t, prs, 3)
	verdicts := app.Runner.Requests()
	assert.Len(t, verdicts, 3)
	for _, req := range verdicts {
		assert.Equal(t, 1, req.Attempt)
	}
}

// TestPipeline_ClarificationBelowThresholdKeepsGathering covers the turn
// loop staying in clarifying while coverage is thin.
func TestPipeline_ClarificationBelowThresholdKeepsGathering(t *testing.T) {
	app := NewTestApp(t)

	sess := app.CreateSession(t, models.CreateSessionRequest{
		Prompt: "a service that shortens URLs",
	})

	thin := models.GatheredContext{"project_type": map[string]any{"kind": "web service"}}
	app.LLM.Push(clarifyReply("What stack should it use?", thin, false))

	turn := app.Respond(t, sess.ID, "something small")
	assert.False(t, turn.Advanced)
	assert.Equal(t, session.StateClarifying, turn.Session.State)
	assert.Less(t, turn.Coverage.Total, 80)
	require.NotNil(t, turn.Message)
	assert.Equal(t, "What stack should it use?", turn.Message.Content)

	// The next saturating answer advances.
	app.LLM.Push(clarifyReply("Got everything.", saturatedContext(), true))
	turn = app.Respond(t, sess.ID, "Go, postgres, 10k links a day")
	assert.True(t, turn.Advanced)
	assert.Equal(t, session.StateReadyForDocs, turn.Session.State)
}
