package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/api"
	"github.com/swarmstack/swarm/pkg/events"
	"github.com/swarmstack/swarm/pkg/models"
)

// TestCancellation_MidBuildSweepsTicketsCooperatively cancels a session
// while one ticket is being worked: idle tickets cancel outright, the
// in-flight agent learns about the cancel on its next heartbeat, and its
// eventual report is discarded instead of completing the ticket.
func TestCancellation_MidBuildSweepsTicketsCooperatively(t *testing.T) {
	app := NewTestApp(t)
	build := app.BootstrapBuild(t, "links")
	sessionID := build.Session.ID
	feature := ticketByKind(t, build.Tickets, "feature")
	verification := ticketByKind(t, build.Tickets, "verification")
	packaging := ticketByKind(t, build.Tickets, "packaging")

	agent := app.NewAgent()
	agent.ClaimTicket(t, feature.ID)

	ws := app.ConnectWS(t)
	ws.Subscribe(t, events.SessionRoom(sessionID))

	resp := app.CancelSession(t, sessionID)
	assert.Equal(t, sessionID, resp.SessionID)
	// Epic, verification, packaging flip immediately; the in-flight
	// feature is only flagged.
	assert.Equal(t, 4, resp.CancelledTickets)

	ws.WaitForState(t, models.EventSessionState, "cancelled")
	app.WaitSessionState(t, sessionID, "cancelled")

	assert.Equal(t, ticket.StateCancelled, app.GetTicket(t, verification.ID).State)
	assert.Equal(t, ticket.StateCancelled, app.GetTicket(t, packaging.ID).State)

	flagged := app.GetTicket(t, feature.ID)
	assert.Equal(t, ticket.StateInProgress, flagged.State)
	assert.True(t, flagged.CancelRequested)

	// The agent observes the flag on its heartbeat, finishes up, and
	// reports; the post-cancel result routes into cancelled.
	ack := agent.Heartbeat(t, feature.ID)
	assert.True(t, ack.CancelRequested)

	agent.CompleteOK(t, feature.ID)
	app.WaitTicketState(t, feature.ID, "cancelled")

	// No verification ran and no PR opened for the cancelled work.
	assert.Empty(t, app.Runner.Requests())
	assert.Empty(t, app.VCS.OpenedPRs())
}

// TestCancellation_SingleTicketCascadesToSettlement cancels one idle
// ticket directly; its dependents stay blocked behind it, and with
// nothing left runnable the session settles on its own instead of
// hanging in building.
func TestCancellation_SingleTicketCascadesToSettlement(t *testing.T) {
	app := NewTestApp(t)
	build := app.BootstrapBuild(t, "links")
	sessionID := build.Session.ID
	feature := ticketByKind(t, build.Tickets, "feature")
	verification := ticketByKind(t, build.Tickets, "verification")

	// Cancel the only runnable ticket through the control plane.
	resp := app.do(t, "POST", "/api/v1/tickets/"+feature.ID+"/cancel", api.ActorRequest{ActorID: "user-1"})
	drain(t, resp, 200)

	cancelled := app.GetTicket(t, feature.ID)
	assert.Equal(t, ticket.StateCancelled, cancelled.State)
	require.NotNil(t, cancelled.CompletedAt)

	// Nothing is claimable: the dependents sit behind a cancelled
	// dependency.
	_, status := app.NewAgent().TryClaim(t)
	assert.Equal(t, 204, status)
	assert.Equal(t, ticket.StateBlocked, app.GetTicket(t, verification.ID).State)

	// Everything left is stuck behind the cancelled dependency, so the
	// cancel itself settles the session. Nothing completed, so the
	// verdict is failed.
	app.WaitSessionState(t, sessionID, "failed")
	final, err := app.Sessions.GetSession(context.Background(), sessionID)
	require.NoError(t, err)
	require.NotNil(t, final.CompletedAt)
	require.NotNil(t, final.ErrorMessage)
	assert.Contains(t, *final.ErrorMessage, "cancelled")
}

// TestCancellation_BeforeBuildIsPureStateChange cancels during review:
// no tickets exist yet, so the sweep touches nothing.
func TestCancellation_BeforeBuildIsPureStateChange(t *testing.T) {
	app := NewTestApp(t)

	sess := app.CreateSession(t, models.CreateSessionRequest{
		Prompt: "a service that shortens URLs",
	})
	app.LLM.Push(clarifyReply("Understood.", saturatedContext(), true))
	app.Respond(t, sess.ID, "Go, nothing fancy")
	app.LLM.Push(specReply("URL Shortener"))
	app.GenerateSpec(t, sess.ID)

	resp := app.CancelSession(t, sess.ID)
	assert.Zero(t, resp.CancelledTickets)
	app.WaitSessionState(t, sess.ID, "cancelled")

	// Terminal states accept no further actions.
	httpResp := app.do(t, "POST", "/api/v1/sessions/"+sess.ID+"/approve",
		api.DecisionRequest{ActorID: "reviewer-1"})
	drain(t, httpResp, 422)
}
