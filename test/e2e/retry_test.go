package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent/ticket"
)

// TestRetry_VerifierRejectionRequeuesWithFeedback covers the review
// loop: a failed verdict sends the ticket back to ready with the
// feedback attached, and the next claim delivers it to the retrying
// agent.
func TestRetry_VerifierRejectionRequeuesWithFeedback(t *testing.T) {
	app := NewTestApp(t)
	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")

	app.Runner.PushVerdict(rejection("acceptance check shorten-ac-1 failed: POST /api/shorten returned 500"))

	first := app.NewAgent()
	first.ClaimTicket(t, feature.ID)
	first.CompleteOK(t, feature.ID)

	// The rejection lands asynchronously: ready again, next attempt,
	// rejection recorded.
	app.WaitTicketState(t, feature.ID, "ready")
	rejected := app.GetTicket(t, feature.ID)
	assert.Equal(t, 2, rejected.Attempt)
	assert.Equal(t, 1, rejected.RejectionCount)
	assert.Equal(t, ticket.VerificationStatusFailed, rejected.VerificationStatus)
	assert.Nil(t, rejected.AssigneeID)

	// The retrying agent sees the verdict feedback in its work package.
	second := app.NewAgent()
	claim := second.ClaimTicket(t, feature.ID)
	assert.Equal(t, 2, claim.Ticket.Attempt)
	require.NotEmpty(t, claim.Ticket.PriorFeedback)
	assert.Contains(t, claim.Ticket.PriorFeedback[0], "shorten-ac-1")

	// Second attempt passes (the script is exhausted, so the runner
	// passes by default) and the cascade resumes.
	second.CompleteOK(t, feature.ID)
	app.WaitTicketState(t, feature.ID, "completed")

	verification := ticketByKind(t, build.Tickets, "verification")
	app.WaitTicketState(t, verification.ID, "ready")

	// The verifier saw both attempts.
	reqs := app.Runner.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, 1, reqs[0].Attempt)
	assert.Equal(t, 2, reqs[1].Attempt)
}

// TestRetry_AttemptBudgetExhaustionFailsTicketAndSession covers terminal
// failure: once every attempt is rejected, the ticket fails, its
// dependents never activate, and the session settles as failed.
func TestRetry_AttemptBudgetExhaustionFailsTicketAndSession(t *testing.T) {
	app := NewTestApp(t)
	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")
	verification := ticketByKind(t, build.Tickets, "verification")
	sessionID := build.Session.ID

	app.Runner.PushVerdict(
		rejection("redirects missing"),
		rejection("still missing"),
		rejection("no progress"),
	)

	for attempt := 1; attempt <= 3; attempt++ {
		agent := app.NewAgent()
		claim := agent.ClaimTicket(t, feature.ID)
		assert.Equal(t, attempt, claim.Ticket.Attempt)
		agent.CompleteOK(t, feature.ID)
		if attempt < 3 {
			app.WaitTicketState(t, feature.ID, "ready")
		}
	}

	app.WaitTicketState(t, feature.ID, "failed")
	failed := app.GetTicket(t, feature.ID)
	assert.Equal(t, 3, failed.RejectionCount)
	require.NotNil(t, failed.CompletedAt)

	// Nothing behind the failed ticket ever activates, so the session
	// settles as failed with the blockage recorded.
	app.WaitSessionState(t, sessionID, "failed")
	stuck := app.GetTicket(t, verification.ID)
	assert.Equal(t, ticket.StateBlocked, stuck.State)
}

// TestRetry_AgentReportedFailureConsumesAttempt covers an agent giving
// up on its own: the error routes through the same budget arithmetic
// without ever reaching the verifier.
func TestRetry_AgentReportedFailureConsumesAttempt(t *testing.T) {
	app := NewTestApp(t)
	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")

	agent := app.NewAgent()
	agent.ClaimTicket(t, feature.ID)
	agent.Complete(t, feature.ID, AgentFailure("repository clone timed out"))

	app.WaitTicketState(t, feature.ID, "ready")
	requeued := app.GetTicket(t, feature.ID)
	assert.Equal(t, 2, requeued.Attempt)
	require.NotEmpty(t, requeued.PriorFeedback)
	assert.Contains(t, requeued.PriorFeedback[0], "clone timed out")

	// No verdict was requested for the dead attempt.
	assert.Empty(t, app.Runner.Requests())
}
