package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent/ticket"
)

// ageLease backdates a ticket's lease and heartbeat so the reaper sees
// its agent as dead without the test waiting out a real lease.
func ageLease(t *testing.T, app *TestApp, ticketID string) {
	t.Helper()
	err := app.DBClient.Ticket.UpdateOneID(ticketID).
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Exec(context.Background())
	require.NoError(t, err)
}

// TestReclaim_DeadAgentLeaseIsReapedAndReworked covers crash recovery:
// an agent claims work and vanishes, the reaper returns the ticket to
// the pool with the attempt consumed, and a second agent finishes it.
func TestReclaim_DeadAgentLeaseIsReapedAndReworked(t *testing.T) {
	app := NewTestApp(t, WithReaper())
	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")

	dead := app.NewAgent()
	dead.ClaimTicket(t, feature.ID)
	app.WaitTicketState(t, feature.ID, "in_progress")

	// The agent dies. Nothing happens until its lease looks expired.
	ageLease(t, app, feature.ID)
	app.WaitTicketState(t, feature.ID, "ready")

	requeued := app.GetTicket(t, feature.ID)
	assert.Equal(t, 2, requeued.Attempt)
	assert.Nil(t, requeued.AssigneeID)
	require.NotEmpty(t, requeued.PriorFeedback)
	assert.Contains(t, requeued.PriorFeedback[0], "lease expired")

	reclaims, _ := app.Reaper.Stats()
	assert.GreaterOrEqual(t, reclaims, 1)

	// A healthy agent picks the work up and lands it.
	second := app.NewAgent()
	second.runTicket(t, feature.ID)
	app.WaitTicketState(t, feature.ID, "completed")
}

// TestReclaim_ExhaustedBudgetSettlesSession covers the reaper burying a
// ticket: when a reclaim consumes the final attempt the ticket fails
// terminally, and with nothing left runnable the owning session settles
// instead of hanging in building.
func TestReclaim_ExhaustedBudgetSettlesSession(t *testing.T) {
	app := NewTestApp(t, WithReaper(), WithMaxAttempts(1))
	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")

	agent := app.NewAgent()
	agent.ClaimTicket(t, feature.ID)
	app.WaitTicketState(t, feature.ID, "in_progress")

	ageLease(t, app, feature.ID)
	app.WaitTicketState(t, feature.ID, "failed")

	buried := app.GetTicket(t, feature.ID)
	require.NotNil(t, buried.CompletedAt)
	assert.Nil(t, buried.AssigneeID)

	// The dependents sit behind the failure forever, so the reclaim is
	// also the session's verdict.
	app.WaitSessionState(t, build.Session.ID, "failed")
}

// TestReclaim_HeartbeatKeepsLeaseAlive covers the inverse: an agent that
// keeps checking in is never reaped, and each heartbeat pushes the lease
// forward.
func TestReclaim_HeartbeatKeepsLeaseAlive(t *testing.T) {
	app := NewTestApp(t, WithReaper())
	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")

	agent := app.NewAgent()
	claim := agent.ClaimTicket(t, feature.ID)

	// Several reaper scans pass while the agent heartbeats.
	var last time.Time
	for i := 0; i < 3; i++ {
		time.Sleep(150 * time.Millisecond)
		ack := agent.Heartbeat(t, feature.ID)
		assert.False(t, ack.CancelRequested)
		assert.True(t, ack.LeaseExpiresAt.After(last))
		last = ack.LeaseExpiresAt
	}
	assert.True(t, last.After(claim.Ticket.LeaseExpiresAt))

	held := app.GetTicket(t, feature.ID)
	assert.Equal(t, ticket.StateInProgress, held.State)
	assert.Equal(t, 1, held.Attempt)

	agent.CompleteOK(t, feature.ID)
	app.WaitTicketState(t, feature.ID, "completed")
}

// TestReclaim_VoluntaryReleaseReturnsAttempt covers the polite hand-back:
// release does not consume retry budget and the ticket is immediately
// claimable by someone else.
func TestReclaim_VoluntaryReleaseReturnsAttempt(t *testing.T) {
	app := NewTestApp(t)
	build := app.BootstrapBuild(t, "links")
	feature := ticketByKind(t, build.Tickets, "feature")

	first := app.NewAgent()
	first.ClaimTicket(t, feature.ID)
	first.Release(t, feature.ID)

	returned := app.GetTicket(t, feature.ID)
	assert.Equal(t, ticket.StateReady, returned.State)
	assert.Equal(t, 1, returned.Attempt)
	assert.Nil(t, returned.AssigneeID)

	second := app.NewAgent()
	claim := second.ClaimTicket(t, feature.ID)
	assert.Equal(t, 1, claim.Ticket.Attempt)
	second.CompleteOK(t, feature.ID)
	app.WaitTicketState(t, feature.ID, "completed")
}
