package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/models"
	testdb "github.com/swarmstack/swarm/test/database"
)

func TestTicketService_ClaimNext(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.ClaimNext(ctx, models.ClaimRequest{TenantID: "default"})
		assert.True(t, IsValidationError(err))

		_, err = service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-1"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns nil when nothing is claimable", func(t *testing.T) {
		claimed, err := service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-1", TenantID: "default"})
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("claims by priority and skips ineligible tickets", func(t *testing.T) {
		urgent := createTestTicket(t, client.Client, sess, ticket.StateReady, func(c *ent.TicketCreate) {
			c.SetPriority(0)
		})
		later := createTestTicket(t, client.Client, sess, ticket.StateReady, func(c *ent.TicketCreate) {
			c.SetPriority(5)
		})
		// None of these may be claimed.
		createTestTicket(t, client.Client, sess, ticket.StateBlocked, func(c *ent.TicketCreate) {
			c.SetBlockedByCount(1)
		})
		createTestTicket(t, client.Client, sess, ticket.StateDraft, nil)
		createTestTicket(t, client.Client, sess, ticket.StateHold, nil)
		createTestTicket(t, client.Client, sess, ticket.StateReady, func(c *ent.TicketCreate) {
			c.SetAssigneeKind(ticket.AssigneeKindHuman)
		})
		createTestTicket(t, client.Client, sess, ticket.StateReady, func(c *ent.TicketCreate) {
			c.SetNotBefore(time.Now().Add(time.Hour))
		})

		first, err := service.ClaimNext(ctx, models.ClaimRequest{
			AgentID: "agent-1", VMID: "vm-1", TenantID: "default",
		})
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, urgent.ID, first.ID)
		assert.Equal(t, ticket.StateClaimed, first.State)
		assert.Equal(t, "agent-1", *first.AssigneeID)
		assert.Equal(t, "vm-1", *first.VMID)
		assert.Equal(t, 1, first.Attempt)
		assert.Equal(t, "swarm/"+urgent.ID, first.BranchName)
		require.NotNil(t, first.LeaseExpiresAt)
		assert.True(t, first.LeaseExpiresAt.After(time.Now()))

		second, err := service.ClaimNext(ctx, models.ClaimRequest{
			AgentID: "agent-2", TenantID: "default",
		})
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Equal(t, later.ID, second.ID)

		third, err := service.ClaimNext(ctx, models.ClaimRequest{
			AgentID: "agent-3", TenantID: "default",
		})
		require.NoError(t, err)
		assert.Nil(t, third, "only eligible tickets may be claimed")
	})

	t.Run("scopes claims to the tenant", func(t *testing.T) {
		other, err := client.Session.Create().
			SetID("sess-other-tenant").
			SetTenantID("acme").
			SetInitialPrompt("another idea").
			SetState(session.StateBuilding).
			Save(ctx)
		require.NoError(t, err)
		createTestTicket(t, client.Client, other, ticket.StateReady, nil)

		claimed, err := service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-1", TenantID: "default"})
		require.NoError(t, err)
		assert.Nil(t, claimed)

		claimed, err = service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-1", TenantID: "acme"})
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, "acme", claimed.TenantID)
	})
}

func TestTicketService_StartWork(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	createTestTicket(t, client.Client, sess, ticket.StateReady, nil)
	claimed, err := service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-1", TenantID: "default"})
	require.NoError(t, err)
	require.NotNil(t, claimed)

	t.Run("rejects a non-holder", func(t *testing.T) {
		_, err := service.StartWork(ctx, claimed.ID, "agent-2")
		assert.Equal(t, fault.PolicyViolation, fault.ClassOf(err))
	})

	t.Run("moves claimed to in_progress", func(t *testing.T) {
		started, err := service.StartWork(ctx, claimed.ID, "agent-1")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateInProgress, started.State)
		require.NotNil(t, started.StartedAt)
	})

	t.Run("is idempotent for the holder", func(t *testing.T) {
		again, err := service.StartWork(ctx, claimed.ID, "agent-1")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateInProgress, again.State)
	})
}

func TestTicketService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	createTestTicket(t, client.Client, sess, ticket.StateReady, nil)
	claimed, err := service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-1", TenantID: "default"})
	require.NoError(t, err)
	require.NotNil(t, claimed)

	t.Run("extends the lease", func(t *testing.T) {
		ack, err := service.RecordHeartbeat(ctx, claimed.ID, "agent-1")
		require.NoError(t, err)
		assert.False(t, ack.CancelRequested)
		assert.True(t, ack.LeaseExpiresAt.After(time.Now().Add(10*time.Minute)))
	})

	t.Run("rejects a non-holder", func(t *testing.T) {
		_, err := service.RecordHeartbeat(ctx, claimed.ID, "agent-9")
		assert.Equal(t, fault.PolicyViolation, fault.ClassOf(err))
	})

	t.Run("surfaces a pending cancel", func(t *testing.T) {
		_, err := service.CancelTicket(ctx, claimed.ID, "user-1")
		require.NoError(t, err)

		ack, err := service.RecordHeartbeat(ctx, claimed.ID, "agent-1")
		require.NoError(t, err)
		assert.True(t, ack.CancelRequested)
	})
}

func TestTicketService_ExtendLeases(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	past := time.Now().Add(-time.Minute)
	a := createTestTicket(t, client.Client, sess, ticket.StateClaimed, func(c *ent.TicketCreate) {
		c.SetVMID("vm-a").SetLeaseExpiresAt(past).SetLastHeartbeatAt(past)
	})
	createTestTicket(t, client.Client, sess, ticket.StateInProgress, func(c *ent.TicketCreate) {
		c.SetVMID("vm-b").SetLeaseExpiresAt(past).SetLastHeartbeatAt(past)
	})
	// Not in flight; must be left alone.
	createTestTicket(t, client.Client, sess, ticket.StateReady, func(c *ent.TicketCreate) {
		c.SetVMID("vm-c")
	})

	n, err := service.ExtendLeases(ctx, []string{"vm-a", "vm-b", "vm-c"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	refreshed, err := service.GetTicket(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, refreshed.LeaseExpiresAt.After(time.Now()))

	n, err = service.ExtendLeases(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTicketService_SubmitReview(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	createTestTicket(t, client.Client, sess, ticket.StateReady, nil)
	claimed, err := service.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-1", TenantID: "default"})
	require.NoError(t, err)
	_, err = service.StartWork(ctx, claimed.ID, "agent-1")
	require.NoError(t, err)

	t.Run("rejects a non-holder", func(t *testing.T) {
		_, err := service.SubmitReview(ctx, claimed.ID, "agent-2", models.AgentResult{})
		assert.Equal(t, fault.PolicyViolation, fault.ClassOf(err))
	})

	t.Run("stores the result and moves to review", func(t *testing.T) {
		reviewed, err := service.SubmitReview(ctx, claimed.ID, "agent-1", models.AgentResult{
			AgentID:      "agent-1",
			Success:      true,
			Summary:      "implemented the endpoint",
			BranchName:   "swarm/custom-branch",
			FilesChanged: []string{"api/health.go"},
			CriteriaStatus: []models.CriterionResult{
				{ID: "ac-1", Status: "met", Note: "returns 200"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, ticket.StateReview, reviewed.State)
		assert.Nil(t, reviewed.LeaseExpiresAt)
		assert.Equal(t, "swarm/custom-branch", reviewed.BranchName)
		require.Len(t, reviewed.CriteriaStatus, 1)
		assert.Equal(t, "met", reviewed.CriteriaStatus[0]["status"])
		assert.Equal(t, "implemented the endpoint", reviewed.Outputs["summary"])
	})

	t.Run("rejects a second submission", func(t *testing.T) {
		_, err := service.SubmitReview(ctx, claimed.ID, "agent-1", models.AgentResult{})
		assert.Equal(t, fault.InvalidState, fault.ClassOf(err))
	})
}

func TestTicketService_CompleteTicket(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	t.Run("finishes a reviewed ticket", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateReview, nil)

		done, err := service.CompleteTicket(ctx, tkt.ID, "https://git.example.com/acme/checkout/pull/7")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateCompleted, done.State)
		assert.Equal(t, ticket.VerificationStatusPassed, done.VerificationStatus)
		assert.Equal(t, "https://git.example.com/acme/checkout/pull/7", *done.PrURL)
		require.NotNil(t, done.CompletedAt)
	})

	t.Run("rejects tickets that are not in review", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateReady, nil)
		_, err := service.CompleteTicket(ctx, tkt.ID, "")
		assert.Equal(t, fault.InvalidState, fault.ClassOf(err))
	})
}

func TestTicketService_RejectTicket(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	t.Run("requeues while the attempt budget allows", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateReview, func(c *ent.TicketCreate) {
			c.SetAttempt(1).SetMaxAttempts(3).SetAssigneeID("agent-1").SetVMID("vm-1")
		})

		rejected, err := service.RejectTicket(ctx, tkt.ID, "missing error handling")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateReady, rejected.State)
		assert.Equal(t, 2, rejected.Attempt)
		assert.Equal(t, 1, rejected.RejectionCount)
		assert.Equal(t, ticket.VerificationStatusFailed, rejected.VerificationStatus)
		assert.Equal(t, []string{"missing error handling"}, rejected.PriorFeedback)
		assert.Equal(t, "missing error handling", *rejected.LastError)
		assert.Nil(t, rejected.AssigneeID)
		assert.Nil(t, rejected.VMID)
		require.NotNil(t, rejected.NotBefore, "retries wait out a backoff gate")
		assert.True(t, rejected.NotBefore.After(time.Now()))
	})

	t.Run("fails terminally once the budget is spent", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateReview, func(c *ent.TicketCreate) {
			c.SetAttempt(3).SetMaxAttempts(3).
				SetPriorFeedback([]string{"first", "second"})
		})

		failed, err := service.RejectTicket(ctx, tkt.ID, "still broken")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateFailed, failed.State)
		assert.Equal(t, 3, failed.Attempt)
		assert.Equal(t, []string{"first", "second", "still broken"}, failed.PriorFeedback)
		require.NotNil(t, failed.CompletedAt)
	})

	t.Run("rejects tickets that are not in review", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateReady, nil)
		_, err := service.RejectTicket(ctx, tkt.ID, "nope")
		assert.Equal(t, fault.InvalidState, fault.ClassOf(err))
	})
}

func TestTicketService_FailAttempt(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	t.Run("requeues a claimed ticket whose VM never came up", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateClaimed, func(c *ent.TicketCreate) {
			c.SetAttempt(1).SetAssigneeID("agent-1").SetVMID("vm-1")
		})

		requeued, err := service.FailAttempt(ctx, tkt.ID, models.TicketClaimed, "vm spawn failed")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateReady, requeued.State)
		assert.Equal(t, 2, requeued.Attempt)
		assert.Zero(t, requeued.RejectionCount, "infrastructure failures are not verifier rejections")
		assert.Equal(t, ticket.VerificationStatusPending, requeued.VerificationStatus)
	})

	t.Run("honors a cancel that raced the failure", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateInProgress, func(c *ent.TicketCreate) {
			c.SetAttempt(1).SetAssigneeID("agent-1").SetCancelRequested(true)
		})

		done, err := service.FailAttempt(ctx, tkt.ID, models.TicketInProgress, "agent error")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateCancelled, done.State)
		require.NotNil(t, done.CompletedAt)
	})

	t.Run("rejects unknown source states", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateReady, nil)
		_, err := service.FailAttempt(ctx, tkt.ID, models.TicketReady, "nope")
		assert.Equal(t, fault.InvalidState, fault.ClassOf(err))
	})
}

func TestTicketService_ListStaleAndReclaim(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	now := time.Now()
	expired := createTestTicket(t, client.Client, sess, ticket.StateClaimed, func(c *ent.TicketCreate) {
		c.SetAttempt(1).SetAssigneeID("agent-1").
			SetLeaseExpiresAt(now.Add(-time.Minute)).
			SetLastHeartbeatAt(now.Add(-time.Minute))
	})
	silent := createTestTicket(t, client.Client, sess, ticket.StateInProgress, func(c *ent.TicketCreate) {
		c.SetAttempt(1).SetAssigneeID("agent-2").
			SetLeaseExpiresAt(now.Add(time.Hour)).
			SetLastHeartbeatAt(now.Add(-10 * time.Minute))
	})
	createTestTicket(t, client.Client, sess, ticket.StateInProgress, func(c *ent.TicketCreate) {
		c.SetAttempt(1).SetAssigneeID("agent-3").
			SetLeaseExpiresAt(now.Add(time.Hour)).
			SetLastHeartbeatAt(now)
	})

	stale, err := service.ListStale(ctx, now, 5*time.Minute)
	require.NoError(t, err)
	require.Len(t, stale, 2)
	ids := []string{stale[0].ID, stale[1].ID}
	assert.Contains(t, ids, expired.ID)
	assert.Contains(t, ids, silent.ID)

	reclaimed, err := service.Reclaim(ctx, expired, "lease expired")
	require.NoError(t, err)
	assert.Equal(t, ticket.StateReady, reclaimed.State)
	assert.Equal(t, 2, reclaimed.Attempt)
	assert.Nil(t, reclaimed.AssigneeID)
}

func TestTicketService_Cancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	t.Run("cancels idle tickets immediately", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateReady, nil)

		cancelled, err := service.CancelTicket(ctx, tkt.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateCancelled, cancelled.State)
		require.NotNil(t, cancelled.CompletedAt)
	})

	t.Run("flags in-flight tickets for cooperative cancel", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateInProgress, func(c *ent.TicketCreate) {
			c.SetAttempt(1).SetAssigneeID("agent-1")
		})

		flagged, err := service.CancelTicket(ctx, tkt.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateInProgress, flagged.State, "the attempt keeps running")
		assert.True(t, flagged.CancelRequested)

		// The wind-down of the attempt finishes the cancellation.
		done, err := service.FailAttempt(ctx, tkt.ID, models.TicketInProgress, "agent stopped")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateCancelled, done.State)
	})

	t.Run("rejects terminal tickets", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateCompleted, nil)
		_, err := service.CancelTicket(ctx, tkt.ID, "user-1")
		assert.Equal(t, fault.InvalidState, fault.ClassOf(err))
	})
}

func TestTicketService_CancelSessionTickets(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	ready := createTestTicket(t, client.Client, sess, ticket.StateReady, nil)
	blocked := createTestTicket(t, client.Client, sess, ticket.StateBlocked, func(c *ent.TicketCreate) {
		c.SetBlockedByCount(1)
	})
	inflight := createTestTicket(t, client.Client, sess, ticket.StateInProgress, func(c *ent.TicketCreate) {
		c.SetAttempt(1).SetAssigneeID("agent-1")
	})
	done := createTestTicket(t, client.Client, sess, ticket.StateCompleted, nil)

	n, err := service.CancelSessionTickets(ctx, sess.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, id := range []string{ready.ID, blocked.ID} {
		row, err := service.GetTicket(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, ticket.StateCancelled, row.State)
	}

	row, err := service.GetTicket(ctx, inflight.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateInProgress, row.State)
	assert.True(t, row.CancelRequested)

	row, err = service.GetTicket(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateCompleted, row.State, "terminal tickets are untouched")

	// Idempotent: everything is already cancelled or flagged.
	n, err = service.CancelSessionTickets(ctx, sess.ID, "user-1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTicketService_HoldAndResume(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	t.Run("holds and resumes a ready ticket", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateReady, nil)

		held, err := service.HoldTicket(ctx, tkt.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateHold, held.State)

		resumed, err := service.ResumeTicket(ctx, tkt.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateReady, resumed.State)
	})

	t.Run("resume lands on blocked when dependencies remain", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateBlocked, func(c *ent.TicketCreate) {
			c.SetBlockedByCount(2)
		})

		_, err := service.HoldTicket(ctx, tkt.ID, "user-1")
		require.NoError(t, err)

		resumed, err := service.ResumeTicket(ctx, tkt.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateBlocked, resumed.State)
	})

	t.Run("rejects holding in-flight tickets", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateInProgress, func(c *ent.TicketCreate) {
			c.SetAttempt(1).SetAssigneeID("agent-1")
		})
		_, err := service.HoldTicket(ctx, tkt.ID, "user-1")
		assert.Equal(t, fault.InvalidState, fault.ClassOf(err))
	})

	t.Run("rejects resuming a ticket that is not held", func(t *testing.T) {
		tkt := createTestTicket(t, client.Client, sess, ticket.StateReady, nil)
		_, err := service.ResumeTicket(ctx, tkt.ID, "user-1")
		assert.Equal(t, fault.InvalidState, fault.ClassOf(err))
	})
}

func TestTicketService_CascadeCompletion(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	// featureA ← featureB (blocked on A); epic blocked on both; release
	// epic blocked on the epic.
	featureA := createTestTicket(t, client.Client, sess, ticket.StateReview, nil)
	featureB := createTestTicket(t, client.Client, sess, ticket.StateBlocked, func(c *ent.TicketCreate) {
		c.SetBlockedByCount(1)
	})
	epic := createTestTicket(t, client.Client, sess, ticket.StateBlocked, func(c *ent.TicketCreate) {
		c.SetKind(ticket.KindEpic).SetBlockedByCount(2)
	})
	release := createTestTicket(t, client.Client, sess, ticket.StateBlocked, func(c *ent.TicketCreate) {
		c.SetKind(ticket.KindEpic).SetBlockedByCount(1)
	})
	require.NoError(t, client.Ticket.UpdateOneID(featureB.ID).AddDependencyIDs(featureA.ID).Exec(ctx))
	require.NoError(t, client.Ticket.UpdateOneID(epic.ID).AddDependencyIDs(featureA.ID, featureB.ID).Exec(ctx))
	require.NoError(t, client.Ticket.UpdateOneID(release.ID).AddDependencyIDs(epic.ID).Exec(ctx))

	_, err := service.CompleteTicket(ctx, featureA.ID, "")
	require.NoError(t, err)

	changed, err := service.CascadeCompletion(ctx, featureA.ID)
	require.NoError(t, err)
	require.Len(t, changed, 1)
	assert.Equal(t, featureB.ID, changed[0].ID)
	assert.Equal(t, ticket.StateReady, changed[0].State)

	// The epic lost one dependency but still waits on featureB.
	row, err := service.GetTicket(ctx, epic.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StateBlocked, row.State)
	assert.Equal(t, 1, row.BlockedByCount)

	// Finish featureB; the epic auto-completes and cascades into the
	// release epic.
	require.NoError(t, client.Ticket.UpdateOneID(featureB.ID).SetState(ticket.StateReview).Exec(ctx))
	_, err = service.CompleteTicket(ctx, featureB.ID, "")
	require.NoError(t, err)

	changed, err = service.CascadeCompletion(ctx, featureB.ID)
	require.NoError(t, err)
	require.Len(t, changed, 2)
	assert.Equal(t, epic.ID, changed[0].ID)
	assert.Equal(t, ticket.StateCompleted, changed[0].State)
	assert.Equal(t, ticket.VerificationStatusSkipped, changed[0].VerificationStatus)
	assert.Equal(t, release.ID, changed[1].ID)
	assert.Equal(t, ticket.StateCompleted, changed[1].State)

	// Replays find nothing left to flip.
	changed, err = service.CascadeCompletion(ctx, featureB.ID)
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestTicketService_SessionTicketCounts(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	createTestTicket(t, client.Client, sess, ticket.StateReady, nil)
	createTestTicket(t, client.Client, sess, ticket.StateReady, nil)
	createTestTicket(t, client.Client, sess, ticket.StateBlocked, func(c *ent.TicketCreate) {
		c.SetBlockedByCount(1)
	})
	createTestTicket(t, client.Client, sess, ticket.StateInProgress, func(c *ent.TicketCreate) {
		c.SetAttempt(1).SetAssigneeID("agent-1")
	})
	createTestTicket(t, client.Client, sess, ticket.StateCompleted, nil)
	createTestTicket(t, client.Client, sess, ticket.StateFailed, nil)

	counts, err := service.SessionTicketCounts(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCounts{
		Total:      6,
		Ready:      2,
		Blocked:    1,
		InProgress: 1,
		Completed:  1,
		Failed:     1,
	}, counts)
	assert.False(t, counts.Settled())
	assert.Equal(t, 2, counts.Terminal())
}

func TestTicketService_GetTicketWithDependencies(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestTicketService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateBuilding)

	dep1 := createTestTicket(t, client.Client, sess, ticket.StateReady, nil)
	dep2 := createTestTicket(t, client.Client, sess, ticket.StateReady, nil)
	tkt := createTestTicket(t, client.Client, sess, ticket.StateBlocked, func(c *ent.TicketCreate) {
		c.SetBlockedByCount(2)
	})
	require.NoError(t, client.Ticket.UpdateOneID(tkt.ID).AddDependencyIDs(dep1.ID, dep2.ID).Exec(ctx))

	row, deps, err := service.GetTicketWithDependencies(ctx, tkt.ID)
	require.NoError(t, err)
	assert.Equal(t, tkt.ID, row.ID)
	assert.ElementsMatch(t, []string{dep1.ID, dep2.ID}, deps)

	_, _, err = service.GetTicketWithDependencies(ctx, "missing")
	assert.Equal(t, fault.NotFound, fault.ClassOf(err))
}

func TestBuildJobContext(t *testing.T) {
	lease := time.Now().Add(30 * time.Minute)
	assignee := "agent-1"
	tkt := &ent.Ticket{
		ID:          "tkt-1",
		SessionID:   "sess-1",
		ProjectID:   "proj-1",
		TenantID:    "default",
		Kind:        ticket.KindFeature,
		Title:       "Add health endpoint",
		Description: "GET /health returns build info",
		BranchName:  "swarm/tkt-1",
		Attempt:     2,
		AssigneeID:  &assignee,
		PriorFeedback: []string{
			"missing error handling",
		},
		AcceptanceCriteria: []map[string]interface{}{
			{"id": "ac-1", "text": "returns 200"},
			{"id": "ac-2", "text": "includes version", "status": "met"},
		},
		LeaseExpiresAt: &lease,
	}
	project := &ent.Project{
		ID:              "proj-1",
		RepoURL:         "https://git.example.com/acme/checkout.git",
		BaseBranch:      "main",
		CredentialNames: []string{"GIT_TOKEN", "NPM_TOKEN"},
	}

	jc := BuildJobContext(tkt, project)
	assert.Equal(t, "tkt-1", jc.TicketID)
	assert.Equal(t, "swarm/tkt-1", jc.BranchName)
	assert.Equal(t, 2, jc.Attempt)
	assert.Equal(t, lease, jc.LeaseExpiresAt)
	assert.Equal(t, []string{"missing error handling"}, jc.PriorFeedback)
	assert.Equal(t, "https://git.example.com/acme/checkout.git", jc.RepoURL)
	assert.Equal(t, "main", jc.BaseBranch)
	assert.Equal(t, []string{"GIT_TOKEN", "NPM_TOKEN"}, jc.CredentialNames,
		"agents receive credential names only; values are injected by the VM backend")

	require.Len(t, jc.AcceptanceCriteria, 2)
	assert.Equal(t, models.CriterionPending, jc.AcceptanceCriteria[0].Status)
	assert.Equal(t, "met", jc.AcceptanceCriteria[1].Status)

	// Without a project the repository fields stay empty.
	bare := BuildJobContext(tkt, nil)
	assert.Empty(t, bare.RepoURL)
	assert.Empty(t, bare.CredentialNames)
}
