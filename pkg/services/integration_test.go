package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/models"
	testdb "github.com/swarmstack/swarm/test/database"
)

// TestServiceIntegration drives sessions end to end across the services,
// composing them the way the production flow does: intake, clarification,
// spec review, build start, agent claims, verification verdicts, and
// settlement.
func TestServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	sessionService := newTestSessionService(t, client.Client)
	projectService := NewProjectService(client.Client)
	messageService := NewMessageService(client.Client, nil)
	approvalService := NewApprovalService(client.Client)
	ticketService := newTestTicketService(client.Client)

	t.Run("prompt to completed build", func(t *testing.T) {
		// Intake.
		sess, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{
			Prompt: "a service that shortens URLs",
			Author: "user-7",
		})
		require.NoError(t, err)
		assert.Equal(t, session.StateInput, sess.State)

		// Clarification: one question, one answer, coverage high enough
		// to advance.
		_, err = sessionService.Transition(ctx, sess.ID, models.SessionClarifying, "begin_clarify", models.ActorSystem, "")
		require.NoError(t, err)
		_, err = messageService.AppendMessage(ctx, sess.ID, "assistant", "clarification",
			"What scale should this handle?", "", map[string]interface{}{"category": "scale"})
		require.NoError(t, err)
		_, err = messageService.AppendMessage(ctx, sess.ID, "user", "chat",
			"Small, on the order of 100 requests per second", "user-7", nil)
		require.NoError(t, err)
		_, err = sessionService.UpdateGathered(ctx, sess.ID,
			models.GatheredContext{"scale": {"rps": "100"}},
			models.Coverage{Total: 85, Categories: map[string]int{"scale": 100}}, 1)
		require.NoError(t, err)

		// Spec drafting and review.
		_, err = sessionService.Transition(ctx, sess.ID, models.SessionReadyForDocs, "coverage_reached", models.ActorSystem, "")
		require.NoError(t, err)
		sess, err = sessionService.SetDraftSpec(ctx, sess.ID,
			map[string]interface{}{"title": "URL shortener"}, "URL shortener")
		require.NoError(t, err)
		assert.Equal(t, 1, sess.SpecVersion)
		_, err = sessionService.Transition(ctx, sess.ID, models.SessionReviewing, "spec_ready", models.ActorSystem, "")
		require.NoError(t, err)

		// Human approval binds to the spec version.
		_, err = approvalService.Record(ctx, ApprovalRecord{
			SessionID:   sess.ID,
			Kind:        ApprovalSpec,
			SpecVersion: sess.SpecVersion,
			ApprovedBy:  "user-7",
		})
		require.NoError(t, err)
		_, err = sessionService.Transition(ctx, sess.ID, models.SessionApproved, "approve", models.ActorUser, "user-7")
		require.NoError(t, err)

		// Build start: bind the project and activate the plan.
		project, err := projectService.EnsureProject(ctx, "default", "shortener",
			"https://git.example.com/acme/shortener.git")
		require.NoError(t, err)

		seeds := []models.TicketSeed{
			{ID: "tkt-api", Kind: models.TicketKindFeature, Title: "Shorten and redirect endpoints"},
			{ID: "tkt-docs", Kind: models.TicketKindFeature, Title: "Usage documentation",
				DependsOn: []string{"tkt-api"}},
			{ID: "tkt-root", Kind: models.TicketKindEpic, Title: "URL shortener",
				DependsOn: []string{"tkt-api", "tkt-docs"}},
		}
		_, tickets, err := sessionService.BeginBuild(ctx, sess.ID, project.ID,
			map[string]interface{}{"title": "URL shortener"}, seeds, "user-7")
		require.NoError(t, err)
		require.Len(t, tickets, 3)

		// First agent pull gets the unblocked feature.
		claimed, err := ticketService.ClaimNext(ctx, models.ClaimRequest{
			AgentID: "agent-1", VMID: "vm-1", TenantID: "default",
		})
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, "tkt-api", claimed.ID)

		jc := BuildJobContext(claimed, project)
		assert.Equal(t, project.RepoURL, jc.RepoURL)
		assert.Equal(t, "swarm/tkt-api", jc.BranchName)

		// Nothing else is claimable while the dependency holds.
		next, err := ticketService.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-2", TenantID: "default"})
		require.NoError(t, err)
		assert.Nil(t, next)

		// Work the ticket through to a passing verdict.
		_, err = ticketService.StartWork(ctx, claimed.ID, "agent-1")
		require.NoError(t, err)
		_, err = ticketService.SubmitReview(ctx, claimed.ID, "agent-1", models.AgentResult{
			AgentID: "agent-1", Success: true, Summary: "endpoints implemented",
		})
		require.NoError(t, err)
		_, err = ticketService.CompleteTicket(ctx, claimed.ID, "https://git.example.com/acme/shortener/pull/1")
		require.NoError(t, err)
		changed, err := ticketService.CascadeCompletion(ctx, claimed.ID)
		require.NoError(t, err)
		require.Len(t, changed, 1)
		assert.Equal(t, "tkt-docs", changed[0].ID)
		assert.Equal(t, ticket.StateReady, changed[0].State)

		// Second pull gets the activated dependent; finishing it
		// auto-completes the epic.
		claimed, err = ticketService.ClaimNext(ctx, models.ClaimRequest{
			AgentID: "agent-2", VMID: "vm-2", TenantID: "default",
		})
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, "tkt-docs", claimed.ID)
		_, err = ticketService.StartWork(ctx, claimed.ID, "agent-2")
		require.NoError(t, err)
		_, err = ticketService.SubmitReview(ctx, claimed.ID, "agent-2", models.AgentResult{
			AgentID: "agent-2", Success: true, Summary: "docs written",
		})
		require.NoError(t, err)
		_, err = ticketService.CompleteTicket(ctx, claimed.ID, "https://git.example.com/acme/shortener/pull/2")
		require.NoError(t, err)
		changed, err = ticketService.CascadeCompletion(ctx, claimed.ID)
		require.NoError(t, err)
		require.Len(t, changed, 1)
		assert.Equal(t, "tkt-root", changed[0].ID)
		assert.Equal(t, ticket.StateCompleted, changed[0].State)

		// Settlement.
		counts, err := ticketService.SessionTicketCounts(ctx, sess.ID)
		require.NoError(t, err)
		assert.True(t, counts.Settled())
		assert.True(t, counts.Succeeded())

		done, err := sessionService.FinishSession(ctx, sess.ID, counts)
		require.NoError(t, err)
		assert.Equal(t, session.StateCompleted, done.State)

		// The paper trail survives the whole run.
		msgs, err := messageService.ListMessages(ctx, sess.ID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, msgs, 2)
		approvals, err := approvalService.ListApprovals(ctx, sess.ID)
		require.NoError(t, err)
		assert.Len(t, approvals, 1)
	})

	t.Run("exhausted retries settle the session as failed", func(t *testing.T) {
		sess := createTestSession(t, client.Client, session.StateApproved)
		project := createTestProject(t, client.Client, "flaky")

		seeds := []models.TicketSeed{
			{ID: "tkt-flaky", Kind: models.TicketKindFeature, Title: "Feature nobody can build", MaxAttempts: 2},
		}
		_, _, err := sessionService.BeginBuild(ctx, sess.ID, project.ID,
			map[string]interface{}{"title": "flaky"}, seeds, "user-1")
		require.NoError(t, err)

		// First attempt: rejected by the verifier, requeued behind a
		// backoff gate.
		claimed, err := ticketService.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-1", TenantID: "default"})
		require.NoError(t, err)
		require.NotNil(t, claimed)
		_, err = ticketService.StartWork(ctx, claimed.ID, "agent-1")
		require.NoError(t, err)
		_, err = ticketService.SubmitReview(ctx, claimed.ID, "agent-1", models.AgentResult{AgentID: "agent-1"})
		require.NoError(t, err)
		rejected, err := ticketService.RejectTicket(ctx, claimed.ID, "acceptance criteria unmet")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateReady, rejected.State)
		assert.Equal(t, 2, rejected.Attempt)
		require.NotNil(t, rejected.NotBefore)

		// The gate hides the ticket from claims until it elapses.
		gated, err := ticketService.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-1", TenantID: "default"})
		require.NoError(t, err)
		assert.Nil(t, gated)
		require.NoError(t, client.Ticket.UpdateOneID(claimed.ID).ClearNotBefore().Exec(ctx))

		// Second attempt: rejected again, budget spent.
		claimed, err = ticketService.ClaimNext(ctx, models.ClaimRequest{AgentID: "agent-1", TenantID: "default"})
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, 2, claimed.Attempt, "retries keep their pre-assigned pass number")
		_, err = ticketService.StartWork(ctx, claimed.ID, "agent-1")
		require.NoError(t, err)
		_, err = ticketService.SubmitReview(ctx, claimed.ID, "agent-1", models.AgentResult{AgentID: "agent-1"})
		require.NoError(t, err)
		failed, err := ticketService.RejectTicket(ctx, claimed.ID, "still unmet")
		require.NoError(t, err)
		assert.Equal(t, ticket.StateFailed, failed.State)
		assert.Equal(t, []string{"acceptance criteria unmet", "still unmet"}, failed.PriorFeedback)

		counts, err := ticketService.SessionTicketCounts(ctx, sess.ID)
		require.NoError(t, err)
		assert.True(t, counts.Settled())
		assert.False(t, counts.Succeeded())

		done, err := sessionService.FinishSession(ctx, sess.ID, counts)
		require.NoError(t, err)
		assert.Equal(t, session.StateFailed, done.State)
		assert.Equal(t, "1 ticket failed", *done.ErrorMessage)
	})
}
