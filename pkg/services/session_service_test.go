package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/models"
	testdb "github.com/swarmstack/swarm/test/database"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(t, client.Client)
	ctx := context.Background()

	t.Run("requires a prompt", func(t *testing.T) {
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateSession(ctx, models.CreateSessionRequest{Prompt: "   "})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown source types", func(t *testing.T) {
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{
			Prompt:     "a todo app",
			SourceType: "carrier-pigeon",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("applies defaults", func(t *testing.T) {
		sess, err := service.CreateSession(ctx, models.CreateSessionRequest{
			Prompt: "a service that shortens URLs",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, "default", sess.TenantID)
		assert.Equal(t, session.StateInput, sess.State)
		assert.Equal(t, session.SourceTypeDirect, sess.SourceType)
		assert.Zero(t, sess.SpecVersion)
		assert.Nil(t, sess.ProjectID)
	})

	t.Run("stores intake fields", func(t *testing.T) {
		sess, err := service.CreateSession(ctx, models.CreateSessionRequest{
			Prompt:      "migrate the billing exports",
			TenantID:    "acme",
			ProjectName: "billing",
			SourceType:  models.SourceBacklog,
			RepoURL:     "https://git.example.com/acme/billing.git",
			Author:      "user-7",
			Metadata:    map[string]any{"origin": "backlog-import"},
		})
		require.NoError(t, err)
		assert.Equal(t, "acme", sess.TenantID)
		assert.Equal(t, "billing", sess.ProjectName)
		assert.Equal(t, session.SourceTypeBacklog, sess.SourceType)
		assert.Equal(t, "https://git.example.com/acme/billing.git", sess.RepoURL)
		assert.Equal(t, "user-7", *sess.Author)
		assert.Equal(t, "backlog-import", sess.Metadata["origin"])
	})
}

func TestSessionService_Transition(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(t, client.Client)
	ctx := context.Background()

	t.Run("walks the lifecycle table", func(t *testing.T) {
		sess := createTestSession(t, client.Client, session.StateInput)

		for _, to := range []string{
			models.SessionClarifying,
			models.SessionReadyForDocs,
			models.SessionReviewing,
			models.SessionApproved,
		} {
			moved, err := service.Transition(ctx, sess.ID, to, "advance", models.ActorSystem, "")
			require.NoError(t, err)
			assert.Equal(t, to, string(moved.State))
		}
	})

	t.Run("rejects transitions the table does not allow", func(t *testing.T) {
		sess := createTestSession(t, client.Client, session.StateInput)
		_, err := service.Transition(ctx, sess.ID, models.SessionApproved, "skip", models.ActorUser, "user-1")
		assert.Equal(t, fault.InvalidState, fault.ClassOf(err))
	})

	t.Run("revision loops back into generation", func(t *testing.T) {
		sess := createTestSession(t, client.Client, session.StateReviewing)
		moved, err := service.Transition(ctx, sess.ID, models.SessionReadyForDocs, "request_revision", models.ActorUser, "user-1")
		require.NoError(t, err)
		assert.Equal(t, session.StateReadyForDocs, moved.State)
	})

	t.Run("terminal targets stamp completion", func(t *testing.T) {
		sess := createTestSession(t, client.Client, session.StateClarifying)
		moved, err := service.Transition(ctx, sess.ID, models.SessionCancelled, "cancel", models.ActorUser, "user-1")
		require.NoError(t, err)
		assert.Equal(t, session.StateCancelled, moved.State)
		require.NotNil(t, moved.CompletedAt)
	})

	t.Run("entering building stamps the build clock", func(t *testing.T) {
		sess := createTestSession(t, client.Client, session.StateApproved)
		moved, err := service.Transition(ctx, sess.ID, models.SessionBuilding, "start_build", models.ActorUser, "user-1")
		require.NoError(t, err)
		require.NotNil(t, moved.BuildingStartedAt)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := service.Transition(ctx, "missing", models.SessionClarifying, "advance", models.ActorSystem, "")
		assert.Equal(t, fault.NotFound, fault.ClassOf(err))
	})
}

func TestSessionService_ListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(t, client.Client)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	mk := func(tenant string, state session.State, offset time.Duration) string {
		s, err := client.Session.Create().
			SetID("sess-" + tenant + "-" + offset.String()).
			SetTenantID(tenant).
			SetInitialPrompt("an idea").
			SetState(state).
			SetCreatedAt(base.Add(offset)).
			Save(ctx)
		require.NoError(t, err)
		return s.ID
	}

	oldest := mk("default", session.StateInput, 0)
	middle := mk("default", session.StateClarifying, time.Minute)
	newest := mk("default", session.StateBuilding, 2*time.Minute)
	foreign := mk("acme", session.StateClarifying, 3*time.Minute)

	t.Run("newest first with total", func(t *testing.T) {
		rows, total, err := service.ListSessions(ctx, SessionFilter{TenantID: "default"})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, rows, 3)
		assert.Equal(t, newest, rows[0].ID)
		assert.Equal(t, middle, rows[1].ID)
		assert.Equal(t, oldest, rows[2].ID)
	})

	t.Run("pagination keeps the unpaginated total", func(t *testing.T) {
		rows, total, err := service.ListSessions(ctx, SessionFilter{TenantID: "default", Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, rows, 2)

		rows, _, err = service.ListSessions(ctx, SessionFilter{TenantID: "default", Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, oldest, rows[0].ID)
	})

	t.Run("filters by state", func(t *testing.T) {
		rows, total, err := service.ListSessions(ctx, SessionFilter{
			States: []string{models.SessionClarifying},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, rows, 2)
		assert.Equal(t, foreign, rows[0].ID)
		assert.Equal(t, middle, rows[1].ID)
	})

	t.Run("oldest first for recovery scans", func(t *testing.T) {
		rows, err := service.ListSessionsInState(ctx, models.SessionClarifying, models.SessionBuilding)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, middle, rows[0].ID)
		assert.Equal(t, newest, rows[1].ID)
		assert.Equal(t, foreign, rows[2].ID)
	})
}

func TestSessionService_UpdateGathered(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(t, client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateClarifying)

	gathered := models.GatheredContext{
		"project_type": {"kind": "web service"},
		"tech_stack":   {"language": "unspecified"},
	}
	cov := models.Coverage{
		Total:      42,
		Categories: map[string]int{"project_type": 100, "tech_stack": 60},
	}

	updated, err := service.UpdateGathered(ctx, sess.ID, gathered, cov, 3)
	require.NoError(t, err)
	assert.Equal(t, session.StateClarifying, updated.State, "coverage updates are not transitions")
	assert.Equal(t, 42, updated.Progress)
	assert.Equal(t, 3, updated.ClarificationTurns)

	pt, ok := updated.GatheredContext["project_type"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "web service", pt["kind"])

	cats, ok := updated.Coverage["categories"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 100, cats["project_type"])
}

func TestSessionService_SetDraftSpec(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(t, client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateReadyForDocs)

	spec := map[string]interface{}{
		"title":    "URL shortener",
		"overview": "Shortens URLs and tracks hits",
	}
	updated, err := service.SetDraftSpec(ctx, sess.ID, spec, "URL shortener")
	require.NoError(t, err)
	assert.Equal(t, 1, updated.SpecVersion)
	assert.Equal(t, "URL shortener", updated.Title)
	assert.Equal(t, "Shortens URLs and tracks hits", updated.DraftSpec["overview"])

	// A revision bumps the version and keeps the title unless replaced.
	updated, err = service.SetDraftSpec(ctx, sess.ID, spec, "")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.SpecVersion)
	assert.Equal(t, "URL shortener", updated.Title)
}

func TestSessionService_RecordError(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(t, client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateReadyForDocs)

	service.RecordError(ctx, sess.ID, "spec generation timed out")

	row, err := service.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StateReadyForDocs, row.State)
	assert.Equal(t, "spec generation timed out", *row.ErrorMessage)
}

func TestSessionService_BeginBuild(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(t, client.Client)
	ctx := context.Background()

	finalSpec := map[string]interface{}{"title": "URL shortener"}
	seeds := []models.TicketSeed{
		{
			ID:    "tkt-shorten",
			Kind:  models.TicketKindFeature,
			Title: "Shorten endpoint",
			AcceptanceCriteria: []models.AcceptanceCriterion{
				{ID: "ac-1", Text: "POST /shorten returns a short code"},
			},
		},
		{
			ID:        "tkt-redirect",
			Kind:      models.TicketKindFeature,
			Title:     "Redirect endpoint",
			DependsOn: []string{"tkt-shorten"},
		},
		{
			ID:           "tkt-review",
			Kind:         models.TicketKindVerification,
			Title:        "Manual smoke test",
			AssigneeKind: models.AssigneeHuman,
			DependsOn:    []string{"tkt-redirect"},
		},
		{
			ID:        "tkt-epic",
			Kind:      models.TicketKindEpic,
			Title:     "URL shortener",
			DependsOn: []string{"tkt-shorten", "tkt-redirect", "tkt-review"},
		},
	}

	t.Run("requires an approved session", func(t *testing.T) {
		sess := createTestSession(t, client.Client, session.StateReviewing)
		project := createTestProject(t, client.Client, "shortener-early")
		_, _, err := service.BeginBuild(ctx, sess.ID, project.ID, finalSpec, seeds, "user-1")
		assert.Equal(t, fault.InvalidState, fault.ClassOf(err))
	})

	t.Run("refuses an empty plan", func(t *testing.T) {
		sess := createTestSession(t, client.Client, session.StateApproved)
		project := createTestProject(t, client.Client, "shortener-empty")
		_, _, err := service.BeginBuild(ctx, sess.ID, project.ID, finalSpec, nil, "user-1")
		assert.Equal(t, fault.Fatal, fault.ClassOf(err))
	})

	t.Run("freezes the spec and activates the plan", func(t *testing.T) {
		sess := createTestSession(t, client.Client, session.StateApproved)
		project := createTestProject(t, client.Client, "shortener")

		built, tickets, err := service.BeginBuild(ctx, sess.ID, project.ID, finalSpec, seeds, "user-1")
		require.NoError(t, err)
		assert.Equal(t, session.StateBuilding, built.State)
		assert.Equal(t, project.ID, *built.ProjectID)
		assert.Equal(t, "URL shortener", built.FinalSpec["title"])
		require.NotNil(t, built.BuildingStartedAt)

		require.Len(t, tickets, 4)
		byID := make(map[string]int, len(tickets))
		for i, tk := range tickets {
			byID[tk.ID] = i
		}

		shorten := tickets[byID["tkt-shorten"]]
		assert.Equal(t, ticket.StateReady, shorten.State)
		assert.Zero(t, shorten.BlockedByCount)
		assert.Equal(t, 3, shorten.MaxAttempts)
		assert.Equal(t, project.ID, shorten.ProjectID)
		assert.Equal(t, sess.TenantID, shorten.TenantID)
		require.Len(t, shorten.AcceptanceCriteria, 1)
		assert.Equal(t, models.CriterionPending, shorten.AcceptanceCriteria[0]["status"])

		redirect := tickets[byID["tkt-redirect"]]
		assert.Equal(t, ticket.StateBlocked, redirect.State)
		assert.Equal(t, 1, redirect.BlockedByCount)

		review := tickets[byID["tkt-review"]]
		assert.Equal(t, ticket.AssigneeKindHuman, review.AssigneeKind)

		epic := tickets[byID["tkt-epic"]]
		assert.Equal(t, ticket.KindEpic, epic.Kind)
		assert.Equal(t, 3, epic.BlockedByCount)

		// The dependency edges are queryable both ways.
		deps, err := client.Ticket.Query().
			Where(ticket.IDEQ("tkt-epic")).
			QueryDependencies().
			Select(ticket.FieldID).
			Strings(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"tkt-shorten", "tkt-redirect", "tkt-review"}, deps)

		// A second start finds the session already building.
		_, _, err = service.BeginBuild(ctx, sess.ID, project.ID, finalSpec, seeds, "user-1")
		assert.Equal(t, fault.InvalidState, fault.ClassOf(err))
	})
}

func TestSessionService_FinishSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(t, client.Client)
	ctx := context.Background()

	t.Run("all tickets completed", func(t *testing.T) {
		sess := createTestSession(t, client.Client, session.StateBuilding)
		done, err := service.FinishSession(ctx, sess.ID, models.SessionCounts{
			Total: 3, Completed: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, session.StateCompleted, done.State)
		require.NotNil(t, done.CompletedAt)
		assert.Nil(t, done.ErrorMessage)
	})

	t.Run("failures settle the session as failed", func(t *testing.T) {
		sess := createTestSession(t, client.Client, session.StateBuilding)
		done, err := service.FinishSession(ctx, sess.ID, models.SessionCounts{
			Total: 4, Completed: 1, Failed: 1, Blocked: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, session.StateFailed, done.State)
		assert.Equal(t, "1 ticket failed, 2 tickets permanently blocked", *done.ErrorMessage)
	})

	t.Run("requires a building session", func(t *testing.T) {
		sess := createTestSession(t, client.Client, session.StateApproved)
		_, err := service.FinishSession(ctx, sess.ID, models.SessionCounts{Total: 1, Completed: 1})
		assert.Equal(t, fault.InvalidState, fault.ClassOf(err))
	})
}

func TestSessionService_CancelSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := newTestSessionService(t, client.Client)
	ctx := context.Background()

	t.Run("cancels any non-terminal state", func(t *testing.T) {
		for _, state := range []session.State{
			session.StateInput,
			session.StateClarifying,
			session.StateReviewing,
			session.StateBuilding,
		} {
			sess := createTestSession(t, client.Client, state)
			cancelled, err := service.CancelSession(ctx, sess.ID, "user-1")
			require.NoError(t, err, "from %s", state)
			assert.Equal(t, session.StateCancelled, cancelled.State)
			require.NotNil(t, cancelled.CompletedAt)
		}
	})

	t.Run("rejects terminal sessions", func(t *testing.T) {
		sess := createTestSession(t, client.Client, session.StateCompleted)
		_, err := service.CancelSession(ctx, sess.ID, "user-1")
		assert.Equal(t, fault.InvalidState, fault.ClassOf(err))
	})
}
