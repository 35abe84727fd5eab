package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/event"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/services"
	testdb "github.com/swarmstack/swarm/test/database"
)

func newTestService(t *testing.T) (*ent.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := &config.RetentionConfig{
		SessionRetentionDays: 30,
		EventTTL:             24 * time.Hour,
		CleanupInterval:      time.Hour,
	}
	sessions := services.NewSessionService(client.Client, nil)
	require.NoError(t, sessions.LoadStates(context.Background()))
	events := services.NewEventService(client.Client)
	return client.Client, NewService(cfg, sessions, events, nil)
}

func seedSession(t *testing.T, client *ent.Client, state session.State, completedAt time.Time) *ent.Session {
	t.Helper()
	c := client.Session.Create().
		SetID(uuid.NewString()).
		SetTenantID("default").
		SetInitialPrompt("a service that shortens URLs").
		SetState(state)
	if !completedAt.IsZero() {
		c.SetCompletedAt(completedAt)
	}
	s, err := c.Save(context.Background())
	require.NoError(t, err)
	return s
}

func seedSessionEvents(t *testing.T, client *ent.Client, sessionID string, n int) {
	t.Helper()
	for seq := 1; seq <= n; seq++ {
		_, err := client.Event.Create().
			SetRoom("session:" + sessionID).
			SetSeq(int64(seq)).
			SetType("session.state").
			SetSessionID(sessionID).
			Save(context.Background())
		require.NoError(t, err)
	}
}

func countRoomEvents(t *testing.T, client *ent.Client, room string) int {
	t.Helper()
	n, err := client.Event.Query().
		Where(event.Room(room)).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestService_PrunesEventsOfOldTerminalSessions(t *testing.T) {
	client, svc := newTestService(t)
	longAgo := time.Now().AddDate(0, 0, -40)

	expired := seedSession(t, client, session.StateCompleted, longAgo)
	seedSessionEvents(t, client, expired.ID, 3)
	failed := seedSession(t, client, session.StateFailed, longAgo)
	seedSessionEvents(t, client, failed.ID, 2)

	recent := seedSession(t, client, session.StateCompleted, time.Now())
	seedSessionEvents(t, client, recent.ID, 2)

	active := seedSession(t, client, session.StateBuilding, time.Time{})
	seedSessionEvents(t, client, active.ID, 2)

	svc.sweep()

	assert.Zero(t, countRoomEvents(t, client, "session:"+expired.ID))
	assert.Zero(t, countRoomEvents(t, client, "session:"+failed.ID))
	assert.Equal(t, 2, countRoomEvents(t, client, "session:"+recent.ID),
		"sessions inside the retention window keep their history")
	assert.Equal(t, 2, countRoomEvents(t, client, "session:"+active.ID),
		"running sessions are never pruned")
}

func TestService_SweepConverges(t *testing.T) {
	client, svc := newTestService(t)
	longAgo := time.Now().AddDate(0, 0, -40)

	expired := seedSession(t, client, session.StateCancelled, longAgo)
	seedSessionEvents(t, client, expired.ID, 4)

	svc.sweep()
	require.Zero(t, countRoomEvents(t, client, "session:"+expired.ID))

	// A pruned session has no event rows left, so it drops out of the
	// candidate set instead of being reprocessed forever.
	ids, err := svc.sessions.ListRetentionCandidates(context.Background(), time.Now(), retentionBatch)
	require.NoError(t, err)
	assert.Empty(t, ids)

	svc.sweep()
	assert.Zero(t, countRoomEvents(t, client, "session:"+expired.ID))
}

func TestService_PrunesOrphanEventsOnTTL(t *testing.T) {
	client, svc := newTestService(t)
	ctx := context.Background()

	_, err := client.Event.Create().
		SetRoom("fleet").
		SetSeq(1).
		SetType("vm.state").
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Event.Create().
		SetRoom("fleet").
		SetSeq(2).
		SetType("vm.state").
		Save(ctx)
	require.NoError(t, err)

	// An equally old event that belongs to a live session is the session
	// sweep's business, not the TTL's.
	active := seedSession(t, client, session.StateBuilding, time.Time{})
	_, err = client.Event.Create().
		SetRoom("session:" + active.ID).
		SetSeq(1).
		SetType("session.state").
		SetSessionID(active.ID).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc.sweep()

	assert.Equal(t, 1, countRoomEvents(t, client, "fleet"))
	assert.Equal(t, 1, countRoomEvents(t, client, "session:"+active.ID))
}

func TestService_FailureRaisesWarning(t *testing.T) {
	client, svc := newTestService(t)
	warnings := services.NewSystemWarningsService()
	svc.warnings = warnings

	require.NoError(t, client.Close())
	svc.sweep()

	warns := warnings.GetWarnings()
	require.NotEmpty(t, warns)
	assert.Equal(t, services.WarningCategoryRetention, warns[0].Category)
}

func TestService_SuccessClearsWarning(t *testing.T) {
	_, svc := newTestService(t)
	warnings := services.NewSystemWarningsService()
	svc.warnings = warnings

	warnings.AddWarning(services.WarningCategoryRetention,
		"event retention sweep is failing", "connection refused", "sessions")
	warnings.AddWarning(services.WarningCategoryRetention,
		"event retention sweep is failing", "connection refused", "orphans")

	svc.sweep()

	assert.Empty(t, warnings.GetWarnings())
}

func TestService_StartStop(t *testing.T) {
	_, svc := newTestService(t)

	svc.Start(context.Background())
	svc.Start(context.Background()) // second Start is a no-op

	done := make(chan struct{})
	go func() {
		svc.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}
