package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/session"
	testdb "github.com/swarmstack/swarm/test/database"
)

// seedEvent inserts one durable event row directly. The publisher's
// transactional write path is covered by the bus integration tests.
func seedEvent(t *testing.T, client *ent.Client, room string, seq int64, typ string, mut func(*ent.EventCreate)) *ent.Event {
	t.Helper()
	c := client.Event.Create().
		SetRoom(room).
		SetSeq(seq).
		SetType(typ)
	if mut != nil {
		mut(c)
	}
	row, err := c.Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestEventService_GetRoomEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	room := "ticket:tkt-1"
	for seq := int64(1); seq <= 5; seq++ {
		seedEvent(t, client.Client, room, seq, "ticket.update", func(c *ent.EventCreate) {
			c.SetTicketID("tkt-1").
				SetAction("claim").
				SetActor("ai").
				SetPayload(map[string]interface{}{"attempt": seq})
		})
	}
	seedEvent(t, client.Client, "ticket:tkt-2", 1, "ticket.update", nil)

	t.Run("replays a room in order", func(t *testing.T) {
		evts, overflow, err := service.GetRoomEventsSince(ctx, room, 0, 0)
		require.NoError(t, err)
		assert.False(t, overflow)
		require.Len(t, evts, 5)
		for i, e := range evts {
			assert.Equal(t, int64(i+1), e.Seq)
			assert.Equal(t, room, e.Room)
			assert.Equal(t, "tkt-1", e.TicketID)
			assert.Equal(t, "claim", e.Action)
		}
	})

	t.Run("resumes after a sequence", func(t *testing.T) {
		evts, overflow, err := service.GetRoomEventsSince(ctx, room, 3, 0)
		require.NoError(t, err)
		assert.False(t, overflow)
		require.Len(t, evts, 2)
		assert.Equal(t, int64(4), evts[0].Seq)
		assert.Equal(t, int64(5), evts[1].Seq)
	})

	t.Run("reports overflow past the limit", func(t *testing.T) {
		evts, overflow, err := service.GetRoomEventsSince(ctx, room, 0, 2)
		require.NoError(t, err)
		assert.True(t, overflow)
		require.Len(t, evts, 2)
		assert.Equal(t, int64(1), evts[0].Seq)
		assert.Equal(t, int64(2), evts[1].Seq)
	})

	t.Run("exact fit is not an overflow", func(t *testing.T) {
		evts, overflow, err := service.GetRoomEventsSince(ctx, room, 0, 5)
		require.NoError(t, err)
		assert.False(t, overflow)
		assert.Len(t, evts, 5)
	})

	t.Run("unknown room is empty", func(t *testing.T) {
		evts, overflow, err := service.GetRoomEventsSince(ctx, "ticket:nope", 0, 0)
		require.NoError(t, err)
		assert.False(t, overflow)
		assert.Empty(t, evts)
	})
}

func TestEventService_LatestRoomSeq(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	seq, err := service.LatestRoomSeq(ctx, "session:none")
	require.NoError(t, err)
	assert.Zero(t, seq)

	seedEvent(t, client.Client, "session:s1", 1, "session.state", nil)
	seedEvent(t, client.Client, "session:s1", 2, "session.state", nil)

	seq, err = service.LatestRoomSeq(ctx, "session:s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), seq)
}

func TestEventService_ReplayTicket(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	// A ticket's history lives in its own room; the replay cuts across
	// rooms by ticket ID in write order.
	seedEvent(t, client.Client, "ticket:tkt-9", 1, "ticket.update", func(c *ent.EventCreate) {
		c.SetTicketID("tkt-9").SetAction("claim")
	})
	seedEvent(t, client.Client, "ticket:tkt-9", 2, "ticket.update", func(c *ent.EventCreate) {
		c.SetTicketID("tkt-9").SetAction("start")
	})
	seedEvent(t, client.Client, "ticket:tkt-9", 3, "ticket.completed", func(c *ent.EventCreate) {
		c.SetTicketID("tkt-9").SetAction("verify_pass")
	})
	seedEvent(t, client.Client, "ticket:other", 1, "ticket.update", func(c *ent.EventCreate) {
		c.SetTicketID("tkt-other")
	})

	history, err := service.ReplayTicket(ctx, "tkt-9")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "claim", history[0].Action)
	assert.Equal(t, "start", history[1].Action)
	assert.Equal(t, "verify_pass", history[2].Action)
	assert.Equal(t, "ticket.completed", history[2].Type)

	history, err = service.ReplayTicket(ctx, "tkt-unknown")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestEventService_Retention(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateCompleted)
	keep := createTestSession(t, client.Client, session.StateBuilding)

	t.Run("deletes one session's events", func(t *testing.T) {
		for seq := int64(1); seq <= 3; seq++ {
			seedEvent(t, client.Client, "session:"+sess.ID, seq, "session.state", func(c *ent.EventCreate) {
				c.SetSessionID(sess.ID)
			})
		}
		seedEvent(t, client.Client, "session:"+keep.ID, 1, "session.state", func(c *ent.EventCreate) {
			c.SetSessionID(keep.ID)
		})

		n, err := service.DeleteSessionEvents(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		evts, _, err := service.GetRoomEventsSince(ctx, "session:"+sess.ID, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, evts)

		evts, _, err = service.GetRoomEventsSince(ctx, "session:"+keep.ID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, evts, 1, "other sessions keep their history")
	})

	t.Run("prunes old sessionless events only", func(t *testing.T) {
		old := time.Now().Add(-48 * time.Hour)
		seedEvent(t, client.Client, "fleet", 1, "vm.state", func(c *ent.EventCreate) {
			c.SetCreatedAt(old)
		})
		seedEvent(t, client.Client, "fleet", 2, "vm.state", nil)
		seedEvent(t, client.Client, "session:"+keep.ID, 2, "session.state", func(c *ent.EventCreate) {
			c.SetSessionID(keep.ID).SetCreatedAt(old)
		})

		n, err := service.DeleteOrphanEvents(ctx, time.Now().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, n, "session-bound events are the session sweep's business")

		evts, _, err := service.GetRoomEventsSince(ctx, "fleet", 0, 0)
		require.NoError(t, err)
		require.Len(t, evts, 1)
		assert.Equal(t, int64(2), evts[0].Seq)
	})
}
