package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/models"
)

func TestMarshalForNotify(t *testing.T) {
	t.Run("passes through normal frame", func(t *testing.T) {
		frame := frameFromEnvelope(Envelope{
			Room:      "session:abc-123",
			Type:      models.EventSessionState,
			SessionID: "abc-123",
			ToState:   "clarifying",
		}, time.Now())
		frame.ID = 7
		frame.Seq = 3

		result, err := marshalForNotify(frame)
		require.NoError(t, err)
		assert.Contains(t, result, models.EventSessionState)
		assert.Contains(t, result, "abc-123")
		assert.NotContains(t, result, "truncated")

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &decoded))
		assert.Equal(t, float64(7), decoded["id"])
		assert.Equal(t, float64(3), decoded["seq"])
	})

	t.Run("truncates oversized frame keeping routing fields", func(t *testing.T) {
		frame := frameFromEnvelope(Envelope{
			Room:      "ticket:tkt-1",
			Type:      models.EventTicketUpdate,
			SessionID: "sess-1",
			TicketID:  "tkt-1",
			Payload: map[string]any{
				"last_error": strings.Repeat("a", 9000),
			},
		}, time.Now())
		frame.ID = 41
		frame.Seq = 12

		result, err := marshalForNotify(frame)
		require.NoError(t, err)
		assert.Less(t, len(result), 8000)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &decoded))
		assert.Equal(t, true, decoded["truncated"])
		assert.Equal(t, float64(41), decoded["id"])
		assert.Equal(t, float64(12), decoded["seq"])
		assert.Equal(t, "ticket:tkt-1", decoded["room"])
		assert.Equal(t, "tkt-1", decoded["ticket_id"])
		_, hasPayload := decoded["payload"]
		assert.False(t, hasPayload)
	})
}

func TestFrameFromEnvelope(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	frame := frameFromEnvelope(Envelope{
		Room:      "ticket:tkt-1",
		Type:      models.EventTicketUpdate,
		SessionID: "sess-1",
		TicketID:  "tkt-1",
		FromState: "claimed",
		ToState:   "in_progress",
		Action:    "start_work",
		Actor:     models.ActorAI,
		ActorID:   "vm-1",
	}, at)

	assert.Equal(t, "ticket:tkt-1", frame.Room)
	assert.Equal(t, "claimed", frame.FromState)
	assert.Equal(t, "in_progress", frame.ToState)
	assert.Equal(t, "2026-03-14T09:26:53Z", frame.CreatedAt)
	assert.Zero(t, frame.ID)
	assert.Zero(t, frame.Seq)

	data, err := json.Marshal(frame)
	require.NoError(t, err)
	// Transient frames must not claim a durable identity.
	assert.NotContains(t, string(data), `"id"`)
	assert.NotContains(t, string(data), `"seq"`)
}

func TestMergePrecedence(t *testing.T) {
	base := map[string]any{"a": 1, "b": 2}
	out := merge(base, map[string]any{"b": 3, "c": 4})
	assert.Equal(t, map[string]any{"a": 1, "b": 3, "c": 4}, out)

	assert.Nil(t, merge(nil, nil))
	assert.Equal(t, map[string]any{"x": 1}, merge(nil, map[string]any{"x": 1}))
	same := map[string]any{"y": 2}
	assert.Equal(t, same, merge(same, nil))
}

func TestReleaseSeq(t *testing.T) {
	p := &Publisher{seqs: map[string]int64{"session:a": 5}}

	// Most recent assignment rolls back.
	p.releaseSeq("session:a", 5)
	assert.Equal(t, int64(4), p.seqs["session:a"])

	// A stale release after a later assignment is ignored.
	p.seqs["session:a"] = 9
	p.releaseSeq("session:a", 5)
	assert.Equal(t, int64(9), p.seqs["session:a"])
}
