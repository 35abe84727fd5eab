package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent/message"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/pkg/fault"
	testdb "github.com/swarmstack/swarm/test/database"
)

func TestMessageService_AppendMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client, nil)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateClarifying)

	t.Run("validates input", func(t *testing.T) {
		_, err := service.AppendMessage(ctx, "", "user", "chat", "hello", "", nil)
		assert.True(t, IsValidationError(err))

		_, err = service.AppendMessage(ctx, sess.ID, "user", "chat", "", "", nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("assigns consecutive sequence numbers", func(t *testing.T) {
		first, err := service.AppendMessage(ctx, sess.ID, "user", "chat",
			"I want a URL shortener", "user-1", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Seq)
		assert.Equal(t, message.RoleUser, first.Role)
		assert.Equal(t, "user-1", *first.ActorID)

		second, err := service.AppendMessage(ctx, sess.ID, "assistant", "clarification",
			"What scale do you expect?", "", map[string]interface{}{"category": "scale"})
		require.NoError(t, err)
		assert.Equal(t, 2, second.Seq)
		assert.Equal(t, message.MessageTypeClarification, second.MessageType)
		assert.Equal(t, "scale", second.Meta["category"])
	})

	t.Run("sequences are per session", func(t *testing.T) {
		other := createTestSession(t, client.Client, session.StateClarifying)
		msg, err := service.AppendMessage(ctx, other.ID, "user", "chat", "another idea", "", nil)
		require.NoError(t, err)
		assert.Equal(t, 1, msg.Seq)
	})
}

func TestMessageService_ListMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client, nil)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateClarifying)

	for _, content := range []string{"one", "two", "three", "four"} {
		_, err := service.AppendMessage(ctx, sess.ID, "user", "chat", content, "", nil)
		require.NoError(t, err)
	}

	t.Run("full transcript in order", func(t *testing.T) {
		msgs, err := service.ListMessages(ctx, sess.ID, 0, 0)
		require.NoError(t, err)
		require.Len(t, msgs, 4)
		assert.Equal(t, "one", msgs[0].Content)
		assert.Equal(t, "four", msgs[3].Content)
	})

	t.Run("after a known position", func(t *testing.T) {
		msgs, err := service.ListMessages(ctx, sess.ID, 2, 0)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "three", msgs[0].Content)
	})

	t.Run("bounded page", func(t *testing.T) {
		msgs, err := service.ListMessages(ctx, sess.ID, 0, 2)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "one", msgs[0].Content)
	})

	count, err := service.CountMessages(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestMessageService_LastAssistantMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMessageService(client.Client, nil)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateClarifying)

	_, err := service.LastAssistantMessage(ctx, sess.ID)
	assert.Equal(t, fault.NotFound, fault.ClassOf(err))

	_, err = service.AppendMessage(ctx, sess.ID, "assistant", "clarification", "What tech stack?", "", nil)
	require.NoError(t, err)
	_, err = service.AppendMessage(ctx, sess.ID, "user", "chat", "Go, probably", "user-1", nil)
	require.NoError(t, err)
	_, err = service.AppendMessage(ctx, sess.ID, "assistant", "clarification", "Expected traffic?", "", nil)
	require.NoError(t, err)

	last, err := service.LastAssistantMessage(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Expected traffic?", last.Content)
	assert.Equal(t, 3, last.Seq)
}
