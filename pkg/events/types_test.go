package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomNames(t *testing.T) {
	assert.Equal(t, "session:abc-123", SessionRoom("abc-123"))
	assert.Equal(t, "ticket:t-9", TicketRoom("t-9"))
	assert.Equal(t, "project:p-1", ProjectRoom("p-1"))
	assert.Equal(t, "tenant:acme", TenantRoom("acme"))
	assert.Equal(t, "vm:fleet", FleetRoom)
}

func TestClientMessageTargets(t *testing.T) {
	t.Run("single room", func(t *testing.T) {
		msg := ClientMessage{Room: "session:a"}
		assert.Equal(t, []string{"session:a"}, msg.targets())
	})

	t.Run("room list", func(t *testing.T) {
		msg := ClientMessage{Rooms: []string{"session:a", "ticket:b"}}
		assert.Equal(t, []string{"session:a", "ticket:b"}, msg.targets())
	})

	t.Run("combined without duplicates", func(t *testing.T) {
		msg := ClientMessage{Room: "session:a", Rooms: []string{"session:a", "ticket:b", ""}}
		assert.Equal(t, []string{"session:a", "ticket:b"}, msg.targets())
	})

	t.Run("empty", func(t *testing.T) {
		msg := ClientMessage{}
		assert.Empty(t, msg.targets())
	})
}
