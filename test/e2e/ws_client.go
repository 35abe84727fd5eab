package e2e

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/events"
)

// WSClient is one dashboard-side WebSocket subscriber.
type WSClient struct {
	conn *websocket.Conn
	t    *testing.T
}

// ConnectWS dials /ws and consumes the connection frame. The connection
// closes via t.Cleanup.
func (app *TestApp) ConnectWS(t *testing.T) *WSClient {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, app.WSURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })

	c := &WSClient{conn: conn, t: t}
	frame := c.Next(t)
	require.Equal(t, events.FrameConnected, frame["type"])
	return c
}

// Subscribe attaches to a room and consumes the confirmation. The
// server confirms only after LISTEN is in place, so events published
// after this call are guaranteed to arrive.
func (c *WSClient) Subscribe(t *testing.T, room string) {
	t.Helper()
	c.write(t, events.ClientMessage{Action: "subscribe", Room: room})
	frame := c.Next(t)
	require.Equal(t, events.FrameSubscribed, frame["type"])
	require.Equal(t, room, frame["room"])
}

// SubscribeSince attaches with a resume point; catch-up frames replay
// before the confirmation of live delivery matters.
func (c *WSClient) SubscribeSince(t *testing.T, room string, lastSeq int64) {
	t.Helper()
	c.write(t, events.ClientMessage{Action: "subscribe", Room: room, LastSeq: &lastSeq})
	frame := c.Next(t)
	require.Equal(t, events.FrameSubscribed, frame["type"])
}

// Next reads one frame, failing the test after five seconds.
func (c *WSClient) Next(t *testing.T) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := c.conn.Read(ctx)
	require.NoError(t, err)

	var frame map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

// WaitFor reads frames until one of the wanted type arrives, answering
// pings along the way. Frames of other types are discarded.
func (c *WSClient) WaitFor(t *testing.T, frameType string) map[string]interface{} {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		frame := c.Next(t)
		switch frame["type"] {
		case frameType:
			return frame
		case events.FramePing:
			c.write(t, events.ClientMessage{Action: "pong"})
		}
	}
	t.Fatalf("no %s frame arrived in time", frameType)
	return nil
}

// WaitForState reads frames until a state-change frame of the given type
// lands on the wanted state.
func (c *WSClient) WaitForState(t *testing.T, frameType, toState string) map[string]interface{} {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		frame := c.Next(t)
		switch frame["type"] {
		case frameType:
			if frame["to_state"] == toState {
				return frame
			}
		case events.FramePing:
			c.write(t, events.ClientMessage{Action: "pong"})
		}
	}
	t.Fatalf("no %s frame reached state %s in time", frameType, toState)
	return nil
}

func (c *WSClient) write(t *testing.T, v interface{}) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, c.conn.Write(ctx, websocket.MessageText, data))
}
