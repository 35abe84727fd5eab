package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/models"
)

// fakeCatchupSource implements CatchupSource for tests.
type fakeCatchupSource struct {
	events   []models.BusEvent
	overflow bool
	err      error
}

func (f *fakeCatchupSource) GetRoomEventsSince(_ context.Context, room string, afterSeq int64, limit int) ([]models.BusEvent, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	out := make([]models.BusEvent, 0, len(f.events))
	for _, e := range f.events {
		if e.Room == room && e.Seq > afterSeq {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		return out[:limit], true, nil
	}
	return out, f.overflow, nil
}

func setupTestManager(t *testing.T, source CatchupSource) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(source, 5*time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func sendJSON(t *testing.T, conn *websocket.Conn, v interface{}) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

// subscribeAndConfirm subscribes to one room and consumes handshake frames.
func subscribeAndConfirm(t *testing.T, conn *websocket.Conn, room string) {
	t.Helper()
	sendJSON(t, conn, ClientMessage{Action: "subscribe", Room: room})
	msg := readJSON(t, conn)
	require.Equal(t, FrameSubscribed, msg["type"])
	require.Equal(t, room, msg["room"])
}

func waitForSubscribers(t *testing.T, m *ConnectionManager, room string, want int) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if m.subscriberCount(room) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("room %s never reached %d subscribers", room, want)
}

func TestConnectionEstablished(t *testing.T) {
	_, server := setupTestManager(t, &fakeCatchupSource{})
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, FrameConnected, msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestSubscribeAndBroadcast(t *testing.T) {
	manager, server := setupTestManager(t, &fakeCatchupSource{})
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	subscribeAndConfirm(t, conn, "session:a")
	waitForSubscribers(t, manager, "session:a", 1)

	frame, _ := json.Marshal(map[string]any{
		"id": 11, "room": "session:a", "seq": 1, "type": models.EventSessionState,
	})
	manager.Broadcast("session:a", frame)

	msg := readJSON(t, conn)
	assert.Equal(t, models.EventSessionState, msg["type"])
	assert.Equal(t, float64(1), msg["seq"])
}

func TestBroadcastSkipsOtherRooms(t *testing.T) {
	manager, server := setupTestManager(t, &fakeCatchupSource{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribeAndConfirm(t, conn, "session:a")
	waitForSubscribers(t, manager, "session:a", 1)

	other, _ := json.Marshal(map[string]any{"id": 5, "room": "session:b", "type": models.EventSessionState})
	manager.Broadcast("session:b", other)

	mine, _ := json.Marshal(map[string]any{"id": 6, "room": "session:a", "type": models.EventSessionUpdate})
	manager.Broadcast("session:a", mine)

	// Only the session:a frame arrives.
	msg := readJSON(t, conn)
	assert.Equal(t, models.EventSessionUpdate, msg["type"])
}

func TestMirrorDeduplication(t *testing.T) {
	manager, server := setupTestManager(t, &fakeCatchupSource{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	// Subscribed to both the ticket room and its session mirror.
	subscribeAndConfirm(t, conn, "ticket:t1")
	subscribeAndConfirm(t, conn, "session:s1")
	waitForSubscribers(t, manager, "ticket:t1", 1)
	waitForSubscribers(t, manager, "session:s1", 1)

	frame, _ := json.Marshal(map[string]any{
		"id": 99, "room": "ticket:t1", "seq": 4, "type": models.EventTicketUpdate,
	})
	// The publisher NOTIFYes the canonical room and the mirror; both
	// reach Broadcast.
	manager.Broadcast("ticket:t1", frame)
	manager.Broadcast("session:s1", frame)

	follow, _ := json.Marshal(map[string]any{
		"id": 100, "room": "ticket:t1", "seq": 5, "type": models.EventTicketCompleted,
	})
	manager.Broadcast("ticket:t1", follow)

	first := readJSON(t, conn)
	second := readJSON(t, conn)
	assert.Equal(t, models.EventTicketUpdate, first["type"])
	// The duplicate was suppressed, so the next frame is the follow-up.
	assert.Equal(t, models.EventTicketCompleted, second["type"])
}

func TestTransientFramesAreNotDeduplicated(t *testing.T) {
	manager, server := setupTestManager(t, &fakeCatchupSource{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribeAndConfirm(t, conn, FleetRoom)
	waitForSubscribers(t, manager, FleetRoom, 1)

	// Transient frames carry no durable id; repeated delivery is expected.
	frame, _ := json.Marshal(map[string]any{"room": FleetRoom, "type": models.EventVMState})
	manager.Broadcast(FleetRoom, frame)
	manager.Broadcast(FleetRoom, frame)

	assert.Equal(t, models.EventVMState, readJSON(t, conn)["type"])
	assert.Equal(t, models.EventVMState, readJSON(t, conn)["type"])
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	manager, server := setupTestManager(t, &fakeCatchupSource{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribeAndConfirm(t, conn, "session:a")
	waitForSubscribers(t, manager, "session:a", 1)

	sendJSON(t, conn, ClientMessage{Action: "unsubscribe", Room: "session:a"})
	waitForSubscribers(t, manager, "session:a", 0)

	gone, _ := json.Marshal(map[string]any{"id": 7, "room": "session:a", "type": models.EventSessionState})
	manager.Broadcast("session:a", gone)

	// A ping round-trip proves the missed frame is not queued behind it.
	sendJSON(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, FramePong, msg["type"])
}

func TestSubscribeWithResume(t *testing.T) {
	source := &fakeCatchupSource{
		events: []models.BusEvent{
			{ID: 1, Room: "session:a", Seq: 1, Type: models.EventSessionState},
			{ID: 2, Room: "session:a", Seq: 2, Type: models.EventSessionUpdate},
			{ID: 3, Room: "session:a", Seq: 3, Type: models.EventMessageNew},
		},
	}
	_, server := setupTestManager(t, source)
	conn := connectWS(t, server)
	readJSON(t, conn)

	var lastSeq int64 = 1
	sendJSON(t, conn, ClientMessage{Action: "subscribe", Room: "session:a", LastSeq: &lastSeq})

	require.Equal(t, FrameSubscribed, readJSON(t, conn)["type"])
	first := readJSON(t, conn)
	second := readJSON(t, conn)
	assert.Equal(t, float64(2), first["seq"])
	assert.Equal(t, float64(3), second["seq"])
}

func TestSubscribeWithoutResumeIsLiveOnly(t *testing.T) {
	source := &fakeCatchupSource{
		events: []models.BusEvent{
			{ID: 1, Room: "session:a", Seq: 1, Type: models.EventSessionState},
		},
	}
	_, server := setupTestManager(t, source)
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribeAndConfirm(t, conn, "session:a")

	// No replay: the next frame is the pong, not the stored event.
	sendJSON(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, FramePong, readJSON(t, conn)["type"])
}

func TestCatchupOverflow(t *testing.T) {
	source := &fakeCatchupSource{
		events: []models.BusEvent{
			{ID: 1, Room: "session:a", Seq: 1, Type: models.EventSessionState},
		},
		overflow: true,
	}
	_, server := setupTestManager(t, source)
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribeAndConfirm(t, conn, "session:a")
	var lastSeq int64
	sendJSON(t, conn, ClientMessage{Action: "catchup", Room: "session:a", LastSeq: &lastSeq})

	first := readJSON(t, conn)
	assert.Equal(t, models.EventSessionState, first["type"])
	over := readJSON(t, conn)
	assert.Equal(t, FrameCatchupOverflow, over["type"])
	assert.Equal(t, "session:a", over["room"])
}

func TestBatchSubscribe(t *testing.T) {
	manager, server := setupTestManager(t, &fakeCatchupSource{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	sendJSON(t, conn, ClientMessage{Action: "subscribe", Rooms: []string{"session:a", "ticket:b"}})
	require.Equal(t, FrameSubscribed, readJSON(t, conn)["type"])
	require.Equal(t, FrameSubscribed, readJSON(t, conn)["type"])

	waitForSubscribers(t, manager, "session:a", 1)
	waitForSubscribers(t, manager, "ticket:b", 1)
	assert.Equal(t, 1, manager.ActiveConnections())
}

func TestSubscribeRequiresRoom(t *testing.T) {
	_, server := setupTestManager(t, &fakeCatchupSource{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	sendJSON(t, conn, ClientMessage{Action: "subscribe"})
	msg := readJSON(t, conn)
	assert.Equal(t, FrameError, msg["type"])
}

func TestUnknownActionRejected(t *testing.T) {
	_, server := setupTestManager(t, &fakeCatchupSource{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	sendJSON(t, conn, ClientMessage{Action: "shout"})
	msg := readJSON(t, conn)
	assert.Equal(t, FrameError, msg["type"])
}

func TestDisconnectCleansUpSubscriptions(t *testing.T) {
	manager, server := setupTestManager(t, &fakeCatchupSource{})
	conn := connectWS(t, server)
	readJSON(t, conn)

	subscribeAndConfirm(t, conn, "session:a")
	waitForSubscribers(t, manager, "session:a", 1)

	conn.Close(websocket.StatusNormalClosure, "")
	waitForSubscribers(t, manager, "session:a", 0)

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) && manager.ActiveConnections() != 0 {
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, 0, manager.ActiveConnections())
}

func TestSlowSubscriberIsDropped(t *testing.T) {
	// A server-side connection the test never reads from, wired into a
	// manually built subscriber so the outbound queue can be primed full.
	connCh := make(chan *websocket.Conn, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		connCh <- c
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	connectWS(t, server)

	var serverConn *websocket.Conn
	select {
	case serverConn = <-connCh:
	case <-time.After(3 * time.Second):
		t.Fatal("no server connection")
	}

	manager := NewConnectionManager(nil, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	s := &subscriber{
		ID:     "slow",
		conn:   serverConn,
		out:    make(chan []byte, 1),
		rooms:  make(map[string]bool),
		ctx:    ctx,
		cancel: cancel,
		seen:   make(map[int64]struct{}),
	}
	// No write loop runs, so the queue never drains.
	s.out <- []byte(`{"type":"x"}`)

	manager.enqueue(s, []byte(`{"type":"y"}`))

	select {
	case <-s.ctx.Done():
		// Dropped after the write timeout elapsed.
	case <-time.After(time.Second):
		t.Fatal("slow subscriber was not dropped")
	}
}

func TestMarkSeenWindow(t *testing.T) {
	s := &subscriber{seen: make(map[int64]struct{}, dedupWindow)}

	assert.True(t, s.markSeen(1))
	assert.False(t, s.markSeen(1))
	assert.True(t, s.markSeen(0), "transient frames bypass dedup")
	assert.True(t, s.markSeen(0))

	// Fill the window; the oldest entry is evicted and becomes new again.
	for i := int64(2); i <= dedupWindow+1; i++ {
		require.True(t, s.markSeen(i), "id %d", i)
	}
	assert.True(t, s.markSeen(1))
}
