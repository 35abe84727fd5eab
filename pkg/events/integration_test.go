package events_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/database"
	"github.com/swarmstack/swarm/pkg/events"
	"github.com/swarmstack/swarm/pkg/models"
	"github.com/swarmstack/swarm/pkg/services"
	testdb "github.com/swarmstack/swarm/test/database"
	"github.com/swarmstack/swarm/test/util"
)

// busTestEnv wires the real event pipeline against a real PostgreSQL:
// publisher → events table + pg_notify → listener → connection manager
// → WebSocket client.
type busTestEnv struct {
	dbClient  *database.Client
	publisher *events.Publisher
	eventSvc  *services.EventService
	manager   *events.ConnectionManager
	listener  *events.Listener
	server    *httptest.Server
	session   *ent.Session
}

func setupBusTest(t *testing.T) *busTestEnv {
	t.Helper()
	ctx := context.Background()

	dbClient := testdb.NewTestClient(t)

	// Durable events FK onto sessions, so every test needs one.
	sess, err := dbClient.Session.Create().
		SetID(uuid.NewString()).
		SetTenantID("default").
		SetInitialPrompt("a service that shortens URLs").
		Save(ctx)
	require.NoError(t, err)

	publisher := events.NewPublisher(dbClient.DB())
	eventSvc := services.NewEventService(dbClient.Client)
	manager := events.NewConnectionManager(eventSvc, 5*time.Second)

	// The listener gets the base connection string: NOTIFY channels are
	// server-global, and LISTEN needs a dedicated connection outside the
	// pool.
	listener := events.NewListener(util.GetBaseConnectionString(t), manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)
	t.Cleanup(func() { listener.Stop(context.Background()) })

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

	return &busTestEnv{
		dbClient:  dbClient,
		publisher: publisher,
		eventSvc:  eventSvc,
		manager:   manager,
		listener:  listener,
		server:    server,
		session:   sess,
	}
}

// ticket builds an in-memory ticket bound to the env's session. Ticket
// events carry no tickets-table FK, so no row is needed.
func (env *busTestEnv) ticket(id string) *ent.Ticket {
	return &ent.Ticket{
		ID:                 id,
		SessionID:          env.session.ID,
		ProjectID:          "proj-int",
		TenantID:           "default",
		Kind:               ticket.KindFeature,
		Title:              "Wire the health endpoint",
		State:              ticket.StateInProgress,
		Priority:           1,
		Attempt:            1,
		MaxAttempts:        3,
		VerificationStatus: ticket.VerificationStatusPending,
	}
}

func (env *busTestEnv) sessionRoom() string {
	return events.SessionRoom(env.session.ID)
}

func (env *busTestEnv) connect(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })

	msg := readFrame(t, conn)
	require.Equal(t, events.FrameConnected, msg["type"])
	return conn
}

// subscribe sends the subscribe action and consumes the confirmation.
// LISTEN completes before the confirmation frame is sent, so events
// published after this call are guaranteed to reach the connection.
func (env *busTestEnv) subscribe(t *testing.T, conn *websocket.Conn, room string, lastSeq *int64) {
	t.Helper()
	writeFrame(t, conn, events.ClientMessage{Action: "subscribe", Room: room, LastSeq: lastSeq})
	msg := readFrame(t, conn)
	require.Equal(t, events.FrameSubscribed, msg["type"])
	require.Equal(t, room, msg["room"])
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeFrame(t *testing.T, conn *websocket.Conn, v interface{}) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestIntegration_DurableEventsPersisted(t *testing.T) {
	env := setupBusTest(t)
	ctx := context.Background()

	err := env.publisher.Publish(ctx, events.SessionState(env.session, "", "create", models.ActorUser, "user-1", nil))
	require.NoError(t, err)
	err = env.publisher.Publish(ctx, events.SessionUpdate(env.session, "context_update", map[string]any{
		"category": "tech_stack",
	}))
	require.NoError(t, err)

	evts, overflow, err := env.eventSvc.GetRoomEventsSince(ctx, env.sessionRoom(), 0, 100)
	require.NoError(t, err)
	require.Len(t, evts, 2)
	assert.False(t, overflow)

	assert.Equal(t, int64(1), evts[0].Seq)
	assert.Equal(t, models.EventSessionState, evts[0].Type)
	assert.Equal(t, env.session.ID, evts[0].SessionID)
	assert.Equal(t, env.sessionRoom(), evts[0].Room)
	assert.Equal(t, "create", evts[0].Action)
	assert.Equal(t, models.ActorUser, evts[0].Actor)

	assert.Equal(t, int64(2), evts[1].Seq)
	assert.Equal(t, models.EventSessionUpdate, evts[1].Type)
	assert.Equal(t, "tech_stack", evts[1].Payload["category"])
	assert.Greater(t, evts[1].ID, evts[0].ID)
}

func TestIntegration_SequencesArePerRoom(t *testing.T) {
	env := setupBusTest(t)
	ctx := context.Background()

	tkt := env.ticket("tkt-seq")
	require.NoError(t, env.publisher.Publish(ctx, events.SessionState(env.session, "", "create", models.ActorUser, "user-1", nil)))
	require.NoError(t, env.publisher.Publish(ctx, events.TicketUpdate(tkt, "", "activate", models.ActorSystem, "", nil)))
	require.NoError(t, env.publisher.Publish(ctx, events.TicketUpdate(tkt, models.TicketReady, "claim", models.ActorAI, "vm-1", nil)))

	ticketEvts, _, err := env.eventSvc.GetRoomEventsSince(ctx, events.TicketRoom(tkt.ID), 0, 100)
	require.NoError(t, err)
	require.Len(t, ticketEvts, 2)
	assert.Equal(t, int64(1), ticketEvts[0].Seq)
	assert.Equal(t, int64(2), ticketEvts[1].Seq)

	sessionEvts, _, err := env.eventSvc.GetRoomEventsSince(ctx, env.sessionRoom(), 0, 100)
	require.NoError(t, err)
	require.Len(t, sessionEvts, 1)
	assert.Equal(t, int64(1), sessionEvts[0].Seq)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupBusTest(t)
	ctx := context.Background()

	err := env.publisher.Publish(ctx, events.BuildProgress(env.session, models.SessionCounts{
		Total: 5, Completed: 2, InProgress: 1, Ready: 2,
	}))
	require.NoError(t, err)

	evts, _, err := env.eventSvc.GetRoomEventsSince(ctx, env.sessionRoom(), 0, 100)
	require.NoError(t, err)
	assert.Empty(t, evts)
}

func TestIntegration_PublishReachesWebSocket(t *testing.T) {
	env := setupBusTest(t)
	ctx := context.Background()

	conn := env.connect(t)
	env.subscribe(t, conn, env.sessionRoom(), nil)

	require.NoError(t, env.publisher.Publish(ctx,
		events.SessionState(env.session, "input", "respond", models.ActorUser, "user-1", nil)))

	msg := readFrame(t, conn)
	assert.Equal(t, models.EventSessionState, msg["type"])
	assert.Equal(t, env.sessionRoom(), msg["room"])
	assert.Equal(t, env.session.ID, msg["session_id"])
	assert.Equal(t, "input", msg["from_state"])
	assert.Equal(t, float64(1), msg["seq"])
	assert.NotNil(t, msg["id"])

	// Transient frames ride the same channel without id or seq.
	require.NoError(t, env.publisher.Publish(ctx,
		events.BuildProgress(env.session, models.SessionCounts{Total: 3, Ready: 3})))

	msg = readFrame(t, conn)
	assert.Equal(t, models.EventBuildProgress, msg["type"])
	assert.Nil(t, msg["id"])
	assert.Nil(t, msg["seq"])
	payload, ok := msg["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), payload["total"])
}

func TestIntegration_MirrorDeliversTicketEventsToSessionRoom(t *testing.T) {
	env := setupBusTest(t)
	ctx := context.Background()

	conn := env.connect(t)
	env.subscribe(t, conn, env.sessionRoom(), nil)

	tkt := env.ticket("tkt-mirror")
	require.NoError(t, env.publisher.Publish(ctx,
		events.TicketUpdate(tkt, models.TicketClaimed, "start_work", models.ActorAI, "vm-2", nil)))

	// The frame arrives through the session mirror but names its
	// canonical room, so clients can resubscribe or catch up precisely.
	msg := readFrame(t, conn)
	assert.Equal(t, models.EventTicketUpdate, msg["type"])
	assert.Equal(t, events.TicketRoom(tkt.ID), msg["room"])
	assert.Equal(t, tkt.ID, msg["ticket_id"])
	assert.Equal(t, env.session.ID, msg["session_id"])
}

func TestIntegration_ResumeReplaysMissedEvents(t *testing.T) {
	env := setupBusTest(t)
	ctx := context.Background()

	for i, action := range []string{"create", "respond", "respond"} {
		from := ""
		if i > 0 {
			from = "clarifying"
		}
		require.NoError(t, env.publisher.Publish(ctx,
			events.SessionState(env.session, from, action, models.ActorUser, "user-1", nil)))
	}

	// A reconnecting client last saw seq 1 and resumes from there.
	conn := env.connect(t)
	var lastSeq int64 = 1
	env.subscribe(t, conn, env.sessionRoom(), &lastSeq)

	first := readFrame(t, conn)
	second := readFrame(t, conn)
	assert.Equal(t, float64(2), first["seq"])
	assert.Equal(t, float64(3), second["seq"])

	// Live delivery continues after the replay.
	require.NoError(t, env.publisher.Publish(ctx,
		events.SessionState(env.session, "clarifying", "generate_spec", models.ActorAI, "", nil)))
	live := readFrame(t, conn)
	assert.Equal(t, float64(4), live["seq"])
}

func TestIntegration_TicketHistoryReplay(t *testing.T) {
	env := setupBusTest(t)
	ctx := context.Background()

	tkt := env.ticket("tkt-history")
	require.NoError(t, env.publisher.Publish(ctx,
		events.TicketUpdate(tkt, "", "activate", models.ActorSystem, "", nil)))
	require.NoError(t, env.publisher.Publish(ctx,
		events.TicketUpdate(tkt, models.TicketReady, "claim", models.ActorAI, "vm-3", nil)))

	tkt.State = ticket.StateCompleted
	require.NoError(t, env.publisher.Publish(ctx,
		events.TicketCompleted(tkt, models.TicketReview, "verify", models.ActorSystem, "", nil)))

	history, err := env.eventSvc.ReplayTicket(ctx, tkt.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "activate", history[0].Action)
	assert.Equal(t, "claim", history[1].Action)
	assert.Equal(t, models.EventTicketCompleted, history[2].Type)
	assert.Equal(t, models.TicketCompleted, history[2].ToState)
}

func TestIntegration_OversizeFrameTruncatedOnWire(t *testing.T) {
	env := setupBusTest(t)
	ctx := context.Background()

	conn := env.connect(t)
	env.subscribe(t, conn, env.sessionRoom(), nil)

	// Push the frame well past the NOTIFY payload limit.
	big := strings.Repeat("x", 9000)
	require.NoError(t, env.publisher.Publish(ctx,
		events.SessionUpdate(env.session, "spec_draft", map[string]any{"excerpt": big})))

	msg := readFrame(t, conn)
	assert.Equal(t, true, msg["truncated"])
	assert.Equal(t, env.sessionRoom(), msg["room"])
	assert.Equal(t, float64(1), msg["seq"])
	assert.Nil(t, msg["payload"], "truncated frames drop the payload")

	// The full event is still durable and reachable through catch-up.
	evts, _, err := env.eventSvc.GetRoomEventsSince(ctx, env.sessionRoom(), 0, 100)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, big, evts[0].Payload["excerpt"])
}
