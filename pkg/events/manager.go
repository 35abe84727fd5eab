package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/swarmstack/swarm/pkg/models"
)

// catchupLimit caps how many events one catch-up replay returns. Beyond
// it a catchup.overflow frame tells the client to refetch full state
// over REST instead of paginating.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block while
// subscribing to a new room. Without it a stalled connection would hang
// the subscribing client's read loop.
const listenTimeout = 10 * time.Second

// keepaliveInterval is the ping cadence. A subscriber that shows no
// inbound traffic for a full interval after a ping is terminated.
const keepaliveInterval = 30 * time.Second

// sendBuffer is each subscriber's outbound frame queue. When it stays
// full past the write timeout the subscriber is dropped.
const sendBuffer = 64

// dedupWindow is how many recent durable event IDs each subscriber
// remembers. Mirrored rooms deliver the same event through several
// NOTIFY channels; the window absorbs those duplicates.
const dedupWindow = 256

// CatchupSource replays a room's durable events after a sequence
// number. services.EventService implements it.
type CatchupSource interface {
	GetRoomEventsSince(ctx context.Context, room string, afterSeq int64, limit int) ([]models.BusEvent, bool, error)
}

// ConnectionManager tracks WebSocket subscribers and their room
// subscriptions for one process and fans received frames out to them.
type ConnectionManager struct {
	mu    sync.RWMutex
	conns map[string]*subscriber

	roomMu sync.RWMutex
	rooms  map[string]map[string]bool // room → set of connection IDs

	catchup CatchupSource

	listenerMu sync.RWMutex
	listener   *Listener

	writeTimeout time.Duration
}

// subscriber is one WebSocket client. The rooms map is only touched by
// the goroutine running HandleConnection (read loop plus deferred
// cleanup), so it needs no lock; the dedup state is shared between the
// broadcast path and catch-up and takes seenMu.
type subscriber struct {
	ID   string
	conn *websocket.Conn

	out    chan []byte
	rooms  map[string]bool
	ctx    context.Context
	cancel context.CancelFunc

	lastActive atomic.Int64 // unix nanos of the last inbound message

	seenMu sync.Mutex
	seen   map[int64]struct{}
	ring   [dedupWindow]int64
	ringAt int
}

// active records inbound traffic for keepalive accounting.
func (s *subscriber) active() {
	s.lastActive.Store(time.Now().UnixNano())
}

// markSeen reports whether the durable event ID is new to this
// subscriber and remembers it, evicting the oldest remembered ID once
// the window is full. ID zero (transient frames) is never deduplicated.
func (s *subscriber) markSeen(id int64) bool {
	if id == 0 {
		return true
	}
	s.seenMu.Lock()
	defer s.seenMu.Unlock()
	if _, dup := s.seen[id]; dup {
		return false
	}
	if old := s.ring[s.ringAt]; old != 0 {
		delete(s.seen, old)
	}
	s.ring[s.ringAt] = id
	s.ringAt = (s.ringAt + 1) % dedupWindow
	s.seen[id] = struct{}{}
	return true
}

// NewConnectionManager creates a manager that replays missed events
// from source and drops subscribers that stall longer than writeTimeout.
func NewConnectionManager(source CatchupSource, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		conns:        make(map[string]*subscriber),
		rooms:        make(map[string]map[string]bool),
		catchup:      source,
		writeTimeout: writeTimeout,
	}
}

// SetListener wires the NOTIFY listener for dynamic LISTEN/UNLISTEN.
// Called once at startup after both sides exist.
func (m *ConnectionManager) SetListener(l *Listener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection runs one WebSocket connection to completion: a
// writer goroutine drains the outbound queue, a keepalive goroutine
// pings and enforces liveness, and the calling goroutine reads client
// messages until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	s := &subscriber{
		ID:     uuid.NewString(),
		conn:   conn,
		out:    make(chan []byte, sendBuffer),
		rooms:  make(map[string]bool),
		ctx:    ctx,
		cancel: cancel,
		seen:   make(map[int64]struct{}, dedupWindow),
	}
	s.active()

	m.mu.Lock()
	m.conns[s.ID] = s
	m.mu.Unlock()
	defer m.unregister(s)

	go m.writeLoop(s)
	go m.keepaliveLoop(s)

	m.sendJSON(s, map[string]string{
		"type":          FrameConnected,
		"connection_id": s.ID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		s.active()

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", s.ID, "error", err)
			continue
		}
		m.handleClientMessage(ctx, s, &msg)
	}
}

// writeLoop is the sole writer on the connection. Each write gets the
// manager's write timeout; a failed write terminates the subscriber.
func (m *ConnectionManager) writeLoop(s *subscriber) {
	for {
		select {
		case <-s.ctx.Done():
			return
		case frame := <-s.out:
			writeCtx, cancel := context.WithTimeout(s.ctx, m.writeTimeout)
			err := s.conn.Write(writeCtx, websocket.MessageText, frame)
			cancel()
			if err != nil {
				slog.Warn("WebSocket write failed", "connection_id", s.ID, "error", err)
				s.cancel()
				return
			}
		}
	}
}

// keepaliveLoop pings on a fixed cadence and terminates the subscriber
// when a whole interval passes after a ping without any inbound
// traffic. Client pings count as liveness too.
func (m *ConnectionManager) keepaliveLoop(s *subscriber) {
	ticker := time.NewTicker(keepaliveInterval)
	defer ticker.Stop()

	var lastPing time.Time
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			seen := time.Unix(0, s.lastActive.Load())
			if !lastPing.IsZero() && seen.Before(lastPing) {
				slog.Warn("Dropping unresponsive subscriber", "connection_id", s.ID)
				_ = s.conn.Close(websocket.StatusPolicyViolation, "keepalive timeout")
				s.cancel()
				return
			}
			m.sendJSON(s, map[string]string{"type": FramePing})
			lastPing = time.Now()
		}
	}
}

// Broadcast fans one frame out to every subscriber of the room,
// skipping subscribers that already received the same durable event
// through a mirrored room. Called by the Listener's receive loop.
func (m *ConnectionManager) Broadcast(room string, frame []byte) {
	var hdr struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(frame, &hdr)

	m.roomMu.RLock()
	ids := make([]string, 0, len(m.rooms[room]))
	for id := range m.rooms[room] {
		ids = append(ids, id)
	}
	m.roomMu.RUnlock()
	if len(ids) == 0 {
		return
	}

	m.mu.RLock()
	subs := make([]*subscriber, 0, len(ids))
	for _, id := range ids {
		if s, ok := m.conns[id]; ok {
			subs = append(subs, s)
		}
	}
	m.mu.RUnlock()

	for _, s := range subs {
		if !s.markSeen(hdr.ID) {
			continue
		}
		m.enqueue(s, frame)
	}
}

// enqueue hands a frame to the subscriber's writer. A full queue gets
// the write timeout to drain; after that the subscriber is dropped so
// one stalled client never blocks the broadcast path.
func (m *ConnectionManager) enqueue(s *subscriber, frame []byte) {
	select {
	case s.out <- frame:
		return
	case <-s.ctx.Done():
		return
	default:
	}

	t := time.NewTimer(m.writeTimeout)
	defer t.Stop()
	select {
	case s.out <- frame:
	case <-s.ctx.Done():
	case <-t.C:
		slog.Warn("Dropping slow subscriber", "connection_id", s.ID)
		_ = s.conn.Close(websocket.StatusPolicyViolation, "slow consumer")
		s.cancel()
	}
}

// ActiveConnections returns the count of open WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

// subscriberCount reports a room's subscriber count. Tests poll it
// instead of sleeping.
func (m *ConnectionManager) subscriberCount(room string) int {
	m.roomMu.RLock()
	defer m.roomMu.RUnlock()
	return len(m.rooms[room])
}

// handleClientMessage dispatches one parsed client message.
func (m *ConnectionManager) handleClientMessage(ctx context.Context, s *subscriber, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		rooms := msg.targets()
		if len(rooms) == 0 {
			m.sendJSON(s, map[string]string{"type": FrameError, "message": "room is required for subscribe"})
			return
		}
		for _, room := range rooms {
			if err := m.subscribe(s, room); err != nil {
				m.sendJSON(s, map[string]string{
					"type":    FrameSubscribeError,
					"room":    room,
					"message": "failed to subscribe to room",
				})
				continue
			}
			m.sendJSON(s, map[string]string{
				"type": FrameSubscribed,
				"room": room,
			})
			// Resume delivery from the client's last seen position when
			// one was sent; otherwise the subscription is live-only.
			if msg.LastSeq != nil {
				m.sendCatchup(ctx, s, room, *msg.LastSeq)
			}
		}

	case "unsubscribe":
		rooms := msg.targets()
		if len(rooms) == 0 {
			m.sendJSON(s, map[string]string{"type": FrameError, "message": "room is required for unsubscribe"})
			return
		}
		for _, room := range rooms {
			m.unsubscribe(s, room)
		}

	case "catchup":
		if msg.Room == "" || msg.LastSeq == nil {
			m.sendJSON(s, map[string]string{"type": FrameError, "message": "room and last_seq are required for catchup"})
			return
		}
		m.sendCatchup(ctx, s, msg.Room, *msg.LastSeq)

	case "ping":
		m.sendJSON(s, map[string]string{"type": FramePong})

	case "pong":
		// Liveness was recorded by the read loop.

	default:
		m.sendJSON(s, map[string]string{"type": FrameError, "message": "unknown action"})
	}
}

// subscribe registers the subscriber for a room, LISTENing on the
// room's NOTIFY channel first when this is the room's first local
// subscriber. LISTEN completes before the confirmation frame so a
// subsequent catch-up closes the gap between replay and live delivery.
func (m *ConnectionManager) subscribe(s *subscriber, room string) error {
	m.roomMu.Lock()
	needsListen := false
	if _, ok := m.rooms[room]; !ok {
		m.rooms[room] = make(map[string]bool)
		needsListen = true
	}
	m.rooms[room][s.ID] = true
	m.roomMu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Listen(listenCtx, room); err != nil {
				slog.Error("Failed to LISTEN on room", "room", room, "error", err)
				m.evictRoom(s, room)
				return fmt.Errorf("listen on room %s: %w", room, err)
			}
		}
	}

	s.rooms[room] = true
	return nil
}

// evictRoom removes every subscriber from a room after a LISTEN
// failure and tells each one except the triggering subscriber, which
// learns from its own error frame.
//
// Between releasing roomMu and LISTEN completing, other subscribers may
// have joined the room; they skipped LISTEN because the room entry
// already existed and were confirmed on a channel that never came up.
// Clients must treat subscription.error as authoritative: drop received
// events for the room and re-subscribe or fall back to REST.
func (m *ConnectionManager) evictRoom(triggering *subscriber, room string) {
	m.roomMu.Lock()
	affected := make([]string, 0, len(m.rooms[room]))
	for id := range m.rooms[room] {
		if id != triggering.ID {
			affected = append(affected, id)
		}
	}
	delete(m.rooms, room)
	m.roomMu.Unlock()

	if len(affected) == 0 {
		return
	}

	m.mu.RLock()
	subs := make([]*subscriber, 0, len(affected))
	for _, id := range affected {
		if s, ok := m.conns[id]; ok {
			subs = append(subs, s)
		}
	}
	m.mu.RUnlock()

	for _, s := range subs {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", s.ID, "room", room)
		m.sendJSON(s, map[string]string{
			"type":    FrameSubscribeError,
			"room":    room,
			"message": "room listen failed; subscription removed",
		})
	}
}

// unsubscribe removes the subscriber from a room and UNLISTENs once the
// last subscriber leaves. The UNLISTEN goroutine re-checks membership
// first so a rapid unsubscribe/resubscribe cycle cannot drop an active
// LISTEN.
func (m *ConnectionManager) unsubscribe(s *subscriber, room string) {
	m.roomMu.Lock()
	if subs, ok := m.rooms[room]; ok {
		delete(subs, s.ID)
		if len(subs) == 0 {
			delete(m.rooms, room)
			m.listenerMu.RLock()
			l := m.listener
			m.listenerMu.RUnlock()
			if l != nil {
				go func() {
					m.roomMu.RLock()
					_, resubscribed := m.rooms[room]
					m.roomMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unlisten(context.Background(), room); err != nil {
						slog.Error("Failed to UNLISTEN room", "room", room, "error", err)
					}
				}()
			}
		}
	}
	m.roomMu.Unlock()

	delete(s.rooms, room)
}

// sendCatchup replays the room's durable events after afterSeq, then
// flags overflow when more remained than one replay may carry. Replayed
// events pass through the dedup window so frames arriving live during
// the replay are not delivered twice.
func (m *ConnectionManager) sendCatchup(ctx context.Context, s *subscriber, room string, afterSeq int64) {
	if m.catchup == nil {
		return
	}

	evts, overflow, err := m.catchup.GetRoomEventsSince(ctx, room, afterSeq, catchupLimit)
	if err != nil {
		slog.Error("Catchup query failed", "room", room, "error", err)
		return
	}

	for i := range evts {
		if !s.markSeen(evts[i].ID) {
			continue
		}
		frame, err := json.Marshal(&evts[i])
		if err != nil {
			continue
		}
		m.enqueue(s, frame)
	}

	if overflow {
		m.sendJSON(s, map[string]any{
			"type": FrameCatchupOverflow,
			"room": room,
		})
	}
}

// unregister tears one subscriber down: leaves all rooms, drops the
// connection entry, and closes the socket.
func (m *ConnectionManager) unregister(s *subscriber) {
	for room := range s.rooms {
		m.unsubscribe(s, room)
	}

	m.mu.Lock()
	delete(m.conns, s.ID)
	m.mu.Unlock()

	s.cancel()
	_ = s.conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and enqueues a control frame.
func (m *ConnectionManager) sendJSON(s *subscriber, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket frame", "connection_id", s.ID, "error", err)
		return
	}
	m.enqueue(s, data)
}
