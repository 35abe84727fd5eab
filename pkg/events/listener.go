package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
)

// Broadcaster receives frames read off the LISTEN connection. The
// ConnectionManager implements it; tests substitute a recorder.
type Broadcaster interface {
	Broadcast(room string, frame []byte)
}

// listenCmd is a LISTEN/UNLISTEN statement executed by the receive
// loop, which is the sole goroutine allowed to touch the pgx
// connection.
type listenCmd struct {
	sql    string
	result chan error
}

// WarningSink records operational warnings for the status endpoints.
// services.SystemWarningsService satisfies it; the interface lives here
// because services already depends on this package.
type WarningSink interface {
	AddWarning(category, message, details, sourceID string) string
	ClearBySourceID(category, sourceID string) bool
}

// warningCategoryEventBus matches services.WarningCategoryEventBus.
const warningCategoryEventBus = "event_bus"

// Listener owns a dedicated PostgreSQL connection, LISTENs on rooms
// with at least one local subscriber, and hands received frames to the
// Broadcaster. Rooms double as NOTIFY channel names.
type Listener struct {
	connString string
	sink       Broadcaster
	warnings   WarningSink

	connMu sync.Mutex
	conn   *pgx.Conn

	roomsMu sync.RWMutex
	rooms   map[string]bool

	// cmdCh serializes LISTEN/UNLISTEN through the receive loop. Running
	// them from other goroutines races WaitForNotification with "conn busy".
	cmdCh   chan listenCmd
	running atomic.Bool

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewListener creates a listener for the given connection string. Use
// the base database URL, not the pooled handle; LISTEN needs a
// connection of its own.
func NewListener(connString string, sink Broadcaster) *Listener {
	return &Listener{
		connString: connString,
		sink:       sink,
		rooms:      make(map[string]bool),
		cmdCh:      make(chan listenCmd, 16),
	}
}

// SetWarnings surfaces lost LISTEN connections on the system warnings
// endpoint. Call before Start.
func (l *Listener) SetWarnings(ws WarningSink) {
	l.warnings = ws
}

// Start opens the LISTEN connection and runs the receive loop until
// Stop is called or the context ends.
func (l *Listener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("connect for LISTEN: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()
	l.running.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("Event listener started")
	return nil
}

// Listen subscribes the process to a room's NOTIFY channel. Idempotent.
func (l *Listener) Listen(ctx context.Context, room string) error {
	l.roomsMu.Lock()
	if l.rooms[room] {
		l.roomsMu.Unlock()
		return nil
	}
	l.roomsMu.Unlock()

	if !l.running.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	if err := l.exec(ctx, "LISTEN "+pgx.Identifier{room}.Sanitize()); err != nil {
		return fmt.Errorf("LISTEN %s: %w", room, err)
	}
	l.roomsMu.Lock()
	l.rooms[room] = true
	l.roomsMu.Unlock()
	slog.Debug("Listening on room", "room", room)
	return nil
}

// Unlisten drops the room subscription. Idempotent.
func (l *Listener) Unlisten(ctx context.Context, room string) error {
	l.roomsMu.Lock()
	if !l.rooms[room] {
		l.roomsMu.Unlock()
		return nil
	}
	l.roomsMu.Unlock()

	if !l.running.Load() {
		return nil
	}

	if err := l.exec(ctx, "UNLISTEN "+pgx.Identifier{room}.Sanitize()); err != nil {
		return fmt.Errorf("UNLISTEN %s: %w", room, err)
	}
	l.roomsMu.Lock()
	delete(l.rooms, room)
	l.roomsMu.Unlock()
	return nil
}

// exec routes one statement through the receive loop and waits for its
// result.
func (l *Listener) exec(ctx context.Context, stmt string) error {
	cmd := listenCmd{sql: stmt, result: make(chan error, 1)}
	select {
	case l.cmdCh <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop waits for notifications and dispatches them to the sink.
// It alone touches the pgx connection, alternating between pending
// LISTEN/UNLISTEN commands and short notification waits.
func (l *Listener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.processPendingCmds(ctx)

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()
		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		// Short wait so pending commands are picked up promptly.
		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.sink.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

// processPendingCmds drains queued LISTEN/UNLISTEN statements.
func (l *Listener) processPendingCmds(ctx context.Context) {
	for {
		select {
		case cmd := <-l.cmdCh:
			l.connMu.Lock()
			conn := l.conn
			l.connMu.Unlock()
			if conn == nil {
				cmd.result <- fmt.Errorf("LISTEN connection not established")
				continue
			}
			_, err := conn.Exec(ctx, cmd.sql)
			cmd.result <- err
		default:
			return
		}
	}
}

// reconnect re-establishes the LISTEN connection with exponential
// backoff and re-issues LISTEN for every tracked room. Events NOTIFYed
// while disconnected are lost to live delivery; clients recover them
// through sequence-gap catch-up.
func (l *Listener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(bo.NextBackOff()):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err)
			if l.warnings != nil {
				l.warnings.AddWarning(warningCategoryEventBus,
					"live event delivery is down; clients fall back to catch-up",
					err.Error(), "listener")
			}
			continue
		}
		l.conn = conn

		l.roomsMu.RLock()
		for room := range l.rooms {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{room}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN failed", "room", room, "error", err)
			}
		}
		l.roomsMu.RUnlock()

		if l.warnings != nil {
			l.warnings.ClearBySourceID(warningCategoryEventBus, "listener")
		}
		slog.Info("Event listener reconnected")
		return
	}
}

// Running reports whether the receive loop is active. The loop keeps
// reconnecting on its own, so false means Start was never called or
// Stop already ran.
func (l *Listener) Running() bool {
	return l.running.Load()
}

// Stop shuts the receive loop down and closes the connection. Safe to
// call once after Start.
func (l *Listener) Stop(ctx context.Context) {
	l.running.Store(false)

	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
