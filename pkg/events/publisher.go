package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// notifyLimit is the size above which a NOTIFY payload is replaced by a
// truncation envelope. PostgreSQL caps notification payloads at 8000
// bytes; the margin covers the fields the envelope itself adds.
const notifyLimit = 7900

// Publisher persists events and broadcasts them for WebSocket delivery.
// Durable envelopes are written to the events table and NOTIFYed in a
// single transaction, so a committed row always has a matching
// notification and vice versa. Transient envelopes are NOTIFY-only.
//
// Sequence numbers are monotonic per canonical room. The publisher
// assigns them from an in-memory counter seeded lazily from MAX(seq);
// with one coordinator process that is the only writer, which this
// system assumes.
type Publisher struct {
	db     *sql.DB
	masker PayloadMasker

	mu   sync.Mutex
	seqs map[string]int64
}

// PayloadMasker redacts credential material from event payloads before
// they are persisted or broadcast. Implemented by masking.Service.
type PayloadMasker interface {
	MaskMap(payload map[string]interface{}) map[string]interface{}
}

// NewPublisher creates a Publisher on the database handle shared with
// the ent client.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{
		db:   db,
		seqs: make(map[string]int64),
	}
}

// SetMasker installs the payload masker. Call before the publisher is
// shared across goroutines.
func (p *Publisher) SetMasker(m PayloadMasker) {
	p.masker = m
}

// Publish delivers one envelope: a durable insert plus NOTIFY for
// persistent envelopes, NOTIFY alone for transient ones. Callers run
// AFTER their domain transaction commits; a publish failure therefore
// never invalidates domain state and callers log it rather than
// propagate it.
func (p *Publisher) Publish(ctx context.Context, env Envelope) error {
	if env.Room == "" {
		return fmt.Errorf("envelope has no room")
	}
	// Payloads carry free text from agents and operators; scrub them
	// once here so every downstream copy (row, NOTIFY, mirror) is clean.
	if p.masker != nil && len(env.Payload) > 0 {
		env.Payload = p.masker.MaskMap(env.Payload)
	}
	if !env.Persist {
		return p.notifyOnly(ctx, env)
	}
	return p.persistAndNotify(ctx, env)
}

// wireFrame is the JSON shape delivered to subscribers and stored as
// the NOTIFY payload. It mirrors models.BusEvent.
type wireFrame struct {
	ID        int64          `json:"id,omitempty"`
	Room      string         `json:"room"`
	Seq       int64          `json:"seq,omitempty"`
	Type      string         `json:"type"`
	SessionID string         `json:"session_id,omitempty"`
	TicketID  string         `json:"ticket_id,omitempty"`
	FromState string         `json:"from_state,omitempty"`
	ToState   string         `json:"to_state,omitempty"`
	Action    string         `json:"action,omitempty"`
	Actor     string         `json:"actor,omitempty"`
	ActorID   string         `json:"actor_id,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt string         `json:"created_at"`
}

func frameFromEnvelope(env Envelope, at time.Time) wireFrame {
	return wireFrame{
		Room:      env.Room,
		Type:      env.Type,
		SessionID: env.SessionID,
		TicketID:  env.TicketID,
		FromState: env.FromState,
		ToState:   env.ToState,
		Action:    env.Action,
		Actor:     env.Actor,
		ActorID:   env.ActorID,
		Payload:   env.Payload,
		CreatedAt: at.UTC().Format(time.RFC3339Nano),
	}
}

// persistAndNotify writes the event row and fires NOTIFY on the
// canonical room and every mirror inside one transaction. pg_notify is
// transactional: nothing is delivered unless the row commits.
func (p *Publisher) persistAndNotify(ctx context.Context, env Envelope) error {
	now := time.Now()
	frame := frameFromEnvelope(env, now)

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	seq, err := p.nextSeq(ctx, tx, env.Room)
	if err != nil {
		return err
	}
	frame.Seq = seq

	var sessionID, ticketID any
	if env.SessionID != "" {
		sessionID = env.SessionID
	}
	if env.TicketID != "" {
		ticketID = env.TicketID
	}
	payloadJSON, err := json.Marshal(env.Payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (room, seq, type, session_id, ticket_id, from_state, to_state, action, actor, actor_id, payload, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		env.Room, seq, env.Type, sessionID, ticketID,
		env.FromState, env.ToState, env.Action, env.Actor, env.ActorID,
		payloadJSON, now,
	).Scan(&frame.ID)
	if err != nil {
		p.releaseSeq(env.Room, seq)
		return fmt.Errorf("persist event: %w", err)
	}

	notifyPayload, err := marshalForNotify(frame)
	if err != nil {
		p.releaseSeq(env.Room, seq)
		return err
	}
	for _, room := range append([]string{env.Room}, env.Mirrors...) {
		if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", room, notifyPayload); err != nil {
			p.releaseSeq(env.Room, seq)
			return fmt.Errorf("pg_notify %s: %w", room, err)
		}
	}

	if err := tx.Commit(); err != nil {
		p.releaseSeq(env.Room, seq)
		return fmt.Errorf("commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a transient envelope without persistence. Each
// room is notified independently; the first failure is returned after
// all rooms were attempted.
func (p *Publisher) notifyOnly(ctx context.Context, env Envelope) error {
	frame := frameFromEnvelope(env, time.Now())
	notifyPayload, err := marshalForNotify(frame)
	if err != nil {
		return err
	}

	var firstErr error
	for _, room := range append([]string{env.Room}, env.Mirrors...) {
		if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", room, notifyPayload); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("pg_notify %s: %w", room, err)
		}
	}
	return firstErr
}

// nextSeq hands out the next sequence for a room, seeding the counter
// from the table on first use after startup.
func (p *Publisher) nextSeq(ctx context.Context, tx *sql.Tx, room string) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cur, ok := p.seqs[room]
	if !ok {
		err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(seq), 0) FROM events WHERE room = $1`, room,
		).Scan(&cur)
		if err != nil {
			return 0, fmt.Errorf("seed sequence for %s: %w", room, err)
		}
	}
	cur++
	p.seqs[room] = cur
	return cur, nil
}

// releaseSeq returns an unused sequence after a failed insert so the
// room's stream stays gap-free. Only the most recent assignment can be
// returned; a racing later assignment keeps the counter where it is.
func (p *Publisher) releaseSeq(room string, seq int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.seqs[room] == seq {
		p.seqs[room] = seq - 1
	}
}

// marshalForNotify renders the frame for NOTIFY delivery, falling back
// to a truncation envelope when the frame exceeds the payload limit.
// Clients that receive a truncated frame refetch the full event through
// the catch-up endpoint using room and seq.
func marshalForNotify(frame wireFrame) (string, error) {
	full, err := json.Marshal(frame)
	if err != nil {
		return "", fmt.Errorf("marshal event frame: %w", err)
	}
	if len(full) <= notifyLimit {
		return string(full), nil
	}

	truncated, err := json.Marshal(map[string]any{
		"id":         frame.ID,
		"room":       frame.Room,
		"seq":        frame.Seq,
		"type":       frame.Type,
		"session_id": frame.SessionID,
		"ticket_id":  frame.TicketID,
		"truncated":  true,
	})
	if err != nil {
		return "", fmt.Errorf("marshal truncated frame: %w", err)
	}
	return string(truncated), nil
}
