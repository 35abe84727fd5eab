package services

import (
	"context"
	"time"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/event"
	"github.com/swarmstack/swarm/pkg/models"
)

// EventService reads and prunes the durable event log. Writes go through
// the bus publisher, which persists and notifies in one transaction; this
// service covers catch-up reads, history replay, and retention.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new event service.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetRoomEventsSince returns up to limit events in a room with sequence
// numbers greater than afterSeq, in order, plus whether more remained.
// Reconnecting WebSocket clients use this to catch up; when the overflow
// flag is set they are told to refetch full state instead of trusting the
// gap-free replay.
func (s *EventService) GetRoomEventsSince(ctx context.Context, room string, afterSeq int64, limit int) ([]models.BusEvent, bool, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := s.client.Event.Query().
		Where(event.RoomEQ(room), event.SeqGT(afterSeq)).
		Order(ent.Asc(event.FieldSeq)).
		Limit(limit + 1).
		All(ctx)
	if err != nil {
		return nil, false, classifyEnt("event.catchup", err)
	}

	overflow := len(rows) > limit
	if overflow {
		rows = rows[:limit]
	}
	out := make([]models.BusEvent, 0, len(rows))
	for _, r := range rows {
		out = append(out, toBusEvent(r))
	}
	return out, overflow, nil
}

// LatestRoomSeq returns the newest sequence number in a room, zero when
// the room has no persisted events.
func (s *EventService) LatestRoomSeq(ctx context.Context, room string) (int64, error) {
	last, err := s.client.Event.Query().
		Where(event.RoomEQ(room)).
		Order(ent.Desc(event.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, classifyEnt("event.seq", err)
	}
	return last.Seq, nil
}

// ReplayTicket returns a ticket's full event history in write order, the
// raw material for reconstructing its state offline.
func (s *EventService) ReplayTicket(ctx context.Context, ticketID string) ([]models.BusEvent, error) {
	rows, err := s.client.Event.Query().
		Where(event.TicketIDEQ(ticketID)).
		Order(ent.Asc(event.FieldID)).
		All(ctx)
	if err != nil {
		return nil, classifyEnt("event.replay", err)
	}
	out := make([]models.BusEvent, 0, len(rows))
	for _, r := range rows {
		out = append(out, toBusEvent(r))
	}
	return out, nil
}

// DeleteSessionEvents removes all events of one session. Used by the
// retention sweeper once the session has been terminal for the configured
// period.
func (s *EventService) DeleteSessionEvents(ctx context.Context, sessionID string) (int, error) {
	n, err := s.client.Event.Delete().
		Where(event.SessionIDEQ(sessionID)).
		Exec(ctx)
	if err != nil {
		return 0, classifyEnt("event.prune", err)
	}
	return n, nil
}

// DeleteOrphanEvents removes events without a session (fleet and tenant
// rooms) older than the cutoff.
func (s *EventService) DeleteOrphanEvents(ctx context.Context, olderThan time.Time) (int, error) {
	n, err := s.client.Event.Delete().
		Where(event.SessionIDIsNil(), event.CreatedAtLT(olderThan)).
		Exec(ctx)
	if err != nil {
		return 0, classifyEnt("event.prune", err)
	}
	return n, nil
}

// toBusEvent converts a persisted row to the wire shape.
func toBusEvent(r *ent.Event) models.BusEvent {
	e := models.BusEvent{
		ID:        r.ID,
		Room:      r.Room,
		Seq:       r.Seq,
		Type:      r.Type,
		FromState: r.FromState,
		ToState:   r.ToState,
		Action:    r.Action,
		Actor:     r.Actor,
		ActorID:   r.ActorID,
		Payload:   r.Payload,
		CreatedAt: r.CreatedAt,
	}
	if r.SessionID != nil {
		e.SessionID = *r.SessionID
	}
	if r.TicketID != nil {
		e.TicketID = *r.TicketID
	}
	return e
}
