package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/message"
	"github.com/swarmstack/swarm/pkg/events"
)

// MessageService manages the session transcript.
type MessageService struct {
	client *ent.Client
	bus    *events.Publisher
	masker TextMasker
}

// NewMessageService creates a new message service.
func NewMessageService(client *ent.Client, bus *events.Publisher) *MessageService {
	return &MessageService{client: client, bus: bus}
}

// SetMasker installs the masker applied to transcript content. Call
// before the service is shared across goroutines.
func (s *MessageService) SetMasker(m TextMasker) {
	s.masker = m
}

// AppendMessage adds one entry to a session transcript, assigning the next
// sequence number. The unique (session_id, seq) index backstops the rare
// race between concurrent writers; losers retry with a fresh number.
func (s *MessageService) AppendMessage(ctx context.Context, sessionID, role, messageType, content, actorID string, meta map[string]interface{}) (*ent.Message, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if content == "" {
		return nil, NewValidationError("content", "required")
	}
	// Transcript entries may quote agent output verbatim.
	if s.masker != nil {
		content = s.masker.Mask(content)
	}

	var msg *ent.Message
	for tries := 0; ; tries++ {
		next, err := s.nextSeq(ctx, sessionID)
		if err != nil {
			return nil, err
		}

		create := s.client.Message.Create().
			SetID(uuid.NewString()).
			SetSessionID(sessionID).
			SetSeq(next).
			SetRole(message.Role(role)).
			SetMessageType(message.MessageType(messageType)).
			SetContent(content)
		if actorID != "" {
			create = create.SetActorID(actorID)
		}
		if meta != nil {
			create = create.SetMeta(meta)
		}

		saved, err := create.Save(ctx)
		if err == nil {
			msg = saved
			break
		}
		if ent.IsConstraintError(err) && tries < 3 {
			continue
		}
		return nil, classifyEnt("message.append", err)
	}

	if s.bus != nil {
		if err := s.bus.Publish(ctx, events.MessageNew(msg)); err != nil {
			slog.Error("Failed to publish message event",
				"session_id", sessionID, "message_id", msg.ID, "error", err)
		}
	}
	return msg, nil
}

// nextSeq returns the next transcript position for a session.
func (s *MessageService) nextSeq(ctx context.Context, sessionID string) (int, error) {
	last, err := s.client.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Order(ent.Desc(message.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, classifyEnt("message.seq", err)
	}
	return last.Seq + 1, nil
}

// ListMessages returns a session's transcript in order, optionally
// starting after a known sequence number.
func (s *MessageService) ListMessages(ctx context.Context, sessionID string, afterSeq, limit int) ([]*ent.Message, error) {
	q := s.client.Message.Query().
		Where(message.SessionIDEQ(sessionID))
	if afterSeq > 0 {
		q = q.Where(message.SeqGT(afterSeq))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	msgs, err := q.Order(ent.Asc(message.FieldSeq)).All(ctx)
	if err != nil {
		return nil, classifyEnt("message.list", err)
	}
	return msgs, nil
}

// CountMessages returns the transcript length for a session.
func (s *MessageService) CountMessages(ctx context.Context, sessionID string) (int, error) {
	n, err := s.client.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return 0, classifyEnt("message.count", err)
	}
	return n, nil
}

// LastAssistantMessage returns the most recent assistant entry, used to
// re-serve the pending question after a reconnect.
func (s *MessageService) LastAssistantMessage(ctx context.Context, sessionID string) (*ent.Message, error) {
	msg, err := s.client.Message.Query().
		Where(
			message.SessionIDEQ(sessionID),
			message.RoleEQ(message.RoleAssistant),
		).
		Order(ent.Desc(message.FieldSeq)).
		First(ctx)
	if err != nil {
		return nil, classifyEnt("message.last", err)
	}
	return msg, nil
}
