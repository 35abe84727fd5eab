// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/swarmstack/swarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// Room applies equality check predicate on the "room" field. It's identical to RoomEQ.
func Room(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRoom, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSeq, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldType, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSessionID, v))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTicketID, v))
}

// FromState applies equality check predicate on the "from_state" field. It's identical to FromStateEQ.
func FromState(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldFromState, v))
}

// ToState applies equality check predicate on the "to_state" field. It's identical to ToStateEQ.
func ToState(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldToState, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldAction, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldActor, v))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldActorID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// RoomEQ applies the EQ predicate on the "room" field.
func RoomEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRoom, v))
}

// RoomNEQ applies the NEQ predicate on the "room" field.
func RoomNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRoom, v))
}

// RoomIn applies the In predicate on the "room" field.
func RoomIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRoom, vs...))
}

// RoomNotIn applies the NotIn predicate on the "room" field.
func RoomNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRoom, vs...))
}

// RoomGT applies the GT predicate on the "room" field.
func RoomGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRoom, v))
}

// RoomGTE applies the GTE predicate on the "room" field.
func RoomGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRoom, v))
}

// RoomLT applies the LT predicate on the "room" field.
func RoomLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRoom, v))
}

// RoomLTE applies the LTE predicate on the "room" field.
func RoomLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRoom, v))
}

// RoomContains applies the Contains predicate on the "room" field.
func RoomContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldRoom, v))
}

// RoomHasPrefix applies the HasPrefix predicate on the "room" field.
func RoomHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldRoom, v))
}

// RoomHasSuffix applies the HasSuffix predicate on the "room" field.
func RoomHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldRoom, v))
}

// RoomEqualFold applies the EqualFold predicate on the "room" field.
func RoomEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldRoom, v))
}

// RoomContainsFold applies the ContainsFold predicate on the "room" field.
func RoomContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldRoom, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSeq, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldType, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldSessionID, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldTicketID, vs...))
}

// TicketIDGT applies the GT predicate on the "ticket_id" field.
func TicketIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldTicketID, v))
}

// TicketIDGTE applies the GTE predicate on the "ticket_id" field.
func TicketIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldTicketID, v))
}

// TicketIDLT applies the LT predicate on the "ticket_id" field.
func TicketIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldTicketID, v))
}

// TicketIDLTE applies the LTE predicate on the "ticket_id" field.
func TicketIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldTicketID, v))
}

// TicketIDContains applies the Contains predicate on the "ticket_id" field.
func TicketIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldTicketID, v))
}

// TicketIDHasPrefix applies the HasPrefix predicate on the "ticket_id" field.
func TicketIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldTicketID, v))
}

// TicketIDHasSuffix applies the HasSuffix predicate on the "ticket_id" field.
func TicketIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldTicketID, v))
}

// TicketIDIsNil applies the IsNil predicate on the "ticket_id" field.
func TicketIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldTicketID))
}

// TicketIDNotNil applies the NotNil predicate on the "ticket_id" field.
func TicketIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldTicketID))
}

// TicketIDEqualFold applies the EqualFold predicate on the "ticket_id" field.
func TicketIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldTicketID, v))
}

// TicketIDContainsFold applies the ContainsFold predicate on the "ticket_id" field.
func TicketIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldTicketID, v))
}

// FromStateEQ applies the EQ predicate on the "from_state" field.
func FromStateEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldFromState, v))
}

// FromStateNEQ applies the NEQ predicate on the "from_state" field.
func FromStateNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldFromState, v))
}

// FromStateIn applies the In predicate on the "from_state" field.
func FromStateIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldFromState, vs...))
}

// FromStateNotIn applies the NotIn predicate on the "from_state" field.
func FromStateNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldFromState, vs...))
}

// FromStateGT applies the GT predicate on the "from_state" field.
func FromStateGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldFromState, v))
}

// FromStateGTE applies the GTE predicate on the "from_state" field.
func FromStateGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldFromState, v))
}

// FromStateLT applies the LT predicate on the "from_state" field.
func FromStateLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldFromState, v))
}

// FromStateLTE applies the LTE predicate on the "from_state" field.
func FromStateLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldFromState, v))
}

// FromStateContains applies the Contains predicate on the "from_state" field.
func FromStateContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldFromState, v))
}

// FromStateHasPrefix applies the HasPrefix predicate on the "from_state" field.
func FromStateHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldFromState, v))
}

// FromStateHasSuffix applies the HasSuffix predicate on the "from_state" field.
func FromStateHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldFromState, v))
}

// FromStateIsNil applies the IsNil predicate on the "from_state" field.
func FromStateIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldFromState))
}

// FromStateNotNil applies the NotNil predicate on the "from_state" field.
func FromStateNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldFromState))
}

// FromStateEqualFold applies the EqualFold predicate on the "from_state" field.
func FromStateEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldFromState, v))
}

// FromStateContainsFold applies the ContainsFold predicate on the "from_state" field.
func FromStateContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldFromState, v))
}

// ToStateEQ applies the EQ predicate on the "to_state" field.
func ToStateEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldToState, v))
}

// ToStateNEQ applies the NEQ predicate on the "to_state" field.
func ToStateNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldToState, v))
}

// ToStateIn applies the In predicate on the "to_state" field.
func ToStateIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldToState, vs...))
}

// ToStateNotIn applies the NotIn predicate on the "to_state" field.
func ToStateNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldToState, vs...))
}

// ToStateGT applies the GT predicate on the "to_state" field.
func ToStateGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldToState, v))
}

// ToStateGTE applies the GTE predicate on the "to_state" field.
func ToStateGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldToState, v))
}

// ToStateLT applies the LT predicate on the "to_state" field.
func ToStateLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldToState, v))
}

// ToStateLTE applies the LTE predicate on the "to_state" field.
func ToStateLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldToState, v))
}

// ToStateContains applies the Contains predicate on the "to_state" field.
func ToStateContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldToState, v))
}

// ToStateHasPrefix applies the HasPrefix predicate on the "to_state" field.
func ToStateHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldToState, v))
}

// ToStateHasSuffix applies the HasSuffix predicate on the "to_state" field.
func ToStateHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldToState, v))
}

// ToStateIsNil applies the IsNil predicate on the "to_state" field.
func ToStateIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldToState))
}

// ToStateNotNil applies the NotNil predicate on the "to_state" field.
func ToStateNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldToState))
}

// ToStateEqualFold applies the EqualFold predicate on the "to_state" field.
func ToStateEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldToState, v))
}

// ToStateContainsFold applies the ContainsFold predicate on the "to_state" field.
func ToStateContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldToState, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldAction, v))
}

// ActionIsNil applies the IsNil predicate on the "action" field.
func ActionIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldAction))
}

// ActionNotNil applies the NotNil predicate on the "action" field.
func ActionNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldAction))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldAction, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldActor, v))
}

// ActorIsNil applies the IsNil predicate on the "actor" field.
func ActorIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldActor))
}

// ActorNotNil applies the NotNil predicate on the "actor" field.
func ActorNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldActor))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldActor, v))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldActorID, v))
}

// ActorIDContains applies the Contains predicate on the "actor_id" field.
func ActorIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldActorID, v))
}

// ActorIDHasPrefix applies the HasPrefix predicate on the "actor_id" field.
func ActorIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldActorID, v))
}

// ActorIDHasSuffix applies the HasSuffix predicate on the "actor_id" field.
func ActorIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldActorID, v))
}

// ActorIDIsNil applies the IsNil predicate on the "actor_id" field.
func ActorIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldActorID))
}

// ActorIDNotNil applies the NotNil predicate on the "actor_id" field.
func ActorIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldActorID))
}

// ActorIDEqualFold applies the EqualFold predicate on the "actor_id" field.
func ActorIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldActorID, v))
}

// ActorIDContainsFold applies the ContainsFold predicate on the "actor_id" field.
func ActorIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldActorID, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
