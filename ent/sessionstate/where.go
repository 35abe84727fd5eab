// Code generated by ent, DO NOT EDIT.

package sessionstate

import (
	"entgo.io/ent/dialect/sql"
	"github.com/swarmstack/swarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContainsFold(FieldID, id))
}

// Terminal applies equality check predicate on the "terminal" field. It's identical to TerminalEQ.
func Terminal(v bool) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldTerminal, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldDescription, v))
}

// AllowedNextIsNil applies the IsNil predicate on the "allowed_next" field.
func AllowedNextIsNil() predicate.SessionState {
	return predicate.SessionState(sql.FieldIsNull(FieldAllowedNext))
}

// AllowedNextNotNil applies the NotNil predicate on the "allowed_next" field.
func AllowedNextNotNil() predicate.SessionState {
	return predicate.SessionState(sql.FieldNotNull(FieldAllowedNext))
}

// TerminalEQ applies the EQ predicate on the "terminal" field.
func TerminalEQ(v bool) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldTerminal, v))
}

// TerminalNEQ applies the NEQ predicate on the "terminal" field.
func TerminalNEQ(v bool) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldTerminal, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.SessionState {
	return predicate.SessionState(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.SessionState {
	return predicate.SessionState(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.SessionState {
	return predicate.SessionState(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.SessionState {
	return predicate.SessionState(sql.FieldContainsFold(FieldDescription, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionState) predicate.SessionState {
	return predicate.SessionState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionState) predicate.SessionState {
	return predicate.SessionState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionState) predicate.SessionState {
	return predicate.SessionState(sql.NotPredicates(p))
}
