// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/swarmstack/swarm/ent/approval"
	"github.com/swarmstack/swarm/ent/event"
	"github.com/swarmstack/swarm/ent/message"
	"github.com/swarmstack/swarm/ent/predicate"
	"github.com/swarmstack/swarm/ent/project"
	"github.com/swarmstack/swarm/ent/secret"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/ent/sessionstate"
	"github.com/swarmstack/swarm/ent/ticket"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApproval     = "Approval"
	TypeEvent        = "Event"
	TypeMessage      = "Message"
	TypeProject      = "Project"
	TypeSecret       = "Secret"
	TypeSession      = "Session"
	TypeSessionState = "SessionState"
	TypeTicket       = "Ticket"
)

// ApprovalMutation represents an operation that mutates the Approval nodes in the graph.
type ApprovalMutation struct {
	config
	op              Op
	typ             string
	id              *string
	kind            *approval.Kind
	spec_version    *int
	addspec_version *int
	feedback        *string
	approved_by     *string
	ip_address      *string
	user_agent      *string
	data            *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	session         *string
	clearedsession  bool
	done            bool
	oldValue        func(context.Context) (*Approval, error)
	predicates      []predicate.Approval
}

var _ ent.Mutation = (*ApprovalMutation)(nil)

// approvalOption allows management of the mutation configuration using functional options.
type approvalOption func(*ApprovalMutation)

// newApprovalMutation creates new mutation for the Approval entity.
func newApprovalMutation(c config, op Op, opts ...approvalOption) *ApprovalMutation {
	m := &ApprovalMutation{
		config:        c,
		op:            op,
		typ:           TypeApproval,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalID sets the ID field of the mutation.
func withApprovalID(id string) approvalOption {
	return func(m *ApprovalMutation) {
		var (
			err   error
			once  sync.Once
			value *Approval
		)
		m.oldValue = func(ctx context.Context) (*Approval, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Approval.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApproval sets the old Approval of the mutation.
func withApproval(node *Approval) approvalOption {
	return func(m *ApprovalMutation) {
		m.oldValue = func(context.Context) (*Approval, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Approval entities.
func (m *ApprovalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Approval.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ApprovalMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ApprovalMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ApprovalMutation) ResetSessionID() {
	m.session = nil
}

// SetKind sets the "kind" field.
func (m *ApprovalMutation) SetKind(a approval.Kind) {
	m.kind = &a
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ApprovalMutation) Kind() (r approval.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldKind(ctx context.Context) (v approval.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ApprovalMutation) ResetKind() {
	m.kind = nil
}

// SetSpecVersion sets the "spec_version" field.
func (m *ApprovalMutation) SetSpecVersion(i int) {
	m.spec_version = &i
	m.addspec_version = nil
}

// SpecVersion returns the value of the "spec_version" field in the mutation.
func (m *ApprovalMutation) SpecVersion() (r int, exists bool) {
	v := m.spec_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecVersion returns the old "spec_version" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldSpecVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecVersion: %w", err)
	}
	return oldValue.SpecVersion, nil
}

// AddSpecVersion adds i to the "spec_version" field.
func (m *ApprovalMutation) AddSpecVersion(i int) {
	if m.addspec_version != nil {
		*m.addspec_version += i
	} else {
		m.addspec_version = &i
	}
}

// AddedSpecVersion returns the value that was added to the "spec_version" field in this mutation.
func (m *ApprovalMutation) AddedSpecVersion() (r int, exists bool) {
	v := m.addspec_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpecVersion resets all changes to the "spec_version" field.
func (m *ApprovalMutation) ResetSpecVersion() {
	m.spec_version = nil
	m.addspec_version = nil
}

// SetFeedback sets the "feedback" field.
func (m *ApprovalMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *ApprovalMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ClearFeedback clears the value of the "feedback" field.
func (m *ApprovalMutation) ClearFeedback() {
	m.feedback = nil
	m.clearedFields[approval.FieldFeedback] = struct{}{}
}

// FeedbackCleared returns if the "feedback" field was cleared in this mutation.
func (m *ApprovalMutation) FeedbackCleared() bool {
	_, ok := m.clearedFields[approval.FieldFeedback]
	return ok
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *ApprovalMutation) ResetFeedback() {
	m.feedback = nil
	delete(m.clearedFields, approval.FieldFeedback)
}

// SetApprovedBy sets the "approved_by" field.
func (m *ApprovalMutation) SetApprovedBy(s string) {
	m.approved_by = &s
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *ApprovalMutation) ApprovedBy() (r string, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldApprovedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *ApprovalMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[approval.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *ApprovalMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[approval.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *ApprovalMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, approval.FieldApprovedBy)
}

// SetIPAddress sets the "ip_address" field.
func (m *ApprovalMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *ApprovalMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *ApprovalMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[approval.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *ApprovalMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[approval.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *ApprovalMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, approval.FieldIPAddress)
}

// SetUserAgent sets the "user_agent" field.
func (m *ApprovalMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *ApprovalMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldUserAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *ApprovalMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[approval.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *ApprovalMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[approval.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *ApprovalMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, approval.FieldUserAgent)
}

// SetData sets the "data" field.
func (m *ApprovalMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *ApprovalMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *ApprovalMutation) ClearData() {
	m.data = nil
	m.clearedFields[approval.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *ApprovalMutation) DataCleared() bool {
	_, ok := m.clearedFields[approval.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *ApprovalMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, approval.FieldData)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApprovalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *ApprovalMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[approval.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *ApprovalMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ApprovalMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ApprovalMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ApprovalMutation builder.
func (m *ApprovalMutation) Where(ps ...predicate.Approval) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Approval, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Approval).
func (m *ApprovalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session != nil {
		fields = append(fields, approval.FieldSessionID)
	}
	if m.kind != nil {
		fields = append(fields, approval.FieldKind)
	}
	if m.spec_version != nil {
		fields = append(fields, approval.FieldSpecVersion)
	}
	if m.feedback != nil {
		fields = append(fields, approval.FieldFeedback)
	}
	if m.approved_by != nil {
		fields = append(fields, approval.FieldApprovedBy)
	}
	if m.ip_address != nil {
		fields = append(fields, approval.FieldIPAddress)
	}
	if m.user_agent != nil {
		fields = append(fields, approval.FieldUserAgent)
	}
	if m.data != nil {
		fields = append(fields, approval.FieldData)
	}
	if m.created_at != nil {
		fields = append(fields, approval.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approval.FieldSessionID:
		return m.SessionID()
	case approval.FieldKind:
		return m.Kind()
	case approval.FieldSpecVersion:
		return m.SpecVersion()
	case approval.FieldFeedback:
		return m.Feedback()
	case approval.FieldApprovedBy:
		return m.ApprovedBy()
	case approval.FieldIPAddress:
		return m.IPAddress()
	case approval.FieldUserAgent:
		return m.UserAgent()
	case approval.FieldData:
		return m.Data()
	case approval.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approval.FieldSessionID:
		return m.OldSessionID(ctx)
	case approval.FieldKind:
		return m.OldKind(ctx)
	case approval.FieldSpecVersion:
		return m.OldSpecVersion(ctx)
	case approval.FieldFeedback:
		return m.OldFeedback(ctx)
	case approval.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case approval.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case approval.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case approval.FieldData:
		return m.OldData(ctx)
	case approval.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Approval field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approval.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case approval.FieldKind:
		v, ok := value.(approval.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case approval.FieldSpecVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecVersion(v)
		return nil
	case approval.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case approval.FieldApprovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case approval.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case approval.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case approval.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case approval.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Approval field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalMutation) AddedFields() []string {
	var fields []string
	if m.addspec_version != nil {
		fields = append(fields, approval.FieldSpecVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case approval.FieldSpecVersion:
		return m.AddedSpecVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case approval.FieldSpecVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpecVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Approval numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approval.FieldFeedback) {
		fields = append(fields, approval.FieldFeedback)
	}
	if m.FieldCleared(approval.FieldApprovedBy) {
		fields = append(fields, approval.FieldApprovedBy)
	}
	if m.FieldCleared(approval.FieldIPAddress) {
		fields = append(fields, approval.FieldIPAddress)
	}
	if m.FieldCleared(approval.FieldUserAgent) {
		fields = append(fields, approval.FieldUserAgent)
	}
	if m.FieldCleared(approval.FieldData) {
		fields = append(fields, approval.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalMutation) ClearField(name string) error {
	switch name {
	case approval.FieldFeedback:
		m.ClearFeedback()
		return nil
	case approval.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case approval.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case approval.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case approval.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown Approval nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalMutation) ResetField(name string) error {
	switch name {
	case approval.FieldSessionID:
		m.ResetSessionID()
		return nil
	case approval.FieldKind:
		m.ResetKind()
		return nil
	case approval.FieldSpecVersion:
		m.ResetSpecVersion()
		return nil
	case approval.FieldFeedback:
		m.ResetFeedback()
		return nil
	case approval.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case approval.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case approval.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case approval.FieldData:
		m.ResetData()
		return nil
	case approval.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Approval field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, approval.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case approval.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, approval.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalMutation) EdgeCleared(name string) bool {
	switch name {
	case approval.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalMutation) ClearEdge(name string) error {
	switch name {
	case approval.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Approval unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalMutation) ResetEdge(name string) error {
	switch name {
	case approval.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Approval edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int64
	room           *string
	seq            *int64
	addseq         *int64
	_type          *string
	ticket_id      *string
	from_state     *string
	to_state       *string
	action         *string
	actor          *string
	actor_id       *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRoom sets the "room" field.
func (m *EventMutation) SetRoom(s string) {
	m.room = &s
}

// Room returns the value of the "room" field in the mutation.
func (m *EventMutation) Room() (r string, exists bool) {
	v := m.room
	if v == nil {
		return
	}
	return *v, true
}

// OldRoom returns the old "room" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRoom(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoom: %w", err)
	}
	return oldValue.Room, nil
}

// ResetRoom resets all changes to the "room" field.
func (m *EventMutation) ResetRoom() {
	m.room = nil
}

// SetSeq sets the "seq" field.
func (m *EventMutation) SetSeq(i int64) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *EventMutation) Seq() (r int64, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *EventMutation) AddSeq(i int64) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *EventMutation) AddedSeq() (r int64, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *EventMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetType sets the "type" field.
func (m *EventMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *EventMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *EventMutation) ResetType() {
	m._type = nil
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *EventMutation) ClearSessionID() {
	m.session = nil
	m.clearedFields[event.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *EventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[event.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session = nil
	delete(m.clearedFields, event.FieldSessionID)
}

// SetTicketID sets the "ticket_id" field.
func (m *EventMutation) SetTicketID(s string) {
	m.ticket_id = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *EventMutation) TicketID() (r string, exists bool) {
	v := m.ticket_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTicketID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ClearTicketID clears the value of the "ticket_id" field.
func (m *EventMutation) ClearTicketID() {
	m.ticket_id = nil
	m.clearedFields[event.FieldTicketID] = struct{}{}
}

// TicketIDCleared returns if the "ticket_id" field was cleared in this mutation.
func (m *EventMutation) TicketIDCleared() bool {
	_, ok := m.clearedFields[event.FieldTicketID]
	return ok
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *EventMutation) ResetTicketID() {
	m.ticket_id = nil
	delete(m.clearedFields, event.FieldTicketID)
}

// SetFromState sets the "from_state" field.
func (m *EventMutation) SetFromState(s string) {
	m.from_state = &s
}

// FromState returns the value of the "from_state" field in the mutation.
func (m *EventMutation) FromState() (r string, exists bool) {
	v := m.from_state
	if v == nil {
		return
	}
	return *v, true
}

// OldFromState returns the old "from_state" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldFromState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromState: %w", err)
	}
	return oldValue.FromState, nil
}

// ClearFromState clears the value of the "from_state" field.
func (m *EventMutation) ClearFromState() {
	m.from_state = nil
	m.clearedFields[event.FieldFromState] = struct{}{}
}

// FromStateCleared returns if the "from_state" field was cleared in this mutation.
func (m *EventMutation) FromStateCleared() bool {
	_, ok := m.clearedFields[event.FieldFromState]
	return ok
}

// ResetFromState resets all changes to the "from_state" field.
func (m *EventMutation) ResetFromState() {
	m.from_state = nil
	delete(m.clearedFields, event.FieldFromState)
}

// SetToState sets the "to_state" field.
func (m *EventMutation) SetToState(s string) {
	m.to_state = &s
}

// ToState returns the value of the "to_state" field in the mutation.
func (m *EventMutation) ToState() (r string, exists bool) {
	v := m.to_state
	if v == nil {
		return
	}
	return *v, true
}

// OldToState returns the old "to_state" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldToState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToState: %w", err)
	}
	return oldValue.ToState, nil
}

// ClearToState clears the value of the "to_state" field.
func (m *EventMutation) ClearToState() {
	m.to_state = nil
	m.clearedFields[event.FieldToState] = struct{}{}
}

// ToStateCleared returns if the "to_state" field was cleared in this mutation.
func (m *EventMutation) ToStateCleared() bool {
	_, ok := m.clearedFields[event.FieldToState]
	return ok
}

// ResetToState resets all changes to the "to_state" field.
func (m *EventMutation) ResetToState() {
	m.to_state = nil
	delete(m.clearedFields, event.FieldToState)
}

// SetAction sets the "action" field.
func (m *EventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *EventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ClearAction clears the value of the "action" field.
func (m *EventMutation) ClearAction() {
	m.action = nil
	m.clearedFields[event.FieldAction] = struct{}{}
}

// ActionCleared returns if the "action" field was cleared in this mutation.
func (m *EventMutation) ActionCleared() bool {
	_, ok := m.clearedFields[event.FieldAction]
	return ok
}

// ResetAction resets all changes to the "action" field.
func (m *EventMutation) ResetAction() {
	m.action = nil
	delete(m.clearedFields, event.FieldAction)
}

// SetActor sets the "actor" field.
func (m *EventMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *EventMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ClearActor clears the value of the "actor" field.
func (m *EventMutation) ClearActor() {
	m.actor = nil
	m.clearedFields[event.FieldActor] = struct{}{}
}

// ActorCleared returns if the "actor" field was cleared in this mutation.
func (m *EventMutation) ActorCleared() bool {
	_, ok := m.clearedFields[event.FieldActor]
	return ok
}

// ResetActor resets all changes to the "actor" field.
func (m *EventMutation) ResetActor() {
	m.actor = nil
	delete(m.clearedFields, event.FieldActor)
}

// SetActorID sets the "actor_id" field.
func (m *EventMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *EventMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ClearActorID clears the value of the "actor_id" field.
func (m *EventMutation) ClearActorID() {
	m.actor_id = nil
	m.clearedFields[event.FieldActorID] = struct{}{}
}

// ActorIDCleared returns if the "actor_id" field was cleared in this mutation.
func (m *EventMutation) ActorIDCleared() bool {
	_, ok := m.clearedFields[event.FieldActorID]
	return ok
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *EventMutation) ResetActorID() {
	m.actor_id = nil
	delete(m.clearedFields, event.FieldActorID)
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *EventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[event.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *EventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[event.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, event.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *EventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[event.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *EventMutation) SessionCleared() bool {
	return m.SessionIDCleared() || m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *EventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *EventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.room != nil {
		fields = append(fields, event.FieldRoom)
	}
	if m.seq != nil {
		fields = append(fields, event.FieldSeq)
	}
	if m._type != nil {
		fields = append(fields, event.FieldType)
	}
	if m.session != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.ticket_id != nil {
		fields = append(fields, event.FieldTicketID)
	}
	if m.from_state != nil {
		fields = append(fields, event.FieldFromState)
	}
	if m.to_state != nil {
		fields = append(fields, event.FieldToState)
	}
	if m.action != nil {
		fields = append(fields, event.FieldAction)
	}
	if m.actor != nil {
		fields = append(fields, event.FieldActor)
	}
	if m.actor_id != nil {
		fields = append(fields, event.FieldActorID)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldRoom:
		return m.Room()
	case event.FieldSeq:
		return m.Seq()
	case event.FieldType:
		return m.GetType()
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldTicketID:
		return m.TicketID()
	case event.FieldFromState:
		return m.FromState()
	case event.FieldToState:
		return m.ToState()
	case event.FieldAction:
		return m.Action()
	case event.FieldActor:
		return m.Actor()
	case event.FieldActorID:
		return m.ActorID()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldRoom:
		return m.OldRoom(ctx)
	case event.FieldSeq:
		return m.OldSeq(ctx)
	case event.FieldType:
		return m.OldType(ctx)
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldTicketID:
		return m.OldTicketID(ctx)
	case event.FieldFromState:
		return m.OldFromState(ctx)
	case event.FieldToState:
		return m.OldToState(ctx)
	case event.FieldAction:
		return m.OldAction(ctx)
	case event.FieldActor:
		return m.OldActor(ctx)
	case event.FieldActorID:
		return m.OldActorID(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldRoom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoom(v)
		return nil
	case event.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case event.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case event.FieldFromState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromState(v)
		return nil
	case event.FieldToState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToState(v)
		return nil
	case event.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case event.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case event.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, event.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldSessionID) {
		fields = append(fields, event.FieldSessionID)
	}
	if m.FieldCleared(event.FieldTicketID) {
		fields = append(fields, event.FieldTicketID)
	}
	if m.FieldCleared(event.FieldFromState) {
		fields = append(fields, event.FieldFromState)
	}
	if m.FieldCleared(event.FieldToState) {
		fields = append(fields, event.FieldToState)
	}
	if m.FieldCleared(event.FieldAction) {
		fields = append(fields, event.FieldAction)
	}
	if m.FieldCleared(event.FieldActor) {
		fields = append(fields, event.FieldActor)
	}
	if m.FieldCleared(event.FieldActorID) {
		fields = append(fields, event.FieldActorID)
	}
	if m.FieldCleared(event.FieldPayload) {
		fields = append(fields, event.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ClearSessionID()
		return nil
	case event.FieldTicketID:
		m.ClearTicketID()
		return nil
	case event.FieldFromState:
		m.ClearFromState()
		return nil
	case event.FieldToState:
		m.ClearToState()
		return nil
	case event.FieldAction:
		m.ClearAction()
		return nil
	case event.FieldActor:
		m.ClearActor()
		return nil
	case event.FieldActorID:
		m.ClearActorID()
		return nil
	case event.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldRoom:
		m.ResetRoom()
		return nil
	case event.FieldSeq:
		m.ResetSeq()
		return nil
	case event.FieldType:
		m.ResetType()
		return nil
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldTicketID:
		m.ResetTicketID()
		return nil
	case event.FieldFromState:
		m.ResetFromState()
		return nil
	case event.FieldToState:
		m.ResetToState()
		return nil
	case event.FieldAction:
		m.ResetAction()
		return nil
	case event.FieldActor:
		m.ResetActor()
		return nil
	case event.FieldActorID:
		m.ResetActorID()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op             Op
	typ            string
	id             *string
	seq            *int
	addseq         *int
	role           *message.Role
	message_type   *message.MessageType
	content        *string
	actor_id       *string
	meta           *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*Message, error)
	predicates     []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *MessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *MessageMutation) ResetSessionID() {
	m.session = nil
}

// SetSeq sets the "seq" field.
func (m *MessageMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *MessageMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *MessageMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *MessageMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *MessageMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetMessageType sets the "message_type" field.
func (m *MessageMutation) SetMessageType(mt message.MessageType) {
	m.message_type = &mt
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *MessageMutation) MessageType() (r message.MessageType, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMessageType(ctx context.Context) (v message.MessageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *MessageMutation) ResetMessageType() {
	m.message_type = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetActorID sets the "actor_id" field.
func (m *MessageMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *MessageMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldActorID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ClearActorID clears the value of the "actor_id" field.
func (m *MessageMutation) ClearActorID() {
	m.actor_id = nil
	m.clearedFields[message.FieldActorID] = struct{}{}
}

// ActorIDCleared returns if the "actor_id" field was cleared in this mutation.
func (m *MessageMutation) ActorIDCleared() bool {
	_, ok := m.clearedFields[message.FieldActorID]
	return ok
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *MessageMutation) ResetActorID() {
	m.actor_id = nil
	delete(m.clearedFields, message.FieldActorID)
}

// SetMeta sets the "meta" field.
func (m *MessageMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *MessageMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *MessageMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[message.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *MessageMutation) MetaCleared() bool {
	_, ok := m.clearedFields[message.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *MessageMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, message.FieldMeta)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *MessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[message.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *MessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *MessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, message.FieldSessionID)
	}
	if m.seq != nil {
		fields = append(fields, message.FieldSeq)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.message_type != nil {
		fields = append(fields, message.FieldMessageType)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.actor_id != nil {
		fields = append(fields, message.FieldActorID)
	}
	if m.meta != nil {
		fields = append(fields, message.FieldMeta)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSessionID:
		return m.SessionID()
	case message.FieldSeq:
		return m.Seq()
	case message.FieldRole:
		return m.Role()
	case message.FieldMessageType:
		return m.MessageType()
	case message.FieldContent:
		return m.Content()
	case message.FieldActorID:
		return m.ActorID()
	case message.FieldMeta:
		return m.Meta()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldSessionID:
		return m.OldSessionID(ctx)
	case message.FieldSeq:
		return m.OldSeq(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldMessageType:
		return m.OldMessageType(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldActorID:
		return m.OldActorID(ctx)
	case message.FieldMeta:
		return m.OldMeta(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case message.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldMessageType:
		v, ok := value.(message.MessageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case message.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, message.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldActorID) {
		fields = append(fields, message.FieldActorID)
	}
	if m.FieldCleared(message.FieldMeta) {
		fields = append(fields, message.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldActorID:
		m.ClearActorID()
		return nil
	case message.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldSessionID:
		m.ResetSessionID()
		return nil
	case message.FieldSeq:
		m.ResetSeq()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldMessageType:
		m.ResetMessageType()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldActorID:
		m.ResetActorID()
		return nil
	case message.FieldMeta:
		m.ResetMeta()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, message.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, message.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	tenant_id              *string
	name                   *string
	repo_url               *string
	base_branch            *string
	settings               *map[string]interface{}
	credential_names       *[]string
	appendcredential_names []string
	concurrency_cap        *int
	addconcurrency_cap     *int
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	sessions               map[string]struct{}
	removedsessions        map[string]struct{}
	clearedsessions        bool
	secrets                map[string]struct{}
	removedsecrets         map[string]struct{}
	clearedsecrets         bool
	done                   bool
	oldValue               func(context.Context) (*Project, error)
	predicates             []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ProjectMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ProjectMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ProjectMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetRepoURL sets the "repo_url" field.
func (m *ProjectMutation) SetRepoURL(s string) {
	m.repo_url = &s
}

// RepoURL returns the value of the "repo_url" field in the mutation.
func (m *ProjectMutation) RepoURL() (r string, exists bool) {
	v := m.repo_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoURL returns the old "repo_url" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldRepoURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoURL: %w", err)
	}
	return oldValue.RepoURL, nil
}

// ResetRepoURL resets all changes to the "repo_url" field.
func (m *ProjectMutation) ResetRepoURL() {
	m.repo_url = nil
}

// SetBaseBranch sets the "base_branch" field.
func (m *ProjectMutation) SetBaseBranch(s string) {
	m.base_branch = &s
}

// BaseBranch returns the value of the "base_branch" field in the mutation.
func (m *ProjectMutation) BaseBranch() (r string, exists bool) {
	v := m.base_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseBranch returns the old "base_branch" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldBaseBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseBranch: %w", err)
	}
	return oldValue.BaseBranch, nil
}

// ResetBaseBranch resets all changes to the "base_branch" field.
func (m *ProjectMutation) ResetBaseBranch() {
	m.base_branch = nil
}

// SetSettings sets the "settings" field.
func (m *ProjectMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *ProjectMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *ProjectMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[project.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *ProjectMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[project.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *ProjectMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, project.FieldSettings)
}

// SetCredentialNames sets the "credential_names" field.
func (m *ProjectMutation) SetCredentialNames(s []string) {
	m.credential_names = &s
	m.appendcredential_names = nil
}

// CredentialNames returns the value of the "credential_names" field in the mutation.
func (m *ProjectMutation) CredentialNames() (r []string, exists bool) {
	v := m.credential_names
	if v == nil {
		return
	}
	return *v, true
}

// OldCredentialNames returns the old "credential_names" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCredentialNames(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredentialNames is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredentialNames requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredentialNames: %w", err)
	}
	return oldValue.CredentialNames, nil
}

// AppendCredentialNames adds s to the "credential_names" field.
func (m *ProjectMutation) AppendCredentialNames(s []string) {
	m.appendcredential_names = append(m.appendcredential_names, s...)
}

// AppendedCredentialNames returns the list of values that were appended to the "credential_names" field in this mutation.
func (m *ProjectMutation) AppendedCredentialNames() ([]string, bool) {
	if len(m.appendcredential_names) == 0 {
		return nil, false
	}
	return m.appendcredential_names, true
}

// ClearCredentialNames clears the value of the "credential_names" field.
func (m *ProjectMutation) ClearCredentialNames() {
	m.credential_names = nil
	m.appendcredential_names = nil
	m.clearedFields[project.FieldCredentialNames] = struct{}{}
}

// CredentialNamesCleared returns if the "credential_names" field was cleared in this mutation.
func (m *ProjectMutation) CredentialNamesCleared() bool {
	_, ok := m.clearedFields[project.FieldCredentialNames]
	return ok
}

// ResetCredentialNames resets all changes to the "credential_names" field.
func (m *ProjectMutation) ResetCredentialNames() {
	m.credential_names = nil
	m.appendcredential_names = nil
	delete(m.clearedFields, project.FieldCredentialNames)
}

// SetConcurrencyCap sets the "concurrency_cap" field.
func (m *ProjectMutation) SetConcurrencyCap(i int) {
	m.concurrency_cap = &i
	m.addconcurrency_cap = nil
}

// ConcurrencyCap returns the value of the "concurrency_cap" field in the mutation.
func (m *ProjectMutation) ConcurrencyCap() (r int, exists bool) {
	v := m.concurrency_cap
	if v == nil {
		return
	}
	return *v, true
}

// OldConcurrencyCap returns the old "concurrency_cap" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldConcurrencyCap(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcurrencyCap is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcurrencyCap requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcurrencyCap: %w", err)
	}
	return oldValue.ConcurrencyCap, nil
}

// AddConcurrencyCap adds i to the "concurrency_cap" field.
func (m *ProjectMutation) AddConcurrencyCap(i int) {
	if m.addconcurrency_cap != nil {
		*m.addconcurrency_cap += i
	} else {
		m.addconcurrency_cap = &i
	}
}

// AddedConcurrencyCap returns the value that was added to the "concurrency_cap" field in this mutation.
func (m *ProjectMutation) AddedConcurrencyCap() (r int, exists bool) {
	v := m.addconcurrency_cap
	if v == nil {
		return
	}
	return *v, true
}

// ResetConcurrencyCap resets all changes to the "concurrency_cap" field.
func (m *ProjectMutation) ResetConcurrencyCap() {
	m.concurrency_cap = nil
	m.addconcurrency_cap = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *ProjectMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *ProjectMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *ProjectMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *ProjectMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *ProjectMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *ProjectMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *ProjectMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddSecretIDs adds the "secrets" edge to the Secret entity by ids.
func (m *ProjectMutation) AddSecretIDs(ids ...string) {
	if m.secrets == nil {
		m.secrets = make(map[string]struct{})
	}
	for i := range ids {
		m.secrets[ids[i]] = struct{}{}
	}
}

// ClearSecrets clears the "secrets" edge to the Secret entity.
func (m *ProjectMutation) ClearSecrets() {
	m.clearedsecrets = true
}

// SecretsCleared reports if the "secrets" edge to the Secret entity was cleared.
func (m *ProjectMutation) SecretsCleared() bool {
	return m.clearedsecrets
}

// RemoveSecretIDs removes the "secrets" edge to the Secret entity by IDs.
func (m *ProjectMutation) RemoveSecretIDs(ids ...string) {
	if m.removedsecrets == nil {
		m.removedsecrets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.secrets, ids[i])
		m.removedsecrets[ids[i]] = struct{}{}
	}
}

// RemovedSecrets returns the removed IDs of the "secrets" edge to the Secret entity.
func (m *ProjectMutation) RemovedSecretsIDs() (ids []string) {
	for id := range m.removedsecrets {
		ids = append(ids, id)
	}
	return
}

// SecretsIDs returns the "secrets" edge IDs in the mutation.
func (m *ProjectMutation) SecretsIDs() (ids []string) {
	for id := range m.secrets {
		ids = append(ids, id)
	}
	return
}

// ResetSecrets resets all changes to the "secrets" edge.
func (m *ProjectMutation) ResetSecrets() {
	m.secrets = nil
	m.clearedsecrets = false
	m.removedsecrets = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.tenant_id != nil {
		fields = append(fields, project.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.repo_url != nil {
		fields = append(fields, project.FieldRepoURL)
	}
	if m.base_branch != nil {
		fields = append(fields, project.FieldBaseBranch)
	}
	if m.settings != nil {
		fields = append(fields, project.FieldSettings)
	}
	if m.credential_names != nil {
		fields = append(fields, project.FieldCredentialNames)
	}
	if m.concurrency_cap != nil {
		fields = append(fields, project.FieldConcurrencyCap)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldTenantID:
		return m.TenantID()
	case project.FieldName:
		return m.Name()
	case project.FieldRepoURL:
		return m.RepoURL()
	case project.FieldBaseBranch:
		return m.BaseBranch()
	case project.FieldSettings:
		return m.Settings()
	case project.FieldCredentialNames:
		return m.CredentialNames()
	case project.FieldConcurrencyCap:
		return m.ConcurrencyCap()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldTenantID:
		return m.OldTenantID(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldRepoURL:
		return m.OldRepoURL(ctx)
	case project.FieldBaseBranch:
		return m.OldBaseBranch(ctx)
	case project.FieldSettings:
		return m.OldSettings(ctx)
	case project.FieldCredentialNames:
		return m.OldCredentialNames(ctx)
	case project.FieldConcurrencyCap:
		return m.OldConcurrencyCap(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldRepoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoURL(v)
		return nil
	case project.FieldBaseBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseBranch(v)
		return nil
	case project.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case project.FieldCredentialNames:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredentialNames(v)
		return nil
	case project.FieldConcurrencyCap:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcurrencyCap(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	var fields []string
	if m.addconcurrency_cap != nil {
		fields = append(fields, project.FieldConcurrencyCap)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case project.FieldConcurrencyCap:
		return m.AddedConcurrencyCap()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	case project.FieldConcurrencyCap:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConcurrencyCap(v)
		return nil
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldSettings) {
		fields = append(fields, project.FieldSettings)
	}
	if m.FieldCleared(project.FieldCredentialNames) {
		fields = append(fields, project.FieldCredentialNames)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldSettings:
		m.ClearSettings()
		return nil
	case project.FieldCredentialNames:
		m.ClearCredentialNames()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldTenantID:
		m.ResetTenantID()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldRepoURL:
		m.ResetRepoURL()
		return nil
	case project.FieldBaseBranch:
		m.ResetBaseBranch()
		return nil
	case project.FieldSettings:
		m.ResetSettings()
		return nil
	case project.FieldCredentialNames:
		m.ResetCredentialNames()
		return nil
	case project.FieldConcurrencyCap:
		m.ResetConcurrencyCap()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.sessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	if m.secrets != nil {
		edges = append(edges, project.EdgeSecrets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSecrets:
		ids := make([]ent.Value, 0, len(m.secrets))
		for id := range m.secrets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	if m.removedsecrets != nil {
		edges = append(edges, project.EdgeSecrets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSecrets:
		ids := make([]ent.Value, 0, len(m.removedsecrets))
		for id := range m.removedsecrets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsessions {
		edges = append(edges, project.EdgeSessions)
	}
	if m.clearedsecrets {
		edges = append(edges, project.EdgeSecrets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeSessions:
		return m.clearedsessions
	case project.EdgeSecrets:
		return m.clearedsecrets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeSessions:
		m.ResetSessions()
		return nil
	case project.EdgeSecrets:
		m.ResetSecrets()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// SecretMutation represents an operation that mutates the Secret nodes in the graph.
type SecretMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	value          *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	project        *string
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*Secret, error)
	predicates     []predicate.Secret
}

var _ ent.Mutation = (*SecretMutation)(nil)

// secretOption allows management of the mutation configuration using functional options.
type secretOption func(*SecretMutation)

// newSecretMutation creates new mutation for the Secret entity.
func newSecretMutation(c config, op Op, opts ...secretOption) *SecretMutation {
	m := &SecretMutation{
		config:        c,
		op:            op,
		typ:           TypeSecret,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSecretID sets the ID field of the mutation.
func withSecretID(id string) secretOption {
	return func(m *SecretMutation) {
		var (
			err   error
			once  sync.Once
			value *Secret
		)
		m.oldValue = func(ctx context.Context) (*Secret, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Secret.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSecret sets the old Secret of the mutation.
func withSecret(node *Secret) secretOption {
	return func(m *SecretMutation) {
		m.oldValue = func(context.Context) (*Secret, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SecretMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SecretMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Secret entities.
func (m *SecretMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SecretMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SecretMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Secret.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *SecretMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SecretMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SecretMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *SecretMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SecretMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SecretMutation) ResetName() {
	m.name = nil
}

// SetValue sets the "value" field.
func (m *SecretMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *SecretMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SecretMutation) ResetValue() {
	m.value = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SecretMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SecretMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SecretMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SecretMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SecretMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Secret entity.
// If the Secret object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecretMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SecretMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SecretMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[secret.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SecretMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SecretMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SecretMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the SecretMutation builder.
func (m *SecretMutation) Where(ps ...predicate.Secret) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SecretMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SecretMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Secret, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SecretMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SecretMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Secret).
func (m *SecretMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SecretMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.project != nil {
		fields = append(fields, secret.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, secret.FieldName)
	}
	if m.value != nil {
		fields = append(fields, secret.FieldValue)
	}
	if m.created_at != nil {
		fields = append(fields, secret.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, secret.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SecretMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case secret.FieldProjectID:
		return m.ProjectID()
	case secret.FieldName:
		return m.Name()
	case secret.FieldValue:
		return m.Value()
	case secret.FieldCreatedAt:
		return m.CreatedAt()
	case secret.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SecretMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case secret.FieldProjectID:
		return m.OldProjectID(ctx)
	case secret.FieldName:
		return m.OldName(ctx)
	case secret.FieldValue:
		return m.OldValue(ctx)
	case secret.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case secret.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Secret field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SecretMutation) SetField(name string, value ent.Value) error {
	switch name {
	case secret.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case secret.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case secret.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case secret.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case secret.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Secret field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SecretMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SecretMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SecretMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Secret numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SecretMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SecretMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SecretMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Secret nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SecretMutation) ResetField(name string) error {
	switch name {
	case secret.FieldProjectID:
		m.ResetProjectID()
		return nil
	case secret.FieldName:
		m.ResetName()
		return nil
	case secret.FieldValue:
		m.ResetValue()
		return nil
	case secret.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case secret.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Secret field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SecretMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, secret.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SecretMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case secret.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SecretMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SecretMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SecretMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, secret.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SecretMutation) EdgeCleared(name string) bool {
	switch name {
	case secret.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SecretMutation) ClearEdge(name string) error {
	switch name {
	case secret.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Secret unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SecretMutation) ResetEdge(name string) error {
	switch name {
	case secret.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Secret edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	tenant_id              *string
	project_name           *string
	title                  *string
	state                  *session.State
	source_type            *session.SourceType
	initial_prompt         *string
	repo_url               *string
	repo_analysis          *map[string]interface{}
	gathered_context       *map[string]interface{}
	coverage               *map[string]interface{}
	progress               *int
	addprogress            *int
	clarification_turns    *int
	addclarification_turns *int
	draft_spec             *map[string]interface{}
	spec_version           *int
	addspec_version        *int
	final_spec             *map[string]interface{}
	error_message          *string
	author                 *string
	metadata               *map[string]interface{}
	created_at             *time.Time
	updated_at             *time.Time
	building_started_at    *time.Time
	completed_at           *time.Time
	clearedFields          map[string]struct{}
	project                *string
	clearedproject         bool
	tickets                map[string]struct{}
	removedtickets         map[string]struct{}
	clearedtickets         bool
	messages               map[string]struct{}
	removedmessages        map[string]struct{}
	clearedmessages        bool
	approvals              map[string]struct{}
	removedapprovals       map[string]struct{}
	clearedapprovals       bool
	events                 map[int64]struct{}
	removedevents          map[int64]struct{}
	clearedevents          bool
	done                   bool
	oldValue               func(context.Context) (*Session, error)
	predicates             []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *SessionMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *SessionMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *SessionMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *SessionMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SessionMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldProjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *SessionMutation) ClearProjectID() {
	m.project = nil
	m.clearedFields[session.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *SessionMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[session.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SessionMutation) ResetProjectID() {
	m.project = nil
	delete(m.clearedFields, session.FieldProjectID)
}

// SetProjectName sets the "project_name" field.
func (m *SessionMutation) SetProjectName(s string) {
	m.project_name = &s
}

// ProjectName returns the value of the "project_name" field in the mutation.
func (m *SessionMutation) ProjectName() (r string, exists bool) {
	v := m.project_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectName returns the old "project_name" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldProjectName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectName: %w", err)
	}
	return oldValue.ProjectName, nil
}

// ClearProjectName clears the value of the "project_name" field.
func (m *SessionMutation) ClearProjectName() {
	m.project_name = nil
	m.clearedFields[session.FieldProjectName] = struct{}{}
}

// ProjectNameCleared returns if the "project_name" field was cleared in this mutation.
func (m *SessionMutation) ProjectNameCleared() bool {
	_, ok := m.clearedFields[session.FieldProjectName]
	return ok
}

// ResetProjectName resets all changes to the "project_name" field.
func (m *SessionMutation) ResetProjectName() {
	m.project_name = nil
	delete(m.clearedFields, session.FieldProjectName)
}

// SetTitle sets the "title" field.
func (m *SessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *SessionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[session.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *SessionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[session.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *SessionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, session.FieldTitle)
}

// SetState sets the "state" field.
func (m *SessionMutation) SetState(s session.State) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *SessionMutation) State() (r session.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldState(ctx context.Context) (v session.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *SessionMutation) ResetState() {
	m.state = nil
}

// SetSourceType sets the "source_type" field.
func (m *SessionMutation) SetSourceType(st session.SourceType) {
	m.source_type = &st
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *SessionMutation) SourceType() (r session.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSourceType(ctx context.Context) (v session.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *SessionMutation) ResetSourceType() {
	m.source_type = nil
}

// SetInitialPrompt sets the "initial_prompt" field.
func (m *SessionMutation) SetInitialPrompt(s string) {
	m.initial_prompt = &s
}

// InitialPrompt returns the value of the "initial_prompt" field in the mutation.
func (m *SessionMutation) InitialPrompt() (r string, exists bool) {
	v := m.initial_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialPrompt returns the old "initial_prompt" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldInitialPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialPrompt: %w", err)
	}
	return oldValue.InitialPrompt, nil
}

// ResetInitialPrompt resets all changes to the "initial_prompt" field.
func (m *SessionMutation) ResetInitialPrompt() {
	m.initial_prompt = nil
}

// SetRepoURL sets the "repo_url" field.
func (m *SessionMutation) SetRepoURL(s string) {
	m.repo_url = &s
}

// RepoURL returns the value of the "repo_url" field in the mutation.
func (m *SessionMutation) RepoURL() (r string, exists bool) {
	v := m.repo_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoURL returns the old "repo_url" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldRepoURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoURL: %w", err)
	}
	return oldValue.RepoURL, nil
}

// ClearRepoURL clears the value of the "repo_url" field.
func (m *SessionMutation) ClearRepoURL() {
	m.repo_url = nil
	m.clearedFields[session.FieldRepoURL] = struct{}{}
}

// RepoURLCleared returns if the "repo_url" field was cleared in this mutation.
func (m *SessionMutation) RepoURLCleared() bool {
	_, ok := m.clearedFields[session.FieldRepoURL]
	return ok
}

// ResetRepoURL resets all changes to the "repo_url" field.
func (m *SessionMutation) ResetRepoURL() {
	m.repo_url = nil
	delete(m.clearedFields, session.FieldRepoURL)
}

// SetRepoAnalysis sets the "repo_analysis" field.
func (m *SessionMutation) SetRepoAnalysis(value map[string]interface{}) {
	m.repo_analysis = &value
}

// RepoAnalysis returns the value of the "repo_analysis" field in the mutation.
func (m *SessionMutation) RepoAnalysis() (r map[string]interface{}, exists bool) {
	v := m.repo_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoAnalysis returns the old "repo_analysis" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldRepoAnalysis(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoAnalysis: %w", err)
	}
	return oldValue.RepoAnalysis, nil
}

// ClearRepoAnalysis clears the value of the "repo_analysis" field.
func (m *SessionMutation) ClearRepoAnalysis() {
	m.repo_analysis = nil
	m.clearedFields[session.FieldRepoAnalysis] = struct{}{}
}

// RepoAnalysisCleared returns if the "repo_analysis" field was cleared in this mutation.
func (m *SessionMutation) RepoAnalysisCleared() bool {
	_, ok := m.clearedFields[session.FieldRepoAnalysis]
	return ok
}

// ResetRepoAnalysis resets all changes to the "repo_analysis" field.
func (m *SessionMutation) ResetRepoAnalysis() {
	m.repo_analysis = nil
	delete(m.clearedFields, session.FieldRepoAnalysis)
}

// SetGatheredContext sets the "gathered_context" field.
func (m *SessionMutation) SetGatheredContext(value map[string]interface{}) {
	m.gathered_context = &value
}

// GatheredContext returns the value of the "gathered_context" field in the mutation.
func (m *SessionMutation) GatheredContext() (r map[string]interface{}, exists bool) {
	v := m.gathered_context
	if v == nil {
		return
	}
	return *v, true
}

// OldGatheredContext returns the old "gathered_context" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldGatheredContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGatheredContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGatheredContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGatheredContext: %w", err)
	}
	return oldValue.GatheredContext, nil
}

// ClearGatheredContext clears the value of the "gathered_context" field.
func (m *SessionMutation) ClearGatheredContext() {
	m.gathered_context = nil
	m.clearedFields[session.FieldGatheredContext] = struct{}{}
}

// GatheredContextCleared returns if the "gathered_context" field was cleared in this mutation.
func (m *SessionMutation) GatheredContextCleared() bool {
	_, ok := m.clearedFields[session.FieldGatheredContext]
	return ok
}

// ResetGatheredContext resets all changes to the "gathered_context" field.
func (m *SessionMutation) ResetGatheredContext() {
	m.gathered_context = nil
	delete(m.clearedFields, session.FieldGatheredContext)
}

// SetCoverage sets the "coverage" field.
func (m *SessionMutation) SetCoverage(value map[string]interface{}) {
	m.coverage = &value
}

// Coverage returns the value of the "coverage" field in the mutation.
func (m *SessionMutation) Coverage() (r map[string]interface{}, exists bool) {
	v := m.coverage
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverage returns the old "coverage" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCoverage(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverage: %w", err)
	}
	return oldValue.Coverage, nil
}

// ClearCoverage clears the value of the "coverage" field.
func (m *SessionMutation) ClearCoverage() {
	m.coverage = nil
	m.clearedFields[session.FieldCoverage] = struct{}{}
}

// CoverageCleared returns if the "coverage" field was cleared in this mutation.
func (m *SessionMutation) CoverageCleared() bool {
	_, ok := m.clearedFields[session.FieldCoverage]
	return ok
}

// ResetCoverage resets all changes to the "coverage" field.
func (m *SessionMutation) ResetCoverage() {
	m.coverage = nil
	delete(m.clearedFields, session.FieldCoverage)
}

// SetProgress sets the "progress" field.
func (m *SessionMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *SessionMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *SessionMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *SessionMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *SessionMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetClarificationTurns sets the "clarification_turns" field.
func (m *SessionMutation) SetClarificationTurns(i int) {
	m.clarification_turns = &i
	m.addclarification_turns = nil
}

// ClarificationTurns returns the value of the "clarification_turns" field in the mutation.
func (m *SessionMutation) ClarificationTurns() (r int, exists bool) {
	v := m.clarification_turns
	if v == nil {
		return
	}
	return *v, true
}

// OldClarificationTurns returns the old "clarification_turns" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldClarificationTurns(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClarificationTurns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClarificationTurns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClarificationTurns: %w", err)
	}
	return oldValue.ClarificationTurns, nil
}

// AddClarificationTurns adds i to the "clarification_turns" field.
func (m *SessionMutation) AddClarificationTurns(i int) {
	if m.addclarification_turns != nil {
		*m.addclarification_turns += i
	} else {
		m.addclarification_turns = &i
	}
}

// AddedClarificationTurns returns the value that was added to the "clarification_turns" field in this mutation.
func (m *SessionMutation) AddedClarificationTurns() (r int, exists bool) {
	v := m.addclarification_turns
	if v == nil {
		return
	}
	return *v, true
}

// ResetClarificationTurns resets all changes to the "clarification_turns" field.
func (m *SessionMutation) ResetClarificationTurns() {
	m.clarification_turns = nil
	m.addclarification_turns = nil
}

// SetDraftSpec sets the "draft_spec" field.
func (m *SessionMutation) SetDraftSpec(value map[string]interface{}) {
	m.draft_spec = &value
}

// DraftSpec returns the value of the "draft_spec" field in the mutation.
func (m *SessionMutation) DraftSpec() (r map[string]interface{}, exists bool) {
	v := m.draft_spec
	if v == nil {
		return
	}
	return *v, true
}

// OldDraftSpec returns the old "draft_spec" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldDraftSpec(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDraftSpec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDraftSpec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDraftSpec: %w", err)
	}
	return oldValue.DraftSpec, nil
}

// ClearDraftSpec clears the value of the "draft_spec" field.
func (m *SessionMutation) ClearDraftSpec() {
	m.draft_spec = nil
	m.clearedFields[session.FieldDraftSpec] = struct{}{}
}

// DraftSpecCleared returns if the "draft_spec" field was cleared in this mutation.
func (m *SessionMutation) DraftSpecCleared() bool {
	_, ok := m.clearedFields[session.FieldDraftSpec]
	return ok
}

// ResetDraftSpec resets all changes to the "draft_spec" field.
func (m *SessionMutation) ResetDraftSpec() {
	m.draft_spec = nil
	delete(m.clearedFields, session.FieldDraftSpec)
}

// SetSpecVersion sets the "spec_version" field.
func (m *SessionMutation) SetSpecVersion(i int) {
	m.spec_version = &i
	m.addspec_version = nil
}

// SpecVersion returns the value of the "spec_version" field in the mutation.
func (m *SessionMutation) SpecVersion() (r int, exists bool) {
	v := m.spec_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecVersion returns the old "spec_version" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSpecVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecVersion: %w", err)
	}
	return oldValue.SpecVersion, nil
}

// AddSpecVersion adds i to the "spec_version" field.
func (m *SessionMutation) AddSpecVersion(i int) {
	if m.addspec_version != nil {
		*m.addspec_version += i
	} else {
		m.addspec_version = &i
	}
}

// AddedSpecVersion returns the value that was added to the "spec_version" field in this mutation.
func (m *SessionMutation) AddedSpecVersion() (r int, exists bool) {
	v := m.addspec_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpecVersion resets all changes to the "spec_version" field.
func (m *SessionMutation) ResetSpecVersion() {
	m.spec_version = nil
	m.addspec_version = nil
}

// SetFinalSpec sets the "final_spec" field.
func (m *SessionMutation) SetFinalSpec(value map[string]interface{}) {
	m.final_spec = &value
}

// FinalSpec returns the value of the "final_spec" field in the mutation.
func (m *SessionMutation) FinalSpec() (r map[string]interface{}, exists bool) {
	v := m.final_spec
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalSpec returns the old "final_spec" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldFinalSpec(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalSpec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalSpec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalSpec: %w", err)
	}
	return oldValue.FinalSpec, nil
}

// ClearFinalSpec clears the value of the "final_spec" field.
func (m *SessionMutation) ClearFinalSpec() {
	m.final_spec = nil
	m.clearedFields[session.FieldFinalSpec] = struct{}{}
}

// FinalSpecCleared returns if the "final_spec" field was cleared in this mutation.
func (m *SessionMutation) FinalSpecCleared() bool {
	_, ok := m.clearedFields[session.FieldFinalSpec]
	return ok
}

// ResetFinalSpec resets all changes to the "final_spec" field.
func (m *SessionMutation) ResetFinalSpec() {
	m.final_spec = nil
	delete(m.clearedFields, session.FieldFinalSpec)
}

// SetErrorMessage sets the "error_message" field.
func (m *SessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[session.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[session.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, session.FieldErrorMessage)
}

// SetAuthor sets the "author" field.
func (m *SessionMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *SessionMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *SessionMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[session.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *SessionMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[session.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *SessionMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, session.FieldAuthor)
}

// SetMetadata sets the "metadata" field.
func (m *SessionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *SessionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *SessionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[session.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *SessionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[session.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *SessionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, session.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetBuildingStartedAt sets the "building_started_at" field.
func (m *SessionMutation) SetBuildingStartedAt(t time.Time) {
	m.building_started_at = &t
}

// BuildingStartedAt returns the value of the "building_started_at" field in the mutation.
func (m *SessionMutation) BuildingStartedAt() (r time.Time, exists bool) {
	v := m.building_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingStartedAt returns the old "building_started_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldBuildingStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingStartedAt: %w", err)
	}
	return oldValue.BuildingStartedAt, nil
}

// ClearBuildingStartedAt clears the value of the "building_started_at" field.
func (m *SessionMutation) ClearBuildingStartedAt() {
	m.building_started_at = nil
	m.clearedFields[session.FieldBuildingStartedAt] = struct{}{}
}

// BuildingStartedAtCleared returns if the "building_started_at" field was cleared in this mutation.
func (m *SessionMutation) BuildingStartedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldBuildingStartedAt]
	return ok
}

// ResetBuildingStartedAt resets all changes to the "building_started_at" field.
func (m *SessionMutation) ResetBuildingStartedAt() {
	m.building_started_at = nil
	delete(m.clearedFields, session.FieldBuildingStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[session.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, session.FieldCompletedAt)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SessionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[session.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SessionMutation) ProjectCleared() bool {
	return m.ProjectIDCleared() || m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SessionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddTicketIDs adds the "tickets" edge to the Ticket entity by ids.
func (m *SessionMutation) AddTicketIDs(ids ...string) {
	if m.tickets == nil {
		m.tickets = make(map[string]struct{})
	}
	for i := range ids {
		m.tickets[ids[i]] = struct{}{}
	}
}

// ClearTickets clears the "tickets" edge to the Ticket entity.
func (m *SessionMutation) ClearTickets() {
	m.clearedtickets = true
}

// TicketsCleared reports if the "tickets" edge to the Ticket entity was cleared.
func (m *SessionMutation) TicketsCleared() bool {
	return m.clearedtickets
}

// RemoveTicketIDs removes the "tickets" edge to the Ticket entity by IDs.
func (m *SessionMutation) RemoveTicketIDs(ids ...string) {
	if m.removedtickets == nil {
		m.removedtickets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tickets, ids[i])
		m.removedtickets[ids[i]] = struct{}{}
	}
}

// RemovedTickets returns the removed IDs of the "tickets" edge to the Ticket entity.
func (m *SessionMutation) RemovedTicketsIDs() (ids []string) {
	for id := range m.removedtickets {
		ids = append(ids, id)
	}
	return
}

// TicketsIDs returns the "tickets" edge IDs in the mutation.
func (m *SessionMutation) TicketsIDs() (ids []string) {
	for id := range m.tickets {
		ids = append(ids, id)
	}
	return
}

// ResetTickets resets all changes to the "tickets" edge.
func (m *SessionMutation) ResetTickets() {
	m.tickets = nil
	m.clearedtickets = false
	m.removedtickets = nil
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *SessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *SessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *SessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *SessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *SessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *SessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *SessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddApprovalIDs adds the "approvals" edge to the Approval entity by ids.
func (m *SessionMutation) AddApprovalIDs(ids ...string) {
	if m.approvals == nil {
		m.approvals = make(map[string]struct{})
	}
	for i := range ids {
		m.approvals[ids[i]] = struct{}{}
	}
}

// ClearApprovals clears the "approvals" edge to the Approval entity.
func (m *SessionMutation) ClearApprovals() {
	m.clearedapprovals = true
}

// ApprovalsCleared reports if the "approvals" edge to the Approval entity was cleared.
func (m *SessionMutation) ApprovalsCleared() bool {
	return m.clearedapprovals
}

// RemoveApprovalIDs removes the "approvals" edge to the Approval entity by IDs.
func (m *SessionMutation) RemoveApprovalIDs(ids ...string) {
	if m.removedapprovals == nil {
		m.removedapprovals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.approvals, ids[i])
		m.removedapprovals[ids[i]] = struct{}{}
	}
}

// RemovedApprovals returns the removed IDs of the "approvals" edge to the Approval entity.
func (m *SessionMutation) RemovedApprovalsIDs() (ids []string) {
	for id := range m.removedapprovals {
		ids = append(ids, id)
	}
	return
}

// ApprovalsIDs returns the "approvals" edge IDs in the mutation.
func (m *SessionMutation) ApprovalsIDs() (ids []string) {
	for id := range m.approvals {
		ids = append(ids, id)
	}
	return
}

// ResetApprovals resets all changes to the "approvals" edge.
func (m *SessionMutation) ResetApprovals() {
	m.approvals = nil
	m.clearedapprovals = false
	m.removedapprovals = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *SessionMutation) AddEventIDs(ids ...int64) {
	if m.events == nil {
		m.events = make(map[int64]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *SessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *SessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *SessionMutation) RemoveEventIDs(ids ...int64) {
	if m.removedevents == nil {
		m.removedevents = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *SessionMutation) RemovedEventsIDs() (ids []int64) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *SessionMutation) EventsIDs() (ids []int64) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *SessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.tenant_id != nil {
		fields = append(fields, session.FieldTenantID)
	}
	if m.project != nil {
		fields = append(fields, session.FieldProjectID)
	}
	if m.project_name != nil {
		fields = append(fields, session.FieldProjectName)
	}
	if m.title != nil {
		fields = append(fields, session.FieldTitle)
	}
	if m.state != nil {
		fields = append(fields, session.FieldState)
	}
	if m.source_type != nil {
		fields = append(fields, session.FieldSourceType)
	}
	if m.initial_prompt != nil {
		fields = append(fields, session.FieldInitialPrompt)
	}
	if m.repo_url != nil {
		fields = append(fields, session.FieldRepoURL)
	}
	if m.repo_analysis != nil {
		fields = append(fields, session.FieldRepoAnalysis)
	}
	if m.gathered_context != nil {
		fields = append(fields, session.FieldGatheredContext)
	}
	if m.coverage != nil {
		fields = append(fields, session.FieldCoverage)
	}
	if m.progress != nil {
		fields = append(fields, session.FieldProgress)
	}
	if m.clarification_turns != nil {
		fields = append(fields, session.FieldClarificationTurns)
	}
	if m.draft_spec != nil {
		fields = append(fields, session.FieldDraftSpec)
	}
	if m.spec_version != nil {
		fields = append(fields, session.FieldSpecVersion)
	}
	if m.final_spec != nil {
		fields = append(fields, session.FieldFinalSpec)
	}
	if m.error_message != nil {
		fields = append(fields, session.FieldErrorMessage)
	}
	if m.author != nil {
		fields = append(fields, session.FieldAuthor)
	}
	if m.metadata != nil {
		fields = append(fields, session.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	if m.building_started_at != nil {
		fields = append(fields, session.FieldBuildingStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, session.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldTenantID:
		return m.TenantID()
	case session.FieldProjectID:
		return m.ProjectID()
	case session.FieldProjectName:
		return m.ProjectName()
	case session.FieldTitle:
		return m.Title()
	case session.FieldState:
		return m.State()
	case session.FieldSourceType:
		return m.SourceType()
	case session.FieldInitialPrompt:
		return m.InitialPrompt()
	case session.FieldRepoURL:
		return m.RepoURL()
	case session.FieldRepoAnalysis:
		return m.RepoAnalysis()
	case session.FieldGatheredContext:
		return m.GatheredContext()
	case session.FieldCoverage:
		return m.Coverage()
	case session.FieldProgress:
		return m.Progress()
	case session.FieldClarificationTurns:
		return m.ClarificationTurns()
	case session.FieldDraftSpec:
		return m.DraftSpec()
	case session.FieldSpecVersion:
		return m.SpecVersion()
	case session.FieldFinalSpec:
		return m.FinalSpec()
	case session.FieldErrorMessage:
		return m.ErrorMessage()
	case session.FieldAuthor:
		return m.Author()
	case session.FieldMetadata:
		return m.Metadata()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	case session.FieldBuildingStartedAt:
		return m.BuildingStartedAt()
	case session.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldTenantID:
		return m.OldTenantID(ctx)
	case session.FieldProjectID:
		return m.OldProjectID(ctx)
	case session.FieldProjectName:
		return m.OldProjectName(ctx)
	case session.FieldTitle:
		return m.OldTitle(ctx)
	case session.FieldState:
		return m.OldState(ctx)
	case session.FieldSourceType:
		return m.OldSourceType(ctx)
	case session.FieldInitialPrompt:
		return m.OldInitialPrompt(ctx)
	case session.FieldRepoURL:
		return m.OldRepoURL(ctx)
	case session.FieldRepoAnalysis:
		return m.OldRepoAnalysis(ctx)
	case session.FieldGatheredContext:
		return m.OldGatheredContext(ctx)
	case session.FieldCoverage:
		return m.OldCoverage(ctx)
	case session.FieldProgress:
		return m.OldProgress(ctx)
	case session.FieldClarificationTurns:
		return m.OldClarificationTurns(ctx)
	case session.FieldDraftSpec:
		return m.OldDraftSpec(ctx)
	case session.FieldSpecVersion:
		return m.OldSpecVersion(ctx)
	case session.FieldFinalSpec:
		return m.OldFinalSpec(ctx)
	case session.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case session.FieldAuthor:
		return m.OldAuthor(ctx)
	case session.FieldMetadata:
		return m.OldMetadata(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case session.FieldBuildingStartedAt:
		return m.OldBuildingStartedAt(ctx)
	case session.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case session.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case session.FieldProjectName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectName(v)
		return nil
	case session.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case session.FieldState:
		v, ok := value.(session.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case session.FieldSourceType:
		v, ok := value.(session.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case session.FieldInitialPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialPrompt(v)
		return nil
	case session.FieldRepoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoURL(v)
		return nil
	case session.FieldRepoAnalysis:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoAnalysis(v)
		return nil
	case session.FieldGatheredContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGatheredContext(v)
		return nil
	case session.FieldCoverage:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverage(v)
		return nil
	case session.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case session.FieldClarificationTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClarificationTurns(v)
		return nil
	case session.FieldDraftSpec:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDraftSpec(v)
		return nil
	case session.FieldSpecVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecVersion(v)
		return nil
	case session.FieldFinalSpec:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalSpec(v)
		return nil
	case session.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case session.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case session.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case session.FieldBuildingStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingStartedAt(v)
		return nil
	case session.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, session.FieldProgress)
	}
	if m.addclarification_turns != nil {
		fields = append(fields, session.FieldClarificationTurns)
	}
	if m.addspec_version != nil {
		fields = append(fields, session.FieldSpecVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldProgress:
		return m.AddedProgress()
	case session.FieldClarificationTurns:
		return m.AddedClarificationTurns()
	case session.FieldSpecVersion:
		return m.AddedSpecVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case session.FieldClarificationTurns:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClarificationTurns(v)
		return nil
	case session.FieldSpecVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpecVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldProjectID) {
		fields = append(fields, session.FieldProjectID)
	}
	if m.FieldCleared(session.FieldProjectName) {
		fields = append(fields, session.FieldProjectName)
	}
	if m.FieldCleared(session.FieldTitle) {
		fields = append(fields, session.FieldTitle)
	}
	if m.FieldCleared(session.FieldRepoURL) {
		fields = append(fields, session.FieldRepoURL)
	}
	if m.FieldCleared(session.FieldRepoAnalysis) {
		fields = append(fields, session.FieldRepoAnalysis)
	}
	if m.FieldCleared(session.FieldGatheredContext) {
		fields = append(fields, session.FieldGatheredContext)
	}
	if m.FieldCleared(session.FieldCoverage) {
		fields = append(fields, session.FieldCoverage)
	}
	if m.FieldCleared(session.FieldDraftSpec) {
		fields = append(fields, session.FieldDraftSpec)
	}
	if m.FieldCleared(session.FieldFinalSpec) {
		fields = append(fields, session.FieldFinalSpec)
	}
	if m.FieldCleared(session.FieldErrorMessage) {
		fields = append(fields, session.FieldErrorMessage)
	}
	if m.FieldCleared(session.FieldAuthor) {
		fields = append(fields, session.FieldAuthor)
	}
	if m.FieldCleared(session.FieldMetadata) {
		fields = append(fields, session.FieldMetadata)
	}
	if m.FieldCleared(session.FieldBuildingStartedAt) {
		fields = append(fields, session.FieldBuildingStartedAt)
	}
	if m.FieldCleared(session.FieldCompletedAt) {
		fields = append(fields, session.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldProjectID:
		m.ClearProjectID()
		return nil
	case session.FieldProjectName:
		m.ClearProjectName()
		return nil
	case session.FieldTitle:
		m.ClearTitle()
		return nil
	case session.FieldRepoURL:
		m.ClearRepoURL()
		return nil
	case session.FieldRepoAnalysis:
		m.ClearRepoAnalysis()
		return nil
	case session.FieldGatheredContext:
		m.ClearGatheredContext()
		return nil
	case session.FieldCoverage:
		m.ClearCoverage()
		return nil
	case session.FieldDraftSpec:
		m.ClearDraftSpec()
		return nil
	case session.FieldFinalSpec:
		m.ClearFinalSpec()
		return nil
	case session.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case session.FieldAuthor:
		m.ClearAuthor()
		return nil
	case session.FieldMetadata:
		m.ClearMetadata()
		return nil
	case session.FieldBuildingStartedAt:
		m.ClearBuildingStartedAt()
		return nil
	case session.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldTenantID:
		m.ResetTenantID()
		return nil
	case session.FieldProjectID:
		m.ResetProjectID()
		return nil
	case session.FieldProjectName:
		m.ResetProjectName()
		return nil
	case session.FieldTitle:
		m.ResetTitle()
		return nil
	case session.FieldState:
		m.ResetState()
		return nil
	case session.FieldSourceType:
		m.ResetSourceType()
		return nil
	case session.FieldInitialPrompt:
		m.ResetInitialPrompt()
		return nil
	case session.FieldRepoURL:
		m.ResetRepoURL()
		return nil
	case session.FieldRepoAnalysis:
		m.ResetRepoAnalysis()
		return nil
	case session.FieldGatheredContext:
		m.ResetGatheredContext()
		return nil
	case session.FieldCoverage:
		m.ResetCoverage()
		return nil
	case session.FieldProgress:
		m.ResetProgress()
		return nil
	case session.FieldClarificationTurns:
		m.ResetClarificationTurns()
		return nil
	case session.FieldDraftSpec:
		m.ResetDraftSpec()
		return nil
	case session.FieldSpecVersion:
		m.ResetSpecVersion()
		return nil
	case session.FieldFinalSpec:
		m.ResetFinalSpec()
		return nil
	case session.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case session.FieldAuthor:
		m.ResetAuthor()
		return nil
	case session.FieldMetadata:
		m.ResetMetadata()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case session.FieldBuildingStartedAt:
		m.ResetBuildingStartedAt()
		return nil
	case session.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.project != nil {
		edges = append(edges, session.EdgeProject)
	}
	if m.tickets != nil {
		edges = append(edges, session.EdgeTickets)
	}
	if m.messages != nil {
		edges = append(edges, session.EdgeMessages)
	}
	if m.approvals != nil {
		edges = append(edges, session.EdgeApprovals)
	}
	if m.events != nil {
		edges = append(edges, session.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgeTickets:
		ids := make([]ent.Value, 0, len(m.tickets))
		for id := range m.tickets {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeApprovals:
		ids := make([]ent.Value, 0, len(m.approvals))
		for id := range m.approvals {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedtickets != nil {
		edges = append(edges, session.EdgeTickets)
	}
	if m.removedmessages != nil {
		edges = append(edges, session.EdgeMessages)
	}
	if m.removedapprovals != nil {
		edges = append(edges, session.EdgeApprovals)
	}
	if m.removedevents != nil {
		edges = append(edges, session.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeTickets:
		ids := make([]ent.Value, 0, len(m.removedtickets))
		for id := range m.removedtickets {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeApprovals:
		ids := make([]ent.Value, 0, len(m.removedapprovals))
		for id := range m.removedapprovals {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedproject {
		edges = append(edges, session.EdgeProject)
	}
	if m.clearedtickets {
		edges = append(edges, session.EdgeTickets)
	}
	if m.clearedmessages {
		edges = append(edges, session.EdgeMessages)
	}
	if m.clearedapprovals {
		edges = append(edges, session.EdgeApprovals)
	}
	if m.clearedevents {
		edges = append(edges, session.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeProject:
		return m.clearedproject
	case session.EdgeTickets:
		return m.clearedtickets
	case session.EdgeMessages:
		return m.clearedmessages
	case session.EdgeApprovals:
		return m.clearedapprovals
	case session.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeProject:
		m.ResetProject()
		return nil
	case session.EdgeTickets:
		m.ResetTickets()
		return nil
	case session.EdgeMessages:
		m.ResetMessages()
		return nil
	case session.EdgeApprovals:
		m.ResetApprovals()
		return nil
	case session.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// SessionStateMutation represents an operation that mutates the SessionState nodes in the graph.
type SessionStateMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	allowed_next       *[]string
	appendallowed_next []string
	terminal           *bool
	description        *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*SessionState, error)
	predicates         []predicate.SessionState
}

var _ ent.Mutation = (*SessionStateMutation)(nil)

// sessionstateOption allows management of the mutation configuration using functional options.
type sessionstateOption func(*SessionStateMutation)

// newSessionStateMutation creates new mutation for the SessionState entity.
func newSessionStateMutation(c config, op Op, opts ...sessionstateOption) *SessionStateMutation {
	m := &SessionStateMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionStateID sets the ID field of the mutation.
func withSessionStateID(id string) sessionstateOption {
	return func(m *SessionStateMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionState
		)
		m.oldValue = func(ctx context.Context) (*SessionState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionState sets the old SessionState of the mutation.
func withSessionState(node *SessionState) sessionstateOption {
	return func(m *SessionStateMutation) {
		m.oldValue = func(context.Context) (*SessionState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionState entities.
func (m *SessionStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAllowedNext sets the "allowed_next" field.
func (m *SessionStateMutation) SetAllowedNext(s []string) {
	m.allowed_next = &s
	m.appendallowed_next = nil
}

// AllowedNext returns the value of the "allowed_next" field in the mutation.
func (m *SessionStateMutation) AllowedNext() (r []string, exists bool) {
	v := m.allowed_next
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedNext returns the old "allowed_next" field's value of the SessionState entity.
// If the SessionState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionStateMutation) OldAllowedNext(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedNext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedNext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedNext: %w", err)
	}
	return oldValue.AllowedNext, nil
}

// AppendAllowedNext adds s to the "allowed_next" field.
func (m *SessionStateMutation) AppendAllowedNext(s []string) {
	m.appendallowed_next = append(m.appendallowed_next, s...)
}

// AppendedAllowedNext returns the list of values that were appended to the "allowed_next" field in this mutation.
func (m *SessionStateMutation) AppendedAllowedNext() ([]string, bool) {
	if len(m.appendallowed_next) == 0 {
		return nil, false
	}
	return m.appendallowed_next, true
}

// ClearAllowedNext clears the value of the "allowed_next" field.
func (m *SessionStateMutation) ClearAllowedNext() {
	m.allowed_next = nil
	m.appendallowed_next = nil
	m.clearedFields[sessionstate.FieldAllowedNext] = struct{}{}
}

// AllowedNextCleared returns if the "allowed_next" field was cleared in this mutation.
func (m *SessionStateMutation) AllowedNextCleared() bool {
	_, ok := m.clearedFields[sessionstate.FieldAllowedNext]
	return ok
}

// ResetAllowedNext resets all changes to the "allowed_next" field.
func (m *SessionStateMutation) ResetAllowedNext() {
	m.allowed_next = nil
	m.appendallowed_next = nil
	delete(m.clearedFields, sessionstate.FieldAllowedNext)
}

// SetTerminal sets the "terminal" field.
func (m *SessionStateMutation) SetTerminal(b bool) {
	m.terminal = &b
}

// Terminal returns the value of the "terminal" field in the mutation.
func (m *SessionStateMutation) Terminal() (r bool, exists bool) {
	v := m.terminal
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminal returns the old "terminal" field's value of the SessionState entity.
// If the SessionState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionStateMutation) OldTerminal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminal: %w", err)
	}
	return oldValue.Terminal, nil
}

// ResetTerminal resets all changes to the "terminal" field.
func (m *SessionStateMutation) ResetTerminal() {
	m.terminal = nil
}

// SetDescription sets the "description" field.
func (m *SessionStateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SessionStateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SessionState entity.
// If the SessionState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionStateMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SessionStateMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[sessionstate.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SessionStateMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[sessionstate.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SessionStateMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, sessionstate.FieldDescription)
}

// Where appends a list predicates to the SessionStateMutation builder.
func (m *SessionStateMutation) Where(ps ...predicate.SessionState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionState).
func (m *SessionStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionStateMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.allowed_next != nil {
		fields = append(fields, sessionstate.FieldAllowedNext)
	}
	if m.terminal != nil {
		fields = append(fields, sessionstate.FieldTerminal)
	}
	if m.description != nil {
		fields = append(fields, sessionstate.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionstate.FieldAllowedNext:
		return m.AllowedNext()
	case sessionstate.FieldTerminal:
		return m.Terminal()
	case sessionstate.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionstate.FieldAllowedNext:
		return m.OldAllowedNext(ctx)
	case sessionstate.FieldTerminal:
		return m.OldTerminal(ctx)
	case sessionstate.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown SessionState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionstate.FieldAllowedNext:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedNext(v)
		return nil
	case sessionstate.FieldTerminal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminal(v)
		return nil
	case sessionstate.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown SessionState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionStateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionStateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionstate.FieldAllowedNext) {
		fields = append(fields, sessionstate.FieldAllowedNext)
	}
	if m.FieldCleared(sessionstate.FieldDescription) {
		fields = append(fields, sessionstate.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionStateMutation) ClearField(name string) error {
	switch name {
	case sessionstate.FieldAllowedNext:
		m.ClearAllowedNext()
		return nil
	case sessionstate.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown SessionState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionStateMutation) ResetField(name string) error {
	switch name {
	case sessionstate.FieldAllowedNext:
		m.ResetAllowedNext()
		return nil
	case sessionstate.FieldTerminal:
		m.ResetTerminal()
		return nil
	case sessionstate.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown SessionState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionState edge %s", name)
}

// TicketMutation represents an operation that mutates the Ticket nodes in the graph.
type TicketMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	project_id                *string
	tenant_id                 *string
	kind                      *ticket.Kind
	parent_id                 *string
	title                     *string
	description               *string
	feature_id                *string
	acceptance_criteria       *[]map[string]interface{}
	appendacceptance_criteria []map[string]interface{}
	state                     *ticket.State
	priority                  *int
	addpriority               *int
	blocked_by_count          *int
	addblocked_by_count       *int
	attempt                   *int
	addattempt                *int
	max_attempts              *int
	addmax_attempts           *int
	rejection_count           *int
	addrejection_count        *int
	verification_status       *ticket.VerificationStatus
	assignee_kind             *ticket.AssigneeKind
	assignee_id               *string
	vm_id                     *string
	lease_expires_at          *time.Time
	last_heartbeat_at         *time.Time
	not_before                *time.Time
	cancel_requested          *bool
	branch_name               *string
	pr_url                    *string
	last_error                *string
	prior_feedback            *[]string
	appendprior_feedback      []string
	criteria_status           *[]map[string]interface{}
	appendcriteria_status     []map[string]interface{}
	outputs                   *map[string]interface{}
	created_at                *time.Time
	updated_at                *time.Time
	started_at                *time.Time
	completed_at              *time.Time
	clearedFields             map[string]struct{}
	session                   *string
	clearedsession            bool
	dependencies              map[string]struct{}
	removeddependencies       map[string]struct{}
	cleareddependencies       bool
	dependents                map[string]struct{}
	removeddependents         map[string]struct{}
	cleareddependents         bool
	done                      bool
	oldValue                  func(context.Context) (*Ticket, error)
	predicates                []predicate.Ticket
}

var _ ent.Mutation = (*TicketMutation)(nil)

// ticketOption allows management of the mutation configuration using functional options.
type ticketOption func(*TicketMutation)

// newTicketMutation creates new mutation for the Ticket entity.
func newTicketMutation(c config, op Op, opts ...ticketOption) *TicketMutation {
	m := &TicketMutation{
		config:        c,
		op:            op,
		typ:           TypeTicket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketID sets the ID field of the mutation.
func withTicketID(id string) ticketOption {
	return func(m *TicketMutation) {
		var (
			err   error
			once  sync.Once
			value *Ticket
		)
		m.oldValue = func(ctx context.Context) (*Ticket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Ticket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicket sets the old Ticket of the mutation.
func withTicket(node *Ticket) ticketOption {
	return func(m *TicketMutation) {
		m.oldValue = func(context.Context) (*Ticket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Ticket entities.
func (m *TicketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Ticket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *TicketMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TicketMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TicketMutation) ResetSessionID() {
	m.session = nil
}

// SetProjectID sets the "project_id" field.
func (m *TicketMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TicketMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TicketMutation) ResetProjectID() {
	m.project_id = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *TicketMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *TicketMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *TicketMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetKind sets the "kind" field.
func (m *TicketMutation) SetKind(t ticket.Kind) {
	m.kind = &t
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TicketMutation) Kind() (r ticket.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldKind(ctx context.Context) (v ticket.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TicketMutation) ResetKind() {
	m.kind = nil
}

// SetParentID sets the "parent_id" field.
func (m *TicketMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *TicketMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *TicketMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[ticket.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *TicketMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *TicketMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, ticket.FieldParentID)
}

// SetTitle sets the "title" field.
func (m *TicketMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TicketMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TicketMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TicketMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TicketMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TicketMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[ticket.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TicketMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[ticket.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TicketMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, ticket.FieldDescription)
}

// SetFeatureID sets the "feature_id" field.
func (m *TicketMutation) SetFeatureID(s string) {
	m.feature_id = &s
}

// FeatureID returns the value of the "feature_id" field in the mutation.
func (m *TicketMutation) FeatureID() (r string, exists bool) {
	v := m.feature_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureID returns the old "feature_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldFeatureID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureID: %w", err)
	}
	return oldValue.FeatureID, nil
}

// ClearFeatureID clears the value of the "feature_id" field.
func (m *TicketMutation) ClearFeatureID() {
	m.feature_id = nil
	m.clearedFields[ticket.FieldFeatureID] = struct{}{}
}

// FeatureIDCleared returns if the "feature_id" field was cleared in this mutation.
func (m *TicketMutation) FeatureIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldFeatureID]
	return ok
}

// ResetFeatureID resets all changes to the "feature_id" field.
func (m *TicketMutation) ResetFeatureID() {
	m.feature_id = nil
	delete(m.clearedFields, ticket.FieldFeatureID)
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (m *TicketMutation) SetAcceptanceCriteria(value []map[string]interface{}) {
	m.acceptance_criteria = &value
	m.appendacceptance_criteria = nil
}

// AcceptanceCriteria returns the value of the "acceptance_criteria" field in the mutation.
func (m *TicketMutation) AcceptanceCriteria() (r []map[string]interface{}, exists bool) {
	v := m.acceptance_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldAcceptanceCriteria returns the old "acceptance_criteria" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldAcceptanceCriteria(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcceptanceCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcceptanceCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcceptanceCriteria: %w", err)
	}
	return oldValue.AcceptanceCriteria, nil
}

// AppendAcceptanceCriteria adds value to the "acceptance_criteria" field.
func (m *TicketMutation) AppendAcceptanceCriteria(value []map[string]interface{}) {
	m.appendacceptance_criteria = append(m.appendacceptance_criteria, value...)
}

// AppendedAcceptanceCriteria returns the list of values that were appended to the "acceptance_criteria" field in this mutation.
func (m *TicketMutation) AppendedAcceptanceCriteria() ([]map[string]interface{}, bool) {
	if len(m.appendacceptance_criteria) == 0 {
		return nil, false
	}
	return m.appendacceptance_criteria, true
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (m *TicketMutation) ClearAcceptanceCriteria() {
	m.acceptance_criteria = nil
	m.appendacceptance_criteria = nil
	m.clearedFields[ticket.FieldAcceptanceCriteria] = struct{}{}
}

// AcceptanceCriteriaCleared returns if the "acceptance_criteria" field was cleared in this mutation.
func (m *TicketMutation) AcceptanceCriteriaCleared() bool {
	_, ok := m.clearedFields[ticket.FieldAcceptanceCriteria]
	return ok
}

// ResetAcceptanceCriteria resets all changes to the "acceptance_criteria" field.
func (m *TicketMutation) ResetAcceptanceCriteria() {
	m.acceptance_criteria = nil
	m.appendacceptance_criteria = nil
	delete(m.clearedFields, ticket.FieldAcceptanceCriteria)
}

// SetState sets the "state" field.
func (m *TicketMutation) SetState(t ticket.State) {
	m.state = &t
}

// State returns the value of the "state" field in the mutation.
func (m *TicketMutation) State() (r ticket.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldState(ctx context.Context) (v ticket.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *TicketMutation) ResetState() {
	m.state = nil
}

// SetPriority sets the "priority" field.
func (m *TicketMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TicketMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *TicketMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TicketMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TicketMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetBlockedByCount sets the "blocked_by_count" field.
func (m *TicketMutation) SetBlockedByCount(i int) {
	m.blocked_by_count = &i
	m.addblocked_by_count = nil
}

// BlockedByCount returns the value of the "blocked_by_count" field in the mutation.
func (m *TicketMutation) BlockedByCount() (r int, exists bool) {
	v := m.blocked_by_count
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockedByCount returns the old "blocked_by_count" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldBlockedByCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockedByCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockedByCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockedByCount: %w", err)
	}
	return oldValue.BlockedByCount, nil
}

// AddBlockedByCount adds i to the "blocked_by_count" field.
func (m *TicketMutation) AddBlockedByCount(i int) {
	if m.addblocked_by_count != nil {
		*m.addblocked_by_count += i
	} else {
		m.addblocked_by_count = &i
	}
}

// AddedBlockedByCount returns the value that was added to the "blocked_by_count" field in this mutation.
func (m *TicketMutation) AddedBlockedByCount() (r int, exists bool) {
	v := m.addblocked_by_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetBlockedByCount resets all changes to the "blocked_by_count" field.
func (m *TicketMutation) ResetBlockedByCount() {
	m.blocked_by_count = nil
	m.addblocked_by_count = nil
}

// SetAttempt sets the "attempt" field.
func (m *TicketMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *TicketMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *TicketMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *TicketMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *TicketMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *TicketMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *TicketMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *TicketMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *TicketMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *TicketMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetRejectionCount sets the "rejection_count" field.
func (m *TicketMutation) SetRejectionCount(i int) {
	m.rejection_count = &i
	m.addrejection_count = nil
}

// RejectionCount returns the value of the "rejection_count" field in the mutation.
func (m *TicketMutation) RejectionCount() (r int, exists bool) {
	v := m.rejection_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionCount returns the old "rejection_count" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldRejectionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionCount: %w", err)
	}
	return oldValue.RejectionCount, nil
}

// AddRejectionCount adds i to the "rejection_count" field.
func (m *TicketMutation) AddRejectionCount(i int) {
	if m.addrejection_count != nil {
		*m.addrejection_count += i
	} else {
		m.addrejection_count = &i
	}
}

// AddedRejectionCount returns the value that was added to the "rejection_count" field in this mutation.
func (m *TicketMutation) AddedRejectionCount() (r int, exists bool) {
	v := m.addrejection_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRejectionCount resets all changes to the "rejection_count" field.
func (m *TicketMutation) ResetRejectionCount() {
	m.rejection_count = nil
	m.addrejection_count = nil
}

// SetVerificationStatus sets the "verification_status" field.
func (m *TicketMutation) SetVerificationStatus(ts ticket.VerificationStatus) {
	m.verification_status = &ts
}

// VerificationStatus returns the value of the "verification_status" field in the mutation.
func (m *TicketMutation) VerificationStatus() (r ticket.VerificationStatus, exists bool) {
	v := m.verification_status
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationStatus returns the old "verification_status" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldVerificationStatus(ctx context.Context) (v ticket.VerificationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationStatus: %w", err)
	}
	return oldValue.VerificationStatus, nil
}

// ResetVerificationStatus resets all changes to the "verification_status" field.
func (m *TicketMutation) ResetVerificationStatus() {
	m.verification_status = nil
}

// SetAssigneeKind sets the "assignee_kind" field.
func (m *TicketMutation) SetAssigneeKind(tk ticket.AssigneeKind) {
	m.assignee_kind = &tk
}

// AssigneeKind returns the value of the "assignee_kind" field in the mutation.
func (m *TicketMutation) AssigneeKind() (r ticket.AssigneeKind, exists bool) {
	v := m.assignee_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeKind returns the old "assignee_kind" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldAssigneeKind(ctx context.Context) (v ticket.AssigneeKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeKind: %w", err)
	}
	return oldValue.AssigneeKind, nil
}

// ResetAssigneeKind resets all changes to the "assignee_kind" field.
func (m *TicketMutation) ResetAssigneeKind() {
	m.assignee_kind = nil
}

// SetAssigneeID sets the "assignee_id" field.
func (m *TicketMutation) SetAssigneeID(s string) {
	m.assignee_id = &s
}

// AssigneeID returns the value of the "assignee_id" field in the mutation.
func (m *TicketMutation) AssigneeID() (r string, exists bool) {
	v := m.assignee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssigneeID returns the old "assignee_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldAssigneeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssigneeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssigneeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssigneeID: %w", err)
	}
	return oldValue.AssigneeID, nil
}

// ClearAssigneeID clears the value of the "assignee_id" field.
func (m *TicketMutation) ClearAssigneeID() {
	m.assignee_id = nil
	m.clearedFields[ticket.FieldAssigneeID] = struct{}{}
}

// AssigneeIDCleared returns if the "assignee_id" field was cleared in this mutation.
func (m *TicketMutation) AssigneeIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldAssigneeID]
	return ok
}

// ResetAssigneeID resets all changes to the "assignee_id" field.
func (m *TicketMutation) ResetAssigneeID() {
	m.assignee_id = nil
	delete(m.clearedFields, ticket.FieldAssigneeID)
}

// SetVMID sets the "vm_id" field.
func (m *TicketMutation) SetVMID(s string) {
	m.vm_id = &s
}

// VMID returns the value of the "vm_id" field in the mutation.
func (m *TicketMutation) VMID() (r string, exists bool) {
	v := m.vm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVMID returns the old "vm_id" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldVMID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVMID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVMID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVMID: %w", err)
	}
	return oldValue.VMID, nil
}

// ClearVMID clears the value of the "vm_id" field.
func (m *TicketMutation) ClearVMID() {
	m.vm_id = nil
	m.clearedFields[ticket.FieldVMID] = struct{}{}
}

// VMIDCleared returns if the "vm_id" field was cleared in this mutation.
func (m *TicketMutation) VMIDCleared() bool {
	_, ok := m.clearedFields[ticket.FieldVMID]
	return ok
}

// ResetVMID resets all changes to the "vm_id" field.
func (m *TicketMutation) ResetVMID() {
	m.vm_id = nil
	delete(m.clearedFields, ticket.FieldVMID)
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *TicketMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *TicketMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *TicketMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[ticket.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *TicketMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[ticket.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *TicketMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, ticket.FieldLeaseExpiresAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *TicketMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *TicketMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *TicketMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[ticket.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *TicketMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[ticket.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *TicketMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, ticket.FieldLastHeartbeatAt)
}

// SetNotBefore sets the "not_before" field.
func (m *TicketMutation) SetNotBefore(t time.Time) {
	m.not_before = &t
}

// NotBefore returns the value of the "not_before" field in the mutation.
func (m *TicketMutation) NotBefore() (r time.Time, exists bool) {
	v := m.not_before
	if v == nil {
		return
	}
	return *v, true
}

// OldNotBefore returns the old "not_before" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldNotBefore(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotBefore: %w", err)
	}
	return oldValue.NotBefore, nil
}

// ClearNotBefore clears the value of the "not_before" field.
func (m *TicketMutation) ClearNotBefore() {
	m.not_before = nil
	m.clearedFields[ticket.FieldNotBefore] = struct{}{}
}

// NotBeforeCleared returns if the "not_before" field was cleared in this mutation.
func (m *TicketMutation) NotBeforeCleared() bool {
	_, ok := m.clearedFields[ticket.FieldNotBefore]
	return ok
}

// ResetNotBefore resets all changes to the "not_before" field.
func (m *TicketMutation) ResetNotBefore() {
	m.not_before = nil
	delete(m.clearedFields, ticket.FieldNotBefore)
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *TicketMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *TicketMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *TicketMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetBranchName sets the "branch_name" field.
func (m *TicketMutation) SetBranchName(s string) {
	m.branch_name = &s
}

// BranchName returns the value of the "branch_name" field in the mutation.
func (m *TicketMutation) BranchName() (r string, exists bool) {
	v := m.branch_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchName returns the old "branch_name" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldBranchName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchName: %w", err)
	}
	return oldValue.BranchName, nil
}

// ClearBranchName clears the value of the "branch_name" field.
func (m *TicketMutation) ClearBranchName() {
	m.branch_name = nil
	m.clearedFields[ticket.FieldBranchName] = struct{}{}
}

// BranchNameCleared returns if the "branch_name" field was cleared in this mutation.
func (m *TicketMutation) BranchNameCleared() bool {
	_, ok := m.clearedFields[ticket.FieldBranchName]
	return ok
}

// ResetBranchName resets all changes to the "branch_name" field.
func (m *TicketMutation) ResetBranchName() {
	m.branch_name = nil
	delete(m.clearedFields, ticket.FieldBranchName)
}

// SetPrURL sets the "pr_url" field.
func (m *TicketMutation) SetPrURL(s string) {
	m.pr_url = &s
}

// PrURL returns the value of the "pr_url" field in the mutation.
func (m *TicketMutation) PrURL() (r string, exists bool) {
	v := m.pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPrURL returns the old "pr_url" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldPrURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrURL: %w", err)
	}
	return oldValue.PrURL, nil
}

// ClearPrURL clears the value of the "pr_url" field.
func (m *TicketMutation) ClearPrURL() {
	m.pr_url = nil
	m.clearedFields[ticket.FieldPrURL] = struct{}{}
}

// PrURLCleared returns if the "pr_url" field was cleared in this mutation.
func (m *TicketMutation) PrURLCleared() bool {
	_, ok := m.clearedFields[ticket.FieldPrURL]
	return ok
}

// ResetPrURL resets all changes to the "pr_url" field.
func (m *TicketMutation) ResetPrURL() {
	m.pr_url = nil
	delete(m.clearedFields, ticket.FieldPrURL)
}

// SetLastError sets the "last_error" field.
func (m *TicketMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *TicketMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *TicketMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[ticket.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *TicketMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[ticket.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *TicketMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, ticket.FieldLastError)
}

// SetPriorFeedback sets the "prior_feedback" field.
func (m *TicketMutation) SetPriorFeedback(s []string) {
	m.prior_feedback = &s
	m.appendprior_feedback = nil
}

// PriorFeedback returns the value of the "prior_feedback" field in the mutation.
func (m *TicketMutation) PriorFeedback() (r []string, exists bool) {
	v := m.prior_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorFeedback returns the old "prior_feedback" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldPriorFeedback(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorFeedback: %w", err)
	}
	return oldValue.PriorFeedback, nil
}

// AppendPriorFeedback adds s to the "prior_feedback" field.
func (m *TicketMutation) AppendPriorFeedback(s []string) {
	m.appendprior_feedback = append(m.appendprior_feedback, s...)
}

// AppendedPriorFeedback returns the list of values that were appended to the "prior_feedback" field in this mutation.
func (m *TicketMutation) AppendedPriorFeedback() ([]string, bool) {
	if len(m.appendprior_feedback) == 0 {
		return nil, false
	}
	return m.appendprior_feedback, true
}

// ClearPriorFeedback clears the value of the "prior_feedback" field.
func (m *TicketMutation) ClearPriorFeedback() {
	m.prior_feedback = nil
	m.appendprior_feedback = nil
	m.clearedFields[ticket.FieldPriorFeedback] = struct{}{}
}

// PriorFeedbackCleared returns if the "prior_feedback" field was cleared in this mutation.
func (m *TicketMutation) PriorFeedbackCleared() bool {
	_, ok := m.clearedFields[ticket.FieldPriorFeedback]
	return ok
}

// ResetPriorFeedback resets all changes to the "prior_feedback" field.
func (m *TicketMutation) ResetPriorFeedback() {
	m.prior_feedback = nil
	m.appendprior_feedback = nil
	delete(m.clearedFields, ticket.FieldPriorFeedback)
}

// SetCriteriaStatus sets the "criteria_status" field.
func (m *TicketMutation) SetCriteriaStatus(value []map[string]interface{}) {
	m.criteria_status = &value
	m.appendcriteria_status = nil
}

// CriteriaStatus returns the value of the "criteria_status" field in the mutation.
func (m *TicketMutation) CriteriaStatus() (r []map[string]interface{}, exists bool) {
	v := m.criteria_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCriteriaStatus returns the old "criteria_status" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCriteriaStatus(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriteriaStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriteriaStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriteriaStatus: %w", err)
	}
	return oldValue.CriteriaStatus, nil
}

// AppendCriteriaStatus adds value to the "criteria_status" field.
func (m *TicketMutation) AppendCriteriaStatus(value []map[string]interface{}) {
	m.appendcriteria_status = append(m.appendcriteria_status, value...)
}

// AppendedCriteriaStatus returns the list of values that were appended to the "criteria_status" field in this mutation.
func (m *TicketMutation) AppendedCriteriaStatus() ([]map[string]interface{}, bool) {
	if len(m.appendcriteria_status) == 0 {
		return nil, false
	}
	return m.appendcriteria_status, true
}

// ClearCriteriaStatus clears the value of the "criteria_status" field.
func (m *TicketMutation) ClearCriteriaStatus() {
	m.criteria_status = nil
	m.appendcriteria_status = nil
	m.clearedFields[ticket.FieldCriteriaStatus] = struct{}{}
}

// CriteriaStatusCleared returns if the "criteria_status" field was cleared in this mutation.
func (m *TicketMutation) CriteriaStatusCleared() bool {
	_, ok := m.clearedFields[ticket.FieldCriteriaStatus]
	return ok
}

// ResetCriteriaStatus resets all changes to the "criteria_status" field.
func (m *TicketMutation) ResetCriteriaStatus() {
	m.criteria_status = nil
	m.appendcriteria_status = nil
	delete(m.clearedFields, ticket.FieldCriteriaStatus)
}

// SetOutputs sets the "outputs" field.
func (m *TicketMutation) SetOutputs(value map[string]interface{}) {
	m.outputs = &value
}

// Outputs returns the value of the "outputs" field in the mutation.
func (m *TicketMutation) Outputs() (r map[string]interface{}, exists bool) {
	v := m.outputs
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputs returns the old "outputs" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldOutputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputs: %w", err)
	}
	return oldValue.Outputs, nil
}

// ClearOutputs clears the value of the "outputs" field.
func (m *TicketMutation) ClearOutputs() {
	m.outputs = nil
	m.clearedFields[ticket.FieldOutputs] = struct{}{}
}

// OutputsCleared returns if the "outputs" field was cleared in this mutation.
func (m *TicketMutation) OutputsCleared() bool {
	_, ok := m.clearedFields[ticket.FieldOutputs]
	return ok
}

// ResetOutputs resets all changes to the "outputs" field.
func (m *TicketMutation) ResetOutputs() {
	m.outputs = nil
	delete(m.clearedFields, ticket.FieldOutputs)
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TicketMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TicketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TicketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TicketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TicketMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TicketMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TicketMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[ticket.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TicketMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[ticket.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TicketMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, ticket.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TicketMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TicketMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Ticket entity.
// If the Ticket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TicketMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[ticket.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TicketMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[ticket.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TicketMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, ticket.FieldCompletedAt)
}

// ClearSession clears the "session" edge to the Session entity.
func (m *TicketMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[ticket.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *TicketMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *TicketMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *TicketMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddDependencyIDs adds the "dependencies" edge to the Ticket entity by ids.
func (m *TicketMutation) AddDependencyIDs(ids ...string) {
	if m.dependencies == nil {
		m.dependencies = make(map[string]struct{})
	}
	for i := range ids {
		m.dependencies[ids[i]] = struct{}{}
	}
}

// ClearDependencies clears the "dependencies" edge to the Ticket entity.
func (m *TicketMutation) ClearDependencies() {
	m.cleareddependencies = true
}

// DependenciesCleared reports if the "dependencies" edge to the Ticket entity was cleared.
func (m *TicketMutation) DependenciesCleared() bool {
	return m.cleareddependencies
}

// RemoveDependencyIDs removes the "dependencies" edge to the Ticket entity by IDs.
func (m *TicketMutation) RemoveDependencyIDs(ids ...string) {
	if m.removeddependencies == nil {
		m.removeddependencies = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.dependencies, ids[i])
		m.removeddependencies[ids[i]] = struct{}{}
	}
}

// RemovedDependencies returns the removed IDs of the "dependencies" edge to the Ticket entity.
func (m *TicketMutation) RemovedDependenciesIDs() (ids []string) {
	for id := range m.removeddependencies {
		ids = append(ids, id)
	}
	return
}

// DependenciesIDs returns the "dependencies" edge IDs in the mutation.
func (m *TicketMutation) DependenciesIDs() (ids []string) {
	for id := range m.dependencies {
		ids = append(ids, id)
	}
	return
}

// ResetDependencies resets all changes to the "dependencies" edge.
func (m *TicketMutation) ResetDependencies() {
	m.dependencies = nil
	m.cleareddependencies = false
	m.removeddependencies = nil
}

// AddDependentIDs adds the "dependents" edge to the Ticket entity by ids.
func (m *TicketMutation) AddDependentIDs(ids ...string) {
	if m.dependents == nil {
		m.dependents = make(map[string]struct{})
	}
	for i := range ids {
		m.dependents[ids[i]] = struct{}{}
	}
}

// ClearDependents clears the "dependents" edge to the Ticket entity.
func (m *TicketMutation) ClearDependents() {
	m.cleareddependents = true
}

// DependentsCleared reports if the "dependents" edge to the Ticket entity was cleared.
func (m *TicketMutation) DependentsCleared() bool {
	return m.cleareddependents
}

// RemoveDependentIDs removes the "dependents" edge to the Ticket entity by IDs.
func (m *TicketMutation) RemoveDependentIDs(ids ...string) {
	if m.removeddependents == nil {
		m.removeddependents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.dependents, ids[i])
		m.removeddependents[ids[i]] = struct{}{}
	}
}

// RemovedDependents returns the removed IDs of the "dependents" edge to the Ticket entity.
func (m *TicketMutation) RemovedDependentsIDs() (ids []string) {
	for id := range m.removeddependents {
		ids = append(ids, id)
	}
	return
}

// DependentsIDs returns the "dependents" edge IDs in the mutation.
func (m *TicketMutation) DependentsIDs() (ids []string) {
	for id := range m.dependents {
		ids = append(ids, id)
	}
	return
}

// ResetDependents resets all changes to the "dependents" edge.
func (m *TicketMutation) ResetDependents() {
	m.dependents = nil
	m.cleareddependents = false
	m.removeddependents = nil
}

// Where appends a list predicates to the TicketMutation builder.
func (m *TicketMutation) Where(ps ...predicate.Ticket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Ticket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Ticket).
func (m *TicketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketMutation) Fields() []string {
	fields := make([]string, 0, 33)
	if m.session != nil {
		fields = append(fields, ticket.FieldSessionID)
	}
	if m.project_id != nil {
		fields = append(fields, ticket.FieldProjectID)
	}
	if m.tenant_id != nil {
		fields = append(fields, ticket.FieldTenantID)
	}
	if m.kind != nil {
		fields = append(fields, ticket.FieldKind)
	}
	if m.parent_id != nil {
		fields = append(fields, ticket.FieldParentID)
	}
	if m.title != nil {
		fields = append(fields, ticket.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, ticket.FieldDescription)
	}
	if m.feature_id != nil {
		fields = append(fields, ticket.FieldFeatureID)
	}
	if m.acceptance_criteria != nil {
		fields = append(fields, ticket.FieldAcceptanceCriteria)
	}
	if m.state != nil {
		fields = append(fields, ticket.FieldState)
	}
	if m.priority != nil {
		fields = append(fields, ticket.FieldPriority)
	}
	if m.blocked_by_count != nil {
		fields = append(fields, ticket.FieldBlockedByCount)
	}
	if m.attempt != nil {
		fields = append(fields, ticket.FieldAttempt)
	}
	if m.max_attempts != nil {
		fields = append(fields, ticket.FieldMaxAttempts)
	}
	if m.rejection_count != nil {
		fields = append(fields, ticket.FieldRejectionCount)
	}
	if m.verification_status != nil {
		fields = append(fields, ticket.FieldVerificationStatus)
	}
	if m.assignee_kind != nil {
		fields = append(fields, ticket.FieldAssigneeKind)
	}
	if m.assignee_id != nil {
		fields = append(fields, ticket.FieldAssigneeID)
	}
	if m.vm_id != nil {
		fields = append(fields, ticket.FieldVMID)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, ticket.FieldLeaseExpiresAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, ticket.FieldLastHeartbeatAt)
	}
	if m.not_before != nil {
		fields = append(fields, ticket.FieldNotBefore)
	}
	if m.cancel_requested != nil {
		fields = append(fields, ticket.FieldCancelRequested)
	}
	if m.branch_name != nil {
		fields = append(fields, ticket.FieldBranchName)
	}
	if m.pr_url != nil {
		fields = append(fields, ticket.FieldPrURL)
	}
	if m.last_error != nil {
		fields = append(fields, ticket.FieldLastError)
	}
	if m.prior_feedback != nil {
		fields = append(fields, ticket.FieldPriorFeedback)
	}
	if m.criteria_status != nil {
		fields = append(fields, ticket.FieldCriteriaStatus)
	}
	if m.outputs != nil {
		fields = append(fields, ticket.FieldOutputs)
	}
	if m.created_at != nil {
		fields = append(fields, ticket.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ticket.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, ticket.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, ticket.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticket.FieldSessionID:
		return m.SessionID()
	case ticket.FieldProjectID:
		return m.ProjectID()
	case ticket.FieldTenantID:
		return m.TenantID()
	case ticket.FieldKind:
		return m.Kind()
	case ticket.FieldParentID:
		return m.ParentID()
	case ticket.FieldTitle:
		return m.Title()
	case ticket.FieldDescription:
		return m.Description()
	case ticket.FieldFeatureID:
		return m.FeatureID()
	case ticket.FieldAcceptanceCriteria:
		return m.AcceptanceCriteria()
	case ticket.FieldState:
		return m.State()
	case ticket.FieldPriority:
		return m.Priority()
	case ticket.FieldBlockedByCount:
		return m.BlockedByCount()
	case ticket.FieldAttempt:
		return m.Attempt()
	case ticket.FieldMaxAttempts:
		return m.MaxAttempts()
	case ticket.FieldRejectionCount:
		return m.RejectionCount()
	case ticket.FieldVerificationStatus:
		return m.VerificationStatus()
	case ticket.FieldAssigneeKind:
		return m.AssigneeKind()
	case ticket.FieldAssigneeID:
		return m.AssigneeID()
	case ticket.FieldVMID:
		return m.VMID()
	case ticket.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case ticket.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case ticket.FieldNotBefore:
		return m.NotBefore()
	case ticket.FieldCancelRequested:
		return m.CancelRequested()
	case ticket.FieldBranchName:
		return m.BranchName()
	case ticket.FieldPrURL:
		return m.PrURL()
	case ticket.FieldLastError:
		return m.LastError()
	case ticket.FieldPriorFeedback:
		return m.PriorFeedback()
	case ticket.FieldCriteriaStatus:
		return m.CriteriaStatus()
	case ticket.FieldOutputs:
		return m.Outputs()
	case ticket.FieldCreatedAt:
		return m.CreatedAt()
	case ticket.FieldUpdatedAt:
		return m.UpdatedAt()
	case ticket.FieldStartedAt:
		return m.StartedAt()
	case ticket.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticket.FieldSessionID:
		return m.OldSessionID(ctx)
	case ticket.FieldProjectID:
		return m.OldProjectID(ctx)
	case ticket.FieldTenantID:
		return m.OldTenantID(ctx)
	case ticket.FieldKind:
		return m.OldKind(ctx)
	case ticket.FieldParentID:
		return m.OldParentID(ctx)
	case ticket.FieldTitle:
		return m.OldTitle(ctx)
	case ticket.FieldDescription:
		return m.OldDescription(ctx)
	case ticket.FieldFeatureID:
		return m.OldFeatureID(ctx)
	case ticket.FieldAcceptanceCriteria:
		return m.OldAcceptanceCriteria(ctx)
	case ticket.FieldState:
		return m.OldState(ctx)
	case ticket.FieldPriority:
		return m.OldPriority(ctx)
	case ticket.FieldBlockedByCount:
		return m.OldBlockedByCount(ctx)
	case ticket.FieldAttempt:
		return m.OldAttempt(ctx)
	case ticket.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case ticket.FieldRejectionCount:
		return m.OldRejectionCount(ctx)
	case ticket.FieldVerificationStatus:
		return m.OldVerificationStatus(ctx)
	case ticket.FieldAssigneeKind:
		return m.OldAssigneeKind(ctx)
	case ticket.FieldAssigneeID:
		return m.OldAssigneeID(ctx)
	case ticket.FieldVMID:
		return m.OldVMID(ctx)
	case ticket.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case ticket.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case ticket.FieldNotBefore:
		return m.OldNotBefore(ctx)
	case ticket.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case ticket.FieldBranchName:
		return m.OldBranchName(ctx)
	case ticket.FieldPrURL:
		return m.OldPrURL(ctx)
	case ticket.FieldLastError:
		return m.OldLastError(ctx)
	case ticket.FieldPriorFeedback:
		return m.OldPriorFeedback(ctx)
	case ticket.FieldCriteriaStatus:
		return m.OldCriteriaStatus(ctx)
	case ticket.FieldOutputs:
		return m.OldOutputs(ctx)
	case ticket.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ticket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case ticket.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case ticket.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Ticket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticket.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case ticket.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case ticket.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case ticket.FieldKind:
		v, ok := value.(ticket.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case ticket.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case ticket.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case ticket.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case ticket.FieldFeatureID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureID(v)
		return nil
	case ticket.FieldAcceptanceCriteria:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcceptanceCriteria(v)
		return nil
	case ticket.FieldState:
		v, ok := value.(ticket.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case ticket.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case ticket.FieldBlockedByCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockedByCount(v)
		return nil
	case ticket.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case ticket.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case ticket.FieldRejectionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionCount(v)
		return nil
	case ticket.FieldVerificationStatus:
		v, ok := value.(ticket.VerificationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationStatus(v)
		return nil
	case ticket.FieldAssigneeKind:
		v, ok := value.(ticket.AssigneeKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeKind(v)
		return nil
	case ticket.FieldAssigneeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssigneeID(v)
		return nil
	case ticket.FieldVMID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVMID(v)
		return nil
	case ticket.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case ticket.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case ticket.FieldNotBefore:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotBefore(v)
		return nil
	case ticket.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case ticket.FieldBranchName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchName(v)
		return nil
	case ticket.FieldPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrURL(v)
		return nil
	case ticket.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case ticket.FieldPriorFeedback:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorFeedback(v)
		return nil
	case ticket.FieldCriteriaStatus:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriteriaStatus(v)
		return nil
	case ticket.FieldOutputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputs(v)
		return nil
	case ticket.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ticket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case ticket.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case ticket.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, ticket.FieldPriority)
	}
	if m.addblocked_by_count != nil {
		fields = append(fields, ticket.FieldBlockedByCount)
	}
	if m.addattempt != nil {
		fields = append(fields, ticket.FieldAttempt)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, ticket.FieldMaxAttempts)
	}
	if m.addrejection_count != nil {
		fields = append(fields, ticket.FieldRejectionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ticket.FieldPriority:
		return m.AddedPriority()
	case ticket.FieldBlockedByCount:
		return m.AddedBlockedByCount()
	case ticket.FieldAttempt:
		return m.AddedAttempt()
	case ticket.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case ticket.FieldRejectionCount:
		return m.AddedRejectionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ticket.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case ticket.FieldBlockedByCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlockedByCount(v)
		return nil
	case ticket.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case ticket.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case ticket.FieldRejectionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRejectionCount(v)
		return nil
	}
	return fmt.Errorf("unknown Ticket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ticket.FieldParentID) {
		fields = append(fields, ticket.FieldParentID)
	}
	if m.FieldCleared(ticket.FieldDescription) {
		fields = append(fields, ticket.FieldDescription)
	}
	if m.FieldCleared(ticket.FieldFeatureID) {
		fields = append(fields, ticket.FieldFeatureID)
	}
	if m.FieldCleared(ticket.FieldAcceptanceCriteria) {
		fields = append(fields, ticket.FieldAcceptanceCriteria)
	}
	if m.FieldCleared(ticket.FieldAssigneeID) {
		fields = append(fields, ticket.FieldAssigneeID)
	}
	if m.FieldCleared(ticket.FieldVMID) {
		fields = append(fields, ticket.FieldVMID)
	}
	if m.FieldCleared(ticket.FieldLeaseExpiresAt) {
		fields = append(fields, ticket.FieldLeaseExpiresAt)
	}
	if m.FieldCleared(ticket.FieldLastHeartbeatAt) {
		fields = append(fields, ticket.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(ticket.FieldNotBefore) {
		fields = append(fields, ticket.FieldNotBefore)
	}
	if m.FieldCleared(ticket.FieldBranchName) {
		fields = append(fields, ticket.FieldBranchName)
	}
	if m.FieldCleared(ticket.FieldPrURL) {
		fields = append(fields, ticket.FieldPrURL)
	}
	if m.FieldCleared(ticket.FieldLastError) {
		fields = append(fields, ticket.FieldLastError)
	}
	if m.FieldCleared(ticket.FieldPriorFeedback) {
		fields = append(fields, ticket.FieldPriorFeedback)
	}
	if m.FieldCleared(ticket.FieldCriteriaStatus) {
		fields = append(fields, ticket.FieldCriteriaStatus)
	}
	if m.FieldCleared(ticket.FieldOutputs) {
		fields = append(fields, ticket.FieldOutputs)
	}
	if m.FieldCleared(ticket.FieldStartedAt) {
		fields = append(fields, ticket.FieldStartedAt)
	}
	if m.FieldCleared(ticket.FieldCompletedAt) {
		fields = append(fields, ticket.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketMutation) ClearField(name string) error {
	switch name {
	case ticket.FieldParentID:
		m.ClearParentID()
		return nil
	case ticket.FieldDescription:
		m.ClearDescription()
		return nil
	case ticket.FieldFeatureID:
		m.ClearFeatureID()
		return nil
	case ticket.FieldAcceptanceCriteria:
		m.ClearAcceptanceCriteria()
		return nil
	case ticket.FieldAssigneeID:
		m.ClearAssigneeID()
		return nil
	case ticket.FieldVMID:
		m.ClearVMID()
		return nil
	case ticket.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	case ticket.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case ticket.FieldNotBefore:
		m.ClearNotBefore()
		return nil
	case ticket.FieldBranchName:
		m.ClearBranchName()
		return nil
	case ticket.FieldPrURL:
		m.ClearPrURL()
		return nil
	case ticket.FieldLastError:
		m.ClearLastError()
		return nil
	case ticket.FieldPriorFeedback:
		m.ClearPriorFeedback()
		return nil
	case ticket.FieldCriteriaStatus:
		m.ClearCriteriaStatus()
		return nil
	case ticket.FieldOutputs:
		m.ClearOutputs()
		return nil
	case ticket.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case ticket.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Ticket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketMutation) ResetField(name string) error {
	switch name {
	case ticket.FieldSessionID:
		m.ResetSessionID()
		return nil
	case ticket.FieldProjectID:
		m.ResetProjectID()
		return nil
	case ticket.FieldTenantID:
		m.ResetTenantID()
		return nil
	case ticket.FieldKind:
		m.ResetKind()
		return nil
	case ticket.FieldParentID:
		m.ResetParentID()
		return nil
	case ticket.FieldTitle:
		m.ResetTitle()
		return nil
	case ticket.FieldDescription:
		m.ResetDescription()
		return nil
	case ticket.FieldFeatureID:
		m.ResetFeatureID()
		return nil
	case ticket.FieldAcceptanceCriteria:
		m.ResetAcceptanceCriteria()
		return nil
	case ticket.FieldState:
		m.ResetState()
		return nil
	case ticket.FieldPriority:
		m.ResetPriority()
		return nil
	case ticket.FieldBlockedByCount:
		m.ResetBlockedByCount()
		return nil
	case ticket.FieldAttempt:
		m.ResetAttempt()
		return nil
	case ticket.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case ticket.FieldRejectionCount:
		m.ResetRejectionCount()
		return nil
	case ticket.FieldVerificationStatus:
		m.ResetVerificationStatus()
		return nil
	case ticket.FieldAssigneeKind:
		m.ResetAssigneeKind()
		return nil
	case ticket.FieldAssigneeID:
		m.ResetAssigneeID()
		return nil
	case ticket.FieldVMID:
		m.ResetVMID()
		return nil
	case ticket.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case ticket.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case ticket.FieldNotBefore:
		m.ResetNotBefore()
		return nil
	case ticket.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case ticket.FieldBranchName:
		m.ResetBranchName()
		return nil
	case ticket.FieldPrURL:
		m.ResetPrURL()
		return nil
	case ticket.FieldLastError:
		m.ResetLastError()
		return nil
	case ticket.FieldPriorFeedback:
		m.ResetPriorFeedback()
		return nil
	case ticket.FieldCriteriaStatus:
		m.ResetCriteriaStatus()
		return nil
	case ticket.FieldOutputs:
		m.ResetOutputs()
		return nil
	case ticket.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ticket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case ticket.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case ticket.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Ticket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.session != nil {
		edges = append(edges, ticket.EdgeSession)
	}
	if m.dependencies != nil {
		edges = append(edges, ticket.EdgeDependencies)
	}
	if m.dependents != nil {
		edges = append(edges, ticket.EdgeDependents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case ticket.EdgeDependencies:
		ids := make([]ent.Value, 0, len(m.dependencies))
		for id := range m.dependencies {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeDependents:
		ids := make([]ent.Value, 0, len(m.dependents))
		for id := range m.dependents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddependencies != nil {
		edges = append(edges, ticket.EdgeDependencies)
	}
	if m.removeddependents != nil {
		edges = append(edges, ticket.EdgeDependents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case ticket.EdgeDependencies:
		ids := make([]ent.Value, 0, len(m.removeddependencies))
		for id := range m.removeddependencies {
			ids = append(ids, id)
		}
		return ids
	case ticket.EdgeDependents:
		ids := make([]ent.Value, 0, len(m.removeddependents))
		for id := range m.removeddependents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsession {
		edges = append(edges, ticket.EdgeSession)
	}
	if m.cleareddependencies {
		edges = append(edges, ticket.EdgeDependencies)
	}
	if m.cleareddependents {
		edges = append(edges, ticket.EdgeDependents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketMutation) EdgeCleared(name string) bool {
	switch name {
	case ticket.EdgeSession:
		return m.clearedsession
	case ticket.EdgeDependencies:
		return m.cleareddependencies
	case ticket.EdgeDependents:
		return m.cleareddependents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketMutation) ClearEdge(name string) error {
	switch name {
	case ticket.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Ticket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketMutation) ResetEdge(name string) error {
	switch name {
	case ticket.EdgeSession:
		m.ResetSession()
		return nil
	case ticket.EdgeDependencies:
		m.ResetDependencies()
		return nil
	case ticket.EdgeDependents:
		m.ResetDependents()
		return nil
	}
	return fmt.Errorf("unknown Ticket edge %s", name)
}
