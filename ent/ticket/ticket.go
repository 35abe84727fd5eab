// Code generated by ent, DO NOT EDIT.

package ticket

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the ticket type in the database.
	Label = "ticket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "ticket_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldFeatureID holds the string denoting the feature_id field in the database.
	FieldFeatureID = "feature_id"
	// FieldAcceptanceCriteria holds the string denoting the acceptance_criteria field in the database.
	FieldAcceptanceCriteria = "acceptance_criteria"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldBlockedByCount holds the string denoting the blocked_by_count field in the database.
	FieldBlockedByCount = "blocked_by_count"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldMaxAttempts holds the string denoting the max_attempts field in the database.
	FieldMaxAttempts = "max_attempts"
	// FieldRejectionCount holds the string denoting the rejection_count field in the database.
	FieldRejectionCount = "rejection_count"
	// FieldVerificationStatus holds the string denoting the verification_status field in the database.
	FieldVerificationStatus = "verification_status"
	// FieldAssigneeKind holds the string denoting the assignee_kind field in the database.
	FieldAssigneeKind = "assignee_kind"
	// FieldAssigneeID holds the string denoting the assignee_id field in the database.
	FieldAssigneeID = "assignee_id"
	// FieldVMID holds the string denoting the vm_id field in the database.
	FieldVMID = "vm_id"
	// FieldLeaseExpiresAt holds the string denoting the lease_expires_at field in the database.
	FieldLeaseExpiresAt = "lease_expires_at"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldNotBefore holds the string denoting the not_before field in the database.
	FieldNotBefore = "not_before"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldBranchName holds the string denoting the branch_name field in the database.
	FieldBranchName = "branch_name"
	// FieldPrURL holds the string denoting the pr_url field in the database.
	FieldPrURL = "pr_url"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldPriorFeedback holds the string denoting the prior_feedback field in the database.
	FieldPriorFeedback = "prior_feedback"
	// FieldCriteriaStatus holds the string denoting the criteria_status field in the database.
	FieldCriteriaStatus = "criteria_status"
	// FieldOutputs holds the string denoting the outputs field in the database.
	FieldOutputs = "outputs"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeDependencies holds the string denoting the dependencies edge name in mutations.
	EdgeDependencies = "dependencies"
	// EdgeDependents holds the string denoting the dependents edge name in mutations.
	EdgeDependents = "dependents"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the ticket in the database.
	Table = "tickets"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "tickets"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// DependenciesTable is the table that holds the dependencies relation/edge. The primary key declared below.
	DependenciesTable = "ticket_dependencies"
	// DependentsTable is the table that holds the dependents relation/edge. The primary key declared below.
	DependentsTable = "ticket_dependencies"
)

// Columns holds all SQL columns for ticket fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldProjectID,
	FieldTenantID,
	FieldKind,
	FieldParentID,
	FieldTitle,
	FieldDescription,
	FieldFeatureID,
	FieldAcceptanceCriteria,
	FieldState,
	FieldPriority,
	FieldBlockedByCount,
	FieldAttempt,
	FieldMaxAttempts,
	FieldRejectionCount,
	FieldVerificationStatus,
	FieldAssigneeKind,
	FieldAssigneeID,
	FieldVMID,
	FieldLeaseExpiresAt,
	FieldLastHeartbeatAt,
	FieldNotBefore,
	FieldCancelRequested,
	FieldBranchName,
	FieldPrURL,
	FieldLastError,
	FieldPriorFeedback,
	FieldCriteriaStatus,
	FieldOutputs,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldStartedAt,
	FieldCompletedAt,
}

var (
	// DependenciesPrimaryKey and DependenciesColumn2 are the table columns denoting the
	// primary key for the dependencies relation (M2M).
	DependenciesPrimaryKey = []string{"ticket_id", "dependency_id"}
	// DependentsPrimaryKey and DependentsColumn2 are the table columns denoting the
	// primary key for the dependents relation (M2M).
	DependentsPrimaryKey = []string{"ticket_id", "dependency_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultBlockedByCount holds the default value on creation for the "blocked_by_count" field.
	DefaultBlockedByCount int
	// DefaultAttempt holds the default value on creation for the "attempt" field.
	DefaultAttempt int
	// DefaultMaxAttempts holds the default value on creation for the "max_attempts" field.
	DefaultMaxAttempts int
	// DefaultRejectionCount holds the default value on creation for the "rejection_count" field.
	DefaultRejectionCount int
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// KindFeature is the default value of the Kind enum.
const DefaultKind = KindFeature

// Kind values.
const (
	KindEpic         Kind = "epic"
	KindFeature      Kind = "feature"
	KindVerification Kind = "verification"
	KindPackaging    Kind = "packaging"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindEpic, KindFeature, KindVerification, KindPackaging:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for kind field: %q", k)
	}
}

// State defines the type for the "state" enum field.
type State string

// StateDraft is the default value of the State enum.
const DefaultState = StateDraft

// State values.
const (
	StateDraft      State = "draft"
	StateBlocked    State = "blocked"
	StateReady      State = "ready"
	StateClaimed    State = "claimed"
	StateInProgress State = "in_progress"
	StateReview     State = "review"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
	StateHold       State = "hold"
	StateCancelled  State = "cancelled"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateDraft, StateBlocked, StateReady, StateClaimed, StateInProgress, StateReview, StateCompleted, StateFailed, StateHold, StateCancelled:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for state field: %q", s)
	}
}

// VerificationStatus defines the type for the "verification_status" enum field.
type VerificationStatus string

// VerificationStatusPending is the default value of the VerificationStatus enum.
const DefaultVerificationStatus = VerificationStatusPending

// VerificationStatus values.
const (
	VerificationStatusPending VerificationStatus = "pending"
	VerificationStatusPassed  VerificationStatus = "passed"
	VerificationStatusFailed  VerificationStatus = "failed"
	VerificationStatusSkipped VerificationStatus = "skipped"
)

func (vs VerificationStatus) String() string {
	return string(vs)
}

// VerificationStatusValidator is a validator for the "verification_status" field enum values. It is called by the builders before save.
func VerificationStatusValidator(vs VerificationStatus) error {
	switch vs {
	case VerificationStatusPending, VerificationStatusPassed, VerificationStatusFailed, VerificationStatusSkipped:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for verification_status field: %q", vs)
	}
}

// AssigneeKind defines the type for the "assignee_kind" enum field.
type AssigneeKind string

// AssigneeKindAgent is the default value of the AssigneeKind enum.
const DefaultAssigneeKind = AssigneeKindAgent

// AssigneeKind values.
const (
	AssigneeKindAgent AssigneeKind = "agent"
	AssigneeKindHuman AssigneeKind = "human"
)

func (ak AssigneeKind) String() string {
	return string(ak)
}

// AssigneeKindValidator is a validator for the "assignee_kind" field enum values. It is called by the builders before save.
func AssigneeKindValidator(ak AssigneeKind) error {
	switch ak {
	case AssigneeKindAgent, AssigneeKindHuman:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for assignee_kind field: %q", ak)
	}
}

// OrderOption defines the ordering options for the Ticket queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByFeatureID orders the results by the feature_id field.
func ByFeatureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatureID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByBlockedByCount orders the results by the blocked_by_count field.
func ByBlockedByCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockedByCount, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByMaxAttempts orders the results by the max_attempts field.
func ByMaxAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAttempts, opts...).ToFunc()
}

// ByRejectionCount orders the results by the rejection_count field.
func ByRejectionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejectionCount, opts...).ToFunc()
}

// ByVerificationStatus orders the results by the verification_status field.
func ByVerificationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerificationStatus, opts...).ToFunc()
}

// ByAssigneeKind orders the results by the assignee_kind field.
func ByAssigneeKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssigneeKind, opts...).ToFunc()
}

// ByAssigneeID orders the results by the assignee_id field.
func ByAssigneeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssigneeID, opts...).ToFunc()
}

// ByVMID orders the results by the vm_id field.
func ByVMID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVMID, opts...).ToFunc()
}

// ByLeaseExpiresAt orders the results by the lease_expires_at field.
func ByLeaseExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseExpiresAt, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByNotBefore orders the results by the not_before field.
func ByNotBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotBefore, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByBranchName orders the results by the branch_name field.
func ByBranchName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchName, opts...).ToFunc()
}

// ByPrURL orders the results by the pr_url field.
func ByPrURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrURL, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByDependenciesCount orders the results by dependencies count.
func ByDependenciesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDependenciesStep(), opts...)
	}
}

// ByDependencies orders the results by dependencies terms.
func ByDependencies(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDependenciesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDependentsCount orders the results by dependents count.
func ByDependentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDependentsStep(), opts...)
	}
}

// ByDependents orders the results by dependents terms.
func ByDependents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDependentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newDependenciesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, DependenciesTable, DependenciesPrimaryKey...),
	)
}
func newDependentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, DependentsTable, DependentsPrimaryKey...),
	)
}
