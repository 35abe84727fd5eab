package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/approval"
	"github.com/swarmstack/swarm/pkg/fault"
)

// Approval kinds.
const (
	ApprovalSpec     = "spec_approval"
	ApprovalRevision = "revision_request"
	ApprovalBuild    = "build_start"
)

// ApprovalService records the audit trail of human decisions: who approved
// which spec version, from where, and what they asked to change.
type ApprovalService struct {
	client *ent.Client
}

// NewApprovalService creates a new approval service.
func NewApprovalService(client *ent.Client) *ApprovalService {
	return &ApprovalService{client: client}
}

// ApprovalRecord is the input for one audit row.
type ApprovalRecord struct {
	SessionID   string
	Kind        string
	SpecVersion int
	ApprovedBy  string
	IPAddress   string
	UserAgent   string
	Feedback    string
	Data        map[string]interface{}
}

// Record appends one decision row. For spec approvals the partial unique
// index on (session_id, spec_version) rejects a second approval of the
// same draft, which is how concurrent reviewers get first-writer-wins.
func (s *ApprovalService) Record(ctx context.Context, rec ApprovalRecord) (*ent.Approval, error) {
	if rec.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	switch rec.Kind {
	case ApprovalSpec, ApprovalRevision, ApprovalBuild:
	default:
		return nil, NewValidationError("kind", "unknown approval kind")
	}
	if rec.Kind == ApprovalRevision && rec.Feedback == "" {
		return nil, NewValidationError("feedback", "revision requests must say what to change")
	}

	create := s.client.Approval.Create().
		SetID(uuid.NewString()).
		SetSessionID(rec.SessionID).
		SetKind(approval.Kind(rec.Kind)).
		SetSpecVersion(rec.SpecVersion)
	if rec.ApprovedBy != "" {
		create = create.SetApprovedBy(rec.ApprovedBy)
	}
	if rec.IPAddress != "" {
		create = create.SetIPAddress(rec.IPAddress)
	}
	if rec.UserAgent != "" {
		create = create.SetUserAgent(rec.UserAgent)
	}
	if rec.Feedback != "" {
		create = create.SetFeedback(rec.Feedback)
	}
	if rec.Data != nil {
		create = create.SetData(rec.Data)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fault.Wrap(fault.Conflict, "approval.record",
				"spec version already approved", ErrAlreadyExists)
		}
		return nil, classifyEnt("approval.record", err)
	}
	return row, nil
}

// ListApprovals returns a session's decision history, oldest first.
func (s *ApprovalService) ListApprovals(ctx context.Context, sessionID string) ([]*ent.Approval, error) {
	rows, err := s.client.Approval.Query().
		Where(approval.SessionIDEQ(sessionID)).
		Order(ent.Asc(approval.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, classifyEnt("approval.list", err)
	}
	return rows, nil
}

// SpecApproval returns the approval row for a specific spec version, or
// NotFound.
func (s *ApprovalService) SpecApproval(ctx context.Context, sessionID string, specVersion int) (*ent.Approval, error) {
	row, err := s.client.Approval.Query().
		Where(
			approval.SessionIDEQ(sessionID),
			approval.KindEQ(approval.KindSpecApproval),
			approval.SpecVersionEQ(specVersion),
		).
		Only(ctx)
	if err != nil {
		return nil, classifyEnt("approval.get", err)
	}
	return row, nil
}
