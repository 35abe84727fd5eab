package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/ent/approval"
	"github.com/swarmstack/swarm/ent/session"
	"github.com/swarmstack/swarm/pkg/fault"
	testdb "github.com/swarmstack/swarm/test/database"
)

func TestApprovalService_Record(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewApprovalService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateReviewing)

	t.Run("validates input", func(t *testing.T) {
		_, err := service.Record(ctx, ApprovalRecord{Kind: ApprovalSpec, SpecVersion: 1})
		assert.True(t, IsValidationError(err))

		_, err = service.Record(ctx, ApprovalRecord{SessionID: sess.ID, Kind: "rubber_stamp"})
		assert.True(t, IsValidationError(err))

		_, err = service.Record(ctx, ApprovalRecord{
			SessionID: sess.ID, Kind: ApprovalRevision, SpecVersion: 1,
		})
		assert.True(t, IsValidationError(err), "revision requests must carry feedback")
	})

	t.Run("records the audit trail", func(t *testing.T) {
		row, err := service.Record(ctx, ApprovalRecord{
			SessionID:   sess.ID,
			Kind:        ApprovalSpec,
			SpecVersion: 1,
			ApprovedBy:  "user-7",
			IPAddress:   "203.0.113.9",
			UserAgent:   "swarm-ui/1.4",
			Data:        map[string]interface{}{"spec_title": "URL shortener"},
		})
		require.NoError(t, err)
		assert.Equal(t, approval.KindSpecApproval, row.Kind)
		assert.Equal(t, 1, row.SpecVersion)
		assert.Equal(t, "user-7", row.ApprovedBy)
		assert.Equal(t, "203.0.113.9", row.IPAddress)
		assert.Equal(t, "swarm-ui/1.4", row.UserAgent)
		assert.Equal(t, "URL shortener", row.Data["spec_title"])
	})

	t.Run("second approval of the same version loses", func(t *testing.T) {
		_, err := service.Record(ctx, ApprovalRecord{
			SessionID:   sess.ID,
			Kind:        ApprovalSpec,
			SpecVersion: 1,
			ApprovedBy:  "user-8",
		})
		assert.Equal(t, fault.Conflict, fault.ClassOf(err))
		assert.True(t, errors.Is(err, ErrAlreadyExists))
	})

	t.Run("revisions and later versions are not blocked", func(t *testing.T) {
		_, err := service.Record(ctx, ApprovalRecord{
			SessionID:   sess.ID,
			Kind:        ApprovalRevision,
			SpecVersion: 1,
			Feedback:    "split the analytics feature out",
		})
		require.NoError(t, err, "the unique gate applies to spec approvals only")

		_, err = service.Record(ctx, ApprovalRecord{
			SessionID:   sess.ID,
			Kind:        ApprovalSpec,
			SpecVersion: 2,
			ApprovedBy:  "user-7",
		})
		require.NoError(t, err)
	})
}

func TestApprovalService_Lookups(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewApprovalService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, client.Client, session.StateReviewing)

	_, err := service.Record(ctx, ApprovalRecord{
		SessionID: sess.ID, Kind: ApprovalRevision, SpecVersion: 1,
		Feedback: "needs auth requirements",
	})
	require.NoError(t, err)
	_, err = service.Record(ctx, ApprovalRecord{
		SessionID: sess.ID, Kind: ApprovalSpec, SpecVersion: 2, ApprovedBy: "user-7",
	})
	require.NoError(t, err)
	_, err = service.Record(ctx, ApprovalRecord{
		SessionID: sess.ID, Kind: ApprovalBuild, SpecVersion: 2, ApprovedBy: "user-7",
	})
	require.NoError(t, err)

	t.Run("history oldest first", func(t *testing.T) {
		rows, err := service.ListApprovals(ctx, sess.ID)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, approval.KindRevisionRequest, rows[0].Kind)
		assert.Equal(t, approval.KindSpecApproval, rows[1].Kind)
		assert.Equal(t, approval.KindBuildStart, rows[2].Kind)
	})

	t.Run("spec approval by version", func(t *testing.T) {
		row, err := service.SpecApproval(ctx, sess.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, "user-7", row.ApprovedBy)

		_, err = service.SpecApproval(ctx, sess.ID, 1)
		assert.Equal(t, fault.NotFound, fault.ClassOf(err), "the revision row does not count")
	})
}
