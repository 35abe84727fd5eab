package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFinishedMessage_SummaryLabels(t *testing.T) {
	tests := []struct {
		state   string
		summary string
	}{
		{"completed", "Build completed"},
		{"failed", "Build failed"},
		{"cancelled", "Session cancelled"},
		{"weird", "Session weird"},
	}
	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			msg := buildFinishedMessage(SessionFinishedInput{SessionID: "s", State: tt.state}, "")
			assert.Equal(t, tt.summary, msg.Summary)
			assert.Empty(t, msg.URL, "no dashboard URL means no link")
		})
	}
}

func TestBuildApprovalMessage(t *testing.T) {
	msg := buildApprovalMessage(ApprovalRequiredInput{
		SessionID:   "sess-9",
		SpecTitle:   "Inventory sync",
		SpecVersion: 2,
	}, "https://swarm.example.com")

	assert.Equal(t, EventApprovalRequired, msg.Event)
	assert.Equal(t, "reviewing", msg.State)
	assert.Contains(t, msg.Summary, "v2")
	assert.Equal(t, "https://swarm.example.com/sessions/sess-9", msg.URL)
	assert.NotEmpty(t, msg.Timestamp)
}

func TestTruncateField(t *testing.T) {
	long := strings.Repeat("x", maxFieldLength+50)
	got := truncateField(long)
	assert.Len(t, got, maxFieldLength+len("... (truncated)"))
	assert.True(t, strings.HasSuffix(got, "... (truncated)"))

	short := "fits"
	assert.Equal(t, short, truncateField(short))
}
