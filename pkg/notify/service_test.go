package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/retry"
	"github.com/swarmstack/swarm/pkg/services"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("NotifyApprovalRequired is no-op", func(_ *testing.T) {
		// Should not panic
		s.NotifyApprovalRequired(ApprovalRequiredInput{SessionID: "sess-1"})
	})

	t.Run("NotifySessionFinished is no-op", func(_ *testing.T) {
		s.NotifySessionFinished(SessionFinishedInput{SessionID: "sess-1", State: "completed"})
	})

	t.Run("setters and Flush are no-ops", func(_ *testing.T) {
		s.SetMasker(nil)
		s.SetWarnings(nil)
		s.Flush(context.Background())
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when disabled", func(t *testing.T) {
		svc := NewService(&config.NotifyConfig{Enabled: false}, "")
		assert.Nil(t, svc)
	})

	t.Run("returns nil when config missing", func(t *testing.T) {
		assert.Nil(t, NewService(nil, ""))
	})

	t.Run("returns nil when URL env unset", func(t *testing.T) {
		t.Setenv("SWARM_WEBHOOK_URL_TEST", "")
		svc := NewService(&config.NotifyConfig{
			Enabled:       true,
			WebhookURLEnv: "SWARM_WEBHOOK_URL_TEST",
		}, "")
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		t.Setenv("SWARM_WEBHOOK_URL_TEST", "https://hooks.example.com/T000/B000")
		svc := NewService(&config.NotifyConfig{
			Enabled:       true,
			WebhookURLEnv: "SWARM_WEBHOOK_URL_TEST",
		}, "https://swarm.example.com")
		assert.NotNil(t, svc)
	})
}

// recordingHandler captures webhook deliveries and can be told to fail.
type recordingHandler struct {
	mu       sync.Mutex
	received []Message
	status   int
}

func (h *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var msg Message
	_ = json.NewDecoder(r.Body).Decode(&msg)
	h.received = append(h.received, msg)
	status := h.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
}

func (h *recordingHandler) messages() []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Message(nil), h.received...)
}

func (h *recordingHandler) setStatus(code int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = code
}

func newTestService(t *testing.T) (*Service, *recordingHandler) {
	t.Helper()
	handler := &recordingHandler{}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewServiceWithClient(NewClient(srv.URL), "https://swarm.example.com")
	svc.retryPolicy = retry.Policy{MaxAttempts: 2, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, MaxElapsedTime: time.Second}
	return svc, handler
}

func TestService_NotifyApprovalRequired(t *testing.T) {
	svc, handler := newTestService(t)

	svc.NotifyApprovalRequired(ApprovalRequiredInput{
		SessionID:   "sess-1",
		ProjectName: "storefront",
		SpecTitle:   "Checkout v2",
		SpecVersion: 3,
	})
	svc.Flush(context.Background())

	msgs := handler.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, EventApprovalRequired, msgs[0].Event)
	assert.Equal(t, "sess-1", msgs[0].SessionID)
	assert.Equal(t, 3, msgs[0].SpecVersion)
	assert.Contains(t, msgs[0].Summary, "Checkout v2")
	assert.Equal(t, "https://swarm.example.com/sessions/sess-1", msgs[0].URL)
}

func TestService_NotifySessionFinished(t *testing.T) {
	svc, handler := newTestService(t)

	svc.NotifySessionFinished(SessionFinishedInput{
		SessionID: "sess-2",
		State:     "failed",
		Error:     "2 tickets failed",
		Tickets:   &TicketTally{Total: 5, Completed: 3, Failed: 2},
	})
	svc.Flush(context.Background())

	msgs := handler.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, EventSessionFinished, msgs[0].Event)
	assert.Equal(t, "failed", msgs[0].State)
	assert.Equal(t, "Build failed", msgs[0].Summary)
	require.NotNil(t, msgs[0].Tickets)
	assert.Equal(t, 2, msgs[0].Tickets.Failed)
}

type staticMasker struct{}

func (staticMasker) Mask(string) string { return "scrubbed" }

func TestService_MasksFreeText(t *testing.T) {
	svc, handler := newTestService(t)
	svc.SetMasker(staticMasker{})

	svc.NotifySessionFinished(SessionFinishedInput{
		SessionID: "sess-3",
		State:     "failed",
		Error:     "auth failed with ghp_secret",
	})
	svc.Flush(context.Background())

	msgs := handler.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "scrubbed", msgs[0].Error)
}

func TestService_DeliveryFailureRaisesWarning(t *testing.T) {
	svc, handler := newTestService(t)
	handler.setStatus(http.StatusInternalServerError)

	warnings := services.NewSystemWarningsService()
	svc.SetWarnings(warnings)

	svc.NotifySessionFinished(SessionFinishedInput{SessionID: "sess-4", State: "completed"})
	svc.Flush(context.Background())

	ws := warnings.GetWarnings()
	require.Len(t, ws, 1)
	assert.Equal(t, services.WarningCategoryWebhook, ws[0].Category)

	// Recovery clears the warning.
	handler.setStatus(http.StatusOK)
	svc.NotifySessionFinished(SessionFinishedInput{SessionID: "sess-4", State: "completed"})
	svc.Flush(context.Background())
	assert.Empty(t, warnings.GetWarnings())
}
