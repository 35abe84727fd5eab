// Package notify delivers operational webhook notifications: the review
// gate (a spec waiting on a human) and terminal session transitions.
// The dashboard gets the same information over the event bus; the
// webhook exists for the operators who are not watching it.
package notify

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/fault"
	"github.com/swarmstack/swarm/pkg/retry"
	"github.com/swarmstack/swarm/pkg/services"
)

// Webhook event names.
const (
	EventApprovalRequired = "approval.required"
	EventSessionFinished  = "session.finished"
)

// deliverTimeout bounds one webhook attempt.
const deliverTimeout = 10 * time.Second

// defaultDeliveryRetry bounds the per-notification delivery budget.
// Notifications are advisory; a webhook that stays down costs a warning,
// not a stuck session.
var defaultDeliveryRetry = retry.Policy{
	MaxAttempts:     3,
	InitialInterval: time.Second,
	MaxInterval:     10 * time.Second,
	MaxElapsedTime:  45 * time.Second,
}

// TextMasker scrubs credential material from webhook text fields.
// Implemented by masking.Service.
type TextMasker interface {
	Mask(text string) string
}

// ApprovalRequiredInput carries the review-gate notification fields.
type ApprovalRequiredInput struct {
	SessionID   string
	ProjectName string
	SpecTitle   string
	SpecVersion int
}

// SessionFinishedInput carries a terminal transition notification.
type SessionFinishedInput struct {
	SessionID   string
	ProjectName string
	State       string // completed, failed, cancelled
	Error       string
	Tickets     *TicketTally
}

// Service handles webhook notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	masker       TextMasker
	warnings     *services.SystemWarningsService
	retryPolicy  retry.Policy
	logger       *slog.Logger

	wg sync.WaitGroup
}

// NewService creates the notifier from resolved configuration. Returns
// nil when notifications are disabled or the URL env is unset; callers
// hold the nil and every notification becomes a no-op.
func NewService(cfg *config.NotifyConfig, dashboardURL string) *Service {
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	endpoint := os.Getenv(cfg.WebhookURLEnv)
	if endpoint == "" {
		slog.Warn("Webhook notifications enabled but the URL env is unset",
			"env", cfg.WebhookURLEnv)
		return nil
	}
	return &Service{
		client:       NewClient(endpoint),
		dashboardURL: dashboardURL,
		retryPolicy:  defaultDeliveryRetry,
		logger:       slog.Default().With("component", "notify-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built client.
// Useful for testing against a local HTTP server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		retryPolicy:  defaultDeliveryRetry,
		logger:       slog.Default().With("component", "notify-service"),
	}
}

// SetMasker installs the masker applied to free-text fields.
func (s *Service) SetMasker(m TextMasker) {
	if s == nil {
		return
	}
	s.masker = m
}

// SetWarnings installs the sink for delivery-failure warnings.
func (s *Service) SetWarnings(w *services.SystemWarningsService) {
	if s == nil {
		return
	}
	s.warnings = w
}

// NotifyApprovalRequired announces a spec version waiting on review.
// Fail-open and asynchronous: the caller is a request path and never
// waits on webhook retries, so there is no context to thread through.
func (s *Service) NotifyApprovalRequired(in ApprovalRequiredInput) {
	if s == nil {
		return
	}
	in.SpecTitle = s.maskText(in.SpecTitle)
	s.send(buildApprovalMessage(in, s.dashboardURL))
}

// NotifySessionFinished announces a terminal session transition.
// Fail-open and asynchronous.
func (s *Service) NotifySessionFinished(in SessionFinishedInput) {
	if s == nil {
		return
	}
	in.Error = s.maskText(in.Error)
	s.send(buildFinishedMessage(in, s.dashboardURL))
}

// Flush waits for in-flight deliveries, bounded by the context. Called
// during shutdown.
func (s *Service) Flush(ctx context.Context) {
	if s == nil {
		return
	}
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("Shutdown with webhook deliveries still in flight")
	}
}

// send delivers in the background on a detached context so request
// cancellation never kills a notification mid-flight.
func (s *Service) send(msg Message) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.retryPolicy.MaxElapsedTime+deliverTimeout)
		defer cancel()

		err := retry.Do(ctx, s.retryPolicy, "notify.deliver", func() error {
			return s.client.Post(ctx, msg, deliverTimeout)
		})
		if err != nil {
			s.logger.Error("Webhook delivery failed",
				"event", msg.Event,
				"session_id", msg.SessionID,
				"host", s.client.Host(),
				"error", err)
			if s.warnings != nil {
				s.warnings.AddWarning(services.WarningCategoryWebhook,
					"webhook notifications are failing",
					fault.Reason(err), s.client.Host())
			}
			return
		}
		if s.warnings != nil {
			s.warnings.ClearBySourceID(services.WarningCategoryWebhook, s.client.Host())
		}
	}()
}

func (s *Service) maskText(text string) string {
	if s.masker == nil || text == "" {
		return text
	}
	return s.masker.Mask(text)
}
