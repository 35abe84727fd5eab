// Package cleanup enforces event retention: sessions that have been
// terminal past the retention window lose their event rows, and events
// with no session (fleet and tenant rooms) expire on a TTL. Ticket,
// message, and approval rows are never touched; they are the audit
// trail. All sweeps are idempotent.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/services"
)

// retentionBatch caps how many sessions one sweep prunes. The remainder
// is picked up on the next tick, keeping each pass short-lived.
const retentionBatch = 100

// sweepTimeout bounds one full pass so a hung database cannot wedge the
// loop or a shutdown.
const sweepTimeout = 10 * time.Minute

// Service is the background retention loop.
type Service struct {
	cfg      *config.RetentionConfig
	sessions *services.SessionService
	events   *services.EventService
	warnings *services.SystemWarningsService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the retention sweeper. warnings may be nil.
func NewService(cfg *config.RetentionConfig, sessions *services.SessionService, events *services.EventService, warnings *services.SystemWarningsService) *Service {
	return &Service{
		cfg:      cfg,
		sessions: sessions,
		events:   events,
		warnings: warnings,
	}
}

// Start launches the background cleanup loop. Calling Start on a
// running service is a no-op.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention sweeper started",
		"session_retention_days", s.cfg.SessionRetentionDays,
		"event_ttl", s.cfg.EventTTL,
		"interval", s.cfg.CleanupInterval)
}

// Stop signals the loop to exit and waits for the current pass to end.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention sweeper stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep()

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep runs both prune passes on a detached bounded context. Stop only
// takes effect between passes; every delete here is idempotent, so a
// pass cut short by the timeout finishes on the next tick.
func (s *Service) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	s.pruneSessionEvents(ctx)
	s.pruneOrphanEvents(ctx)
}

// pruneSessionEvents removes event rows of sessions that have been
// terminal longer than the retention window. Active sessions never
// qualify: the candidate query requires a terminal state.
func (s *Service) pruneSessionEvents(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.cfg.SessionRetentionDays)

	ids, err := s.sessions.ListRetentionCandidates(ctx, cutoff, retentionBatch)
	if err != nil {
		s.fail("sessions", err)
		return
	}

	pruned := 0
	for _, id := range ids {
		n, err := s.events.DeleteSessionEvents(ctx, id)
		if err != nil {
			s.fail("sessions", err)
			return
		}
		pruned += n
	}
	if pruned > 0 {
		slog.Info("Retention: pruned session events",
			"sessions", len(ids), "events", pruned)
	}
	s.recover("sessions")
}

// pruneOrphanEvents expires sessionless rows (fleet, tenant rooms) on
// the event TTL.
func (s *Service) pruneOrphanEvents(ctx context.Context) {
	n, err := s.events.DeleteOrphanEvents(ctx, time.Now().Add(-s.cfg.EventTTL))
	if err != nil {
		s.fail("orphans", err)
		return
	}
	if n > 0 {
		slog.Info("Retention: pruned orphan events", "events", n)
	}
	s.recover("orphans")
}

func (s *Service) fail(pass string, err error) {
	slog.Error("Retention sweep failed", "pass", pass, "error", err)
	if s.warnings != nil {
		s.warnings.AddWarning(services.WarningCategoryRetention,
			"event retention sweep is failing", err.Error(), pass)
	}
}

func (s *Service) recover(pass string) {
	if s.warnings != nil {
		s.warnings.ClearBySourceID(services.WarningCategoryRetention, pass)
	}
}
