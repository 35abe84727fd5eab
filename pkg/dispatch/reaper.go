package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/services"
)

// Reaper recovers tickets whose agents went silent: an expired lease or
// a heartbeat older than the staleness threshold means the agent is
// presumed dead. Each stale ticket is atomically returned to ready with
// an incremented attempt, or failed once its budget is exhausted; the
// VM is torn down and the fleet slot freed either way. A single
// coordinator runs the reaper, so the scan needs no cross-process lock.
type Reaper struct {
	tickets  *services.TicketService
	releaser *VMReleaser
	settler  SessionSettler
	cfg      *config.LeaseConfig

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu       sync.Mutex
	reclaims int
	lastScan time.Time
}

// NewReaper creates the stale-lease reaper.
func NewReaper(cfg *config.LeaseConfig, tickets *services.TicketService, releaser *VMReleaser) *Reaper {
	return &Reaper{
		tickets:  tickets,
		releaser: releaser,
		cfg:      cfg,
		stopCh:   make(chan struct{}),
	}
}

// SetSettler installs the session settle hook, invoked when a reclaim
// buries a ticket terminally. Call before Start.
func (r *Reaper) SetSettler(s SessionSettler) {
	r.settler = s
}

// Start begins the reaper loop in a goroutine.
func (r *Reaper) Start(ctx context.Context) {
	r.wg.Add(1)
	go r.run(ctx)
}

// Stop signals the loop to stop and waits for it to finish.
func (r *Reaper) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

// Stats reports reaper health for the system status endpoint.
func (r *Reaper) Stats() (reclaims int, lastScan time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reclaims, r.lastScan
}

func (r *Reaper) run(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.ReaperInterval)
	defer ticker.Stop()

	slog.Info("Lease reaper started",
		"interval", r.cfg.ReaperInterval, "stale_after", r.cfg.StaleAfter)
	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.sweep(ctx); err != nil {
				slog.Error("Reaper sweep failed", "error", err)
			}
		}
	}
}

// sweep reclaims every stale in-flight ticket and returns how many were
// recovered. Individual reclaim conflicts are logged and skipped: a
// Conflict means the agent settled the attempt between scan and
// reclaim, which is the good outcome.
func (r *Reaper) sweep(ctx context.Context) (int, error) {
	now := time.Now()
	stale, err := r.tickets.ListStale(ctx, now, r.cfg.StaleAfter)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	r.lastScan = now
	r.mu.Unlock()

	if len(stale) == 0 {
		return 0, nil
	}
	slog.Warn("Stale leases detected", "count", len(stale))

	reclaimed := 0
	for _, t := range stale {
		lastSeen := "never"
		if t.LastHeartbeatAt != nil {
			lastSeen = t.LastHeartbeatAt.Format(time.RFC3339)
		}
		reason := fmt.Sprintf("lease expired; agent last seen %s", lastSeen)

		recovered, err := r.tickets.Reclaim(ctx, t, reason)
		if err != nil {
			slog.Warn("Reclaim skipped",
				"ticket_id", t.ID, "state", t.State, "error", err)
			continue
		}

		r.releaser.Release(ctx, t.ID)
		reclaimed++
		slog.Info("Stale ticket reclaimed",
			"ticket_id", t.ID,
			"state", recovered.State,
			"attempt", recovered.Attempt,
			"last_heartbeat", lastSeen)

		// A reclaim past the attempt budget buries the ticket; that can
		// leave the session with nothing runnable.
		if r.settler != nil && recovered.State != ticket.StateReady {
			r.settler.SettleSession(ctx, recovered.SessionID)
		}
	}

	r.mu.Lock()
	r.reclaims += reclaimed
	r.mu.Unlock()
	return reclaimed, nil
}
