// Package api exposes the HTTP surface: the agent work plane (claim,
// heartbeat, complete, release), the HITL session endpoints, ticket
// control, the WebSocket event stream, and operational endpoints
// (health, warnings, replay).
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmstack/swarm/ent"
	"github.com/swarmstack/swarm/ent/ticket"
	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/database"
	"github.com/swarmstack/swarm/pkg/dispatch"
	"github.com/swarmstack/swarm/pkg/events"
	"github.com/swarmstack/swarm/pkg/hitl"
	"github.com/swarmstack/swarm/pkg/services"
	"github.com/swarmstack/swarm/pkg/verify"
)

// Releaser frees the fleet slot and VM behind a ticket. Implemented by
// dispatch.VMReleaser; handlers call it when an agent hands a ticket back.
type Releaser interface {
	Release(ctx context.Context, ticketID string)
}

// Server wires the HTTP routes to the service layer.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client

	machine  *hitl.Machine
	sessions *services.SessionService
	tickets  *services.TicketService
	projects *services.ProjectService
	messages *services.MessageService

	connManager *events.ConnectionManager

	// Optional subsystems, wired by main after construction. Handlers
	// nil-check each; endpoints that need a missing one return 503.
	fleet          *dispatch.Fleet
	releaser       Releaser
	verifyWorker   *verify.Worker
	eventService   *services.EventService
	warningService *services.SystemWarningsService
	listener       *events.Listener
	dispatcher     *dispatch.Dispatcher
	reaper         *dispatch.Reaper

	echo       *echo.Echo
	httpServer *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	machine *hitl.Machine,
	sessions *services.SessionService,
	tickets *services.TicketService,
	projects *services.ProjectService,
	messages *services.MessageService,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		machine:     machine,
		sessions:    sessions,
		tickets:     tickets,
		projects:    projects,
		messages:    messages,
		connManager: connManager,
	}
	s.echo = echo.New()
	s.registerRoutes()
	return s
}

// SetFleet wires fleet admission into claim handling and health.
func (s *Server) SetFleet(f *dispatch.Fleet) {
	s.fleet = f
}

// SetReleaser wires VM teardown into the release endpoint.
func (s *Server) SetReleaser(r Releaser) {
	s.releaser = r
}

// SetVerifyWorker wires completion reports into the verification queue.
func (s *Server) SetVerifyWorker(w *verify.Worker) {
	s.verifyWorker = w
}

// SetEventService enables the event replay debug endpoint.
func (s *Server) SetEventService(es *services.EventService) {
	s.eventService = es
}

// SetWarningsService enables GET /api/v1/system/warnings.
func (s *Server) SetWarningsService(ws *services.SystemWarningsService) {
	s.warningService = ws
}

// SetListener includes the NOTIFY listener in health checks.
func (s *Server) SetListener(l *events.Listener) {
	s.listener = l
}

// SetDispatcher includes dispatcher counters in GET /api/v1/system/status.
func (s *Server) SetDispatcher(d *dispatch.Dispatcher) {
	s.dispatcher = d
}

// SetReaper includes reaper counters in GET /api/v1/system/status.
func (s *Server) SetReaper(r *dispatch.Reaper) {
	s.reaper = r
}

// settleIfTerminal re-checks the owning session after an API call
// settled a ticket outside the verification path. Cancelling the last
// runnable ticket must still finish the session.
func (s *Server) settleIfTerminal(ctx context.Context, t *ent.Ticket) {
	if s.verifyWorker == nil {
		return
	}
	switch t.State {
	case ticket.StateCompleted, ticket.StateFailed, ticket.StateCancelled:
		s.verifyWorker.SettleSession(ctx, t.SessionID)
	}
}

func (s *Server) registerRoutes() {
	s.echo.Use(requestID())
	s.echo.Use(securityHeaders())

	s.echo.GET("/health", s.healthHandler)
	s.echo.GET("/ws", s.wsHandler)

	v1 := s.echo.Group("/api/v1")

	// Agent work plane.
	v1.POST("/claim", s.claimHandler)
	v1.POST("/tickets/:id/heartbeat", s.heartbeatHandler)
	v1.POST("/tickets/:id/complete", s.completeHandler)
	v1.POST("/tickets/:id/release", s.releaseHandler)

	// Ticket control and inspection.
	v1.GET("/tickets/:id", s.getTicketHandler)
	v1.POST("/tickets/:id/cancel", s.cancelTicketHandler)
	v1.POST("/tickets/:id/hold", s.holdTicketHandler)
	v1.POST("/tickets/:id/resume", s.resumeTicketHandler)

	// HITL sessions.
	v1.POST("/sessions", s.createSessionHandler)
	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.POST("/sessions/:id/respond", s.respondHandler)
	v1.POST("/sessions/:id/skip-clarification", s.skipClarificationHandler)
	v1.POST("/sessions/:id/generate-spec", s.generateSpecHandler)
	v1.POST("/sessions/:id/update-spec", s.updateSpecHandler)
	v1.POST("/sessions/:id/approve", s.approveHandler)
	v1.POST("/sessions/:id/request-revision", s.requestRevisionHandler)
	v1.POST("/sessions/:id/start-build", s.startBuildHandler)
	v1.POST("/sessions/:id/cancel", s.cancelSessionHandler)
	v1.GET("/sessions/:id/messages", s.listMessagesHandler)
	v1.GET("/sessions/:id/tickets", s.listSessionTicketsHandler)

	// Operational endpoints.
	v1.GET("/system/warnings", s.systemWarningsHandler)
	v1.GET("/system/status", s.systemStatusHandler)
	v1.GET("/debug/tickets/:id/replay", s.replayTicketHandler)
}

// ServeHTTP makes the server usable directly in tests via httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start blocks serving HTTP on addr until Shutdown is called. Returns
// http.ErrServerClosed after a graceful shutdown, like net/http.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
