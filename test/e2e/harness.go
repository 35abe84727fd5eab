// Package e2e boots a complete Swarm coordinator against a real
// PostgreSQL and drives it through the HTTP API and the WebSocket
// event stream, the way a dashboard and a fleet of agents would.
package e2e

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/swarmstack/swarm/pkg/api"
	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/database"
	"github.com/swarmstack/swarm/pkg/dispatch"
	"github.com/swarmstack/swarm/pkg/events"
	"github.com/swarmstack/swarm/pkg/hitl"
	"github.com/swarmstack/swarm/pkg/services"
	"github.com/swarmstack/swarm/pkg/verify"
	"github.com/swarmstack/swarm/pkg/vm"
	testdb "github.com/swarmstack/swarm/test/database"
)

// TestApp is one fully wired coordinator instance for e2e testing.
// The LLM, VM backend, verifier, and git service are scripted fakes;
// everything between them (store, bus, services, loops, HTTP API) is
// the real thing.
type TestApp struct {
	Config   *config.Config
	DB       *testdb.SharedTestDB
	DBClient *database.Client

	// Scripted edges
	LLM     *ScriptedLLM
	Backend *FakeVMBackend
	Runner  *ScriptedRunner
	VCS     *VCSRecorder

	// Real infrastructure
	Publisher   *events.Publisher
	ConnManager *events.ConnectionManager
	Listener    *events.Listener
	Fleet       *dispatch.Fleet
	Releaser    *dispatch.VMReleaser
	VerifyWork  *verify.Worker
	Dispatcher  *dispatch.Dispatcher
	Reaper      *dispatch.Reaper
	Heartbeat   *dispatch.Heartbeat
	Machine     *hitl.Machine
	Server      *api.Server

	Sessions *services.SessionService
	Tickets  *services.TicketService
	Projects *services.ProjectService
	Messages *services.MessageService
	Events   *services.EventService

	BaseURL string
	WSURL   string

	httpServer *httptest.Server
	t          *testing.T
}

type testAppConfig struct {
	cfg               *config.Config
	maxFleet          int
	tenantCap         int
	maxAttempts       int
	runDispatcher     bool
	runReaper         bool
	runHeartbeat      bool
	leaseDuration     time.Duration
	reaperInterval    time.Duration
	heartbeatInterval time.Duration
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithConfig replaces the default test configuration wholesale.
func WithConfig(cfg *config.Config) TestAppOption {
	return func(c *testAppConfig) { c.cfg = cfg }
}

// WithMaxFleet caps concurrently leased tickets across the deployment.
func WithMaxFleet(n int) TestAppOption {
	return func(c *testAppConfig) { c.maxFleet = n }
}

// WithTenantCap caps in-flight tickets per tenant.
func WithTenantCap(n int) TestAppOption {
	return func(c *testAppConfig) { c.tenantCap = n }
}

// WithDispatcher starts the VM dispatch loop. Most scenarios use the
// agent pull plane instead and leave it off so the loop does not race
// tests for ready tickets.
func WithDispatcher() TestAppOption {
	return func(c *testAppConfig) { c.runDispatcher = true }
}

// WithReaper starts the lease reaper loop.
func WithReaper() TestAppOption {
	return func(c *testAppConfig) { c.runReaper = true }
}

// WithHeartbeat starts the coordinator lease publisher for
// dispatcher-owned VMs.
func WithHeartbeat(interval time.Duration) TestAppOption {
	return func(c *testAppConfig) {
		c.runHeartbeat = true
		c.heartbeatInterval = interval
	}
}

// WithLeaseDuration overrides how long a claim holds a ticket.
func WithLeaseDuration(d time.Duration) TestAppOption {
	return func(c *testAppConfig) { c.leaseDuration = d }
}

// WithMaxAttempts overrides the per-ticket attempt budget.
func WithMaxAttempts(n int) TestAppOption {
	return func(c *testAppConfig) { c.maxAttempts = n }
}

// NewTestApp boots a coordinator on a fresh schema. Shutdown is
// registered via t.Cleanup in reverse creation order.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()
	ctx := context.Background()

	tc := &testAppConfig{
		maxFleet:          10,
		maxAttempts:       3,
		leaseDuration:     30 * time.Second,
		reaperInterval:    100 * time.Millisecond,
		heartbeatInterval: time.Second,
	}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.cfg == nil {
		tc.cfg = defaultTestConfig(tc)
	}

	// 1. Store. A shared schema so the NOTIFY listener gets its own
	// connection outside the pool.
	sharedDB := testdb.NewSharedTestDB(t)
	dbClient := sharedDB.NewClient(t)

	// 2. Event pipeline: publisher → events table + pg_notify → listener
	// → connection manager → WebSocket.
	eventService := services.NewEventService(dbClient.Client)
	publisher := events.NewPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(eventService, 5*time.Second)
	listener := events.NewListener(sharedDB.ConnString(), connManager)
	require.NoError(t, listener.Start(ctx))
	connManager.SetListener(listener)

	// 3. Domain services.
	sessionService := services.NewSessionService(dbClient.Client, publisher)
	require.NoError(t, sessionService.LoadStates(ctx))
	ticketService := services.NewTicketService(dbClient.Client, publisher, tc.cfg.Lease, tc.cfg.Build)
	projectService := services.NewProjectService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client, publisher)
	approvalService := services.NewApprovalService(dbClient.Client)

	// 4. Scripted edges.
	llmClient := NewScriptedLLM()
	machine := hitl.NewMachine(hitl.Deps{
		Config:    tc.cfg,
		LLM:       llmClient,
		Bus:       publisher,
		Sessions:  sessionService,
		Messages:  messageService,
		Approvals: approvalService,
		Projects:  projectService,
		Tickets:   ticketService,
	})

	backend := &FakeVMBackend{}
	vms := vm.NewManager(tc.cfg.VMBackendRegistry)
	vms.Register("fake", backend)

	fleet := dispatch.NewFleet(tc.cfg.Dispatch)
	releaser := dispatch.NewVMReleaser(fleet, vms, publisher, tc.cfg.Defaults.VMBackend)

	// 5. Verification worker over the scripted runner and git recorder.
	runner := NewScriptedRunner()
	vcsRecorder := &VCSRecorder{}
	verifyWorker := verify.NewWorker(ticketService, sessionService, projectService,
		runner, vcsRecorder, releaser, publisher)
	if _, err := verifyWorker.Recover(ctx); err != nil {
		t.Fatalf("verify recovery failed: %v", err)
	}
	verifyWorker.Start(ctx)

	// 6. Optional loops.
	var dispatcher *dispatch.Dispatcher
	if tc.runDispatcher {
		dispatcher = dispatch.NewDispatcher(tc.cfg, ticketService, projectService,
			fleet, vms, releaser, publisher)
		dispatcher.SetSettler(verifyWorker)
		dispatcher.Start(ctx)
	}
	var reaper *dispatch.Reaper
	if tc.runReaper {
		reaper = dispatch.NewReaper(tc.cfg.Lease, ticketService, releaser)
		reaper.SetSettler(verifyWorker)
		reaper.Start(ctx)
	}
	var heartbeat *dispatch.Heartbeat
	if tc.runHeartbeat {
		heartbeat = dispatch.NewHeartbeat(tc.cfg.Lease, ticketService, fleet, vms, publisher)
		heartbeat.Start(ctx)
	}

	// 7. HTTP server. The api.Server is an http.Handler, so httptest
	// carries both the REST surface and the /ws upgrade.
	server := api.NewServer(tc.cfg, dbClient, machine, sessionService,
		ticketService, projectService, messageService, connManager)
	server.SetFleet(fleet)
	server.SetReleaser(releaser)
	server.SetVerifyWorker(verifyWorker)
	server.SetEventService(eventService)
	server.SetListener(listener)
	if dispatcher != nil {
		server.SetDispatcher(dispatcher)
	}
	if reaper != nil {
		server.SetReaper(reaper)
	}

	httpServer := httptest.NewServer(server)

	app := &TestApp{
		Config:      tc.cfg,
		DB:          sharedDB,
		DBClient:    dbClient,
		LLM:         llmClient,
		Backend:     backend,
		Runner:      runner,
		VCS:         vcsRecorder,
		Publisher:   publisher,
		ConnManager: connManager,
		Listener:    listener,
		Fleet:       fleet,
		Releaser:    releaser,
		VerifyWork:  verifyWorker,
		Dispatcher:  dispatcher,
		Reaper:      reaper,
		Heartbeat:   heartbeat,
		Machine:     machine,
		Server:      server,
		Sessions:    sessionService,
		Tickets:     ticketService,
		Projects:    projectService,
		Messages:    messageService,
		Events:      eventService,
		BaseURL:     httpServer.URL,
		WSURL:       "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws",
		httpServer:  httpServer,
		t:           t,
	}

	t.Cleanup(func() {
		httpServer.Close()
		if heartbeat != nil {
			heartbeat.Stop()
		}
		if reaper != nil {
			reaper.Stop()
		}
		if dispatcher != nil {
			dispatcher.Stop()
		}
		verifyWorker.Stop()
		listener.Stop(context.Background())
		_ = vms.Close()
	})

	return app
}

// defaultTestConfig shrinks every interval so scenarios settle in
// milliseconds. Retry backoff is near-zero: rejected tickets become
// claimable again immediately.
func defaultTestConfig(tc *testAppConfig) *config.Config {
	return &config.Config{
		Defaults: &config.Defaults{
			LLMProvider: "scripted",
			VMBackend:   "fake",
			Tenant:      "default",
			BaseBranch:  "main",
		},
		Dispatch: &config.DispatchConfig{
			MaxFleet:                tc.maxFleet,
			TenantConcurrencyCap:    tc.tenantCap,
			PollInterval:            25 * time.Millisecond,
			PollIntervalJitter:      5 * time.Millisecond,
			GracefulShutdownTimeout: 5 * time.Second,
		},
		Lease: &config.LeaseConfig{
			Duration:          tc.leaseDuration,
			HeartbeatInterval: tc.heartbeatInterval,
			StaleAfter:        5 * time.Second,
			ReaperInterval:    tc.reaperInterval,
		},
		Build: &config.BuildPolicy{
			MaxAttempts:      tc.maxAttempts,
			RetryBackoffBase: time.Millisecond,
			RetryBackoffMax:  time.Millisecond,
		},
		HITL: config.DefaultHITLConfig(),
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"scripted": {Type: config.LLMProviderTypeLocal, Model: "scripted"},
		}),
		VMBackendRegistry: config.NewVMBackendRegistry(nil),
	}
}

// WaitSessionState polls until the session reaches the wanted state.
func (app *TestApp) WaitSessionState(t *testing.T, sessionID, state string) {
	t.Helper()
	require.Eventually(t, func() bool {
		sess, err := app.Sessions.GetSession(context.Background(), sessionID)
		return err == nil && string(sess.State) == state
	}, 10*time.Second, 20*time.Millisecond,
		"session %s never reached %s", sessionID, state)
}

// WaitTicketState polls until the ticket reaches the wanted state.
func (app *TestApp) WaitTicketState(t *testing.T, ticketID, state string) {
	t.Helper()
	require.Eventually(t, func() bool {
		tk, err := app.Tickets.GetTicket(context.Background(), ticketID)
		return err == nil && string(tk.State) == state
	}, 10*time.Second, 20*time.Millisecond,
		"ticket %s never reached %s", ticketID, state)
}

// agent identities are minted process-wide so two apps in one test
// never collide.
var (
	agentMu  sync.Mutex
	agentSeq int
)

func nextAgentID() string {
	agentMu.Lock()
	defer agentMu.Unlock()
	agentSeq++
	return fmt.Sprintf("agent-e2e-%d", agentSeq)
}
