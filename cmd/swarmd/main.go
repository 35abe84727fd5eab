// Swarm coordinator server: serves the HTTP API and event stream,
// drives the HITL session front half, and runs the dispatch, lease,
// verification, and retention loops.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/swarmstack/swarm/pkg/api"
	"github.com/swarmstack/swarm/pkg/cleanup"
	"github.com/swarmstack/swarm/pkg/config"
	"github.com/swarmstack/swarm/pkg/database"
	"github.com/swarmstack/swarm/pkg/dispatch"
	"github.com/swarmstack/swarm/pkg/events"
	"github.com/swarmstack/swarm/pkg/hitl"
	"github.com/swarmstack/swarm/pkg/llm"
	"github.com/swarmstack/swarm/pkg/masking"
	"github.com/swarmstack/swarm/pkg/notify"
	"github.com/swarmstack/swarm/pkg/repoctx"
	"github.com/swarmstack/swarm/pkg/retry"
	"github.com/swarmstack/swarm/pkg/services"
	"github.com/swarmstack/swarm/pkg/vcs"
	"github.com/swarmstack/swarm/pkg/verifier"
	"github.com/swarmstack/swarm/pkg/verify"
	"github.com/swarmstack/swarm/pkg/version"
	"github.com/swarmstack/swarm/pkg/vm"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting Swarm coordinator",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs migrations and reference seeds)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Masking service: every subsystem that persists or forwards free
	// text shares this one instance, so credential literals learned at
	// dispatch time are scrubbed everywhere.
	maskingService := masking.NewService(cfg.Defaults.SecretMasking)

	// 4. Event infrastructure
	warningsService := services.NewSystemWarningsService()
	eventService := services.NewEventService(dbClient.Client)
	publisher := events.NewPublisher(dbClient.DB())
	publisher.SetMasker(maskingService)
	connManager := events.NewConnectionManager(eventService, 10*time.Second)

	// The listener needs a dedicated connection; LISTEN cannot share the
	// pooled handle.
	listener := events.NewListener(dbConfig.DSN(), connManager)
	listener.SetWarnings(warningsService)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start event listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	connManager.SetListener(listener)
	slog.Info("Event infrastructure initialized")

	// 5. Domain services
	sessionService := services.NewSessionService(dbClient.Client, publisher)
	if err := sessionService.LoadStates(ctx); err != nil {
		slog.Error("Failed to load session lifecycle", "error", err)
		os.Exit(1)
	}
	ticketService := services.NewTicketService(dbClient.Client, publisher, cfg.Lease, cfg.Build)
	ticketService.SetMasker(maskingService)
	projectService := services.NewProjectService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client, publisher)
	messageService.SetMasker(maskingService)
	approvalService := services.NewApprovalService(dbClient.Client)
	slog.Info("Services initialized")

	// 6. LLM sidecar client. grpc.NewClient dials lazily; the first
	// clarification turn opens the connection.
	llmAddr := getEnv("LLM_SERVICE_ADDR", "localhost:50051")
	grpcLLM, err := llm.NewGRPCClient(llmAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", llmAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := grpcLLM.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	llmClient := llm.NewRetryingClient(grpcLLM, retry.DefaultPolicy())
	slog.Info("LLM client initialized", "addr", llmAddr)

	// 7. Outbound integrations
	notifier := notify.NewService(cfg.Notify, cfg.DashboardURL)
	notifier.SetWarnings(warningsService)
	notifier.SetMasker(maskingService)

	repoAnalyzer := repoctx.NewAnalyzer(cfg.RepoContext, os.Getenv(cfg.VCS.TokenEnv))

	machine := hitl.NewMachine(hitl.Deps{
		Config:    cfg,
		LLM:       llmClient,
		Bus:       publisher,
		Repo:      repoAnalyzer,
		Notifier:  notifier,
		Sessions:  sessionService,
		Messages:  messageService,
		Approvals: approvalService,
		Projects:  projectService,
		Tickets:   ticketService,
	})

	// 8. Fleet tracker, VM manager, and the dispatch loops. The fleet is
	// seeded from the store so a restart does not double-book capacity.
	fleet := dispatch.NewFleet(cfg.Dispatch)
	inFlight, err := ticketService.ListInFlight(ctx)
	if err != nil {
		slog.Error("Failed to load in-flight tickets", "error", err)
		os.Exit(1)
	}
	if n := fleet.Seed(inFlight); n > 0 {
		slog.Info("Fleet seeded from store", "in_flight", n)
	}

	vmManager := vm.NewManager(cfg.VMBackendRegistry)
	defer func() {
		if err := vmManager.Close(); err != nil {
			slog.Error("Error closing VM backends", "error", err)
		}
	}()
	releaser := dispatch.NewVMReleaser(fleet, vmManager, publisher, cfg.Defaults.VMBackend)

	// 9. Verification worker: recover the review backlog, then start.
	verifyRunner := verifier.NewHTTPRunner(cfg.Verifier)
	vcsClient := vcs.NewGitHubClient(cfg.VCS)
	verifyWorker := verify.NewWorker(ticketService, sessionService, projectService,
		verifyRunner, vcsClient, releaser, publisher)
	verifyWorker.SetNotifier(notifier)
	if _, err := verifyWorker.Recover(ctx); err != nil {
		slog.Error("Failed to recover pending verifications", "error", err)
		os.Exit(1)
	}
	verifyWorker.Start(ctx)

	// 10. Dispatch loops
	dispatcher := dispatch.NewDispatcher(cfg, ticketService, projectService,
		fleet, vmManager, releaser, publisher)
	dispatcher.SetMasker(maskingService)
	dispatcher.SetWarnings(warningsService)
	dispatcher.SetSettler(verifyWorker)
	dispatcher.Start(ctx)

	heartbeat := dispatch.NewHeartbeat(cfg.Lease, ticketService, fleet, vmManager, publisher)
	heartbeat.Start(ctx)

	reaper := dispatch.NewReaper(cfg.Lease, ticketService, releaser)
	reaper.SetSettler(verifyWorker)
	reaper.Start(ctx)

	// 11. Retention sweeper
	retention := cleanup.NewService(cfg.Retention, sessionService, eventService, warningsService)
	retention.Start(ctx)

	// 12. HTTP server
	httpServer := api.NewServer(cfg, dbClient, machine, sessionService,
		ticketService, projectService, messageService, connManager)
	httpServer.SetFleet(fleet)
	httpServer.SetReleaser(releaser)
	httpServer.SetVerifyWorker(verifyWorker)
	httpServer.SetEventService(eventService)
	httpServer.SetWarningsService(warningsService)
	httpServer.SetListener(listener)
	httpServer.SetDispatcher(dispatcher)
	httpServer.SetReaper(reaper)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Swarm coordinator started",
		"max_fleet", cfg.Dispatch.MaxFleet,
		"dashboard_url", cfg.DashboardURL)

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown. Dispatch stops first so no new VMs boot;
	// leases on still-running VMs expire on their own and the next boot's
	// reaper reclaims the work.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Dispatch.GracefulShutdownTimeout)
	defer cancel()

	loopsDone := make(chan struct{})
	go func() {
		dispatcher.Stop()
		heartbeat.Stop()
		reaper.Stop()
		verifyWorker.Stop()
		retention.Stop()
		close(loopsDone)
	}()

	select {
	case <-loopsDone:
		slog.Info("Background loops stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded; in-flight work will be reclaimed by lease expiry")
	}

	// Webhook deliveries ride goroutines; give stragglers a moment.
	notifier.Flush(shutdownCtx)

	// Stop the HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
