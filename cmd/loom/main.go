// Loom server: chat gateway, turn worker, runner/terminal router, sandbox
// manager, and settlement, in one process.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/agentloom/loom/pkg/agent"
	"github.com/agentloom/loom/pkg/api"
	"github.com/agentloom/loom/pkg/bus"
	"github.com/agentloom/loom/pkg/config"
	"github.com/agentloom/loom/pkg/database"
	"github.com/agentloom/loom/pkg/push"
	"github.com/agentloom/loom/pkg/runner"
	"github.com/agentloom/loom/pkg/sandbox"
	"github.com/agentloom/loom/pkg/scheduler"
	"github.com/agentloom/loom/pkg/services"
	"github.com/agentloom/loom/pkg/settlement"
	"github.com/agentloom/loom/pkg/wallet"
	"github.com/agentloom/loom/pkg/worker"
)

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// orphanMaxAge bounds startup reclamation: anything pending or running
// longer than this belongs to a dead pod.
const orphanMaxAge = time.Hour

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		logger.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("Error closing database client", "error", err)
		}
	}()
	logger.Info("Connected to PostgreSQL database")

	// 3. Event bus
	eventBus, err := bus.New(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer func() { _ = eventBus.Close() }()
	logger.Info("Connected to Redis event bus")

	// 4. Services
	wallets := wallet.NewService(dbClient.Client, cfg.Wallet, logger)
	sessionService := services.NewSessionService(dbClient.Client, nil, logger)
	messageService := services.NewMessageService(dbClient.Client, logger)
	runService := services.NewAgentRunService(dbClient.Client, logger)
	recordService := services.NewRecordService(dbClient.Client, logger)
	chatService := services.NewChatService(dbClient.Client, wallets, logger)

	rewards := settlement.NewDeveloperRewardService(dbClient.Client, cfg.Wallet, logger)
	settle := settlement.NewService(wallets, recordService, rewards, eventBus, logger)
	pricing := settlement.NewStaticPricing()

	// 5. Startup orphan sweeps; non-fatal
	if _, err := runService.ReclaimOrphans(ctx, orphanMaxAge); err != nil {
		logger.Error("Failed to reclaim orphan runs", "error", err)
	}
	if _, err := recordService.SweepStalePending(ctx, orphanMaxAge); err != nil {
		logger.Error("Failed to sweep stale pending records", "error", err)
	}

	// 6. Runner routing and sandbox manager
	registry := runner.NewRegistry()
	dispatcher := runner.NewDispatcher(registry, eventBus, logger)
	ptyManager := runner.NewPtyManager(dispatcher, eventBus, cfg.Runner, logger)

	cloudBackend := sandbox.NewCloudBackend(cfg.Sandbox.CloudURL, cfg.Sandbox.RequestTimeout)
	runnerBackend := sandbox.NewRunnerBackend(dispatcher, cfg.Runner.RequestTimeout)
	sandboxes := sandbox.NewManager(eventBus, cloudBackend, runnerBackend, cfg.Sandbox, logger)

	// 7. Turn executor
	notifier := push.NewNotifier(nil, logger)
	graph := &agent.EchoGraph{Model: "gpt-4o-mini"}
	executor := worker.NewTurnExecutor(cfg, graph, eventBus,
		messageService, runService, recordService, sessionService,
		settle, pricing, notifier, logger)

	// 8. Scheduler
	sched := scheduler.New(podID, dbClient.Client, cfg.Scheduler, executor, sessionService, chatService, logger)
	sched.Start(ctx)
	defer sched.Stop()

	// 9. HTTP server
	server := api.NewServer(cfg, dbClient, eventBus, executor,
		sessionService, chatService, messageService, wallets,
		registry, dispatcher, ptyManager, sandboxes, nil, logger)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.HTTPPort,
		Handler: server.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", httpServer.Addr, "pod_id", podID)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		logger.Error("HTTP server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
	if err := executor.Stop(shutdownCtx); err != nil {
		logger.Error("Executor shutdown incomplete", "error", err)
	}
	logger.Info("Shutdown complete")
}
