package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sotd-bot/infrastructure/groupme"
	"sotd-bot/infrastructure/webhook"
	"sotd-bot/repositories"
	"sotd-bot/runtime/workers"
	"sotd-bot/services"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const shutdownTimeout = 10 * time.Second

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the HTTP server and background workers.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config validation: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Checkpoint store (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("checkpoint store opening failed: %w", err)
	}
	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repositories, engine, transport
	queueRepository := repositories.NewQueueRepository(config.QueueFile)
	checkpointRepository := repositories.NewCheckpointRepository(db)
	engine := services.NewQueueService(queueRepository, logger)
	poster := groupme.NewClient(config.BotID, config.APIEndpoint, logger)
	dispatcher := services.NewDispatcher(engine, checkpointRepository, logger)

	pingWorker, err := workers.NewDailyPingWorker(
		logger, engine, checkpointRepository, poster, config.PingAt, config.TickInterval,
	)
	if err != nil {
		return exitConfig, fmt.Errorf("scheduler setup: %w", err)
	}

	// 4. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)

	// 5. Start the daily ping under supervision
	sup := workers.NewSupervisor(logger)
	sup.Add(pingWorker)
	go sup.Run(ctx)

	// 6. Webhook server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := webhook.NewServer(logger, dispatcher, poster)
	httpServer := &http.Server{Addr: address, Handler: server.Router()}

	go func() {
		logger.Info("Starting webhook server", "address", address, "ping_at", config.PingAt)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("webhook server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	// The execution blocks here until either a signal is received or the server crashes.
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	sup.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}
