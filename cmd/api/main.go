package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/justsurfingit/job-board/internal/config"
	"github.com/justsurfingit/job-board/internal/handlers"
	"github.com/justsurfingit/job-board/internal/logger"
	"github.com/justsurfingit/job-board/internal/metrics"
	"github.com/justsurfingit/job-board/internal/models"
	"github.com/justsurfingit/job-board/internal/server"
	"github.com/justsurfingit/job-board/internal/services"
	"github.com/justsurfingit/job-board/internal/store"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "job-board:", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load Configuration (.env, config.yaml, JOBBOARD_* env)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 2. Logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	// 3. In-memory job store, gone when the process exits
	var seed []models.Job
	if cfg.Board.Seed {
		seed = models.SeedJobs()
	}
	jobStore := store.New(nil, seed...)

	// 4. Core Services
	m := metrics.New()
	board := services.NewBoardService(jobStore, log, m)

	// 5. Handlers + Router
	jobHandler := handlers.NewJobHandler(board, log)
	srv, err := server.New(cfg, jobHandler, m, log)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	// 6. Serve until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run() }()

	log.Info("job board ready", zap.Int("jobs", jobStore.Len()), zap.String("addr", cfg.Server.Addr()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
