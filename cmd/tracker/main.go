package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/barnanst-collab/nba-game-openers-tracker/internal/app"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/config"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/platform/logging"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipeline, cleanup, err := app.NewPipeline(ctx, cfg, logger)
	if err != nil {
		logger.Error("build pipeline", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	defer func() {
		_ = cleanup()
	}()

	report, err := pipeline.Run(ctx)
	switch {
	case errors.Is(err, usecase.ErrSinkWrite):
		logger.Error("records computed but not persisted",
			"computed", report.Unflushed, "error", err)
		_ = logger.Sync()
		os.Exit(1)
	case err != nil:
		logger.Error("run failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	case report.Appended == 0:
		logger.Info("no new data")
	default:
		logger.Info("records added",
			"count", report.Appended, "degraded", report.Degraded)
	}
}
