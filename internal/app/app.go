package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/barnanst-collab/nba-game-openers-tracker/external/balldontlie"
	"github.com/barnanst-collab/nba-game-openers-tracker/external/nbastats"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/config"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/opener"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/infrastructure/repository/memory"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/infrastructure/repository/postgres"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/infrastructure/repository/sheets"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/platform/logging"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/platform/resilience"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/usecase"
)

// NewPipeline wires the configured provider and sink into a ready-to-run
// pipeline. The returned cleanup releases held connections.
func NewPipeline(ctx context.Context, cfg config.Config, logger *logging.Logger) (*usecase.PipelineService, func() error, error) {
	source, err := newSource(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	sink, cleanup, err := newSink(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	notablesRepo := memory.NewNotablesRepository(memory.SeedNotables())
	locator := usecase.NewLocatorService(source, logger, cfg.MaxGamesPerRun, cfg.FallbackWindowStart, cfg.FallbackWindowEnd)
	normalizer := usecase.NewNormalizerService(logger)
	extractor := usecase.NewExtractorService(logger)
	assembler := usecase.NewAssemblerService(notablesRepo, logger)

	pipeline := usecase.NewPipelineService(source, sink, locator, normalizer, extractor, assembler, logger, usecase.PipelineConfig{
		LookbackDays:     cfg.LookbackDays,
		RetryBudget:      cfg.RetryBudget,
		RetryBaseDelay:   cfg.RetryBaseDelay,
		ThrottleDelay:    cfg.ThrottleDelay,
		SinkWriteRetries: cfg.SinkWriteRetries,
	})
	return pipeline, cleanup, nil
}

func newSource(cfg config.Config, logger *logging.Logger) (usecase.GameSource, error) {
	breaker := resilience.CircuitBreakerConfig{
		Enabled:          cfg.ProviderCircuitEnabled,
		FailureThreshold: cfg.ProviderCircuitFailures,
		OpenTimeout:      cfg.ProviderCircuitTimeout,
	}

	switch cfg.Provider {
	case config.ProviderNBAStats:
		return nbastats.NewClient(nbastats.ClientConfig{
			HTTPClient:     &http.Client{Timeout: cfg.NBAStatsTimeout},
			BaseURL:        cfg.NBAStatsBaseURL,
			Season:         cfg.Season,
			Timeout:        cfg.NBAStatsTimeout,
			Logger:         logger,
			CircuitBreaker: breaker,
		}), nil
	case config.ProviderBallDontLie:
		return balldontlie.NewClient(balldontlie.ClientConfig{
			HTTPClient:     &http.Client{Timeout: cfg.BallDontLieTimeout},
			BaseURL:        cfg.BallDontLieBaseURL,
			Token:          cfg.BallDontLieToken,
			Timeout:        cfg.BallDontLieTimeout,
			Logger:         logger,
			CircuitBreaker: breaker,
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

func newSink(ctx context.Context, cfg config.Config) (opener.Sink, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Sink {
	case config.SinkPostgres:
		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DBURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect sink database: %w", err)
		}
		return postgres.NewOpenerSink(db), db.Close, nil
	case config.SinkSheets:
		sink, err := sheets.NewOpenerSink(ctx, cfg.SheetsSpreadsheetID, cfg.SheetsCredentialsFile, cfg.SheetsTab)
		if err != nil {
			return nil, nil, fmt.Errorf("build sheets sink: %w", err)
		}
		return sink, noop, nil
	case config.SinkMemory:
		return memory.NewOpenerSink(nil), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown sink %q", cfg.Sink)
	}
}
