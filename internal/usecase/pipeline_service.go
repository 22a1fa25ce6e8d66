package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/game"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/opener"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/playbyplay"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/platform/logging"
)

// PipelineConfig tunes one tracker run.
type PipelineConfig struct {
	LookbackDays     int
	RetryBudget      int
	RetryBaseDelay   time.Duration
	ThrottleDelay    time.Duration
	SinkWriteRetries int
}

// RunReport summarizes a run. Exactly one of three user-visible outcomes
// holds: records were appended, there was no new data, or records were
// computed but could not be persisted (Run also returns ErrSinkWrite).
type RunReport struct {
	Located   int
	Appended  int
	Degraded  int
	Unflushed int
}

// PipelineService drives one run end to end: locate, fetch, normalize,
// extract, assemble, flush. Games are processed strictly sequentially in
// list order; a single game's permanent failure never aborts the run.
type PipelineService struct {
	source     GameSource
	sink       opener.Sink
	locator    *LocatorService
	normalizer *NormalizerService
	extractor  *ExtractorService
	assembler  *AssemblerService
	logger     *logging.Logger
	cfg        PipelineConfig

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func NewPipelineService(
	source GameSource,
	sink opener.Sink,
	locator *LocatorService,
	normalizer *NormalizerService,
	extractor *ExtractorService,
	assembler *AssemblerService,
	logger *logging.Logger,
	cfg PipelineConfig,
) *PipelineService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.LookbackDays < 1 {
		cfg.LookbackDays = 1
	}
	if cfg.RetryBudget < 1 {
		cfg.RetryBudget = 5
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}
	if cfg.SinkWriteRetries < 1 {
		cfg.SinkWriteRetries = 3
	}

	return &PipelineService{
		source:     source,
		sink:       sink,
		locator:    locator,
		normalizer: normalizer,
		extractor:  extractor,
		assembler:  assembler,
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
		sleep:      sleepContext,
	}
}

// Run executes one tracker run. The only shared state across games is the
// append-only batch and the known-id set read once up front; the batch is
// flushed exactly once, after every located game produced its record.
func (s *PipelineService) Run(ctx context.Context) (RunReport, error) {
	ctx, span := startPipelineSpan(ctx, "usecase.PipelineService.Run")
	defer span.End()

	knownIDs, err := s.sink.ListKnownIDs(ctx)
	if err != nil {
		// Best-effort idempotence: duplicate rows are preferable to a dead run.
		s.logger.WarnContext(ctx, "sink read failed, assuming no known ids", "error", err)
		knownIDs = map[string]struct{}{}
	}
	s.throttle(ctx)

	now := s.now().UTC()
	since := game.DateOnly(now.AddDate(0, 0, -s.cfg.LookbackDays))
	games := s.locator.Locate(ctx, since, now, knownIDs)
	s.throttle(ctx)

	report := RunReport{Located: len(games)}
	batch := make([]opener.Record, 0, len(games))
	for _, g := range games {
		record := s.processGame(ctx, g)
		if record.Degraded() {
			report.Degraded++
		}
		batch = append(batch, record)
	}

	if len(batch) == 0 {
		s.logger.InfoContext(ctx, "no new games to record")
		return report, nil
	}

	if err := s.flush(ctx, batch); err != nil {
		report.Unflushed = len(batch)
		return report, fmt.Errorf("%w: %d computed records not persisted: %v", ErrSinkWrite, len(batch), err)
	}

	report.Appended = len(batch)
	s.logger.InfoContext(ctx, "run complete",
		"appended", report.Appended, "degraded", report.Degraded)
	return report, nil
}

// processGame always yields exactly one record for the game: extracted when
// the feed is usable, placeholder when the fetch permanently failed.
func (s *PipelineService) processGame(ctx context.Context, g game.Ref) opener.Record {
	ctx, span := startPipelineSpan(ctx, "usecase.PipelineService.processGame")
	defer span.End()

	raws, err := s.fetchWithRetry(ctx, g.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "play-by-play unavailable, degrading to placeholder",
			"game_id", g.ID, "error", err)
		return s.assembler.Assemble(ctx, g, nil)
	}

	events := s.normalizer.Normalize(g, raws)
	record := s.extractor.Extract(g, events)
	s.logger.InfoContext(ctx, "game processed",
		"game_id", g.ID,
		"events", len(events),
		"tip_winner", record.TipWinner,
		"first_shot_shooter", record.FirstShotShooter,
	)
	return s.assembler.Assemble(ctx, g, &record)
}

// fetchWithRetry retries transient failures with exponential backoff
// (base, 2x, 4x, ...). An empty feed returns immediately with no events;
// permanent errors short-circuit the budget.
func (s *PipelineService) fetchWithRetry(ctx context.Context, gameID string) ([]playbyplay.RawEvent, error) {
	var lastErr error
	for attempt := 0; attempt < s.cfg.RetryBudget; attempt++ {
		if attempt > 0 {
			backoff := s.cfg.RetryBaseDelay << (attempt - 1)
			if err := s.sleep(ctx, backoff); err != nil {
				return nil, err
			}
		}

		raws, err := s.source.FetchPeriod1Events(ctx, gameID)
		s.throttle(ctx)
		if err == nil {
			return raws, nil
		}

		lastErr = err
		if !errors.Is(err, ErrTransientFetch) {
			return nil, err
		}
		s.logger.WarnContext(ctx, "play-by-play fetch failed",
			"game_id", gameID, "attempt", attempt+1, "error", err)
	}
	return nil, fmt.Errorf("retry budget exhausted after %d attempts: %w", s.cfg.RetryBudget, lastErr)
}

func (s *PipelineService) flush(ctx context.Context, batch []opener.Record) error {
	var lastErr error
	for attempt := 0; attempt < s.cfg.SinkWriteRetries; attempt++ {
		if attempt > 0 {
			if err := s.sleep(ctx, s.cfg.RetryBaseDelay); err != nil {
				return err
			}
		}

		err := s.sink.Append(ctx, batch)
		s.throttle(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		s.logger.WarnContext(ctx, "sink append failed",
			"records", len(batch), "attempt", attempt+1, "error", err)
	}
	return lastErr
}

// throttle enforces the fixed inter-request delay after every external call,
// as a cooperative nod to upstream rate limits.
func (s *PipelineService) throttle(ctx context.Context) {
	if s.cfg.ThrottleDelay <= 0 {
		return
	}
	_ = s.sleep(ctx, s.cfg.ThrottleDelay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
