package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/game"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/opener"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/playbyplay"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/infrastructure/repository/memory"
	openermock "github.com/barnanst-collab/nba-game-openers-tracker/internal/mocks/domain/opener"
	sourcemock "github.com/barnanst-collab/nba-game-openers-tracker/internal/mocks/usecase"
)

func newTestPipeline(source GameSource, sink opener.Sink) *PipelineService {
	locator := NewLocatorService(source, nil, 10, testFallbackStart, testFallbackEnd)
	locator.now = fixedNow

	pipeline := NewPipelineService(
		source,
		sink,
		locator,
		NewNormalizerService(nil),
		NewExtractorService(nil),
		NewAssemblerService(memory.NewNotablesRepository(memory.SeedNotables()), nil),
		nil,
		PipelineConfig{RetryBudget: 5, RetryBaseDelay: time.Millisecond, ThrottleDelay: 0},
	)
	pipeline.now = fixedNow
	pipeline.sleep = func(context.Context, time.Duration) error { return nil }
	return pipeline
}

func scheduledGames() []game.Ref {
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	return []game.Ref{
		{ID: "0022400561", Date: day, HomeTeam: "Miami Heat", AwayTeam: "Chicago Bulls", HomeTeamID: "1610612748"},
		{ID: "0022400562", Date: day, HomeTeam: "Boston Celtics", AwayTeam: "New York Knicks", HomeTeamID: "1610612738"},
	}
}

func TestRunRecordsGamesInListOrder(t *testing.T) {
	t.Parallel()

	feed := []playbyplay.RawEvent{
		{Period: 1, TypeCode: playbyplay.TypeCodeJumpBall, HomeDescription: "Jump Ball Adebayo vs. Vucevic"},
		{Period: 1, TypeCode: playbyplay.TypeCodeShotMade, HomeDescription: "Butler Driving Layup (2 PTS)", TeamID: "1610612748"},
		{Period: 1, TypeCode: playbyplay.TypeCodeShotMissed, VisitorDescription: "MISS White 26' 3PT Jump Shot", TeamID: "1610612741"},
	}

	source := sourcemock.NewGameSource(t)
	source.On("ListGames", mock.Anything, mock.Anything, mock.Anything).Return(scheduledGames(), nil).Once()
	source.On("FetchPeriod1Events", mock.Anything, "0022400561").Return(feed, nil).Once()
	// Second game: reachable feed with no events at all. Still one record.
	source.On("FetchPeriod1Events", mock.Anything, "0022400562").Return([]playbyplay.RawEvent{}, nil).Once()

	sink := memory.NewOpenerSink(nil)
	report, err := newTestPipeline(source, sink).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if report.Located != 2 || report.Appended != 2 || report.Degraded != 0 || report.Unflushed != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	appended := sink.Appended()
	if len(appended) != 2 {
		t.Fatalf("expected 2 records, got %d", len(appended))
	}
	if appended[0].GameID != "0022400561" || appended[1].GameID != "0022400562" {
		t.Fatalf("records out of list order: %q then %q", appended[0].GameID, appended[1].GameID)
	}

	first := appended[0]
	if first.TipWinner != "Adebayo" || first.TipLoser != "Vucevic" ||
		first.FirstShotShooter != "Butler" || !first.FirstShotMade || first.FirstShotType != playbyplay.ShotLayup ||
		first.SecondShotShooter != "White" || first.SecondShotMade || first.SecondShotType != playbyplay.ShotThree {
		t.Fatalf("unexpected first record: %+v", first)
	}

	second := appended[1]
	if second.TipWinner != opener.NoTip || second.SecondShotShooter != opener.NoShot || second.Degraded() {
		t.Fatalf("empty feed must yield a sentinel extraction, not a placeholder: %+v", second)
	}
}

func TestRunSkipsKnownGames(t *testing.T) {
	t.Parallel()

	source := sourcemock.NewGameSource(t)
	source.On("ListGames", mock.Anything, mock.Anything, mock.Anything).Return(scheduledGames(), nil).Once()

	sink := memory.NewOpenerSink([]string{"0022400561", "0022400562"})
	report, err := newTestPipeline(source, sink).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if report.Located != 0 || report.Appended != 0 {
		t.Fatalf("already recorded games must be skipped: %+v", report)
	}
	if len(sink.Appended()) != 0 {
		t.Fatal("nothing may be appended when every game is known")
	}
}

func TestRunExhaustsRetryBudgetThenDegrades(t *testing.T) {
	t.Parallel()

	source := sourcemock.NewGameSource(t)
	source.On("ListGames", mock.Anything, mock.Anything, mock.Anything).Return(scheduledGames()[:1], nil).Once()
	source.On("FetchPeriod1Events", mock.Anything, "0022400561").
		Return(nil, fmt.Errorf("%w: upstream 500", ErrTransientFetch)).Times(5)

	sink := memory.NewOpenerSink(nil)
	report, err := newTestPipeline(source, sink).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if report.Appended != 1 || report.Degraded != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}

	appended := sink.Appended()
	if len(appended) != 1 || !appended[0].Degraded() {
		t.Fatalf("expected one placeholder record, got %+v", appended)
	}
	got := appended[0]
	if got.TipWinner != "Adebayo" || got.TipLoser != "Vucevic" ||
		got.FirstShotShooter != "Butler" || got.SecondShotShooter != "White" {
		t.Fatalf("placeholder not built from the notable-player table: %+v", got)
	}
}

func TestRunPermanentFetchErrorShortCircuits(t *testing.T) {
	t.Parallel()

	source := sourcemock.NewGameSource(t)
	source.On("ListGames", mock.Anything, mock.Anything, mock.Anything).Return(scheduledGames()[:1], nil).Once()
	// Non-transient: a single attempt, no retries.
	source.On("FetchPeriod1Events", mock.Anything, "0022400561").
		Return(nil, errors.New("malformed payload")).Once()

	sink := memory.NewOpenerSink(nil)
	report, err := newTestPipeline(source, sink).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if report.Degraded != 1 {
		t.Fatalf("permanent failure must degrade to placeholder: %+v", report)
	}
}

func TestRunSinkWriteFailure(t *testing.T) {
	t.Parallel()

	source := sourcemock.NewGameSource(t)
	source.On("ListGames", mock.Anything, mock.Anything, mock.Anything).Return(scheduledGames()[:1], nil).Once()
	source.On("FetchPeriod1Events", mock.Anything, "0022400561").Return([]playbyplay.RawEvent{}, nil).Once()

	sink := openermock.NewSink(t)
	sink.On("ListKnownIDs", mock.Anything).Return(map[string]struct{}{}, nil).Once()
	sink.On("Append", mock.Anything, mock.Anything).Return(errors.New("sheet unavailable")).Times(3)

	pipeline := newTestPipeline(source, sink)
	pipeline.cfg.SinkWriteRetries = 3

	report, err := pipeline.Run(context.Background())
	if !errors.Is(err, ErrSinkWrite) {
		t.Fatalf("expected ErrSinkWrite, got %v", err)
	}
	if report.Unflushed != 1 || report.Appended != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestRunSinkReadFailureStillProcesses(t *testing.T) {
	t.Parallel()

	source := sourcemock.NewGameSource(t)
	source.On("ListGames", mock.Anything, mock.Anything, mock.Anything).Return(scheduledGames()[:1], nil).Once()
	source.On("FetchPeriod1Events", mock.Anything, "0022400561").Return([]playbyplay.RawEvent{}, nil).Once()

	sink := openermock.NewSink(t)
	sink.On("ListKnownIDs", mock.Anything).Return(nil, errors.New("read timeout")).Once()
	sink.On("Append", mock.Anything, mock.Anything).Return(nil).Once()

	report, err := newTestPipeline(source, sink).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if report.Appended != 1 {
		t.Fatalf("sink read failure must not abort the run: %+v", report)
	}
}
