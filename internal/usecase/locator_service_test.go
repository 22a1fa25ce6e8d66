package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/game"
	sourcemock "github.com/barnanst-collab/nba-game-openers-tracker/internal/mocks/usecase"
)

var (
	testFallbackStart = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	testFallbackEnd   = time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
)

func fixedNow() time.Time {
	return time.Date(2025, 1, 17, 12, 0, 0, 0, time.UTC)
}

func TestLocatorFiltersKnownAndUnfinishedGames(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	refs := []game.Ref{
		{ID: "001", Date: day, HomeTeam: "Miami Heat", AwayTeam: "Chicago Bulls"},
		{ID: "002", Date: day},
		{ID: "003", Date: fixedNow()}, // same day as "now": not yet complete
	}

	source := sourcemock.NewGameSource(t)
	source.On("ListGames", mock.Anything, mock.Anything, mock.Anything).Return(refs, nil).Once()

	locator := NewLocatorService(source, nil, 10, testFallbackStart, testFallbackEnd)
	locator.now = fixedNow

	got := locator.Locate(context.Background(), day, fixedNow(), map[string]struct{}{"002": {}})
	if len(got) != 1 || got[0].ID != "001" {
		t.Fatalf("expected only game 001, got %+v", got)
	}
}

func TestLocatorCapsBatchInListOrder(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	refs := []game.Ref{
		{ID: "001", Date: day},
		{ID: "002", Date: day},
		{ID: "003", Date: day},
	}

	source := sourcemock.NewGameSource(t)
	source.On("ListGames", mock.Anything, mock.Anything, mock.Anything).Return(refs, nil).Once()

	locator := NewLocatorService(source, nil, 2, testFallbackStart, testFallbackEnd)
	locator.now = fixedNow

	got := locator.Locate(context.Background(), day, fixedNow(), nil)
	if len(got) != 2 || got[0].ID != "001" || got[1].ID != "002" {
		t.Fatalf("expected first two games in list order, got %+v", got)
	}
}

func TestLocatorFallsBackToFixedWindow(t *testing.T) {
	t.Parallel()

	since := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
	until := fixedNow()

	source := sourcemock.NewGameSource(t)
	source.On("ListGames", mock.Anything, since, until).Return(nil, errors.New("listing down")).Once()
	source.On("ListGames", mock.Anything, testFallbackStart, testFallbackEnd).
		Return([]game.Ref{{ID: "777", Date: testFallbackStart}}, nil).Once()

	locator := NewLocatorService(source, nil, 10, testFallbackStart, testFallbackEnd)
	locator.now = fixedNow

	got := locator.Locate(context.Background(), since, until, nil)
	if len(got) != 1 || got[0].ID != "777" {
		t.Fatalf("expected fallback window game, got %+v", got)
	}
}

func TestLocatorDegradesToSyntheticGame(t *testing.T) {
	t.Parallel()

	source := sourcemock.NewGameSource(t)
	source.On("ListGames", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("listing down")).Twice()

	locator := NewLocatorService(source, nil, 10, testFallbackStart, testFallbackEnd)
	locator.now = fixedNow

	since := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	got := locator.Locate(context.Background(), since, fixedNow(), nil)
	if len(got) != 1 {
		t.Fatalf("expected exactly one synthetic game, got %+v", got)
	}
	if got[0].ID != SyntheticGameID {
		t.Fatalf("expected synthetic id, got %q", got[0].ID)
	}
	if got[0].HomeTeam != "Miami Heat" || got[0].AwayTeam != "Chicago Bulls" {
		t.Fatalf("unexpected synthetic matchup: %+v", got[0])
	}
}
