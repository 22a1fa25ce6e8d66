package usecase

import (
	"context"

	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/game"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/notables"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/opener"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/playbyplay"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/platform/logging"
)

// AssemblerService turns an extraction result, or its absence, into exactly
// one fully populated record per attempted game.
type AssemblerService struct {
	notables notables.Repository
	logger   *logging.Logger
}

func NewAssemblerService(notablesRepo notables.Repository, logger *logging.Logger) *AssemblerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AssemblerService{notables: notablesRepo, logger: logger}
}

// Assemble wraps a successful extraction unchanged. A nil extraction means
// the fetch failed permanently; the record is then manufactured from the
// notable-player table and labeled as a placeholder so downstream readers
// can tell it apart from real data.
func (s *AssemblerService) Assemble(ctx context.Context, g game.Ref, extracted *opener.Record) opener.Record {
	ctx, span := startPipelineSpan(ctx, "usecase.AssemblerService.Assemble")
	defer span.End()

	if extracted != nil {
		return *extracted
	}

	s.logger.WarnContext(ctx, "assembling placeholder record", "game_id", g.ID,
		"home_team", g.HomeTeam, "away_team", g.AwayTeam)

	home := s.lookup(ctx, g.HomeTeam)
	away := s.lookup(ctx, g.AwayTeam)

	return opener.Record{
		GameID:   g.ID,
		Date:     g.Date,
		HomeTeam: g.HomeTeam,
		AwayTeam: g.AwayTeam,
		// Assumed values: the home center wins the tip, the home scorer takes
		// and makes a layup, the away scorer misses a three. Plausible but
		// fictitious, hence the placeholder label.
		TipWinner:         home.Center,
		TipLoser:          away.Center,
		FirstShotShooter:  home.Scorer,
		FirstShotMade:     true,
		FirstShotType:     playbyplay.ShotLayup,
		FirstShotTeam:     g.HomeTeam,
		SecondShotShooter: away.Scorer,
		SecondShotMade:    false,
		SecondShotType:    playbyplay.ShotThree,
		Source:            opener.SourcePlaceholder,
	}
}

func (s *AssemblerService) lookup(ctx context.Context, team string) notables.Entry {
	fallback := notables.Entry{Team: team, Center: opener.Unknown, Scorer: opener.Unknown}
	if s.notables == nil {
		return fallback
	}

	entry, found, err := s.notables.GetByTeam(ctx, team)
	if err != nil {
		s.logger.WarnContext(ctx, "notable player lookup failed", "team", team, "error", err)
		return fallback
	}
	if !found {
		return fallback
	}
	return entry
}
