package usecase

import (
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/game"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/opener"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/playbyplay"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/platform/logging"
)

// ExtractorService derives the tip-off and first-two-shots facts from a
// normalized period-1 sequence.
type ExtractorService struct {
	logger *logging.Logger
}

func NewExtractorService(logger *logging.Logger) *ExtractorService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ExtractorService{logger: logger}
}

// Extract is a single linear pass in sequence order: the first jump-ball
// event decides the tip, the first two made-or-missed events decide the
// shots. Missing facts land on their sentinels; an empty sequence is a valid
// game state, not an error.
func (s *ExtractorService) Extract(g game.Ref, events []playbyplay.Event) opener.Record {
	record := opener.Record{
		GameID:            g.ID,
		Date:              g.Date,
		HomeTeam:          g.HomeTeam,
		AwayTeam:          g.AwayTeam,
		TipWinner:         opener.NoTip,
		TipLoser:          opener.NoTip,
		FirstShotShooter:  opener.Unknown,
		FirstShotType:     playbyplay.ShotOther,
		FirstShotTeam:     g.HomeTeam,
		SecondShotShooter: opener.NoShot,
		SecondShotType:    playbyplay.ShotOther,
		Source:            opener.SourceExtracted,
	}

	tipSeen := false
	shots := 0
	for _, event := range events {
		switch event.Kind {
		case playbyplay.KindJumpBall:
			if tipSeen {
				continue
			}
			tipSeen = true
			if winner, loser, ok := playbyplay.ParseTip(event); ok {
				record.TipWinner = winner
				record.TipLoser = loser
			} else {
				// A tip happened but neither actor is recoverable.
				record.TipWinner = opener.Unknown
				record.TipLoser = opener.Unknown
			}
		case playbyplay.KindShotMade, playbyplay.KindShotMissed:
			if shots == 2 {
				continue
			}
			shots++
			made := event.Kind == playbyplay.KindShotMade
			shotType := playbyplay.ClassifyShotType(event.Text)
			if shots == 1 {
				record.FirstShotShooter = event.Actor
				record.FirstShotMade = made
				record.FirstShotType = shotType
				record.FirstShotTeam = event.Team
			} else {
				record.SecondShotShooter = event.Actor
				record.SecondShotMade = made
				record.SecondShotType = shotType
			}
		}
	}

	return record
}
