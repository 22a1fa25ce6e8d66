package usecase

import (
	"strings"

	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/game"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/playbyplay"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/platform/logging"
)

// NormalizerService converts a provider event collection into the ordered,
// provider-agnostic period-1 sequence.
type NormalizerService struct {
	logger *logging.Logger
}

func NewNormalizerService(logger *logging.Logger) *NormalizerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &NormalizerService{logger: logger}
}

// Normalize keeps period-1 events in their original feed order and assigns
// sequence indexes from that order. The feed's order is authoritative; events
// are never reordered. An empty or malformed collection yields an empty
// sequence, not an error.
func (s *NormalizerService) Normalize(g game.Ref, raws []playbyplay.RawEvent) []playbyplay.Event {
	out := make([]playbyplay.Event, 0, len(raws))
	for _, raw := range raws {
		if raw.Period != 1 {
			continue
		}

		event := playbyplay.Event{
			Period:        1,
			SequenceIndex: len(out),
			Text:          raw.Text(),
			Kind:          playbyplay.Classify(raw),
			Actor:         playbyplay.ExtractActor(raw),
			TeamID:        strings.TrimSpace(raw.TeamID),
			Team:          attributeTeam(g, raw),
		}
		out = append(out, event)
	}
	return out
}

// attributeTeam maps the event to a team name: an explicit team id matched
// against the game's home team id wins, otherwise the populated description
// side decides.
func attributeTeam(g game.Ref, raw playbyplay.RawEvent) string {
	if teamID := strings.TrimSpace(raw.TeamID); teamID != "" && g.HomeTeamID != "" {
		if teamID == g.HomeTeamID {
			return g.HomeTeam
		}
		return g.AwayTeam
	}
	if strings.TrimSpace(raw.HomeDescription) != "" {
		return g.HomeTeam
	}
	if strings.TrimSpace(raw.VisitorDescription) != "" {
		return g.AwayTeam
	}
	return g.HomeTeam
}
