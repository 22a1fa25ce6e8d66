package memory

import (
	"context"
	"sync"

	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/game"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/notables"
)

// NotablesRepository serves the static notable-player table, keyed by
// normalized team name.
type NotablesRepository struct {
	mu      sync.RWMutex
	entries map[string]notables.Entry
}

func NewNotablesRepository(entries []notables.Entry) *NotablesRepository {
	byTeam := make(map[string]notables.Entry, len(entries))
	for _, entry := range entries {
		byTeam[game.NormalizeTeamName(entry.Team)] = entry
	}
	return &NotablesRepository{entries: byTeam}
}

func (r *NotablesRepository) GetByTeam(_ context.Context, team string) (notables.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, found := r.entries[game.NormalizeTeamName(team)]
	return entry, found, nil
}
