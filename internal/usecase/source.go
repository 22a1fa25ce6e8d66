package usecase

import (
	"context"
	"time"

	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/game"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/playbyplay"
)

// GameSource is the provider abstraction. Concrete adapters differ in
// authentication, pagination and raw schema; all of that variance stays
// behind this interface.
//
// FetchPeriod1Events must return an empty slice with a nil error for a
// definitively empty feed, and wrap retryable failures with
// ErrTransientFetch.
type GameSource interface {
	ListGames(ctx context.Context, start, end time.Time) ([]game.Ref, error)
	FetchPeriod1Events(ctx context.Context, gameID string) ([]playbyplay.RawEvent, error)
}
