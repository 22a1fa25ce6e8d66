package notables

import "context"

// Repository exposes notable-player lookups by team name.
type Repository interface {
	GetByTeam(ctx context.Context, team string) (Entry, bool, error)
}
