package game

import (
	"strings"
	"time"
)

// Ref identifies one scheduled game as reported by a provider.
// Identity is ID; a Ref is immutable once fetched for a run.
type Ref struct {
	ID         string
	Date       time.Time
	HomeTeam   string
	AwayTeam   string
	HomeTeamID string
}

// Completed reports whether the game day has fully elapsed. Providers do not
// expose a reliable final-whistle timestamp, so start-of-day plus one day is
// the completeness proxy.
func (r Ref) Completed(now time.Time) bool {
	if r.Date.IsZero() {
		return false
	}
	end := r.Date.Add(24 * time.Hour)
	return !now.Before(end)
}

// DateOnly truncates a timestamp to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func NormalizeTeamName(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
