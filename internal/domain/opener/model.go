package opener

import (
	"strconv"
	"time"
)

// Sentinels for the not-found cases. A Record is always fully populated.
const (
	NoTip   = "No Tip"
	NoShot  = "No Shot"
	Unknown = "Unknown"
)

// Source labels distinguish real extractions from manufactured placeholders.
const (
	SourceExtracted   = "extracted"
	SourcePlaceholder = "placeholder"
)

// Record is the unit persisted to the sink: one row per game per run
// attempt, append-only, never patched.
type Record struct {
	GameID            string
	Date              time.Time
	HomeTeam          string
	AwayTeam          string
	TipWinner         string
	TipLoser          string
	FirstShotShooter  string
	FirstShotMade     bool
	FirstShotType     string
	FirstShotTeam     string
	SecondShotShooter string
	SecondShotMade    bool
	SecondShotType    string
	Source            string
}

// Degraded reports whether the record was manufactured by the placeholder
// policy rather than extracted from play-by-play data.
func (r Record) Degraded() bool {
	return r.Source == SourcePlaceholder
}

// Columns is the sink header. The sink is schema-less and order-dependent,
// so column order is part of the contract.
func Columns() []string {
	return []string{
		"Game_ID",
		"Date",
		"Home_Team",
		"Away_Team",
		"Tip_Winner",
		"Tip_Loser",
		"First_Shot_Shooter",
		"First_Shot_Made",
		"First_Shot_Type",
		"First_Shot_Team",
		"Second_Shot_Shooter",
		"Second_Shot_Made",
		"Second_Shot_Type",
	}
}

// Row renders the record in Columns order.
func (r Record) Row() []string {
	return []string{
		r.GameID,
		r.Date.Format("2006-01-02"),
		r.HomeTeam,
		r.AwayTeam,
		r.TipWinner,
		r.TipLoser,
		r.FirstShotShooter,
		strconv.FormatBool(r.FirstShotMade),
		r.FirstShotType,
		r.FirstShotTeam,
		r.SecondShotShooter,
		strconv.FormatBool(r.SecondShotMade),
		r.SecondShotType,
	}
}
