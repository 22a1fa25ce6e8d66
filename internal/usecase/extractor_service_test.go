package usecase

import (
	"testing"

	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/opener"
	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/playbyplay"
)

func TestExtractEmptySequenceYieldsSentinels(t *testing.T) {
	t.Parallel()

	record := NewExtractorService(nil).Extract(testGame(), nil)

	if record.GameID != "0022400561" || record.HomeTeam != "Miami Heat" || record.AwayTeam != "Chicago Bulls" {
		t.Fatalf("game identity not carried: %+v", record)
	}
	if record.TipWinner != opener.NoTip || record.TipLoser != opener.NoTip {
		t.Fatalf("tip sentinels: %q / %q", record.TipWinner, record.TipLoser)
	}
	if record.FirstShotShooter != opener.Unknown || record.SecondShotShooter != opener.NoShot {
		t.Fatalf("shooter sentinels: %q / %q", record.FirstShotShooter, record.SecondShotShooter)
	}
	if record.FirstShotType != playbyplay.ShotOther || record.SecondShotType != playbyplay.ShotOther {
		t.Fatalf("shot type sentinels: %q / %q", record.FirstShotType, record.SecondShotType)
	}
	if record.FirstShotTeam != "Miami Heat" {
		t.Fatalf("first shot team sentinel: %q", record.FirstShotTeam)
	}
	if record.FirstShotMade || record.SecondShotMade {
		t.Fatal("made flags must default to false")
	}
	if record.Degraded() {
		t.Fatal("sentinel record is still an extraction, not a placeholder")
	}
}

func TestExtractFullOpening(t *testing.T) {
	t.Parallel()

	events := []playbyplay.Event{
		{Kind: playbyplay.KindOther, Text: "Start of 1st Period"},
		{Kind: playbyplay.KindJumpBall, Text: "Jump Ball Adebayo vs. Vucevic (Butler gains possession)"},
		{Kind: playbyplay.KindShotMade, Text: "Butler Driving Layup (2 PTS)", Actor: "Butler", Team: "Miami Heat"},
		{Kind: playbyplay.KindShotMissed, Text: "MISS White 26' 3PT Jump Shot", Actor: "White", Team: "Chicago Bulls"},
		{Kind: playbyplay.KindShotMade, Text: "Adebayo Dunk (2 PTS)", Actor: "Adebayo", Team: "Miami Heat"},
	}

	record := NewExtractorService(nil).Extract(testGame(), events)

	if record.TipWinner != "Adebayo" || record.TipLoser != "Vucevic" {
		t.Fatalf("tip: %q over %q", record.TipWinner, record.TipLoser)
	}
	if record.FirstShotShooter != "Butler" || !record.FirstShotMade ||
		record.FirstShotType != playbyplay.ShotLayup || record.FirstShotTeam != "Miami Heat" {
		t.Fatalf("first shot: %+v", record)
	}
	if record.SecondShotShooter != "White" || record.SecondShotMade || record.SecondShotType != playbyplay.ShotThree {
		t.Fatalf("second shot: %+v", record)
	}
}

// The feed's array order decides "first", regardless of where the tip
// appears in it.
func TestExtractFollowsArrayOrder(t *testing.T) {
	t.Parallel()

	events := []playbyplay.Event{
		{Kind: playbyplay.KindShotMade, Text: "Jones layup", Actor: "Jones", Team: "Chicago Bulls"},
		{Kind: playbyplay.KindShotMissed, Text: "MISS T. Smith dunk", Actor: "T. Smith", Team: "Miami Heat"},
		{Kind: playbyplay.KindJumpBall, Text: "Jump Ball Adebayo vs. Vucevic"},
	}

	record := NewExtractorService(nil).Extract(testGame(), events)

	if record.FirstShotShooter != "Jones" || record.FirstShotTeam != "Chicago Bulls" {
		t.Fatalf("first shot must come from the first array element: %+v", record)
	}
	if record.SecondShotShooter != "T. Smith" {
		t.Fatalf("second shot: %q", record.SecondShotShooter)
	}
	if record.TipWinner != "Adebayo" {
		t.Fatalf("late jump ball must still decide the tip: %q", record.TipWinner)
	}
}

func TestExtractUnparseableTip(t *testing.T) {
	t.Parallel()

	events := []playbyplay.Event{
		{Kind: playbyplay.KindJumpBall, Text: "Opening tip-off", Actor: playbyplay.ActorUnknown},
	}

	record := NewExtractorService(nil).Extract(testGame(), events)
	if record.TipWinner != opener.Unknown || record.TipLoser != opener.Unknown {
		t.Fatalf("expected unknown tip actors, got %q / %q", record.TipWinner, record.TipLoser)
	}
}

func TestExtractIgnoresLaterTipsAndShots(t *testing.T) {
	t.Parallel()

	events := []playbyplay.Event{
		{Kind: playbyplay.KindJumpBall, Text: "Jump Ball Adebayo vs. Vucevic"},
		{Kind: playbyplay.KindShotMade, Text: "Butler layup", Actor: "Butler", Team: "Miami Heat"},
		{Kind: playbyplay.KindShotMissed, Text: "MISS White 3pt", Actor: "White", Team: "Chicago Bulls"},
		{Kind: playbyplay.KindJumpBall, Text: "Jump Ball Herro vs. Ball"},
		{Kind: playbyplay.KindShotMade, Text: "Herro dunk", Actor: "Herro", Team: "Miami Heat"},
	}

	record := NewExtractorService(nil).Extract(testGame(), events)
	if record.TipWinner != "Adebayo" {
		t.Fatalf("second jump ball must not override the tip: %q", record.TipWinner)
	}
	if record.SecondShotShooter != "White" {
		t.Fatalf("third shot must not override the second: %q", record.SecondShotShooter)
	}
}
