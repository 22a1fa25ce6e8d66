package game

import (
	"testing"
	"time"
)

func TestRefCompleted(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	ref := Ref{ID: "0022400561", Date: day}

	if ref.Completed(day.Add(23 * time.Hour)) {
		t.Fatal("game day not yet elapsed, expected incomplete")
	}
	if !ref.Completed(day.Add(24 * time.Hour)) {
		t.Fatal("expected complete once the full day has elapsed")
	}
	if (Ref{ID: "x"}).Completed(day) {
		t.Fatal("zero date must never report complete")
	}
}

func TestDateOnly(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("EST", -5*3600)
	got := DateOnly(time.Date(2025, 1, 15, 22, 30, 0, 0, loc))
	want := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestNormalizeTeamName(t *testing.T) {
	t.Parallel()

	if got := NormalizeTeamName("  Miami   Heat "); got != "Miami Heat" {
		t.Fatalf("got %q", got)
	}
}
