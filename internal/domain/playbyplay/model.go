package playbyplay

import (
	"regexp"
	"strings"
)

// Kind classifies what a period-1 event means to opener extraction.
type Kind string

const (
	KindJumpBall   Kind = "JUMP_BALL"
	KindShotMade   Kind = "SHOT_MADE"
	KindShotMissed Kind = "SHOT_MISSED"
	KindOther      Kind = "OTHER"
)

// Shot types, ordered by classification priority. Dunk is checked before the
// generic shot terms so "dunk shot" never falls through to Other.
const (
	ShotDunk      = "Dunk"
	ShotLayup     = "Layup"
	ShotFreeThrow = "Free Throw"
	ShotThree     = "3pt"
	ShotOther     = "Other"
)

// ActorUnknown is the sentinel for events whose actor cannot be determined.
const ActorUnknown = "Unknown"

// Provider event-type codes shared by the stats-table feeds.
const (
	TypeCodeShotMade   = 1
	TypeCodeShotMissed = 2
	TypeCodeFreeThrow  = 3
	TypeCodeJumpBall   = 10
)

// RawEvent is the provider-agnostic superset of one play record. Providers
// populate different subsets: some carry a numeric type code and split
// home/visitor descriptions, others carry a free-text type with explicit
// player, made and team fields.
type RawEvent struct {
	Period             int
	TypeCode           int
	TypeText           string
	HomeDescription    string
	VisitorDescription string
	Description        string
	Player             string
	TeamID             string
	Made               *bool
}

// Text returns the best available description for the event.
func (e RawEvent) Text() string {
	for _, candidate := range []string{e.HomeDescription, e.VisitorDescription, e.Description} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// Event is one normalized period-1 record. SequenceIndex reflects the event's
// position within the period as given by the feed; the feed's order is
// authoritative and there is no independent clock to resolve ties.
type Event struct {
	Period        int
	SequenceIndex int
	Text          string
	Kind          Kind
	Actor         string
	TeamID        string
	Team          string
}

var (
	// jumpBallRegex deliberately requires the full phrase: a bare "jump"
	// or "tip" would also match jump shots and tip-ins.
	jumpBallRegex = regexp.MustCompile(`(?i)\b(jump\s*ball|tip[\s-]?off|opening tip)\b`)
	missRegex     = regexp.MustCompile(`(?i)\bmiss`)
	shotTermRegex = regexp.MustCompile(`(?i)\b(shot|layup|dunk|free throw|3pt)\b`)

	// tipRegex parses "Jump Ball T. Smith vs. J. Doe" into winner and loser.
	tipRegex       = regexp.MustCompile(`Jump Ball (\w+\.?\s*\w*) vs\. (\w+\.?\s*\w*)`)
	tipWinnerRegex = regexp.MustCompile(`Jump Ball (\w+\.?\s*\w*)`)

	// leadingNameRegex captures the proper-noun-like prefix of a description:
	// an abbreviated first initial plus surname, or a bare surname.
	leadingNameRegex = regexp.MustCompile(`^(\w+\.\s*\w+\.?|\w+)`)

	// missPrefixRegex strips the "MISS " marker so the shooter's name is the
	// leading token again.
	missPrefixRegex = regexp.MustCompile(`(?i)^miss(ed)?\s+`)
)

// Classify derives the event kind from whichever vocabulary the provider
// populated: explicit type codes and made flags first, keywords last.
func Classify(e RawEvent) Kind {
	text := e.Text()

	switch e.TypeCode {
	case TypeCodeJumpBall:
		return KindJumpBall
	case TypeCodeShotMade:
		return KindShotMade
	case TypeCodeShotMissed:
		return KindShotMissed
	case TypeCodeFreeThrow:
		if missRegex.MatchString(text) {
			return KindShotMissed
		}
		return KindShotMade
	}

	if jumpBallRegex.MatchString(e.TypeText) || jumpBallRegex.MatchString(text) {
		return KindJumpBall
	}

	if e.Made != nil && (shotTermRegex.MatchString(text) || strings.TrimSpace(e.TypeText) != "") {
		if *e.Made {
			return KindShotMade
		}
		return KindShotMissed
	}

	if shotTermRegex.MatchString(text) {
		if missRegex.MatchString(text) {
			return KindShotMissed
		}
		return KindShotMade
	}

	return KindOther
}

// ClassifyShotType picks the shot type from the description with first
// keyword match winning: Dunk > Layup > Free Throw > 3pt > Other.
func ClassifyShotType(text string) string {
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "dunk"):
		return ShotDunk
	case strings.Contains(lowered, "layup"):
		return ShotLayup
	case strings.Contains(lowered, "free throw"):
		return ShotFreeThrow
	case strings.Contains(lowered, "3pt"):
		return ShotThree
	default:
		return ShotOther
	}
}

// ExtractActor prefers the provider's explicit player field and falls back to
// the leading name prefix of the description.
func ExtractActor(e RawEvent) string {
	if player := strings.TrimSpace(e.Player); player != "" {
		return player
	}
	text := missPrefixRegex.ReplaceAllString(e.Text(), "")
	if match := leadingNameRegex.FindStringSubmatch(text); match != nil {
		return strings.TrimSpace(match[1])
	}
	return ActorUnknown
}

// ParseTip extracts the jump-ball winner and loser from a normalized event.
// A partial match yields the one known actor as winner and Unknown as loser.
func ParseTip(e Event) (winner, loser string, ok bool) {
	if match := tipRegex.FindStringSubmatch(e.Text); match != nil {
		winner = strings.TrimSpace(match[1])
		loser = strings.TrimSpace(match[2])
		if winner != "" && loser != "" {
			return winner, loser, true
		}
	}
	if match := tipWinnerRegex.FindStringSubmatch(e.Text); match != nil {
		if winner = strings.TrimSpace(match[1]); winner != "" {
			return winner, ActorUnknown, true
		}
	}
	if e.Actor != "" && e.Actor != ActorUnknown {
		return e.Actor, ActorUnknown, true
	}
	return "", "", false
}
