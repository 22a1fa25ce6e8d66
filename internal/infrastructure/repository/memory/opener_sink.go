package memory

import (
	"context"
	"sync"

	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/opener"
)

// OpenerSink is an in-memory, append-only record store. It backs tests and
// dry runs where no external sink is configured.
type OpenerSink struct {
	mu       sync.RWMutex
	known    map[string]struct{}
	appended []opener.Record
}

func NewOpenerSink(knownIDs []string) *OpenerSink {
	known := make(map[string]struct{}, len(knownIDs))
	for _, id := range knownIDs {
		known[id] = struct{}{}
	}
	return &OpenerSink{known: known}
}

func (s *OpenerSink) ListKnownIDs(_ context.Context) (map[string]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]struct{}, len(s.known))
	for id := range s.known {
		out[id] = struct{}{}
	}
	return out, nil
}

func (s *OpenerSink) Append(_ context.Context, records []opener.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range records {
		s.appended = append(s.appended, record)
		s.known[record.GameID] = struct{}{}
	}
	return nil
}

// Appended returns a copy of everything written so far.
func (s *OpenerSink) Appended() []opener.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]opener.Record, len(s.appended))
	copy(out, s.appended)
	return out
}
