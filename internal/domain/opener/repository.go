package opener

import "context"

// Sink is the append-only record store. Append must be at-least-once; the
// pipeline's idempotence guarantee depends entirely on ListKnownIDs being
// accurate.
type Sink interface {
	ListKnownIDs(ctx context.Context) (map[string]struct{}, error)
	Append(ctx context.Context, records []Record) error
}
