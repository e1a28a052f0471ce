package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers processed webhook event ids so replayed
// deliveries are applied at most once. Implementations exist over
// Redis, the database and an in-process map.
type IdempotencyStore interface {
	// MarkProcessed atomically claims an event id for ttl. The first
	// caller gets true; later callers get false until the claim expires.
	MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error)

	// IsProcessed reports whether the event id holds a live claim.
	IsProcessed(ctx context.Context, eventID string) (bool, error)

	// Release drops the claim on an event id so a redelivery can claim
	// it again. Releasing an unclaimed id is not an error.
	Release(ctx context.Context, eventID string) error

	Close() error
}
