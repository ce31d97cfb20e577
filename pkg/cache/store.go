package cache

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidEntry indicates a stored entry could not be decoded.
var ErrInvalidEntry = errors.New("invalid cache entry")

// Store is the narrow capability contract the pagination engine depends
// on. Any conforming backend (in-memory, Redis, or a null object) can be
// substituted without changing the engine.
//
// All methods take a context so that remote backends can perform I/O;
// the in-memory implementation ignores it. Get returns (zero, false, nil)
// on a miss; errors are reserved for backend failures, never for absence.
type Store[V any] interface {
	// Get retrieves the value for key. An expired entry is treated as
	// absent and removed. A hit marks the key most recently used.
	Get(ctx context.Context, key string) (V, bool, error)

	// Set stores value under key with the given TTL, evicting the least
	// recently used entry if the backend is at capacity.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Delete removes the entry for key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// Has reports whether a live entry exists for key. Like Get it
	// removes an expired entry, but it does not refresh recency.
	Has(ctx context.Context, key string) (bool, error)
}
