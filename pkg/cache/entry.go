package cache

import "time"

// Entry wraps a cached value with its lifetime bookkeeping. The memory
// store keeps entries directly; the Redis store serializes them as a JSON
// envelope so that CreatedAt survives the round-trip.
type Entry[V any] struct {
	// Value is the cached payload.
	Value V `json:"value"`

	// CreatedAt is when the entry was stored.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is when the entry becomes stale.
	ExpiresAt time.Time `json:"expires_at"`
}

// newEntry builds an entry expiring ttl after now.
func newEntry[V any](value V, now time.Time, ttl time.Duration) *Entry[V] {
	return &Entry[V]{
		Value:     value,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// ExpiredAt reports whether the entry is stale at the given instant.
// An entry is live up to and including its exact expiry time.
func (e *Entry[V]) ExpiredAt(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

// TTL returns the remaining lifetime measured from now, or 0 if the
// entry is already stale.
func (e *Entry[V]) TTL(now time.Time) time.Duration {
	ttl := e.ExpiresAt.Sub(now)
	if ttl < 0 {
		return 0
	}
	return ttl
}
