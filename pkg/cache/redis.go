package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a Redis instance. Entries are stored as
// JSON envelopes with a server-side TTL, so Redis drops them on its own;
// the expiry check on read only matters when clocks drift or an entry is
// read in the same millisecond it expires.
//
// LRU behavior is delegated to Redis itself (maxmemory-policy allkeys-lru
// on the server), which is why Redis carries no recency bookkeeping of
// its own.
type Redis[V any] struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed store using the given client.
func NewRedis[V any](client *redis.Client) *Redis[V] {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &Redis[V]{client: client}
}

// Get retrieves the value for key. Returns a miss for absent or expired
// entries.
func (r *Redis[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			misses.WithLabelValues(backendRedis).Inc()
			return zero, false, nil
		}
		operationErrors.WithLabelValues(backendRedis, "get").Inc()
		return zero, false, fmt.Errorf("redis get: %w", err)
	}

	var entry Entry[V]
	if err := json.Unmarshal(data, &entry); err != nil {
		operationErrors.WithLabelValues(backendRedis, "get").Inc()
		return zero, false, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}

	if entry.ExpiredAt(time.Now()) {
		_ = r.Delete(ctx, key)
		expirations.WithLabelValues(backendRedis).Inc()
		misses.WithLabelValues(backendRedis).Inc()
		return zero, false, nil
	}

	hits.WithLabelValues(backendRedis).Inc()
	return entry.Value, true, nil
}

// Set stores value under key; Redis expires the key after ttl.
func (r *Redis[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	if ttl <= 0 {
		// Nothing to store, the entry would be born stale.
		return nil
	}

	entry := newEntry(value, time.Now(), ttl)
	data, err := json.Marshal(entry)
	if err != nil {
		operationErrors.WithLabelValues(backendRedis, "set").Inc()
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		operationErrors.WithLabelValues(backendRedis, "set").Inc()
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes the entry for key.
func (r *Redis[V]) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		operationErrors.WithLabelValues(backendRedis, "delete").Inc()
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Clear removes all keys in the current database.
func (r *Redis[V]) Clear(ctx context.Context) error {
	if err := r.client.FlushDB(ctx).Err(); err != nil {
		operationErrors.WithLabelValues(backendRedis, "clear").Inc()
		return fmt.Errorf("redis flushdb: %w", err)
	}
	return nil
}

// Has reports whether a live entry exists for key.
func (r *Redis[V]) Has(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		operationErrors.WithLabelValues(backendRedis, "has").Inc()
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}
