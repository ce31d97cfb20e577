package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultMaxSize is the entry limit used when NewMemory is given a
// non-positive size.
const DefaultMaxSize = 1000

// Memory is a bounded in-memory Store with per-entry TTL and strict LRU
// eviction. Recency is a monotonically increasing counter bumped on every
// accepted access (Get hit or Set); eviction scans for the minimum
// counter, which is O(n) and fine at the intended scale of hundreds to
// low thousands of entries.
//
// A single mutex guards the maps and the counter, so concurrent callers
// see atomic get/set/evict sequences.
type Memory[V any] struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*Entry[V]
	recency map[string]uint64
	counter uint64

	// now is a hook for tests; defaults to time.Now.
	now func() time.Time
}

// NewMemory creates a memory store holding at most maxSize live entries.
func NewMemory[V any](maxSize int) *Memory[V] {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Memory[V]{
		maxSize: maxSize,
		entries: make(map[string]*Entry[V]),
		recency: make(map[string]uint64),
		now:     time.Now,
	}
}

// Get retrieves the value for key. An expired entry is removed and
// reported as a miss. A hit marks the key most recently used.
func (m *Memory[V]) Get(_ context.Context, key string) (V, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	entry, ok := m.entries[key]
	if !ok {
		misses.WithLabelValues(backendMemory).Inc()
		return zero, false, nil
	}
	if entry.ExpiredAt(m.now()) {
		m.remove(key)
		expirations.WithLabelValues(backendMemory).Inc()
		misses.WithLabelValues(backendMemory).Inc()
		return zero, false, nil
	}

	m.touch(key)
	hits.WithLabelValues(backendMemory).Inc()
	return entry.Value, true, nil
}

// Set stores value under key with the given TTL. Inserting a new key
// into a full store evicts the least recently used entry first.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists && len(m.entries) >= m.maxSize {
		m.evictOldest()
	}

	m.entries[key] = newEntry(value, m.now(), ttl)
	m.touch(key)
	entriesGauge.WithLabelValues(backendMemory).Set(float64(len(m.entries)))
	return nil
}

// Delete removes the entry for key; absent keys are a no-op.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.remove(key)
	return nil
}

// Clear removes all entries and resets the recency counter.
func (m *Memory[V]) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]*Entry[V])
	m.recency = make(map[string]uint64)
	m.counter = 0
	entriesGauge.WithLabelValues(backendMemory).Set(0)
	return nil
}

// Has reports whether a live entry exists for key. An expired entry is
// removed, same as Get, but Has does not refresh recency.
func (m *Memory[V]) Has(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	if entry.ExpiredAt(m.now()) {
		m.remove(key)
		expirations.WithLabelValues(backendMemory).Inc()
		return false, nil
	}
	return true, nil
}

// CleanupExpired removes every currently expired entry and returns the
// number removed. Intended for periodic maintenance; Get and Set never
// call it.
func (m *Memory[V]) CleanupExpired(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for key, entry := range m.entries {
		if entry.ExpiredAt(now) {
			m.remove(key)
			removed++
		}
	}
	if removed > 0 {
		expirations.WithLabelValues(backendMemory).Add(float64(removed))
	}
	return removed, nil
}

// Len returns the number of stored entries, expired ones included until
// something removes them.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

// Keys returns the stored keys in no particular order.
func (m *Memory[V]) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	return keys
}

// touch marks key most recently used. Callers hold the mutex.
func (m *Memory[V]) touch(key string) {
	m.counter++
	m.recency[key] = m.counter
}

// remove drops an entry and its recency record. Callers hold the mutex.
func (m *Memory[V]) remove(key string) {
	delete(m.entries, key)
	delete(m.recency, key)
	entriesGauge.WithLabelValues(backendMemory).Set(float64(len(m.entries)))
}

// evictOldest removes the entry with the smallest recency counter.
// Callers hold the mutex.
func (m *Memory[V]) evictOldest() {
	var (
		oldestKey string
		oldest    uint64
		found     bool
	)
	for key, seq := range m.recency {
		if !found || seq < oldest {
			oldestKey = key
			oldest = seq
			found = true
		}
	}
	if found {
		m.remove(oldestKey)
		evictions.WithLabelValues(backendMemory).Inc()
	}
}
