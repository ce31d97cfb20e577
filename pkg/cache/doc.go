// Package cache provides the bounded TTL-LRU result cache behind the
// pagination engine, plus alternative Store backends.
//
// Three implementations of the Store contract ship with the package:
//
//   - Memory: bounded in-memory store with per-entry TTL and strict LRU
//     eviction. Single-process use; one mutex guards all state.
//   - Redis: remote backend for deployments that share results between
//     processes. TTL is enforced server-side.
//   - Noop: null object for disabled caching.
//
// # Basic Usage
//
//	store := cache.NewMemory[string](500)
//
//	_ = store.Set(ctx, "key", "value", 5*time.Minute)
//
//	value, ok, err := store.Get(ctx, "key")
//	if err != nil {
//		// backend failure, not a miss
//	}
//	if !ok {
//		// miss: absent or expired
//	}
//
// # Expiry Semantics
//
// Expiry is lazy: Get and Has remove a stale entry when they touch it,
// and CleanupExpired (Memory only) sweeps the whole store on demand.
// Nothing runs in the background.
//
// # Recency Semantics
//
// Get and Set count as accesses and refresh an entry's recency; Has does
// not, it only performs the expiry check. When a Set would exceed the
// configured capacity with a new key, the entry with the oldest access
// is evicted first.
//
// # Metrics
//
// The package exports Prometheus metrics:
//
//   - pagekit_cache_hits_total{backend} / pagekit_cache_misses_total{backend}
//   - pagekit_cache_evictions_total{backend}
//   - pagekit_cache_expirations_total{backend}
//   - pagekit_cache_entries{backend}
//   - pagekit_cache_errors_total{backend,operation}
package cache
