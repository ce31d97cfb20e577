package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Backend label values used by the metrics below.
const (
	backendMemory = "memory"
	backendRedis  = "redis"
)

var (
	// hits tracks cache hits by backend.
	hits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagekit_cache_hits_total",
			Help: "Total number of pagination cache hits",
		},
		[]string{"backend"},
	)

	// misses tracks cache misses by backend.
	misses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagekit_cache_misses_total",
			Help: "Total number of pagination cache misses",
		},
		[]string{"backend"},
	)

	// evictions tracks LRU evictions by backend.
	evictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagekit_cache_evictions_total",
			Help: "Total number of entries evicted by the LRU policy",
		},
		[]string{"backend"},
	)

	// expirations tracks entries removed because their TTL elapsed.
	expirations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagekit_cache_expirations_total",
			Help: "Total number of entries removed after TTL expiry",
		},
		[]string{"backend"},
	)

	// entriesGauge tracks the current number of live entries by backend.
	entriesGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pagekit_cache_entries",
			Help: "Current number of entries held by the cache",
		},
		[]string{"backend"},
	)

	// operationErrors tracks backend failures by operation.
	operationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagekit_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"backend", "operation"},
	)
)
