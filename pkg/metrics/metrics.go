// Package metrics provides the centralized Prometheus registry reference
// for pagekit. Metrics are defined in their owning packages (cache,
// paginator) to keep them next to the code they observe; this package
// documents the full catalog.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registerer used by pagekit.
// All metrics are automatically registered via promauto in their
// respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Cache Metrics (pkg/cache):
//   - pagekit_cache_hits_total{backend} (Counter): Cache hits by backend (memory, redis)
//   - pagekit_cache_misses_total{backend} (Counter): Cache misses by backend
//   - pagekit_cache_evictions_total{backend} (Counter): Entries evicted by the LRU policy
//   - pagekit_cache_expirations_total{backend} (Counter): Entries removed after TTL expiry
//   - pagekit_cache_entries{backend} (Gauge): Current live entry count
//   - pagekit_cache_errors_total{backend,operation} (Counter): Backend operation errors
//
// Pagination Metrics (pkg/paginator):
//   - pagekit_paginate_requests_total{mode,origin} (Counter): Paginate calls by mode
//     (paged, all) and result origin (computed, cache)
//   - pagekit_paginate_errors_total{kind} (Counter): Failures by error kind
//   - pagekit_paginate_duration_seconds (Histogram): Paginate call duration
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(pagekit_cache_hits_total[5m])) /
//   (sum(rate(pagekit_cache_hits_total[5m])) + sum(rate(pagekit_cache_misses_total[5m])))
//
//   # Eviction Pressure
//   rate(pagekit_cache_evictions_total[5m])
//
//   # Share of Requests Served From Cache
//   sum(rate(pagekit_paginate_requests_total{origin="cache"}[5m])) /
//   sum(rate(pagekit_paginate_requests_total[5m]))
//
//   # P95 Paginate Latency
//   histogram_quantile(0.95, rate(pagekit_paginate_duration_seconds_bucket[5m]))
