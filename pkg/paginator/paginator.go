// Package paginator provides the cache-augmented pagination engine:
// validation, cache lookup, slice computation, result assembly and cache
// population over fully materialized in-memory collections.
package paginator

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/turmfalke/pagekit/pkg/bounds"
	"github.com/turmfalke/pagekit/pkg/cache"
	"github.com/turmfalke/pagekit/pkg/logging"
)

// Prometheus metrics for pagination operations.
var (
	paginateRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagekit_paginate_requests_total",
		Help: "Total paginate calls by mode and result origin",
	}, []string{"mode", "origin"})

	paginateErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagekit_paginate_errors_total",
		Help: "Total paginate failures by error kind",
	}, []string{"kind"})

	paginateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pagekit_paginate_duration_seconds",
		Help:    "Paginate call duration in seconds",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
	})
)

// Metric label values.
const (
	modePaged = "paged"
	modeAll   = "all"

	originComputed = "computed"
	originCache    = "cache"
)

// Paginator is the pagination engine. Each call is independent; the only
// shared state is the result store, which any cache.Store implementation
// can back.
type Paginator[T any] struct {
	store    cache.Store[Result[T]]
	settings Settings
	logger   zerolog.Logger
}

// New creates an engine with the default in-memory TTL-LRU store sized
// by settings.CacheSize.
func New[T any](settings Settings) *Paginator[T] {
	settings = settings.withDefaults()
	return NewWithStore(settings, cache.NewMemory[Result[T]](settings.CacheSize), logging.NewLogger("paginator"))
}

// NewWithStore creates an engine around an injected store, e.g. a Redis
// backend shared between processes or a Noop store.
func NewWithStore[T any](settings Settings, store cache.Store[Result[T]], logger zerolog.Logger) *Paginator[T] {
	if store == nil {
		panic("store cannot be nil")
	}
	return &Paginator[T]{
		store:    store,
		settings: settings.withDefaults(),
		logger:   logger,
	}
}

// Paginate slices data according to cfg and returns one page.
//
// With NoPagination set the whole collection comes back as a single
// page. Otherwise the effective page is sliced out of data after
// validation; a page outside [1, totalPages] fails with a page-not-found
// error, except that an empty collection yields an empty page rather
// than an error. With EnableCache set the result is memoized under a
// fingerprint of data and the pagination parameters; cache failures are
// logged and never fail the call.
func (p *Paginator[T]) Paginate(ctx context.Context, data []T, cfg *Config) (*Result[T], error) {
	start := time.Now()
	defer func() {
		paginateDuration.Observe(time.Since(start).Seconds())
	}()

	if err := cfg.validate(p.settings); err != nil {
		paginateErrorsTotal.WithLabelValues(string(KindOf(err))).Inc()
		return nil, err
	}

	if cfg.NoPagination {
		return p.paginateAll(ctx, data, cfg)
	}
	return p.paginatePage(ctx, data, cfg)
}

// paginateAll implements return-all mode.
func (p *Paginator[T]) paginateAll(ctx context.Context, data []T, cfg *Config) (*Result[T], error) {
	fingerprint := bounds.Fingerprint(data, bounds.Key{All: true})

	if cfg.EnableCache {
		if cached, ok := p.lookup(ctx, fingerprint); ok {
			paginateRequestsTotal.WithLabelValues(modeAll, originCache).Inc()
			return cached, nil
		}
	}

	result := &Result[T]{
		Data: data,
		Meta: newAllMeta(len(data)),
	}

	if cfg.EnableCache {
		p.memoize(ctx, fingerprint, result, cfg.cacheTTL(p.settings))
	}

	paginateRequestsTotal.WithLabelValues(modeAll, originComputed).Inc()
	return result, nil
}

// paginatePage implements normal pagination.
func (p *Paginator[T]) paginatePage(ctx context.Context, data []T, cfg *Config) (*Result[T], error) {
	page := cfg.page()
	pageSize := cfg.pageSize(p.settings)

	var fingerprint string
	if cfg.EnableCache {
		fingerprint = bounds.Fingerprint(data, bounds.Key{Page: page, PageSize: pageSize})
		if cached, ok := p.lookup(ctx, fingerprint); ok {
			paginateRequestsTotal.WithLabelValues(modePaged, originCache).Inc()
			return cached, nil
		}
	}

	totalItems := len(data)
	totalPages := bounds.TotalPages(totalItems, pageSize)

	// An empty collection is not a page-not-found condition: it yields
	// an empty first page instead.
	if totalPages > 0 && !bounds.IsValidPage(page, totalPages) {
		paginateErrorsTotal.WithLabelValues(string(KindPageNotFound)).Inc()
		return nil, errPageNotFound(page, totalPages)
	}

	startIdx := bounds.StartIndex(page, pageSize)
	endIdx := bounds.EndIndex(page, pageSize, totalItems)

	pageData := make([]T, 0, endIdx-startIdx)
	if startIdx < totalItems {
		pageData = append(pageData, data[startIdx:endIdx]...)
	}

	result := &Result[T]{
		Data: pageData,
		Meta: newMeta(page, pageSize, totalItems),
	}

	if cfg.EnableCache {
		p.memoize(ctx, fingerprint, result, cfg.cacheTTL(p.settings))
	}

	paginateRequestsTotal.WithLabelValues(modePaged, originComputed).Inc()
	return result, nil
}

// lookup fetches a memoized result. Backend failures count as misses so
// a flaky cache never breaks pagination.
func (p *Paginator[T]) lookup(ctx context.Context, fingerprint string) (*Result[T], bool) {
	cached, ok, err := p.store.Get(ctx, fingerprint)
	if err != nil {
		cacheErr := errCache("get", err)
		p.logger.Warn().
			Err(cacheErr).
			Str("fingerprint", fingerprint).
			Msg("Cache lookup failed, recomputing page")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	// The stored flag is whatever the result carried when memoized;
	// anything served from the cache reports FromCache.
	cached.FromCache = true
	return &cached, true
}

// memoize stores a computed result. Failures are downgraded to warnings;
// the caller still gets the fresh result.
func (p *Paginator[T]) memoize(ctx context.Context, fingerprint string, result *Result[T], ttl time.Duration) {
	if err := p.store.Set(ctx, fingerprint, *result, ttl); err != nil {
		cacheErr := errCache("set", err)
		paginateErrorsTotal.WithLabelValues(string(KindCacheError)).Inc()
		p.logger.Warn().
			Err(cacheErr).
			Str("fingerprint", fingerprint).
			Dur("ttl", ttl).
			Msg("Failed to cache pagination result")
		return
	}

	p.logger.Debug().
		Str("fingerprint", fingerprint).
		Dur("ttl", ttl).
		Int("items", len(result.Data)).
		Msg("Cached pagination result")
}

// SimplePaginate paginates with plain positional arguments and engine
// defaults for everything else.
func (p *Paginator[T]) SimplePaginate(ctx context.Context, data []T, page, pageSize int, enableCache bool) (*Result[T], error) {
	return p.Paginate(ctx, data, &Config{
		Page:        Int(page),
		PageSize:    Int(pageSize),
		EnableCache: enableCache,
	})
}

// GetAllData returns the entire collection as a single page.
func (p *Paginator[T]) GetAllData(ctx context.Context, data []T, enableCache bool, ttl time.Duration) (*Result[T], error) {
	cfg := &Config{
		NoPagination: true,
		EnableCache:  enableCache,
	}
	if ttl > 0 {
		cfg.CacheTTL = TTL(ttl)
	}
	return p.Paginate(ctx, data, cfg)
}

// SmartPaginate returns everything when the collection is small enough
// and paginates otherwise. It is a config derivation, not a third mode:
// collections of up to maxItemsBeforePagination items take the
// return-all path.
func (p *Paginator[T]) SmartPaginate(ctx context.Context, data []T, maxItemsBeforePagination, pageSize, page int) (*Result[T], error) {
	return p.Paginate(ctx, data, &Config{
		Page:         Int(page),
		PageSize:     Int(pageSize),
		NoPagination: len(data) <= maxItemsBeforePagination,
	})
}

// GetAllPages computes every page of the collection sequentially, in
// page order, failing immediately if any page computation fails. An
// empty collection has no pages and yields an empty slice.
func (p *Paginator[T]) GetAllPages(ctx context.Context, data []T, pageSize int) ([]*Result[T], error) {
	totalPages := bounds.TotalPages(len(data), pageSize)

	results := make([]*Result[T], 0, totalPages)
	for page := 1; page <= totalPages; page++ {
		result, err := p.SimplePaginate(ctx, data, page, pageSize, false)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
