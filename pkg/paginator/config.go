package paginator

import "time"

// Literal defaults applied by the engine when the caller leaves the
// corresponding Config or Settings field unset.
const (
	DefaultPageSize    = 10
	DefaultMaxPageSize = 100
	DefaultCacheTTL    = 5 * time.Minute
)

// Settings is the engine-level configuration passed to the constructor.
// The zero value of any field falls back to the package defaults above.
type Settings struct {
	// DefaultPageSize is used when a Config omits PageSize.
	DefaultPageSize int

	// MaxPageSize bounds explicit page sizes when a Config omits
	// MaxPageSize.
	MaxPageSize int

	// CacheTTL is the entry lifetime used when a Config omits CacheTTL.
	CacheTTL time.Duration

	// CacheSize is the maximum entry count of the default memory store.
	// Ignored when the engine is built around an injected store.
	CacheSize int
}

// DefaultSettings returns the stock engine configuration.
func DefaultSettings() Settings {
	return Settings{
		DefaultPageSize: DefaultPageSize,
		MaxPageSize:     DefaultMaxPageSize,
		CacheTTL:        DefaultCacheTTL,
		CacheSize:       1000,
	}
}

// withDefaults fills unset fields with the package defaults.
func (s Settings) withDefaults() Settings {
	if s.DefaultPageSize <= 0 {
		s.DefaultPageSize = DefaultPageSize
	}
	if s.MaxPageSize <= 0 {
		s.MaxPageSize = DefaultMaxPageSize
	}
	if s.CacheTTL <= 0 {
		s.CacheTTL = DefaultCacheTTL
	}
	if s.CacheSize <= 0 {
		s.CacheSize = 1000
	}
	return s
}

// Config carries the per-call pagination parameters. Optional fields are
// pointers so that an explicit zero is distinguishable from absent: an
// explicit PageSize of 0 is rejected even though the default would have
// been valid.
type Config struct {
	// Page is the 1-based page number. Defaults to 1.
	Page *int

	// PageSize is the number of items per page. Defaults to the engine's
	// DefaultPageSize.
	PageSize *int

	// MaxPageSize overrides the engine's maximum page size for this call.
	MaxPageSize *int

	// EnableCache turns result memoization on for this call.
	EnableCache bool

	// CacheTTL overrides the engine's entry lifetime for this call.
	// Must not be negative.
	CacheTTL *time.Duration

	// NoPagination switches to return-all mode: the whole collection
	// comes back as a single page.
	NoPagination bool
}

// Int returns a pointer to v, for building Config literals.
func Int(v int) *int { return &v }

// TTL returns a pointer to d, for building Config literals.
func TTL(d time.Duration) *time.Duration { return &d }

// validate checks the effective per-call values against the engine
// settings. It runs before any cache or slicing work.
func (c *Config) validate(settings Settings) error {
	if c == nil {
		return errInvalidConfig("pagination config is required")
	}

	page := 1
	if c.Page != nil {
		page = *c.Page
	}
	if page < 1 {
		return errInvalidConfig("page must be a positive integer")
	}

	maxPageSize := settings.MaxPageSize
	if c.MaxPageSize != nil {
		maxPageSize = *c.MaxPageSize
	}

	pageSize := settings.DefaultPageSize
	if c.PageSize != nil {
		pageSize = *c.PageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return errInvalidPageSize(pageSize, maxPageSize)
	}

	if c.CacheTTL != nil && *c.CacheTTL < 0 {
		return errInvalidConfig("cache TTL must not be negative")
	}

	return nil
}

// page returns the effective page number.
func (c *Config) page() int {
	if c.Page != nil {
		return *c.Page
	}
	return 1
}

// pageSize returns the effective page size.
func (c *Config) pageSize(settings Settings) int {
	if c.PageSize != nil {
		return *c.PageSize
	}
	return settings.DefaultPageSize
}

// cacheTTL returns the effective entry lifetime.
func (c *Config) cacheTTL(settings Settings) time.Duration {
	if c.CacheTTL != nil {
		return *c.CacheTTL
	}
	return settings.CacheTTL
}
