package cache

import (
	"context"
	"time"
)

// Noop is the null-object Store used when caching is disabled: every
// lookup misses and every write is discarded. It lets callers keep a
// single code path instead of branching on "cache enabled".
type Noop[V any] struct{}

// NewNoop creates a store that never caches anything.
func NewNoop[V any]() *Noop[V] {
	return &Noop[V]{}
}

func (*Noop[V]) Get(context.Context, string) (V, bool, error) {
	var zero V
	return zero, false, nil
}

func (*Noop[V]) Set(context.Context, string, V, time.Duration) error { return nil }

func (*Noop[V]) Delete(context.Context, string) error { return nil }

func (*Noop[V]) Clear(context.Context) error { return nil }

func (*Noop[V]) Has(context.Context, string) (bool, error) { return false, nil }
