// Package testutil provides shared test fixtures for pagekit.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Item is a sample record used by tests and the demo server.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Items generates n sequential items with 1-based IDs.
func Items(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: i + 1, Name: fmt.Sprintf("item-%d", i+1)}
	}
	return items
}

// ErrStoreDown is the failure FailingStore reports.
var ErrStoreDown = errors.New("store down")

// FailingStore is a cache.Store whose operations fail on demand. It
// tracks call counts so tests can assert the engine actually touched the
// cache.
type FailingStore[V any] struct {
	mu sync.Mutex

	// FailGet and FailSet toggle failures per operation.
	FailGet bool
	FailSet bool

	// Gets and Sets count invocations.
	Gets int
	Sets int

	values map[string]V
}

// NewFailingStore creates a store with all operations healthy.
func NewFailingStore[V any]() *FailingStore[V] {
	return &FailingStore[V]{values: make(map[string]V)}
}

func (s *FailingStore[V]) Get(_ context.Context, key string) (V, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Gets++
	var zero V
	if s.FailGet {
		return zero, false, ErrStoreDown
	}
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *FailingStore[V]) Set(_ context.Context, key string, value V, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Sets++
	if s.FailSet {
		return ErrStoreDown
	}
	s.values[key] = value
	return nil
}

func (s *FailingStore[V]) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *FailingStore[V]) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]V)
	return nil
}

func (s *FailingStore[V]) Has(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.values[key]
	return ok, nil
}
