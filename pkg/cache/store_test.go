package cache

import (
	"context"
	"testing"
	"time"
)

// Every shipped backend must satisfy the Store contract; these
// assertions break the build if one drifts.
var (
	_ Store[int] = (*Memory[int])(nil)
	_ Store[int] = (*Redis[int])(nil)
	_ Store[int] = (*Noop[int])(nil)
)

// TestStore_Substitutable drives backends through the interface alone,
// the way the pagination engine consumes them.
func TestStore_Substitutable(t *testing.T) {
	ctx := context.Background()

	stores := map[string]Store[string]{
		"memory": NewMemory[string](10),
		"noop":   NewNoop[string](),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			if err := store.Set(ctx, "k", "v", time.Minute); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if _, _, err := store.Get(ctx, "k"); err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if _, err := store.Has(ctx, "k"); err != nil {
				t.Fatalf("Has failed: %v", err)
			}
			if err := store.Delete(ctx, "k"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if err := store.Clear(ctx); err != nil {
				t.Fatalf("Clear failed: %v", err)
			}
		})
	}
}

// TestStore_MissIsNotAnError pins the contract that absence comes back
// as a false flag with a nil error, never as an error value.
func TestStore_MissIsNotAnError(t *testing.T) {
	ctx := context.Background()

	stores := map[string]Store[string]{
		"memory": NewMemory[string](10),
		"noop":   NewNoop[string](),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			value, ok, err := store.Get(ctx, "absent")
			if err != nil {
				t.Fatalf("miss surfaced as error: %v", err)
			}
			if ok {
				t.Error("Get reported a hit for an absent key")
			}
			if value != "" {
				t.Errorf("miss returned non-zero value %q", value)
			}
		})
	}
}
