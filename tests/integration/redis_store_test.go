package integration

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/turmfalke/pagekit/internal/testutil"
	"github.com/turmfalke/pagekit/pkg/cache"
	"github.com/turmfalke/pagekit/pkg/logging"
	"github.com/turmfalke/pagekit/pkg/paginator"
)

// setupRedis creates a Redis container for integration testing.
func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + port.Port(),
	})

	cleanup := func() {
		client.Close()
		container.Terminate(ctx)
	}

	return client, cleanup
}

func TestRedisStore_RoundTrip(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	store := cache.NewRedis[testutil.Item](client)
	ctx := context.Background()

	item := testutil.Item{ID: 7, Name: "item-7"}
	if err := store.Set(ctx, "k", item, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Get reported a miss for a stored key")
	}
	if got != item {
		t.Errorf("Get = %+v, want %+v", got, item)
	}

	if has, _ := store.Has(ctx, "k"); !has {
		t.Error("Has = false for a stored key")
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Error("Get hit after Delete")
	}
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	store := cache.NewRedis[string](client)
	ctx := context.Background()

	if err := store.Set(ctx, "short", "value", 500*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, ok, _ := store.Get(ctx, "short"); !ok {
		t.Fatal("entry absent before expiry")
	}

	time.Sleep(time.Second)

	if _, ok, _ := store.Get(ctx, "short"); ok {
		t.Error("entry still live after TTL")
	}
	if has, _ := store.Has(ctx, "short"); has {
		t.Error("Has = true after TTL")
	}
}

func TestRedisStore_Clear(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	store := cache.NewRedis[int](client)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		if err := store.Set(ctx, key, 1, time.Minute); err != nil {
			t.Fatalf("Set %q failed: %v", key, err)
		}
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	for _, key := range []string{"a", "b", "c"} {
		if has, _ := store.Has(ctx, key); has {
			t.Errorf("key %q survived Clear", key)
		}
	}
}

// TestPaginatorWithRedisStore runs the full engine flow against a real
// Redis backend: compute, memoize, then serve from cache.
func TestPaginatorWithRedisStore(t *testing.T) {
	client, cleanup := setupRedis(t)
	defer cleanup()

	store := cache.NewRedis[paginator.Result[testutil.Item]](client)
	engine := paginator.NewWithStore(paginator.DefaultSettings(), store, logging.NewLogger("paginator"))

	ctx := context.Background()
	items := testutil.Items(50)

	first, err := engine.SimplePaginate(ctx, items, 1, 10, true)
	if err != nil {
		t.Fatalf("first paginate failed: %v", err)
	}
	if first.FromCache {
		t.Error("first call served from cache")
	}

	second, err := engine.SimplePaginate(ctx, items, 1, 10, true)
	if err != nil {
		t.Fatalf("second paginate failed: %v", err)
	}
	if !second.FromCache {
		t.Error("second call not served from cache")
	}

	if len(second.Data) != 10 || second.Data[0] != items[0] {
		t.Errorf("cached page content mismatch: %+v", second.Data[0])
	}
	if first.Meta != second.Meta {
		t.Errorf("meta mismatch between computed and cached result")
	}
}

// TestPaginatorSurvivesRedisOutage verifies graceful degradation: when
// the backend goes away mid-flight, pagination keeps working uncached.
func TestPaginatorSurvivesRedisOutage(t *testing.T) {
	client, cleanup := setupRedis(t)

	store := cache.NewRedis[paginator.Result[testutil.Item]](client)
	engine := paginator.NewWithStore(paginator.DefaultSettings(), store, logging.NewLogger("paginator"))

	ctx := context.Background()
	items := testutil.Items(30)

	if _, err := engine.SimplePaginate(ctx, items, 1, 10, true); err != nil {
		t.Fatalf("paginate with healthy backend failed: %v", err)
	}

	// Kill the backend.
	cleanup()

	result, err := engine.SimplePaginate(ctx, items, 2, 10, true)
	if err != nil {
		t.Fatalf("paginate with dead backend failed: %v", err)
	}
	if result.FromCache {
		t.Error("dead backend produced a cache hit")
	}
	if len(result.Data) != 10 {
		t.Errorf("len(Data) = %d, want 10", len(result.Data))
	}
}
