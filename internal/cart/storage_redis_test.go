package cart

import (
	"context"
	"testing"
	"time"

	pkgredis "github.com/nataliebakery/storefront/pkg/redis"
)

func TestRedisStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newFakeCartClient()
	storage, err := NewRedisStorage(client, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := Lines{}.Add(saffronCake(), 2, nil)
	if err := storage.Save(ctx, "sess-1", lines); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if client.lastTTL != time.Hour {
		t.Fatalf("expected session TTL on write, got %v", client.lastTTL)
	}

	restored, err := storage.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(restored) != 1 || restored[0].Slug != "saffron-cake" || restored[0].Quantity != 2 {
		t.Fatalf("unexpected restored cart %+v", restored)
	}
	if client.touched != 1 {
		t.Fatalf("expected load to refresh the session TTL, touched %d times", client.touched)
	}

	if err := storage.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	gone, err := storage.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("load after delete failed: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected missing cart to load as nil, got %+v", gone)
	}
}

func TestRedisStorageCorruptPayload(t *testing.T) {
	ctx := context.Background()
	client := newFakeCartClient()
	storage, _ := NewRedisStorage(client, 0)

	client.values[client.CartKey("sess-1")] = "{not json"
	if _, err := storage.Load(ctx, "sess-1"); err == nil {
		t.Fatal("expected decode error for corrupt payload")
	}
}

func TestNewRedisStorageRequiresClient(t *testing.T) {
	if _, err := NewRedisStorage(nil, 0); err == nil {
		t.Fatal("expected error for nil client")
	}
}

type fakeCartClient struct {
	values  map[string]string
	lastTTL time.Duration
	touched int
}

func newFakeCartClient() *fakeCartClient {
	return &fakeCartClient{values: make(map[string]string)}
}

func (f *fakeCartClient) Get(_ context.Context, key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", pkgredis.Nil
	}
	return value, nil
}

func (f *fakeCartClient) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	f.values[key] = value.(string)
	f.lastTTL = ttl
	return nil
}

func (f *fakeCartClient) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeCartClient) Expire(_ context.Context, _ string, ttl time.Duration) error {
	f.touched++
	f.lastTTL = ttl
	return nil
}

func (f *fakeCartClient) CartKey(sessionID string) string {
	return "nb:cart:" + sessionID
}
