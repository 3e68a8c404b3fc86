package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStoreSetGet(t *testing.T) {
	store, _ := newTestRedisStore(t, 45*time.Second)

	store.Set(context.Background(), "analytics:overview:5", []byte(`{"b":2}`))

	got, ok := store.Get(context.Background(), "analytics:overview:5")
	if !ok {
		t.Fatalf("expected hit")
	}
	if string(got) != `{"b":2}` {
		t.Fatalf("cached value changed: %s", got)
	}
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newTestRedisStore(t, 45*time.Second)

	store.Set(context.Background(), "k", []byte("v"))
	mr.FastForward(46 * time.Second)

	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected miss after ttl elapsed")
	}
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Minute)

	store.Set(context.Background(), "k", []byte("v"))
	store.Delete(context.Background(), "k")
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestRedisStoreUnreachableIsMiss(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Second)
	mr.Close()

	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected miss when redis is down")
	}
}
