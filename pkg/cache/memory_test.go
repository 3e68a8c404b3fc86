package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestMemoryStoreHitWithinTTL(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStoreWithClock(45*time.Second, func() time.Time { return now })

	store.Set(context.Background(), "analytics:overview:10", []byte(`{"a":1}`))

	now = now.Add(44 * time.Second)
	got, ok := store.Get(context.Background(), "analytics:overview:10")
	if !ok {
		t.Fatalf("expected cache hit before expiry")
	}
	if !bytes.Equal(got, []byte(`{"a":1}`)) {
		t.Fatalf("cached value changed: %s", got)
	}
}

func TestMemoryStoreEvictsOnExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStoreWithClock(45*time.Second, func() time.Time { return now })

	store.Set(context.Background(), "k", []byte("v"))

	// 正好到期也算过期
	now = now.Add(45 * time.Second)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected miss at expiry instant")
	}

	// 条目已被删除，重新写入后从新的时间起算
	store.Set(context.Background(), "k", []byte("v2"))
	now = now.Add(10 * time.Second)
	got, ok := store.Get(context.Background(), "k")
	if !ok || string(got) != "v2" {
		t.Fatalf("expected fresh entry after re-set, got %q ok=%v", got, ok)
	}
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore(time.Second)
	if _, ok := store.Get(context.Background(), "absent"); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	store.Set(context.Background(), "k", []byte("v"))
	store.Delete(context.Background(), "k")
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected miss after delete")
	}

	// 删除不存在的 key 不报错
	store.Delete(context.Background(), "absent")
}

func TestMemoryStoreTTL(t *testing.T) {
	store := NewMemoryStore(45 * time.Second)
	if store.TTL() != 45*time.Second {
		t.Fatalf("unexpected ttl %v", store.TTL())
	}
}
