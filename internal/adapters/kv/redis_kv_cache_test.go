package kv

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*RedisKVCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisKVCache(client), mr
}

func TestRedisKVCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	want := []byte(`{"routes":[]}`)
	if err := cache.Set(ctx, "score:BKSC-DGR", want, 30*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, found, err := cache.Get(ctx, "score:BKSC-DGR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected a cache hit")
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("value = %q, want %q", got, want)
	}
}

func TestRedisKVCacheMissReadsAsNotFound(t *testing.T) {
	cache, _ := newTestCache(t)

	_, found, err := cache.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("a miss must not be an error: %v", err)
	}
	if found {
		t.Fatal("expected a cache miss")
	}
}

func TestRedisKVCacheTTLExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []byte("v"), 30*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(31 * time.Second)

	_, found, err := cache.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("entry past its TTL must read as a miss")
	}
}

func TestRedisKVCacheOverwrite(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []byte("old"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.Set(ctx, "k", []byte("new"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, found, err := cache.Get(ctx, "k")
	if err != nil || !found {
		t.Fatalf("expected hit, got found=%v err=%v", found, err)
	}
	if string(got) != "new" {
		t.Fatalf("value = %q, want wholesale overwrite to %q", got, "new")
	}
}
