package ports

import (
	"context"
	"time"
)

// Port: a key/value cache with per-entry TTL.
//
// Get returns found=false for absent or expired keys. Entries are
// never mutated in place; Set overwrites wholesale. Backend failures
// surface as errors and are treated by callers as cache misses —
// the cache is a pure optimization, never a source of truth.
type KVCache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
