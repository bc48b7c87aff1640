package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"rail-dispatch-service/internal/domain"
	"rail-dispatch-service/internal/ports"
)

// CacheAside wraps expensive computations with a key/value cache.
// Cache-backend failures on either the read or the write side degrade
// to direct computation and are never visible to the caller; compute
// errors abort the cache write and propagate (no negative caching).
type CacheAside struct {
	Cache   ports.KVCache
	Timeout time.Duration
}

func NewCacheAside(cache ports.KVCache, timeout time.Duration) *CacheAside {
	return &CacheAside{Cache: cache, Timeout: timeout}
}

// GetOrCompute returns the cached value for key when a non-expired
// entry exists, otherwise invokes compute, best-effort populates the
// cache with the given TTL, and returns the computed value.
func (c *CacheAside) GetOrCompute(
	ctx context.Context,
	key string,
	ttl time.Duration,
	compute func(ctx context.Context) ([]byte, error),
) ([]byte, error) {
	if c.Cache != nil {
		getCtx, cancel := context.WithTimeout(ctx, c.Timeout)
		value, found, err := c.Cache.Get(getCtx, key)
		cancel()

		if err != nil {
			log.Printf("cache read degraded: key=%s err=%v", key, err)
		} else if found {
			return value, nil
		}
	}

	value, err := compute(ctx)
	if err != nil {
		return nil, fmt.Errorf("get or compute %q: %w", key, err)
	}

	if c.Cache != nil {
		setCtx, cancel := context.WithTimeout(ctx, c.Timeout)
		if err := c.Cache.Set(setCtx, key, value, ttl); err != nil {
			log.Printf("cache write degraded: key=%s err=%v", key, err)
		}
		cancel()
	}

	return value, nil
}

// ScoreCacheKey builds the deterministic cache key for a scoring
// request from every input that affects the result. The context is
// clamped first so inputs that clamp to the same effective context
// share one entry. String fields are quoted: they are caller-supplied
// and may themselves contain the separator, and distinct contexts must
// never collide.
func ScoreCacheKey(routeKey string, ec domain.EmissionContext) string {
	ec = ec.Clamped()
	return fmt.Sprintf("score:%q:%q:%q:%g:%g",
		domain.NormalizeRouteKey(routeKey), ec.CargoType, ec.LocomotiveType, ec.GradePercent, ec.Tonnage)
}
