package ports

import (
	"context"
	"rail-dispatch-service/internal/domain"
)

// Port: a boundary for looking up authoritative route definitions.
//
// FindRoute returns the ordered waypoints for a route key, or
// found=false when the key is unknown. Implementations must honor ctx
// cancellation/deadlines; callers treat errors and timeouts the same
// as "not found" and fall through to the next resolution tier.
type RouteStore interface {
	FindRoute(ctx context.Context, key string) (waypoints []domain.Waypoint, found bool, err error)
}
