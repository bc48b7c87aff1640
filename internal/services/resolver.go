package services

import (
	"context"
	"log"
	"time"

	"rail-dispatch-service/internal/domain"
	"rail-dispatch-service/internal/ports"
)

// routeTier is one strategy in the resolution fallback chain. It
// reports ok=false to pass resolution on to the next tier.
type routeTier interface {
	tryResolve(ctx context.Context, key string) ([]domain.Waypoint, bool)
}

// RouteResolver resolves a route key to an ordered waypoint sequence
// through a fixed fallback hierarchy: authoritative store → static
// preset table → generic default. Resolution always succeeds with at
// least two waypoints; no tier's output is ever partially merged with
// another's.
type RouteResolver struct {
	tiers []routeTier
}

// NewRouteResolver builds the standard three-tier chain. store may be
// nil (the store tier then always passes), storeTimeout bounds every
// store lookup.
func NewRouteResolver(store ports.RouteStore, storeTimeout time.Duration) *RouteResolver {
	return &RouteResolver{
		tiers: []routeTier{
			&storeTier{store: store, timeout: storeTimeout},
			&presetTier{},
			&defaultTier{},
		},
	}
}

// ResolveWaypoints returns the waypoints for key, consulting each tier
// in order. Keys are matched case-insensitively.
func (r *RouteResolver) ResolveWaypoints(ctx context.Context, key string) []domain.Waypoint {
	key = domain.NormalizeRouteKey(key)
	for _, tier := range r.tiers {
		if wps, ok := tier.tryResolve(ctx, key); ok {
			return wps
		}
	}
	// Unreachable: the default tier always resolves.
	return nil
}

// storeTier queries the authoritative route store. Lookup errors and
// timeouts are swallowed and treated as "not found" — resolution must
// always fall through, never fail.
type storeTier struct {
	store   ports.RouteStore
	timeout time.Duration
}

func (t *storeTier) tryResolve(ctx context.Context, key string) ([]domain.Waypoint, bool) {
	if t.store == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	wps, found, err := t.store.FindRoute(ctx, key)
	if err != nil {
		log.Printf("route store lookup degraded: key=%s err=%v", key, err)
		return nil, false
	}
	if !found || len(wps) < 2 {
		return nil, false
	}

	return wps, true
}

// Static coordinate table for stations referenced by preset routes.
var stationTable = map[string]domain.Waypoint{
	"BKSC":    {Code: "BKSC", Lat: 23.6580, Lng: 86.1511},
	"DHANBAD": {Code: "DHANBAD", Lat: 23.7957, Lng: 86.4304},
	"ASANSOL": {Code: "ASANSOL", Lat: 23.6889, Lng: 86.9661},
	"ANDAL":   {Code: "ANDAL", Lat: 23.5933, Lng: 87.2419},
	"DGR":     {Code: "DGR", Lat: 23.5204, Lng: 87.3119},
	"GOMOH":   {Code: "GOMOH", Lat: 23.8730, Lng: 86.1511},
	"TATA":    {Code: "TATA", Lat: 22.7749, Lng: 86.2029},
	"ROU":     {Code: "ROU", Lat: 22.2270, Lng: 84.8560},
	"CRP":     {Code: "CRP", Lat: 22.8243, Lng: 86.3685},
}

// Named multi-hop preset routes, keyed by normalized route key. Used
// when the authoritative store has no answer.
var presetRoutes = map[string][]string{
	"BKSC-DGR":  {"BKSC", "DHANBAD", "ASANSOL", "ANDAL", "DGR"},
	"BKSC-ROU":  {"BKSC", "CRP", "TATA", "ROU"},
	"BKSC-TATA": {"BKSC", "GOMOH", "CRP", "TATA"},
	"DGR-ASN":   {"DGR", "ANDAL", "ASANSOL"},
}

type presetTier struct{}

func (presetTier) tryResolve(_ context.Context, key string) ([]domain.Waypoint, bool) {
	names, ok := presetRoutes[key]
	if !ok {
		return nil, false
	}

	wps := make([]domain.Waypoint, 0, len(names))
	for _, name := range names {
		wp, ok := stationTable[name]
		if !ok {
			return nil, false
		}
		wps = append(wps, wp)
	}

	return wps, true
}

// defaultTier is the ultimate fallback for unrecognized keys: a
// generic two-segment route near the BKSC origin. It never passes.
type defaultTier struct{}

func (defaultTier) tryResolve(_ context.Context, key string) ([]domain.Waypoint, bool) {
	origin := stationTable["BKSC"]
	return []domain.Waypoint{
		origin,
		{Code: "WP-1", Lat: origin.Lat + 0.18, Lng: origin.Lng + 0.22},
		{Code: "WP-2", Lat: origin.Lat + 0.05, Lng: origin.Lng + 0.47},
	}, true
}
