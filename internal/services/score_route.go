package services

import (
	"context"

	"rail-dispatch-service/internal/domain"
	"rail-dispatch-service/internal/ports"
)

// RouteScorer runs the scoring pipeline: waypoint resolution, then a
// per-segment distance/emission pass, then eco selection. The pipeline
// is request-scoped and side-effect-free, so concurrent invocations
// need no locking.
type RouteScorer struct {
	Resolver   *RouteResolver
	Congestion ports.CongestionSource
}

func NewRouteScorer(resolver *RouteResolver, congestion ports.CongestionSource) *RouteScorer {
	return &RouteScorer{Resolver: resolver, Congestion: congestion}
}

// Score resolves the route and computes one Segment per consecutive
// waypoint pair: distance by haversine, emission as
// distance × efPerKm × congestion multiplier (rounded to 3 decimals).
func (s *RouteScorer) Score(ctx context.Context, routeKey string, ec domain.EmissionContext) domain.ScoringResult {
	ec = ec.Clamped()
	key := domain.NormalizeRouteKey(routeKey)

	waypoints := s.Resolver.ResolveWaypoints(ctx, key)
	efPerKm := EmissionFactorPerKm(ec)

	segments := make([]domain.Segment, 0, len(waypoints)-1)
	for i := 0; i+1 < len(waypoints); i++ {
		from, to := waypoints[i], waypoints[i+1]
		status := s.Congestion.StatusFor(from, to)
		km := HaversineKm(from, to)

		segments = append(segments, domain.Segment{
			From:         from,
			To:           to,
			Status:       status,
			DistanceKm:   round3(km),
			EmissionTons: round3(km * efPerKm * status.StatusMultiplier()),
		})
	}

	bestIndex, savings := SelectEco(segments)

	return domain.ScoringResult{
		RouteKey:       key,
		Segments:       segments,
		BestIndex:      bestIndex,
		SavingsPercent: savings,
		EFPerKm:        efPerKm,
		Context:        ec,
	}
}
