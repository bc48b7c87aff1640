package services

import (
	"context"
	"math"
	"testing"
	"time"

	"rail-dispatch-service/internal/adapters/congestion"
	"rail-dispatch-service/internal/domain"
)

func newTestScorer() *RouteScorer {
	resolver := NewRouteResolver(nil, time.Second)
	return NewRouteScorer(resolver, congestion.NewFixedSource(domain.StatusClear))
}

func TestScorePresetRoute(t *testing.T) {
	scorer := newTestScorer()
	ec := domain.EmissionContext{CargoType: "ore", LocomotiveType: "electric", GradePercent: 0, Tonnage: 3000}

	res := scorer.Score(context.Background(), "BKSC-DGR", ec)

	if len(res.Segments) != 4 {
		t.Fatalf("expected 4 segments on the BKSC-DGR path, got %d", len(res.Segments))
	}
	if res.EFPerKm != 0.01056 {
		t.Fatalf("efPerKm = %v, want 0.01056", res.EFPerKm)
	}

	for i, s := range res.Segments {
		if s.DistanceKm <= 0 {
			t.Fatalf("segment %d: distance must be positive, got %v", i, s.DistanceKm)
		}
		want := math.Round(HaversineKm(s.From, s.To)*res.EFPerKm*1e3) / 1e3
		if s.EmissionTons != want {
			t.Fatalf("segment %d: emission = %v, want %v", i, s.EmissionTons, want)
		}
	}

	best := res.Segments[res.BestIndex].EmissionTons
	for i, s := range res.Segments {
		if best > s.EmissionTons {
			t.Fatalf("bestIndex %d (%v tons) beaten by segment %d (%v tons)",
				res.BestIndex, best, i, s.EmissionTons)
		}
	}
	if res.SavingsPercent < 0 || res.SavingsPercent > 100 {
		t.Fatalf("savingsPercent = %d, want within [0,100]", res.SavingsPercent)
	}
}

func TestScoreUnknownKeyUsesDefaultRoute(t *testing.T) {
	scorer := newTestScorer()
	ec := domain.EmissionContext{CargoType: "coal", LocomotiveType: "diesel", GradePercent: 1, Tonnage: 4000}

	res := scorer.Score(context.Background(), "UNKNOWN-KEY", ec)

	if len(res.Segments) != 2 {
		t.Fatalf("default route must score exactly 2 segments, got %d", len(res.Segments))
	}
	if res.BestIndex < 0 || res.BestIndex >= len(res.Segments) {
		t.Fatalf("bestIndex %d out of range", res.BestIndex)
	}
	if res.SavingsPercent < 0 || res.SavingsPercent > 100 {
		t.Fatalf("savingsPercent = %d, want within [0,100]", res.SavingsPercent)
	}
}

func TestScoreCongestionMultiplier(t *testing.T) {
	resolver := NewRouteResolver(nil, time.Second)
	ec := domain.EmissionContext{CargoType: "ore", LocomotiveType: "diesel", GradePercent: 0, Tonnage: 3000}

	clear := NewRouteScorer(resolver, congestion.NewFixedSource(domain.StatusClear)).
		Score(context.Background(), "DGR-ASN", ec)
	congested := NewRouteScorer(resolver, congestion.NewFixedSource(domain.StatusCongested)).
		Score(context.Background(), "DGR-ASN", ec)

	for i := range clear.Segments {
		km := HaversineKm(clear.Segments[i].From, clear.Segments[i].To)
		want := math.Round(km*clear.EFPerKm*1.25*1e3) / 1e3
		if congested.Segments[i].EmissionTons != want {
			t.Fatalf("segment %d: congested emission = %v, want %v",
				i, congested.Segments[i].EmissionTons, want)
		}
	}
}

func TestScoreClampsContext(t *testing.T) {
	scorer := newTestScorer()

	over := scorer.Score(context.Background(), "BKSC-DGR",
		domain.EmissionContext{CargoType: "ore", LocomotiveType: "diesel", GradePercent: 10, Tonnage: 3000})
	max := scorer.Score(context.Background(), "BKSC-DGR",
		domain.EmissionContext{CargoType: "ore", LocomotiveType: "diesel", GradePercent: 6, Tonnage: 3000})

	if over.EFPerKm != max.EFPerKm {
		t.Fatalf("grade 10 must behave as grade 6: %v vs %v", over.EFPerKm, max.EFPerKm)
	}
	if over.Context.GradePercent != 6 {
		t.Fatalf("context echo grade = %v, want clamped 6", over.Context.GradePercent)
	}
}
