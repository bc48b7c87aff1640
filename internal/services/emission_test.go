package services

import (
	"testing"

	"rail-dispatch-service/internal/domain"
)

func TestEmissionFactorPerKm(t *testing.T) {
	cases := []struct {
		name string
		ctx  domain.EmissionContext
		want float64
	}{
		{
			// ore base 0.022 × curve 0.8 × loco base 0.6 × grade 1.0
			name: "ore electric flat at pivot tonnage",
			ctx:  domain.EmissionContext{CargoType: "ore", LocomotiveType: "electric", GradePercent: 0, Tonnage: 3000},
			want: 0.01056,
		},
		{
			// coal base 0.024 × curve 1.0 × loco base 1.0 × grade 1.0
			name: "coal diesel flat at pivot tonnage",
			ctx:  domain.EmissionContext{CargoType: "coal", LocomotiveType: "diesel", GradePercent: 0, Tonnage: 3000},
			want: 0.024,
		},
		{
			// steel base 0.020 × (0.9+1·0.10)·0.8 × (1+2·0.03)
			name: "steel hybrid max tonnage moderate grade",
			ctx:  domain.EmissionContext{CargoType: "steel", LocomotiveType: "hybrid", GradePercent: 2, Tonnage: 6000},
			want: 0.01696,
		},
		{
			name: "unknown cargo falls back to ore base",
			ctx:  domain.EmissionContext{CargoType: "timber", LocomotiveType: "diesel", GradePercent: 0, Tonnage: 3000},
			want: 0.022,
		},
		{
			name: "unknown locomotive gets flat unit factor",
			ctx:  domain.EmissionContext{CargoType: "cement", LocomotiveType: "steam", GradePercent: 0, Tonnage: 6000},
			want: 0.021,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EmissionFactorPerKm(tc.ctx)
			if got != tc.want {
				t.Fatalf("EmissionFactorPerKm = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEmissionFactorDeterminism(t *testing.T) {
	ctx := domain.EmissionContext{CargoType: "coal", LocomotiveType: "hybrid", GradePercent: 3.7, Tonnage: 4512}

	first := EmissionFactorPerKm(ctx)
	for i := 0; i < 100; i++ {
		if got := EmissionFactorPerKm(ctx); got != first {
			t.Fatalf("iteration %d: got %v, want %v", i, got, first)
		}
	}
}

func TestEmissionFactorClamping(t *testing.T) {
	over := domain.EmissionContext{CargoType: "ore", LocomotiveType: "diesel", GradePercent: 10, Tonnage: 9000}
	max := domain.EmissionContext{CargoType: "ore", LocomotiveType: "diesel", GradePercent: 6, Tonnage: 6000}
	if EmissionFactorPerKm(over) != EmissionFactorPerKm(max) {
		t.Fatalf("over-range inputs must clamp: got %v, want %v",
			EmissionFactorPerKm(over), EmissionFactorPerKm(max))
	}

	under := domain.EmissionContext{CargoType: "ore", LocomotiveType: "diesel", GradePercent: -3, Tonnage: 200}
	min := domain.EmissionContext{CargoType: "ore", LocomotiveType: "diesel", GradePercent: 0, Tonnage: 1000}
	if EmissionFactorPerKm(under) != EmissionFactorPerKm(min) {
		t.Fatalf("under-range inputs must clamp: got %v, want %v",
			EmissionFactorPerKm(under), EmissionFactorPerKm(min))
	}
}
