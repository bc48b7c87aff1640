package services

import (
	"math"
	"rail-dispatch-service/internal/domain"
)

// Per-kilometer base carbon intensity (tons CO2/km) by cargo type.
// Unknown cargo falls back to the ore figure.
var cargoBasePerKm = map[string]float64{
	"ore":    0.022,
	"coal":   0.024,
	"steel":  0.020,
	"cement": 0.021,
}

const defaultCargoBasePerKm = 0.022

type locomotiveProfile struct {
	curveIntercept float64
	curveSlope     float64
	baseFactor     float64
}

// Tonnage-response curves per locomotive class. The curve is linear
// around a 3000t pivot: factor = intercept + (t-3000)/3000 * slope.
// Unknown locomotives get a flat factor of 1.0 with no curve.
var locomotiveProfiles = map[string]locomotiveProfile{
	"diesel":   {1.0, 0.15, 1.0},
	"electric": {0.8, 0.08, 0.6},
	"hybrid":   {0.9, 0.10, 0.8},
}

// EmissionFactorPerKm computes the carbon intensity (tons CO2 per km)
// for a scoring context under the multiplicative model:
//
//	base(cargo) × (curve(loco, tonnage) × baseFactor(loco)) × gradeMult
//
// Grade and tonnage are clamped, never rejected. Deterministic:
// identical inputs always produce identical output, which cache
// correctness depends on. Result rounded to 5 decimal places.
func EmissionFactorPerKm(ctx domain.EmissionContext) float64 {
	ctx = ctx.Clamped()

	base, ok := cargoBasePerKm[ctx.CargoType]
	if !ok {
		base = defaultCargoBasePerKm
	}

	curveFactor := 1.0
	locoBase := 1.0
	if p, ok := locomotiveProfiles[ctx.LocomotiveType]; ok {
		curveFactor = p.curveIntercept + (ctx.Tonnage-3000)/3000*p.curveSlope
		locoBase = p.baseFactor
	}

	gradeMult := 1 + ctx.GradePercent*0.03

	return round5(base * (curveFactor * locoBase) * gradeMult)
}

func round5(v float64) float64 { return math.Round(v*1e5) / 1e5 }

func round3(v float64) float64 { return math.Round(v*1e3) / 1e3 }
