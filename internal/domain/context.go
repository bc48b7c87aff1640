package domain

// Bounds applied to numeric context fields before they enter the
// emission curve. Out-of-range values are clamped, never rejected.
const (
	MinTonnage      = 1000.0
	MaxTonnage      = 6000.0
	MinGradePercent = 0.0
	MaxGradePercent = 6.0
)

// EmissionContext carries the cargo/locomotive/grade/tonnage inputs
// of a single scoring request. Immutable per request.
type EmissionContext struct {
	CargoType      string
	LocomotiveType string
	GradePercent   float64
	Tonnage        float64
}

// Clamped returns a copy with GradePercent and Tonnage forced into
// their valid ranges. All downstream computation (and cache keying)
// works on the clamped copy so that equivalent inputs stay
// cache-equivalent.
func (c EmissionContext) Clamped() EmissionContext {
	out := c
	out.GradePercent = clamp(c.GradePercent, MinGradePercent, MaxGradePercent)
	out.Tonnage = clamp(c.Tonnage, MinTonnage, MaxTonnage)
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
