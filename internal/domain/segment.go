package domain

// CongestionStatus classifies the traffic condition of one segment.
type CongestionStatus string

const (
	StatusClear     CongestionStatus = "clear"
	StatusBusy      CongestionStatus = "busy"
	StatusCongested CongestionStatus = "congested"
)

// StatusMultiplier returns the emission penalty applied for a
// congestion status: clear 1.0, busy 1.1, congested 1.25.
func (s CongestionStatus) StatusMultiplier() float64 {
	switch s {
	case StatusBusy:
		return 1.1
	case StatusCongested:
		return 1.25
	default:
		return 1.0
	}
}

// Segment is one hop between two consecutive waypoints of a resolved
// route, with its computed distance and emission cost. Derived data,
// recomputed per request (or served from cache), never persisted on
// its own.
type Segment struct {
	From         Waypoint
	To           Waypoint
	Status       CongestionStatus
	DistanceKm   float64
	EmissionTons float64
}

// ScoringResult is the unit cached and returned by the scoring
// pipeline: the ordered segments of the resolved route, the
// eco-selection over them, and an echo of the effective context.
type ScoringResult struct {
	RouteKey       string
	Segments       []Segment
	BestIndex      int
	SavingsPercent int
	EFPerKm        float64
	Context        EmissionContext
}
