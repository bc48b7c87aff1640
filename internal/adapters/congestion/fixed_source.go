package congestion

import "rail-dispatch-service/internal/domain"

// FixedSource reports the same status for every segment. Used where a
// pinned status is needed (tests, deterministic replays).
type FixedSource struct {
	Status domain.CongestionStatus
}

func NewFixedSource(status domain.CongestionStatus) *FixedSource {
	return &FixedSource{Status: status}
}

func (s *FixedSource) StatusFor(_, _ domain.Waypoint) domain.CongestionStatus {
	return s.Status
}
