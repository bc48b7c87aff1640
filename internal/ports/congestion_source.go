package ports

import "rail-dispatch-service/internal/domain"

// Port: supplies the congestion status for one segment.
//
// When no live signal collaborator exists the wired implementation is
// a seedable pseudo-random source, so tests can pin statuses
// deterministically.
type CongestionSource interface {
	StatusFor(from, to domain.Waypoint) domain.CongestionStatus
}
