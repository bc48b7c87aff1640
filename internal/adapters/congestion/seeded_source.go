package congestion

import (
	"math/rand"
	"sync"

	"rail-dispatch-service/internal/domain"
)

var statuses = []domain.CongestionStatus{
	domain.StatusClear,
	domain.StatusBusy,
	domain.StatusCongested,
}

// SeededSource draws segment statuses from a seedable pseudo-random
// stream. It stands in for the live congestion signal collaborator;
// the seed makes simulated runs reproducible.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *SeededSource) StatusFor(_, _ domain.Waypoint) domain.CongestionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return statuses[s.rng.Intn(len(statuses))]
}
