package services

import (
	"math"
	"rail-dispatch-service/internal/domain"
)

// SelectEco ranks segments by emission cost and returns the index of
// the minimum-emission segment (first index on ties) plus the
// percentage saved versus the worst segment. A single-segment route,
// or a route where all segments tie, yields zero savings.
func SelectEco(segments []domain.Segment) (bestIndex int, savingsPercent int) {
	if len(segments) == 0 {
		return 0, 0
	}

	best := segments[0].EmissionTons
	worst := segments[0].EmissionTons
	for i, s := range segments {
		if s.EmissionTons < best {
			best = s.EmissionTons
			bestIndex = i
		}
		if s.EmissionTons > worst {
			worst = s.EmissionTons
		}
	}

	if worst <= 0 || best == worst {
		return bestIndex, 0
	}

	return bestIndex, int(math.Round((1 - best/worst) * 100))
}
