package services

import (
	"math"
	"rail-dispatch-service/internal/domain"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

// HaversineKm computes the great-circle distance between two waypoints
// in kilometers. Pure and symmetric; zero only for identical
// coordinates.
func HaversineKm(a, b domain.Waypoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
