package domain

import "strings"

// Waypoint is a named geographic point forming part of a route.
// Immutable reference data.
type Waypoint struct {
	Code string
	Lat  float64
	Lng  float64
}

// Return coordinates as [lat, lng] for external API compatibility.
func (w Waypoint) CoordsToList() []float64 { return []float64{w.Lat, w.Lng} }

// NormalizeRouteKey canonicalizes a route identifier for lookup.
// Keys are matched case-insensitively by normalizing to uppercase.
func NormalizeRouteKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
