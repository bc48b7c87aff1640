package dto

import (
	"fmt"

	"rail-dispatch-service/internal/domain"
)

type ScoreRequest struct {
	RouteKey string  `json:"route_key"`
	Cargo    string  `json:"cargo"`
	Loco     string  `json:"loco"`
	Grade    float64 `json:"grade"`
	Tonnage  float64 `json:"tonnage"`
}

type SegmentResponse struct {
	From    []float64 `json:"from"`
	To      []float64 `json:"to"`
	Status  string    `json:"status"`
	Label   string    `json:"label"`
	Km      float64   `json:"km"`
	CO2Tons float64   `json:"co2_tons"`
}

type EcoResponse struct {
	BestIndex      int `json:"bestIndex"`
	SavingsPercent int `json:"savingsPercent"`
}

type ScoreMetaResponse struct {
	Cargo    string  `json:"cargo"`
	Loco     string  `json:"loco"`
	Grade    float64 `json:"grade"`
	Tonnage  float64 `json:"tonnage"`
	EFPerKm  float64 `json:"efPerKm"`
	RouteKey string  `json:"routeKey"`
}

type ScoreResponse struct {
	Routes []SegmentResponse `json:"routes"`
	Eco    EcoResponse       `json:"eco"`
	Meta   ScoreMetaResponse `json:"meta"`
}

// FromScoringResult maps a domain scoring result onto the wire shape.
func FromScoringResult(res domain.ScoringResult) ScoreResponse {
	routes := make([]SegmentResponse, 0, len(res.Segments))
	for _, s := range res.Segments {
		routes = append(routes, SegmentResponse{
			From:    s.From.CoordsToList(),
			To:      s.To.CoordsToList(),
			Status:  string(s.Status),
			Label:   fmt.Sprintf("%s - %s", s.From.Code, s.To.Code),
			Km:      s.DistanceKm,
			CO2Tons: s.EmissionTons,
		})
	}

	return ScoreResponse{
		Routes: routes,
		Eco: EcoResponse{
			BestIndex:      res.BestIndex,
			SavingsPercent: res.SavingsPercent,
		},
		Meta: ScoreMetaResponse{
			Cargo:    res.Context.CargoType,
			Loco:     res.Context.LocomotiveType,
			Grade:    res.Context.GradePercent,
			Tonnage:  res.Context.Tonnage,
			EFPerKm:  res.EFPerKm,
			RouteKey: res.RouteKey,
		},
	}
}
