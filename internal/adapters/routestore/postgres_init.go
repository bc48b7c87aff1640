package routestore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"rail-dispatch-service/internal/domain"
)

// Initialize the Postgres route schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		route_key TEXT PRIMARY KEY
	);
	`

	createWaypointsQuery := `
	CREATE TABLE IF NOT EXISTS route_waypoints (
		route_key TEXT NOT NULL REFERENCES routes(route_key) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		code TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (route_key, position)
	);
	`

	statements := []string{
		createRoutesQuery,
		createWaypointsQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type WaypointSeed struct {
	Code string  `json:"code"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type RouteSeed struct {
	RouteKey  string         `json:"route_key"`
	Waypoints []WaypointSeed `json:"waypoints"`
}

// Populate the route tables from a JSON seed file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed routes: read %q: %w", jsonPath, err)
	}

	var data []RouteSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed routes: parse json: %w", err)
	}

	for i, r := range data {
		if domain.NormalizeRouteKey(r.RouteKey) == "" {
			return fmt.Errorf("seed routes: empty route_key at index %d", i+1)
		}
		if len(r.Waypoints) < 2 {
			return fmt.Errorf("seed routes: route %q needs at least 2 waypoints", r.RouteKey)
		}
		for j, wp := range r.Waypoints {
			if strings.TrimSpace(wp.Code) == "" {
				return fmt.Errorf("seed routes: route %q waypoint at index %d: code cannot be empty", r.RouteKey, j+1)
			}
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed routes: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	routeStmt, err := tx.Prepare(`
	INSERT INTO routes (route_key)
	VALUES ($1)
	ON CONFLICT (route_key) DO NOTHING;
	`)
	if err != nil {
		return fmt.Errorf("seed routes: prepare route insert: %w", err)
	}
	defer routeStmt.Close()

	wpStmt, err := tx.Prepare(`
	INSERT INTO route_waypoints (route_key, position, code, lat, lng)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (route_key, position) DO UPDATE
	SET code = EXCLUDED.code,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng;
	`)
	if err != nil {
		return fmt.Errorf("seed routes: prepare waypoint insert: %w", err)
	}
	defer wpStmt.Close()

	for _, r := range data {
		key := domain.NormalizeRouteKey(r.RouteKey)
		if _, err := routeStmt.Exec(key); err != nil {
			return fmt.Errorf("seed routes: insert route %q: %w", key, err)
		}

		for pos, wp := range r.Waypoints {
			if _, err := wpStmt.Exec(key, pos, wp.Code, wp.Lat, wp.Lng); err != nil {
				return fmt.Errorf("seed routes: insert waypoint %q for route %q: %w", wp.Code, key, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed routes: commit tx: %w", err)
	}

	return nil
}
