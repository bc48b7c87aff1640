package routestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rail-dispatch-service/internal/domain"
	"rail-dispatch-service/internal/platform/obs"
)

// Postgres-backed implementation of the RouteStore port.
type PostgresRouteStore struct{ DB *sql.DB }

func NewPostgresRouteStore(db *sql.DB) *PostgresRouteStore {
	return &PostgresRouteStore{DB: db}
}

// Return the ordered waypoints of a stored route, or found=false when
// the key is unknown. Routes with fewer than two waypoints are treated
// as not found so the caller can fall through to the next tier.
func (s *PostgresRouteStore) FindRoute(ctx context.Context, key string) (_ []domain.Waypoint, _ bool, err error) {
	defer obs.Time(ctx, "routestore.FindRoute")(&err)

	if s.DB == nil {
		return nil, false, errors.New("route store: db is nil")
	}

	if key == "" {
		return nil, false, errors.New("find route: key must not be empty")
	}

	q := `
	SELECT code, lat, lng
	FROM route_waypoints
	WHERE route_key = $1
	ORDER BY position;
	`

	rows, err := s.DB.QueryContext(ctx, q, key)
	if err != nil {
		return nil, false, fmt.Errorf("find route: query route_waypoints table: %w", err)
	}
	defer rows.Close()

	waypoints := make([]domain.Waypoint, 0, 8)
	for rows.Next() {
		var wp domain.Waypoint
		if err := rows.Scan(&wp.Code, &wp.Lat, &wp.Lng); err != nil {
			return nil, false, fmt.Errorf("find route: scan row: %w", err)
		}
		waypoints = append(waypoints, wp)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("find route: row iteration: %w", err)
	}

	if len(waypoints) < 2 {
		return nil, false, nil
	}

	return waypoints, true, nil
}
