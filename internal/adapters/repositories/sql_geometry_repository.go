package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"travel-access-service/internal/domain"
)

// SQL-backed implementation of the GeometryRepository port. The queries are
// parameter-free and run unchanged against SQLite and Postgres.
type SQLGeometryRepository struct{ DB *sql.DB }

func NewSQLGeometryRepository(db *sql.DB) *SQLGeometryRepository {
	return &SQLGeometryRepository{DB: db}
}

// Return all origin points stored in the database.
func (s *SQLGeometryRepository) ListOrigins(ctx context.Context) ([]domain.Point, error) {
	return s.list(ctx, "origins")
}

// Return all destination points stored in the database.
func (s *SQLGeometryRepository) ListDestinations(ctx context.Context) ([]domain.Point, error) {
	return s.list(ctx, "destinations")
}

func (s *SQLGeometryRepository) list(ctx context.Context, table string) ([]domain.Point, error) {
	if s.DB == nil {
		return nil, errors.New("geometry repository: DB is nil")
	}

	query := fmt.Sprintf(`
	SELECT
		id,
		name,
		lon,
		lat
	FROM %s
	ORDER BY id;
	`, table)

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: query %s table: %w", table, table, err)
	}
	defer rows.Close()

	points := make([]domain.Point, 0, 64)
	for rows.Next() {
		var id, name string
		var lon, lat float64
		if err := rows.Scan(&id, &name, &lon, &lat); err != nil {
			return nil, fmt.Errorf("list %s: scan row: %w", table, err)
		}
		points = append(points, domain.Point{
			ID:       id,
			Name:     name,
			Location: domain.Coordinates{Lon: lon, Lat: lat},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: row iteration: %w", table, err)
	}

	return points, nil
}
