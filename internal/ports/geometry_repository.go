package ports

import (
	"context"

	"travel-access-service/internal/domain"
)

// Port: a boundary for retrieving origin and destination geometries
// from a data source.
type GeometryRepository interface {
	// Retrieve all origin points, ordered by identifier.
	ListOrigins(ctx context.Context) ([]domain.Point, error)
	// Retrieve all destination points, ordered by identifier.
	ListDestinations(ctx context.Context) ([]domain.Point, error)
}
