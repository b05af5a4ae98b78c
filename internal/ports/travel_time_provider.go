package ports

import (
	"context"

	"travel-access-service/internal/domain"
)

// Contract for computing travel times through an external routing engine.
// The engine owns network construction, schedule handling and path search;
// this port only sees points in and a travel-time table out.
type TravelTimeProvider interface {
	// Return one record per (origin, destination) pair. Pairs the engine
	// reports as unreachable carry nil Minutes.
	TravelTimes(ctx context.Context, origins, destinations []domain.Point) ([]domain.TravelTime, error)
}
