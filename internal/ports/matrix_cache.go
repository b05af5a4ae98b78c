package ports

import "context"

// Port for caching travel-time rows per origin.
//
// GetMany returns only the destinations present in the cache; a key that is
// present with a nil value is a cached "unreachable" result, which is
// distinct from a missing key (a cache miss). PutMany stores one origin row,
// nil values included.
type MatrixCache interface {
	GetMany(ctx context.Context, originID string, destinationIDs []string) (map[string]*float64, error)
	PutMany(ctx context.Context, originID string, minutes map[string]*float64) error
}
