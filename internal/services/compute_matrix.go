package services

import (
	"context"
	"fmt"
	"log"

	"travel-access-service/internal/domain"
	"travel-access-service/internal/platform/obs"
	"travel-access-service/internal/ports"
)

// ComputeMatrix produces the full travel-time table for the given geometry
// sets. Rows already present in the cache are reused; only origins with at
// least one uncached destination are sent to the routing engine, and fresh
// rows are written back. Cache write failures are logged and do not fail the
// computation.
//
// The returned matrix holds exactly one record per (origin, destination)
// pair in input order. Unreachable pairs carry nil Minutes.
func ComputeMatrix(
	ctx context.Context,
	origins []domain.Point,
	destinations []domain.Point,
	provider ports.TravelTimeProvider,
	cache ports.MatrixCache,
) (_ domain.Matrix, err error) {
	defer obs.Time(ctx, "matrix.Compute")(&err)

	if len(origins) == 0 {
		return domain.Matrix{}, fmt.Errorf("compute matrix: origin set is empty")
	}
	if len(destinations) == 0 {
		return domain.Matrix{}, fmt.Errorf("compute matrix: destination set is empty")
	}

	if err := requireUniqueIDs("origin", origins); err != nil {
		return domain.Matrix{}, fmt.Errorf("compute matrix: %w", err)
	}
	if err := requireUniqueIDs("destination", destinations); err != nil {
		return domain.Matrix{}, fmt.Errorf("compute matrix: %w", err)
	}

	destIDs := make([]string, 0, len(destinations))
	for _, d := range destinations {
		destIDs = append(destIDs, d.ID)
	}

	// rows holds the complete row per origin id once known, from cache or
	// from the engine.
	rows := make(map[string]map[string]*float64, len(origins))
	missing := make([]domain.Point, 0)

	for _, o := range origins {
		if cache == nil {
			missing = append(missing, o)
			continue
		}

		hits, err := cache.GetMany(ctx, o.ID, destIDs)
		if err != nil {
			return domain.Matrix{}, fmt.Errorf("compute matrix: read cache for origin %q: %w", o.ID, err)
		}

		complete := true
		for _, d := range destIDs {
			if _, ok := hits[d]; !ok {
				complete = false
				break
			}
		}

		// A partially cached row is recomputed whole; the engine prices a
		// full row at the same cost as its missing cells.
		if complete {
			rows[o.ID] = hits
		} else {
			missing = append(missing, o)
		}
	}

	if len(missing) > 0 {
		fresh, err := provider.TravelTimes(ctx, missing, destinations)
		if err != nil {
			return domain.Matrix{}, fmt.Errorf("compute matrix: routing engine: %w", err)
		}

		freshRows := make(map[string]map[string]*float64, len(missing))
		for _, r := range fresh {
			if _, ok := freshRows[r.FromID]; !ok {
				freshRows[r.FromID] = make(map[string]*float64, len(destIDs))
			}
			freshRows[r.FromID][r.ToID] = r.Minutes
		}

		for _, o := range missing {
			row, ok := freshRows[o.ID]
			if !ok {
				return domain.Matrix{}, fmt.Errorf("compute matrix: engine returned no row for origin %q", o.ID)
			}
			for _, d := range destIDs {
				if _, ok := row[d]; !ok {
					return domain.Matrix{}, fmt.Errorf("compute matrix: engine row for origin %q is missing destination %q", o.ID, d)
				}
			}
			rows[o.ID] = row

			if cache != nil {
				if err := cache.PutMany(ctx, o.ID, row); err != nil {
					log.Printf("matrix cache write failed: origin=%s err=%v", o.ID, err)
				}
			}
		}
	}

	records := make([]domain.TravelTime, 0, len(origins)*len(destinations))
	for _, o := range origins {
		for _, d := range destIDs {
			records = append(records, domain.TravelTime{
				FromID:  o.ID,
				ToID:    d,
				Minutes: rows[o.ID][d],
			})
		}
	}

	return domain.Matrix{Records: records}, nil
}
