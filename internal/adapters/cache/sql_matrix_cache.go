package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"travel-access-service/internal/platform/obs"
)

// SQLMatrixCache is a Postgres-backed cache for per-origin travel-time rows.
// Unreachable results are cached as NULL minutes so the engine is not asked
// again for pairs it already declared unroutable.
type SQLMatrixCache struct {
	DB *sql.DB
}

func NewSQLMatrixCache(db *sql.DB) *SQLMatrixCache {
	return &SQLMatrixCache{DB: db}
}

// Fetch cached travel times for one origin and multiple destinations.
func (s *SQLMatrixCache) GetMany(
	ctx context.Context,
	originID string,
	destinationIDs []string,
) (_ map[string]*float64, err error) {
	defer obs.Time(ctx, "matrix.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("matrix cache: db is nil")
	}

	if originID == "" {
		return nil, errors.New("get matrix cache: origin id must not be empty")
	}

	if len(destinationIDs) == 0 {
		return map[string]*float64{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(destinationIDs))
	for _, d := range destinationIDs {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}

		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		uniq = append(uniq, d)
	}

	if len(uniq) == 0 {
		return map[string]*float64{}, nil
	}

	q := `
	SELECT destination_id, minutes
    FROM matrix_cache
    WHERE origin_id = $1
        AND destination_id = ANY($2::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, originID, uniq)
	if err != nil {
		return nil, fmt.Errorf("get matrix cache: query matrix_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*float64, len(uniq))
	for rows.Next() {
		var dest string
		var minutes sql.NullFloat64
		if err := rows.Scan(&dest, &minutes); err != nil {
			return nil, fmt.Errorf("get matrix cache: scan rows: %w", err)
		}
		if minutes.Valid {
			v := minutes.Float64
			out[dest] = &v
		} else {
			out[dest] = nil
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get matrix cache: row iteration: %w", err)
	}

	return out, nil
}

// Store one origin's travel-time row, nil values included.
func (s *SQLMatrixCache) PutMany(
	ctx context.Context,
	originID string,
	minutes map[string]*float64,
) error {
	if s.DB == nil {
		return errors.New("matrix cache: db is nil")
	}

	if originID == "" {
		return errors.New("insert matrix cache: origin id must not be empty")
	}

	if len(minutes) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert matrix cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO matrix_cache (origin_id, destination_id, minutes)
    VALUES ($1, $2, $3)
	ON CONFLICT (origin_id, destination_id) DO UPDATE
	SET minutes = EXCLUDED.minutes;
	`)
	if err != nil {
		return fmt.Errorf("insert matrix cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for dest, m := range minutes {
		if strings.TrimSpace(dest) == "" {
			return fmt.Errorf("insert matrix cache: empty destination key")
		}

		var v sql.NullFloat64
		if m != nil {
			v = sql.NullFloat64{Float64: *m, Valid: true}
		}

		if _, err := stmt.ExecContext(ctx, originID, dest, v); err != nil {
			return fmt.Errorf("insert matrix cache dest=%q: %w", dest, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert matrix cache commit: %w", err)
	}

	return nil
}
