package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed cache for per-origin travel-time rows. Keys are expected
// to be consistent (e.g., already trimmed) by the caller.
type SqliteMatrixCache struct {
	DB *sql.DB
}

func NewSqliteMatrixCache(db *sql.DB) *SqliteMatrixCache {
	return &SqliteMatrixCache{DB: db}
}

// Fetch cached travel times for one origin and multiple destinations.
func (s *SqliteMatrixCache) GetMany(
	ctx context.Context,
	originID string,
	destinationIDs []string,
) (map[string]*float64, error) {
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
	ph := make([]string, 0, len(destinationIDs))
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
		ph = append(ph, "?")
	}

	if len(uniq) == 0 {
		return map[string]*float64{}, nil
	}

	placeholders := strings.Join(ph, ",")
	args := make([]any, 0, 1+len(uniq))
	args = append(args, originID)
	for _, d := range uniq {
		args = append(args, d)
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT destination_id, minutes
    FROM matrix_cache
    WHERE origin_id = ?
        AND destination_id IN (%s);
	`, placeholders)

	rows, err := s.DB.QueryContext(ctx, q, args...)
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
func (s *SqliteMatrixCache) PutMany(
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
	INSERT OR REPLACE INTO matrix_cache (origin_id, destination_id, minutes)
    VALUES (?, ?, ?);
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
