package repositories

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"travel-access-service/internal/domain"
)

// GeometrySet names the table a seed file populates.
type GeometrySet string

const (
	Origins      GeometrySet = "origins"
	Destinations GeometrySet = "destinations"
)

// ParseGeoJSONPoints reads a GeoJSON point collection and maps the feature
// property named by idProperty onto the point identifier. Source datasets
// often carry their own key column (census output area codes, shop
// registries); idProperty is the equivalent of renaming that column to "id"
// before loading. Duplicate or missing identifiers and out-of-range
// coordinates fail the parse.
func ParseGeoJSONPoints(path string, idProperty string) ([]domain.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse geojson: read %q: %w", path, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse geojson: decode %q: %w", path, err)
	}

	if idProperty == "" {
		idProperty = "id"
	}

	points := make([]domain.Point, 0, len(fc.Features))
	seen := make(map[string]struct{}, len(fc.Features))
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("parse geojson: feature #%d in %q is not a point", i+1, path)
		}

		id := propertyString(f, idProperty)
		if id == "" {
			return nil, fmt.Errorf("parse geojson: feature #%d in %q has no %q property", i+1, path, idProperty)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("parse geojson: duplicate id %q in %q", id, path)
		}
		seen[id] = struct{}{}

		coords := domain.Coordinates{Lon: pt.Lon(), Lat: pt.Lat()}
		if !coords.InBounds() {
			return nil, fmt.Errorf("parse geojson: id %q has coordinates outside EPSG:4326 bounds", id)
		}

		points = append(points, domain.Point{
			ID:       id,
			Name:     propertyString(f, "name"),
			Location: coords,
		})
	}

	return points, nil
}

// propertyString reads a feature property as a string, accepting the numeric
// identifiers some datasets use.
func propertyString(f *geojson.Feature, key string) string {
	v, ok := f.Properties[key]
	if !ok {
		return ""
	}

	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// SeedFromGeoJSON loads one geometry set into its table, replacing rows that
// share an identifier. The $n placeholders bind positionally on both the
// pgx and modernc sqlite drivers.
func SeedFromGeoJSON(db *sql.DB, set GeometrySet, path string, idProperty string) error {
	points, err := ParseGeoJSONPoints(path, idProperty)
	if err != nil {
		return fmt.Errorf("seed %s: %w", set, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed %s: begin tx: %w", set, err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`
	INSERT INTO %s (id, name, lon, lat)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		lon = EXCLUDED.lon,
		lat = EXCLUDED.lat;
	`, set)

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed %s: prepare insert: %w", set, err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.Exec(p.ID, p.Name, p.Location.Lon, p.Location.Lat); err != nil {
			return fmt.Errorf("seed %s: insert id=%q: %w", set, p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed %s: commit tx: %w", set, err)
	}

	return nil
}
