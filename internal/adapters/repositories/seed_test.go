package repositories

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGeoJSON(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "points.geojson")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write geojson: %v", err)
	}
	return path
}

func TestParseGeoJSONPointsRenamesIDProperty(t *testing.T) {
	// Source dataset keys its rows by a census code; id_property maps it
	// onto the point identifier.
	path := writeGeoJSON(t, `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [-3.0, 51.58]},
			 "properties": {"OA21CD": "W00010385", "name": "Area 1"}},
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [-3.01, 51.59]},
			 "properties": {"OA21CD": "W00010386"}}
		]
	}`)

	points, err := ParseGeoJSONPoints(path, "OA21CD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].ID != "W00010385" || points[0].Name != "Area 1" {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].Location.Lon != -3.01 {
		t.Fatalf("lon = %v, want -3.01", points[1].Location.Lon)
	}
}

func TestParseGeoJSONPointsNumericID(t *testing.T) {
	path := writeGeoJSON(t, `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [-2.99, 51.57]},
			 "properties": {"id": 6, "name": "Supermarket"}}
		]
	}`)

	points, err := ParseGeoJSONPoints(path, "id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if points[0].ID != "6" {
		t.Fatalf("id = %q, want \"6\"", points[0].ID)
	}
}

func TestParseGeoJSONPointsRejectsDuplicateIDs(t *testing.T) {
	path := writeGeoJSON(t, `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [-3.0, 51.58]},
			 "properties": {"id": "A"}},
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [-3.01, 51.59]},
			 "properties": {"id": "A"}}
		]
	}`)

	if _, err := ParseGeoJSONPoints(path, "id"); err == nil {
		t.Fatal("expected error for duplicate ids, got nil")
	}
}

func TestParseGeoJSONPointsRejectsOutOfBoundsCoordinates(t *testing.T) {
	// Coordinates in a projected CRS (e.g. meters) are a loader contract
	// violation; data must arrive in EPSG:4326.
	path := writeGeoJSON(t, `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [330000.0, 180000.0]},
			 "properties": {"id": "A"}}
		]
	}`)

	if _, err := ParseGeoJSONPoints(path, "id"); err == nil {
		t.Fatal("expected error for out-of-bounds coordinates, got nil")
	}
}
