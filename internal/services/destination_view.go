package services

import (
	"fmt"

	"github.com/paulmach/orb/geojson"

	"travel-access-service/internal/domain"
)

const (
	// travelTimeField is the feature property the choropleth scale is keyed by.
	travelTimeField = "travel_time"

	defaultTiles  = "CartoDB positron"
	legendCaption = "Median travel time (minutes)"
	nullFillColor = "#9e9e9e"
)

// BuildDestinationView joins the travel-time matrix onto the origin
// geometries for one requested destination and composes the renderable map
// layers: origins colored by travel time, with unreachable origins kept and
// rendered in a neutral color, plus a single fixed marker for the
// destination itself.
//
// The function is stateless and does not mutate its inputs; identical inputs
// produce an identical view. It fails with DestinationNotFoundError before
// any filtering when the identifier is absent from the matrix, and with
// NoReachableOriginsError when the identifier exists but every travel time
// to it is missing.
func BuildDestinationView(
	destinationID string,
	matrix domain.Matrix,
	origins []domain.Point,
	destinations []domain.Point,
) (*domain.MapView, error) {
	if destinationID == "" {
		return nil, fmt.Errorf("build destination view: destination id must be non-empty")
	}

	// Duplicate identifiers would silently aggregate in the join below,
	// so they are rejected up front.
	if err := requireUniqueIDs("origin", origins); err != nil {
		return nil, fmt.Errorf("build destination view: %w", err)
	}
	if err := requireUniqueIDs("destination", destinations); err != nil {
		return nil, fmt.Errorf("build destination view: %w", err)
	}

	// An absent identifier and an unreachable-everywhere identifier are
	// different failures; the existence check runs before any filtering so
	// the two stay distinguishable.
	if !matrix.HasDestination(destinationID) {
		return nil, &DestinationNotFoundError{ID: destinationID}
	}

	records := matrix.ToDestination(destinationID)

	reachable := false
	for _, r := range records {
		if r.Reachable() {
			reachable = true
			break
		}
	}
	if !reachable {
		return nil, &NoReachableOriginsError{ID: destinationID}
	}

	// Left join onto the origin set: every origin produces exactly one
	// feature. Origins with no record, or with a nil value, keep a null
	// travel time rather than disappearing from the map.
	byFrom := make(map[string]domain.TravelTime, len(records))
	for _, r := range records {
		byFrom[r.FromID] = r
	}

	originFeatures := geojson.NewFeatureCollection()
	for _, o := range origins {
		f := geojson.NewFeature(o.Location.Point())
		f.Properties["id"] = o.ID
		if o.Name != "" {
			f.Properties["name"] = o.Name
		}

		if r, ok := byFrom[o.ID]; ok && r.Minutes != nil {
			f.Properties[travelTimeField] = *r.Minutes
		} else {
			f.Properties[travelTimeField] = nil
		}

		originFeatures.Append(f)
	}

	dest, ok := findPoint(destinations, destinationID)
	if !ok {
		// The matrix references a destination the geometry set does not
		// contain; the upstream contract guarantees this cannot happen.
		return nil, fmt.Errorf("build destination view: destination %q has no geometry", destinationID)
	}

	markerFeatures := geojson.NewFeatureCollection()
	df := geojson.NewFeature(dest.Location.Point())
	df.Properties["id"] = dest.ID
	if dest.Name != "" {
		df.Properties["name"] = dest.Name
	}
	markerFeatures.Append(df)

	view := &domain.MapView{
		Tiles: defaultTiles,
		Origins: domain.ChoroplethLayer{
			Features:      originFeatures,
			ValueField:    travelTimeField,
			LegendCaption: legendCaption,
			NullFillColor: nullFillColor,
			TooltipFields: []string{"id", travelTimeField},
		},
		Destination: domain.MarkerLayer{
			Features: markerFeatures,
			Icon: domain.MarkerIcon{
				Color:  "red",
				Prefix: "fa",
				Icon:   "flag-checkered",
			},
			TooltipFields: []string{"id"},
		},
	}

	return view, nil
}

func requireUniqueIDs(kind string, points []domain.Point) error {
	seen := make(map[string]struct{}, len(points))
	for _, p := range points {
		if p.ID == "" {
			return fmt.Errorf("%s set contains an empty id", kind)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate %s id %q", kind, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

func findPoint(points []domain.Point, id string) (domain.Point, bool) {
	for _, p := range points {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Point{}, false
}
