package domain

import "github.com/paulmach/orb/geojson"

// MarkerIcon is a fixed icon style for a marker layer, expressed in the
// vocabulary the frontend map library understands (Font Awesome icon names).
type MarkerIcon struct {
	Color  string
	Prefix string
	Icon   string
}

// ChoroplethLayer is a point layer colored by a numeric feature property.
// Features whose value property is null are rendered in NullFillColor
// instead of being dropped: "no data" marks the edge of reachability and
// must stay visible on the map.
type ChoroplethLayer struct {
	Features      *geojson.FeatureCollection
	ValueField    string
	LegendCaption string
	NullFillColor string
	TooltipFields []string
}

// MarkerLayer is an overlay layer with a fixed icon, outside any color scale.
type MarkerLayer struct {
	Features      *geojson.FeatureCollection
	Icon          MarkerIcon
	TooltipFields []string
}

// MapView is the composed renderable object handed to the map renderer:
// a choropleth layer over the origins and a visually distinct marker layer
// holding the single requested destination. It is derived, ephemeral data,
// rebuilt on every visualization request and never persisted.
type MapView struct {
	Tiles       string
	Origins     ChoroplethLayer
	Destination MarkerLayer
}
