package dto

import "github.com/paulmach/orb/geojson"

type ViewRequest struct {
	DestinationID string `json:"destination_id"`
}

type MarkerIconResponse struct {
	Color  string `json:"color"`
	Prefix string `json:"prefix"`
	Icon   string `json:"icon"`
}

type ChoroplethLayerResponse struct {
	ValueField    string                     `json:"value_field"`
	LegendCaption string                     `json:"legend_caption"`
	NullFillColor string                     `json:"null_fill_color"`
	TooltipFields []string                   `json:"tooltip_fields"`
	Features      *geojson.FeatureCollection `json:"features"`
}

type MarkerLayerResponse struct {
	Icon          MarkerIconResponse         `json:"icon"`
	TooltipFields []string                   `json:"tooltip_fields"`
	Features      *geojson.FeatureCollection `json:"features"`
}

type ViewResponse struct {
	Tiles       string                  `json:"tiles"`
	Origins     ChoroplethLayerResponse `json:"origins"`
	Destination MarkerLayerResponse     `json:"destination"`
}
