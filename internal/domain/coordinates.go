package domain

import "github.com/paulmach/orb"

// Immutable geographic coordinates (longitude, latitude), EPSG:4326.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Return coordinates as an orb point for GeoJSON encoding.
func (c Coordinates) Point() orb.Point { return orb.Point{c.Lon, c.Lat} }

// InBounds reports whether the coordinates fall inside the valid
// EPSG:4326 longitude/latitude range.
func (c Coordinates) InBounds() bool {
	return c.Lon >= -180 && c.Lon <= 180 && c.Lat >= -90 && c.Lat <= 90
}
