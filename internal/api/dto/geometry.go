package dto

type PointResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name,omitempty"`
	Lon  float64 `json:"lon"`
	Lat  float64 `json:"lat"`
}

type ListPointsResponse struct {
	Points []PointResponse `json:"points"`
}
