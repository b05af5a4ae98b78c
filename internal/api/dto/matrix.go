package dto

// TravelTime is null when the pair is unreachable within the configured
// bound; the distinction between null and zero is part of the contract.
type TravelTimeResponse struct {
	FromID     string   `json:"from_id"`
	ToID       string   `json:"to_id"`
	TravelTime *float64 `json:"travel_time"`
}

type MatrixResponse struct {
	Records []TravelTimeResponse `json:"records"`
}
