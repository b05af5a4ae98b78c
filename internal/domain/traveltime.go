package domain

// TravelTime is one computed origin->destination travel duration.
// Minutes is nil when the destination could not be reached from the origin
// under the configured modality and time bound. Unreachable is always the
// absence of a value, never a sentinel number, so downstream color scales
// and statistics stay uncorrupted.
type TravelTime struct {
	FromID  string
	ToID    string
	Minutes *float64
}

// Reachable reports whether the pair has a defined travel time.
func (t TravelTime) Reachable() bool { return t.Minutes != nil }

// Matrix is the full travel-time table for one computation run.
// Every FromID is drawn from the origin set and every ToID from the
// destination set. A pair missing from the table means unreachable within
// the configured bound, the same as a record with nil Minutes; both
// representations occur depending on how the routing engine reports
// unreachable pairs.
type Matrix struct {
	Records []TravelTime
}

// HasDestination reports whether any record targets the given destination.
func (m Matrix) HasDestination(id string) bool {
	for _, r := range m.Records {
		if r.ToID == id {
			return true
		}
	}
	return false
}

// ToDestination returns all records targeting the given destination,
// preserving table order.
func (m Matrix) ToDestination(id string) []TravelTime {
	out := make([]TravelTime, 0)
	for _, r := range m.Records {
		if r.ToID == id {
			out = append(out, r)
		}
	}
	return out
}
