package services

import "fmt"

// DestinationNotFoundError reports a requested destination identifier that
// does not appear anywhere in the travel-time matrix.
type DestinationNotFoundError struct {
	ID string
}

func (e *DestinationNotFoundError) Error() string {
	return fmt.Sprintf("destination %q not found in travel time matrix", e.ID)
}

// NoReachableOriginsError reports a destination that exists in the matrix
// but is reachable from no origin under the configured modality and time
// bound. This is a different failure than an unknown identifier and callers
// must be able to tell the two apart.
type NoReachableOriginsError struct {
	ID string
}

func (e *NoReachableOriginsError) Error() string {
	return fmt.Sprintf("no reachable origins for destination %q", e.ID)
}
