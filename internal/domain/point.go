package domain

// Represents a single origin or destination location.
// A Point has a unique identifier within its set and a fixed geographic
// position. Points are created by the geometry loader and are read-only
// afterwards; origin identifiers and destination identifiers live in
// separate namespaces and carry no required relationship to each other.
type Point struct {
	ID       string
	Name     string
	Location Coordinates
}
