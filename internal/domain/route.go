package domain

// Represents a single step of a walking route between two points.
type RouteStep struct {
	DistanceMeters  float64
	DurationSeconds float64
	Instruction     string
	Start           Coordinates
	End             Coordinates
}

// Represents a walking route returned by the mapping provider.
// It is immutable result data and contains no side effects.
type Route struct {
	StartAddress         string
	EndAddress           string
	Steps                []RouteStep
	TotalDistanceMeters  float64
	TotalDurationSeconds float64
}
