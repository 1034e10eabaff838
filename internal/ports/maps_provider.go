package ports

import (
	"context"

	"airport-nav-service/internal/domain"
)

// Travel distance and duration between two points, as reported by the
// mapping provider (not great-circle distance).
type TravelSummary struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// A point of interest returned by a nearby-place search.
type Place struct {
	ID          string
	Name        string
	Category    string
	Coordinates domain.Coordinates
	Vicinity    string
}

// Contract for the external mapping provider.
type MapsProvider interface {
	// Resolve an address to coordinates plus the matched label.
	Geocode(ctx context.Context, address string) (domain.Coordinates, string, error)
	// Resolve coordinates to a human-readable address.
	ReverseGeocode(ctx context.Context, point domain.Coordinates) (string, error)
	// Compute a walking route with turn-by-turn steps.
	Directions(ctx context.Context, origin, destination domain.Coordinates) (*domain.Route, error)
	// Compute travel distance and duration between two points.
	TravelDistance(ctx context.Context, origin, destination domain.Coordinates) (TravelSummary, error)
	// Find places within radiusMeters of the given point.
	NearbyPlaces(ctx context.Context, center domain.Coordinates, radiusMeters int) ([]Place, error)
}
