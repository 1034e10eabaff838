package services

import (
	"context"
	"fmt"

	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/geo"
	"airport-nav-service/internal/ports"
)

// A place near the reference point, with its great-circle distance from
// that point attached as a formatted string.
type NearbyFacility struct {
	ID          string
	Name        string
	Category    string
	Coordinates string
	Description string
	Distance    string
	CreatedAt   string
}

// NearbyFacilities searches the mapping provider for places around the
// reference point and attaches the great-circle distance from that point to
// each result, formatted as "<value> km" with two decimal places.
//
// A distance computation failure for any place fails the whole search:
// a visible error beats a silently wrong distance in a navigation context.
func NearbyFacilities(
	ctx context.Context,
	reference domain.Coordinates,
	radiusMeters int,
	provider ports.MapsProvider,
) ([]NearbyFacility, error) {
	places, err := provider.NearbyPlaces(ctx, reference, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("nearby facilities: search places: %w", err)
	}

	out := make([]NearbyFacility, 0, len(places))
	for _, p := range places {
		km, err := geo.Distance(reference.Lat, reference.Lng, p.Coordinates.Lat, p.Coordinates.Lng)
		if err != nil {
			return nil, fmt.Errorf("nearby facilities: distance to place %q: %w", p.ID, err)
		}

		out = append(out, NearbyFacility{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Coordinates: p.Coordinates.String(),
			Description: p.Vicinity,
			Distance:    fmt.Sprintf("%.2f km", km),
			CreatedAt:   "N/A",
		})
	}

	return out, nil
}
