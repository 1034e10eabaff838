package services

import (
	"context"
	"errors"
	"fmt"

	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/ports"
)

// ErrBadStoredCoordinates marks a facility record whose coordinates column
// does not parse as "<lat>, <lng>". Such rows are rejected at read time.
var ErrBadStoredCoordinates = errors.New("facility record has malformed coordinates")

// NavigateToFacility looks up the target facility, parses its stored
// coordinates, and asks the mapping provider for a walking route from the
// current position.
func NavigateToFacility(
	ctx context.Context,
	current domain.Coordinates,
	facilityID int64,
	repo ports.FacilityRepository,
	provider ports.MapsProvider,
) (*domain.Facility, *domain.Route, error) {
	facility, err := repo.Get(ctx, facilityID)
	if err != nil {
		return nil, nil, fmt.Errorf("navigate: %w", err)
	}

	destination, err := domain.ParseCoordinates(facility.Coordinates)
	if err != nil {
		return facility, nil, fmt.Errorf("navigate: %w: %w", ErrBadStoredCoordinates, err)
	}

	route, err := provider.Directions(ctx, current, destination)
	if err != nil {
		return facility, nil, fmt.Errorf("navigate: directions to facility %d: %w", facilityID, err)
	}

	return facility, route, nil
}
