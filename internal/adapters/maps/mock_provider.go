package maps

import (
	"context"
	"fmt"

	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/ports"
)

// MockProvider is a canned-response MapsProvider for tests.
type MockProvider struct {
	Geocodes  map[string]domain.Coordinates
	Addresses map[string]string
	Routes    map[string]*domain.Route
	Travel    map[string]ports.TravelSummary
	Places    []ports.Place
	Err       error
}

func routeKey(origin, destination domain.Coordinates) string {
	return origin.String() + "|" + destination.String()
}

func (m *MockProvider) Geocode(ctx context.Context, address string) (domain.Coordinates, string, error) {
	if m.Err != nil {
		return domain.Coordinates{}, "", m.Err
	}
	c, ok := m.Geocodes[address]
	if !ok {
		return domain.Coordinates{}, "", fmt.Errorf("no geocode results for %q", address)
	}
	return c, address, nil
}

func (m *MockProvider) ReverseGeocode(ctx context.Context, point domain.Coordinates) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	a, ok := m.Addresses[point.String()]
	if !ok {
		return "", fmt.Errorf("no reverse geocode results for %v", point)
	}
	return a, nil
}

func (m *MockProvider) Directions(ctx context.Context, origin, destination domain.Coordinates) (*domain.Route, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	r, ok := m.Routes[routeKey(origin, destination)]
	if !ok {
		return nil, fmt.Errorf("no route found from %v to %v", origin, destination)
	}
	return r, nil
}

func (m *MockProvider) TravelDistance(ctx context.Context, origin, destination domain.Coordinates) (ports.TravelSummary, error) {
	if m.Err != nil {
		return ports.TravelSummary{}, m.Err
	}
	t, ok := m.Travel[routeKey(origin, destination)]
	if !ok {
		return ports.TravelSummary{}, fmt.Errorf("no travel result for %v -> %v", origin, destination)
	}
	return t, nil
}

func (m *MockProvider) NearbyPlaces(ctx context.Context, center domain.Coordinates, radiusMeters int) ([]ports.Place, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Places, nil
}
