package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"airport-nav-service/internal/adapters/maps"
	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/ports"
)

// stubRepo serves a fixed facility set; only Get is exercised here.
type stubRepo struct {
	facilities map[int64]*domain.Facility
}

func (s *stubRepo) Get(ctx context.Context, id int64) (*domain.Facility, error) {
	f, ok := s.facilities[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return f, nil
}

func (s *stubRepo) List(ctx context.Context) ([]*domain.Facility, error) { return nil, nil }
func (s *stubRepo) Create(ctx context.Context, f *domain.Facility) error { return nil }
func (s *stubRepo) CreateBatch(ctx context.Context, fs []*domain.Facility) error {
	return nil
}
func (s *stubRepo) Update(ctx context.Context, id int64, upd ports.FacilityUpdate) (*domain.Facility, error) {
	return nil, nil
}
func (s *stubRepo) UpdateBatch(ctx context.Context, ids []int64, upd ports.FacilityUpdate) ([]*domain.Facility, error) {
	return nil, nil
}
func (s *stubRepo) Delete(ctx context.Context, id int64) (*domain.Facility, error) {
	return nil, nil
}
func (s *stubRepo) Clear(ctx context.Context) ([]*domain.Facility, error) { return nil, nil }
func (s *stubRepo) Search(ctx context.Context, filter ports.FacilityFilter) ([]*domain.Facility, error) {
	return nil, nil
}
func (s *stubRepo) Stats(ctx context.Context) (*ports.FacilityStats, error) { return nil, nil }

func TestNavigateToFacility(t *testing.T) {
	current := domain.Coordinates{Lat: 13.1986, Lng: 77.7066}
	destination := domain.Coordinates{Lat: 13.199, Lng: 77.707}

	repo := &stubRepo{facilities: map[int64]*domain.Facility{
		5: {
			ID:          5,
			Name:        "Lounge A",
			Category:    "Lounge",
			Coordinates: "13.199, 77.707",
			CreatedAt:   time.Now(),
		},
	}}

	wantRoute := &domain.Route{
		Steps: []domain.RouteStep{
			{DistanceMeters: 120, DurationSeconds: 90, Instruction: "Head east"},
		},
		TotalDistanceMeters:  120,
		TotalDurationSeconds: 90,
	}

	provider := &maps.MockProvider{
		Routes: map[string]*domain.Route{
			current.String() + "|" + destination.String(): wantRoute,
		},
	}

	facility, route, err := NavigateToFacility(context.Background(), current, 5, repo, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if facility.Name != "Lounge A" {
		t.Fatalf("facility = %q", facility.Name)
	}
	if route != wantRoute {
		t.Fatalf("route = %+v, want the provider route", route)
	}
}

func TestNavigateToFacilityNotFound(t *testing.T) {
	repo := &stubRepo{facilities: map[int64]*domain.Facility{}}
	provider := &maps.MockProvider{}

	_, _, err := NavigateToFacility(context.Background(), domain.Coordinates{}, 42, repo, provider)
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestNavigateToFacilityMalformedCoordinates(t *testing.T) {
	repo := &stubRepo{facilities: map[int64]*domain.Facility{
		7: {ID: 7, Name: "Gate ?", Category: "Gate", Coordinates: "somewhere in terminal 2"},
	}}
	provider := &maps.MockProvider{}

	_, _, err := NavigateToFacility(context.Background(), domain.Coordinates{}, 7, repo, provider)
	if !errors.Is(err, ErrBadStoredCoordinates) {
		t.Fatalf("error = %v, want ErrBadStoredCoordinates", err)
	}
}
