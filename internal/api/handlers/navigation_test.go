package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"airport-nav-service/internal/adapters/maps"
	"airport-nav-service/internal/api/dto"
	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/ports"
)

func newNavigationHandler(repo *stubRepo, provider *maps.MockProvider) (*NavigationHandler, *recordNotifier) {
	notifier := &recordNotifier{}
	return &NavigationHandler{
		Repo:     repo,
		Provider: provider,
		Notifier: notifier,
		Validate: validator.New(),
	}, notifier
}

func TestRouteHandler(t *testing.T) {
	current := domain.Coordinates{Lat: 13.1986, Lng: 77.7066}
	destination := domain.Coordinates{Lat: 13.199, Lng: 77.707}

	provider := &maps.MockProvider{
		Geocodes: map[string]domain.Coordinates{
			"Terminal 2": destination,
		},
		Routes: map[string]*domain.Route{
			current.String() + "|" + destination.String(): {
				Steps: []domain.RouteStep{
					{End: domain.Coordinates{Lat: 13.1988, Lng: 77.7068}},
					{End: destination},
				},
			},
		},
	}
	h, notifier := newNavigationHandler(newStubRepo(), provider)

	body := `{"current_location":{"lat":13.1986,"lng":77.7066},"destination":"Terminal 2"}`
	req := httptest.NewRequest(http.MethodPost, "/route", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Route(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.RouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Waypoints) != 2 {
		t.Fatalf("waypoints = %+v", res.Waypoints)
	}
	if res.EndAddress != "Terminal 2" {
		t.Fatalf("end_address = %q", res.EndAddress)
	}
	if len(notifier.successes) != 1 {
		t.Fatalf("notifications = %v", notifier.successes)
	}
}

func TestRouteHandlerMissingParameters(t *testing.T) {
	h, notifier := newNavigationHandler(newStubRepo(), &maps.MockProvider{})

	body := `{"destination":"Terminal 2"}`
	req := httptest.NewRequest(http.MethodPost, "/route", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Route(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(notifier.failures) != 1 {
		t.Fatalf("failure notifications = %v", notifier.failures)
	}
}

func TestRouteHandlerUnknownDestination(t *testing.T) {
	h, _ := newNavigationHandler(newStubRepo(), &maps.MockProvider{})

	body := `{"current_location":{"lat":1,"lng":2},"destination":"Nowhere"}`
	req := httptest.NewRequest(http.MethodPost, "/route", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Route(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestNavigateHandler(t *testing.T) {
	current := domain.Coordinates{Lat: 13.1986, Lng: 77.7066}
	destination := domain.Coordinates{Lat: 13.199, Lng: 77.707}

	repo := newStubRepo(&domain.Facility{
		ID: 5, Name: "Lounge A", Category: "Lounge", Coordinates: "13.199, 77.707",
	})
	provider := &maps.MockProvider{
		Routes: map[string]*domain.Route{
			current.String() + "|" + destination.String(): {
				Steps: []domain.RouteStep{
					{DistanceMeters: 1250, DurationSeconds: 900, Instruction: "Head north"},
				},
				TotalDistanceMeters:  1250,
				TotalDurationSeconds: 900,
			},
		},
	}
	h, _ := newNavigationHandler(repo, provider)

	req := httptest.NewRequest(http.MethodGet,
		"/navigate?current_lat=13.1986&current_lng=77.7066&facility_id=5", nil)
	rec := httptest.NewRecorder()
	h.Navigate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.NavigateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Facility.Name != "Lounge A" {
		t.Fatalf("facility = %+v", res.Facility)
	}
	if len(res.NavigationSteps) != 1 || res.NavigationSteps[0].Distance != "1.2 km" {
		t.Fatalf("steps = %+v", res.NavigationSteps)
	}
	if res.TotalDuration != "15 min" {
		t.Fatalf("total_duration = %q", res.TotalDuration)
	}
}

func TestNavigateHandlerMissingParameters(t *testing.T) {
	h, _ := newNavigationHandler(newStubRepo(), &maps.MockProvider{})

	req := httptest.NewRequest(http.MethodGet, "/navigate?current_lat=13.19", nil)
	rec := httptest.NewRecorder()
	h.Navigate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestNavigateHandlerFacilityNotFound(t *testing.T) {
	h, notifier := newNavigationHandler(newStubRepo(), &maps.MockProvider{})

	req := httptest.NewRequest(http.MethodGet,
		"/navigate?current_lat=1&current_lng=2&facility_id=99", nil)
	rec := httptest.NewRecorder()
	h.Navigate(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(notifier.failures) != 1 {
		t.Fatalf("failure notifications = %v", notifier.failures)
	}
}

func TestNearbyHandler(t *testing.T) {
	provider := &maps.MockProvider{
		Places: []ports.Place{
			{
				ID:          "osm-1",
				Name:        "Pharmacy",
				Category:    "healths",
				Coordinates: domain.Coordinates{Lat: 13.2086, Lng: 77.7066},
				Vicinity:    "Terminal Road",
			},
		},
	}
	h, _ := newNavigationHandler(newStubRepo(), provider)

	req := httptest.NewRequest(http.MethodGet,
		"/nearby-facilities?current_lat=13.1986&current_lng=77.7066", nil)
	rec := httptest.NewRecorder()
	h.Nearby(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.NearbyFacilitiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Facilities) != 1 {
		t.Fatalf("facilities = %+v", res.Facilities)
	}
	f := res.Facilities[0]
	if f.Distance != "1.11 km" || f.CreatedAt != "N/A" {
		t.Fatalf("facility = %+v", f)
	}
}

func TestNearbyHandlerMissingCoordinates(t *testing.T) {
	h, _ := newNavigationHandler(newStubRepo(), &maps.MockProvider{})

	req := httptest.NewRequest(http.MethodGet, "/nearby-facilities?radius=500", nil)
	rec := httptest.NewRecorder()
	h.Nearby(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestNearbyHandlerRejectsBadRadius(t *testing.T) {
	h, _ := newNavigationHandler(newStubRepo(), &maps.MockProvider{})

	req := httptest.NewRequest(http.MethodGet,
		"/nearby-facilities?current_lat=1&current_lng=2&radius=-5", nil)
	rec := httptest.NewRecorder()
	h.Nearby(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGeocodeHandler(t *testing.T) {
	provider := &maps.MockProvider{
		Geocodes: map[string]domain.Coordinates{
			"Kempegowda International Airport": {Lat: 13.1986, Lng: 77.7066},
		},
	}
	h, notifier := newNavigationHandler(newStubRepo(), provider)

	req := httptest.NewRequest(http.MethodGet,
		"/geocode?address=Kempegowda+International+Airport", nil)
	rec := httptest.NewRecorder()
	h.Geocode(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.GeocodeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Latitude != 13.1986 || res.Longitude != 77.7066 {
		t.Fatalf("coordinates = %+v", res)
	}
	if len(notifier.successes) != 1 || notifier.successes[0] != "Geocode API Success" {
		t.Fatalf("notifications = %v", notifier.successes)
	}
}

func TestGeocodeHandlerMissingAddress(t *testing.T) {
	h, notifier := newNavigationHandler(newStubRepo(), &maps.MockProvider{})

	req := httptest.NewRequest(http.MethodGet, "/geocode", nil)
	rec := httptest.NewRecorder()
	h.Geocode(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(notifier.failures) != 1 {
		t.Fatalf("failure notifications = %v", notifier.failures)
	}
}

func TestGeocodeHandlerNoResults(t *testing.T) {
	h, _ := newNavigationHandler(newStubRepo(), &maps.MockProvider{})

	req := httptest.NewRequest(http.MethodGet, "/geocode?address=Nowhere", nil)
	rec := httptest.NewRecorder()
	h.Geocode(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestReverseGeocodeHandler(t *testing.T) {
	point := domain.Coordinates{Lat: 13.1986, Lng: 77.7066}
	provider := &maps.MockProvider{
		Addresses: map[string]string{
			point.String(): "KIAL Road, Bengaluru",
		},
	}
	h, _ := newNavigationHandler(newStubRepo(), provider)

	req := httptest.NewRequest(http.MethodGet,
		"/reverse-geocode?latitude=13.1986&longitude=77.7066", nil)
	rec := httptest.NewRecorder()
	h.ReverseGeocode(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.ReverseGeocodeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Address != "KIAL Road, Bengaluru" {
		t.Fatalf("address = %q", res.Address)
	}
}

func TestReverseGeocodeHandlerMissingParameters(t *testing.T) {
	h, _ := newNavigationHandler(newStubRepo(), &maps.MockProvider{})

	req := httptest.NewRequest(http.MethodGet, "/reverse-geocode?latitude=13.19", nil)
	rec := httptest.NewRecorder()
	h.ReverseGeocode(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDistanceHandler(t *testing.T) {
	origin := domain.Coordinates{Lat: 13.1986, Lng: 77.7066}
	destination := domain.Coordinates{Lat: 13.199, Lng: 77.707}
	provider := &maps.MockProvider{
		Travel: map[string]ports.TravelSummary{
			origin.String() + "|" + destination.String(): {
				DistanceMeters:  1250,
				DurationSeconds: 900,
			},
		},
	}
	h, _ := newNavigationHandler(newStubRepo(), provider)

	req := httptest.NewRequest(http.MethodGet,
		"/get-distance?lat1=13.1986&lng1=77.7066&lat2=13.199&lng2=77.707", nil)
	rec := httptest.NewRecorder()
	h.Distance(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.DistanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Distance != "1.2 km" {
		t.Fatalf("distance = %q", res.Distance)
	}
	if res.StartCoordinates.Latitude != 13.1986 {
		t.Fatalf("start = %+v", res.StartCoordinates)
	}
}

func TestDistanceHandlerMissingParameters(t *testing.T) {
	h, notifier := newNavigationHandler(newStubRepo(), &maps.MockProvider{})

	req := httptest.NewRequest(http.MethodGet, "/get-distance?lat1=1&lng1=2", nil)
	rec := httptest.NewRecorder()
	h.Distance(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(notifier.failures) != 1 {
		t.Fatalf("failure notifications = %v", notifier.failures)
	}
}
