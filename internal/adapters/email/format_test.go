package email

import (
	"strings"
	"testing"

	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/ports"
)

func TestFormatFacilityTable(t *testing.T) {
	facilities := []ports.FacilitySummary{
		{
			ID:          "1",
			Name:        "Gate 1",
			Category:    "Gate",
			Coordinates: "13.1986, 77.7066",
			Description: "Domestic departures",
			CreatedAt:   "09:30 AM",
		},
		{ID: "2", Name: "Lounge A", Category: "Lounge"},
	}

	got := FormatFacilityTable(facilities)

	for _, want := range []string{
		"Total Facilities: 2",
		"Facility Details",
		"Gate 1",
		"13.1986, 77.7066",
		"09:30 AM",
		"Lounge A",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("table missing %q:\n%s", want, got)
		}
	}
}

func TestFormatFacilityTableEmpty(t *testing.T) {
	if got := FormatFacilityTable(nil); got != "<p>No facilities found.</p>" {
		t.Fatalf("empty table = %q", got)
	}
}

func TestFormatFacilityTableEscapesHTML(t *testing.T) {
	got := FormatFacilityTable([]ports.FacilitySummary{
		{ID: "1", Name: "<script>alert(1)</script>"},
	})
	if strings.Contains(got, "<script>") {
		t.Fatal("facility name was not escaped")
	}
}

func TestFormatSteps(t *testing.T) {
	steps := []domain.RouteStep{
		{
			DistanceMeters:  1250,
			DurationSeconds: 900,
			Instruction:     "Head north on Concourse B",
			Start:           domain.Coordinates{Lat: 13.1986, Lng: 77.7066},
			End:             domain.Coordinates{Lat: 13.1990, Lng: 77.7070},
		},
	}

	got := FormatSteps(steps)

	for _, want := range []string{"Navigation Steps", "1.2 km", "15 min", "Head north on Concourse B"} {
		if !strings.Contains(got, want) {
			t.Fatalf("steps missing %q:\n%s", want, got)
		}
	}

	if got := FormatSteps(nil); got != "<p>No steps found.</p>" {
		t.Fatalf("empty steps = %q", got)
	}
}

func TestFormatMeters(t *testing.T) {
	cases := []struct {
		meters float64
		want   string
	}{
		{42, "42 m"},
		{999, "999 m"},
		{1000, "1.0 km"},
		{1250, "1.2 km"},
	}
	for _, tc := range cases {
		if got := FormatMeters(tc.meters); got != tc.want {
			t.Fatalf("FormatMeters(%v) = %q, want %q", tc.meters, got, tc.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{30, "30 sec"},
		{90, "1 min"},
		{3600, "1 hr 0 min"},
		{5400, "1 hr 30 min"},
	}
	for _, tc := range cases {
		if got := FormatSeconds(tc.seconds); got != tc.want {
			t.Fatalf("FormatSeconds(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestGeocodeBodies(t *testing.T) {
	success := GeocodeSuccessBody("Kempegowda International Airport", 13.1986, 77.7066)
	if !strings.Contains(success, "13.1986") || !strings.Contains(success, "Kempegowda") {
		t.Fatalf("geocode success body missing fields:\n%s", success)
	}

	failure := GeocodeErrorBody("no results")
	if !strings.Contains(failure, "Geocoding failed") {
		t.Fatalf("geocode error body = %q", failure)
	}

	rev := ReverseGeocodeSuccessBody(13.1986, 77.7066, "KIAL Road, Bengaluru")
	if !strings.Contains(rev, "KIAL Road") {
		t.Fatalf("reverse geocode body missing address:\n%s", rev)
	}
}
