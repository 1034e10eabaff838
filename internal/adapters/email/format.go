package email

import (
	"fmt"
	"html"
	"strings"

	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/ports"
)

// FormatMeters renders a provider distance for human-readable bodies.
func FormatMeters(meters float64) string {
	if meters >= 1000 {
		return fmt.Sprintf("%.1f km", meters/1000)
	}
	return fmt.Sprintf("%.0f m", meters)
}

// FormatSeconds renders a provider duration for human-readable bodies.
func FormatSeconds(seconds float64) string {
	mins := int(seconds) / 60
	if mins < 1 {
		return fmt.Sprintf("%.0f sec", seconds)
	}
	if mins < 60 {
		return fmt.Sprintf("%d min", mins)
	}
	return fmt.Sprintf("%d hr %d min", mins/60, mins%60)
}

// FormatFacilityTable renders facility details as an HTML table, prefixed
// with the total count.
func FormatFacilityTable(facilities []ports.FacilitySummary) string {
	if len(facilities) == 0 {
		return "<p>No facilities found.</p>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h3>Total Facilities: %d</h3>", len(facilities))
	b.WriteString("<h3>Facility Details</h3>")
	b.WriteString("<table border='1'><tr><th>ID</th><th>Name</th><th>Category</th>" +
		"<th>Coordinates</th><th>Description</th><th>Created At</th></tr>")

	for _, f := range facilities {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			html.EscapeString(f.ID),
			html.EscapeString(f.Name),
			html.EscapeString(f.Category),
			html.EscapeString(f.Coordinates),
			html.EscapeString(f.Description),
			html.EscapeString(f.CreatedAt),
		)
	}

	b.WriteString("</table>")
	return b.String()
}

// FormatFacilityDetailsWithDistance renders per-facility blocks including
// the computed distance, for nearby-search notifications.
func FormatFacilityDetailsWithDistance(facilities []ports.FacilitySummary) string {
	var b strings.Builder
	for _, f := range facilities {
		fmt.Fprintf(&b, "<div><h4>%s (ID: %s)</h4>", html.EscapeString(f.Name), html.EscapeString(f.ID))
		fmt.Fprintf(&b, "<p><strong>Category:</strong> %s</p>", html.EscapeString(f.Category))
		fmt.Fprintf(&b, "<p><strong>Coordinates:</strong> %s</p>", html.EscapeString(f.Coordinates))
		fmt.Fprintf(&b, "<p><strong>Description:</strong> %s</p>", html.EscapeString(f.Description))
		fmt.Fprintf(&b, "<p><strong>Distance:</strong> %s</p>", html.EscapeString(f.Distance))
		fmt.Fprintf(&b, "<p><strong>Created At:</strong> %s</p><hr></div>", html.EscapeString(f.CreatedAt))
	}
	return b.String()
}

// FormatSteps renders navigation steps as an HTML table.
func FormatSteps(steps []domain.RouteStep) string {
	if len(steps) == 0 {
		return "<p>No steps found.</p>"
	}

	var b strings.Builder
	b.WriteString("<h3>Navigation Steps</h3>")
	b.WriteString("<table border='1'><tr><th>Distance</th><th>Duration</th><th>Instruction</th>" +
		"<th>Start Location</th><th>End Location</th></tr>")

	for _, s := range steps {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			FormatMeters(s.DistanceMeters),
			FormatSeconds(s.DurationSeconds),
			html.EscapeString(s.Instruction),
			html.EscapeString(s.Start.String()),
			html.EscapeString(s.End.String()),
		)
	}

	b.WriteString("</table>")
	return b.String()
}

// GeocodeSuccessBody prepares the notification body for a successful
// geocode lookup.
func GeocodeSuccessBody(address string, lat, lng float64) string {
	return fmt.Sprintf(
		"<h2>Geocoding Successful</h2>"+
			"<p><strong>Address:</strong> %s</p>"+
			"<p><strong>Latitude:</strong> %v</p>"+
			"<p><strong>Longitude:</strong> %v</p>",
		html.EscapeString(address), lat, lng,
	)
}

// GeocodeErrorBody prepares the notification body for a failed geocode
// lookup.
func GeocodeErrorBody(detail string) string {
	return "Geocoding failed. API Response: " + html.EscapeString(detail)
}

// ReverseGeocodeSuccessBody prepares the notification body for a successful
// reverse geocode lookup.
func ReverseGeocodeSuccessBody(lat, lng float64, address string) string {
	return fmt.Sprintf(
		"Reverse geocoding successful!<br><br>"+
			"Coordinates: Latitude: %v, Longitude: %v<br>"+
			"Address: %s",
		lat, lng, html.EscapeString(address),
	)
}

// ReverseGeocodeErrorBody prepares the notification body for a failed
// reverse geocode lookup.
func ReverseGeocodeErrorBody(detail string) string {
	return "Reverse geocoding failed. API Response: " + html.EscapeString(detail)
}
