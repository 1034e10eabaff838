package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) ToLonLat() []float64 { return []float64{c.Lng, c.Lat} }

// String renders the "<lat>, <lng>" form used by facility records.
func (c Coordinates) String() string {
	return fmt.Sprintf("%v, %v", c.Lat, c.Lng)
}

// ParseCoordinates parses the "<lat>, <lng>" string stored on facility
// records. It requires exactly two comma-separated numeric values with the
// latitude in [-90, 90] and the longitude in [-180, 180].
func ParseCoordinates(s string) (Coordinates, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinates{}, fmt.Errorf("parse coordinates %q: expected 2 comma-separated values, got %d", s, len(parts))
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("parse coordinates %q: latitude: %w", s, err)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("parse coordinates %q: longitude: %w", s, err)
	}

	if lat < -90 || lat > 90 {
		return Coordinates{}, fmt.Errorf("parse coordinates %q: latitude %v outside [-90, 90]", s, lat)
	}
	if lng < -180 || lng > 180 {
		return Coordinates{}, fmt.Errorf("parse coordinates %q: longitude %v outside [-180, 180]", s, lng)
	}

	return Coordinates{Lat: lat, Lng: lng}, nil
}
