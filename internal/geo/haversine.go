package geo

import (
	"errors"
	"fmt"
	"math"
)

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371

var (
	// ErrInvalidCoordinate reports a non-finite or out-of-range input.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrDomain reports that the haversine intermediate fell outside the
	// valid domain for the inverse-sine step. Callers must treat this as a
	// computation failure; the value is never clamped.
	ErrDomain = errors.New("haversine intermediate outside [0, 1]")
)

// Distance returns the great-circle distance in kilometers between two
// points given in decimal degrees, using the haversine formula.
//
// The function is pure and deterministic: identical inputs always produce
// bit-identical output.
func Distance(lat1, lng1, lat2, lng2 float64) (float64, error) {
	if err := validate(lat1, lng1); err != nil {
		return 0, fmt.Errorf("origin: %w", err)
	}
	if err := validate(lat2, lng2); err != nil {
		return 0, fmt.Errorf("destination: %w", err)
	}

	rlat1 := radians(lat1)
	rlat2 := radians(lat2)
	dlat := radians(lat2 - lat1)
	dlon := radians(lng2 - lng1)

	sinLat := math.Sin(dlat / 2)
	sinLon := math.Sin(dlon / 2)

	a := sinLat*sinLat + math.Cos(rlat1)*math.Cos(rlat2)*sinLon*sinLon
	if a < 0 || a > 1 {
		return 0, fmt.Errorf("%w: a=%v", ErrDomain, a)
	}

	c := 2 * math.Asin(math.Sqrt(a))
	return earthRadiusKm * c, nil
}

func validate(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return fmt.Errorf("%w: not finite (lat=%v lng=%v)", ErrInvalidCoordinate, lat, lng)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalidCoordinate, lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrInvalidCoordinate, lng)
	}
	return nil
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
