package geo

import (
	"errors"
	"math"
	"testing"
)

// within checks |got-want| <= tolerance*want.
func within(t *testing.T, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance*want {
		t.Fatalf("distance = %v, want %v (tolerance %v%%)", got, want, tolerance*100)
	}
}

func TestDistanceSamePoint(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{51.5007, 0.1246},
		{-33.8688, 151.2093},
		{90, 0},
	}
	for _, p := range points {
		d, err := Distance(p[0], p[1], p[0], p[1])
		if err != nil {
			t.Fatalf("unexpected error for (%v, %v): %v", p[0], p[1], err)
		}
		if d != 0 {
			t.Fatalf("distance((%v,%v), same) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{51.5007, 0.1246, 40.6892, 74.0445},
		{13.0827, 80.2707, 28.6139, 77.2090},
		{-12.5, 130.9, 35.68, 139.69},
	}
	for _, p := range pairs {
		ab, err := Distance(p[0], p[1], p[2], p[3])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ba, err := Distance(p[2], p[3], p[0], p[1])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ab != ba {
			t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestDistanceKnownPoints(t *testing.T) {
	cases := []struct {
		name      string
		lat1      float64
		lng1      float64
		lat2      float64
		lng2      float64
		wantKm    float64
		tolerance float64
	}{
		{"one degree longitude at equator", 0, 0, 0, 1, 111.19, 0.005},
		{"london to new york", 51.5007, 0.1246, 40.6892, 74.0445, 5574, 0.01},
		{"chennai to new delhi", 13.0827, 80.2707, 28.6139, 77.2090, 1761, 0.01},
		{"antipodal on equator", 0, 0, 0, 180, 20015, 0.005},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Distance(tc.lat1, tc.lng1, tc.lat2, tc.lng2)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			within(t, got, tc.wantKm, tc.tolerance)
		})
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	triples := [][6]float64{
		{0, 0, 10, 10, 20, 20},
		{51.5007, 0.1246, 48.8566, 2.3522, 40.6892, -74.0445},
		{-33.8688, 151.2093, 1.3521, 103.8198, 35.6762, 139.6503},
	}
	const epsilon = 1e-6

	for _, p := range triples {
		ac, err := Distance(p[0], p[1], p[4], p[5])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ab, err := Distance(p[0], p[1], p[2], p[3])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		bc, err := Distance(p[2], p[3], p[4], p[5])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ac > ab+bc+epsilon {
			t.Fatalf("triangle inequality violated: %v > %v + %v", ac, ab, bc)
		}
	}
}

func TestDistanceDeterministic(t *testing.T) {
	first, err := Distance(13.0827, 80.2707, 28.6139, 77.2090)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 100; i++ {
		again, err := Distance(13.0827, 80.2707, 28.6139, 77.2090)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("non-deterministic result: %v vs %v", again, first)
		}
	}
}

func TestDistanceInvalidInputs(t *testing.T) {
	cases := []struct {
		name string
		args [4]float64
	}{
		{"nan latitude", [4]float64{math.NaN(), 0, 0, 0}},
		{"inf longitude", [4]float64{0, math.Inf(1), 0, 0}},
		{"latitude above range", [4]float64{90.0001, 0, 0, 0}},
		{"latitude below range", [4]float64{0, 0, -91, 0}},
		{"longitude above range", [4]float64{0, 180.5, 0, 0}},
		{"longitude below range", [4]float64{0, 0, 0, -180.5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Distance(tc.args[0], tc.args[1], tc.args[2], tc.args[3])
			if !errors.Is(err, ErrInvalidCoordinate) {
				t.Fatalf("error = %v, want ErrInvalidCoordinate", err)
			}
		})
	}
}

func TestDistanceNonNegative(t *testing.T) {
	pairs := [][4]float64{
		{0, 0, 0, 0},
		{89.9, 179.9, -89.9, -179.9},
		{45, -120, -45, 60},
	}
	for _, p := range pairs {
		d, err := Distance(p[0], p[1], p[2], p[3])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d < 0 {
			t.Fatalf("negative distance %v for %v", d, p)
		}
	}
}
