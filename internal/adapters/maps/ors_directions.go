package maps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/platform/obs"
)

type directionsRequest struct {
	Coordinates  [][]float64 `json:"coordinates"`
	Instructions bool        `json:"instructions"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Segments []struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
				Steps    []struct {
					Distance    float64 `json:"distance"`
					Duration    float64 `json:"duration"`
					Instruction string  `json:"instruction"`
					WayPoints   []int   `json:"way_points"`
				} `json:"steps"`
			} `json:"segments"`
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// Directions computes a walking route between two points using the
// OpenRouteService directions endpoint (GeoJSON variant). Step start/end
// locations are resolved from the route geometry via way_points indices.
func (o *ORSProvider) Directions(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "ors.directions")(&err)

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, o.profile)

	payload, err := json.Marshal(directionsRequest{
		Coordinates:  [][]float64{origin.ToLonLat(), destination.ToLonLat()},
		Instructions: true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return nil, fmt.Errorf("no route found from %v to %v", origin, destination)
	}

	feature := decoded.Features[0]
	geometry := feature.Geometry.Coordinates

	pointAt := func(idx int) (domain.Coordinates, error) {
		if idx < 0 || idx >= len(geometry) {
			return domain.Coordinates{}, fmt.Errorf("way_point index %d outside geometry of %d points", idx, len(geometry))
		}
		p := geometry[idx]
		if len(p) < 2 {
			return domain.Coordinates{}, fmt.Errorf("invalid geometry point at index %d", idx)
		}
		return domain.Coordinates{Lat: p[1], Lng: p[0]}, nil
	}

	route := &domain.Route{
		TotalDistanceMeters:  feature.Properties.Summary.Distance,
		TotalDurationSeconds: feature.Properties.Summary.Duration,
	}

	for _, seg := range feature.Properties.Segments {
		for _, st := range seg.Steps {
			if len(st.WayPoints) != 2 {
				return nil, fmt.Errorf("step %q: expected 2 way_points, got %d", st.Instruction, len(st.WayPoints))
			}

			start, err := pointAt(st.WayPoints[0])
			if err != nil {
				return nil, fmt.Errorf("step %q: %w", st.Instruction, err)
			}
			end, err := pointAt(st.WayPoints[1])
			if err != nil {
				return nil, fmt.Errorf("step %q: %w", st.Instruction, err)
			}

			route.Steps = append(route.Steps, domain.RouteStep{
				DistanceMeters:  st.Distance,
				DurationSeconds: st.Duration,
				Instruction:     st.Instruction,
				Start:           start,
				End:             end,
			})
		}
	}

	return route, nil
}
