package maps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/platform/obs"
	"airport-nav-service/internal/ports"
)

type matrixRequest struct {
	Locations    [][]float64 `json:"locations"`
	Sources      []int       `json:"sources"`
	Destinations []int       `json:"destinations"`
	Metrics      []string    `json:"metrics"`
}

type matrixResponse struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

// TravelDistance retrieves travel distance and duration between two points
// using the OpenRouteService matrix endpoint, consulting the Postgres
// distance cache first.
func (o *ORSProvider) TravelDistance(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (_ ports.TravelSummary, err error) {
	defer obs.Time(ctx, "ors.travelDistance")(&err)

	originKey := origin.String()
	destinationKey := destination.String()

	if o.distanceCache != nil {
		result, ok, err := o.distanceCache.Get(ctx, originKey, destinationKey)
		if err != nil {
			return ports.TravelSummary{}, fmt.Errorf("distance cache read: %w", err)
		}
		if ok {
			return result, nil
		}
	}

	endpoint := fmt.Sprintf("%s/v2/matrix/%s", o.baseURL, o.profile)

	payload, err := json.Marshal(matrixRequest{
		Locations:    [][]float64{origin.ToLonLat(), destination.ToLonLat()},
		Sources:      []int{0},
		Destinations: []int{1},
		Metrics:      []string{"distance", "duration"},
	})
	if err != nil {
		return ports.TravelSummary{}, fmt.Errorf("marshal matrix request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return ports.TravelSummary{}, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return ports.TravelSummary{}, fmt.Errorf("decode matrix response: %w", err)
	}

	if len(mr.Distances) != 1 || len(mr.Durations) != 1 ||
		len(mr.Distances[0]) != 1 || len(mr.Durations[0]) != 1 {
		return ports.TravelSummary{}, fmt.Errorf(
			"expected a 1x1 matrix; got distances=%d durations=%d",
			len(mr.Distances), len(mr.Durations),
		)
	}

	metersPtr := mr.Distances[0][0]
	secondsPtr := mr.Durations[0][0]
	if metersPtr == nil || secondsPtr == nil {
		return ports.TravelSummary{}, fmt.Errorf("matrix returned no metrics for %v -> %v", origin, destination)
	}

	result := ports.TravelSummary{
		DistanceMeters:  *metersPtr,
		DurationSeconds: *secondsPtr,
	}

	if o.distanceCache != nil {
		if err := o.distanceCache.Put(ctx, originKey, destinationKey, result); err != nil {
			zap.L().Warn("distance cache write failed", zap.Error(err))
		}
	}

	return result, nil
}
