package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/platform/obs"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// Geocode resolves one address using OpenRouteService (/geocode/search),
// consulting the Redis cache first. The returned label is the provider's
// matched address; when the result came from cache the label is the
// normalized input.
func (o *ORSProvider) Geocode(ctx context.Context, address string) (_ domain.Coordinates, _ string, err error) {
	defer obs.Time(ctx, "ors.geocode")(&err)

	norm := o.normalize(address)
	if norm == "" {
		return domain.Coordinates{}, "", errors.New("geocode: address must be non-empty")
	}

	if o.geocodeCache != nil {
		coords, ok, err := o.geocodeCache.Get(ctx, norm)
		if err != nil {
			return domain.Coordinates{}, "", fmt.Errorf("geocode cache read: %w", err)
		}
		if ok {
			return coords, norm, nil
		}
	}

	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", norm)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, "", fmt.Errorf("geocode %q: %w", norm, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, "", fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, "", fmt.Errorf("no geocode results for %q", address)
	}

	raw := decoded.Features[0].Geometry.Coordinates
	if len(raw) != 2 {
		return domain.Coordinates{}, "", fmt.Errorf("invalid coordinate format for %q", address)
	}

	coords := domain.Coordinates{Lat: raw[1], Lng: raw[0]}

	if o.geocodeCache != nil {
		if err := o.geocodeCache.Put(ctx, norm, coords); err != nil {
			zap.L().Warn("geocode cache write failed", zap.Error(err))
		}
	}

	return coords, decoded.Features[0].Properties.Label, nil
}

// ReverseGeocode resolves coordinates to a human-readable address using
// OpenRouteService (/geocode/reverse).
func (o *ORSProvider) ReverseGeocode(ctx context.Context, point domain.Coordinates) (_ string, err error) {
	defer obs.Time(ctx, "ors.reverseGeocode")(&err)

	endpoint := o.baseURL + "/geocode/reverse"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("point.lat", strconv.FormatFloat(point.Lat, 'f', -1, 64))
		q.Set("point.lon", strconv.FormatFloat(point.Lng, 'f', -1, 64))
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return "", fmt.Errorf("reverse geocode %v: %w", point, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode reverse geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return "", fmt.Errorf("no reverse geocode results for %v", point)
	}

	return decoded.Features[0].Properties.Label, nil
}
