package maps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/platform/obs"
	"airport-nav-service/internal/ports"
)

type poisRequest struct {
	Request  string       `json:"request"`
	Geometry poisGeometry `json:"geometry"`
}

type poisGeometry struct {
	GeoJSON poisPoint `json:"geojson"`
	Buffer  int       `json:"buffer"`
}

type poisPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type poisResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			OSMID       int64             `json:"osm_id"`
			OSMTags     map[string]string `json:"osm_tags"`
			CategoryIDs map[string]struct {
				CategoryName string `json:"category_name"`
			} `json:"category_ids"`
		} `json:"properties"`
	} `json:"features"`
}

// NearbyPlaces finds points of interest within radiusMeters of the given
// point using the OpenRouteService POI endpoint.
func (o *ORSProvider) NearbyPlaces(
	ctx context.Context,
	center domain.Coordinates,
	radiusMeters int,
) (_ []ports.Place, err error) {
	defer obs.Time(ctx, "ors.nearbyPlaces")(&err)

	if radiusMeters <= 0 {
		return nil, fmt.Errorf("nearby places: radius must be positive, got %d", radiusMeters)
	}

	endpoint := o.baseURL + "/pois"

	payload, err := json.Marshal(poisRequest{
		Request: "pois",
		Geometry: poisGeometry{
			GeoJSON: poisPoint{Type: "Point", Coordinates: center.ToLonLat()},
			Buffer:  radiusMeters,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal pois request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("pois request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded poisResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode pois response: %w", err)
	}

	places := make([]ports.Place, 0, len(decoded.Features))
	for _, f := range decoded.Features {
		raw := f.Geometry.Coordinates
		if len(raw) != 2 {
			return nil, fmt.Errorf("pois: invalid coordinate format for osm_id=%d", f.Properties.OSMID)
		}

		name := f.Properties.OSMTags["name"]
		if name == "" {
			name = "N/A"
		}

		// category_ids is keyed by numeric ID; pick the first name in key
		// order so results are deterministic.
		category := "N/A"
		keys := make([]string, 0, len(f.Properties.CategoryIDs))
		for k := range f.Properties.CategoryIDs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if len(keys) > 0 {
			category = f.Properties.CategoryIDs[keys[0]].CategoryName
		}

		places = append(places, ports.Place{
			ID:          strconv.FormatInt(f.Properties.OSMID, 10),
			Name:        name,
			Category:    category,
			Coordinates: domain.Coordinates{Lat: raw[1], Lng: raw[0]},
			Vicinity:    f.Properties.OSMTags["addr:street"],
		})
	}

	return places, nil
}
