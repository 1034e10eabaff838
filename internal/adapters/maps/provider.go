package maps

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"airport-nav-service/internal/adapters/cache"
)

// ORSProvider implements MapsProvider using OpenRouteService.
//
// It coordinates:
//   - Address normalization
//   - Redis geocode caching
//   - Postgres travel-distance caching
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type ORSProvider struct {
	session       *http.Client
	apiKey        string
	baseURL       string
	profile       string
	geocodeCache  *cache.RedisGeocodeCache
	distanceCache *cache.SQLDistanceCache
}

func NewORSProvider(
	apiKey string,
	geocodeCache *cache.RedisGeocodeCache,
	distanceCache *cache.SQLDistanceCache,
) (*ORSProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	provider := &ORSProvider{
		session:       &http.Client{Timeout: 10 * time.Second},
		apiKey:        apiKey,
		baseURL:       "https://api.openrouteservice.org",
		profile:       "foot-walking",
		geocodeCache:  geocodeCache,
		distanceCache: distanceCache,
	}

	return provider, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (o *ORSProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
