package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"airport-nav-service/internal/platform/obs"
	"airport-nav-service/internal/ports"
)

// SQLDistanceCache is a Postgres-backed cache for origin->destination
// travel results. Keys are "<lat>, <lng>" coordinate strings.
type SQLDistanceCache struct {
	DB *sql.DB
}

func NewSQLDistanceCache(db *sql.DB) *SQLDistanceCache {
	return &SQLDistanceCache{DB: db}
}

// Get fetches the cached travel result for one origin/destination pair.
// The second return value reports whether the pair was present.
func (s *SQLDistanceCache) Get(
	ctx context.Context,
	origin string,
	destination string,
) (_ ports.TravelSummary, _ bool, err error) {
	defer obs.Time(ctx, "distance.cache.Get")(&err)

	if s.DB == nil {
		return ports.TravelSummary{}, false, errors.New("distance cache: db is nil")
	}

	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return ports.TravelSummary{}, false, errors.New("get distance cache: origin and destination must not be empty")
	}

	q := `
	SELECT distance_meters, duration_seconds
	FROM distance_cache
	WHERE origin = $1
		AND destination = $2;
	`

	var meters, seconds float64
	row := s.DB.QueryRowContext(ctx, q, origin, destination)
	if err := row.Scan(&meters, &seconds); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.TravelSummary{}, false, nil
		}
		return ports.TravelSummary{}, false, fmt.Errorf("get distance cache: query distance_cache table: %w", err)
	}

	return ports.TravelSummary{DistanceMeters: meters, DurationSeconds: seconds}, true, nil
}

// Put stores a travel result for one origin/destination pair, replacing any
// previous value.
func (s *SQLDistanceCache) Put(
	ctx context.Context,
	origin string,
	destination string,
	result ports.TravelSummary,
) error {
	if s.DB == nil {
		return errors.New("distance cache: db is nil")
	}

	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return errors.New("insert distance cache: origin and destination must not be empty")
	}

	q := `
	INSERT INTO distance_cache (origin, destination, distance_meters, duration_seconds)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds;
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, result.DistanceMeters, result.DurationSeconds); err != nil {
		return fmt.Errorf("insert distance cache %q -> %q: %w", origin, destination, err)
	}

	return nil
}
