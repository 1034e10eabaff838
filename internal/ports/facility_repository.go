package ports

import (
	"context"
	"errors"

	"airport-nav-service/internal/domain"
)

// Returned by repository lookups when no facility matches the given ID
// (or, for Clear, when the table is already empty).
var ErrNotFound = errors.New("facility not found")

// Mutable facility columns for single and batch updates. Nil fields are
// left untouched; id and created_at are never overwritten.
type FacilityUpdate struct {
	Name        *string
	Category    *string
	Coordinates *string
	Description *string
}

// IsEmpty reports whether the update would change nothing.
func (u FacilityUpdate) IsEmpty() bool {
	return u.Name == nil && u.Category == nil && u.Coordinates == nil && u.Description == nil
}

// Aggregate statistics over the facility table.
type FacilityStats struct {
	Total      int
	ByCategory map[string]int
	Latest     *domain.Facility
}

// Optional filters for facility search; empty strings match everything.
type FacilityFilter struct {
	Name        string
	Category    string
	Coordinates string
}

// Port: a boundary for reading and writing Facility records.
type FacilityRepository interface {
	// Retrieve all facilities ordered by ID.
	List(ctx context.Context) ([]*domain.Facility, error)
	// Retrieve one facility by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id int64) (*domain.Facility, error)
	// Insert a facility; the store assigns ID and CreatedAt.
	Create(ctx context.Context, f *domain.Facility) error
	// Insert several facilities in one transaction, all or nothing.
	CreateBatch(ctx context.Context, fs []*domain.Facility) error
	// Overwrite the given fields of one facility and return the result.
	Update(ctx context.Context, id int64, upd FacilityUpdate) (*domain.Facility, error)
	// Overwrite the given fields of every listed facility.
	UpdateBatch(ctx context.Context, ids []int64, upd FacilityUpdate) ([]*domain.Facility, error)
	// Delete one facility and return the removed record.
	Delete(ctx context.Context, id int64) (*domain.Facility, error)
	// Delete every facility and return the removed records.
	Clear(ctx context.Context) ([]*domain.Facility, error)
	// Retrieve facilities matching the filter (case-insensitive substrings).
	Search(ctx context.Context, filter FacilityFilter) ([]*domain.Facility, error)
	// Compute table-wide statistics.
	Stats(ctx context.Context) (*FacilityStats, error)
}
