package dto

import "airport-nav-service/internal/domain"

// FacilityResponse mirrors a facility row; created_at is rendered in
// 12-hour clock format.
type FacilityResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Coordinates string `json:"coordinates"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// NewFacilityResponse converts a domain record into its wire form.
func NewFacilityResponse(f *domain.Facility) FacilityResponse {
	return FacilityResponse{
		ID:          f.ID,
		Name:        f.Name,
		Category:    f.Category,
		Coordinates: f.Coordinates,
		Description: f.Description,
		CreatedAt:   f.CreatedAtDisplay(),
	}
}

// NewFacilityResponses converts a slice of domain records, never nil.
func NewFacilityResponses(fs []*domain.Facility) []FacilityResponse {
	out := make([]FacilityResponse, 0, len(fs))
	for _, f := range fs {
		out = append(out, NewFacilityResponse(f))
	}
	return out
}

type CreateFacilityRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"required,max=50"`
	Coordinates string `json:"coordinates" validate:"required,max=50"`
	Description string `json:"description" validate:"max=200"`
}

// UpdateFacilityRequest carries the target ID plus the fields to change;
// nil fields are left untouched.
type UpdateFacilityRequest struct {
	ID          *int64  `json:"id"`
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
	Coordinates *string `json:"coordinates" validate:"omitempty,max=50"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

type BatchUpdateRequest struct {
	IDs        []int64           `json:"ids" validate:"required,min=1"`
	UpdateData UpdateFieldsInput `json:"update_data"`
}

// UpdateFieldsInput is the update_data object of a batch update. Unknown
// columns are rejected at decode time by DisallowUnknownFields.
type UpdateFieldsInput struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
	Coordinates *string `json:"coordinates" validate:"omitempty,max=50"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

type FacilityListResponse struct {
	TotalCount      int                `json:"total_count"`
	FacilityDetails []FacilityResponse `json:"facility_details"`
}

type FacilityItemResponse struct {
	TotalCount      int              `json:"total_count"`
	FacilityDetails FacilityResponse `json:"facility_details"`
}

type FacilityStatsResponse struct {
	TotalFacilities int               `json:"total_facilities"`
	CategoryStats   map[string]int    `json:"category_stats"`
	LatestFacility  *FacilityResponse `json:"latest_facility"`
}

type BatchCreateResponse struct {
	Message         string             `json:"message"`
	Facilities      []FacilityResponse `json:"facilities"`
	TotalFacilities int                `json:"total_facilities"`
}

type BatchUpdateResponse struct {
	Message           string             `json:"message"`
	UpdatedFacilities []FacilityResponse `json:"updated_facilities"`
}

type DeleteFacilityResponse struct {
	Message         string           `json:"message"`
	FacilityDetails FacilityResponse `json:"facility_details"`
}

type ClearFacilitiesResponse struct {
	Message           string             `json:"message"`
	TotalCount        int                `json:"total_count"`
	ClearedFacilities []FacilityResponse `json:"cleared_facilities"`
}
