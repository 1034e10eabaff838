package dto

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RouteRequest struct {
	CurrentLocation *LatLng `json:"current_location" validate:"required"`
	Destination     string  `json:"destination" validate:"required"`
}

type RouteResponse struct {
	StartAddress string   `json:"start_address"`
	EndAddress   string   `json:"end_address"`
	Waypoints    []LatLng `json:"waypoints"`
}

// NavigationStep carries one turn instruction with human-readable
// distance and duration text.
type NavigationStep struct {
	Distance      string `json:"distance"`
	Duration      string `json:"duration"`
	Instruction   string `json:"instruction"`
	StartLocation LatLng `json:"start_location"`
	EndLocation   LatLng `json:"end_location"`
}

type NavigateResponse struct {
	Facility        FacilityResponse `json:"facility"`
	NavigationSteps []NavigationStep `json:"navigation_steps"`
	TotalDistance   string           `json:"total_distance"`
	TotalDuration   string           `json:"total_duration"`
}

type NearbyFacilityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Coordinates string `json:"coordinates"`
	Description string `json:"description"`
	Distance    string `json:"distance"`
	CreatedAt   string `json:"created_at"`
}

type NearbyFacilitiesResponse struct {
	Facilities []NearbyFacilityResponse `json:"facilities"`
}

type GeocodeResponse struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ReverseGeocodeResponse struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CoordinatePair struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type DistanceResponse struct {
	Message          string         `json:"message"`
	StartCoordinates CoordinatePair `json:"start_coordinates"`
	EndCoordinates   CoordinatePair `json:"end_coordinates"`
	Distance         string         `json:"distance"`
}
