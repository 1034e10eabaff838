package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"airport-nav-service/internal/adapters/email"
	"airport-nav-service/internal/api/dto"
	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/ports"
	"airport-nav-service/internal/services"
)

const defaultNearbyRadiusMeters = 1000

// NavigationHandler exposes the mapping-provider endpoints: routing,
// facility navigation, nearby search, geocoding, and travel distance.
type NavigationHandler struct {
	Repo     ports.FacilityRepository
	Provider ports.MapsProvider
	Notifier ports.Notifier
	Validate *validator.Validate
}

// Route serves POST /route: geocode the destination address, then fetch
// a walking route from the current location.
func (h *NavigationHandler) Route(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ctx := r.Context()

	var req dto.RouteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		msg := "missing required parameters: current_location and/or destination"
		notifyFailure(ctx, h.Notifier, "Route Request Failed", msg)
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	current := domain.Coordinates{Lat: req.CurrentLocation.Lat, Lng: req.CurrentLocation.Lng}

	destination, endAddress, err := h.Provider.Geocode(ctx, req.Destination)
	if err != nil {
		zap.L().Warn("route destination geocode failed",
			zap.String("destination", req.Destination), zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Route Request Failed", "No directions found")
		writeError(w, r, http.StatusNotFound, "no directions found")
		return
	}

	route, err := h.Provider.Directions(ctx, current, destination)
	if err != nil {
		zap.L().Error("route directions failed", zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Route Request Failed", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	waypoints := make([]dto.LatLng, 0, len(route.Steps))
	for _, s := range route.Steps {
		waypoints = append(waypoints, dto.LatLng{Lat: s.End.Lat, Lng: s.End.Lng})
	}

	notifySuccess(ctx, h.Notifier, "Route Request Successful",
		"The route was successfully fetched.", nil, len(waypoints))

	writeJSON(w, r, http.StatusOK, dto.RouteResponse{
		StartAddress: current.String(),
		EndAddress:   endAddress,
		Waypoints:    waypoints,
	})
}

// Navigate serves GET /navigate: directions from the current location to
// a stored facility.
func (h *NavigationHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ctx := r.Context()

	lat, latOK := parseFloatParam(r, "current_lat")
	lng, lngOK := parseFloatParam(r, "current_lng")
	facilityID, idErr := strconv.ParseInt(r.URL.Query().Get("facility_id"), 10, 64)
	if !latOK || !lngOK || idErr != nil {
		msg := "missing required parameters: current_lat, current_lng, and/or facility_id"
		notifyFailure(ctx, h.Notifier, "Navigation API Error", msg)
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	current := domain.Coordinates{Lat: lat, Lng: lng}
	facility, route, err := services.NavigateToFacility(ctx, current, facilityID, h.Repo, h.Provider)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		msg := fmt.Sprintf("Facility with ID %d not found", facilityID)
		notifyFailure(ctx, h.Notifier, "Navigation API Error", msg)
		writeError(w, r, http.StatusNotFound, "facility not found")
		return
	case errors.Is(err, services.ErrBadStoredCoordinates):
		msg := "invalid coordinates format in the facility record"
		notifyFailure(ctx, h.Notifier, "Navigation API Error", msg)
		writeError(w, r, http.StatusBadRequest, msg)
		return
	case err != nil:
		zap.L().Error("navigate failed", zap.Int64("facility_id", facilityID), zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Navigation API Error", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	steps := make([]dto.NavigationStep, 0, len(route.Steps))
	for _, s := range route.Steps {
		steps = append(steps, dto.NavigationStep{
			Distance:      email.FormatMeters(s.DistanceMeters),
			Duration:      email.FormatSeconds(s.DurationSeconds),
			Instruction:   s.Instruction,
			StartLocation: dto.LatLng{Lat: s.Start.Lat, Lng: s.Start.Lng},
			EndLocation:   dto.LatLng{Lat: s.End.Lat, Lng: s.End.Lng},
		})
	}

	notifySuccess(ctx, h.Notifier, "Navigation API Success",
		"Navigation directions fetched successfully<br><br>Steps: "+email.FormatSteps(route.Steps),
		facilitySummaries([]*domain.Facility{facility}), ports.OmitCount)

	writeJSON(w, r, http.StatusOK, dto.NavigateResponse{
		Facility:        dto.NewFacilityResponse(facility),
		NavigationSteps: steps,
		TotalDistance:   email.FormatMeters(route.TotalDistanceMeters),
		TotalDuration:   email.FormatSeconds(route.TotalDurationSeconds),
	})
}

// Nearby serves GET /nearby-facilities.
func (h *NavigationHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ctx := r.Context()

	lat, latOK := parseFloatParam(r, "current_lat")
	lng, lngOK := parseFloatParam(r, "current_lng")
	if !latOK || !lngOK {
		msg := "missing required parameters: current_lat and current_lng"
		notifyFailure(ctx, h.Notifier, "Nearby Facilities API Error", msg)
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	radius := defaultNearbyRadiusMeters
	if raw := r.URL.Query().Get("radius"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(w, r, http.StatusBadRequest, "radius must be a positive integer")
			return
		}
		radius = v
	}

	reference := domain.Coordinates{Lat: lat, Lng: lng}
	results, err := services.NearbyFacilities(ctx, reference, radius, h.Provider)
	if err != nil {
		zap.L().Error("nearby facilities failed", zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Nearby Facilities API Error", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	facilities := make([]dto.NearbyFacilityResponse, 0, len(results))
	summaries := make([]ports.FacilitySummary, 0, len(results))
	for _, f := range results {
		facilities = append(facilities, dto.NearbyFacilityResponse{
			ID:          f.ID,
			Name:        f.Name,
			Category:    f.Category,
			Coordinates: f.Coordinates,
			Description: f.Description,
			Distance:    f.Distance,
			CreatedAt:   f.CreatedAt,
		})
		summaries = append(summaries, ports.FacilitySummary{
			ID:          f.ID,
			Name:        f.Name,
			Category:    f.Category,
			Coordinates: f.Coordinates,
			Description: f.Description,
			Distance:    f.Distance,
			CreatedAt:   f.CreatedAt,
		})
	}

	notifySuccess(ctx, h.Notifier, "Nearby Facilities API Success",
		"Nearby facilities fetched successfully<br><br>Facilities:<br>"+
			email.FormatFacilityDetailsWithDistance(summaries),
		nil, ports.OmitCount)

	writeJSON(w, r, http.StatusOK, dto.NearbyFacilitiesResponse{Facilities: facilities})
}

// Geocode serves GET /geocode.
func (h *NavigationHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ctx := r.Context()

	address := r.URL.Query().Get("address")
	if address == "" {
		msg := "missing required parameter: address"
		notifyFailure(ctx, h.Notifier, "Geocode API Error", email.GeocodeErrorBody(msg))
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	coords, _, err := h.Provider.Geocode(ctx, address)
	if err != nil {
		zap.L().Warn("geocode failed", zap.String("address", address), zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Geocode API Error", email.GeocodeErrorBody(err.Error()))
		writeError(w, r, http.StatusNotFound, "geocoding result is empty or invalid")
		return
	}

	notifySuccess(ctx, h.Notifier, "Geocode API Success",
		email.GeocodeSuccessBody(address, coords.Lat, coords.Lng), nil, ports.OmitCount)

	writeJSON(w, r, http.StatusOK, dto.GeocodeResponse{
		Address:   address,
		Latitude:  coords.Lat,
		Longitude: coords.Lng,
	})
}

// ReverseGeocode serves GET /reverse-geocode.
func (h *NavigationHandler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ctx := r.Context()

	lat, latOK := parseFloatParam(r, "latitude")
	lng, lngOK := parseFloatParam(r, "longitude")
	if !latOK || !lngOK {
		msg := "missing required parameters: latitude and longitude"
		notifyFailure(ctx, h.Notifier, "Reverse Geocode API Error", email.ReverseGeocodeErrorBody(msg))
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	address, err := h.Provider.ReverseGeocode(ctx, domain.Coordinates{Lat: lat, Lng: lng})
	if err != nil {
		zap.L().Warn("reverse geocode failed", zap.Float64("lat", lat), zap.Float64("lng", lng), zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Reverse Geocode API Error", email.ReverseGeocodeErrorBody(err.Error()))
		writeError(w, r, http.StatusNotFound, "reverse geocoding failed for the provided coordinates")
		return
	}

	notifySuccess(ctx, h.Notifier, "Reverse Geocode API Success",
		email.ReverseGeocodeSuccessBody(lat, lng, address), nil, ports.OmitCount)

	writeJSON(w, r, http.StatusOK, dto.ReverseGeocodeResponse{
		Address:   address,
		Latitude:  lat,
		Longitude: lng,
	})
}

// Distance serves GET /get-distance: provider-reported travel distance
// between two points.
func (h *NavigationHandler) Distance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ctx := r.Context()

	lat1, ok1 := parseFloatParam(r, "lat1")
	lng1, ok2 := parseFloatParam(r, "lng1")
	lat2, ok3 := parseFloatParam(r, "lat2")
	lng2, ok4 := parseFloatParam(r, "lng2")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		msg := "missing required parameters: lat1, lng1, lat2, and/or lng2"
		notifyFailure(ctx, h.Notifier, "Distance API Error", msg)
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	origin := domain.Coordinates{Lat: lat1, Lng: lng1}
	destination := domain.Coordinates{Lat: lat2, Lng: lng2}

	summary, err := h.Provider.TravelDistance(ctx, origin, destination)
	if err != nil {
		zap.L().Error("travel distance failed", zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Distance API Error", err.Error())
		writeError(w, r, http.StatusInternalServerError, "failed to calculate distance")
		return
	}

	distanceText := email.FormatMeters(summary.DistanceMeters)
	notifySuccess(ctx, h.Notifier, "Distance API Success",
		fmt.Sprintf("Distance calculation successful<br><br>Coordinates:<br>"+
			"Start: Latitude: %v, Longitude: %v<br>End: Latitude: %v, Longitude: %v<br>Distance: %s",
			lat1, lng1, lat2, lng2, distanceText),
		nil, ports.OmitCount)

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		Message:          "Distance calculation successful",
		StartCoordinates: dto.CoordinatePair{Latitude: lat1, Longitude: lng1},
		EndCoordinates:   dto.CoordinatePair{Latitude: lat2, Longitude: lng2},
		Distance:         distanceText,
	})
}
