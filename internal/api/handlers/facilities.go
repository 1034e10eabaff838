package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"airport-nav-service/internal/api/dto"
	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/ports"
)

// FacilityHandler exposes the airport facility CRUD, search, and stats
// endpoints. Every outcome triggers a matching email notification.
type FacilityHandler struct {
	Repo     ports.FacilityRepository
	Notifier ports.Notifier
	Validate *validator.Validate
}

// Facilities dispatches single-record operations on /airport/facilities
// by method.
func (h *FacilityHandler) Facilities(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getByID(w, r)
	case http.MethodPost:
		h.create(w, r)
	case http.MethodPut:
		h.update(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, PUT, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *FacilityHandler) getByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "id is required in the query parameters")
		return
	}

	facility, err := h.Repo.Get(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		notifyFailure(ctx, h.Notifier, "Facility Not Found",
			fmt.Sprintf("Facility with ID %d not found.", id))
		writeError(w, r, http.StatusNotFound, "facility not found")
		return
	}
	if err != nil {
		zap.L().Error("get facility failed", zap.Int64("id", id), zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Failed to Retrieve Facility", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	notifySuccess(ctx, h.Notifier, "Facility Retrieved", "Retrieved facility details successfully.",
		facilitySummaries([]*domain.Facility{facility}), 1)

	writeJSON(w, r, http.StatusOK, dto.FacilityItemResponse{
		TotalCount:      1,
		FacilityDetails: dto.NewFacilityResponse(facility),
	})
}

func (h *FacilityHandler) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.CreateFacilityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		notifyFailure(ctx, h.Notifier, "Failed to Add Facility", err.Error())
		writeError(w, r, http.StatusBadRequest, "name, category and coordinates are required")
		return
	}
	if _, err := domain.ParseCoordinates(req.Coordinates); err != nil {
		notifyFailure(ctx, h.Notifier, "Failed to Add Facility", err.Error())
		writeError(w, r, http.StatusBadRequest, "coordinates must be \"<lat>, <lng>\"")
		return
	}

	facility := &domain.Facility{
		Name:        req.Name,
		Category:    req.Category,
		Coordinates: req.Coordinates,
		Description: req.Description,
	}
	if err := h.Repo.Create(ctx, facility); err != nil {
		zap.L().Error("create facility failed", zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Failed to Add Facility", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	notifySuccess(ctx, h.Notifier, "New Facility Added", "Facility added successfully.",
		facilitySummaries([]*domain.Facility{facility}), ports.OmitCount)

	writeJSON(w, r, http.StatusCreated, dto.NewFacilityResponse(facility))
}

func (h *FacilityHandler) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.UpdateFacilityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		if req.ID == nil {
			writeError(w, r, http.StatusBadRequest, "id is required in the query parameters or body")
			return
		}
		id = *req.ID
	}

	if err := h.Validate.Struct(req); err != nil {
		notifyFailure(ctx, h.Notifier, "Failed to Update Facility", err.Error())
		writeError(w, r, http.StatusBadRequest, "invalid facility fields")
		return
	}
	if req.Coordinates != nil {
		if _, err := domain.ParseCoordinates(*req.Coordinates); err != nil {
			notifyFailure(ctx, h.Notifier, "Failed to Update Facility", err.Error())
			writeError(w, r, http.StatusBadRequest, "coordinates must be \"<lat>, <lng>\"")
			return
		}
	}

	upd := ports.FacilityUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Coordinates: req.Coordinates,
		Description: req.Description,
	}
	if upd.IsEmpty() {
		writeError(w, r, http.StatusBadRequest, "no fields to update")
		return
	}

	facility, err := h.Repo.Update(ctx, id, upd)
	if errors.Is(err, ports.ErrNotFound) {
		notifyFailure(ctx, h.Notifier, "Facility Not Found",
			fmt.Sprintf("Facility with ID %d not found for update.", id))
		writeError(w, r, http.StatusNotFound, "facility not found")
		return
	}
	if err != nil {
		zap.L().Error("update facility failed", zap.Int64("id", id), zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Failed to Update Facility", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	notifySuccess(ctx, h.Notifier, "Facility Updated", "Facility updated successfully.",
		facilitySummaries([]*domain.Facility{facility}), ports.OmitCount)

	writeJSON(w, r, http.StatusOK, dto.NewFacilityResponse(facility))
}

func (h *FacilityHandler) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseIDParam(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "id is required in the query parameters")
		return
	}

	facility, err := h.Repo.Delete(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		notifyFailure(ctx, h.Notifier, "Facility Not Found",
			fmt.Sprintf("Facility with ID %d not found for deletion.", id))
		writeError(w, r, http.StatusNotFound, "facility not found")
		return
	}
	if err != nil {
		zap.L().Error("delete facility failed", zap.Int64("id", id), zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Failed to Delete Facility", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	notifySuccess(ctx, h.Notifier, "Facility Deleted", "Facility deleted successfully.",
		facilitySummaries([]*domain.Facility{facility}), ports.OmitCount)

	writeJSON(w, r, http.StatusOK, dto.DeleteFacilityResponse{
		Message:         "Facility deleted successfully",
		FacilityDetails: dto.NewFacilityResponse(facility),
	})
}

// ListAll serves GET /all/airport/facilities.
func (h *FacilityHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ctx := r.Context()

	facilities, err := h.Repo.List(ctx)
	if err != nil {
		zap.L().Error("list facilities failed", zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Failed to Retrieve Facilities", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	notifySuccess(ctx, h.Notifier, "Facilities Retrieved", "Retrieved all facilities successfully.",
		facilitySummaries(facilities), len(facilities))

	writeJSON(w, r, http.StatusOK, dto.FacilityListResponse{
		TotalCount:      len(facilities),
		FacilityDetails: dto.NewFacilityResponses(facilities),
	})
}

// Search serves GET /airport/facilities/search with optional
// name/category/coordinates substring filters.
func (h *FacilityHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ctx := r.Context()

	q := r.URL.Query()
	filter := ports.FacilityFilter{
		Name:        q.Get("name"),
		Category:    q.Get("category"),
		Coordinates: q.Get("coordinates"),
	}

	facilities, err := h.Repo.Search(ctx, filter)
	if err != nil {
		zap.L().Error("search facilities failed", zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Failed to Search Facilities", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	notifySuccess(ctx, h.Notifier, "Facilities Searched", "Facilities searched successfully.",
		facilitySummaries(facilities), len(facilities))

	writeJSON(w, r, http.StatusOK, dto.FacilityListResponse{
		TotalCount:      len(facilities),
		FacilityDetails: dto.NewFacilityResponses(facilities),
	})
}

// Stats serves GET /airport/facilities/stats.
func (h *FacilityHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ctx := r.Context()

	stats, err := h.Repo.Stats(ctx)
	if err != nil {
		zap.L().Error("facility stats failed", zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Failed to Retrieve Facility Statistics", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	body := "Facility statistics retrieved successfully." + categoryStatsDetails(stats.ByCategory)
	var latestSummary []ports.FacilitySummary
	if stats.Latest != nil {
		latestSummary = facilitySummaries([]*domain.Facility{stats.Latest})
	}
	notifySuccess(ctx, h.Notifier, "Facility Statistics Retrieved", body, latestSummary, stats.Total)

	res := dto.FacilityStatsResponse{
		TotalFacilities: stats.Total,
		CategoryStats:   stats.ByCategory,
	}
	if stats.Latest != nil {
		latest := dto.NewFacilityResponse(stats.Latest)
		res.LatestFacility = &latest
	}
	writeJSON(w, r, http.StatusOK, res)
}

// BatchCreate serves POST /airport/facilities/batch: all records are
// inserted in one transaction, all or nothing.
func (h *FacilityHandler) BatchCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ctx := r.Context()

	var reqs []dto.CreateFacilityRequest
	if err := decodeJSON(r, &reqs); err != nil {
		notifyFailure(ctx, h.Notifier, "Batch Facility Addition Failed", "Invalid input format, expected a list.")
		writeError(w, r, http.StatusBadRequest, "invalid input format, expected a list")
		return
	}

	facilities := make([]*domain.Facility, 0, len(reqs))
	for _, req := range reqs {
		if err := h.Validate.Struct(req); err != nil {
			notifyFailure(ctx, h.Notifier, "Batch Facility Addition Failed",
				fmt.Sprintf("Missing required fields for facility %q: %v", req.Name, err))
			writeError(w, r, http.StatusBadRequest, "each facility needs name, category and coordinates")
			return
		}
		if _, err := domain.ParseCoordinates(req.Coordinates); err != nil {
			notifyFailure(ctx, h.Notifier, "Batch Facility Addition Failed", err.Error())
			writeError(w, r, http.StatusBadRequest, "coordinates must be \"<lat>, <lng>\"")
			return
		}
		facilities = append(facilities, &domain.Facility{
			Name:        req.Name,
			Category:    req.Category,
			Coordinates: req.Coordinates,
			Description: req.Description,
		})
	}

	if err := h.Repo.CreateBatch(ctx, facilities); err != nil {
		zap.L().Error("batch create failed", zap.Int("count", len(facilities)), zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Batch Facility Addition Failed", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	notifySuccess(ctx, h.Notifier, "Batch Facility Addition Success", "Facilities added successfully.",
		facilitySummaries(facilities), len(facilities))

	writeJSON(w, r, http.StatusCreated, dto.BatchCreateResponse{
		Message:         "Facilities added successfully.",
		Facilities:      dto.NewFacilityResponses(facilities),
		TotalFacilities: len(facilities),
	})
}

// BatchUpdate serves PUT /airport/facilities/batch-update.
func (h *FacilityHandler) BatchUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.Header().Set("Allow", http.MethodPut)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ctx := r.Context()

	var req dto.BatchUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, "at least one ID is required for batch update")
		return
	}
	if req.UpdateData.Coordinates != nil {
		if _, err := domain.ParseCoordinates(*req.UpdateData.Coordinates); err != nil {
			notifyFailure(ctx, h.Notifier, "Failed to Batch Update Facilities", err.Error())
			writeError(w, r, http.StatusBadRequest, "coordinates must be \"<lat>, <lng>\"")
			return
		}
	}

	upd := ports.FacilityUpdate{
		Name:        req.UpdateData.Name,
		Category:    req.UpdateData.Category,
		Coordinates: req.UpdateData.Coordinates,
		Description: req.UpdateData.Description,
	}
	if upd.IsEmpty() {
		writeError(w, r, http.StatusBadRequest, "update_data must set at least one field")
		return
	}

	updated, err := h.Repo.UpdateBatch(ctx, req.IDs, upd)
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "no facilities found for the provided IDs")
		return
	}
	if err != nil {
		zap.L().Error("batch update failed", zap.Int("ids", len(req.IDs)), zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Failed to Batch Update Facilities", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	body := "Batch update of facilities completed successfully."
	if stats, err := h.Repo.Stats(ctx); err == nil {
		body += categoryStatsDetails(stats.ByCategory)
	}
	notifySuccess(ctx, h.Notifier, "Batch Update Successful", body,
		facilitySummaries(updated), ports.OmitCount)

	writeJSON(w, r, http.StatusOK, dto.BatchUpdateResponse{
		Message:           "Batch update successful",
		UpdatedFacilities: dto.NewFacilityResponses(updated),
	})
}

// Clear serves DELETE /airport/facilities/clear.
func (h *FacilityHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", http.MethodDelete)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ctx := r.Context()

	cleared, err := h.Repo.Clear(ctx)
	if errors.Is(err, ports.ErrNotFound) {
		writeJSON(w, r, http.StatusNotFound, map[string]string{"message": "No facilities to clear."})
		return
	}
	if err != nil {
		zap.L().Error("clear facilities failed", zap.Error(err))
		notifyFailure(ctx, h.Notifier, "Failed to Clear All Facilities", err.Error())
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	notifySuccess(ctx, h.Notifier, "All Facilities Cleared",
		"All airport facilities have been cleared successfully.",
		facilitySummaries(cleared), ports.OmitCount)

	writeJSON(w, r, http.StatusOK, dto.ClearFacilitiesResponse{
		Message:           "All facilities cleared successfully",
		TotalCount:        len(cleared),
		ClearedFacilities: dto.NewFacilityResponses(cleared),
	})
}

func parseIDParam(r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// categoryStatsDetails renders a per-category breakdown for notification
// bodies, sorted for stable output.
func categoryStatsDetails(byCategory map[string]int) string {
	if len(byCategory) == 0 {
		return ""
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString("<br><br>Category Stats:<br>")
	for i, c := range categories {
		if i > 0 {
			b.WriteString("<br>")
		}
		fmt.Fprintf(&b, "%s: %d", c, byCategory[c])
	}
	return b.String()
}
