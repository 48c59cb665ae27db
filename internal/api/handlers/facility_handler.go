package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
)

// FacilityService defines the facility operations used by the handler
type FacilityService interface {
	Create(ctx context.Context, facility *entities.Facility) error
	GetByID(ctx context.Context, id string) (*entities.Facility, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Facility, error)
	Update(ctx context.Context, facility *entities.Facility) error
	Delete(ctx context.Context, id string) error
	ListPublic(ctx context.Context, filter repositories.FacilityFilter) ([]*entities.Facility, error)
	Search(ctx context.Context, params repositories.SearchParams) (*repositories.SearchResult, error)
}

// FacilityHandler handles facility-related HTTP requests
type FacilityHandler struct {
	service FacilityService
}

// NewFacilityHandler creates a new facility handler
func NewFacilityHandler(service FacilityService) *FacilityHandler {
	return &FacilityHandler{
		service: service,
	}
}

// GetFacility handles GET /api/facilities/{slug}
func (h *FacilityHandler) GetFacility(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		respondWithError(w, http.StatusBadRequest, "facility slug is required")
		return
	}

	facility, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, facility)
}

// ListFacilities handles GET /api/facilities
func (h *FacilityHandler) ListFacilities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.FacilityFilter{
		Kind:   entities.FacilityKind(query.Get("kind")),
		City:   query.Get("city"),
		County: query.Get("county"),
		Sport:  query.Get("sport"),
		Limit:  queryInt(query.Get("limit"), 30),
		Offset: queryInt(query.Get("offset"), 0),
	}

	facilities, err := h.service.ListPublic(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list facilities")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"facilities": facilities,
		"count":      len(facilities),
	})
}

// SearchFacilities handles GET /api/facilities/search
func (h *FacilityHandler) SearchFacilities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := repositories.SearchParams{
		Query:  query.Get("q"),
		Kind:   entities.FacilityKind(query.Get("kind")),
		City:   query.Get("city"),
		County: query.Get("county"),
		Sport:  query.Get("sport"),
		Limit:  queryInt(query.Get("limit"), 30),
		Offset: queryInt(query.Get("offset"), 0),
	}

	result, err := h.service.Search(r.Context(), params)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to search facilities")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"facilities":  result.Facilities,
		"total_count": result.TotalCount,
	})
}

// CreateFacility handles POST /api/facilities
func (h *FacilityHandler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var facility entities.Facility
	if err := json.NewDecoder(r.Body).Decode(&facility); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Create(r.Context(), &facility); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, facility)
}

// UpdateFacility handles PUT /api/facilities/{id}
func (h *FacilityHandler) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "facility ID is required")
		return
	}

	var facility entities.Facility
	if err := json.NewDecoder(r.Body).Decode(&facility); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	facility.ID = id

	if err := h.service.Update(r.Context(), &facility); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, facility)
}

// DeleteFacility handles DELETE /api/facilities/{id}
func (h *FacilityHandler) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "facility ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
