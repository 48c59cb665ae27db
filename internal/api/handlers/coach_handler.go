package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
)

// CoachService defines the coach operations used by the handler
type CoachService interface {
	Create(ctx context.Context, coach *entities.Coach) error
	GetBySlug(ctx context.Context, slug string) (*entities.Coach, error)
	Update(ctx context.Context, coach *entities.Coach) error
	Delete(ctx context.Context, id string) error
	ListPublic(ctx context.Context, filter repositories.CoachFilter) ([]*entities.Coach, error)
}

// CoachHandler handles coach-related HTTP requests
type CoachHandler struct {
	service CoachService
}

// NewCoachHandler creates a new coach handler
func NewCoachHandler(service CoachService) *CoachHandler {
	return &CoachHandler{
		service: service,
	}
}

// ListCoaches handles GET /api/coaches
func (h *CoachHandler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.CoachFilter{
		City:   query.Get("city"),
		County: query.Get("county"),
		Sport:  query.Get("sport"),
		Limit:  queryInt(query.Get("limit"), 30),
		Offset: queryInt(query.Get("offset"), 0),
	}

	coaches, err := h.service.ListPublic(r.Context(), filter)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list coaches")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"coaches": coaches,
		"count":   len(coaches),
	})
}

// GetCoach handles GET /api/coaches/{slug}
func (h *CoachHandler) GetCoach(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		respondWithError(w, http.StatusBadRequest, "coach slug is required")
		return
	}

	coach, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, coach)
}

// CreateCoach handles POST /api/coaches
func (h *CoachHandler) CreateCoach(w http.ResponseWriter, r *http.Request) {
	var coach entities.Coach
	if err := json.NewDecoder(r.Body).Decode(&coach); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Create(r.Context(), &coach); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, coach)
}

// UpdateCoach handles PUT /api/coaches/{id}
func (h *CoachHandler) UpdateCoach(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "coach ID is required")
		return
	}

	var coach entities.Coach
	if err := json.NewDecoder(r.Body).Decode(&coach); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	coach.ID = id

	if err := h.service.Update(r.Context(), &coach); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, coach)
}

// DeleteCoach handles DELETE /api/coaches/{id}
func (h *CoachHandler) DeleteCoach(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "coach ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
