package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
)

// AdminFacilityService defines the moderation operations used by the handler
type AdminFacilityService interface {
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	List(ctx context.Context, filter repositories.FacilityFilter) ([]*entities.Facility, error)
}

// AdminCoachService defines the coach moderation operations
type AdminCoachService interface {
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	List(ctx context.Context, filter repositories.CoachFilter) ([]*entities.Coach, error)
}

// AdminSuggestionService defines the suggestion review operations
type AdminSuggestionService interface {
	List(ctx context.Context, limit, offset int) ([]*entities.Suggestion, error)
	Delete(ctx context.Context, id string) error
}

// ExportService defines the spreadsheet export operation
type ExportService interface {
	Listings(ctx context.Context) ([]byte, error)
}

// AdminHandler handles the moderation endpoints
type AdminHandler struct {
	facilities  AdminFacilityService
	coaches     AdminCoachService
	suggestions AdminSuggestionService
	export      ExportService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	facilities AdminFacilityService,
	coaches AdminCoachService,
	suggestions AdminSuggestionService,
	export ExportService,
) *AdminHandler {
	return &AdminHandler{
		facilities:  facilities,
		coaches:     coaches,
		suggestions: suggestions,
		export:      export,
	}
}

// ListPendingFacilities handles GET /api/admin/facilities/pending
func (h *AdminHandler) ListPendingFacilities(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	facilities, err := h.facilities.List(r.Context(), repositories.FacilityFilter{
		Status: entities.StatusPending,
		Limit:  queryInt(query.Get("limit"), 50),
		Offset: queryInt(query.Get("offset"), 0),
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list pending facilities")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"facilities": facilities,
		"count":      len(facilities),
	})
}

// ApproveFacility handles POST /api/admin/facilities/{id}/approve
func (h *AdminHandler) ApproveFacility(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.facilities.Approve, "approved")
}

// RejectFacility handles POST /api/admin/facilities/{id}/reject
func (h *AdminHandler) RejectFacility(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.facilities.Reject, "rejected")
}

// ApproveCoach handles POST /api/admin/coaches/{id}/approve
func (h *AdminHandler) ApproveCoach(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.coaches.Approve, "approved")
}

// RejectCoach handles POST /api/admin/coaches/{id}/reject
func (h *AdminHandler) RejectCoach(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.coaches.Reject, "rejected")
}

func (h *AdminHandler) moderate(w http.ResponseWriter, r *http.Request, action func(context.Context, string) error, status string) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "listing ID is required")
		return
	}

	if err := action(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": status,
	})
}

// ListSuggestions handles GET /api/admin/suggestions
func (h *AdminHandler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	suggestions, err := h.suggestions.List(r.Context(),
		queryInt(query.Get("limit"), 50),
		queryInt(query.Get("offset"), 0))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list suggestions")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}

// DeleteSuggestion handles DELETE /api/admin/suggestions/{id}
func (h *AdminHandler) DeleteSuggestion(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "suggestion ID is required")
		return
	}

	if err := h.suggestions.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportListings handles GET /api/admin/export/listings
func (h *AdminHandler) ExportListings(w http.ResponseWriter, r *http.Request) {
	data, err := h.export.Listings(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to export listings")
		return
	}

	filename := fmt.Sprintf("listings-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
