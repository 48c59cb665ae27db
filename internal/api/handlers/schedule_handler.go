package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sportmap-ro/backend/internal/application/services"
	"github.com/sportmap-ro/backend/internal/domain/entities"
)

// ScheduleService defines the schedule operations used by the handler
type ScheduleService interface {
	ForFacilitySlug(ctx context.Context, slug string) (*services.FacilitySchedule, error)
	ForField(ctx context.Context, fieldID string) (*services.FieldSchedule, error)
	ReplaceFields(ctx context.Context, facilityID string, fields []*entities.SportsField) error
}

// ScheduleHandler serves the weekly schedule grids for facility pages
type ScheduleHandler struct {
	service ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(service ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
	}
}

// GetFacilitySchedule handles GET /api/facilities/{slug}/schedule
func (h *ScheduleHandler) GetFacilitySchedule(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		respondWithError(w, http.StatusBadRequest, "facility slug is required")
		return
	}

	result, err := h.service.ForFacilitySlug(r.Context(), slug)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// GetFieldSchedule handles GET /api/fields/{id}/schedule
func (h *ScheduleHandler) GetFieldSchedule(w http.ResponseWriter, r *http.Request) {
	fieldID := r.PathValue("id")
	if fieldID == "" {
		respondWithError(w, http.StatusBadRequest, "field ID is required")
		return
	}

	result, err := h.service.ForField(r.Context(), fieldID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

type replaceFieldsRequest struct {
	Fields []*entities.SportsField `json:"fields"`
}

// ReplaceFields handles PUT /api/facilities/{id}/fields. The payload always
// carries the complete field list; partial slot edits do not exist.
func (h *ScheduleHandler) ReplaceFields(w http.ResponseWriter, r *http.Request) {
	facilityID := r.PathValue("id")
	if facilityID == "" {
		respondWithError(w, http.StatusBadRequest, "facility ID is required")
		return
	}

	var payload replaceFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.ReplaceFields(r.Context(), facilityID, payload.Fields); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]int{
		"fields": len(payload.Fields),
	})
}
