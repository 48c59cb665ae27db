package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sportmap-ro/backend/internal/api/handlers"
	"github.com/sportmap-ro/backend/internal/application/services"
	"github.com/sportmap-ro/backend/internal/domain/entities"
	apperrors "github.com/sportmap-ro/backend/pkg/errors"
)

type stubScheduleService struct {
	facilitySchedule *services.FacilitySchedule
	fieldSchedule    *services.FieldSchedule
	replaced         []*entities.SportsField
	replacedFacility string
	err              error
}

func (s *stubScheduleService) ForFacilitySlug(ctx context.Context, slug string) (*services.FacilitySchedule, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.facilitySchedule, nil
}

func (s *stubScheduleService) ForField(ctx context.Context, fieldID string) (*services.FieldSchedule, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.fieldSchedule, nil
}

func (s *stubScheduleService) ReplaceFields(ctx context.Context, facilityID string, fields []*entities.SportsField) error {
	if s.err != nil {
		return s.err
	}
	s.replacedFacility = facilityID
	s.replaced = fields
	return nil
}

func TestScheduleHandler_GetFacilitySchedule(t *testing.T) {
	service := &stubScheduleService{
		facilitySchedule: &services.FacilitySchedule{
			FacilityID: "fac-1",
			Slug:       "baza-sportiva-gheorgheni",
			Fields: []services.FieldSchedule{
				{Field: &entities.SportsField{ID: "field-1", Name: "Teren 1"}},
			},
		},
	}
	handler := handlers.NewScheduleHandler(service)

	req := httptest.NewRequest("GET", "/api/facilities/baza-sportiva-gheorgheni/schedule", nil)
	req.SetPathValue("slug", "baza-sportiva-gheorgheni")
	w := httptest.NewRecorder()

	handler.GetFacilitySchedule(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response services.FacilitySchedule
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "fac-1", response.FacilityID)
	assert.Len(t, response.Fields, 1)
}

func TestScheduleHandler_GetFacilitySchedule_NotFound(t *testing.T) {
	service := &stubScheduleService{err: apperrors.NewNotFoundError("facility not found")}
	handler := handlers.NewScheduleHandler(service)

	req := httptest.NewRequest("GET", "/api/facilities/nu-exista/schedule", nil)
	req.SetPathValue("slug", "nu-exista")
	w := httptest.NewRecorder()

	handler.GetFacilitySchedule(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScheduleHandler_GetFieldSchedule(t *testing.T) {
	service := &stubScheduleService{
		fieldSchedule: &services.FieldSchedule{
			Field: &entities.SportsField{ID: "field-1", Name: "Teren 1"},
		},
	}
	handler := handlers.NewScheduleHandler(service)

	req := httptest.NewRequest("GET", "/api/fields/field-1/schedule", nil)
	req.SetPathValue("id", "field-1")
	w := httptest.NewRecorder()

	handler.GetFieldSchedule(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response services.FieldSchedule
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "field-1", response.Field.ID)
}

func TestScheduleHandler_ReplaceFields(t *testing.T) {
	service := &stubScheduleService{}
	handler := handlers.NewScheduleHandler(service)

	body := `{"fields":[{"name":"Teren 1","sport":"fotbal","time_slots":[{"day":"monday","start_time":"08:00","end_time":"22:00","status":"open"}]}]}`
	req := httptest.NewRequest("PUT", "/api/facilities/fac-1/fields", strings.NewReader(body))
	req.SetPathValue("id", "fac-1")
	w := httptest.NewRecorder()

	handler.ReplaceFields(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fac-1", service.replacedFacility)
	assert.Len(t, service.replaced, 1)
	assert.Equal(t, "Teren 1", service.replaced[0].Name)
}

func TestScheduleHandler_ReplaceFields_InvalidPayload(t *testing.T) {
	service := &stubScheduleService{}
	handler := handlers.NewScheduleHandler(service)

	req := httptest.NewRequest("PUT", "/api/facilities/fac-1/fields", strings.NewReader("{not json"))
	req.SetPathValue("id", "fac-1")
	w := httptest.NewRecorder()

	handler.ReplaceFields(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, service.replaced)
}
