package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sportmap-ro/backend/internal/api/handlers"
	"github.com/sportmap-ro/backend/internal/domain/entities"
)

type stubSuggestionService struct {
	created []*entities.Suggestion
}

func (s *stubSuggestionService) Create(ctx context.Context, suggestion *entities.Suggestion) error {
	if suggestion.ID == "" {
		suggestion.ID = "test-id"
	}
	s.created = append(s.created, suggestion)
	return nil
}

func TestSuggestionHandler_SubmitSuggestion_Success(t *testing.T) {
	service := &stubSuggestionService{}
	handler := handlers.NewSuggestionHandler(service, nil)

	body := `{"facility_id":"fac-1","message":"Terenul 2 nu mai este acoperit","email":"test@example.com","page":"/baza-sportiva-gheorgheni"}`
	req := httptest.NewRequest("POST", "/api/suggestions", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()

	handler.SubmitSuggestion(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, service.created, 1)

	var response map[string]string
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "received", response["status"])
	assert.NotEmpty(t, response["id"])
}

func TestSuggestionHandler_SubmitSuggestion_MissingMessage(t *testing.T) {
	service := &stubSuggestionService{}
	handler := handlers.NewSuggestionHandler(service, nil)

	req := httptest.NewRequest("POST", "/api/suggestions", strings.NewReader(`{"email":"a@b.ro"}`))
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()

	handler.SubmitSuggestion(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, service.created)
}

func TestSuggestionHandler_SubmitSuggestion_RateLimit(t *testing.T) {
	service := &stubSuggestionService{}
	handler := handlers.NewSuggestionHandler(service, nil)

	for i := 0; i < 5; i++ {
		body := `{"message":"sugestie-` + strconv.Itoa(i) + `"}`
		req := httptest.NewRequest("POST", "/api/suggestions", strings.NewReader(body))
		req.RemoteAddr = "10.0.0.2:1234"
		w := httptest.NewRecorder()
		handler.SubmitSuggestion(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	body := `{"message":"sugestie-peste-limita"}`
	req := httptest.NewRequest("POST", "/api/suggestions", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	handler.SubmitSuggestion(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestSuggestionHandler_SubmitSuggestion_Duplicate(t *testing.T) {
	service := &stubSuggestionService{}
	handler := handlers.NewSuggestionHandler(service, nil)

	body := `{"message":"Programul de weekend este gresit","page":"/baza-sportiva-gheorgheni"}`
	req := httptest.NewRequest("POST", "/api/suggestions", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.9:1234"
	w := httptest.NewRecorder()

	handler.SubmitSuggestion(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	req2 := httptest.NewRequest("POST", "/api/suggestions", strings.NewReader(body))
	req2.RemoteAddr = "10.0.0.9:1234"
	w2 := httptest.NewRecorder()

	handler.SubmitSuggestion(w2, req2)
	assert.Equal(t, http.StatusAccepted, w2.Code)
	assert.Len(t, service.created, 1)

	var response map[string]string
	err := json.NewDecoder(w2.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "duplicate_ignored", response["status"])
}

func TestSuggestionHandler_SubmitSuggestion_ForwardedFor(t *testing.T) {
	service := &stubSuggestionService{}
	handler := handlers.NewSuggestionHandler(service, nil)

	// Two clients behind the same proxy get separate rate limit buckets
	for i := 0; i < 5; i++ {
		body := `{"message":"sugestie-` + strconv.Itoa(i) + `"}`
		req := httptest.NewRequest("POST", "/api/suggestions", strings.NewReader(body))
		req.RemoteAddr = "172.16.0.1:1234"
		req.Header.Set("X-Forwarded-For", "203.0.113.5")
		w := httptest.NewRecorder()
		handler.SubmitSuggestion(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest("POST", "/api/suggestions", strings.NewReader(`{"message":"alta sugestie"}`))
	req.RemoteAddr = "172.16.0.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.6")
	w := httptest.NewRecorder()
	handler.SubmitSuggestion(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
