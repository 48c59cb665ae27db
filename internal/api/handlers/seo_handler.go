package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sportmap-ro/backend/internal/domain/entities"
)

// SEOService defines the SEO metadata operations used by the handler
type SEOService interface {
	GetByPath(ctx context.Context, path string) (*entities.SEOPage, error)
	Upsert(ctx context.Context, page *entities.SEOPage) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.SEOPage, error)
}

// SEOHandler serves per-page metadata for the frontend
type SEOHandler struct {
	service SEOService
}

// NewSEOHandler creates a new SEO handler
func NewSEOHandler(service SEOService) *SEOHandler {
	return &SEOHandler{
		service: service,
	}
}

// GetPageMeta handles GET /api/seo?path=/terenuri/cluj
func (h *SEOHandler) GetPageMeta(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		respondWithError(w, http.StatusBadRequest, "path query parameter is required")
		return
	}

	page, err := h.service.GetByPath(r.Context(), path)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}

// ListPages handles GET /api/admin/seo
func (h *SEOHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.service.List(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list seo pages")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"pages": pages,
		"count": len(pages),
	})
}

// UpsertPage handles PUT /api/admin/seo
func (h *SEOHandler) UpsertPage(w http.ResponseWriter, r *http.Request) {
	var page entities.SEOPage
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Upsert(r.Context(), &page); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}

// DeletePage handles DELETE /api/admin/seo/{id}
func (h *SEOHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "page ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
