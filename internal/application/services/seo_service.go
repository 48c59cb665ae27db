package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
	apperrors "github.com/sportmap-ro/backend/pkg/errors"
)

// SEOService serves per-page metadata for the frontend
type SEOService struct {
	repo repositories.SEOPageRepository
}

// NewSEOService creates a new SEO service
func NewSEOService(repo repositories.SEOPageRepository) *SEOService {
	return &SEOService{repo: repo}
}

// GetByPath retrieves the metadata for a page path. Paths are normalized so
// "/terenuri/" and "/terenuri" resolve to the same row.
func (s *SEOService) GetByPath(ctx context.Context, path string) (*entities.SEOPage, error) {
	return s.repo.GetByPath(ctx, normalizePath(path))
}

// Upsert creates or updates the metadata for a page path
func (s *SEOService) Upsert(ctx context.Context, page *entities.SEOPage) error {
	if page.Path == "" {
		return apperrors.NewValidationError("page path is required")
	}
	if page.Title == "" {
		return apperrors.NewValidationError("page title is required")
	}
	page.Path = normalizePath(page.Path)

	existing, err := s.repo.GetByPath(ctx, page.Path)
	if err == nil {
		page.ID = existing.ID
		page.CreatedAt = existing.CreatedAt
		return s.repo.Update(ctx, page)
	}
	if !apperrors.IsNotFound(err) {
		return err
	}

	page.ID = uuid.NewString()
	page.CreatedAt = time.Now()
	return s.repo.Create(ctx, page)
}

// Delete removes the metadata for a page
func (s *SEOService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// List retrieves all configured pages
func (s *SEOService) List(ctx context.Context) ([]*entities.SEOPage, error) {
	return s.repo.List(ctx)
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
