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

const maxSuggestionLength = 2000

// SuggestionService handles visitor-submitted listing corrections
type SuggestionService struct {
	repo repositories.SuggestionRepository
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(repo repositories.SuggestionRepository) *SuggestionService {
	return &SuggestionService{repo: repo}
}

// Create stores a suggestion
func (s *SuggestionService) Create(ctx context.Context, suggestion *entities.Suggestion) error {
	suggestion.Message = strings.TrimSpace(suggestion.Message)
	if suggestion.Message == "" {
		return apperrors.NewValidationError("suggestion message is required")
	}
	if len(suggestion.Message) > maxSuggestionLength {
		return apperrors.NewValidationError("suggestion message is too long")
	}

	if suggestion.ID == "" {
		suggestion.ID = uuid.New().String()
	}
	if suggestion.CreatedAt.IsZero() {
		suggestion.CreatedAt = time.Now().UTC()
	}
	return s.repo.Create(ctx, suggestion)
}

// List retrieves suggestions for admin review, newest first
func (s *SuggestionService) List(ctx context.Context, limit, offset int) ([]*entities.Suggestion, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.List(ctx, limit, offset)
}

// Delete removes a handled suggestion
func (s *SuggestionService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
