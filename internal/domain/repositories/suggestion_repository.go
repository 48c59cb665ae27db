package repositories

import (
	"context"

	"github.com/sportmap-ro/backend/internal/domain/entities"
)

// SuggestionRepository defines the interface for visitor suggestions
type SuggestionRepository interface {
	Create(ctx context.Context, suggestion *entities.Suggestion) error
	List(ctx context.Context, limit, offset int) ([]*entities.Suggestion, error)
	Delete(ctx context.Context, id string) error
}
