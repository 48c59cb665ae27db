package repositories

import (
	"context"

	"github.com/sportmap-ro/backend/internal/domain/entities"
)

// SEOPageRepository defines the interface for SEO metadata operations
type SEOPageRepository interface {
	Create(ctx context.Context, page *entities.SEOPage) error
	GetByPath(ctx context.Context, path string) (*entities.SEOPage, error)
	Update(ctx context.Context, page *entities.SEOPage) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.SEOPage, error)
}
