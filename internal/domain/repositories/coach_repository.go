package repositories

import (
	"context"

	"github.com/sportmap-ro/backend/internal/domain/entities"
)

// CoachRepository defines the interface for coach data operations
type CoachRepository interface {
	Create(ctx context.Context, coach *entities.Coach) error
	GetByID(ctx context.Context, id string) (*entities.Coach, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Coach, error)
	Update(ctx context.Context, coach *entities.Coach) error
	SetStatus(ctx context.Context, id string, status entities.FacilityStatus) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter CoachFilter) ([]*entities.Coach, error)
}

// CoachFilter defines filters for listing coaches
type CoachFilter struct {
	City   string
	County string
	Sport  string
	Status entities.FacilityStatus
	Limit  int
	Offset int
}
