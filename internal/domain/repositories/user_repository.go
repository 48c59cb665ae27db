package repositories

import (
	"context"

	"github.com/sportmap-ro/backend/internal/domain/entities"
)

// UserRepository defines the interface for user account rows
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}
