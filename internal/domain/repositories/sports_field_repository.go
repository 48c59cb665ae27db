package repositories

import (
	"context"

	"github.com/sportmap-ro/backend/internal/domain/entities"
)

// SportsFieldRepository defines the interface for sports field operations.
// Time slots are replaced wholesale with the owning field on every save;
// there is no partial slot update.
type SportsFieldRepository interface {
	// ListByFacility retrieves all fields of a facility
	ListByFacility(ctx context.Context, facilityID string) ([]*entities.SportsField, error)

	// GetByID retrieves a field by ID
	GetByID(ctx context.Context, id string) (*entities.SportsField, error)

	// ReplaceForFacility replaces the full field set of a facility
	ReplaceForFacility(ctx context.Context, facilityID string, fields []*entities.SportsField) error
}
