package repositories

import (
	"context"

	"github.com/sportmap-ro/backend/internal/domain/entities"
)

// FacilityRepository defines the interface for facility data operations
type FacilityRepository interface {
	// Create creates a new facility
	Create(ctx context.Context, facility *entities.Facility) error

	// GetByID retrieves a facility by ID
	GetByID(ctx context.Context, id string) (*entities.Facility, error)

	// GetBySlug retrieves a facility by its public slug
	GetBySlug(ctx context.Context, slug string) (*entities.Facility, error)

	// GetByIDs retrieves multiple facilities by their IDs
	GetByIDs(ctx context.Context, ids []string) ([]*entities.Facility, error)

	// Update updates a facility
	Update(ctx context.Context, facility *entities.Facility) error

	// SetStatus moves a facility through the approval workflow
	SetStatus(ctx context.Context, id string, status entities.FacilityStatus) error

	// Delete deletes a facility (soft delete)
	Delete(ctx context.Context, id string) error

	// List retrieves facilities with filters
	List(ctx context.Context, filter FacilityFilter) ([]*entities.Facility, error)
}

// FacilitySearchRepository defines the interface for facility search
// operations (e.g. Typesense)
type FacilitySearchRepository interface {
	// Search searches facilities
	Search(ctx context.Context, params SearchParams) (*SearchResult, error)

	// Index indexes a facility
	Index(ctx context.Context, facility *entities.Facility) error

	// Delete removes a facility from index
	Delete(ctx context.Context, id string) error
}

// FacilityFilter defines filters for listing facilities
type FacilityFilter struct {
	Kind     entities.FacilityKind
	City     string
	County   string
	Sport    string
	Status   entities.FacilityStatus
	IsActive *bool
	Limit    int
	Offset   int
}

// SearchParams defines parameters for facility search
type SearchParams struct {
	Query  string
	Kind   entities.FacilityKind
	City   string
	County string
	Sport  string
	Limit  int
	Offset int
}

// SearchResult contains search hits and the total match count
type SearchResult struct {
	Facilities []*entities.Facility
	TotalCount int
}
