package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
	apperrors "github.com/sportmap-ro/backend/pkg/errors"
)

// CoachService handles business logic for coach listings
type CoachService struct {
	repo repositories.CoachRepository
}

// NewCoachService creates a new coach service
func NewCoachService(repo repositories.CoachRepository) *CoachService {
	return &CoachService{repo: repo}
}

// Create registers a new coach listing, pending approval
func (s *CoachService) Create(ctx context.Context, coach *entities.Coach) error {
	if coach.Name == "" {
		return apperrors.NewValidationError("coach name is required")
	}
	if coach.City == "" {
		return apperrors.NewValidationError("coach city is required")
	}

	if coach.ID == "" {
		coach.ID = uuid.NewString()
	}
	if coach.Slug == "" {
		coach.Slug = Slugify(coach.Name)
	}
	coach.Status = entities.StatusPending
	coach.IsActive = true

	return s.repo.Create(ctx, coach)
}

// GetByID retrieves a coach by ID
func (s *CoachService) GetByID(ctx context.Context, id string) (*entities.Coach, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug retrieves a publicly visible coach by slug
func (s *CoachService) GetBySlug(ctx context.Context, slug string) (*entities.Coach, error) {
	coach, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if coach.Status != entities.StatusApproved {
		return nil, apperrors.NewNotFoundError("coach not found")
	}
	return coach, nil
}

// Update updates a coach listing. Moderation state never comes from the
// edit payload: an owner edit keeps the stored status.
func (s *CoachService) Update(ctx context.Context, coach *entities.Coach) error {
	if coach.Name == "" {
		return apperrors.NewValidationError("coach name is required")
	}
	stored, err := s.repo.GetByID(ctx, coach.ID)
	if err != nil {
		return err
	}
	coach.Status = stored.Status
	coach.IsActive = stored.IsActive
	coach.CreatedAt = stored.CreatedAt
	if coach.Slug == "" {
		coach.Slug = stored.Slug
	}
	return s.repo.Update(ctx, coach)
}

// Approve makes a pending coach listing public
func (s *CoachService) Approve(ctx context.Context, id string) error {
	return s.repo.SetStatus(ctx, id, entities.StatusApproved)
}

// Reject hides a coach listing from the public site
func (s *CoachService) Reject(ctx context.Context, id string) error {
	return s.repo.SetStatus(ctx, id, entities.StatusRejected)
}

// Delete soft deletes a coach listing
func (s *CoachService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// List retrieves coaches with filters
func (s *CoachService) List(ctx context.Context, filter repositories.CoachFilter) ([]*entities.Coach, error) {
	return s.repo.List(ctx, filter)
}

// ListPublic retrieves only approved coach listings
func (s *CoachService) ListPublic(ctx context.Context, filter repositories.CoachFilter) ([]*entities.Coach, error) {
	filter.Status = entities.StatusApproved
	return s.repo.List(ctx, filter)
}
