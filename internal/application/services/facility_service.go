package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/providers"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
	apperrors "github.com/sportmap-ro/backend/pkg/errors"
)

// FacilityService handles business logic for facility listings
type FacilityService struct {
	repo       repositories.FacilityRepository
	searchRepo repositories.FacilitySearchRepository
	eventBus   providers.EventBus
	userRepo   repositories.UserRepository
}

// NewFacilityService creates a new facility service
func NewFacilityService(
	repo repositories.FacilityRepository,
	searchRepo repositories.FacilitySearchRepository,
	eventBus providers.EventBus,
) *FacilityService {
	return &FacilityService{
		repo:       repo,
		searchRepo: searchRepo,
		eventBus:   eventBus,
	}
}

// SetUserRepo enables owner account resolution on listing registration
func (s *FacilityService) SetUserRepo(userRepo repositories.UserRepository) {
	s.userRepo = userRepo
}

func validateFacility(facility *entities.Facility) error {
	if facility.Name == "" {
		return apperrors.NewValidationError("facility name is required")
	}
	switch facility.Kind {
	case entities.KindSportsBase, entities.KindRepairShop, entities.KindEquipmentShop:
	default:
		return apperrors.NewValidationError("unknown facility kind")
	}
	if facility.Address.City == "" {
		return apperrors.NewValidationError("facility city is required")
	}
	return nil
}

// Create registers a new listing. New listings always start pending; they
// become searchable only once an admin approves them.
func (s *FacilityService) Create(ctx context.Context, facility *entities.Facility) error {
	if err := validateFacility(facility); err != nil {
		return err
	}

	if facility.ID == "" {
		facility.ID = uuid.NewString()
	}
	if facility.Slug == "" {
		facility.Slug = Slugify(facility.Name)
	}
	facility.Status = entities.StatusPending
	facility.IsActive = true

	if facility.OwnerID == "" {
		facility.OwnerID = s.resolveOwner(ctx, facility)
	}

	return s.repo.Create(ctx, facility)
}

// resolveOwner anchors the listing to a user row keyed by the contact email.
// Failures never block registration; the listing is simply left unowned.
func (s *FacilityService) resolveOwner(ctx context.Context, facility *entities.Facility) string {
	if s.userRepo == nil || facility.Email == "" {
		return ""
	}

	user, err := s.userRepo.GetByEmail(ctx, facility.Email)
	if err == nil {
		return user.ID
	}
	if !apperrors.IsNotFound(err) {
		log.Printf("Warning: Failed to look up owner %s: %v", facility.Email, err)
		return ""
	}

	user = &entities.User{
		ID:    uuid.NewString(),
		Email: facility.Email,
		Name:  facility.Name,
		Role:  entities.RoleOwner,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		log.Printf("Warning: Failed to create owner account for %s: %v", facility.Email, err)
		return ""
	}
	return user.ID
}

// GetByID retrieves a facility by ID
func (s *FacilityService) GetByID(ctx context.Context, id string) (*entities.Facility, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug retrieves a publicly visible facility by its slug
func (s *FacilityService) GetBySlug(ctx context.Context, slug string) (*entities.Facility, error) {
	facility, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !facility.IsPublic() {
		return nil, apperrors.NewNotFoundError("facility not found")
	}
	return facility, nil
}

// Update updates a listing and keeps the search index in sync. Moderation
// state never comes from the edit payload: an owner edit keeps the stored
// status, so an approved listing stays public and indexed.
func (s *FacilityService) Update(ctx context.Context, facility *entities.Facility) error {
	if err := validateFacility(facility); err != nil {
		return err
	}

	stored, err := s.repo.GetByID(ctx, facility.ID)
	if err != nil {
		return err
	}
	facility.Status = stored.Status
	facility.IsActive = stored.IsActive
	facility.CreatedAt = stored.CreatedAt
	if facility.Slug == "" {
		facility.Slug = stored.Slug
	}
	if facility.OwnerID == "" {
		facility.OwnerID = stored.OwnerID
	}

	if err := s.repo.Update(ctx, facility); err != nil {
		return err
	}

	s.reindex(ctx, facility)
	s.publish(ctx, facility.ID, facility.Slug, entities.ListingEventUpdated)
	return nil
}

// Approve makes a pending listing public and searchable
func (s *FacilityService) Approve(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, entities.StatusApproved, entities.ListingEventApproved)
}

// Reject hides a listing from the public site
func (s *FacilityService) Reject(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, entities.StatusRejected, entities.ListingEventRejected)
}

func (s *FacilityService) setStatus(ctx context.Context, id string, status entities.FacilityStatus, eventType entities.ListingEventType) error {
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return err
	}

	// Re-read so the index reflects the new status
	slug := ""
	if facility, err := s.repo.GetByID(ctx, id); err == nil {
		s.reindex(ctx, facility)
		slug = facility.Slug
	}

	s.publish(ctx, id, slug, eventType)
	return nil
}

// Delete soft deletes a listing and removes it from search
func (s *FacilityService) Delete(ctx context.Context, id string) error {
	// The slug is gone after the soft delete; grab it for the event first.
	slug := ""
	if facility, err := s.repo.GetByID(ctx, id); err == nil {
		slug = facility.Slug
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.searchRepo != nil {
		if err := s.searchRepo.Delete(ctx, id); err != nil {
			log.Printf("Warning: Failed to delete facility from index %s: %v", id, err)
		}
	}

	s.publish(ctx, id, slug, entities.ListingEventDeleted)
	return nil
}

// List retrieves facilities
func (s *FacilityService) List(ctx context.Context, filter repositories.FacilityFilter) ([]*entities.Facility, error) {
	return s.repo.List(ctx, filter)
}

// ListPublic retrieves only approved, active listings
func (s *FacilityService) ListPublic(ctx context.Context, filter repositories.FacilityFilter) ([]*entities.Facility, error) {
	active := true
	filter.Status = entities.StatusApproved
	filter.IsActive = &active
	return s.repo.List(ctx, filter)
}

// Search searches facilities using the search engine if available, falling
// back to a database listing
func (s *FacilityService) Search(ctx context.Context, params repositories.SearchParams) (*repositories.SearchResult, error) {
	if s.searchRepo != nil {
		return s.searchRepo.Search(ctx, params)
	}

	facilities, err := s.ListPublic(ctx, repositories.FacilityFilter{
		Kind:   params.Kind,
		City:   params.City,
		County: params.County,
		Sport:  params.Sport,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
	if err != nil {
		return nil, err
	}
	return &repositories.SearchResult{Facilities: facilities, TotalCount: len(facilities)}, nil
}

func (s *FacilityService) reindex(ctx context.Context, facility *entities.Facility) {
	if s.searchRepo == nil {
		return
	}
	if err := s.searchRepo.Index(ctx, facility); err != nil {
		// Log error but don't fail the request (eventual consistency)
		log.Printf("Warning: Failed to index facility %s: %v", facility.ID, err)
	}
}

func (s *FacilityService) publish(ctx context.Context, facilityID, slug string, eventType entities.ListingEventType) {
	if s.eventBus == nil {
		return
	}
	event := entities.NewListingEventWithSlug(facilityID, slug, eventType)
	if err := s.eventBus.Publish(ctx, providers.EventChannelListings, event); err != nil {
		log.Printf("Warning: Failed to publish %s event for facility %s: %v", eventType, facilityID, err)
	}
}
