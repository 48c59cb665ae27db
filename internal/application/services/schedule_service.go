package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/providers"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
	"github.com/sportmap-ro/backend/internal/schedule"
	"github.com/sportmap-ro/backend/pkg/config"
	apperrors "github.com/sportmap-ro/backend/pkg/errors"
)

// FieldSchedule is one sports field together with its rendered weekly grid
type FieldSchedule struct {
	Field  *entities.SportsField  `json:"field"`
	Grid   schedule.Grid          `json:"grid"`
	Legend []schedule.LegendEntry `json:"legend"`
}

// FacilitySchedule is the full schedule view of a facility page
type FacilitySchedule struct {
	FacilityID string          `json:"facility_id"`
	Slug       string          `json:"slug"`
	Fields     []FieldSchedule `json:"fields"`
}

// ScheduleService computes the weekly schedule grids shown on facility pages
type ScheduleService struct {
	facilityRepo repositories.FacilityRepository
	fieldRepo    repositories.SportsFieldRepository
	eventBus     providers.EventBus
	opts         schedule.Options
}

// NewScheduleService creates a new schedule service. The display window
// comes from configuration so staging can render a narrower grid.
func NewScheduleService(
	facilityRepo repositories.FacilityRepository,
	fieldRepo repositories.SportsFieldRepository,
	cfg *config.ScheduleConfig,
) *ScheduleService {
	opts := schedule.Options{}
	if cfg != nil {
		opts.StartHour = cfg.StartHour
		opts.EndHour = cfg.EndHour
	}
	return &ScheduleService{
		facilityRepo: facilityRepo,
		fieldRepo:    fieldRepo,
		opts:         opts,
	}
}

// SetEventBus enables listing event publication on schedule changes, so
// cached facility pages refresh before their TTL expires
func (s *ScheduleService) SetEventBus(eventBus providers.EventBus) {
	s.eventBus = eventBus
}

// ForFacilitySlug renders the schedule grids for a public facility page
func (s *ScheduleService) ForFacilitySlug(ctx context.Context, slug string) (*FacilitySchedule, error) {
	facility, err := s.facilityRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !facility.IsPublic() {
		return nil, apperrors.NewNotFoundError("facility not found")
	}

	fields, err := s.fieldRepo.ListByFacility(ctx, facility.ID)
	if err != nil {
		return nil, err
	}

	result := &FacilitySchedule{
		FacilityID: facility.ID,
		Slug:       facility.Slug,
		Fields:     make([]FieldSchedule, 0, len(fields)),
	}
	for _, field := range fields {
		result.Fields = append(result.Fields, FieldSchedule{
			Field:  field,
			Grid:   schedule.ComputeGrid(field.TimeSlots, s.opts),
			Legend: schedule.ComputeLegend(field.TimeSlots),
		})
	}

	return result, nil
}

// ForField renders the grid of a single sports field
func (s *ScheduleService) ForField(ctx context.Context, fieldID string) (*FieldSchedule, error) {
	field, err := s.fieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	return &FieldSchedule{
		Field:  field,
		Grid:   schedule.ComputeGrid(field.TimeSlots, s.opts),
		Legend: schedule.ComputeLegend(field.TimeSlots),
	}, nil
}

// ReplaceFields saves a facility's full field list, slots included
func (s *ScheduleService) ReplaceFields(ctx context.Context, facilityID string, fields []*entities.SportsField) error {
	facility, err := s.facilityRepo.GetByID(ctx, facilityID)
	if err != nil {
		return err
	}
	for _, field := range fields {
		if field.ID == "" {
			field.ID = uuid.NewString()
		}
	}
	if err := s.fieldRepo.ReplaceForFacility(ctx, facilityID, fields); err != nil {
		return err
	}

	// A schedule change invalidates the cached facility page the same way a
	// listing edit does.
	if s.eventBus != nil {
		event := entities.NewListingEventWithSlug(facility.ID, facility.Slug, entities.ListingEventUpdated)
		if err := s.eventBus.Publish(ctx, providers.EventChannelListings, event); err != nil {
			log.Printf("Warning: Failed to publish schedule update event for facility %s: %v", facility.ID, err)
		}
	}
	return nil
}
