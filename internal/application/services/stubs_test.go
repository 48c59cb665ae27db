package services_test

import (
	"context"
	"sync"

	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
	apperrors "github.com/sportmap-ro/backend/pkg/errors"
)

// In-memory stubs for the repository interfaces

type StubFacilityRepo struct {
	mu         sync.Mutex
	facilities map[string]*entities.Facility
}

func NewStubFacilityRepo() *StubFacilityRepo {
	return &StubFacilityRepo{facilities: make(map[string]*entities.Facility)}
}

func (r *StubFacilityRepo) Create(ctx context.Context, facility *entities.Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.facilities[facility.ID] = facility
	return nil
}

func (r *StubFacilityRepo) GetByID(ctx context.Context, id string) (*entities.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if facility, ok := r.facilities[id]; ok {
		return facility, nil
	}
	return nil, apperrors.NewNotFoundError("facility not found")
}

func (r *StubFacilityRepo) GetBySlug(ctx context.Context, slug string) (*entities.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, facility := range r.facilities {
		if facility.Slug == slug {
			return facility, nil
		}
	}
	return nil, apperrors.NewNotFoundError("facility not found")
}

func (r *StubFacilityRepo) GetByIDs(ctx context.Context, ids []string) ([]*entities.Facility, error) {
	result := []*entities.Facility{}
	for _, id := range ids {
		if facility, err := r.GetByID(ctx, id); err == nil {
			result = append(result, facility)
		}
	}
	return result, nil
}

func (r *StubFacilityRepo) Update(ctx context.Context, facility *entities.Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.facilities[facility.ID]; !ok {
		return apperrors.NewNotFoundError("facility not found")
	}
	r.facilities[facility.ID] = facility
	return nil
}

func (r *StubFacilityRepo) SetStatus(ctx context.Context, id string, status entities.FacilityStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	facility, ok := r.facilities[id]
	if !ok {
		return apperrors.NewNotFoundError("facility not found")
	}
	facility.Status = status
	return nil
}

func (r *StubFacilityRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	facility, ok := r.facilities[id]
	if !ok {
		return apperrors.NewNotFoundError("facility not found")
	}
	facility.IsActive = false
	return nil
}

func (r *StubFacilityRepo) List(ctx context.Context, filter repositories.FacilityFilter) ([]*entities.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*entities.Facility{}
	for _, facility := range r.facilities {
		if filter.Status != "" && facility.Status != filter.Status {
			continue
		}
		if filter.IsActive != nil && facility.IsActive != *filter.IsActive {
			continue
		}
		if filter.Kind != "" && facility.Kind != filter.Kind {
			continue
		}
		result = append(result, facility)
	}
	return result, nil
}

type StubSearchRepo struct {
	mu      sync.Mutex
	indexed map[string]*entities.Facility
}

func NewStubSearchRepo() *StubSearchRepo {
	return &StubSearchRepo{indexed: make(map[string]*entities.Facility)}
}

func (r *StubSearchRepo) Search(ctx context.Context, params repositories.SearchParams) (*repositories.SearchResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := &repositories.SearchResult{Facilities: []*entities.Facility{}}
	for _, facility := range r.indexed {
		result.Facilities = append(result.Facilities, facility)
	}
	result.TotalCount = len(result.Facilities)
	return result, nil
}

func (r *StubSearchRepo) Index(ctx context.Context, facility *entities.Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if facility.IsPublic() {
		r.indexed[facility.ID] = facility
	} else {
		delete(r.indexed, facility.ID)
	}
	return nil
}

func (r *StubSearchRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.indexed, id)
	return nil
}

func (r *StubSearchRepo) Indexed(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.indexed[id]
	return ok
}

type StubEventBus struct {
	mu        sync.Mutex
	published []*entities.ListingEvent
}

func NewStubEventBus() *StubEventBus {
	return &StubEventBus{}
}

func (b *StubEventBus) Publish(ctx context.Context, channel string, event *entities.ListingEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, event)
	return nil
}

func (b *StubEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.ListingEvent, error) {
	ch := make(chan *entities.ListingEvent)
	return ch, nil
}

func (b *StubEventBus) Unsubscribe(ctx context.Context, channel string) error { return nil }

func (b *StubEventBus) Close() error { return nil }

func (b *StubEventBus) Published() []*entities.ListingEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*entities.ListingEvent{}, b.published...)
}

type StubUserRepo struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{users: make(map[string]*entities.User)}
}

func (r *StubUserRepo) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *StubUserRepo) GetByID(ctx context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

func (r *StubUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.NewNotFoundError("user not found")
}

type StubFieldRepo struct {
	mu     sync.Mutex
	fields map[string][]*entities.SportsField
}

func NewStubFieldRepo() *StubFieldRepo {
	return &StubFieldRepo{fields: make(map[string][]*entities.SportsField)}
}

func (r *StubFieldRepo) ListByFacility(ctx context.Context, facilityID string) ([]*entities.SportsField, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entities.SportsField{}, r.fields[facilityID]...), nil
}

func (r *StubFieldRepo) GetByID(ctx context.Context, id string) (*entities.SportsField, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, fields := range r.fields {
		for _, field := range fields {
			if field.ID == id {
				return field, nil
			}
		}
	}
	return nil, apperrors.NewNotFoundError("sports field not found")
}

func (r *StubFieldRepo) ReplaceForFacility(ctx context.Context, facilityID string, fields []*entities.SportsField) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fields[facilityID] = fields
	return nil
}
