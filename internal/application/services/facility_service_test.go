package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportmap-ro/backend/internal/application/services"
	"github.com/sportmap-ro/backend/internal/domain/entities"
	apperrors "github.com/sportmap-ro/backend/pkg/errors"
)

func newFacility(name string) *entities.Facility {
	return &entities.Facility{
		Name: name,
		Kind: entities.KindSportsBase,
		Address: entities.Address{
			City:   "Cluj-Napoca",
			County: "Cluj",
		},
	}
}

func TestFacilityService_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewStubFacilityRepo()
	search := NewStubSearchRepo()
	service := services.NewFacilityService(repo, search, NewStubEventBus())

	t.Run("new listings start pending and are not searchable", func(t *testing.T) {
		facility := newFacility("Baza Sportivă Gheorgheni")

		require.NoError(t, service.Create(ctx, facility))

		assert.NotEmpty(t, facility.ID)
		assert.Equal(t, "baza-sportiva-gheorgheni", facility.Slug)
		assert.Equal(t, entities.StatusPending, facility.Status)
		assert.False(t, search.Indexed(facility.ID))
	})

	t.Run("rejects a listing without a name", func(t *testing.T) {
		err := service.Create(ctx, newFacility(""))
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		facility := newFacility("Teren")
		facility.Kind = "swimming_pool"
		assert.Error(t, service.Create(ctx, facility))
	})
}

func TestFacilityService_OwnerResolution(t *testing.T) {
	ctx := context.Background()
	repo := NewStubFacilityRepo()
	users := NewStubUserRepo()
	service := services.NewFacilityService(repo, nil, nil)
	service.SetUserRepo(users)

	t.Run("registration creates an owner account from the contact email", func(t *testing.T) {
		facility := newFacility("Teren Mărăști")
		facility.Email = "owner@example.ro"

		require.NoError(t, service.Create(ctx, facility))
		require.NotEmpty(t, facility.OwnerID)

		user, err := users.GetByID(ctx, facility.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, "owner@example.ro", user.Email)
		assert.Equal(t, entities.RoleOwner, user.Role)
	})

	t.Run("a second listing reuses the existing owner account", func(t *testing.T) {
		first := newFacility("Teren Zorilor")
		first.Email = "multi@example.ro"
		require.NoError(t, service.Create(ctx, first))

		second := newFacility("Teren Mănăștur")
		second.Email = "multi@example.ro"
		require.NoError(t, service.Create(ctx, second))

		assert.Equal(t, first.OwnerID, second.OwnerID)
	})

	t.Run("missing email leaves the listing unowned", func(t *testing.T) {
		facility := newFacility("Teren Anonim")
		require.NoError(t, service.Create(ctx, facility))
		assert.Empty(t, facility.OwnerID)
	})
}

func TestFacilityService_ApprovalWorkflow(t *testing.T) {
	ctx := context.Background()
	repo := NewStubFacilityRepo()
	search := NewStubSearchRepo()
	bus := NewStubEventBus()
	service := services.NewFacilityService(repo, search, bus)

	facility := newFacility("Teren Central")
	require.NoError(t, service.Create(ctx, facility))

	t.Run("approve indexes the listing and publishes an event", func(t *testing.T) {
		require.NoError(t, service.Approve(ctx, facility.ID))

		stored, err := repo.GetByID(ctx, facility.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusApproved, stored.Status)
		assert.True(t, search.Indexed(facility.ID))

		events := bus.Published()
		require.NotEmpty(t, events)
		assert.Equal(t, entities.ListingEventApproved, events[len(events)-1].EventType)
		assert.Equal(t, facility.ID, events[len(events)-1].FacilityID)
	})

	t.Run("reject removes the listing from the index", func(t *testing.T) {
		require.NoError(t, service.Reject(ctx, facility.ID))

		assert.False(t, search.Indexed(facility.ID))
		events := bus.Published()
		assert.Equal(t, entities.ListingEventRejected, events[len(events)-1].EventType)
	})

	t.Run("approving a missing listing returns not found", func(t *testing.T) {
		err := service.Approve(ctx, "missing")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestFacilityService_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewStubFacilityRepo()
	search := NewStubSearchRepo()
	service := services.NewFacilityService(repo, search, NewStubEventBus())

	facility := newFacility("Teren Est")
	require.NoError(t, service.Create(ctx, facility))
	require.NoError(t, service.Approve(ctx, facility.ID))

	t.Run("owner edit keeps an approved listing public and indexed", func(t *testing.T) {
		edit := newFacility("Teren Est Renovat")
		edit.ID = facility.ID

		require.NoError(t, service.Update(ctx, edit))

		stored, err := repo.GetByID(ctx, facility.ID)
		require.NoError(t, err)
		assert.Equal(t, "Teren Est Renovat", stored.Name)
		assert.Equal(t, entities.StatusApproved, stored.Status)
		assert.True(t, stored.IsPublic())
		assert.True(t, search.Indexed(facility.ID))
	})

	t.Run("edit payload cannot self-approve a listing", func(t *testing.T) {
		pending := newFacility("Teren Vest")
		require.NoError(t, service.Create(ctx, pending))

		edit := newFacility("Teren Vest")
		edit.ID = pending.ID
		edit.Status = entities.StatusApproved

		require.NoError(t, service.Update(ctx, edit))

		stored, err := repo.GetByID(ctx, pending.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPending, stored.Status)
		assert.False(t, search.Indexed(pending.ID))
	})

	t.Run("updating a missing listing returns not found", func(t *testing.T) {
		edit := newFacility("Teren Fantomă")
		edit.ID = "missing"
		err := service.Update(ctx, edit)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestFacilityService_GetBySlug(t *testing.T) {
	ctx := context.Background()
	repo := NewStubFacilityRepo()
	service := services.NewFacilityService(repo, nil, nil)

	facility := newFacility("Teren Nord")
	require.NoError(t, service.Create(ctx, facility))

	t.Run("pending listings are hidden from public pages", func(t *testing.T) {
		_, err := service.GetBySlug(ctx, facility.Slug)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("approved listings resolve by slug", func(t *testing.T) {
		require.NoError(t, service.Approve(ctx, facility.ID))

		found, err := service.GetBySlug(ctx, facility.Slug)
		require.NoError(t, err)
		assert.Equal(t, facility.ID, found.ID)
	})
}

func TestFacilityService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewStubFacilityRepo()
	search := NewStubSearchRepo()
	bus := NewStubEventBus()
	service := services.NewFacilityService(repo, search, bus)

	facility := newFacility("Teren Sud")
	require.NoError(t, service.Create(ctx, facility))
	require.NoError(t, service.Approve(ctx, facility.ID))
	require.True(t, search.Indexed(facility.ID))

	require.NoError(t, service.Delete(ctx, facility.ID))

	assert.False(t, search.Indexed(facility.ID))
	events := bus.Published()
	assert.Equal(t, entities.ListingEventDeleted, events[len(events)-1].EventType)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "baza-sportiva-tineretului", services.Slugify("Baza Sportivă Tineretului"))
	assert.Equal(t, "teren-fotbal-nr-3", services.Slugify("  Teren Fotbal nr. 3  "))
	assert.Equal(t, "stii-si-tu", services.Slugify("Știi și Țu"))
	assert.Equal(t, "", services.Slugify("---"))
}
