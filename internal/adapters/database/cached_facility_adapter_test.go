package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
)

func TestFacilitiesListCacheKey(t *testing.T) {
	active := true

	t.Run("public and admin lists never share a cache entry", func(t *testing.T) {
		public := repositories.FacilityFilter{
			Status:   entities.StatusApproved,
			IsActive: &active,
			Limit:    20,
		}
		admin := repositories.FacilityFilter{
			Status: entities.StatusApproved,
			Limit:  20,
		}

		assert.NotEqual(t, facilitiesListCacheKey(public), facilitiesListCacheKey(admin))
	})

	t.Run("equal filters produce equal keys", func(t *testing.T) {
		a := repositories.FacilityFilter{City: "Cluj-Napoca", IsActive: &active, Limit: 10}
		other := true
		b := repositories.FacilityFilter{City: "Cluj-Napoca", IsActive: &other, Limit: 10}

		assert.Equal(t, facilitiesListCacheKey(a), facilitiesListCacheKey(b))
	})

	t.Run("keys stay under the facilities list sweep pattern", func(t *testing.T) {
		key := facilitiesListCacheKey(repositories.FacilityFilter{IsActive: &active})
		assert.Contains(t, key, "facilities:list:")
	})
}
