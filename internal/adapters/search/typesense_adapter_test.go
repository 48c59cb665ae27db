package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
)

func TestBuildFilterBy(t *testing.T) {
	assert.Empty(t, buildFilterBy(repositories.SearchParams{}))

	assert.Equal(t, "kind:=sports_base", buildFilterBy(repositories.SearchParams{
		Kind: entities.KindSportsBase,
	}))

	assert.Equal(t, "kind:=repair_shop && city:=Cluj-Napoca && sports:=ciclism",
		buildFilterBy(repositories.SearchParams{
			Kind:  entities.KindRepairShop,
			City:  "Cluj-Napoca",
			Sport: "ciclism",
		}))
}

func TestFacilityFromDocument(t *testing.T) {
	facility := facilityFromDocument(map[string]interface{}{
		"id":           "fac-1",
		"name":         "Baza Sportivă Gheorgheni",
		"slug":         "baza-sportiva-gheorgheni",
		"kind":         "sports_base",
		"city":         "Cluj-Napoca",
		"county":       "Cluj",
		"sports":       []interface{}{"fotbal", "tenis"},
		"rating":       4.2,
		"review_count": float64(31),
	})

	assert.Equal(t, "fac-1", facility.ID)
	assert.Equal(t, entities.KindSportsBase, facility.Kind)
	assert.Equal(t, "Cluj-Napoca", facility.Address.City)
	assert.Equal(t, []string{"fotbal", "tenis"}, facility.Sports)
	assert.Equal(t, 4.2, facility.Rating)
	assert.Equal(t, 31, facility.ReviewCount)
	assert.True(t, facility.IsPublic())
}

func TestFacilityFromDocumentIgnoresBadTypes(t *testing.T) {
	facility := facilityFromDocument(map[string]interface{}{
		"id":     42,
		"sports": "not a list",
		"rating": "high",
	})

	assert.Empty(t, facility.ID)
	assert.Empty(t, facility.Sports)
	assert.Zero(t, facility.Rating)
}
