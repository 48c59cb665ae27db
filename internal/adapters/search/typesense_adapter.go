package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
	tsclient "github.com/sportmap-ro/backend/internal/infrastructure/clients/typesense"
)

const collectionName = "facilities"

// TypesenseAdapter implements facility search using Typesense
type TypesenseAdapter struct {
	client *tsclient.Client
}

// Ensure TypesenseAdapter implements FacilitySearchRepository
var _ repositories.FacilitySearchRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	// Check if collection exists
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil // Collection exists
	}

	schema := &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "slug", Type: "string"},
			{Name: "kind", Type: "string", Facet: pointer.True()},
			{Name: "city", Type: "string", Facet: pointer.True()},
			{Name: "county", Type: "string", Facet: pointer.True()},
			{Name: "sports", Type: "string[]", Facet: pointer.True()},
			{Name: "rating", Type: "float"},
			{Name: "review_count", Type: "int32"},
			{Name: "created_at", Type: "int64"},
		},
		DefaultSortingField: pointer.String("created_at"),
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}

	return nil
}

// ResetSchema drops the collection so the next InitSchema rebuilds it
func (a *TypesenseAdapter) ResetSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Delete(ctx)
	return err
}

// Index indexes a facility. Only public listings are searchable, so anything
// not approved is removed from the index instead.
func (a *TypesenseAdapter) Index(ctx context.Context, facility *entities.Facility) error {
	if !facility.IsPublic() {
		// Ignore the missing-document error; the listing may never have
		// been indexed.
		_, _ = a.client.Client().Collection(collectionName).Document(facility.ID).Delete(ctx)
		return nil
	}

	document := map[string]interface{}{
		"id":           facility.ID,
		"name":         facility.Name,
		"slug":         facility.Slug,
		"kind":         string(facility.Kind),
		"city":         facility.Address.City,
		"county":       facility.Address.County,
		"sports":       facility.Sports,
		"rating":       facility.Rating,
		"review_count": facility.ReviewCount,
		"created_at":   facility.CreatedAt.Unix(),
	}

	_, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index facility: %w", err)
	}

	return nil
}

// Delete removes a facility from index
func (a *TypesenseAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(collectionName).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete facility from index: %w", err)
	}
	return nil
}

// buildFilterBy assembles the Typesense filter expression for the facet params
func buildFilterBy(params repositories.SearchParams) string {
	filters := []string{}
	if params.Kind != "" {
		filters = append(filters, fmt.Sprintf("kind:=%s", params.Kind))
	}
	if params.City != "" {
		filters = append(filters, fmt.Sprintf("city:=%s", params.City))
	}
	if params.County != "" {
		filters = append(filters, fmt.Sprintf("county:=%s", params.County))
	}
	if params.Sport != "" {
		filters = append(filters, fmt.Sprintf("sports:=%s", params.Sport))
	}
	return strings.Join(filters, " && ")
}

// Search searches facilities
func (a *TypesenseAdapter) Search(ctx context.Context, params repositories.SearchParams) (*repositories.SearchResult, error) {
	query := params.Query
	if query == "" {
		query = "*"
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("name,city,sports"),
		Page:    pointer.Int(params.Offset/limit + 1),
		PerPage: pointer.Int(limit),
	}
	if filterBy := buildFilterBy(params); filterBy != "" {
		searchParams.FilterBy = pointer.String(filterBy)
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search facilities: %w", err)
	}

	searchResult := &repositories.SearchResult{Facilities: []*entities.Facility{}}
	if result.Found != nil {
		searchResult.TotalCount = *result.Found
	}
	if result.Hits == nil {
		return searchResult, nil
	}

	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		searchResult.Facilities = append(searchResult.Facilities, facilityFromDocument(*hit.Document))
	}

	return searchResult, nil
}

// facilityFromDocument reconstructs a partial facility from a search hit.
// Typesense returns map[string]interface{}, so every field is cast safely;
// callers needing full details fetch them from the database by ID.
func facilityFromDocument(doc map[string]interface{}) *entities.Facility {
	facility := &entities.Facility{
		Status:   entities.StatusApproved,
		IsActive: true,
	}

	if val, ok := doc["id"].(string); ok {
		facility.ID = val
	}
	if val, ok := doc["name"].(string); ok {
		facility.Name = val
	}
	if val, ok := doc["slug"].(string); ok {
		facility.Slug = val
	}
	if val, ok := doc["kind"].(string); ok {
		facility.Kind = entities.FacilityKind(val)
	}
	if val, ok := doc["city"].(string); ok {
		facility.Address.City = val
	}
	if val, ok := doc["county"].(string); ok {
		facility.Address.County = val
	}
	if vals, ok := doc["sports"].([]interface{}); ok {
		for _, v := range vals {
			if s, ok := v.(string); ok {
				facility.Sports = append(facility.Sports, s)
			}
		}
	}
	if val, ok := doc["rating"].(float64); ok {
		facility.Rating = val
	}
	if val, ok := doc["review_count"].(float64); ok {
		facility.ReviewCount = int(val)
	}

	return facility
}
