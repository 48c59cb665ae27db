package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/providers"
	"github.com/sportmap-ro/backend/internal/domain/repositories"
)

// CachedFacilityAdapter wraps FacilityAdapter with caching
type CachedFacilityAdapter struct {
	adapter repositories.FacilityRepository
	cache   providers.CacheProvider
}

// NewCachedFacilityAdapter creates a new cached facility adapter
func NewCachedFacilityAdapter(adapter repositories.FacilityRepository, cache providers.CacheProvider) repositories.FacilityRepository {
	return &CachedFacilityAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	facilityByIDTTL   = 300 // 5 minutes for single facility
	facilitiesListTTL = 180 // 3 minutes for lists
)

// Cache key generators
func facilityCacheKey(id string) string {
	return fmt.Sprintf("facility:%s", id)
}

func facilitySlugCacheKey(slug string) string {
	return fmt.Sprintf("facility:slug:%s", slug)
}

func facilitiesListCacheKey(filter repositories.FacilityFilter) string {
	// IsActive distinguishes the public list from the unfiltered admin list;
	// leaving it out would let the two share one cache entry.
	active := "any"
	if filter.IsActive != nil {
		active = fmt.Sprintf("%t", *filter.IsActive)
	}
	return fmt.Sprintf("facilities:list:%s:%s:%s:%s:%s:%s:%d:%d",
		filter.Kind, filter.City, filter.County, filter.Sport, filter.Status,
		active, filter.Limit, filter.Offset)
}

// GetByID retrieves a facility by ID with caching
func (a *CachedFacilityAdapter) GetByID(ctx context.Context, id string) (*entities.Facility, error) {
	return a.getCached(ctx, facilityCacheKey(id), func(ctx context.Context) (*entities.Facility, error) {
		return a.adapter.GetByID(ctx, id)
	})
}

// GetBySlug retrieves a facility by slug with caching
func (a *CachedFacilityAdapter) GetBySlug(ctx context.Context, slug string) (*entities.Facility, error) {
	return a.getCached(ctx, facilitySlugCacheKey(slug), func(ctx context.Context) (*entities.Facility, error) {
		return a.adapter.GetBySlug(ctx, slug)
	})
}

func (a *CachedFacilityAdapter) getCached(ctx context.Context, cacheKey string, fetch func(context.Context) (*entities.Facility, error)) (*entities.Facility, error) {
	// Try to get from cache first
	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var facility entities.Facility
		if err := json.Unmarshal(cached, &facility); err == nil {
			return &facility, nil
		}
		// If unmarshal fails, continue to fetch from DB
		log.Printf("Failed to unmarshal cached facility %s: %v", cacheKey, err)
	}

	// Cache miss - fetch from database
	facility, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(facility); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, facilityByIDTTL); err != nil {
				log.Printf("Failed to cache facility %s: %v", cacheKey, err)
			}
		}
	}()

	return facility, nil
}

// GetByIDs retrieves multiple facilities by IDs with batch caching
func (a *CachedFacilityAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Facility, error) {
	if len(ids) == 0 {
		return []*entities.Facility{}, nil
	}

	// Try to get all from cache first using batch operation
	cacheKeys := make([]string, len(ids))
	for i, id := range ids {
		cacheKeys[i] = facilityCacheKey(id)
	}

	cached, _ := a.cache.GetMulti(ctx, cacheKeys)

	var cachedFacilities []*entities.Facility
	missingIDs := make([]string, 0)

	for i, id := range ids {
		if data, ok := cached[cacheKeys[i]]; ok {
			var facility entities.Facility
			if err := json.Unmarshal(data, &facility); err == nil {
				cachedFacilities = append(cachedFacilities, &facility)
				continue
			}
		}
		missingIDs = append(missingIDs, id)
	}

	// If all were cached, return them
	if len(missingIDs) == 0 {
		return cachedFacilities, nil
	}

	// Fetch missing facilities from database
	dbFacilities, err := a.adapter.GetByIDs(ctx, missingIDs)
	if err != nil {
		return nil, err
	}

	// Cache the missing facilities asynchronously using batch operation
	go func() {
		bgCtx := context.Background()
		items := make(map[string][]byte)
		for _, facility := range dbFacilities {
			if data, err := json.Marshal(facility); err == nil {
				items[facilityCacheKey(facility.ID)] = data
			}
		}
		if len(items) > 0 {
			if err := a.cache.SetMulti(bgCtx, items, facilityByIDTTL); err != nil {
				log.Printf("Failed to batch cache facilities: %v", err)
			}
		}
	}()

	return append(cachedFacilities, dbFacilities...), nil
}

// List retrieves a list of facilities with caching
func (a *CachedFacilityAdapter) List(ctx context.Context, filter repositories.FacilityFilter) ([]*entities.Facility, error) {
	cacheKey := facilitiesListCacheKey(filter)

	// Try to get from cache first
	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var facilities []*entities.Facility
		if err := json.Unmarshal(cached, &facilities); err == nil {
			return facilities, nil
		}
		log.Printf("Failed to unmarshal cached facilities list: %v", err)
	}

	// Cache miss - fetch from database
	facilities, err := a.adapter.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(facilities); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, facilitiesListTTL); err != nil {
				log.Printf("Failed to cache facilities list: %v", err)
			}
		}
	}()

	return facilities, nil
}

// Create creates a facility and invalidates related caches
func (a *CachedFacilityAdapter) Create(ctx context.Context, facility *entities.Facility) error {
	if err := a.adapter.Create(ctx, facility); err != nil {
		return err
	}

	go invalidateListCaches(a.cache)

	return nil
}

// Update updates a facility and invalidates its cache
func (a *CachedFacilityAdapter) Update(ctx context.Context, facility *entities.Facility) error {
	if err := a.adapter.Update(ctx, facility); err != nil {
		return err
	}

	go a.invalidateFacility(facility.ID, facility.Slug)

	return nil
}

// SetStatus updates a facility status and invalidates its cache
func (a *CachedFacilityAdapter) SetStatus(ctx context.Context, id string, status entities.FacilityStatus) error {
	if err := a.adapter.SetStatus(ctx, id, status); err != nil {
		return err
	}

	go a.invalidateFacility(id, "")

	return nil
}

// Delete deletes a facility and invalidates its cache
func (a *CachedFacilityAdapter) Delete(ctx context.Context, id string) error {
	if err := a.adapter.Delete(ctx, id); err != nil {
		return err
	}

	go a.invalidateFacility(id, "")

	return nil
}

func (a *CachedFacilityAdapter) invalidateFacility(id, slug string) {
	bgCtx := context.Background()

	if err := a.cache.Delete(bgCtx, facilityCacheKey(id)); err != nil {
		log.Printf("Failed to invalidate facility cache %s: %v", id, err)
	}
	if slug != "" {
		if err := a.cache.Delete(bgCtx, facilitySlugCacheKey(slug)); err != nil {
			log.Printf("Failed to invalidate facility slug cache %s: %v", slug, err)
		}
	} else {
		// Status and delete paths do not know the slug; sweep the slug keys.
		if err := a.cache.DeletePattern(bgCtx, "facility:slug:*"); err != nil {
			log.Printf("Failed to invalidate facility slug caches: %v", err)
		}
	}

	invalidateListCaches(a.cache)
}

func invalidateListCaches(cache providers.CacheProvider) {
	bgCtx := context.Background()
	if err := cache.DeletePattern(bgCtx, "facilities:list:*"); err != nil {
		log.Printf("Failed to invalidate facilities list cache: %v", err)
	}
}
