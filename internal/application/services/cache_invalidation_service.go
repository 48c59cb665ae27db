package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/providers"
)

// CacheInvalidationService drops cached HTTP responses when listing events
// arrive on the event bus. This keeps multiple API instances consistent:
// whichever instance approves a listing, every instance flushes its view.
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewCacheInvalidationService creates a new cache invalidation service
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins listening for listing events and invalidating cache
func (s *CacheInvalidationService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelListings)
	if err != nil {
		return fmt.Errorf("failed to subscribe to listing updates: %w", err)
	}

	go s.processEvents(eventChan)
	log.Println("Cache invalidation service started")
	return nil
}

// Stop stops the cache invalidation service
func (s *CacheInvalidationService) Stop() {
	s.cancel()
	log.Println("Cache invalidation service stopped")
}

func (s *CacheInvalidationService) processEvents(eventChan <-chan *entities.ListingEvent) {
	for {
		select {
		case <-s.ctx.Done():
			return
		case event := <-eventChan:
			if event == nil {
				continue
			}
			s.handleEvent(event)
		}
	}
}

func (s *CacheInvalidationService) handleEvent(event *entities.ListingEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Listing pages and search results have short TTLs and refresh on their
	// own; only the affected facility's cached responses are dropped here.
	patterns := []string{
		fmt.Sprintf("http:cache:*facilities/%s*", event.FacilityID),
		fmt.Sprintf("facility:%s", event.FacilityID),
	}
	if event.Slug != "" {
		// Public facility and schedule pages are cached under the slug path.
		patterns = append(patterns,
			fmt.Sprintf("http:cache:*facilities/%s*", event.Slug),
			fmt.Sprintf("facility:slug:%s", event.Slug))
	}
	if event.EventType == entities.ListingEventApproved || event.EventType == entities.ListingEventRejected {
		// Approval changes which listings appear on public list pages.
		patterns = append(patterns, "facilities:list:*", "http:cache:*facilities?*")
	}

	for _, pattern := range patterns {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			log.Printf("Warning: Failed to invalidate cache pattern %s for %s: %v", pattern, event.FacilityID, err)
		}
	}
}

// InvalidateFacilityCache invalidates cache for a specific facility
func (s *CacheInvalidationService) InvalidateFacilityCache(ctx context.Context, facilityID string) error {
	pattern := fmt.Sprintf("http:cache:*facilities/%s*", facilityID)
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		return fmt.Errorf("failed to invalidate facility cache: %w", err)
	}
	return nil
}
