package entities

import (
	"time"

	"github.com/google/uuid"
)

// ListingEventType represents the type of listing lifecycle event
type ListingEventType string

const (
	ListingEventApproved ListingEventType = "listing_approved"
	ListingEventRejected ListingEventType = "listing_rejected"
	ListingEventUpdated  ListingEventType = "listing_updated"
	ListingEventDeleted  ListingEventType = "listing_deleted"
)

// ListingEvent is published on the event bus whenever a facility listing
// changes state, so caches and search indexes can react. Slug is carried
// when the publisher knows it, since cached HTTP responses are keyed by
// the public slug path rather than the facility ID.
type ListingEvent struct {
	ID         string           `json:"id"`
	FacilityID string           `json:"facility_id"`
	Slug       string           `json:"slug,omitempty"`
	EventType  ListingEventType `json:"event_type"`
	Timestamp  time.Time        `json:"timestamp"`
}

// NewListingEvent creates a new listing event
func NewListingEvent(facilityID string, eventType ListingEventType) *ListingEvent {
	return &ListingEvent{
		ID:         uuid.NewString(),
		FacilityID: facilityID,
		EventType:  eventType,
		Timestamp:  time.Now(),
	}
}

// NewListingEventWithSlug creates a listing event that also carries the
// facility's public slug.
func NewListingEventWithSlug(facilityID, slug string, eventType ListingEventType) *ListingEvent {
	event := NewListingEvent(facilityID, eventType)
	event.Slug = slug
	return event
}
