package entities

import (
	"time"
)

// FacilityKind distinguishes the listing categories of the directory
type FacilityKind string

const (
	KindSportsBase    FacilityKind = "sports_base"
	KindRepairShop    FacilityKind = "repair_shop"
	KindEquipmentShop FacilityKind = "equipment_shop"
)

// FacilityStatus tracks the admin approval workflow
type FacilityStatus string

const (
	StatusPending  FacilityStatus = "pending"
	StatusApproved FacilityStatus = "approved"
	StatusRejected FacilityStatus = "rejected"
)

// Facility represents a listed sports facility, repair shop or equipment shop
type Facility struct {
	ID             string          `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Slug           string          `json:"slug" db:"slug"`
	Kind           FacilityKind    `json:"kind" db:"kind"`
	Address        Address         `json:"address" db:"-"`
	Coordinates    *MapCoordinates `json:"coordinates,omitempty" db:"-"`
	PhoneNumber    string          `json:"phone_number" db:"phone_number"`
	WhatsAppNumber string          `json:"whatsapp_number,omitempty" db:"whatsapp_number"`
	Email          string          `json:"email" db:"email"`
	Website        string          `json:"website" db:"website"`
	Description    string          `json:"description" db:"description"`
	Sports         []string        `json:"sports" db:"-"`
	Features       []string        `json:"features,omitempty" db:"-"`
	Gallery        []string        `json:"gallery,omitempty" db:"-"`
	SocialMedia    SocialMedia     `json:"social_media" db:"-"`
	Status         FacilityStatus  `json:"status" db:"status"`
	OwnerID        string          `json:"owner_id,omitempty" db:"owner_id"`
	Rating         float64         `json:"rating" db:"rating"`
	ReviewCount    int             `json:"review_count" db:"review_count"`
	IsActive       bool            `json:"is_active" db:"is_active"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// Address represents a physical address
type Address struct {
	Street     string `json:"street" db:"street"`
	City       string `json:"city" db:"city"`
	County     string `json:"county" db:"county"`
	PostalCode string `json:"postal_code" db:"postal_code"`
}

// MapCoordinates represents geographical coordinates
type MapCoordinates struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// SocialMedia holds the facility's social profile links
type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// IsPublic reports whether the facility may appear on public listing pages
func (f *Facility) IsPublic() bool {
	return f.IsActive && f.Status == StatusApproved
}
