package entities

import (
	"time"
)

// Coach represents a listed sports coach
type Coach struct {
	ID           string         `json:"id" db:"id"`
	Name         string         `json:"name" db:"name"`
	Slug         string         `json:"slug" db:"slug"`
	City         string         `json:"city" db:"city"`
	County       string         `json:"county" db:"county"`
	Sports       []string       `json:"sports" db:"-"`
	PhoneNumber  string         `json:"phone_number" db:"phone_number"`
	Email        string         `json:"email" db:"email"`
	Description  string         `json:"description" db:"description"`
	PricePerHour *float64       `json:"price_per_hour,omitempty" db:"price_per_hour"`
	Status       FacilityStatus `json:"status" db:"status"`
	IsActive     bool           `json:"is_active" db:"is_active"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}
