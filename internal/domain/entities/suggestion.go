package entities

import (
	"time"
)

// Suggestion is a visitor-submitted correction or addition for a listing
type Suggestion struct {
	ID         string    `json:"id" db:"id"`
	FacilityID string    `json:"facility_id,omitempty" db:"facility_id"`
	Message    string    `json:"message" db:"message"`
	Email      string    `json:"email,omitempty" db:"email"`
	Page       string    `json:"page,omitempty" db:"page"`
	UserAgent  string    `json:"-" db:"user_agent"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
