package entities

import (
	"time"
)

// SlotStatus is the availability state of a weekly time slot
type SlotStatus string

const (
	SlotOpen         SlotStatus = "open"
	SlotClosed       SlotStatus = "closed"
	SlotNotSpecified SlotStatus = "not_specified"
)

// TimeSlot is one open/closed interval on a weekday. Times are "HH:MM" in 24h
// format. EndTime earlier than StartTime means the interval wraps past
// midnight; duration computations add 24h to the end in that case.
type TimeSlot struct {
	Day                string     `json:"day"`
	StartTime          string     `json:"start_time"`
	EndTime            string     `json:"end_time"`
	Status             SlotStatus `json:"status"`
	Price              *float64   `json:"price,omitempty"`
	IsPriceUnspecified bool       `json:"is_price_unspecified,omitempty"`
}

// SportsField belongs to exactly one facility. Its time slots are replaced
// wholesale on every save; there is no per-slot update.
type SportsField struct {
	ID         string     `json:"id" db:"id"`
	FacilityID string     `json:"facility_id" db:"facility_id"`
	Name       string     `json:"name" db:"name"`
	Sport      string     `json:"sport" db:"sport"`
	Surface    string     `json:"surface,omitempty" db:"surface"`
	Covered    bool       `json:"covered" db:"covered"`
	SlotSize   int        `json:"slot_size" db:"slot_size"` // minutes, informational only
	TimeSlots  []TimeSlot `json:"time_slots" db:"-"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}
