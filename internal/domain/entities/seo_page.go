package entities

import (
	"time"
)

// SEOPage holds the metadata served for one public page path
type SEOPage struct {
	ID          string    `json:"id" db:"id"`
	Path        string    `json:"path" db:"path"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Keywords    string    `json:"keywords,omitempty" db:"keywords"`
	OGImage     string    `json:"og_image,omitempty" db:"og_image"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
