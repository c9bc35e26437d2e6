package publisher

import (
	"time"

	"github.com/google/uuid"
)

// Publisher is a catalog entity; deletion is blocked while any
// book references it.
type Publisher struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Country        string    `json:"country" db:"country"`
	FoundationYear *int      `json:"foundation_year" db:"foundation_year"`
	LogoURL        string    `json:"logo_url" db:"logo_url"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
