package author

import (
	"time"

	"github.com/google/uuid"

	"booktracker-backend/internal/shared/types"
)

// Author is a catalog entity with open read and write access
type Author struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	Name       string      `json:"name" db:"name"`
	BirthDate  *types.Date `json:"birth_date" db:"birth_date"`
	DeathDate  *types.Date `json:"death_date" db:"death_date"`
	Biography  string      `json:"biography" db:"biography"`
	PictureURL string      `json:"picture_url" db:"picture_url"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at" db:"updated_at"`
}
