package book

import (
	"time"

	"github.com/google/uuid"

	"booktracker-backend/internal/shared/types"
)

// Book is the catalog entry as stored. Authorship and genre links
// live in join tables and are loaded through the read shape.
type Book struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	Title           string      `json:"title" db:"title"`
	ISBN            string      `json:"isbn" db:"isbn"`
	Synopsis        string      `json:"synopsis" db:"synopsis"`
	PublicationDate *types.Date `json:"publication_date" db:"publication_date"`
	Pages           *int        `json:"pages" db:"pages"`
	CoverImageURL   string      `json:"cover_image_url" db:"cover_image_url"`
	PublisherID     uuid.UUID   `json:"publisher" db:"publisher_id"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`
}

// BookResponse is the read shape: relationship fields rendered as
// human-readable labels instead of identifiers.
type BookResponse struct {
	ID              uuid.UUID   `json:"id"`
	Title           string      `json:"title"`
	ISBN            string      `json:"isbn"`
	Synopsis        string      `json:"synopsis"`
	PublicationDate *types.Date `json:"publication_date"`
	Pages           *int        `json:"pages"`
	CoverImageURL   string      `json:"cover_image_url"`
	Publisher       string      `json:"publisher"`
	Authors         []string    `json:"authors"`
	Genres          []string    `json:"genres"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
