package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is one user's review of one book. The (user, book) pair is
// unique.
type Review struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user" db:"user_id"`
	BookID     uuid.UUID `json:"book" db:"book_id"`
	ReviewText string    `json:"review_text" db:"review_text"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

func (r *Review) OwnedBy() uuid.UUID {
	return r.UserID
}

// ReviewResponse is the read shape: user and book rendered as
// username and title.
type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	User       string    `json:"user"`
	Book       string    `json:"book"`
	ReviewText string    `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
