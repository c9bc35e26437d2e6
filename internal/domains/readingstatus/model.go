package readingstatus

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"booktracker-backend/internal/shared/types"
)

// Status values for a book on a user's list
const (
	StatusNotStarted = "not_started"
	StatusReading    = "reading"
	StatusCompleted  = "completed"
)

// ReadingStatus tracks one user's progress through one book. The
// (user, book) pair is unique. Rating uses a 0.5-step scale from
// 0.5 to 5.0 and is only set once the book is completed.
type ReadingStatus struct {
	ID         uuid.UUID        `json:"id" db:"id"`
	UserID     uuid.UUID        `json:"user" db:"user_id"`
	BookID     uuid.UUID        `json:"book" db:"book_id"`
	Status     string           `json:"status" db:"status"`
	Rating     *decimal.Decimal `json:"rating" db:"rating"`
	StartedAt  *types.Date      `json:"started_at" db:"started_at"`
	FinishedAt *types.Date      `json:"finished_at" db:"finished_at"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at" db:"updated_at"`
}

func (r *ReadingStatus) OwnedBy() uuid.UUID {
	return r.UserID
}

// ReadingStatusResponse is the read shape: the book rendered as
// its title.
type ReadingStatusResponse struct {
	ID         uuid.UUID        `json:"id"`
	Book       string           `json:"book"`
	Status     string           `json:"status"`
	Rating     *decimal.Decimal `json:"rating"`
	StartedAt  *types.Date      `json:"started_at"`
	FinishedAt *types.Date      `json:"finished_at"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
