package bookshelf

import (
	"time"

	"github.com/google/uuid"
)

// Bookshelf is a user's named collection of books. The (user,
// name) pair is unique.
type Bookshelf struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (b *Bookshelf) OwnedBy() uuid.UUID {
	return b.UserID
}

// Entry records one book on one shelf and when it was added. The
// (bookshelf, book) pair is unique.
type Entry struct {
	ID          uuid.UUID `json:"id" db:"id"`
	BookshelfID uuid.UUID `json:"bookshelf" db:"bookshelf_id"`
	BookID      uuid.UUID `json:"book" db:"book_id"`
	AddedAt     time.Time `json:"added_at" db:"added_at"`
}

// BookshelfResponse is the read shape; the entry relation is
// summarized as a count, the books themselves come from the
// /bookshelves/{id}/books sub-action.
type BookshelfResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BookCount   int64     `json:"book_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
