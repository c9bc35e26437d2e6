package bookshelf

import (
	"context"

	"github.com/google/uuid"

	"booktracker-backend/internal/domains/book"
	"booktracker-backend/internal/shared/query"
)

type Repository interface {
	Create(ctx context.Context, s *Bookshelf) error
	Update(ctx context.Context, s *Bookshelf) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetEntity(ctx context.Context, id uuid.UUID) (*Bookshelf, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookshelfResponse, error)
	List(ctx context.Context, f *Filter) ([]BookshelfResponse, int64, error)

	AddBook(ctx context.Context, e *Entry) error
	RemoveBook(ctx context.Context, shelfID, bookID uuid.UUID) error
	// ListBooks returns the shelf's books in the book read shape,
	// most recently added first.
	ListBooks(ctx context.Context, shelfID uuid.UUID, p query.Pagination) ([]book.BookResponse, int64, error)
}

// Service is strictly owner-scoped, sub-actions included
type Service interface {
	Create(ctx context.Context, requester uuid.UUID, req BookshelfRequest) (*BookshelfResponse, error)
	Get(ctx context.Context, requester, id uuid.UUID) (*BookshelfResponse, error)
	Update(ctx context.Context, requester, id uuid.UUID, req BookshelfRequest) (*BookshelfResponse, error)
	Delete(ctx context.Context, requester, id uuid.UUID) error
	List(ctx context.Context, f *Filter) ([]BookshelfResponse, int64, error)

	AddBook(ctx context.Context, requester, shelfID uuid.UUID, req AddBookRequest) (*BookshelfResponse, error)
	RemoveBook(ctx context.Context, requester, shelfID, bookID uuid.UUID) error
	ListBooks(ctx context.Context, requester, shelfID uuid.UUID, p query.Pagination) ([]book.BookResponse, int64, error)
}
