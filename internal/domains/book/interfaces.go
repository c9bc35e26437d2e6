package book

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create writes the row and its author/genre links in one
	// transaction.
	Create(ctx context.Context, b *Book, authorIDs, genreIDs []uuid.UUID) error
	// Update replaces the row and its links in one transaction and
	// re-checks the author invariant after the links change.
	Update(ctx context.Context, b *Book, authorIDs, genreIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetEntity(ctx context.Context, id uuid.UUID) (*Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookResponse, error)
	List(ctx context.Context, f *Filter) ([]BookResponse, int64, error)
}

type Service interface {
	Create(ctx context.Context, req BookRequest) (*BookResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*BookResponse, error)
	Update(ctx context.Context, id uuid.UUID, req BookRequest) (*BookResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f *Filter) ([]BookResponse, int64, error)
}
