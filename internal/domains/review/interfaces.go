package review

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *Review) error
	Update(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetEntity(ctx context.Context, id uuid.UUID) (*Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewResponse, error)
	List(ctx context.Context, f *Filter) ([]ReviewResponse, int64, error)
}

type Service interface {
	// Create writes a review for the book in the nested path.
	// requester must be authenticated; one review per (user, book).
	Create(ctx context.Context, requester, bookID uuid.UUID, req ReviewRequest) (*ReviewResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*ReviewResponse, error)
	Update(ctx context.Context, requester, id uuid.UUID, req ReviewRequest) (*ReviewResponse, error)
	Delete(ctx context.Context, requester, id uuid.UUID) error
	List(ctx context.Context, f *Filter) ([]ReviewResponse, int64, error)
}
