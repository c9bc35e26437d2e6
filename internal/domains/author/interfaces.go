package author

import (
	"context"

	"github.com/google/uuid"

	"booktracker-backend/internal/shared/query"
)

type Repository interface {
	Create(ctx context.Context, a *Author) error
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	Update(ctx context.Context, a *Author) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, p query.Pagination) ([]Author, int64, error)
}

type Service interface {
	Create(ctx context.Context, req AuthorRequest) (*Author, error)
	Get(ctx context.Context, id uuid.UUID) (*Author, error)
	Update(ctx context.Context, id uuid.UUID, req AuthorRequest) (*Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, p query.Pagination) ([]Author, int64, error)
}
