package publisher

import (
	"context"

	"github.com/google/uuid"

	"booktracker-backend/internal/shared/query"
)

type Repository interface {
	Create(ctx context.Context, p *Publisher) error
	GetByID(ctx context.Context, id uuid.UUID) (*Publisher, error)
	Update(ctx context.Context, p *Publisher) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, p query.Pagination) ([]Publisher, int64, error)
}

type Service interface {
	Create(ctx context.Context, req PublisherRequest) (*Publisher, error)
	Get(ctx context.Context, id uuid.UUID) (*Publisher, error)
	Update(ctx context.Context, id uuid.UUID, req PublisherRequest) (*Publisher, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, p query.Pagination) ([]Publisher, int64, error)
}
