package readingstatus

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, rs *ReadingStatus) error
	Update(ctx context.Context, rs *ReadingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetEntity(ctx context.Context, id uuid.UUID) (*ReadingStatus, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReadingStatusResponse, error)
	List(ctx context.Context, f *Filter) ([]ReadingStatusResponse, int64, error)
}

// Service is strictly owner-scoped: every operation takes the
// requesting identity and never exposes another user's rows.
type Service interface {
	Create(ctx context.Context, requester uuid.UUID, req ReadingStatusRequest) (*ReadingStatusResponse, error)
	Get(ctx context.Context, requester, id uuid.UUID) (*ReadingStatusResponse, error)
	Update(ctx context.Context, requester, id uuid.UUID, req ReadingStatusRequest) (*ReadingStatusResponse, error)
	Delete(ctx context.Context, requester, id uuid.UUID) error
	List(ctx context.Context, f *Filter) ([]ReadingStatusResponse, int64, error)
}
