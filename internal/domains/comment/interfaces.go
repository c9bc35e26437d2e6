package comment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetEntity(ctx context.Context, id uuid.UUID) (*Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CommentResponse, error)
	List(ctx context.Context, f *Filter) ([]CommentResponse, int64, error)
}

type Service interface {
	// Create writes a comment under the review in the nested path.
	// A parent, when given, must belong to the same review.
	Create(ctx context.Context, requester, reviewID uuid.UUID, req CommentRequest) (*CommentResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*CommentResponse, error)
	Update(ctx context.Context, requester, id uuid.UUID, req CommentRequest) (*CommentResponse, error)
	Delete(ctx context.Context, requester, id uuid.UUID) error
	List(ctx context.Context, f *Filter) ([]CommentResponse, int64, error)
}
