package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"booktracker-backend/internal/domains/review"
	"booktracker-backend/internal/shared/policy"
)

type reviewService struct {
	reviewRepo review.Repository
}

func NewReviewService(reviewRepo review.Repository) review.Service {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) Create(ctx context.Context, requester, bookID uuid.UUID, req review.ReviewRequest) (*review.ReviewResponse, error) {
	if requester == uuid.Nil {
		return nil, policy.ErrAnonymous
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	r := &review.Review{
		ID:         uuid.New(),
		UserID:     requester,
		BookID:     bookID,
		ReviewText: req.ReviewText,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.reviewRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(ctx, r.ID)
}

func (s *reviewService) Get(ctx context.Context, id uuid.UUID) (*review.ReviewResponse, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

func (s *reviewService) Update(ctx context.Context, requester, id uuid.UUID, req review.ReviewRequest) (*review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r, err := s.reviewRepo.GetEntity(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanModify(requester, r); err != nil {
		return nil, err
	}

	r.ReviewText = req.ReviewText
	r.UpdatedAt = time.Now()

	if err := s.reviewRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(ctx, id)
}

func (s *reviewService) Delete(ctx context.Context, requester, id uuid.UUID) error {
	r, err := s.reviewRepo.GetEntity(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanModify(requester, r); err != nil {
		return err
	}
	return s.reviewRepo.Delete(ctx, id)
}

func (s *reviewService) List(ctx context.Context, f *review.Filter) ([]review.ReviewResponse, int64, error) {
	return s.reviewRepo.List(ctx, f)
}
