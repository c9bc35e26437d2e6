package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"booktracker-backend/internal/domains/readingstatus"
	"booktracker-backend/internal/shared/policy"
)

type readingStatusService struct {
	statusRepo readingstatus.Repository
}

func NewReadingStatusService(statusRepo readingstatus.Repository) readingstatus.Service {
	return &readingStatusService{statusRepo: statusRepo}
}

func (s *readingStatusService) Create(ctx context.Context, requester uuid.UUID, req readingstatus.ReadingStatusRequest) (*readingstatus.ReadingStatusResponse, error) {
	if requester == uuid.Nil {
		return nil, policy.ErrAnonymous
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	rs := &readingstatus.ReadingStatus{
		ID:         uuid.New(),
		UserID:     requester,
		BookID:     req.BookID,
		Status:     req.Status,
		Rating:     req.Rating,
		StartedAt:  req.StartedAt,
		FinishedAt: req.FinishedAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.statusRepo.Create(ctx, rs); err != nil {
		return nil, err
	}
	return s.statusRepo.GetByID(ctx, rs.ID)
}

func (s *readingStatusService) Get(ctx context.Context, requester, id uuid.UUID) (*readingstatus.ReadingStatusResponse, error) {
	rs, err := s.statusRepo.GetEntity(ctx, id)
	if err != nil {
		return nil, err
	}
	// Owner-only visibility, unlike reviews
	if err := policy.CanModify(requester, rs); err != nil {
		return nil, err
	}
	return s.statusRepo.GetByID(ctx, id)
}

func (s *readingStatusService) Update(ctx context.Context, requester, id uuid.UUID, req readingstatus.ReadingStatusRequest) (*readingstatus.ReadingStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rs, err := s.statusRepo.GetEntity(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanModify(requester, rs); err != nil {
		return nil, err
	}

	rs.BookID = req.BookID
	rs.Status = req.Status
	rs.Rating = req.Rating
	rs.StartedAt = req.StartedAt
	rs.FinishedAt = req.FinishedAt
	rs.UpdatedAt = time.Now()

	if err := s.statusRepo.Update(ctx, rs); err != nil {
		return nil, err
	}
	return s.statusRepo.GetByID(ctx, id)
}

func (s *readingStatusService) Delete(ctx context.Context, requester, id uuid.UUID) error {
	rs, err := s.statusRepo.GetEntity(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanModify(requester, rs); err != nil {
		return err
	}
	return s.statusRepo.Delete(ctx, id)
}

func (s *readingStatusService) List(ctx context.Context, f *readingstatus.Filter) ([]readingstatus.ReadingStatusResponse, int64, error) {
	return s.statusRepo.List(ctx, f)
}
