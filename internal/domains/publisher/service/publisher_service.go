package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"booktracker-backend/internal/domains/publisher"
	"booktracker-backend/internal/shared/query"
)

type publisherService struct {
	publisherRepo publisher.Repository
}

func NewPublisherService(publisherRepo publisher.Repository) publisher.Service {
	return &publisherService{publisherRepo: publisherRepo}
}

func (s *publisherService) Create(ctx context.Context, req publisher.PublisherRequest) (*publisher.Publisher, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &publisher.Publisher{
		ID:             uuid.New(),
		Name:           req.Name,
		Country:        req.Country,
		FoundationYear: req.FoundationYear,
		LogoURL:        req.LogoURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.publisherRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *publisherService) Get(ctx context.Context, id uuid.UUID) (*publisher.Publisher, error) {
	return s.publisherRepo.GetByID(ctx, id)
}

func (s *publisherService) Update(ctx context.Context, id uuid.UUID, req publisher.PublisherRequest) (*publisher.Publisher, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.publisherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Country = req.Country
	p.FoundationYear = req.FoundationYear
	p.LogoURL = req.LogoURL
	p.UpdatedAt = time.Now()

	if err := s.publisherRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *publisherService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.publisherRepo.Delete(ctx, id)
}

func (s *publisherService) List(ctx context.Context, p query.Pagination) ([]publisher.Publisher, int64, error) {
	return s.publisherRepo.List(ctx, p)
}
