package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"booktracker-backend/internal/domains/genre"
	"booktracker-backend/internal/shared/query"
)

type genreService struct {
	genreRepo genre.Repository
}

func NewGenreService(genreRepo genre.Repository) genre.Service {
	return &genreService{genreRepo: genreRepo}
}

func (s *genreService) Create(ctx context.Context, req genre.GenreRequest) (*genre.Genre, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	g := &genre.Genre{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.genreRepo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *genreService) Get(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	return s.genreRepo.GetByID(ctx, id)
}

func (s *genreService) Update(ctx context.Context, id uuid.UUID, req genre.GenreRequest) (*genre.Genre, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g.Name = req.Name
	g.Description = req.Description
	g.UpdatedAt = time.Now()

	if err := s.genreRepo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *genreService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.genreRepo.Delete(ctx, id)
}

func (s *genreService) List(ctx context.Context, p query.Pagination) ([]genre.Genre, int64, error) {
	return s.genreRepo.List(ctx, p)
}
