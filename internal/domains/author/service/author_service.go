package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"booktracker-backend/internal/domains/author"
	"booktracker-backend/internal/shared/query"
)

type authorService struct {
	authorRepo author.Repository
}

func NewAuthorService(authorRepo author.Repository) author.Service {
	return &authorService{authorRepo: authorRepo}
}

func (s *authorService) Create(ctx context.Context, req author.AuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	a := &author.Author{
		ID:         uuid.New(),
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		DeathDate:  req.DeathDate,
		Biography:  req.Biography,
		PictureURL: req.PictureURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.authorRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *authorService) Get(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.authorRepo.GetByID(ctx, id)
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req author.AuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.authorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Name = req.Name
	a.BirthDate = req.BirthDate
	a.DeathDate = req.DeathDate
	a.Biography = req.Biography
	a.PictureURL = req.PictureURL
	a.UpdatedAt = time.Now()

	if err := s.authorRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.authorRepo.Delete(ctx, id)
}

func (s *authorService) List(ctx context.Context, p query.Pagination) ([]author.Author, int64, error) {
	return s.authorRepo.List(ctx, p)
}
