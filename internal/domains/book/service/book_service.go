package service

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"booktracker-backend/internal/domains/book"
)

type bookService struct {
	bookRepo book.Repository
}

func NewBookService(bookRepo book.Repository) book.Service {
	return &bookService{bookRepo: bookRepo}
}

func (s *bookService) Create(ctx context.Context, req book.BookRequest) (*book.BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &book.Book{
		ID:              uuid.New(),
		Title:           req.Title,
		ISBN:            req.ISBN,
		Synopsis:        req.Synopsis,
		PublicationDate: req.PublicationDate,
		Pages:           req.Pages,
		CoverImageURL:   req.CoverImageURL,
		PublisherID:     req.PublisherID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.bookRepo.Create(ctx, b, dedupe(req.AuthorIDs), dedupe(req.GenreIDs)); err != nil {
		return nil, err
	}
	return s.bookRepo.GetByID(ctx, b.ID)
}

func (s *bookService) Get(ctx context.Context, id uuid.UUID) (*book.BookResponse, error) {
	return s.bookRepo.GetByID(ctx, id)
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req book.BookRequest) (*book.BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.bookRepo.GetEntity(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Title = req.Title
	b.ISBN = req.ISBN
	b.Synopsis = req.Synopsis
	b.PublicationDate = req.PublicationDate
	b.Pages = req.Pages
	b.CoverImageURL = req.CoverImageURL
	b.PublisherID = req.PublisherID
	b.UpdatedAt = time.Now()

	err = s.bookRepo.Update(ctx, b, dedupe(req.AuthorIDs), dedupe(req.GenreIDs))
	if errors.Is(err, book.ErrNoAuthors) {
		// Surface the invariant as a field error on the write shape
		return nil, validation.Errors{"authors": book.ErrNoAuthors}
	}
	if err != nil {
		return nil, err
	}
	return s.bookRepo.GetByID(ctx, id)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.bookRepo.Delete(ctx, id)
}

func (s *bookService) List(ctx context.Context, f *book.Filter) ([]book.BookResponse, int64, error) {
	return s.bookRepo.List(ctx, f)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
