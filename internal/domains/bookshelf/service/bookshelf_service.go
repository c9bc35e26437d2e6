package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"booktracker-backend/internal/domains/book"
	"booktracker-backend/internal/domains/bookshelf"
	"booktracker-backend/internal/shared/policy"
	"booktracker-backend/internal/shared/query"
)

type bookshelfService struct {
	shelfRepo bookshelf.Repository
}

func NewBookshelfService(shelfRepo bookshelf.Repository) bookshelf.Service {
	return &bookshelfService{shelfRepo: shelfRepo}
}

func (s *bookshelfService) Create(ctx context.Context, requester uuid.UUID, req bookshelf.BookshelfRequest) (*bookshelf.BookshelfResponse, error) {
	if requester == uuid.Nil {
		return nil, policy.ErrAnonymous
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	shelf := &bookshelf.Bookshelf{
		ID:          uuid.New(),
		UserID:      requester,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.shelfRepo.Create(ctx, shelf); err != nil {
		return nil, err
	}
	return s.shelfRepo.GetByID(ctx, shelf.ID)
}

func (s *bookshelfService) Get(ctx context.Context, requester, id uuid.UUID) (*bookshelf.BookshelfResponse, error) {
	if _, err := s.ownedShelf(ctx, requester, id); err != nil {
		return nil, err
	}
	return s.shelfRepo.GetByID(ctx, id)
}

func (s *bookshelfService) Update(ctx context.Context, requester, id uuid.UUID, req bookshelf.BookshelfRequest) (*bookshelf.BookshelfResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	shelf, err := s.ownedShelf(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	shelf.Name = req.Name
	shelf.Description = req.Description
	shelf.UpdatedAt = time.Now()

	if err := s.shelfRepo.Update(ctx, shelf); err != nil {
		return nil, err
	}
	return s.shelfRepo.GetByID(ctx, id)
}

func (s *bookshelfService) Delete(ctx context.Context, requester, id uuid.UUID) error {
	if _, err := s.ownedShelf(ctx, requester, id); err != nil {
		return err
	}
	return s.shelfRepo.Delete(ctx, id)
}

func (s *bookshelfService) List(ctx context.Context, f *bookshelf.Filter) ([]bookshelf.BookshelfResponse, int64, error) {
	return s.shelfRepo.List(ctx, f)
}

func (s *bookshelfService) AddBook(ctx context.Context, requester, shelfID uuid.UUID, req bookshelf.AddBookRequest) (*bookshelf.BookshelfResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.ownedShelf(ctx, requester, shelfID); err != nil {
		return nil, err
	}

	entry := &bookshelf.Entry{
		ID:          uuid.New(),
		BookshelfID: shelfID,
		BookID:      req.BookID,
		AddedAt:     time.Now(),
	}
	if err := s.shelfRepo.AddBook(ctx, entry); err != nil {
		return nil, err
	}
	return s.shelfRepo.GetByID(ctx, shelfID)
}

func (s *bookshelfService) RemoveBook(ctx context.Context, requester, shelfID, bookID uuid.UUID) error {
	if _, err := s.ownedShelf(ctx, requester, shelfID); err != nil {
		return err
	}
	return s.shelfRepo.RemoveBook(ctx, shelfID, bookID)
}

func (s *bookshelfService) ListBooks(ctx context.Context, requester, shelfID uuid.UUID, p query.Pagination) ([]book.BookResponse, int64, error) {
	if _, err := s.ownedShelf(ctx, requester, shelfID); err != nil {
		return nil, 0, err
	}
	return s.shelfRepo.ListBooks(ctx, shelfID, p)
}

func (s *bookshelfService) ownedShelf(ctx context.Context, requester, id uuid.UUID) (*bookshelf.Bookshelf, error) {
	shelf, err := s.shelfRepo.GetEntity(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanModify(requester, shelf); err != nil {
		return nil, err
	}
	return shelf, nil
}
