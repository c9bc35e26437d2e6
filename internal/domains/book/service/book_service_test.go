package service

import (
	"context"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booktracker-backend/internal/domains/book"
)

type fakeRepo struct {
	books map[uuid.UUID]*book.Book

	lastAuthorIDs []uuid.UUID
	lastGenreIDs  []uuid.UUID
	updateErr     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{books: make(map[uuid.UUID]*book.Book)}
}

func (f *fakeRepo) Create(_ context.Context, b *book.Book, authorIDs, genreIDs []uuid.UUID) error {
	f.lastAuthorIDs = authorIDs
	f.lastGenreIDs = genreIDs
	cp := *b
	f.books[b.ID] = &cp
	return nil
}

func (f *fakeRepo) Update(_ context.Context, b *book.Book, authorIDs, genreIDs []uuid.UUID) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.lastAuthorIDs = authorIDs
	f.lastGenreIDs = genreIDs
	cp := *b
	f.books[b.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

func (f *fakeRepo) GetEntity(_ context.Context, id uuid.UUID) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*book.BookResponse, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return &book.BookResponse{ID: b.ID, Title: b.Title, ISBN: b.ISBN}, nil
}

func (f *fakeRepo) List(_ context.Context, _ *book.Filter) ([]book.BookResponse, int64, error) {
	return nil, 0, nil
}

func intPtr(n int) *int { return &n }

func validRequest() book.BookRequest {
	return book.BookRequest{
		Title:       "A Wizard of Earthsea",
		ISBN:        "978-0-123-45678-9",
		Pages:       intPtr(205),
		PublisherID: uuid.New(),
		AuthorIDs:   []uuid.UUID{uuid.New()},
	}
}

func TestCreateBook(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBookService(repo)

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "A Wizard of Earthsea", resp.Title)
	assert.Len(t, repo.lastAuthorIDs, 1)
}

func TestCreateBookInvalidRequest(t *testing.T) {
	svc := NewBookService(newFakeRepo())

	req := validRequest()
	req.ISBN = "bad"

	_, err := svc.Create(context.Background(), req)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "isbn")
}

func TestCreateBookDeduplicatesLinks(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBookService(repo)

	authorID := uuid.New()
	req := validRequest()
	req.AuthorIDs = []uuid.UUID{authorID, authorID, authorID}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{authorID}, repo.lastAuthorIDs)
}

func TestUpdateClearingAuthorsRejected(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBookService(repo)

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	repo.updateErr = book.ErrNoAuthors

	req := validRequest()
	req.AuthorIDs = nil

	_, err = svc.Update(context.Background(), created.ID, req)

	// Surfaced as a field error on authors
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "authors")
}

func TestUpdateMissingBook(t *testing.T) {
	svc := NewBookService(newFakeRepo())

	_, err := svc.Update(context.Background(), uuid.New(), validRequest())
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestUpdateReplacesFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBookService(repo)

	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	createdAt := repo.books[created.ID].CreatedAt

	time.Sleep(time.Millisecond)

	req := validRequest()
	req.Title = "The Tombs of Atuan"

	resp, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "The Tombs of Atuan", resp.Title)
	assert.Equal(t, createdAt, repo.books[created.ID].CreatedAt)
	assert.True(t, repo.books[created.ID].UpdatedAt.After(createdAt))
}
