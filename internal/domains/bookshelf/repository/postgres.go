package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"booktracker-backend/internal/domains/book"
	"booktracker-backend/internal/domains/bookshelf"
	"booktracker-backend/internal/shared/query"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) bookshelf.Repository {
	return &postgresRepository{pool: pool}
}

const readShapeSelect = `
	SELECT s.id, s.name, s.description,
		(SELECT COUNT(*) FROM bookshelf_entries e WHERE e.bookshelf_id = s.id) AS book_count,
		s.created_at, s.updated_at
	FROM bookshelves s
`

func (p *postgresRepository) Create(ctx context.Context, s *bookshelf.Bookshelf) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO bookshelves (id, user_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, s.ID, s.UserID, s.Name, s.Description, s.CreatedAt, s.UpdatedAt)
	return mapShelfError(err)
}

func (p *postgresRepository) Update(ctx context.Context, s *bookshelf.Bookshelf) error {
	tag, err := p.pool.Exec(ctx, `
		UPDATE bookshelves SET name = $1, description = $2, updated_at = $3 WHERE id = $4
	`, s.Name, s.Description, s.UpdatedAt, s.ID)
	if err != nil {
		return mapShelfError(err)
	}
	if tag.RowsAffected() == 0 {
		return bookshelf.ErrShelfNotFound
	}
	return nil
}

func (p *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Entries cascade
	tag, err := p.pool.Exec(ctx, `DELETE FROM bookshelves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bookshelf: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bookshelf.ErrShelfNotFound
	}
	return nil
}

func (p *postgresRepository) GetEntity(ctx context.Context, id uuid.UUID) (*bookshelf.Bookshelf, error) {
	var s bookshelf.Bookshelf
	err := p.pool.QueryRow(ctx, `
		SELECT id, user_id, name, description, created_at, updated_at
		FROM bookshelves WHERE id = $1
	`, id).Scan(&s.ID, &s.UserID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, bookshelf.ErrShelfNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bookshelf: %w", err)
	}
	return &s, nil
}

func (p *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*bookshelf.BookshelfResponse, error) {
	var resp bookshelf.BookshelfResponse
	err := p.pool.QueryRow(ctx, readShapeSelect+` WHERE s.id = $1`, id).Scan(
		&resp.ID, &resp.Name, &resp.Description, &resp.BookCount, &resp.CreatedAt, &resp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, bookshelf.ErrShelfNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bookshelf: %w", err)
	}
	return &resp, nil
}

func (p *postgresRepository) List(ctx context.Context, f *bookshelf.Filter) ([]bookshelf.BookshelfResponse, int64, error) {
	cond := f.BuildWhere()
	where := cond.Where()

	var count int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM bookshelves s WHERE %s`, where)
	if err := p.pool.QueryRow(ctx, countQuery, cond.Args()...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	listQuery := fmt.Sprintf(`%s
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, readShapeSelect, where, f.OrderBy, cond.NextIndex(), cond.NextIndex()+1)

	args := append(cond.Args(), f.Pagination.Limit(), f.Pagination.Offset())

	rows, err := p.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookshelves query failed: %w", err)
	}
	defer rows.Close()

	shelves := make([]bookshelf.BookshelfResponse, 0, f.Pagination.Limit())
	for rows.Next() {
		var resp bookshelf.BookshelfResponse
		if err := rows.Scan(&resp.ID, &resp.Name, &resp.Description, &resp.BookCount, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan bookshelf: %w", err)
		}
		shelves = append(shelves, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return shelves, count, nil
}

func (p *postgresRepository) AddBook(ctx context.Context, e *bookshelf.Entry) error {
	// The unique (bookshelf, book) index arbitrates concurrent adds
	_, err := p.pool.Exec(ctx, `
		INSERT INTO bookshelf_entries (id, bookshelf_id, book_id, added_at)
		VALUES ($1, $2, $3, $4)
	`, e.ID, e.BookshelfID, e.BookID, e.AddedAt)
	return mapEntryError(err)
}

func (p *postgresRepository) RemoveBook(ctx context.Context, shelfID, bookID uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `
		DELETE FROM bookshelf_entries WHERE bookshelf_id = $1 AND book_id = $2
	`, shelfID, bookID)
	if err != nil {
		return fmt.Errorf("failed to remove book from shelf: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bookshelf.ErrBookNotOnShelf
	}
	return nil
}

func (p *postgresRepository) ListBooks(ctx context.Context, shelfID uuid.UUID, pg query.Pagination) ([]book.BookResponse, int64, error) {
	var count int64
	err := p.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookshelf_entries WHERE bookshelf_id = $1`, shelfID,
	).Scan(&count)
	if err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	rows, err := p.pool.Query(ctx, `
		SELECT
			b.id, b.title, b.isbn, b.synopsis, b.publication_date, b.pages, b.cover_image_url,
			p.name AS publisher,
			COALESCE(array_agg(DISTINCT a.name) FILTER (WHERE a.id IS NOT NULL), '{}') AS authors,
			COALESCE(array_agg(DISTINCT g.name) FILTER (WHERE g.id IS NOT NULL), '{}') AS genres,
			b.created_at, b.updated_at
		FROM bookshelf_entries e
		JOIN books b ON b.id = e.book_id
		JOIN publishers p ON b.publisher_id = p.id
		LEFT JOIN book_authors ba ON ba.book_id = b.id
		LEFT JOIN authors a ON a.id = ba.author_id
		LEFT JOIN book_genres bg ON bg.book_id = b.id
		LEFT JOIN genres g ON g.id = bg.genre_id
		WHERE e.bookshelf_id = $1
		GROUP BY b.id, p.name, e.added_at
		ORDER BY e.added_at DESC, b.id
		LIMIT $2 OFFSET $3
	`, shelfID, pg.Limit(), pg.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list shelf books query failed: %w", err)
	}
	defer rows.Close()

	books := make([]book.BookResponse, 0, pg.Limit())
	for rows.Next() {
		var resp book.BookResponse
		if err := rows.Scan(
			&resp.ID, &resp.Title, &resp.ISBN, &resp.Synopsis, &resp.PublicationDate, &resp.Pages,
			&resp.CoverImageURL, &resp.Publisher,
			pq.Array(&resp.Authors), pq.Array(&resp.Genres),
			&resp.CreatedAt, &resp.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan shelf book: %w", err)
		}
		books = append(books, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return books, count, nil
}

func mapShelfError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return bookshelf.ErrNameTaken
	}
	return fmt.Errorf("bookshelf write failed: %w", err)
}

func mapEntryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return bookshelf.ErrBookOnShelf
		case "23503":
			if pgErr.ConstraintName == "bookshelf_entries_book_id_fkey" {
				return bookshelf.ErrBookNotFound
			}
		}
	}
	return fmt.Errorf("bookshelf entry write failed: %w", err)
}
