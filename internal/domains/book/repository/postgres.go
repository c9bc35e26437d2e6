package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"booktracker-backend/internal/domains/book"
	"booktracker-backend/internal/shared/validate"
	"booktracker-backend/pkg/cache"
	"booktracker-backend/pkg/database"
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	detailCacheTTL = 5 * time.Minute
)

func detailCacheKey(id uuid.UUID) string {
	return "book:detail:" + id.String()
}

// readShapeSelect aggregates author and genre names so the read
// shape can render labels instead of identifiers.
const readShapeSelect = `
	SELECT
		b.id, b.title, b.isbn, b.synopsis, b.publication_date, b.pages, b.cover_image_url,
		p.name AS publisher,
		COALESCE(array_agg(DISTINCT a.name) FILTER (WHERE a.id IS NOT NULL), '{}') AS authors,
		COALESCE(array_agg(DISTINCT g.name) FILTER (WHERE g.id IS NOT NULL), '{}') AS genres,
		b.created_at, b.updated_at
	FROM books b
	JOIN publishers p ON b.publisher_id = p.id
	LEFT JOIN book_authors ba ON ba.book_id = b.id
	LEFT JOIN authors a ON a.id = ba.author_id
	LEFT JOIN book_genres bg ON bg.book_id = b.id
	LEFT JOIN genres g ON g.id = bg.genre_id
`

func (r *postgresRepository) Create(ctx context.Context, b *book.Book, authorIDs, genreIDs []uuid.UUID) error {
	// Normalized ISBN is what the unique index guards
	b.ISBN = validate.NormalizeISBN(b.ISBN)

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO books (id, title, isbn, synopsis, publication_date, pages, cover_image_url, publisher_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, b.ID, b.Title, b.ISBN, b.Synopsis, b.PublicationDate, b.Pages, b.CoverImageURL, b.PublisherID, b.CreatedAt, b.UpdatedAt)
		if err != nil {
			return mapWriteError(err)
		}

		if err := insertLinks(ctx, tx, "book_authors", "author_id", b.ID, authorIDs); err != nil {
			return err
		}
		return insertLinks(ctx, tx, "book_genres", "genre_id", b.ID, genreIDs)
	})
	return err
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book, authorIDs, genreIDs []uuid.UUID) error {
	b.ISBN = validate.NormalizeISBN(b.ISBN)

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE books
			SET title = $1, isbn = $2, synopsis = $3, publication_date = $4, pages = $5,
			    cover_image_url = $6, publisher_id = $7, updated_at = $8
			WHERE id = $9
		`, b.Title, b.ISBN, b.Synopsis, b.PublicationDate, b.Pages, b.CoverImageURL, b.PublisherID, b.UpdatedAt, b.ID)
		if err != nil {
			return mapWriteError(err)
		}
		if tag.RowsAffected() == 0 {
			return book.ErrBookNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM book_authors WHERE book_id = $1`, b.ID); err != nil {
			return fmt.Errorf("failed to clear authors: %w", err)
		}
		if err := insertLinks(ctx, tx, "book_authors", "author_id", b.ID, authorIDs); err != nil {
			return err
		}

		// Post-mutation invariant: the author set may never end up
		// empty once the book exists. Checked inside the transaction
		// so a violation rolls back every link change.
		var authorCount int
		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM book_authors WHERE book_id = $1`, b.ID,
		).Scan(&authorCount); err != nil {
			return fmt.Errorf("failed to count authors: %w", err)
		}
		if authorCount == 0 {
			return book.ErrNoAuthors
		}

		if _, err := tx.Exec(ctx, `DELETE FROM book_genres WHERE book_id = $1`, b.ID); err != nil {
			return fmt.Errorf("failed to clear genres: %w", err)
		}
		return insertLinks(ctx, tx, "book_genres", "genre_id", b.ID, genreIDs)
	})
	if err != nil {
		return err
	}

	r.invalidate(ctx, b.ID)
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Reading state, reviews, shelf entries and comments cascade
	// through foreign keys.
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) GetEntity(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	var b book.Book
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, isbn, synopsis, publication_date, pages, cover_image_url, publisher_id, created_at, updated_at
		FROM books WHERE id = $1
	`, id).Scan(
		&b.ID, &b.Title, &b.ISBN, &b.Synopsis, &b.PublicationDate, &b.Pages,
		&b.CoverImageURL, &b.PublisherID, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &b, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.BookResponse, error) {
	var cached book.BookResponse
	if found, err := r.cache.Get(ctx, detailCacheKey(id), &cached); err == nil && found {
		return &cached, nil
	}

	q := readShapeSelect + `
		WHERE b.id = $1
		GROUP BY b.id, p.name
	`

	resp, err := scanReadShape(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, detailCacheKey(id), resp, detailCacheTTL); err != nil {
		log.Warn().Err(err).Msg("book detail cache write failed")
	}
	return resp, nil
}

func (r *postgresRepository) List(ctx context.Context, f *book.Filter) ([]book.BookResponse, int64, error) {
	cond := f.BuildWhere()
	where := cond.Where()

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM books b
		JOIN publishers p ON b.publisher_id = p.id
		WHERE %s
	`, where)

	var count int64
	if err := r.pool.QueryRow(ctx, countQuery, cond.Args()...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	listQuery := fmt.Sprintf(`%s
		WHERE %s
		GROUP BY b.id, p.name
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, readShapeSelect, where, f.OrderBy, cond.NextIndex(), cond.NextIndex()+1)

	args := append(cond.Args(), f.Pagination.Limit(), f.Pagination.Offset())

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list books query failed: %w", err)
	}
	defer rows.Close()

	books := make([]book.BookResponse, 0, f.Pagination.Limit())
	for rows.Next() {
		resp, err := scanReadShape(rows)
		if err != nil {
			return nil, 0, err
		}
		books = append(books, *resp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return books, count, nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, detailCacheKey(id)); err != nil {
		log.Warn().Err(err).Msg("book cache invalidation failed")
	}
}

func scanReadShape(row pgx.Row) (*book.BookResponse, error) {
	var resp book.BookResponse
	err := row.Scan(
		&resp.ID, &resp.Title, &resp.ISBN, &resp.Synopsis, &resp.PublicationDate, &resp.Pages,
		&resp.CoverImageURL, &resp.Publisher,
		pq.Array(&resp.Authors), pq.Array(&resp.Genres),
		&resp.CreatedAt, &resp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan book: %w", err)
	}
	return &resp, nil
}

func insertLinks(ctx context.Context, tx pgx.Tx, table, column string, bookID uuid.UUID, ids []uuid.UUID) error {
	for _, id := range ids {
		_, err := tx.Exec(ctx, fmt.Sprintf(
			`INSERT INTO %s (book_id, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`, table, column,
		), bookID, id)
		if err != nil {
			return mapWriteError(err)
		}
	}
	return nil
}

// mapWriteError translates constraint violations into domain
// errors so callers see conflicts and bad references, not SQLSTATEs.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("book write failed: %w", err)
	}

	switch pgErr.Code {
	case "23505":
		return book.ErrISBNTaken
	case "23503":
		switch pgErr.ConstraintName {
		case "books_publisher_id_fkey":
			return book.ErrPublisherNotFound
		case "book_authors_author_id_fkey":
			return book.ErrAuthorNotFound
		case "book_genres_genre_id_fkey":
			return book.ErrGenreNotFound
		}
	}
	return fmt.Errorf("book write failed: %w", err)
}
