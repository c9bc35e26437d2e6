package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"booktracker-backend/internal/domains/review"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) review.Repository {
	return &postgresRepository{pool: pool}
}

const readShapeSelect = `
	SELECT r.id, u.username, b.title, r.review_text, r.created_at, r.updated_at
	FROM reviews r
	JOIN users u ON r.user_id = u.id
	JOIN books b ON r.book_id = b.id
`

func (p *postgresRepository) Create(ctx context.Context, r *review.Review) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO reviews (id, user_id, book_id, review_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.ID, r.UserID, r.BookID, r.ReviewText, r.CreatedAt, r.UpdatedAt)
	return mapWriteError(err)
}

func (p *postgresRepository) Update(ctx context.Context, r *review.Review) error {
	tag, err := p.pool.Exec(ctx, `
		UPDATE reviews SET review_text = $1, updated_at = $2 WHERE id = $3
	`, r.ReviewText, r.UpdatedAt, r.ID)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

func (p *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Replies cascade through the comments parent FK
	tag, err := p.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

func (p *postgresRepository) GetEntity(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	var r review.Review
	err := p.pool.QueryRow(ctx, `
		SELECT id, user_id, book_id, review_text, created_at, updated_at
		FROM reviews WHERE id = $1
	`, id).Scan(&r.ID, &r.UserID, &r.BookID, &r.ReviewText, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, review.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &r, nil
}

func (p *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*review.ReviewResponse, error) {
	var resp review.ReviewResponse
	err := p.pool.QueryRow(ctx, readShapeSelect+` WHERE r.id = $1`, id).Scan(
		&resp.ID, &resp.User, &resp.Book, &resp.ReviewText, &resp.CreatedAt, &resp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, review.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &resp, nil
}

func (p *postgresRepository) List(ctx context.Context, f *review.Filter) ([]review.ReviewResponse, int64, error) {
	cond := f.BuildWhere()
	where := cond.Where()

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		JOIN books b ON r.book_id = b.id
		WHERE %s
	`, where)

	var count int64
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
		return nil, 0, fmt.Errorf("list reviews query failed: %w", err)
	}
	defer rows.Close()

	reviews := make([]review.ReviewResponse, 0, f.Pagination.Limit())
	for rows.Next() {
		var resp review.ReviewResponse
		if err := rows.Scan(&resp.ID, &resp.User, &resp.Book, &resp.ReviewText, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return reviews, count, nil
}

func mapWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return review.ErrDuplicateReview
		case "23503":
			if pgErr.ConstraintName == "reviews_book_id_fkey" {
				return review.ErrBookNotFound
			}
		}
	}
	return fmt.Errorf("review write failed: %w", err)
}
