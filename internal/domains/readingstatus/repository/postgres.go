package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"booktracker-backend/internal/domains/readingstatus"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) readingstatus.Repository {
	return &postgresRepository{pool: pool}
}

const readShapeSelect = `
	SELECT rs.id, b.title, rs.status, rs.rating, rs.started_at, rs.finished_at, rs.created_at, rs.updated_at
	FROM reading_statuses rs
	JOIN books b ON rs.book_id = b.id
`

func (p *postgresRepository) Create(ctx context.Context, rs *readingstatus.ReadingStatus) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO reading_statuses (id, user_id, book_id, status, rating, started_at, finished_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, rs.ID, rs.UserID, rs.BookID, rs.Status, rs.Rating, rs.StartedAt, rs.FinishedAt, rs.CreatedAt, rs.UpdatedAt)
	return mapWriteError(err)
}

func (p *postgresRepository) Update(ctx context.Context, rs *readingstatus.ReadingStatus) error {
	tag, err := p.pool.Exec(ctx, `
		UPDATE reading_statuses
		SET book_id = $1, status = $2, rating = $3, started_at = $4, finished_at = $5, updated_at = $6
		WHERE id = $7
	`, rs.BookID, rs.Status, rs.Rating, rs.StartedAt, rs.FinishedAt, rs.UpdatedAt, rs.ID)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return readingstatus.ErrStatusNotFound
	}
	return nil
}

func (p *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM reading_statuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reading status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return readingstatus.ErrStatusNotFound
	}
	return nil
}

func (p *postgresRepository) GetEntity(ctx context.Context, id uuid.UUID) (*readingstatus.ReadingStatus, error) {
	var rs readingstatus.ReadingStatus
	err := p.pool.QueryRow(ctx, `
		SELECT id, user_id, book_id, status, rating, started_at, finished_at, created_at, updated_at
		FROM reading_statuses WHERE id = $1
	`, id).Scan(
		&rs.ID, &rs.UserID, &rs.BookID, &rs.Status, &rs.Rating,
		&rs.StartedAt, &rs.FinishedAt, &rs.CreatedAt, &rs.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, readingstatus.ErrStatusNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reading status: %w", err)
	}
	return &rs, nil
}

func (p *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*readingstatus.ReadingStatusResponse, error) {
	var resp readingstatus.ReadingStatusResponse
	err := p.pool.QueryRow(ctx, readShapeSelect+` WHERE rs.id = $1`, id).Scan(
		&resp.ID, &resp.Book, &resp.Status, &resp.Rating,
		&resp.StartedAt, &resp.FinishedAt, &resp.CreatedAt, &resp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, readingstatus.ErrStatusNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reading status: %w", err)
	}
	return &resp, nil
}

func (p *postgresRepository) List(ctx context.Context, f *readingstatus.Filter) ([]readingstatus.ReadingStatusResponse, int64, error) {
	cond := f.BuildWhere()
	where := cond.Where()

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM reading_statuses rs
		JOIN books b ON rs.book_id = b.id
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
		return nil, 0, fmt.Errorf("list reading statuses query failed: %w", err)
	}
	defer rows.Close()

	statuses := make([]readingstatus.ReadingStatusResponse, 0, f.Pagination.Limit())
	for rows.Next() {
		var resp readingstatus.ReadingStatusResponse
		if err := rows.Scan(
			&resp.ID, &resp.Book, &resp.Status, &resp.Rating,
			&resp.StartedAt, &resp.FinishedAt, &resp.CreatedAt, &resp.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan reading status: %w", err)
		}
		statuses = append(statuses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return statuses, count, nil
}

func mapWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return readingstatus.ErrDuplicateStatus
		case "23503":
			if pgErr.ConstraintName == "reading_statuses_book_id_fkey" {
				return readingstatus.ErrBookNotFound
			}
		}
	}
	return fmt.Errorf("reading status write failed: %w", err)
}
