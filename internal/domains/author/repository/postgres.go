package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"booktracker-backend/internal/domains/author"
	"booktracker-backend/internal/shared/query"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

const authorColumns = `id, name, birth_date, death_date, biography, picture_url, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) error {
	query := `
		INSERT INTO authors (id, name, birth_date, death_date, biography, picture_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Name, a.BirthDate, a.DeathDate, a.Biography, a.PictureURL, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	q := fmt.Sprintf(`SELECT %s FROM authors WHERE id = $1`, authorColumns)

	var a author.Author
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.BirthDate, &a.DeathDate, &a.Biography, &a.PictureURL, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, author.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) error {
	q := `
		UPDATE authors
		SET name = $1, birth_date = $2, death_date = $3, biography = $4, picture_url = $5, updated_at = $6
		WHERE id = $7
	`
	tag, err := r.pool.Exec(ctx, q,
		a.Name, a.BirthDate, a.DeathDate, a.Biography, a.PictureURL, a.UpdatedAt, a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, p query.Pagination) ([]author.Author, int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	q := fmt.Sprintf(`
		SELECT %s FROM authors
		ORDER BY name ASC, id
		LIMIT $1 OFFSET $2
	`, authorColumns)

	rows, err := r.pool.Query(ctx, q, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list authors query failed: %w", err)
	}
	defer rows.Close()

	authors := make([]author.Author, 0, p.Limit())
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(
			&a.ID, &a.Name, &a.BirthDate, &a.DeathDate, &a.Biography, &a.PictureURL, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan author failed: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return authors, count, nil
}
