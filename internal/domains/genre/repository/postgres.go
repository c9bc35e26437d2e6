package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"booktracker-backend/internal/domains/genre"
	"booktracker-backend/internal/shared/query"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) genre.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, g *genre.Genre) error {
	q := `
		INSERT INTO genres (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, q, g.ID, g.Name, g.Description, g.CreatedAt, g.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return genre.ErrNameTaken
	}
	if err != nil {
		return fmt.Errorf("failed to create genre: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	var g genre.Genre
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at FROM genres WHERE id = $1`, id,
	).Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, genre.ErrGenreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}
	return &g, nil
}

func (r *postgresRepository) Update(ctx context.Context, g *genre.Genre) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE genres SET name = $1, description = $2, updated_at = $3 WHERE id = $4`,
		g.Name, g.Description, g.UpdatedAt, g.ID,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return genre.ErrNameTaken
	}
	if err != nil {
		return fmt.Errorf("failed to update genre: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return genre.ErrGenreNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return genre.ErrGenreNotFound
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, p query.Pagination) ([]genre.Genre, int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM genres
		ORDER BY name ASC, id
		LIMIT $1 OFFSET $2
	`, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list genres query failed: %w", err)
	}
	defer rows.Close()

	genres := make([]genre.Genre, 0, p.Limit())
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan genre failed: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return genres, count, nil
}
