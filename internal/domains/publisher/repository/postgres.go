package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"booktracker-backend/internal/domains/publisher"
	"booktracker-backend/internal/shared/query"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) publisher.Repository {
	return &postgresRepository{pool: pool}
}

const publisherColumns = `id, name, country, foundation_year, logo_url, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, p *publisher.Publisher) error {
	q := `
		INSERT INTO publishers (id, name, country, foundation_year, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, q,
		p.ID, p.Name, p.Country, p.FoundationYear, p.LogoURL, p.CreatedAt, p.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return publisher.ErrNameTaken
	}
	if err != nil {
		return fmt.Errorf("failed to create publisher: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*publisher.Publisher, error) {
	q := fmt.Sprintf(`SELECT %s FROM publishers WHERE id = $1`, publisherColumns)

	var p publisher.Publisher
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Name, &p.Country, &p.FoundationYear, &p.LogoURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, publisher.ErrPublisherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get publisher: %w", err)
	}
	return &p, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *publisher.Publisher) error {
	q := `
		UPDATE publishers
		SET name = $1, country = $2, foundation_year = $3, logo_url = $4, updated_at = $5
		WHERE id = $6
	`
	tag, err := r.pool.Exec(ctx, q,
		p.Name, p.Country, p.FoundationYear, p.LogoURL, p.UpdatedAt, p.ID,
	)
	if isUniqueViolation(err) {
		return publisher.ErrNameTaken
	}
	if err != nil {
		return fmt.Errorf("failed to update publisher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return publisher.ErrPublisherNotFound
	}
	return nil
}

// Delete relies on the RESTRICT foreign key from books: the
// violation surfaces as a conflict rather than cascading.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM publishers WHERE id = $1`, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return publisher.ErrPublisherInUse
	}
	if err != nil {
		return fmt.Errorf("failed to delete publisher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return publisher.ErrPublisherNotFound
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, p query.Pagination) ([]publisher.Publisher, int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM publishers`).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count query failed: %w", err)
	}

	q := fmt.Sprintf(`
		SELECT %s FROM publishers
		ORDER BY name ASC, id
		LIMIT $1 OFFSET $2
	`, publisherColumns)

	rows, err := r.pool.Query(ctx, q, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list publishers query failed: %w", err)
	}
	defer rows.Close()

	publishers := make([]publisher.Publisher, 0, p.Limit())
	for rows.Next() {
		var pub publisher.Publisher
		if err := rows.Scan(
			&pub.ID, &pub.Name, &pub.Country, &pub.FoundationYear, &pub.LogoURL, &pub.CreatedAt, &pub.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan publisher failed: %w", err)
		}
		publishers = append(publishers, pub)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return publishers, count, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
