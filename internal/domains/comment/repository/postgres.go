package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"booktracker-backend/internal/domains/comment"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

const readShapeSelect = `
	SELECT c.id, c.review_id, u.username, c.parent_id, c.comment_text, c.created_at, c.updated_at
	FROM comments c
	JOIN users u ON c.user_id = u.id
`

func (p *postgresRepository) Create(ctx context.Context, c *comment.Comment) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO comments (id, review_id, user_id, parent_id, comment_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, c.ID, c.ReviewID, c.UserID, c.ParentID, c.CommentText, c.CreatedAt, c.UpdatedAt)
	return mapWriteError(err)
}

func (p *postgresRepository) Update(ctx context.Context, c *comment.Comment) error {
	tag, err := p.pool.Exec(ctx, `
		UPDATE comments SET comment_text = $1, parent_id = $2, updated_at = $3 WHERE id = $4
	`, c.CommentText, c.ParentID, c.UpdatedAt, c.ID)
	if err != nil {
		return mapWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func (p *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Replies cascade through the parent FK
	tag, err := p.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func (p *postgresRepository) GetEntity(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	var c comment.Comment
	err := p.pool.QueryRow(ctx, `
		SELECT id, review_id, user_id, parent_id, comment_text, created_at, updated_at
		FROM comments WHERE id = $1
	`, id).Scan(&c.ID, &c.ReviewID, &c.UserID, &c.ParentID, &c.CommentText, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, comment.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &c, nil
}

func (p *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*comment.CommentResponse, error) {
	var resp comment.CommentResponse
	err := p.pool.QueryRow(ctx, readShapeSelect+` WHERE c.id = $1`, id).Scan(
		&resp.ID, &resp.Review, &resp.User, &resp.ParentComment, &resp.CommentText, &resp.CreatedAt, &resp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, comment.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &resp, nil
}

func (p *postgresRepository) List(ctx context.Context, f *comment.Filter) ([]comment.CommentResponse, int64, error) {
	cond := f.BuildWhere()
	where := cond.Where()

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM comments c
		JOIN users u ON c.user_id = u.id
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
		return nil, 0, fmt.Errorf("list comments query failed: %w", err)
	}
	defer rows.Close()

	comments := make([]comment.CommentResponse, 0, f.Pagination.Limit())
	for rows.Next() {
		var resp comment.CommentResponse
		if err := rows.Scan(&resp.ID, &resp.Review, &resp.User, &resp.ParentComment, &resp.CommentText, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return comments, count, nil
}

func mapWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		switch pgErr.ConstraintName {
		case "comments_review_id_fkey":
			return comment.ErrReviewNotFound
		case "comments_parent_id_fkey":
			return comment.ErrParentNotFound
		}
	}
	return fmt.Errorf("comment write failed: %w", err)
}
