package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hackernews-graphql-api/internal/database"
	"github.com/hackernews-graphql-api/internal/models"
)

const commentSelect = `SELECT id, body, created_at, link_id FROM comments`

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment. A missing link surfaces as a *pq.Error with
// SQLSTATE 23503, wrapped.
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (body, link_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, comment.Body, comment.LinkID).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// FindUnique retrieves a comment by ID, returning nil when it does not exist
func (r *commentRepo) FindUnique(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.QueryRowContext(ctx, commentSelect+` WHERE id = $1`, id).Scan(
		&comment.ID, &comment.Body, &comment.CreatedAt, &comment.LinkID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment %d: %w", id, err)
	}
	return &comment, nil
}

// FindUniqueOrThrow retrieves a comment by ID, returning ErrNotFound when it does not exist
func (r *commentRepo) FindUniqueOrThrow(ctx context.Context, id int64) (*models.Comment, error) {
	comment, err := r.FindUnique(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	return comment, nil
}

// FindMany lists comments matching args
func (r *commentRepo) FindMany(ctx context.Context, args FindManyArgs) ([]*models.Comment, error) {
	query, params, err := buildSelect(commentSelect, args, commentColumns)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.Body, &comment.CreatedAt, &comment.LinkID); err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}

	return comments, rows.Err()
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}
