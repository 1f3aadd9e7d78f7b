package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hackernews-graphql-api/internal/database"
	"github.com/hackernews-graphql-api/internal/models"
)

const linkSelect = `SELECT id, description, url, created_at FROM links`

// linkRepo is the concrete implementation of LinkRepository
type linkRepo struct {
	db *database.DB
}

// NewLinkRepo creates a new link repository
func NewLinkRepo(db *database.DB) LinkRepository {
	return &linkRepo{db: db}
}

// Create inserts a new link and fills in the storage-assigned fields
func (r *linkRepo) Create(ctx context.Context, link *models.Link) error {
	query := `
		INSERT INTO links (description, url)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, link.Description, link.URL).Scan(&link.ID, &link.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

// FindUnique retrieves a link by ID, returning nil when it does not exist
func (r *linkRepo) FindUnique(ctx context.Context, id int64) (*models.Link, error) {
	var link models.Link
	err := r.db.QueryRowContext(ctx, linkSelect+` WHERE id = $1`, id).Scan(
		&link.ID, &link.Description, &link.URL, &link.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get link %d: %w", id, err)
	}
	return &link, nil
}

// FindUniqueOrThrow retrieves a link by ID, returning ErrNotFound when it does not exist
func (r *linkRepo) FindUniqueOrThrow(ctx context.Context, id int64) (*models.Link, error) {
	link, err := r.FindUnique(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, fmt.Errorf("link %d: %w", id, ErrNotFound)
	}
	return link, nil
}

// FindMany lists links matching args
func (r *linkRepo) FindMany(ctx context.Context, args FindManyArgs) ([]*models.Link, error) {
	query, params, err := buildSelect(linkSelect, args, linkColumns)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	links := make([]*models.Link, 0)
	for rows.Next() {
		var link models.Link
		if err := rows.Scan(&link.ID, &link.Description, &link.URL, &link.CreatedAt); err != nil {
			return nil, err
		}
		links = append(links, &link)
	}

	return links, rows.Err()
}

// Count returns the total number of links
func (r *linkRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM links").Scan(&count)
	return count, err
}
