package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hackernews-graphql-api/internal/filter"
	"github.com/hackernews-graphql-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	_ LinkRepository    = (*GormLinkRepository)(nil)
	_ CommentRepository = (*GormCommentRepository)(nil)
)

// GormLinkRepository implements LinkRepository on top of GORM
type GormLinkRepository struct {
	db *gorm.DB
}

// NewGormLinkRepo creates a GORM link repository
func NewGormLinkRepo(db *gorm.DB) *GormLinkRepository {
	return &GormLinkRepository{db: db}
}

// Create inserts a new link
func (r *GormLinkRepository) Create(ctx context.Context, link *models.Link) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

// FindUnique retrieves a link by ID, returning nil when it does not exist
func (r *GormLinkRepository) FindUnique(ctx context.Context, id int64) (*models.Link, error) {
	var link models.Link
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get link %d: %w", id, err)
	}
	return &link, nil
}

// FindUniqueOrThrow retrieves a link by ID, returning ErrNotFound when it does not exist
func (r *GormLinkRepository) FindUniqueOrThrow(ctx context.Context, id int64) (*models.Link, error) {
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
func (r *GormLinkRepository) FindMany(ctx context.Context, args FindManyArgs) ([]*models.Link, error) {
	q, err := applyFindMany(r.db.WithContext(ctx).Model(&models.Link{}), args, linkColumns)
	if err != nil {
		return nil, err
	}

	links := make([]*models.Link, 0)
	if err := q.Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

// Count returns the total number of links
func (r *GormLinkRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Link{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count links: %w", err)
	}
	return int(count), nil
}

// GormCommentRepository implements CommentRepository on top of GORM
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepo creates a GORM comment repository
func NewGormCommentRepo(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Create inserts a new comment. With error translation enabled a missing link comes back
// as gorm.ErrForeignKeyViolated.
func (r *GormCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// FindUnique retrieves a comment by ID, returning nil when it does not exist
func (r *GormCommentRepository) FindUnique(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment %d: %w", id, err)
	}
	return &comment, nil
}

// FindUniqueOrThrow retrieves a comment by ID, returning ErrNotFound when it does not exist
func (r *GormCommentRepository) FindUniqueOrThrow(ctx context.Context, id int64) (*models.Comment, error) {
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
func (r *GormCommentRepository) FindMany(ctx context.Context, args FindManyArgs) ([]*models.Comment, error) {
	q, err := applyFindMany(r.db.WithContext(ctx).Model(&models.Comment{}), args, commentColumns)
	if err != nil {
		return nil, err
	}

	comments := make([]*models.Comment, 0)
	if err := q.Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// Count returns the total number of comments
func (r *GormCommentRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return int(count), nil
}

func applyFindMany(q *gorm.DB, args FindManyArgs, columns map[string]string) (*gorm.DB, error) {
	where, params, err := args.Where.SQL(columns, filter.QuestionPlaceholder, 0)
	if err != nil {
		return nil, err
	}
	if where != "" {
		q = q.Where(where, params...)
	}

	for _, o := range args.OrderBy {
		col, ok := columns[o.Field]
		if !ok {
			return nil, fmt.Errorf("unknown order field %q", o.Field)
		}
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: o.Desc})
	}

	if args.Skip > 0 {
		q = q.Offset(args.Skip)
	}
	if args.Take > 0 {
		q = q.Limit(args.Take)
	}
	return q, nil
}
