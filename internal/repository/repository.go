package repository

import (
	"context"
	"errors"

	"github.com/hackernews-graphql-api/internal/database"
	"github.com/hackernews-graphql-api/internal/filter"
	"github.com/hackernews-graphql-api/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned by the FindUniqueOrThrow operations when no record has the key
var ErrNotFound = errors.New("record not found")

// OrderBy sorts a findMany result by one field
type OrderBy struct {
	Field string
	Desc  bool
}

// FindManyArgs mirrors the findMany parameters of the persistence client.
// Take <= 0 means no limit; a nil OrderBy leaves the storage order untouched.
type FindManyArgs struct {
	Where   filter.Predicate
	Skip    int
	Take    int
	OrderBy []OrderBy
}

// LinkRepository defines the interface for link data operations
type LinkRepository interface {
	Create(ctx context.Context, link *models.Link) error
	FindUnique(ctx context.Context, id int64) (*models.Link, error)
	FindUniqueOrThrow(ctx context.Context, id int64) (*models.Link, error)
	FindMany(ctx context.Context, args FindManyArgs) ([]*models.Link, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindUnique(ctx context.Context, id int64) (*models.Comment, error)
	FindUniqueOrThrow(ctx context.Context, id int64) (*models.Comment, error)
	FindMany(ctx context.Context, args FindManyArgs) ([]*models.Comment, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Link    LinkRepository
	Comment CommentRepository
}

// New creates the Postgres-backed repositories
func New(db *database.DB) *Repositories {
	return &Repositories{
		Link:    NewLinkRepo(db),
		Comment: NewCommentRepo(db),
	}
}

// NewGorm creates the GORM-backed repositories used with SQLite
func NewGorm(db *gorm.DB) *Repositories {
	return &Repositories{
		Link:    NewGormLinkRepo(db),
		Comment: NewGormCommentRepo(db),
	}
}

// Field to column mappings; anything not listed is rejected when rendering filters or ordering
var (
	linkColumns = map[string]string{
		"id":                    "id",
		filter.FieldDescription: "description",
		filter.FieldURL:         "url",
		"createdAt":             "created_at",
	}
	commentColumns = map[string]string{
		"id":               "id",
		"body":             "body",
		filter.FieldLinkID: "link_id",
		"createdAt":        "created_at",
	}
)
