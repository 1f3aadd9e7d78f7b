package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hackernews-graphql-api/internal/filter"
	"github.com/hackernews-graphql-api/internal/models"
	"github.com/hackernews-graphql-api/internal/repository"
	"github.com/lib/pq"
)

// Store holds the records shared by the mock link and comment repositories so the comment
// repository can enforce the foreign key the way Postgres does.
type Store struct {
	mu       sync.Mutex
	links    []*models.Link
	comments []*models.Comment
	nextID   int64
	now      func() time.Time
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var tick int64
	return &Store{
		nextID: 1,
		now: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
	}
}

// Repositories returns repositories backed by this store
func (s *Store) Repositories() (*MockLinkRepository, *MockCommentRepository) {
	return &MockLinkRepository{store: s}, &MockCommentRepository{store: s}
}

func (s *Store) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) linkByID(id int64) *models.Link {
	for _, l := range s.links {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// MockLinkRepository is a mock implementation of LinkRepository
type MockLinkRepository struct {
	store *Store

	CreateError   error
	FindError     error
	FindManyCalls []repository.FindManyArgs
	FindCalls     int
	CreateCalls   int
}

var _ repository.LinkRepository = (*MockLinkRepository)(nil)

func (m *MockLinkRepository) Create(ctx context.Context, link *models.Link) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	link.ID = m.store.id()
	link.CreatedAt = m.store.now()
	stored := *link
	m.store.links = append(m.store.links, &stored)
	return nil
}

func (m *MockLinkRepository) FindUnique(ctx context.Context, id int64) (*models.Link, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	m.FindCalls++
	if m.FindError != nil {
		return nil, m.FindError
	}
	if l := m.store.linkByID(id); l != nil {
		link := *l
		return &link, nil
	}
	return nil, nil
}

func (m *MockLinkRepository) FindUniqueOrThrow(ctx context.Context, id int64) (*models.Link, error) {
	link, err := m.FindUnique(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, fmt.Errorf("link %d: %w", id, repository.ErrNotFound)
	}
	return link, nil
}

func (m *MockLinkRepository) FindMany(ctx context.Context, args repository.FindManyArgs) ([]*models.Link, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	m.FindManyCalls = append(m.FindManyCalls, args)
	if m.FindError != nil {
		return nil, m.FindError
	}

	matched := make([]*models.Link, 0)
	for _, l := range m.store.links {
		l := l
		ok := args.Where.Matches(func(field string) (interface{}, bool) {
			switch field {
			case "id":
				return l.ID, true
			case filter.FieldDescription:
				return l.Description, true
			case filter.FieldURL:
				return l.URL, true
			}
			return nil, false
		})
		if ok {
			link := *l
			matched = append(matched, &link)
		}
	}
	return page(matched, args.Skip, args.Take), nil
}

func (m *MockLinkRepository) Count(ctx context.Context) (int, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return len(m.store.links), nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	store *Store

	CreateError   error
	FindError     error
	FindManyCalls []repository.FindManyArgs
	CreateCalls   int
}

var _ repository.CommentRepository = (*MockCommentRepository)(nil)

// Create inserts the comment, failing with a Postgres foreign_key_violation when the link
// does not exist.
func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	if m.store.linkByID(comment.LinkID) == nil {
		return fmt.Errorf("failed to create comment: %w", &pq.Error{
			Code:       "23503",
			Message:    `insert or update on table "comments" violates foreign key constraint "comments_link_id_fkey"`,
			Table:      "comments",
			Constraint: "comments_link_id_fkey",
		})
	}
	comment.ID = m.store.id()
	comment.CreatedAt = m.store.now()
	stored := *comment
	m.store.comments = append(m.store.comments, &stored)
	return nil
}

func (m *MockCommentRepository) FindUnique(ctx context.Context, id int64) (*models.Comment, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	if m.FindError != nil {
		return nil, m.FindError
	}
	for _, c := range m.store.comments {
		if c.ID == id {
			comment := *c
			return &comment, nil
		}
	}
	return nil, nil
}

func (m *MockCommentRepository) FindUniqueOrThrow(ctx context.Context, id int64) (*models.Comment, error) {
	comment, err := m.FindUnique(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, fmt.Errorf("comment %d: %w", id, repository.ErrNotFound)
	}
	return comment, nil
}

func (m *MockCommentRepository) FindMany(ctx context.Context, args repository.FindManyArgs) ([]*models.Comment, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	m.FindManyCalls = append(m.FindManyCalls, args)
	if m.FindError != nil {
		return nil, m.FindError
	}

	matched := make([]*models.Comment, 0)
	for _, c := range m.store.comments {
		c := c
		ok := args.Where.Matches(func(field string) (interface{}, bool) {
			switch field {
			case "id":
				return c.ID, true
			case "body":
				return c.Body, true
			case filter.FieldLinkID:
				return c.LinkID, true
			}
			return nil, false
		})
		if ok {
			comment := *c
			matched = append(matched, &comment)
		}
	}

	if len(args.OrderBy) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			for _, o := range args.OrderBy {
				less, equal := compareComments(matched[i], matched[j], o.Field)
				if equal {
					continue
				}
				if o.Desc {
					return !less
				}
				return less
			}
			return false
		})
	}
	return page(matched, args.Skip, args.Take), nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return len(m.store.comments), nil
}

// DeleteLink removes a link while leaving its comments behind, to simulate corrupted data
func (s *Store) DeleteLink(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.links {
		if l.ID == id {
			s.links = append(s.links[:i], s.links[i+1:]...)
			return
		}
	}
}

func compareComments(a, b *models.Comment, field string) (less, equal bool) {
	switch field {
	case "createdAt":
		return a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
	default:
		return a.ID < b.ID, a.ID == b.ID
	}
}

func page[T any](items []T, skip, take int) []T {
	if skip >= len(items) {
		return items[:0]
	}
	items = items[skip:]
	if take > 0 && take < len(items) {
		items = items[:take]
	}
	return items
}
