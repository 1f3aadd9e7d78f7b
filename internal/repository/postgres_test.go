package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/hackernews-graphql-api/internal/apperrors"
	"github.com/hackernews-graphql-api/internal/config"
	"github.com/hackernews-graphql-api/internal/database"
	"github.com/hackernews-graphql-api/internal/filter"
	"github.com/hackernews-graphql-api/internal/models"
	"github.com/hackernews-graphql-api/internal/repository"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPostgres connects to the database named by the DB_* variables and resets its schema.
// The tests are skipped when DB_HOST is not set.
func newPostgres(t *testing.T) *database.DB {
	t.Helper()
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set, skipping Postgres tests")
	}

	cfg, err := config.LoadFrom(viper.New(), t.TempDir())
	require.NoError(t, err)
	cfg.Database.Driver = config.DriverPostgres

	db, err := database.New(&cfg.Database, zerolog.Nop())
	require.NoError(t, err)

	// Rolling back twice also covers a database with nothing applied
	require.NoError(t, db.MigrateDown())
	require.NoError(t, db.MigrateDown())
	require.NoError(t, db.RunMigrations())

	t.Cleanup(func() {
		db.MigrateDown()
		db.Close()
	})
	return db
}

func TestPostgres_LinkRepository(t *testing.T) {
	db := newPostgres(t)
	repos := repository.New(db)
	ctx := context.Background()

	link := &models.Link{Description: "GraphQL", URL: "https://graphql.org"}
	require.NoError(t, repos.Link.Create(ctx, link))
	assert.NotZero(t, link.ID)
	assert.False(t, link.CreatedAt.IsZero())
	require.NoError(t, repos.Link.Create(ctx, &models.Link{Description: "Go", URL: "https://go.dev"}))

	found, err := repos.Link.FindUnique(ctx, link.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "GraphQL", found.Description)
	assert.Equal(t, "https://graphql.org", found.URL)

	missing, err := repos.Link.FindUnique(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repos.Link.FindUniqueOrThrow(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	needle := "Graph"
	links, err := repos.Link.FindMany(ctx, repository.FindManyArgs{Where: filter.Compile(&needle), Take: 10})
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, link.ID, links[0].ID)

	links, err = repos.Link.FindMany(ctx, repository.FindManyArgs{
		Skip:    1,
		Take:    1,
		OrderBy: []repository.OrderBy{{Field: "id"}},
	})
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "Go", links[0].Description)

	count, err := repos.Link.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPostgres_CommentRepository(t *testing.T) {
	db := newPostgres(t)
	repos := repository.New(db)
	ctx := context.Background()

	link := &models.Link{Description: "GraphQL", URL: "https://graphql.org"}
	require.NoError(t, repos.Link.Create(ctx, link))

	for _, body := range []string{"first", "second"} {
		require.NoError(t, repos.Comment.Create(ctx, &models.Comment{Body: body, LinkID: link.ID}))
		time.Sleep(10 * time.Millisecond)
	}

	comments, err := repos.Comment.FindMany(ctx, repository.FindManyArgs{
		Where: filter.Equals(filter.FieldLinkID, link.ID),
		OrderBy: []repository.OrderBy{
			{Field: "createdAt", Desc: true},
			{Field: "id", Desc: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Body)
	assert.Equal(t, link.ID, comments[0].LinkID)

	found, err := repos.Comment.FindUnique(ctx, comments[1].ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "first", found.Body)
}

func TestPostgres_CommentOnMissingLink(t *testing.T) {
	db := newPostgres(t)
	repos := repository.New(db)

	err := repos.Comment.Create(context.Background(), &models.Comment{Body: "orphan", LinkID: 999})
	require.Error(t, err)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("23503"), pqErr.Code)
	assert.True(t, apperrors.IsForeignKeyViolation(err))

	var refErr *apperrors.InvalidReferenceError
	require.ErrorAs(t, apperrors.TranslateReference(err, "999"), &refErr)
	assert.Equal(t, "cannot post comment on non-existing link with id '999'", refErr.Error())
}

func TestPostgres_MigrateDownDropsSchema(t *testing.T) {
	db := newPostgres(t)
	require.NoError(t, db.MigrateDown())

	var table *string
	require.NoError(t, db.QueryRow(`SELECT to_regclass('public.links')::text`).Scan(&table))
	assert.Nil(t, table)

	require.NoError(t, db.RunMigrations())
}
