package repository

import (
	"testing"

	"github.com/hackernews-graphql-api/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelect(t *testing.T) {
	needle := "graph"
	query, params, err := buildSelect("SELECT id FROM links", FindManyArgs{
		Where:   filter.Compile(&needle),
		Skip:    10,
		Take:    5,
		OrderBy: []OrderBy{{Field: "createdAt", Desc: true}, {Field: "id"}},
	}, linkColumns)
	require.NoError(t, err)

	assert.Equal(t, `SELECT id FROM links WHERE (description LIKE $1 ESCAPE '\' OR url LIKE $2 ESCAPE '\') ORDER BY created_at DESC, id ASC LIMIT $3 OFFSET $4`, query)
	assert.Equal(t, []interface{}{"%graph%", "%graph%", 5, 10}, params)
}

func TestBuildSelect_Universal(t *testing.T) {
	query, params, err := buildSelect("SELECT id FROM links", FindManyArgs{Where: filter.Universal()}, linkColumns)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM links", query)
	assert.Empty(t, params)
}

func TestBuildSelect_UnknownOrderField(t *testing.T) {
	_, _, err := buildSelect("SELECT id FROM comments", FindManyArgs{OrderBy: []OrderBy{{Field: "url"}}}, commentColumns)
	assert.Error(t, err)
}
