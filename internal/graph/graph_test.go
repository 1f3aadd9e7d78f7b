package graph_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hackernews-graphql-api/internal/config"
	"github.com/hackernews-graphql-api/internal/graph"
	"github.com/hackernews-graphql-api/internal/metrics"
	"github.com/hackernews-graphql-api/internal/mocks"
	"github.com/hackernews-graphql-api/internal/repository"
	"github.com/hackernews-graphql-api/internal/resolver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gqlError struct {
	Message    string                 `json:"message"`
	Path       []interface{}          `json:"path"`
	Extensions map[string]interface{} `json:"extensions"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

type fixture struct {
	router   *gin.Engine
	store    *mocks.Store
	links    *mocks.MockLinkRepository
	comments *mocks.MockCommentRepository
	registry *prometheus.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := mocks.NewStore()
	links, comments := store.Repositories()
	reg := prometheus.NewRegistry()
	m, err := metrics.NewResolvers(reg)
	require.NoError(t, err)

	cfg := config.GraphQLConfig{Path: "/graphql", MaxDepth: 10, MaxParallelism: 10}
	schema, err := graph.NewSchema(resolver.NewTable(), m, cfg, zerolog.Nop())
	require.NoError(t, err)

	provider := resolver.NewContextProvider(&repository.Repositories{Link: links, Comment: comments}, zerolog.Nop())
	h := graph.NewHandler(schema, provider, zerolog.Nop())

	router := gin.New()
	router.POST("/graphql", h.Serve)
	router.GET("/graphql", h.Serve)

	return &fixture{router: router, store: store, links: links, comments: comments, registry: reg}
}

func (f *fixture) post(t *testing.T, query string, variables map[string]interface{}) (int, gqlResponse) {
	t.Helper()
	body, err := json.Marshal(graph.Request{Query: query, Variables: variables})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var resp gqlResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestSchema_ParsesSDL(t *testing.T) {
	assert.Contains(t, graph.SDL(), "postCommentOnLink(linkId: ID!, body: String!): Comment!")
}

func TestServe_Info(t *testing.T) {
	f := newFixture(t)

	code, resp := f.post(t, `{ info }`, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"info":"This is the API of a Hackernews Clone"}`, string(resp.Data))
}

func TestServe_GetQuery(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/graphql?query="+url.QueryEscape(`{ info }`), nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"info":"This is the API of a Hackernews Clone"}}`, w.Body.String())
}

func TestServe_MissingQuery(t *testing.T) {
	f := newFixture(t)

	code, resp := f.post(t, "", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "must provide query string", resp.Errors[0].Message)
}

func TestServe_InvalidTakeIsUserError(t *testing.T) {
	f := newFixture(t)

	_, resp := f.post(t, `{ feed(take: 51) { id } }`, nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "invalid take argument value '51': must be between 1 and 50", resp.Errors[0].Message)
	assert.Equal(t, "INVALID_ARGUMENT", resp.Errors[0].Extensions["code"])
	assert.Empty(t, f.links.FindManyCalls)
}

func TestServe_VariablesAreCoerced(t *testing.T) {
	f := newFixture(t)
	f.post(t, `mutation { postLink(url: "https://a.dev", description: "A") { id } }`, nil)
	f.post(t, `mutation { postLink(url: "https://b.dev", description: "B") { id } }`, nil)

	_, resp := f.post(t, `query Feed($take: Int) { feed(take: $take) { description } }`,
		map[string]interface{}{"take": 1})
	assert.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"feed":[{"description":"A"}]}`, string(resp.Data))
}

func TestServe_StorageErrorIsMasked(t *testing.T) {
	f := newFixture(t)
	f.links.FindError = errors.New("connection reset by peer")

	_, resp := f.post(t, `{ feed { id } }`, nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, graph.MaskedMessage, resp.Errors[0].Message)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Errors[0].Extensions["code"])
	assert.NotContains(t, resp.Errors[0].Message, "connection reset")
}

func TestServe_SyntaxErrorIsNotMasked(t *testing.T) {
	f := newFixture(t)

	_, resp := f.post(t, `{ feed { nope } }`, nil)
	require.NotEmpty(t, resp.Errors)
	assert.NotEqual(t, graph.MaskedMessage, resp.Errors[0].Message)
	assert.Contains(t, resp.Errors[0].Message, "nope")
}

func TestServe_PostCommentOnMissingLink(t *testing.T) {
	f := newFixture(t)

	for _, id := range []string{"999", "abc"} {
		_, resp := f.post(t, `mutation($id: ID!) { postCommentOnLink(linkId: $id, body: "hi") { id } }`,
			map[string]interface{}{"id": id})
		require.Len(t, resp.Errors, 1, id)
		assert.Equal(t, "cannot post comment on non-existing link with id '"+id+"'", resp.Errors[0].Message)
		assert.Equal(t, "INVALID_REFERENCE", resp.Errors[0].Extensions["code"])
	}
}

func TestServe_CommentWithMissingLinkIsMasked(t *testing.T) {
	f := newFixture(t)
	_, resp := f.post(t, `mutation { postLink(url: "https://a.dev", description: "A") { id } }`, nil)
	require.Empty(t, resp.Errors)
	_, resp = f.post(t, `mutation { postCommentOnLink(linkId: "1", body: "first") { id } }`, nil)
	require.Empty(t, resp.Errors)

	f.store.DeleteLink(1)

	_, resp = f.post(t, `{ comment(id: "2") { body link { id } } }`, nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, graph.MaskedMessage, resp.Errors[0].Message)
}

func TestServe_NestedResolution(t *testing.T) {
	f := newFixture(t)
	f.post(t, `mutation { postLink(url: "https://a.dev", description: "A") { id } }`, nil)
	f.post(t, `mutation { postCommentOnLink(linkId: "1", body: "older") { id } }`, nil)
	f.post(t, `mutation { postCommentOnLink(linkId: "1", body: "newer") { id } }`, nil)

	_, resp := f.post(t, `{ link(id: "1") { url comments { body createdAt link { id } } } }`, nil)
	require.Empty(t, resp.Errors)

	var data struct {
		Link struct {
			URL      string `json:"url"`
			Comments []struct {
				Body      string `json:"body"`
				CreatedAt string `json:"createdAt"`
				Link      struct {
					ID string `json:"id"`
				} `json:"link"`
			} `json:"comments"`
		} `json:"link"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "https://a.dev", data.Link.URL)
	require.Len(t, data.Link.Comments, 2)
	assert.Equal(t, "newer", data.Link.Comments[0].Body)
	assert.Equal(t, "older", data.Link.Comments[1].Body)
	assert.Equal(t, "1", data.Link.Comments[0].Link.ID)
	assert.Equal(t, "2024-01-01T00:00:03Z", data.Link.Comments[0].CreatedAt)
}

func TestServe_UnknownLinkIsNull(t *testing.T) {
	f := newFixture(t)

	_, resp := f.post(t, `{ link(id: "42") { id } }`, nil)
	assert.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"link":null}`, string(resp.Data))
}

func TestServe_RecordsMetrics(t *testing.T) {
	f := newFixture(t)

	f.post(t, `{ info }`, nil)
	f.post(t, `{ feed(skip: -1) { id } }`, nil)

	count, err := testutil.GatherAndCount(f.registry, "hackernews_graphql_resolver_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
