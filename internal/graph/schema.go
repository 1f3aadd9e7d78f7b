// Package graph binds the resolver table to the graph-gophers GraphQL engine and serves it
// over HTTP.
package graph

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/hackernews-graphql-api/internal/config"
	"github.com/hackernews-graphql-api/internal/metrics"
	"github.com/hackernews-graphql-api/internal/resolver"
	"github.com/rs/zerolog"
)

//go:embed schema.graphql
var schemaSDL string

// SDL returns the schema definition served by the API
func SDL() string {
	return schemaSDL
}

// errNoRequestContext means the handler did not attach a RequestContext
var errNoRequestContext = errors.New("graph: request context missing")

type requestContextKey struct{}

// WithRequestContext attaches rc to ctx for the duration of one execution
func WithRequestContext(ctx context.Context, rc *resolver.RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

func requestContext(ctx context.Context) (*resolver.RequestContext, error) {
	rc, ok := ctx.Value(requestContextKey{}).(*resolver.RequestContext)
	if !ok || rc == nil {
		return nil, errNoRequestContext
	}
	return rc, nil
}

// panicLogger routes engine panics to zerolog
type panicLogger struct {
	log zerolog.Logger
}

func (l panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.log.Error().Interface("panic", value).Msg("Resolver panicked")
}

// NewSchema parses the SDL and binds it to table. Binding is checked once here, so a
// resolver missing for any schema field fails at startup.
func NewSchema(table *resolver.Table, m *metrics.Resolvers, cfg config.GraphQLConfig, log zerolog.Logger) (*graphql.Schema, error) {
	opts := []graphql.SchemaOpt{
		graphql.Logger(panicLogger{log: log.With().Str("component", "graphql").Logger()}),
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, graphql.MaxDepth(cfg.MaxDepth))
	}
	if cfg.MaxParallelism > 0 {
		opts = append(opts, graphql.MaxParallelism(cfg.MaxParallelism))
	}

	schema, err := graphql.ParseSchema(schemaSDL, &rootResolver{table: table, metrics: m}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graphql schema: %w", err)
	}
	return schema, nil
}
