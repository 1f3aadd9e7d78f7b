package resolver

import (
	"context"

	"github.com/hackernews-graphql-api/internal/repository"
	"github.com/rs/zerolog"
)

// RequestContext carries the per-request collaborators. It is passed explicitly to every
// resolver and never stored between requests.
type RequestContext struct {
	Ctx      context.Context
	Links    repository.LinkRepository
	Comments repository.CommentRepository
	Log      zerolog.Logger
}

// ContextProvider builds a fresh RequestContext for one GraphQL request
type ContextProvider func(ctx context.Context) (*RequestContext, error)

// NewContextProvider hands every request the given repositories and a logger enriched
// with the request's fields.
func NewContextProvider(repos *repository.Repositories, log zerolog.Logger) ContextProvider {
	return func(ctx context.Context) (*RequestContext, error) {
		logger := log
		if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
			logger = *l
		}
		return &RequestContext{
			Ctx:      ctx,
			Links:    repos.Link,
			Comments: repos.Comment,
			Log:      logger,
		}, nil
	}
}
