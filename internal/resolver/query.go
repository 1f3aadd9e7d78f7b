package resolver

import (
	"github.com/hackernews-graphql-api/internal/filter"
	"github.com/hackernews-graphql-api/internal/models"
	"github.com/hackernews-graphql-api/internal/repository"
	"github.com/hackernews-graphql-api/internal/validation"
)

type queryResolvers struct{}

func (queryResolvers) Info(rc *RequestContext) string {
	return InfoMessage
}

// Feed validates pagination before touching storage; the page keeps the storage order.
func (queryResolvers) Feed(rc *RequestContext, args FeedArgs) ([]*models.Link, error) {
	where := filter.Compile(args.FilterNeedle)

	skip, err := validation.ValidateSkip(args.Skip)
	if err != nil {
		return nil, err
	}
	take, err := validation.ValidateTake(args.Take)
	if err != nil {
		return nil, err
	}

	rc.Log.Debug().
		Str("where", where.String()).
		Int("skip", skip).
		Int("take", take).
		Msg("Resolving feed")

	return rc.Links.FindMany(rc.Ctx, repository.FindManyArgs{
		Where: where,
		Skip:  skip,
		Take:  take,
	})
}

// Link looks a link up by id. Ids are parsed leniently on this read path; an id with no
// leading digits cannot match anything and resolves to null without a lookup.
func (queryResolvers) Link(rc *RequestContext, id string) (*models.Link, error) {
	key, ok := validation.ParseIDLenient(id)
	if !ok {
		return nil, nil
	}
	return rc.Links.FindUnique(rc.Ctx, key)
}

// Comment looks a comment up by id with the same lenient parsing as Link
func (queryResolvers) Comment(rc *RequestContext, id string) (*models.Comment, error) {
	key, ok := validation.ParseIDLenient(id)
	if !ok {
		return nil, nil
	}
	return rc.Comments.FindUnique(rc.Ctx, key)
}
