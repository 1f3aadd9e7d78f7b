package graph

import (
	"context"
	"strconv"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/hackernews-graphql-api/internal/apperrors"
	"github.com/hackernews-graphql-api/internal/metrics"
	"github.com/hackernews-graphql-api/internal/models"
	"github.com/hackernews-graphql-api/internal/resolver"
)

// rootResolver serves both the Query and the Mutation root types
type rootResolver struct {
	table   *resolver.Table
	metrics *metrics.Resolvers
}

func (r *rootResolver) observe(field string, started time.Time, err error) {
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case apperrors.IsUserError(err):
		outcome = metrics.OutcomeUserError
	default:
		outcome = metrics.OutcomeError
	}
	r.metrics.Observe(field, outcome, started)
}

func (r *rootResolver) link(l *models.Link) *linkResolver {
	if l == nil {
		return nil
	}
	return &linkResolver{link: l, root: r}
}

func (r *rootResolver) links(ls []*models.Link) []*linkResolver {
	out := make([]*linkResolver, 0, len(ls))
	for _, l := range ls {
		out = append(out, &linkResolver{link: l, root: r})
	}
	return out
}

func (r *rootResolver) comment(c *models.Comment) *commentResolver {
	if c == nil {
		return nil
	}
	return &commentResolver{comment: c, root: r}
}

func (r *rootResolver) comments(cs []*models.Comment) []*commentResolver {
	out := make([]*commentResolver, 0, len(cs))
	for _, c := range cs {
		out = append(out, &commentResolver{comment: c, root: r})
	}
	return out
}

func intArg(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func (r *rootResolver) Info(ctx context.Context) (string, error) {
	rc, err := requestContext(ctx)
	if err != nil {
		return "", err
	}
	defer r.observe("Query.info", time.Now(), nil)
	return r.table.Query.Info(rc), nil
}

func (r *rootResolver) Feed(ctx context.Context, args struct {
	FilterNeedle *string
	Skip         *int32
	Take         *int32
}) ([]*linkResolver, error) {
	rc, err := requestContext(ctx)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	links, err := r.table.Query.Feed(rc, resolver.FeedArgs{
		FilterNeedle: args.FilterNeedle,
		Skip:         intArg(args.Skip),
		Take:         intArg(args.Take),
	})
	r.observe("Query.feed", started, err)
	if err != nil {
		return nil, err
	}
	return r.links(links), nil
}

func (r *rootResolver) Link(ctx context.Context, args struct{ ID graphql.ID }) (*linkResolver, error) {
	rc, err := requestContext(ctx)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	link, err := r.table.Query.Link(rc, string(args.ID))
	r.observe("Query.link", started, err)
	if err != nil {
		return nil, err
	}
	return r.link(link), nil
}

func (r *rootResolver) Comment(ctx context.Context, args struct{ ID graphql.ID }) (*commentResolver, error) {
	rc, err := requestContext(ctx)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	comment, err := r.table.Query.Comment(rc, string(args.ID))
	r.observe("Query.comment", started, err)
	if err != nil {
		return nil, err
	}
	return r.comment(comment), nil
}

func (r *rootResolver) PostLink(ctx context.Context, args struct {
	URL         string
	Description string
}) (*linkResolver, error) {
	rc, err := requestContext(ctx)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	link, err := r.table.Mutation.PostLink(rc, resolver.PostLinkArgs{URL: args.URL, Description: args.Description})
	r.observe("Mutation.postLink", started, err)
	if err != nil {
		return nil, err
	}
	return r.link(link), nil
}

func (r *rootResolver) PostCommentOnLink(ctx context.Context, args struct {
	LinkID graphql.ID
	Body   string
}) (*commentResolver, error) {
	rc, err := requestContext(ctx)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	comment, err := r.table.Mutation.PostCommentOnLink(rc, resolver.PostCommentOnLinkArgs{
		LinkID: string(args.LinkID),
		Body:   args.Body,
	})
	r.observe("Mutation.postCommentOnLink", started, err)
	if err != nil {
		return nil, err
	}
	return r.comment(comment), nil
}

type linkResolver struct {
	link *models.Link
	root *rootResolver
}

func (r *linkResolver) ID() graphql.ID {
	return graphql.ID(strconv.FormatInt(r.link.ID, 10))
}

func (r *linkResolver) Description() string {
	return r.link.Description
}

func (r *linkResolver) URL() string {
	return r.link.URL
}

func (r *linkResolver) Comments(ctx context.Context) ([]*commentResolver, error) {
	rc, err := requestContext(ctx)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	comments, err := r.root.table.Link.Comments(rc, r.link)
	r.root.observe("Link.comments", started, err)
	if err != nil {
		return nil, err
	}
	return r.root.comments(comments), nil
}

type commentResolver struct {
	comment *models.Comment
	root    *rootResolver
}

func (r *commentResolver) ID() graphql.ID {
	return graphql.ID(strconv.FormatInt(r.comment.ID, 10))
}

func (r *commentResolver) Body() string {
	return r.comment.Body
}

func (r *commentResolver) CreatedAt() string {
	return r.comment.CreatedAt.UTC().Format(time.RFC3339)
}

func (r *commentResolver) Link(ctx context.Context) (*linkResolver, error) {
	rc, err := requestContext(ctx)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	link, err := r.root.table.Comment.Link(rc, r.comment)
	r.root.observe("Comment.link", started, err)
	if err != nil {
		return nil, err
	}
	return r.root.link(link), nil
}
