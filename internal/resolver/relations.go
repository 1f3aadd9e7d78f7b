package resolver

import (
	"github.com/hackernews-graphql-api/internal/apperrors"
	"github.com/hackernews-graphql-api/internal/filter"
	"github.com/hackernews-graphql-api/internal/models"
	"github.com/hackernews-graphql-api/internal/repository"
)

type linkResolvers struct{}

// Comments lists the comments of a link, newest first
func (linkResolvers) Comments(rc *RequestContext, parent *models.Link) ([]*models.Comment, error) {
	return rc.Comments.FindMany(rc.Ctx, repository.FindManyArgs{
		Where: filter.Equals(filter.FieldLinkID, parent.ID),
		OrderBy: []repository.OrderBy{
			{Field: "createdAt", Desc: true},
			{Field: "id", Desc: true},
		},
	})
}

type commentResolvers struct{}

// Link resolves the parent link of a comment. Every stored comment references an existing
// link, so a miss is reported as a NotFoundError rather than null.
func (commentResolvers) Link(rc *RequestContext, parent *models.Comment) (*models.Link, error) {
	link, err := rc.Links.FindUniqueOrThrow(rc.Ctx, parent.LinkID)
	if err != nil {
		return nil, apperrors.TranslateNotFound(err, "link", parent.LinkID)
	}
	return link, nil
}
