package resolver

import (
	"github.com/hackernews-graphql-api/internal/apperrors"
	"github.com/hackernews-graphql-api/internal/models"
	"github.com/hackernews-graphql-api/internal/validation"
)

type mutationResolvers struct{}

func (mutationResolvers) PostLink(rc *RequestContext, args PostLinkArgs) (*models.Link, error) {
	link := &models.Link{
		Description: args.Description,
		URL:         args.URL,
	}
	if err := rc.Links.Create(rc.Ctx, link); err != nil {
		return nil, err
	}

	rc.Log.Info().Int64("link_id", link.ID).Msg("Link posted")
	return link, nil
}

// PostCommentOnLink rejects malformed link ids before writing and converts a foreign key
// violation during the write into the same InvalidReferenceError.
func (mutationResolvers) PostCommentOnLink(rc *RequestContext, args PostCommentOnLinkArgs) (*models.Comment, error) {
	linkID, ok := validation.ParseID(args.LinkID)
	if !ok {
		return nil, &apperrors.InvalidReferenceError{ID: args.LinkID}
	}

	comment := &models.Comment{
		Body:   args.Body,
		LinkID: linkID,
	}
	if err := rc.Comments.Create(rc.Ctx, comment); err != nil {
		return nil, apperrors.TranslateReference(err, args.LinkID)
	}

	rc.Log.Info().
		Int64("comment_id", comment.ID).
		Int64("link_id", linkID).
		Msg("Comment posted")
	return comment, nil
}
