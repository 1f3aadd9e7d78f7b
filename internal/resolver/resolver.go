// Package resolver holds the field resolvers of the GraphQL API: argument validation,
// filter composition, referential-integrity checks and the Link/Comment relation graph.
//
// Resolvers are grouped per schema type behind small interfaces and composed into a Table
// once at startup. Each call receives the RequestContext explicitly and returns either a
// value or an error from the apperrors taxonomy; anything else is a fatal error.
package resolver

import (
	"github.com/hackernews-graphql-api/internal/models"
)

// InfoMessage is the static answer of the info query
const InfoMessage = "This is the API of a Hackernews Clone"

// FeedArgs are the arguments of Query.feed
type FeedArgs struct {
	FilterNeedle *string
	Skip         *int
	Take         *int
}

// PostLinkArgs are the arguments of Mutation.postLink
type PostLinkArgs struct {
	URL         string
	Description string
}

// PostCommentOnLinkArgs are the arguments of Mutation.postCommentOnLink
type PostCommentOnLinkArgs struct {
	LinkID string
	Body   string
}

// QueryResolvers resolves the fields of the Query root type
type QueryResolvers interface {
	Info(rc *RequestContext) string
	Feed(rc *RequestContext, args FeedArgs) ([]*models.Link, error)
	Link(rc *RequestContext, id string) (*models.Link, error)
	Comment(rc *RequestContext, id string) (*models.Comment, error)
}

// MutationResolvers resolves the fields of the Mutation root type
type MutationResolvers interface {
	PostLink(rc *RequestContext, args PostLinkArgs) (*models.Link, error)
	PostCommentOnLink(rc *RequestContext, args PostCommentOnLinkArgs) (*models.Comment, error)
}

// LinkResolvers resolves the derived fields of Link
type LinkResolvers interface {
	Comments(rc *RequestContext, parent *models.Link) ([]*models.Comment, error)
}

// CommentResolvers resolves the derived fields of Comment
type CommentResolvers interface {
	Link(rc *RequestContext, parent *models.Comment) (*models.Link, error)
}

// Table is the dispatch table consulted by the GraphQL binding
type Table struct {
	Query    QueryResolvers
	Mutation MutationResolvers
	Link     LinkResolvers
	Comment  CommentResolvers
}

// NewTable returns the table wired with the default resolvers
func NewTable() *Table {
	return &Table{
		Query:    queryResolvers{},
		Mutation: mutationResolvers{},
		Link:     linkResolvers{},
		Comment:  commentResolvers{},
	}
}
