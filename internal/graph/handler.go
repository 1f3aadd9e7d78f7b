package graph

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/hackernews-graphql-api/internal/apperrors"
	"github.com/hackernews-graphql-api/internal/resolver"
	"github.com/rs/zerolog"
)

// MaskedMessage replaces the message of every resolver error that is not meant for clients
const MaskedMessage = "Unexpected error."

const codeInternal = "INTERNAL_SERVER_ERROR"

// Request is a GraphQL-over-HTTP request body
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler executes GraphQL requests against a parsed schema
type Handler struct {
	schema   *graphql.Schema
	provider resolver.ContextProvider
	log      zerolog.Logger
}

// NewHandler creates a new GraphQL HTTP handler
func NewHandler(schema *graphql.Schema, provider resolver.ContextProvider, log zerolog.Logger) *Handler {
	return &Handler{
		schema:   schema,
		provider: provider,
		log:      log,
	}
}

// Serve handles POST /graphql with a JSON body and GET /graphql with query parameters
func (h *Handler) Serve(c *gin.Context) {
	var req Request
	if c.Request.Method == http.MethodGet {
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if raw := c.Query("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				badRequest(c, "variables must be a JSON object")
				return
			}
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	if req.Query == "" {
		badRequest(c, "must provide query string")
		return
	}

	ctx := c.Request.Context()
	rc, err := h.provider(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build request context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"errors": []gin.H{{"message": MaskedMessage}},
		})
		return
	}

	resp := h.schema.Exec(WithRequestContext(ctx, rc), req.Query, req.OperationName, req.Variables)
	maskErrors(rc.Log, resp.Errors)

	c.JSON(http.StatusOK, resp)
}

// maskErrors hides everything but user errors raised while resolving fields. Errors without a
// path come from parsing or validation and are returned unchanged.
func maskErrors(log zerolog.Logger, errs []*gqlerrors.QueryError) {
	for _, qe := range errs {
		if len(qe.Path) == 0 {
			continue
		}
		if qe.ResolverError != nil && apperrors.IsUserError(qe.ResolverError) {
			log.Debug().Err(qe.ResolverError).Interface("path", qe.Path).Msg("Rejected GraphQL request")
			continue
		}

		cause := error(qe)
		if qe.ResolverError != nil {
			cause = qe.ResolverError
		}
		log.Error().Err(cause).Interface("path", qe.Path).Msg("Resolver failed")

		qe.Message = MaskedMessage
		qe.ResolverError = nil
		qe.Extensions = map[string]interface{}{"code": codeInternal}
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"errors": []gin.H{{"message": message}},
	})
}
