// Package graph implements the GraphQL transport layer of the application.
// It carries the schema, the resolvers, the per-request authentication
// context and the boundary error formatter that rewrites every failure into
// the stable client-facing shape.
package graph

import (
	"encoding/json"
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"

	"github.com/osouza/go-user-accounts/internal/apperrors"
	"github.com/osouza/go-user-accounts/internal/logger"
	"github.com/osouza/go-user-accounts/internal/service"
)

// Handler owns the parsed schema and serves the single GraphQL endpoint.
type Handler struct {
	schema   *graphql.Schema
	services *service.Services

	logger *logger.Logger
}

// NewHandler parses the schema against the root resolver. It panics on a
// schema/resolver mismatch, which is a programming error caught at startup.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	schema := graphql.MustParseSchema(schemaDefinition, NewResolver(services))
	logger.Info().Msg("graphql handler created")
	return &Handler{
		schema:   schema,
		services: services,
		logger:   logger,
	}
}

// graphqlRequest is the standard POST body of a GraphQL operation.
type graphqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// graphqlResponse replaces the engine's error shape with the wire contract:
// a list of {code, message, additionalInfo?} objects.
type graphqlResponse struct {
	Data   json.RawMessage    `json:"data,omitempty"`
	Errors []*apperrors.Error `json:"errors,omitempty"`
}

// serveGraphQL handles one GraphQL operation per request.
//
// The authentication context is built once from the Authorization header and
// travels read-only through the resolvers. Failures of any kind are reported
// inside the response body; the HTTP status stays 200 so that transport
// status never competes with the error contract.
func (h *Handler) serveGraphQL(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("malformed graphql request body")
		writeResponse(w, log, &graphqlResponse{Errors: []*apperrors.Error{apperrors.Unknown()}})
		return
	}

	ctx := r.Context()
	auth := BuildAuthContext(ctx, h.services.Tokens, r.Header.Get("Authorization"))
	ctx = WithAuthContext(ctx, auth)

	result := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)

	response := &graphqlResponse{Data: result.Data}
	for _, queryError := range result.Errors {
		appErr := formatError(queryError)
		log.Debug().Int("code", appErr.Code).Str("message", appErr.Message).Msg("operation failed")
		response.Errors = append(response.Errors, appErr)
	}

	writeResponse(w, log, response)
}

// formatError maps one engine-level query error to the wire contract.
// Resolver failures keep their tagged code and message; everything the
// engine raised itself (parse and validation failures) and anything
// unclassified collapses to the generic unknown error so that internals are
// not leaked.
func formatError(queryError *gqlerrors.QueryError) *apperrors.Error {
	if queryError == nil {
		return apperrors.Unknown()
	}
	if queryError.ResolverError != nil {
		return apperrors.From(queryError.ResolverError)
	}
	return apperrors.Unknown()
}

func writeResponse(w http.ResponseWriter, log *logger.Logger, response *graphqlResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Err(err).Msg("error writing graphql response")
	}
}
