package graph

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router: one POST endpoint behind the recoverer, trace-id
// and access-log middlewares. Authentication is not a routing concern here;
// every operation decides for itself inside the resolver.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/graphql", h.serveGraphQL)

	return router
}
