package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/woragis/docserve/internal/docservice"
)

// NewRouter creates a chi router with the documentation routes mounted.
// The caller mounts it under the versioned API prefix.
func NewRouter(svc *docservice.Service) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Get("/", h.ListDocs)
	r.Get("/*", h.GetDoc)
	return r
}
