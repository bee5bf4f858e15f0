package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/woragis/docserve/internal/apperr"
	"github.com/woragis/docserve/internal/docservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *docservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *docservice.Service) *Handler {
	return &Handler{svc: svc}
}

// WriteServiceInfo writes the static service descriptor served at GET /.
func WriteServiceInfo(w http.ResponseWriter, version string) {
	writeJSON(w, http.StatusOK, ServiceInfo{
		Service: "woragis-docs-service",
		Version: version,
		Endpoints: map[string]string{
			"docs":    "/api/v1/docs",
			"health":  "/healthz",
			"metrics": "/metrics",
		},
	})
}

// docPath extracts the logical document path from the URL (everything after
// the mount point). Supports encoded slashes (e.g. architecture%2Foverview.md).
func docPath(r *http.Request) string {
	raw := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if raw == "" {
		return ""
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// ListDocs handles GET /api/v1/docs/ with an optional category filter.
func (h *Handler) ListDocs(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	items, err := h.svc.ListDocs(r.Context(), category)
	if err != nil {
		slog.Error("list docs failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("failed to list documentation"))
		return
	}
	slog.Info("listed docs", slog.Int("count", len(items)), slog.String("category", category))
	writeJSON(w, http.StatusOK, DocListResponse{Files: items, Total: len(items)})
}

// GetDoc handles GET /api/v1/docs/{path}. The format query parameter selects
// between the structured JSON document (default) and a standalone HTML page.
func (h *Handler) GetDoc(w http.ResponseWriter, r *http.Request) {
	path := docPath(r)
	format := r.URL.Query().Get("format")

	doc, err := h.svc.GetDocument(r.Context(), path)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody(fmt.Sprintf("documentation file not found: %s", path)))
		case errors.Is(err, apperr.ErrUnreadable):
			slog.Error("read doc failed", slog.String("path", path), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("failed to read documentation file"))
		default:
			slog.Error("get doc failed", slog.String("path", path), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}

	slog.Info("served doc", slog.String("path", doc.Path), slog.String("format", format))

	if format == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(docservice.RenderPage(doc)))
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
