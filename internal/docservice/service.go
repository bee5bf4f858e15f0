// Package docservice coordinates path resolution, file reads, and Markdown
// rendering to answer document and catalog requests.
package docservice

import (
	"context"
	"fmt"
	"html"
	"path"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/woragis/docserve/internal/apperr"
	"github.com/woragis/docserve/internal/parser"
	"github.com/woragis/docserve/internal/storage"
)

// rootCategory is the category assigned to files directly under the docs root.
const rootCategory = "root"

// DocDetail is the full representation of a rendered document.
type DocDetail struct {
	Path     string            `json:"path"`
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	HTML     string            `json:"html"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// DocListItem is a lightweight catalog entry in a list response.
type DocListItem struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	Size     int64  `json:"size"`
	Category string `json:"category"`
}

// Service coordinates storage and parsing. It holds no mutable state and is
// safe for concurrent use.
type Service struct {
	store  storage.Provider
	parser *parser.Parser
}

// NewService creates a new document service.
func NewService(store storage.Provider, p *parser.Parser) *Service {
	return &Service{store: store, parser: p}
}

// GetDocument resolves a logical path, reads the file, and renders it.
// Returns apperr.ErrNotFound when resolution fails and apperr.ErrUnreadable
// when the resolved file cannot be read or is not valid UTF-8.
func (s *Service) GetDocument(_ context.Context, logical string) (*DocDetail, error) {
	rel, err := s.store.Resolve(logical)
	if err != nil {
		return nil, err
	}

	data, err := s.store.Read(rel)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperr.ErrUnreadable, rel)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", apperr.ErrUnreadable, rel)
	}

	raw := string(data)
	htmlFragment, meta := s.parser.Parse(raw)

	return &DocDetail{
		Path:     rel,
		Title:    parser.ExtractTitle(raw),
		Content:  raw,
		HTML:     htmlFragment,
		Metadata: meta,
	}, nil
}

// ListDocs enumerates every Markdown file under the root and returns catalog
// entries sorted by path. When category is non-empty, only entries whose path
// contains it as a whole segment are returned. An unreadable file still gets
// an entry, with its filename stem as the title.
func (s *Service) ListDocs(_ context.Context, category string) ([]DocListItem, error) {
	files, err := s.store.Walk()
	if err != nil {
		return nil, err
	}

	items := make([]DocListItem, 0, len(files))
	for _, f := range files {
		segments := strings.Split(f.Path, "/")
		if category != "" && !containsSegment(segments, category) {
			continue
		}

		title := fileStem(f.Path)
		if data, err := s.store.Read(f.Path); err == nil {
			title = parser.ExtractTitle(string(data))
		}

		cat := rootCategory
		if len(segments) > 1 {
			cat = segments[0]
		}

		items = append(items, DocListItem{
			Path:     f.Path,
			Title:    title,
			Size:     f.Size,
			Category: cat,
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Path < items[j].Path })
	return items, nil
}

// containsSegment reports whether any path segment equals category exactly.
func containsSegment(segments []string, category string) bool {
	for _, seg := range segments {
		if seg == category {
			return true
		}
	}
	return false
}

// fileStem returns the base filename without its extension.
func fileStem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// pageTemplate wraps a rendered fragment in a standalone HTML document.
// The %s slots are: title, body fragment.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s - Woragis Docs</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            max-width: 900px;
            margin: 0 auto;
            padding: 2rem;
            line-height: 1.6;
            color: #333;
        }
        h1, h2, h3, h4, h5, h6 {
            margin-top: 2rem;
            margin-bottom: 1rem;
        }
        code {
            background: #f4f4f4;
            padding: 0.2em 0.4em;
            border-radius: 3px;
            font-size: 0.9em;
        }
        pre {
            background: #f4f4f4;
            padding: 1rem;
            border-radius: 5px;
            overflow-x: auto;
        }
        a {
            color: #0066cc;
            text-decoration: none;
        }
        a:hover {
            text-decoration: underline;
        }
        table {
            border-collapse: collapse;
            width: 100%%;
            margin: 1rem 0;
        }
        th, td {
            border: 1px solid #ddd;
            padding: 0.5rem;
            text-align: left;
        }
        th {
            background: #f4f4f4;
            font-weight: 600;
        }
    </style>
</head>
<body>
    %s
</body>
</html>`

// RenderPage wraps a document's HTML fragment in a complete standalone page.
func RenderPage(doc *DocDetail) string {
	return fmt.Sprintf(pageTemplate, html.EscapeString(doc.Title), doc.HTML)
}
