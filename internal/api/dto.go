package api

import "github.com/woragis/docserve/internal/docservice"

// DocResponse is the full document response type (aliased from the domain layer).
// The metadata field is omitted entirely when the document has no front-matter.
type DocResponse = docservice.DocDetail

// DocListItem is a single catalog entry (aliased from the domain layer).
type DocListItem = docservice.DocListItem

// DocListResponse wraps catalog listings.
type DocListResponse struct {
	Files []DocListItem `json:"files"`
	Total int           `json:"total"`
}

// ServiceInfo is the static descriptor served at the root endpoint.
type ServiceInfo struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
