// Package health probes the docs directory and reports service health.
// Results are cached briefly to keep /healthz cheap under probe traffic.
package health

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/woragis/docserve/internal/storage"
)

const serviceName = "docs-service"

// Check is a single named probe result.
type Check struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Result is the aggregate health report.
type Result struct {
	Status  string  `json:"status"`
	Service string  `json:"service"`
	Checks  []Check `json:"checks"`
}

// Checker performs health checks against the docs root, caching the
// result for a short TTL.
type Checker struct {
	root string
	ttl  time.Duration

	mu      sync.Mutex
	cached  Result
	expires time.Time
}

// NewChecker creates a Checker for the given docs root with a 5 second cache.
func NewChecker(root string) *Checker {
	return &Checker{root: root, ttl: 5 * time.Second}
}

// Check returns the current health report, recomputing it when the cached
// result has expired.
func (c *Checker) Check() Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if len(c.cached.Checks) > 0 && now.Before(c.expires) {
		return c.cached
	}

	c.cached = c.probe()
	c.expires = now.Add(c.ttl)
	return c.cached
}

func (c *Checker) probe() Result {
	status := "healthy"
	checks := []Check{{Name: "service", Status: "ok"}}

	info, err := os.Stat(c.root)
	exists := err == nil && info.IsDir()
	checks = append(checks, Check{Name: "docs_directory", Status: okOrError(exists)})
	if !exists {
		return Result{Status: "unhealthy", Service: serviceName, Checks: checks}
	}

	_, readErr := os.ReadDir(c.root)
	readable := readErr == nil
	checks = append(checks, Check{Name: "docs_readable", Status: okOrError(readable)})
	if !readable {
		status = "unhealthy"
	}

	// Informational: verify the tree can be enumerated.
	countOK := false
	if fs, err := storage.NewFS(c.root); err == nil {
		if _, err := fs.Walk(); err == nil {
			countOK = true
		}
	}
	checks = append(checks, Check{Name: "markdown_files", Status: okOrError(countOK)})

	return Result{Status: status, Service: serviceName, Checks: checks}
}

// ServeHTTP implements the /healthz endpoint: 200 when healthy, 503 otherwise.
func (c *Checker) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	result := c.Check()
	status := http.StatusOK
	if result.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func okOrError(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
