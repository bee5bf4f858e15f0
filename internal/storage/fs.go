// Package storage provides read-only access to the documentation tree on disk,
// including traversal-safe resolution of caller-supplied logical paths.
package storage

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/woragis/docserve/internal/apperr"
)

// indexCandidates are tried, in order, when a logical path names a directory.
var indexCandidates = []string{"README.md", "index.md"}

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to the docs root directory
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute docs root directory.
func (f *FS) Root() string {
	return f.root
}

// safePath resolves a relative path against the docs root and rejects
// any result that escapes it (directory traversal).
func (f *FS) safePath(rel string) (string, error) {
	if rel == "" {
		return f.root, nil
	}
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s", rel)
	}
	joined := filepath.Join(f.root, cleaned)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	// Ensure the resolved path is still under root.
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) && abs != f.root {
		return "", fmt.Errorf("storage: path escapes docs root: %s", rel)
	}
	return abs, nil
}

// Resolve maps a logical path to the relative path of a concrete file.
// Lookup order: exact match, then `.md` extension inference, then
// README.md/index.md fallback when the path names a directory.
// Every miss, including traversal attempts, yields apperr.ErrNotFound.
func (f *FS) Resolve(logical string) (string, error) {
	p := strings.Trim(logical, "/")
	if p == "" {
		return "", apperr.ErrNotFound
	}

	abs, err := f.safePath(p)
	if err != nil || abs == f.root {
		return "", apperr.ErrNotFound
	}

	info, statErr := os.Stat(abs)

	// Exact match.
	if statErr == nil && info.Mode().IsRegular() {
		return f.relPath(abs), nil
	}

	// Extension inference for paths given without a Markdown suffix.
	if !hasMarkdownExt(p) {
		if fi, err := os.Stat(abs + ".md"); err == nil && fi.Mode().IsRegular() {
			return f.relPath(abs + ".md"), nil
		}
	}

	// Directory index fallback.
	if statErr == nil && info.IsDir() {
		for _, name := range indexCandidates {
			candidate := filepath.Join(abs, name)
			if fi, err := os.Stat(candidate); err == nil && fi.Mode().IsRegular() {
				return f.relPath(candidate), nil
			}
		}
	}

	return "", apperr.ErrNotFound
}

// Read returns the raw bytes of a docs file given its relative path.
func (f *FS) Read(rel string) ([]byte, error) {
	abs, err := f.safePath(rel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", rel, err)
	}
	return data, nil
}

// Walk enumerates every .md/.markdown file under the root. Files inside
// hidden directories (any segment starting with ".") are excluded.
func (f *FS) Walk() ([]FileInfo, error) {
	var out []FileInfo
	err := filepath.WalkDir(f.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if p != f.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") || !hasMarkdownExt(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		out = append(out, FileInfo{Path: f.relPath(p), Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: walk: %w", err)
	}
	return out, nil
}

// relPath converts an absolute path under root to slash-separated relative form.
func (f *FS) relPath(abs string) string {
	rel, err := filepath.Rel(f.root, abs)
	if err != nil {
		return abs
	}
	return filepath.ToSlash(rel)
}

func hasMarkdownExt(p string) bool {
	return strings.HasSuffix(p, ".md") || strings.HasSuffix(p, ".markdown")
}
