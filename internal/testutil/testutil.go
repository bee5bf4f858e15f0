// Package testutil provides shared test helpers for setting up docs trees.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/woragis/docserve/internal/storage"
)

// DocsRoot writes the given files (relative path → content) into a temp
// directory and returns the directory with a storage provider over it.
func DocsRoot(t *testing.T, files map[string]string) (string, *storage.FS) {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		WriteDoc(t, root, rel, content)
	}
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return root, store
}

// WriteDoc writes one file under root, creating parent directories.
func WriteDoc(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", rel, err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}
