package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/woragis/docserve/internal/apperr"
)

func tempRoot(t *testing.T, files ...string) *FS {
	t.Helper()
	dir := t.TempDir()
	for _, rel := range files {
		abs := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(abs, []byte("# "+rel+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs
}

func TestResolveExact(t *testing.T) {
	s := tempRoot(t, "a/b.md")
	got, err := s.Resolve("a/b.md")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "a/b.md" {
		t.Errorf("resolved = %q, want a/b.md", got)
	}
}

func TestResolveExtensionInference(t *testing.T) {
	s := tempRoot(t, "a/b.md")
	got, err := s.Resolve("a/b")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "a/b.md" {
		t.Errorf("resolved = %q, want a/b.md", got)
	}
}

func TestResolveLeadingTrailingSlashes(t *testing.T) {
	s := tempRoot(t, "guide.md")
	got, err := s.Resolve("/guide.md/")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "guide.md" {
		t.Errorf("resolved = %q", got)
	}
}

func TestResolveDirectoryIndexFallback(t *testing.T) {
	s := tempRoot(t, "x/README.md")
	got, err := s.Resolve("x")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "x/README.md" {
		t.Errorf("resolved = %q, want x/README.md", got)
	}
}

func TestResolveReadmeWinsOverIndex(t *testing.T) {
	s := tempRoot(t, "x/README.md", "x/index.md")
	got, err := s.Resolve("x")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "x/README.md" {
		t.Errorf("resolved = %q, want x/README.md", got)
	}
}

func TestResolveIndexFallback(t *testing.T) {
	s := tempRoot(t, "x/index.md")
	got, err := s.Resolve("x")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "x/index.md" {
		t.Errorf("resolved = %q, want x/index.md", got)
	}
}

func TestResolveEmptyPath(t *testing.T) {
	s := tempRoot(t, "a.md")
	for _, p := range []string{"", "/", "///"} {
		if _, err := s.Resolve(p); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("Resolve(%q) = %v, want ErrNotFound", p, err)
		}
	}
}

func TestResolveMissing(t *testing.T) {
	s := tempRoot(t, "a.md")
	if _, err := s.Resolve("missing.md"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestResolveTraversalBlocked(t *testing.T) {
	s := tempRoot(t, "a.md")

	cases := []string{
		"../../../etc/passwd",
		"../outside.md",
		"/etc/shadow",
		"a/../../escape.md",
	}
	for _, p := range cases {
		if _, err := s.Resolve(p); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("Resolve(%q) = %v, want ErrNotFound", p, err)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	s := tempRoot(t, "a/b.md")
	first, err := s.Resolve("a/b")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for i := 0; i < 3; i++ {
		got, err := s.Resolve("a/b")
		if err != nil || got != first {
			t.Fatalf("call %d: got %q, %v; want %q", i, got, err, first)
		}
	}
}

func TestWalkFindsMarkdownOnly(t *testing.T) {
	s := tempRoot(t, "a.md", "b.markdown", "sub/c.md")
	abs := filepath.Join(s.Root(), "notes.txt")
	if err := os.WriteFile(abs, []byte("not markdown"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := s.Walk()
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("len = %d, want 3: %v", len(files), files)
	}
	for _, f := range files {
		if f.Size == 0 {
			t.Errorf("file %s has zero size", f.Path)
		}
	}
}

func TestWalkExcludesHiddenDirectories(t *testing.T) {
	s := tempRoot(t, "a.md", ".git/notes.md", "sub/.hidden/doc.md")

	files, err := s.Walk()
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(files) != 1 || files[0].Path != "a.md" {
		t.Errorf("files = %v, want only a.md", files)
	}
}

func TestNewFSRejectsMissingRoot(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestNewFSRejectsFileRoot(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.md")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFS(f); err == nil {
		t.Error("expected error for non-directory root")
	}
}
