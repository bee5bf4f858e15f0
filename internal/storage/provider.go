package storage

// FileInfo describes a documentation file discovered under the docs root.
type FileInfo struct {
	// Path is the slash-separated path relative to the docs root.
	Path string
	// Size is the file size in bytes.
	Size int64
}

// Provider abstracts read-only access to the documentation tree.
type Provider interface {
	// Resolve maps a caller-supplied logical path to the relative path of a
	// concrete file. Returns apperr.ErrNotFound when nothing matches,
	// including any path that would escape the docs root.
	Resolve(logical string) (string, error)

	// Read returns the raw bytes of a file previously resolved or discovered.
	Read(rel string) ([]byte, error)

	// Walk enumerates every Markdown file under the root, excluding files
	// inside hidden directories, in no particular order.
	Walk() ([]FileInfo, error)

	// Root returns the absolute docs root directory.
	Root() string
}
