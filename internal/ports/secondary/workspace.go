// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// WorkspaceAdapter defines the secondary port for workspace file access.
// Paths are absolute unless stated otherwise.
type WorkspaceAdapter interface {
	// Workspace roots
	InWorkspace(path string) bool
	// ResolvePath resolves a workspace-relative path against the first root containing it.
	// Absolute paths are returned unchanged.
	ResolvePath(rel string) string

	// Existence checks
	FileExists(ctx context.Context, path string) (bool, error)
	DirectoryExists(ctx context.Context, path string) (bool, error)

	// File operations
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile replaces the content of an existing file.
	WriteFile(ctx context.Context, path string, content []byte) error
	// CreateFile writes a new file. It fails with an error matching os.ErrExist when the
	// path already exists.
	CreateFile(ctx context.Context, path string, content []byte) error
	// CreateDirectory creates one directory. It fails with an error matching os.ErrExist
	// when the path already exists.
	CreateDirectory(ctx context.Context, path string) error

	// ListMatching returns the files directly inside dir whose base name matches the glob
	// pattern, sorted by name.
	ListMatching(ctx context.Context, dir, pattern string) ([]string, error)
}
