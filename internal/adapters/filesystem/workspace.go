// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"

	"github.com/example/ngfc/internal/ports/secondary"
)

// WorkspaceAdapter implements secondary.WorkspaceAdapter on the local filesystem.
type WorkspaceAdapter struct {
	roots []string
}

// NewWorkspaceAdapter creates a workspace adapter for the given roots.
// If no roots are given, the working directory is used.
func NewWorkspaceAdapter(roots ...string) (*WorkspaceAdapter, error) {
	if len(roots) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get working directory")
		}
		roots = []string{wd}
	}

	abs := make([]string, 0, len(roots))
	for _, r := range roots {
		p, err := filepath.Abs(r)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve workspace root %s", r)
		}
		abs = append(abs, filepath.Clean(p))
	}
	return &WorkspaceAdapter{roots: abs}, nil
}

// Roots returns the absolute workspace roots.
func (a *WorkspaceAdapter) Roots() []string {
	return append([]string(nil), a.roots...)
}

// InWorkspace reports whether path is one of the roots or lies below one.
func (a *WorkspaceAdapter) InWorkspace(path string) bool {
	for _, root := range a.roots {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			continue
		}
		if rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// ResolvePath resolves rel against the first root in which it exists, else the first root.
func (a *WorkspaceAdapter) ResolvePath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	for _, root := range a.roots {
		p := filepath.Join(root, rel)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(a.roots[0], rel)
}

// FileExists checks if a file (or any non-directory entry) exists.
func (a *WorkspaceAdapter) FileExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to check file")
	}
	return !info.IsDir(), nil
}

// DirectoryExists checks if a directory exists.
func (a *WorkspaceAdapter) DirectoryExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to check directory")
	}
	return info.IsDir(), nil
}

// ReadFile reads a whole file.
func (a *WorkspaceAdapter) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return content, nil
}

// WriteFile replaces the content of an existing file, keeping its permissions.
func (a *WorkspaceAdapter) WriteFile(ctx context.Context, path string, content []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	if err := os.WriteFile(path, content, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// CreateFile writes a new file. An existing file is never overwritten.
func (a *WorkspaceAdapter) CreateFile(ctx context.Context, path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}
	return nil
}

// CreateDirectory creates a single directory. An existing directory is an error.
func (a *WorkspaceAdapter) CreateDirectory(ctx context.Context, path string) error {
	if err := os.Mkdir(path, 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", path)
	}
	return nil
}

// ListMatching lists the files in dir whose base names match pattern.
func (a *WorkspaceAdapter) ListMatching(ctx context.Context, dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Newf("invalid file pattern %q", pattern)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := doublestar.Match(pattern, e.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to match %s", e.Name())
		}
		if ok {
			matches = append(matches, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// Ensure WorkspaceAdapter implements the interface
var _ secondary.WorkspaceAdapter = (*WorkspaceAdapter)(nil)
