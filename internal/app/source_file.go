package app

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/example/ngfc/internal/ports/secondary"
)

// SourceFile is a workspace file with lazily read, cached content. Writing through
// the handle replaces the cache.
type SourceFile struct {
	path      string
	workspace secondary.WorkspaceAdapter
	content   *string
}

// NewSourceFile creates a handle for path.
func NewSourceFile(workspace secondary.WorkspaceAdapter, path string) *SourceFile {
	return &SourceFile{path: path, workspace: workspace}
}

// Path returns the file path.
func (f *SourceFile) Path() string { return f.path }

// Content reads the file on first use.
func (f *SourceFile) Content(ctx context.Context) (string, error) {
	if f.content != nil {
		return *f.content, nil
	}
	data, err := f.workspace.ReadFile(ctx, f.path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", f.path)
	}
	text := string(data)
	f.content = &text
	return text, nil
}

// Write replaces the file content.
func (f *SourceFile) Write(ctx context.Context, text string) error {
	f.content = nil
	if err := f.workspace.WriteFile(ctx, f.path, []byte(text)); err != nil {
		return errors.Wrapf(err, "failed to write %s", f.path)
	}
	f.content = &text
	return nil
}
