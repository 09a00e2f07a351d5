package app

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/example/ngfc/internal/core/modulefile"
	"github.com/example/ngfc/internal/ports/primary"
	"github.com/example/ngfc/internal/ports/secondary"
)

// OwningModule is the module that declares a class.
type OwningModule struct {
	Path       string
	ClassName  string
	ImportPath string // from the class's directory, "./"-prefixed, without ".ts"
}

// ModuleLocator finds module files above a directory.
type ModuleLocator struct {
	workspace secondary.WorkspaceAdapter
	pattern   string
	logger    *zap.SugaredLogger
}

// NewModuleLocator creates a locator matching module file names against pattern.
func NewModuleLocator(workspace secondary.WorkspaceAdapter, pattern string, logger *zap.SugaredLogger) *ModuleLocator {
	return &ModuleLocator{workspace: workspace, pattern: pattern, logger: logger}
}

// FindModules lists module files in startDir and then in each ancestor that is still
// inside a workspace root, nearest first.
func (l *ModuleLocator) FindModules(ctx context.Context, startDir string) ([]string, error) {
	var modules []string
	dir := filepath.Clean(startDir)
	for {
		found, err := l.workspace.ListMatching(ctx, dir, l.pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list modules in %s", dir)
		}
		modules = append(modules, found...)

		parent := filepath.Dir(dir)
		if parent == dir || !l.workspace.InWorkspace(parent) {
			break
		}
		dir = parent
	}
	l.logger.Debugw("modules located", "start", startDir, "count", len(modules))
	return modules, nil
}

// FindOwningModule returns the nearest module that mentions className and exports a
// module class. The error matches primary.ErrModuleNotFound when there is none.
func (l *ModuleLocator) FindOwningModule(ctx context.Context, dir, className string) (*OwningModule, error) {
	candidates, err := l.FindModules(ctx, dir)
	if err != nil {
		return nil, err
	}

	for _, path := range candidates {
		text, err := NewSourceFile(l.workspace, path).Content(ctx)
		if err != nil {
			l.logger.Warnw("skipping unreadable module", "path", path, "error", err)
			continue
		}
		if !modulefile.ReferencesClass(text, className) {
			continue
		}
		moduleClass, ok := modulefile.ExportedModuleClass(text)
		if !ok {
			continue
		}
		return &OwningModule{
			Path:       path,
			ClassName:  moduleClass,
			ImportPath: modulefile.ImportPath(dir, path),
		}, nil
	}

	err = errors.Mark(errors.Newf("could not find a module for non-standalone class %s", className), primary.ErrModuleNotFound)
	return nil, errors.WithHintf(err, "declare %s in a module above %s, or mark it standalone", className, dir)
}
