package filesystem

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/example/ngfc/internal/ports/primary"
	"github.com/example/ngfc/internal/ports/secondary"
	"github.com/example/ngfc/internal/templates"
)

// DefaultTemplateCacheSize is the number of templates kept in memory.
const DefaultTemplateCacheSize = 32

// TemplateStore implements secondary.TemplateSource. Built-in templates come from the
// embedded set, other locations are read from the workspace. Loaded templates are cached.
type TemplateStore struct {
	workspace secondary.WorkspaceAdapter
	cache     *lru.Cache[string, string]
}

// NewTemplateStore creates a template store caching up to size templates.
func NewTemplateStore(workspace secondary.WorkspaceAdapter, size int) (*TemplateStore, error) {
	if size <= 0 {
		size = DefaultTemplateCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create template cache")
	}
	return &TemplateStore{workspace: workspace, cache: cache}, nil
}

// Load returns the template at location.
func (s *TemplateStore) Load(ctx context.Context, location string) (string, error) {
	if content, ok := s.cache.Get(location); ok {
		return content, nil
	}

	var content string
	if name, ok := strings.CutPrefix(location, secondary.BuiltinPrefix); ok {
		c, err := templates.GetTestTemplate(name)
		if err != nil {
			err = errors.Mark(errors.Wrapf(err, "unknown built-in template %s", location), primary.ErrNoTemplate)
			return "", errors.WithHintf(err, "built-in templates: %s", strings.Join(templates.TestTemplateNames(), ", "))
		}
		content = c
	} else {
		path := s.workspace.ResolvePath(location)
		c, err := s.workspace.ReadFile(ctx, path)
		if err != nil {
			err = errors.Mark(errors.Wrapf(err, "failed to load template %s", location), primary.ErrNoTemplate)
			return "", errors.WithHint(err, "template paths are relative to the workspace root; check .ngfc/config.yaml")
		}
		content = string(c)
	}

	s.cache.Add(location, content)
	return content, nil
}

// Ensure TemplateStore implements the interface
var _ secondary.TemplateSource = (*TemplateStore)(nil)
