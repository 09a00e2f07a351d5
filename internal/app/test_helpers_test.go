package app

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/example/ngfc/internal/ports/primary"
	"github.com/example/ngfc/internal/ports/secondary"
	"github.com/example/ngfc/internal/templates"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.WorkspaceAdapter     = (*mockWorkspaceAdapter)(nil)
	_ secondary.Prompter             = (*mockPrompter)(nil)
	_ secondary.ProgressReporter     = (*mockProgressReporter)(nil)
	_ secondary.GenerationRepository = (*mockGenerationRepository)(nil)
	_ secondary.Opener               = (*mockOpener)(nil)
	_ secondary.TemplateSource       = (*mockTemplateSource)(nil)
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// mockWorkspaceAdapter implements secondary.WorkspaceAdapter on an in-memory tree.
type mockWorkspaceAdapter struct {
	roots []string
	files map[string]string
	dirs  map[string]bool

	writes       int
	createDirErr error
	writeFileErr error
}

func newMockWorkspaceAdapter(roots ...string) *mockWorkspaceAdapter {
	m := &mockWorkspaceAdapter{
		roots: roots,
		files: make(map[string]string),
		dirs:  make(map[string]bool),
	}
	for _, r := range roots {
		m.dirs[r] = true
	}
	return m
}

// addFile seeds a file and its parent directories without counting a write.
func (m *mockWorkspaceAdapter) addFile(path, content string) {
	m.files[path] = content
	m.addDir(filepath.Dir(path))
}

func (m *mockWorkspaceAdapter) addDir(path string) {
	for dir := path; !m.dirs[dir]; dir = filepath.Dir(dir) {
		m.dirs[dir] = true
		if dir == filepath.Dir(dir) {
			break
		}
	}
}

func (m *mockWorkspaceAdapter) InWorkspace(path string) bool {
	for _, r := range m.roots {
		if path == r || strings.HasPrefix(path, r+"/") {
			return true
		}
	}
	return false
}

func (m *mockWorkspaceAdapter) ResolvePath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(m.roots[0], rel)
}

func (m *mockWorkspaceAdapter) FileExists(ctx context.Context, path string) (bool, error) {
	_, ok := m.files[path]
	return ok, nil
}

func (m *mockWorkspaceAdapter) DirectoryExists(ctx context.Context, path string) (bool, error) {
	return m.dirs[path], nil
}

func (m *mockWorkspaceAdapter) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, ok := m.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return []byte(content), nil
}

func (m *mockWorkspaceAdapter) WriteFile(ctx context.Context, path string, content []byte) error {
	if m.writeFileErr != nil {
		return m.writeFileErr
	}
	if _, ok := m.files[path]; !ok {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	m.files[path] = string(content)
	m.writes++
	return nil
}

func (m *mockWorkspaceAdapter) CreateFile(ctx context.Context, path string, content []byte) error {
	if _, ok := m.files[path]; ok || m.dirs[path] {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrExist}
	}
	m.files[path] = string(content)
	m.writes++
	return nil
}

func (m *mockWorkspaceAdapter) CreateDirectory(ctx context.Context, path string) error {
	if m.createDirErr != nil {
		return m.createDirErr
	}
	if _, ok := m.files[path]; ok || m.dirs[path] {
		return &os.PathError{Op: "mkdir", Path: path, Err: os.ErrExist}
	}
	m.dirs[path] = true
	m.writes++
	return nil
}

func (m *mockWorkspaceAdapter) ListMatching(ctx context.Context, dir, pattern string) ([]string, error) {
	var matches []string
	for path := range m.files {
		if filepath.Dir(path) != dir {
			continue
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			matches = append(matches, path)
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// mockPrompter implements secondary.Prompter with canned answers.
type mockPrompter struct {
	name    string
	nameErr error
	pick    int
	pickErr error

	namePrompts int
	pickOptions []string
}

func (m *mockPrompter) PromptName(ctx context.Context, prompt, defaultValue string, validate func(string) string) (string, error) {
	m.namePrompts++
	if m.nameErr != nil {
		return "", m.nameErr
	}
	if msg := validate(m.name); msg != "" {
		return "", primary.ErrPromptDismissed
	}
	return m.name, nil
}

func (m *mockPrompter) PickOne(ctx context.Context, title string, options []string) (int, error) {
	m.pickOptions = options
	if m.pickErr != nil {
		return 0, m.pickErr
	}
	return m.pick, nil
}

// mockProgressReporter implements secondary.ProgressReporter and records messages.
type mockProgressReporter struct {
	messages []string
}

func (m *mockProgressReporter) Start(message string) secondary.Progress {
	m.messages = append(m.messages, message)
	return &mockProgress{reporter: m}
}

func (m *mockProgressReporter) Warn(message string) {
	m.messages = append(m.messages, "warn: "+message)
}

type mockProgress struct {
	reporter *mockProgressReporter
}

func (p *mockProgress) Success(message string) {
	p.reporter.messages = append(p.reporter.messages, "ok: "+message)
}

func (p *mockProgress) Fail(message string) {
	p.reporter.messages = append(p.reporter.messages, "fail: "+message)
}

// mockGenerationRepository implements secondary.GenerationRepository in memory.
type mockGenerationRepository struct {
	records   []*secondary.GenerationRecord
	createErr error
	listErr   error

	lastFilters secondary.GenerationFilters
}

func (m *mockGenerationRepository) Create(ctx context.Context, record *secondary.GenerationRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockGenerationRepository) GetByID(ctx context.Context, id string) (*secondary.GenerationRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.Mark(errors.Newf("generation %s not found", id), secondary.ErrGenerationNotFound)
}

func (m *mockGenerationRepository) List(ctx context.Context, filters secondary.GenerationFilters) ([]*secondary.GenerationRecord, error) {
	m.lastFilters = filters
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

// mockOpener implements secondary.Opener.
type mockOpener struct {
	opened  []string
	openErr error
}

func (m *mockOpener) Open(ctx context.Context, path string) error {
	if m.openErr != nil {
		return m.openErr
	}
	m.opened = append(m.opened, path)
	return nil
}

// mockTemplateSource serves built-in templates plus overrides.
type mockTemplateSource struct {
	overrides map[string]string
}

func (m *mockTemplateSource) Load(ctx context.Context, location string) (string, error) {
	if content, ok := m.overrides[location]; ok {
		return content, nil
	}
	return templates.GetTestTemplate(strings.TrimPrefix(location, secondary.BuiltinPrefix))
}
