package app

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/example/ngfc/internal/core/classify"
	"github.com/example/ngfc/internal/core/effects"
	"github.com/example/ngfc/internal/core/testgen"
	"github.com/example/ngfc/internal/ports/primary"
	"github.com/example/ngfc/internal/ports/secondary"
)

// Commands recorded in the generation history.
const (
	CommandUnitTest = "unit-test"
	CommandHarness  = "harness"
)

// templateMinimal is reported as the template of files without an exported class.
const templateMinimal = "minimal"

// TestOptions holds the template configuration for test generation.
type TestOptions struct {
	Rules          []testgen.TemplateRule
	HarnessStatic  string
	HarnessDynamic string
}

// TestServiceImpl implements the TestService interface.
type TestServiceImpl struct {
	workspace  secondary.WorkspaceAdapter
	classifier classify.Classifier
	templates  secondary.TemplateSource
	locator    *ModuleLocator
	executor   EffectExecutor
	logger     *zap.SugaredLogger
	opts       TestOptions
}

// NewTestService creates a new TestService with injected dependencies.
func NewTestService(
	workspace secondary.WorkspaceAdapter,
	classifier classify.Classifier,
	templates secondary.TemplateSource,
	locator *ModuleLocator,
	executor EffectExecutor,
	logger *zap.SugaredLogger,
	opts TestOptions,
) *TestServiceImpl {
	if opts.HarnessStatic == "" {
		opts.HarnessStatic = testgen.HarnessStatic
	}
	if opts.HarnessDynamic == "" {
		opts.HarnessDynamic = testgen.HarnessDynamic
	}
	return &TestServiceImpl{
		workspace:  workspace,
		classifier: classifier,
		templates:  templates,
		locator:    locator,
		executor:   executor,
		logger:     logger,
		opts:       opts,
	}
}

// CreateUnitTest writes the unit test for a source file.
func (s *TestServiceImpl) CreateUnitTest(ctx context.Context, req primary.CreateTestRequest) (*primary.CreateTestResponse, error) {
	source := req.SourcePath

	// 1. Guard source and output
	if !testgen.IsSourceFile(source) {
		return nil, errors.Mark(errors.Newf("must select a .ts file to create a unit test, got %s", source), primary.ErrInvalidTarget)
	}
	if err := s.requireFile(ctx, source); err != nil {
		return nil, err
	}
	specPath := testgen.SpecPath(source)
	if err := s.requireAbsent(ctx, specPath, "test file"); err != nil {
		return nil, err
	}

	// 2. Classify
	d, err := s.classify(ctx, source)
	if err != nil {
		return nil, err
	}

	resp := &primary.CreateTestResponse{TestPath: specPath, Template: templateMinimal}
	content := testgen.MinimalTest
	if d != nil {
		resp.ClassName = d.ClassName
		resp.Warnings = append(resp.Warnings, d.Warnings...)

		// 3. Load template
		resp.Template = testgen.SelectUnitTestTemplate(d, s.opts.Rules)
		template, err := s.templates.Load(ctx, resp.Template)
		if err != nil {
			return nil, err
		}

		// 4. Resolve the owning module; a test without it would not compile
		var module *testgen.ModuleRef
		if needsModule(d) {
			owner, err := s.locator.FindOwningModule(ctx, filepath.Dir(source), d.ClassName)
			if err != nil {
				return nil, err
			}
			module = &testgen.ModuleRef{ClassName: owner.ClassName, ImportPath: owner.ImportPath}
		}

		// 5. Create the harness the test imports
		if d.Kind == classify.KindComponent && testgen.NeedsHarness(template) {
			harnessPath := testgen.HarnessPath(source)
			exists, err := s.workspace.FileExists(ctx, harnessPath)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to check %s", harnessPath)
			}
			if !exists {
				if _, err := s.writeHarness(ctx, source, d); err != nil {
					return nil, errors.Wrap(err, "failed to create harness")
				}
				resp.HarnessPath = harnessPath
			}
		}

		content = testgen.Render(testgen.RenderInput{
			Template:   template,
			Descriptor: d,
			SourcePath: source,
			Module:     module,
		})
	}

	// 6. Write
	if err := s.executor.Execute(ctx, []effects.Effect{writeEffect(specPath, content)}); err != nil {
		return nil, err
	}
	s.logger.Infow("unit test created", "path", specPath, "template", resp.Template)

	files := []string{specPath}
	if resp.HarnessPath != "" {
		files = append([]string{resp.HarnessPath}, files...)
	}
	s.finish(ctx, CommandUnitTest, source, files, req.Open, specPath, resp)
	return resp, nil
}

// CreateHarness writes the harness for a component.
func (s *TestServiceImpl) CreateHarness(ctx context.Context, req primary.CreateTestRequest) (*primary.CreateTestResponse, error) {
	source, ok := testgen.ComponentSourcePath(req.SourcePath)
	if !ok {
		return nil, errors.Mark(errors.Newf("must select a component file to create a harness, got %s", req.SourcePath), primary.ErrInvalidTarget)
	}
	if err := s.requireFile(ctx, source); err != nil {
		return nil, err
	}
	harnessPath := testgen.HarnessPath(source)
	if err := s.requireAbsent(ctx, harnessPath, "harness"); err != nil {
		return nil, err
	}

	d, err := s.classify(ctx, source)
	if err != nil {
		return nil, err
	}
	if d == nil || d.Kind != classify.KindComponent {
		return nil, errors.Mark(errors.Newf("no component class found in %s", filepath.Base(source)), primary.ErrInvalidTarget)
	}

	resp, err := s.writeHarness(ctx, source, d)
	if err != nil {
		return nil, err
	}
	resp.Warnings = append(resp.Warnings, d.Warnings...)

	s.finish(ctx, CommandHarness, source, []string{harnessPath}, req.Open, harnessPath, resp)
	return resp, nil
}

func (s *TestServiceImpl) writeHarness(ctx context.Context, source string, d *classify.Descriptor) (*primary.CreateTestResponse, error) {
	if d.Selector == "" {
		return nil, errors.Mark(errors.Newf("could not find a selector in %s", filepath.Base(source)), primary.ErrInvalidTarget)
	}

	markup := ""
	markupPath := testgen.MarkupPath(source)
	if ok, _ := s.workspace.FileExists(ctx, markupPath); ok {
		data, err := s.workspace.ReadFile(ctx, markupPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", markupPath)
		}
		markup = string(data)
	}

	location := testgen.SelectHarnessTemplate(markup, s.opts.HarnessStatic, s.opts.HarnessDynamic)
	template, err := s.templates.Load(ctx, location)
	if err != nil {
		return nil, err
	}

	harnessPath := testgen.HarnessPath(source)
	content := testgen.Render(testgen.RenderInput{Template: template, Descriptor: d, SourcePath: source})
	if err := s.executor.Execute(ctx, []effects.Effect{writeEffect(harnessPath, content)}); err != nil {
		return nil, err
	}
	s.logger.Infow("harness created", "path", harnessPath, "template", location)

	return &primary.CreateTestResponse{
		ClassName: d.ClassName,
		Template:  location,
		TestPath:  harnessPath,
	}, nil
}

func (s *TestServiceImpl) classify(ctx context.Context, source string) (*classify.Descriptor, error) {
	text, err := NewSourceFile(s.workspace, source).Content(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.classifier.Classify(ctx, source, []byte(text))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to classify %s", source)
	}
	return d, nil
}

func (s *TestServiceImpl) requireFile(ctx context.Context, path string) error {
	exists, err := s.workspace.FileExists(ctx, path)
	if err != nil {
		return errors.Wrapf(err, "failed to check %s", path)
	}
	if !exists {
		return errors.Mark(errors.Newf("%s is not a file", path), primary.ErrInvalidTarget)
	}
	return nil
}

func (s *TestServiceImpl) requireAbsent(ctx context.Context, path, what string) error {
	exists, err := s.workspace.FileExists(ctx, path)
	if err != nil {
		return errors.Wrapf(err, "failed to check %s", path)
	}
	if exists {
		return errors.Mark(errors.Newf("a %s with the name %s already exists", what, path), primary.ErrAlreadyExists)
	}
	return nil
}

func (s *TestServiceImpl) finish(ctx context.Context, command, target string, files []string, open bool, main string, resp *primary.CreateTestResponse) {
	effs := []effects.Effect{effects.PersistEffect{
		Entity:    EntityGeneration,
		Operation: OpCreate,
		Data: &secondary.GenerationRecord{
			Command:  command,
			Target:   target,
			Files:    files,
			Warnings: resp.Warnings,
		},
	}}
	if open {
		effs = append(effs, effects.OpenEffect{Path: main})
	}
	if err := s.executor.Execute(ctx, effs); err != nil {
		resp.Warnings = append(resp.Warnings, "Could not open "+main)
		s.logger.Warnw("open failed", "path", main, "error", err)
	}
}

// needsModule reports whether a test must import the module declaring the class.
func needsModule(d *classify.Descriptor) bool {
	return (d.Kind == classify.KindComponent || d.Kind == classify.KindDirective) && !d.Standalone
}

func writeEffect(path, content string) effects.FileEffect {
	return effects.FileEffect{Operation: effects.OpWrite, Path: path, Content: []byte(content), Mode: 0644}
}

// Ensure TestServiceImpl implements the interface
var _ primary.TestService = (*TestServiceImpl)(nil)
