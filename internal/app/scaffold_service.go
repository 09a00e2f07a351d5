package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/example/ngfc/internal/core/effects"
	"github.com/example/ngfc/internal/core/naming"
	corescaffold "github.com/example/ngfc/internal/core/scaffold"
	"github.com/example/ngfc/internal/ports/primary"
	"github.com/example/ngfc/internal/ports/secondary"
)

// SkipModuleOption is the last choice of the module prompt.
const SkipModuleOption = "Do not add to a module"

// ScaffoldOptions holds the naming convention and output settings for new artifacts.
type ScaffoldOptions struct {
	Prefix     naming.Parts
	StyleExt   string
	Standalone bool
}

// namePrompt describes the class name prompt of one artifact kind.
type namePrompt struct {
	prompt       string
	defaultValue string
	example      string
}

var namePrompts = map[string]namePrompt{
	corescaffold.ArtifactComponent: {"Name of component class", "NewComponent", "TestComponent FooBarComponent"},
	corescaffold.ArtifactDirective: {"Name of directive class", "NewDirective", "TestDirective, FooBarDirective"},
	corescaffold.ArtifactModule:    {"Name of module class", "NewModule", "TestModule FooBarModule"},
}

// ScaffoldServiceImpl implements the ScaffoldService interface.
type ScaffoldServiceImpl struct {
	workspace secondary.WorkspaceAdapter
	locator   *ModuleLocator
	modifier  *ModuleModifier
	prompter  secondary.Prompter
	progress  secondary.ProgressReporter
	executor  EffectExecutor
	logger    *zap.SugaredLogger
	opts      ScaffoldOptions
}

// NewScaffoldService creates a new ScaffoldService with injected dependencies.
func NewScaffoldService(
	workspace secondary.WorkspaceAdapter,
	locator *ModuleLocator,
	modifier *ModuleModifier,
	prompter secondary.Prompter,
	progress secondary.ProgressReporter,
	executor EffectExecutor,
	logger *zap.SugaredLogger,
	opts ScaffoldOptions,
) *ScaffoldServiceImpl {
	return &ScaffoldServiceImpl{
		workspace: workspace,
		locator:   locator,
		modifier:  modifier,
		prompter:  prompter,
		progress:  progress,
		executor:  executor,
		logger:    logger,
		opts:      opts,
	}
}

// CreateComponent creates a component folder and offers to add it to a module.
func (s *ScaffoldServiceImpl) CreateComponent(ctx context.Context, req primary.CreateArtifactRequest) (*primary.CreateArtifactResponse, error) {
	return s.create(ctx, corescaffold.ArtifactComponent, req)
}

// CreateDirective creates a directive file and offers to add it to a module.
func (s *ScaffoldServiceImpl) CreateDirective(ctx context.Context, req primary.CreateArtifactRequest) (*primary.CreateArtifactResponse, error) {
	return s.create(ctx, corescaffold.ArtifactDirective, req)
}

// CreateModule creates a module folder.
func (s *ScaffoldServiceImpl) CreateModule(ctx context.Context, req primary.CreateArtifactRequest) (*primary.CreateArtifactResponse, error) {
	return s.create(ctx, corescaffold.ArtifactModule, req)
}

func (s *ScaffoldServiceImpl) create(ctx context.Context, kind string, req primary.CreateArtifactRequest) (*primary.CreateArtifactResponse, error) {
	// 1. Guard the target directory
	if err := s.checkTarget(ctx, kind, req.TargetDir); err != nil {
		return nil, err
	}

	// 2. Get a valid class name
	className, err := s.className(ctx, kind, req.Name)
	if err != nil {
		return nil, err
	}
	parts := corescaffold.NameParts(kind, className, s.opts.Prefix)
	if len(parts) == 0 {
		return nil, errors.Mark(
			errors.Newf("%s leaves no name once its suffix and prefix are removed", className),
			primary.ErrInvalidName)
	}

	// 3. Generate plan
	plan, err := corescaffold.Plan(kind, corescaffold.PlanInput{
		TargetDir:  req.TargetDir,
		Name:       parts,
		Prefix:     s.opts.Prefix,
		StyleExt:   s.opts.StyleExt,
		Standalone: s.opts.Standalone,
	})
	if err != nil {
		return nil, err
	}

	// 4. Guard against existing files
	exists, err := s.exists(ctx, plan.Root)
	if err != nil {
		return nil, err
	}
	if result := corescaffold.CanCreateArtifact(corescaffold.CreateArtifactContext{Path: plan.Root, PathExists: exists}); !result.Allowed {
		return nil, errors.Mark(result.Error(), primary.ErrAlreadyExists)
	}

	resp := &primary.CreateArtifactResponse{
		ClassName: plan.ClassName,
		Selector:  plan.Selector,
		MainFile:  plan.MainFile,
		Files:     plannedFiles(plan.FilesystemOps),
		DryRun:    req.DryRun,
	}
	if req.DryRun {
		return resp, nil
	}

	// 5. Execute effects
	if err := s.executor.Execute(ctx, plan.Effects()); err != nil {
		return nil, err
	}
	s.logger.Infow("artifact created", "kind", kind, "class", plan.ClassName, "path", plan.Root)

	// 6. Module step
	if s.offersModule(kind, req) {
		modulePath, warnings, err := s.addToModule(ctx, req, plan)
		if err != nil {
			return nil, err
		}
		resp.ModulePath = modulePath
		resp.Warnings = append(resp.Warnings, warnings...)
	}

	// 7. Record and open
	s.finish(ctx, kind, req, resp)
	return resp, nil
}

func (s *ScaffoldServiceImpl) checkTarget(ctx context.Context, kind, target string) error {
	var isDir bool
	exists := false
	if target != "" {
		var err error
		isDir, err = s.workspace.DirectoryExists(ctx, target)
		if err != nil {
			return errors.Wrapf(err, "failed to check %s", target)
		}
		exists = isDir
		if !isDir {
			if exists, err = s.workspace.FileExists(ctx, target); err != nil {
				return errors.Wrapf(err, "failed to check %s", target)
			}
		}
	}

	result := corescaffold.CanUseTarget(corescaffold.TargetContext{Kind: kind, Path: target, Exists: exists, IsDir: isDir})
	if !result.Allowed {
		return errors.Mark(result.Error(), primary.ErrInvalidTarget)
	}
	return nil
}

func (s *ScaffoldServiceImpl) className(ctx context.Context, kind, name string) (string, error) {
	p := namePrompts[kind]
	validate := func(v string) string { return naming.ValidateClassName(v, p.example) }

	if name == "" {
		return s.prompter.PromptName(ctx, p.prompt, p.defaultValue, validate)
	}
	if msg := validate(name); msg != "" {
		return "", errors.Mark(errors.Newf("invalid name %q: %s", name, msg), primary.ErrInvalidName)
	}
	return name, nil
}

func (s *ScaffoldServiceImpl) exists(ctx context.Context, path string) (bool, error) {
	isDir, err := s.workspace.DirectoryExists(ctx, path)
	if err != nil || isDir {
		return isDir, err
	}
	return s.workspace.FileExists(ctx, path)
}

func (s *ScaffoldServiceImpl) offersModule(kind string, req primary.CreateArtifactRequest) bool {
	if kind == corescaffold.ArtifactModule || req.NoModule {
		return false
	}
	return !s.opts.Standalone
}

// addToModule picks a module (flag or prompt) and edits it. A dismissed choice skips the
// step with a warning; the scaffold files stay in place.
func (s *ScaffoldServiceImpl) addToModule(ctx context.Context, req primary.CreateArtifactRequest, plan corescaffold.ArtifactPlan) (string, []string, error) {
	modulePath := req.ModulePath
	if modulePath != "" {
		modulePath = s.workspace.ResolvePath(modulePath)
	} else {
		progress := s.progress.Start("Looking for modules")
		modules, err := s.locator.FindModules(ctx, req.TargetDir)
		if err != nil {
			progress.Fail("Could not look for modules")
			return "", []string{"Could not look for modules: " + err.Error()}, nil
		}
		progress.Success(fmt.Sprintf("Found %d module(s)", len(modules)))
		if len(modules) == 0 {
			return "", nil, nil
		}

		options := make([]string, 0, len(modules)+1)
		for _, m := range modules {
			rel, err := filepath.Rel(req.TargetDir, m)
			if err != nil {
				rel = m
			}
			options = append(options, rel)
		}
		options = append(options, SkipModuleOption)

		choice, err := s.prompter.PickOne(ctx, "Add to module", options)
		if errors.Is(err, primary.ErrPromptDismissed) {
			return "", []string{plan.ClassName + " was not added to a module"}, nil
		}
		if err != nil {
			return "", nil, err
		}
		if choice >= len(modules) {
			return "", nil, nil
		}
		modulePath = modules[choice]
	}

	progress := s.progress.Start("Adding " + plan.ClassName + " to " + filepath.Base(modulePath))
	warnings := s.modifier.AddToModule(ctx, modulePath, plan.ClassName, plan.MainFile)
	if len(warnings) > 0 {
		progress.Fail("Module only partially updated")
	} else {
		progress.Success("Added " + plan.ClassName + " to " + filepath.Base(modulePath))
	}
	return modulePath, warnings, nil
}

func (s *ScaffoldServiceImpl) finish(ctx context.Context, kind string, req primary.CreateArtifactRequest, resp *primary.CreateArtifactResponse) {
	files := make([]string, 0, len(resp.Files))
	for _, f := range resp.Files {
		if !f.IsDir {
			files = append(files, f.Path)
		}
	}
	effs := []effects.Effect{effects.PersistEffect{
		Entity:    EntityGeneration,
		Operation: OpCreate,
		Data: &secondary.GenerationRecord{
			Command:    kind,
			Target:     req.TargetDir,
			Files:      files,
			ModulePath: resp.ModulePath,
			Warnings:   resp.Warnings,
		},
	}}
	if req.Open {
		effs = append(effs, effects.OpenEffect{Path: resp.MainFile})
	}
	if err := s.executor.Execute(ctx, effs); err != nil {
		resp.Warnings = append(resp.Warnings, "Could not open "+resp.MainFile)
		s.logger.Warnw("open failed", "path", resp.MainFile, "error", err)
	}
}

func plannedFiles(ops []effects.FileEffect) []primary.PlannedFile {
	files := make([]primary.PlannedFile, 0, len(ops))
	for _, op := range ops {
		files = append(files, primary.PlannedFile{
			Path:    op.Path,
			Content: string(op.Content),
			IsDir:   op.Operation == effects.OpMkdir,
		})
	}
	return files
}

// Ensure ScaffoldServiceImpl implements the interface
var _ primary.ScaffoldService = (*ScaffoldServiceImpl)(nil)
