package scaffold

import (
	"bytes"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/example/ngfc/internal/core/effects"
	"github.com/example/ngfc/internal/core/naming"
	scaffoldtmpl "github.com/example/ngfc/internal/templates/scaffold"
)

// DefaultStyleExtension is used when no stylesheet extension is configured.
const DefaultStyleExtension = "less"

// NameParts turns a user supplied class name into the word parts of the artifact name.
// Components and modules lose their type suffix and the configured prefix; directives
// only lose their suffix.
func NameParts(kind, className string, prefix naming.Parts) naming.Parts {
	parts := naming.SplitIntoParts(className)
	switch kind {
	case ArtifactComponent:
		return naming.TrimSuffixAndPrefix(parts, "component", prefix)
	case ArtifactDirective:
		return naming.TrimSuffixAndPrefix(parts, "directive", nil)
	case ArtifactModule:
		return naming.TrimSuffixAndPrefix(parts, "module", prefix)
	default:
		return parts
	}
}

// PlanInput contains pre-computed data for artifact planning.
type PlanInput struct {
	TargetDir  string
	Name       naming.Parts // From NameParts, never empty
	Prefix     naming.Parts
	StyleExt   string // Without the leading dot; DefaultStyleExtension when empty
	Standalone bool
}

// ArtifactPlan represents the planned effects for creating an artifact.
type ArtifactPlan struct {
	Kind      string
	ClassName string
	Selector  string
	// Root is the entry whose existence blocks creation: the new folder, or the directive file.
	Root string
	// MainFile is the source file declaring the class.
	MainFile      string
	FilesystemOps []effects.FileEffect
}

// Effects returns all effects as a flat slice for execution.
func (p ArtifactPlan) Effects() []effects.Effect {
	result := make([]effects.Effect, 0, len(p.FilesystemOps))
	for _, e := range p.FilesystemOps {
		result = append(result, e)
	}
	return result
}

// artifactData is the data passed to artifact templates.
type artifactData struct {
	ClassName  string
	Selector   string
	FileStem   string
	Standalone bool
}

// PlanComponent creates a plan for a component folder with source, markup and stylesheet.
// This is a pure function - all input data must be pre-fetched.
func PlanComponent(input PlanInput) (ArtifactPlan, error) {
	folder := filepath.Join(input.TargetDir, naming.FolderName(input.Name))
	styleExt := strings.TrimPrefix(input.StyleExt, ".")
	if styleExt == "" {
		styleExt = DefaultStyleExtension
	}

	plan := ArtifactPlan{
		Kind:      ArtifactComponent,
		ClassName: naming.ComponentClassName(input.Name),
		Selector:  naming.TagSelector(input.Prefix, input.Name),
		Root:      folder,
		MainFile:  filepath.Join(folder, naming.FileName(input.Name, naming.ComponentSuffix+naming.SourceExt)),
	}
	data := artifactData{
		ClassName:  plan.ClassName,
		Selector:   plan.Selector,
		FileStem:   naming.FolderName(input.Name),
		Standalone: input.Standalone,
	}

	plan.FilesystemOps = append(plan.FilesystemOps, mkdir(folder))
	files := []struct {
		template string
		path     string
	}{
		{scaffoldtmpl.ComponentSource, plan.MainFile},
		{scaffoldtmpl.ComponentMarkup, filepath.Join(folder, naming.FileName(input.Name, naming.ComponentSuffix+naming.MarkupExt))},
		{scaffoldtmpl.ComponentStyle, filepath.Join(folder, naming.FileName(input.Name, naming.ComponentSuffix+"."+styleExt))},
	}
	for _, f := range files {
		op, err := write(f.template, f.path, data)
		if err != nil {
			return ArtifactPlan{}, err
		}
		plan.FilesystemOps = append(plan.FilesystemOps, op)
	}
	return plan, nil
}

// PlanDirective creates a plan for a single directive file in the target directory.
// This is a pure function - all input data must be pre-fetched.
func PlanDirective(input PlanInput) (ArtifactPlan, error) {
	path := filepath.Join(input.TargetDir, naming.FileName(input.Name, naming.DirectiveSuffix+naming.SourceExt))
	plan := ArtifactPlan{
		Kind:      ArtifactDirective,
		ClassName: naming.DirectiveClassName(input.Name),
		Selector:  naming.DirectiveSelector(input.Prefix, input.Name),
		Root:      path,
		MainFile:  path,
	}

	op, err := write(scaffoldtmpl.DirectiveSource, path, artifactData{
		ClassName:  plan.ClassName,
		Selector:   plan.Selector,
		FileStem:   naming.FolderName(input.Name),
		Standalone: input.Standalone,
	})
	if err != nil {
		return ArtifactPlan{}, err
	}
	plan.FilesystemOps = append(plan.FilesystemOps, op)
	return plan, nil
}

// PlanModule creates a plan for a module folder holding an empty NgModule.
// This is a pure function - all input data must be pre-fetched.
func PlanModule(input PlanInput) (ArtifactPlan, error) {
	folder := filepath.Join(input.TargetDir, naming.FolderName(input.Name))
	plan := ArtifactPlan{
		Kind:      ArtifactModule,
		ClassName: naming.ModuleClassName(input.Prefix, input.Name),
		Root:      folder,
		MainFile:  filepath.Join(folder, naming.FileName(input.Name, naming.ModuleSuffix+naming.SourceExt)),
	}

	op, err := write(scaffoldtmpl.ModuleSource, plan.MainFile, artifactData{
		ClassName: plan.ClassName,
		FileStem:  naming.FolderName(input.Name),
	})
	if err != nil {
		return ArtifactPlan{}, err
	}
	plan.FilesystemOps = append(plan.FilesystemOps, mkdir(folder), op)
	return plan, nil
}

// Plan dispatches to the planner for kind.
func Plan(kind string, input PlanInput) (ArtifactPlan, error) {
	switch kind {
	case ArtifactComponent:
		return PlanComponent(input)
	case ArtifactDirective:
		return PlanDirective(input)
	case ArtifactModule:
		return PlanModule(input)
	default:
		return ArtifactPlan{}, errors.Newf("unknown artifact kind: %s", kind)
	}
}

func mkdir(path string) effects.FileEffect {
	return effects.FileEffect{
		Operation: effects.OpMkdir,
		Path:      path,
		Mode:      0755,
	}
}

func write(name, path string, data artifactData) (effects.FileEffect, error) {
	content, err := render(name, data)
	if err != nil {
		return effects.FileEffect{}, err
	}
	return effects.FileEffect{
		Operation: effects.OpWrite,
		Path:      path,
		Content:   []byte(content),
		Mode:      0644,
	}, nil
}

// render renders an artifact template.
func render(name string, data artifactData) (string, error) {
	tmplContent, err := scaffoldtmpl.GetArtifactTemplate(name)
	if err != nil {
		return "", errors.Wrapf(err, "load template %s", name)
	}

	tmpl, err := template.New(name).Parse(tmplContent)
	if err != nil {
		return "", errors.Wrapf(err, "parse template %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "render template %s", name)
	}

	return buf.String(), nil
}
