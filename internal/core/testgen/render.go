package testgen

import (
	"path/filepath"
	"strings"

	"github.com/example/ngfc/internal/core/classify"
	"github.com/example/ngfc/internal/core/naming"
)

// Placeholder tokens of test templates.
const (
	TokenConstructorCall  = "new TESTCLASS()"
	TokenModuleClass      = "TESTCOMPONENT"
	TokenModuleImport     = "./test.component"
	TokenStandaloneImport = "test.component"
	TokenHarness          = "testharness"
	TokenClass            = "TESTCLASS"
	TokenName             = "TESTNAME"
	TokenFileStem         = "testclass"
	TokenVariable         = "testClass"
	TokenTagSelector      = "test-selector"
	TokenAttrSelector     = "testSelector"
)

// ModuleRef identifies the module that declares a class.
type ModuleRef struct {
	ClassName  string
	ImportPath string // relative to the class's directory, without ".ts"
}

// RenderInput contains everything a template needs. Module is required for
// non-standalone components and directives.
type RenderInput struct {
	Template   string
	Descriptor *classify.Descriptor
	SourcePath string
	Module     *ModuleRef
}

// Render substitutes the placeholder tokens of a template in a single pass, so text
// produced for one token is never rewritten by another.
func Render(in RenderInput) string {
	if in.Descriptor == nil {
		return in.Template
	}
	return replacerFor(in).Replace(in.Template)
}

// replacerFor lists longer tokens before the tokens they start with; at a given
// position strings.Replacer prefers the earlier pair.
func replacerFor(in RenderInput) *strings.Replacer {
	d := in.Descriptor
	stem := FileStem(in.SourcePath)
	var pairs []string

	if params := d.ParamNames(); len(params) > 0 {
		pairs = append(pairs, TokenConstructorCall, "new "+d.ClassName+"("+strings.Join(params, ", ")+")")
	}

	if d.Kind == classify.KindComponent || d.Kind == classify.KindDirective {
		switch {
		case d.Standalone:
			pairs = append(pairs,
				TokenModuleClass, d.ClassName,
				TokenStandaloneImport, stem,
			)
		case in.Module != nil:
			pairs = append(pairs,
				TokenModuleClass, in.Module.ClassName,
				TokenModuleImport, in.Module.ImportPath,
			)
		}
	}

	pairs = append(pairs,
		TokenHarness, stem+".test",
		TokenClass, d.ClassName,
		TokenName, ArtifactName(d),
		TokenFileStem, stem,
		TokenVariable, naming.LowerCamel(d.ClassName),
	)

	if d.Selector != "" {
		pairs = append(pairs,
			TokenTagSelector, d.Selector,
			TokenAttrSelector, d.Selector,
		)
	}
	return strings.NewReplacer(pairs...)
}

// ArtifactName is the class name without its kind suffix, e.g. "FooBar" for FooBarComponent.
func ArtifactName(d *classify.Descriptor) string {
	switch d.Kind {
	case classify.KindComponent:
		return strings.TrimSuffix(d.ClassName, "Component")
	case classify.KindDirective:
		return strings.TrimSuffix(d.ClassName, "Directive")
	case classify.KindModule:
		return strings.TrimSuffix(d.ClassName, "Module")
	}
	return d.ClassName
}

// FileStem is the base name of a source file without ".ts", e.g. "foo.component".
func FileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), naming.SourceExt)
}
