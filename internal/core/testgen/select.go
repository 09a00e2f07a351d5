// Package testgen selects unit test and harness templates for a classified source file
// and fills in their placeholder tokens.
package testgen

import (
	"strings"

	"github.com/example/ngfc/internal/core/classify"
)

// Built-in template locations.
const (
	TemplateComponent       = "builtin:component.spec.ts"
	TemplateDirective       = "builtin:directive.spec.ts"
	TemplateInjectable      = "builtin:injectable.spec.ts"
	TemplateModule          = "builtin:module.spec.ts"
	TemplateBasic           = "builtin:basic.spec.ts"
	TemplateSingleton       = "builtin:singleton.spec.ts"
	TemplateInjectorContext = "builtin:injectorcontext.spec.ts"
	HarnessStatic           = "builtin:harness.static.test.ts"
	HarnessDynamic          = "builtin:harness.dynamic.test.ts"
)

// InjectMarker is the field-injection function whose use selects the singleton or
// injector-context templates for plain classes.
const InjectMarker = "lucidInject"

// contentProjectionMarker in a component's markup selects the dynamic harness.
const contentProjectionMarker = "<ng-content"

// MinimalTest is written when the file exports no class.
const MinimalTest = `describe(module.id, () => {
    it('should work', () => {
    });
});
`

// TemplateRule maps a decorator to a unit test template location.
type TemplateRule struct {
	Decorator string `yaml:"decorator"`
	Template  string `yaml:"template"`
}

// SelectUnitTestTemplate returns the template location for a class. Configured rules are
// tried in order, then the defaults for the class kind. A nil descriptor selects no
// template; callers write MinimalTest instead.
func SelectUnitTestTemplate(d *classify.Descriptor, rules []TemplateRule) string {
	if d == nil {
		return ""
	}
	for _, r := range rules {
		if d.HasDecorator(r.Decorator) {
			return r.Template
		}
	}

	switch d.Kind {
	case classify.KindComponent:
		return TemplateComponent
	case classify.KindDirective:
		return TemplateDirective
	case classify.KindInjectable:
		return TemplateInjectable
	case classify.KindModule:
		return TemplateModule
	}

	if !strings.Contains(d.Source, InjectMarker) {
		return TemplateBasic
	}
	if !d.HasConstructor || allUseMarker(d.ConstructorParams) {
		return TemplateSingleton
	}
	return TemplateInjectorContext
}

func allUseMarker(params []classify.Parameter) bool {
	for _, p := range params {
		if !strings.Contains(p.Source, InjectMarker) {
			return false
		}
	}
	return true
}

// SelectHarnessTemplate returns the dynamic location when the component's markup
// projects content, the static one otherwise.
func SelectHarnessTemplate(markup, static, dynamic string) string {
	if strings.Contains(markup, contentProjectionMarker) {
		return dynamic
	}
	return static
}

// NeedsHarness reports whether a rendered unit test imports the component's harness.
func NeedsHarness(template string) bool {
	return strings.Contains(template, TokenHarness)
}
