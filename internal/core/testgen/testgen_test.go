package testgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ngfc/internal/core/classify"
	"github.com/example/ngfc/internal/templates"
)

func TestSelectUnitTestTemplate(t *testing.T) {
	rules := []TemplateRule{
		{Decorator: "@LucidInjectable", Template: "testing/lucidinjectable.spec.ts"},
		{Decorator: "Directive", Template: "testing/directive.spec.ts"},
	}

	tests := []struct {
		name string
		d    *classify.Descriptor
		want string
	}{
		{"no class", nil, ""},
		{"configured decorator", &classify.Descriptor{Decorators: []string{"LucidInjectable"}}, "testing/lucidinjectable.spec.ts"},
		{"rule wins over kind", &classify.Descriptor{Kind: classify.KindDirective, Decorators: []string{"Directive"}}, "testing/directive.spec.ts"},
		{"component", &classify.Descriptor{Kind: classify.KindComponent, Decorators: []string{"Component"}}, TemplateComponent},
		{"injectable", &classify.Descriptor{Kind: classify.KindInjectable}, TemplateInjectable},
		{"module", &classify.Descriptor{Kind: classify.KindModule}, TemplateModule},
		{"plain", &classify.Descriptor{Source: "export class Foo {}"}, TemplateBasic},
		{
			"marker without constructor",
			&classify.Descriptor{Source: "export class Foo { a = lucidInject(A); }"},
			TemplateSingleton,
		},
		{
			"every parameter uses marker",
			&classify.Descriptor{
				Source:            "export class Foo { constructor(a = lucidInject(A)) {} }",
				HasConstructor:    true,
				ConstructorParams: []classify.Parameter{{Name: "a", Source: "a = lucidInject(A)"}},
			},
			TemplateSingleton,
		},
		{
			"some parameter without marker",
			&classify.Descriptor{
				Source:         "export class Foo { constructor(a = lucidInject(A), b: B) {} }",
				HasConstructor: true,
				ConstructorParams: []classify.Parameter{
					{Name: "a", Source: "a = lucidInject(A)"},
					{Name: "b", Source: "b: B"},
				},
			},
			TemplateInjectorContext,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectUnitTestTemplate(tt.d, rules))
		})
	}
}

func TestSelectHarnessTemplate(t *testing.T) {
	assert.Equal(t, "dyn", SelectHarnessTemplate("<div><ng-content></ng-content></div>", "static", "dyn"))
	assert.Equal(t, "dyn", SelectHarnessTemplate(`<ng-content select="header">`, "static", "dyn"))
	assert.Equal(t, "static", SelectHarnessTemplate("<div>{{ value }}</div>", "static", "dyn"))
}

func TestRender_ModuleOwnedComponent(t *testing.T) {
	tmpl := "import {TESTCOMPONENT} from './test.component';\n" +
		"import {TESTNAMEHarness} from './testharness';\n" +
		"describe('TESTCLASS', () => { const testClass = new TESTCLASS(); expect('test-selector'); }); // testclass\n"

	got := Render(RenderInput{
		Template: tmpl,
		Descriptor: &classify.Descriptor{
			ClassName:         "FooBarComponent",
			Kind:              classify.KindComponent,
			Selector:          "app-foo-bar",
			HasConstructor:    true,
			ConstructorParams: []classify.Parameter{{Name: "http"}, {Name: "config"}},
		},
		SourcePath: "/ws/app/foobar/foobar.component.ts",
		Module:     &ModuleRef{ClassName: "AppSharedModule", ImportPath: "../shared.module"},
	})

	want := "import {AppSharedModule} from '../shared.module';\n" +
		"import {FooBarHarness} from './foobar.component.test';\n" +
		"describe('FooBarComponent', () => { const fooBarComponent = new FooBarComponent(http, config); expect('app-foo-bar'); }); // foobar.component\n"
	assert.Equal(t, want, got)
}

func TestRender_StandaloneDirective(t *testing.T) {
	got := Render(RenderInput{
		Template: "import {TESTCOMPONENT} from './test.component';\n<div testSelector></div>\n",
		Descriptor: &classify.Descriptor{
			ClassName:  "HighlightDirective",
			Kind:       classify.KindDirective,
			Standalone: true,
			Selector:   "[appHighlight]",
		},
		SourcePath: "/ws/app/highlight.directive.ts",
	})

	assert.Equal(t, "import {HighlightDirective} from './highlight.directive';\n<div [appHighlight]></div>\n", got)
}

func TestRender_PlainClassKeepsModuleTokens(t *testing.T) {
	got := Render(RenderInput{
		Template:   "TESTCOMPONENT new TESTCLASS() testClass testclass test-selector",
		Descriptor: &classify.Descriptor{ClassName: "UserStore"},
		SourcePath: "/ws/user.store.ts",
	})

	assert.Equal(t, "TESTCOMPONENT new UserStore() userStore user.store test-selector", got)
}

func TestRender_DoesNotRewriteSubstitutedText(t *testing.T) {
	got := Render(RenderInput{
		Template: "import {TESTCLASS} from './testclass';\nlet testClass: TESTCLASS; el = '<test-selector>';",
		Descriptor: &classify.Descriptor{
			ClassName:  "TestSelectorComponent",
			Kind:       classify.KindComponent,
			Standalone: true,
			Selector:   "app-test-selector",
		},
		SourcePath: "/ws/app/test-selector/test-selector.component.ts",
	})

	want := "import {TestSelectorComponent} from './test-selector.component';\n" +
		"let testSelectorComponent: TestSelectorComponent; el = '<app-test-selector>';"
	assert.Equal(t, want, got)
}

func TestRender_NilDescriptor(t *testing.T) {
	assert.Equal(t, MinimalTest, Render(RenderInput{Template: MinimalTest}))
}

func TestRender_BuiltinTemplatesLeaveNoTokens(t *testing.T) {
	tokens := []string{
		TokenModuleClass, TokenStandaloneImport, TokenHarness, TokenClass, TokenName,
		TokenFileStem, TokenVariable, TokenTagSelector, TokenAttrSelector,
	}
	descriptors := map[string]*classify.Descriptor{
		"component": {ClassName: "FooBarComponent", Kind: classify.KindComponent, Selector: "app-foo-bar"},
		"directive": {ClassName: "AutoFocusDirective", Kind: classify.KindDirective, Selector: "appAutoFocus"},
		"service":   {ClassName: "UserService", Kind: classify.KindInjectable},
	}

	names := templates.TestTemplateNames()
	require.NotEmpty(t, names)
	for _, name := range names {
		tmpl, err := templates.GetTestTemplate(name)
		require.NoError(t, err)

		for kind, d := range descriptors {
			got := Render(RenderInput{
				Template:   tmpl,
				Descriptor: d,
				SourcePath: "/ws/app/foobar/foobar." + kind + ".ts",
				Module:     &ModuleRef{ClassName: "AppSharedModule", ImportPath: "../shared.module"},
			})
			for _, token := range tokens {
				if kind == "service" && (token == TokenModuleClass || token == TokenStandaloneImport) {
					continue
				}
				if d.Selector == "" && (token == TokenTagSelector || token == TokenAttrSelector) {
					continue
				}
				assert.False(t, strings.Contains(got, token), "%s rendered for %s still contains %q", name, kind, token)
			}
		}
	}
}

func TestNeedsHarness(t *testing.T) {
	tmpl, err := templates.GetTestTemplate("component.spec.ts")
	require.NoError(t, err)
	assert.True(t, NeedsHarness(tmpl))

	tmpl, err = templates.GetTestTemplate("injectable.spec.ts")
	require.NoError(t, err)
	assert.False(t, NeedsHarness(tmpl))
}

func TestArtifactName(t *testing.T) {
	assert.Equal(t, "FooBar", ArtifactName(&classify.Descriptor{ClassName: "FooBarComponent", Kind: classify.KindComponent}))
	assert.Equal(t, "Highlight", ArtifactName(&classify.Descriptor{ClassName: "HighlightDirective", Kind: classify.KindDirective}))
	assert.Equal(t, "UserService", ArtifactName(&classify.Descriptor{ClassName: "UserService", Kind: classify.KindInjectable}))
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/ws/a/foo.component.spec.ts", SpecPath("/ws/a/foo.component.ts"))
	assert.Equal(t, "/ws/a/foo.component.test.ts", HarnessPath("/ws/a/foo.component.ts"))
	assert.Equal(t, "/ws/a/foo.component.html", MarkupPath("/ws/a/foo.component.ts"))
	assert.Equal(t, "foo.component", FileStem("/ws/a/foo.component.ts"))

	src, ok := ComponentSourcePath("/ws/a/foo.component.less")
	assert.True(t, ok)
	assert.Equal(t, "/ws/a/foo.component.ts", src)

	_, ok = ComponentSourcePath("/ws/a/foo.directive.ts")
	assert.False(t, ok)

	assert.True(t, IsSourceFile("/ws/a/user.service.ts"))
	assert.False(t, IsSourceFile("/ws/a/user.service.spec.ts"))
	assert.False(t, IsSourceFile("/ws/a/foo.component.html"))
}
