package modulefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportPath(t *testing.T) {
	tests := []struct {
		from, target, want string
	}{
		{"/ws/app", "/ws/app/foo/foo.component.ts", "./foo/foo.component"},
		{"/ws/app/shared", "/ws/app/feature/bar.directive.ts", "../feature/bar.directive"},
		{"/ws/app", "/ws/app/baz.module.ts", "./baz.module"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ImportPath(tt.from, tt.target))
	}
}

func TestSuffixGroup(t *testing.T) {
	assert.Equal(t, ".component", suffixGroup("/a/foo-bar.component.ts"))
	assert.Equal(t, ".directive", suffixGroup("x.directive.ts"))
	assert.Equal(t, "", suffixGroup("/a/main.ts"))
}

func TestExportedModuleClass(t *testing.T) {
	name, ok := ExportedModuleClass("@NgModule({})\nexport  class AppSharedModule {}\n")
	assert.True(t, ok)
	assert.Equal(t, "AppSharedModule", name)

	_, ok = ExportedModuleClass("export class AppService {}\nclass HiddenModule {}\n")
	assert.False(t, ok)
}

func TestReferencesClass(t *testing.T) {
	text := "declarations: [FooComponent, FooBarComponent]"
	assert.True(t, ReferencesClass(text, "FooComponent"))
	assert.True(t, ReferencesClass(text, "FooBarComponent"))
	assert.False(t, ReferencesClass(text, "BarComponent"))
	assert.False(t, ReferencesClass(text, ""))
	assert.True(t, ReferencesClass("providers: [$FooService]", "$FooService"))
}

func TestReferencesClass_IgnoresCommentsAndStrings(t *testing.T) {
	text := "// FooComponent moved to the feature module\n" +
		"/* FooComponent */\n" +
		"const label = 'FooComponent';\n" +
		"@NgModule({declarations: [BarComponent]})\nexport class SharedModule {}\n"
	assert.False(t, ReferencesClass(text, "FooComponent"))
	assert.True(t, ReferencesClass(text, "BarComponent"))
}

func TestMissingNames_HandlesAliases(t *testing.T) {
	imports := parseImports("import {Foo as Bar, Baz} from './x';\n// import {Qux} from './q';\n")
	assert.Equal(t, []string{"Qux", "New"}, missingNames([]string{"Foo", "Qux", "New", "Baz", "New"}, imports))
}
