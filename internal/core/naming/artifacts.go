package naming

import "strings"

// File suffixes of generated artifacts.
const (
	ComponentSuffix = ".component"
	DirectiveSuffix = ".directive"
	ModuleSuffix    = ".module"
	SourceExt       = ".ts"
	MarkupExt       = ".html"
)

// FolderName is the lowercase, separator-free folder (and file stem) for a name.
func FolderName(parts []string) string {
	return strings.Join(parts, "")
}

// FileName returns FolderName(parts) + ext, e.g. (["foo","bar"], ".component.ts") -> "foobar.component.ts".
func FileName(parts []string, ext string) string {
	return FolderName(parts) + ext
}

// ComponentClassName returns "<Pascal>Component".
func ComponentClassName(parts []string) string {
	return JoinCamel(parts, true) + "Component"
}

// DirectiveClassName returns "<Pascal>Directive".
func DirectiveClassName(parts []string) string {
	return JoinCamel(parts, true) + "Directive"
}

// DirectiveSelector is the lower camel case of prefix+name, e.g. "appTestFoo".
func DirectiveSelector(prefix, parts []string) string {
	all := append(append([]string(nil), prefix...), parts...)
	return JoinCamel(all, false)
}

// ModuleClassName returns "<Pascal(prefix+name)>Module".
func ModuleClassName(prefix, parts []string) string {
	all := append(append([]string(nil), prefix...), parts...)
	return JoinCamel(all, true) + "Module"
}
