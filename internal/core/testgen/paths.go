package testgen

import (
	"strings"

	"github.com/example/ngfc/internal/core/naming"
)

// SpecPath returns <stem>.spec.ts for a source file.
func SpecPath(source string) string {
	return strings.TrimSuffix(source, naming.SourceExt) + ".spec" + naming.SourceExt
}

// HarnessPath returns <stem>.test.ts for a component source file.
func HarnessPath(source string) string {
	return strings.TrimSuffix(source, naming.SourceExt) + ".test" + naming.SourceExt
}

// MarkupPath returns the markup file next to a component source file.
func MarkupPath(source string) string {
	return strings.TrimSuffix(source, naming.SourceExt) + naming.MarkupExt
}

// ComponentSourcePath maps any file of a component (markup, style, spec) to its source
// file. It reports false when the path is not a component file.
func ComponentSourcePath(path string) (string, bool) {
	marker := naming.ComponentSuffix + "."
	i := strings.LastIndex(path, marker)
	if i < 0 {
		return "", false
	}
	return path[:i] + naming.ComponentSuffix + naming.SourceExt, true
}

// IsSourceFile reports whether path is a TypeScript file that can get a unit test.
func IsSourceFile(path string) bool {
	return strings.HasSuffix(path, naming.SourceExt) &&
		!strings.HasSuffix(path, ".spec"+naming.SourceExt) &&
		!strings.HasSuffix(path, ".d"+naming.SourceExt)
}
