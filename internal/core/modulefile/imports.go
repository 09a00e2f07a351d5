package modulefile

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/example/ngfc/internal/core/tstext"
)

type importStatement struct {
	names      []string
	from       string
	start, end int
}

func parseImports(text string) []importStatement {
	var out []importStatement
	for _, m := range importPattern.FindAllStringSubmatchIndex(text, -1) {
		if _, code := tstext.DepthAt(text, m[0]); !code {
			continue
		}
		out = append(out, importStatement{
			names: splitNames(text[m[2]:m[3]]),
			from:  text[m[4]:m[5]],
			start: m[0],
			end:   m[1],
		})
	}
	return out
}

func splitNames(list string) []string {
	var names []string
	for _, n := range strings.Split(list, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// missingNames returns the class names not imported by any statement yet.
func missingNames(classNames []string, imports []importStatement) []string {
	seen := map[string]bool{}
	for _, imp := range imports {
		for _, n := range imp.names {
			// "Foo as Bar" binds Bar, but the exported class is Foo.
			seen[strings.Fields(n)[0]] = true
		}
	}
	var out []string
	for _, n := range classNames {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// suffixGroup returns the last dotted part of a file's base name without its extension,
// e.g. ".component" for "foo-bar.component.ts", or "" when there is none.
func suffixGroup(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return base[i:]
}

// ImportPath returns the module specifier that imports target from a file in fromDir:
// slash separated, relative, with the ".ts" extension removed.
func ImportPath(fromDir, target string) string {
	rel, err := filepath.Rel(fromDir, target)
	if err != nil {
		rel = target
	}
	rel = filepath.ToSlash(strings.TrimSuffix(rel, ".ts"))
	if !strings.HasPrefix(rel, "../") && !strings.HasPrefix(rel, "./") {
		rel = "./" + rel
	}
	return rel
}

var exportedModulePattern = regexp.MustCompile(`export\s+class\s+([\w_][\w\d_]+Module)\b`)

// ExportedModuleClass returns the first exported class whose name ends in "Module".
func ExportedModuleClass(text string) (string, bool) {
	m := exportedModulePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

var identifierPattern = regexp.MustCompile(`[A-Za-z_$][\w$]*`)

// ReferencesClass reports whether the code of text mentions className as a whole
// identifier. Comments and string literals do not count.
func ReferencesClass(text, className string) bool {
	if className == "" {
		return false
	}
	for _, loc := range identifierPattern.FindAllStringIndex(text, -1) {
		if text[loc[0]:loc[1]] != className {
			continue
		}
		if _, code := tstext.DepthAt(text, loc[0]); code {
			return true
		}
	}
	return false
}
