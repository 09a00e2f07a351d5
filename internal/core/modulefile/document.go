// Package modulefile edits Angular module ("aggregation") files in place: it inserts
// import statements into the matching import group and merges class names into the
// sorted array sections of the @NgModule decorator, keeping the surrounding formatting.
//
// All functions operate on text only; reading and writing files is left to the caller.
package modulefile

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/example/ngfc/internal/core/tstext"
)

// Decorator is the marker of the aggregation-root declaration.
const Decorator = "@NgModule"

// Section names of the @NgModule decorator that newly created classes are added to.
const (
	SectionDeclarations = "declarations"
	SectionExports      = "exports"
)

// indentUnit is the extra indentation given to an entry appended at the end of a section.
const indentUnit = "    "

var (
	importPattern    = regexp.MustCompile(`import\s+\{([^}]+)\}\s+from\s+['"]([^'"]+)['"]`)
	decoratorPattern = regexp.MustCompile(regexp.QuoteMeta(Decorator) + `\s*\(`)
)

// Document is the text buffer of one module file.
type Document struct {
	path    string
	text    string
	locator SectionLocator
}

// NewDocument creates a buffer for the module file at path. A nil locator uses brackets.
func NewDocument(path, text string, locator SectionLocator) *Document {
	if locator == nil {
		locator = BracketLocator{}
	}
	return &Document{path: path, text: text, locator: locator}
}

// Path returns the module file path.
func (d *Document) Path() string { return d.path }

// Text returns the current buffer.
func (d *Document) Text() string { return d.text }

// InsertImport adds `import {A, B} from './relative/path';` for classNames defined in
// targetPath. The statement goes before the first import of the same file-suffix group
// whose names sort after the new ones, otherwise after the last import of that group.
// Without such a group it goes right before the @NgModule decorator, followed by a blank
// line. Names that are already imported are skipped. Returns false when neither an
// import group nor the decorator can be found.
func (d *Document) InsertImport(classNames []string, targetPath string) bool {
	imports := parseImports(d.text)
	names := missingNames(classNames, imports)
	if len(names) == 0 {
		return true
	}
	sort.Strings(names)
	joined := strings.Join(names, ", ")
	group := suffixGroup(targetPath)

	insertion := -1
	extraNewline := false
	for _, imp := range imports {
		if group == "" || !strings.HasSuffix(imp.from, group) {
			continue
		}
		if joined < strings.Join(imp.names, ", ") {
			insertion = imp.start
			break
		}
		// Keep moving past the group in case this is its last import.
		insertion = tstext.NextLine(d.text, imp.end)
	}

	if insertion == -1 {
		loc := findDecorator(d.text)
		if loc == nil {
			return false
		}
		insertion = tstext.StartOfLine(d.text, loc[0])
		extraNewline = true
	}

	statement := "import {" + joined + "} from '" + ImportPath(filepath.Dir(d.path), targetPath) + "';\n"
	if extraNewline {
		statement += "\n"
	}
	if insertion == len(d.text) && d.text != "" && !strings.HasSuffix(d.text, "\n") {
		statement = "\n" + statement
	}
	d.insert(insertion, statement)
	return true
}

// InsertIntoSection adds className to the named array section of the @NgModule
// decorator, keeping alphabetical order. An entry that already exists is left alone.
// Returns false when the decorator or the section cannot be found.
func (d *Document) InsertIntoSection(section, className string) bool {
	start, end, ok := decoratorBlock(d.text)
	if !ok {
		return false
	}
	block := d.text[start:end]
	span, ok := d.locator.Locate(block, section)
	if !ok {
		return false
	}

	items := splitEntries(block, span.Open+1, span.Close)
	for _, item := range items {
		if item.text == className {
			return true
		}
	}

	at := len(items)
	for i, item := range items {
		if className < item.text {
			at = i
			break
		}
	}

	var offset int
	var insertion string
	if at < len(items) {
		offset = items[at].start
		if tstext.OnlyWhitespaceBefore(block, offset) {
			insertion = className + ",\n" + tstext.LeadingWhitespace(block, offset)
		} else {
			insertion = className + ", "
		}
	} else {
		offset, insertion = appendPosition(block, span, items, className)
	}

	d.insert(start+offset, insertion)
	return true
}

// appendPosition computes where and what to insert to append className to a section.
func appendPosition(block string, span Span, items []entry, className string) (int, string) {
	n := len(items)
	if !tstext.OnlyWhitespaceBefore(block, span.Close) {
		if n == 0 {
			return span.Close, className
		}
		if items[n-1].trailingComma {
			return span.Close, " " + className
		}
		return items[n-1].end, ", " + className
	}

	ws := tstext.LeadingWhitespace(block, span.Close)
	indent := ws + indentUnit
	if strings.Contains(ws, "\t") {
		indent = ws + "\t"
	}
	if n > 0 && tstext.OnlyWhitespaceBefore(block, items[n-1].start) {
		indent = tstext.LeadingWhitespace(block, items[n-1].start)
	}
	if n > 0 && !items[n-1].trailingComma {
		return items[n-1].end, ",\n" + indent + className
	}
	return tstext.StartOfLine(block, span.Close), indent + className + ",\n"
}

func (d *Document) insert(at int, s string) {
	d.text = d.text[:at] + s + d.text[at:]
}

// decoratorBlock returns the span of the @NgModule(...) argument list, from '(' to just
// after ')'.
func decoratorBlock(text string) (int, int, bool) {
	loc := findDecorator(text)
	if loc == nil {
		return 0, 0, false
	}
	open := loc[1] - 1
	end := tstext.StepOverBrackets(text, open)
	if end < 0 {
		return 0, 0, false
	}
	return open, end, true
}

// findDecorator returns the span of the first "@NgModule(" outside comments and strings.
func findDecorator(text string) []int {
	for _, loc := range decoratorPattern.FindAllStringIndex(text, -1) {
		if _, code := tstext.DepthAt(text, loc[0]); code {
			return loc
		}
	}
	return nil
}

type entry struct {
	text          string
	start, end    int
	trailingComma bool
}

// splitEntries splits block[from:to] on top-level commas. Whitespace and comments around
// entries are not part of them; empty entries are dropped.
func splitEntries(block string, from, to int) []entry {
	var items []entry
	cur := entry{start: -1}
	flush := func(comma bool) {
		if cur.start >= 0 {
			cur.text = block[cur.start:cur.end]
			cur.trailingComma = comma
			items = append(items, cur)
		}
		cur = entry{start: -1}
	}
	tstext.Scan(block, from, to, func(i, depth int, code bool) bool {
		c := block[i]
		switch {
		case !code:
		case depth == 0 && c == ',':
			flush(true)
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		default:
			if cur.start < 0 {
				cur.start = i
			}
			cur.end = i + 1
		}
		return true
	})
	flush(false)
	return items
}
