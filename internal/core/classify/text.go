package classify

import (
	"context"
	"regexp"
	"strings"

	"github.com/example/ngfc/internal/core/tstext"
)

var (
	exportedClassPattern = regexp.MustCompile(`\bexport\s+(?:default\s+)?(?:abstract\s+)?class\s+([A-Za-z_$][\w$]*)`)
	decoratorPattern     = regexp.MustCompile(`@([A-Za-z_$][\w$.]*)`)
	constructorPattern   = regexp.MustCompile(`\bconstructor\s*\(`)
	paramModifiers       = regexp.MustCompile(`^(?:(?:public|private|protected|readonly|override)\s+)+`)
	identifierPattern    = regexp.MustCompile(`^[A-Za-z_$][\w$]*`)
)

// TextClassifier finds exported classes and their decorators by scanning the text.
type TextClassifier struct{}

type span struct {
	name       string
	start, end int
}

// Classify implements Classifier.
func (TextClassifier) Classify(_ context.Context, path string, source []byte) (*Descriptor, error) {
	text := string(source)
	decorators := topLevelDecorators(text)

	var classes []Descriptor
	for _, m := range exportedClassPattern.FindAllStringSubmatchIndex(text, -1) {
		if depth, code := tstext.DepthAt(text, m[0]); !code || depth != 0 {
			continue
		}
		d := Descriptor{ClassName: text[m[2]:m[3]]}

		start := m[0]
		var attached []span
		for {
			prev, ok := decoratorEndingAt(decorators, strings.TrimRight(text[:start], " \t\r\n"))
			if !ok {
				break
			}
			attached = append([]span{prev}, attached...)
			start = prev.start
		}
		for _, s := range attached {
			d.Decorators = append(d.Decorators, s.name)
		}

		end := len(text)
		if open := classBodyOpen(text, m[1]); open >= 0 {
			if e := tstext.StepOverBrackets(text, open); e > 0 {
				end = e
			}
			d.HasConstructor, d.ConstructorParams = constructorParams(text, open, end)
		}
		d.Source = text[start:end]
		finish(&d, text[start:m[0]])
		classes = append(classes, d)
	}
	return choose(path, classes), nil
}

// topLevelDecorators returns every decorator written outside of brackets, with the span
// of its optional argument list.
func topLevelDecorators(text string) []span {
	var out []span
	for _, m := range decoratorPattern.FindAllStringSubmatchIndex(text, -1) {
		if depth, code := tstext.DepthAt(text, m[0]); !code || depth != 0 {
			continue
		}
		name := text[m[2]:m[3]]
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}
		end := m[1]
		rest := strings.TrimLeft(text[end:], " \t\r\n")
		if strings.HasPrefix(rest, "(") {
			open := len(text) - len(rest)
			if e := tstext.StepOverBrackets(text, open); e > 0 {
				end = e
			}
		}
		out = append(out, span{name: name, start: m[0], end: end})
	}
	return out
}

func decoratorEndingAt(decorators []span, before string) (span, bool) {
	for _, d := range decorators {
		if d.end == len(before) {
			return d, true
		}
	}
	return span{}, false
}

// classBodyOpen returns the index of the '{' opening the class body declared at from.
func classBodyOpen(text string, from int) int {
	open := -1
	tstext.Scan(text, from, len(text), func(i, depth int, code bool) bool {
		if code && depth == 0 && text[i] == '{' {
			open = i
			return false
		}
		return true
	})
	return open
}

// constructorParams reads the constructor declared directly in the class body text[open:end].
func constructorParams(text string, open, end int) (bool, []Parameter) {
	for _, m := range constructorPattern.FindAllStringIndex(text[open:end], -1) {
		if depth, code := tstext.DepthAt(text[open:end], m[0]); !code || depth != 1 {
			continue
		}
		paren := open + m[1] - 1
		after := tstext.StepOverBrackets(text, paren)
		if after < 0 {
			return true, nil
		}
		return true, splitParams(text, paren+1, after-1)
	}
	return false, nil
}

func splitParams(text string, from, to int) []Parameter {
	var params []Parameter
	start := from
	add := func(end int) {
		src := strings.TrimSpace(text[start:end])
		if src != "" {
			params = append(params, Parameter{Name: paramName(src), Source: src})
		}
	}
	tstext.Scan(text, from, to, func(i, depth int, code bool) bool {
		if code && depth == 0 && text[i] == ',' {
			add(i)
			start = i + 1
		}
		return true
	})
	add(to)
	return params
}

// paramName strips decorators and modifiers from a parameter and returns its identifier.
func paramName(src string) string {
	rest := src
	for strings.HasPrefix(rest, "@") {
		m := decoratorPattern.FindStringIndex(rest)
		if m == nil || m[0] != 0 {
			break
		}
		end := m[1]
		tail := strings.TrimLeft(rest[end:], " \t\r\n")
		if strings.HasPrefix(tail, "(") {
			open := len(rest) - len(tail)
			if e := tstext.StepOverBrackets(rest, open); e > 0 {
				end = e
			}
		}
		rest = strings.TrimLeft(rest[end:], " \t\r\n")
	}
	rest = paramModifiers.ReplaceAllString(rest, "")
	rest = strings.TrimPrefix(rest, "...")
	if id := identifierPattern.FindString(rest); id != "" {
		return id
	}
	if i := strings.IndexAny(rest, ":="); i >= 0 {
		return strings.TrimSpace(rest[:i])
	}
	return rest
}
