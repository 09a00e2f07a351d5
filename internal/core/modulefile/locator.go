package modulefile

import (
	"regexp"

	"github.com/cockroachdb/errors"

	"github.com/example/ngfc/internal/core/tstext"
)

// Span holds the offsets of a section's opening '[' and closing ']' within a decorator block.
type Span struct {
	Open  int
	Close int
}

// SectionLocator finds the array literal of a named section inside a decorator block.
// The block starts with the decorator's '(' and ends just after its ')'.
type SectionLocator interface {
	Locate(block, section string) (Span, bool)
}

// Strategy names accepted by NewSectionLocator.
const (
	StrategyBracket = "bracket"
	StrategyRegex   = "regex"
)

// NewSectionLocator returns the locator for a strategy name. An empty name selects brackets.
func NewSectionLocator(strategy string) (SectionLocator, error) {
	switch strategy {
	case "", StrategyBracket:
		return BracketLocator{}, nil
	case StrategyRegex:
		return RegexLocator{}, nil
	default:
		return nil, errors.Newf("unknown section strategy %q (valid: %s, %s)", strategy, StrategyBracket, StrategyRegex)
	}
}

func sectionKey(section string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(section) + `\s*:\s*\[`)
}

// BracketLocator finds the section key at the top level of the decorator's object literal
// and steps over nested brackets to the matching ']'.
type BracketLocator struct{}

// Locate implements SectionLocator.
func (BracketLocator) Locate(block, section string) (Span, bool) {
	for _, loc := range sectionKey(section).FindAllStringIndex(block, -1) {
		// Inside "(" and "{" of @NgModule({ ... }).
		if depth, code := tstext.DepthAt(block, loc[0]); !code || depth != 2 {
			continue
		}
		open := loc[1] - 1
		end := tstext.StepOverBrackets(block, open)
		if end < 0 {
			return Span{}, false
		}
		return Span{Open: open, Close: end - 1}, true
	}
	return Span{}, false
}

// RegexLocator matches the section body up to the first ']'. It cannot see past nested
// brackets, so sections holding arrays or calls with array arguments are not found.
type RegexLocator struct{}

// Locate implements SectionLocator.
func (RegexLocator) Locate(block, section string) (Span, bool) {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(section) + `\s*:\s*(\[[^\[\]]*\])`)
	m := re.FindStringSubmatchIndex(block)
	if m == nil {
		return Span{}, false
	}
	return Span{Open: m[2], Close: m[3] - 1}, true
}
