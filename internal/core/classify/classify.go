// Package classify inspects a TypeScript source file and describes its exported class:
// name, decorators, artifact kind, standalone flag, selector and constructor parameters.
package classify

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind is the capability an exported class declares through its decorator.
type Kind int

const (
	// KindPlain is a class without a known Angular decorator.
	KindPlain Kind = iota
	KindComponent
	KindDirective
	KindModule
	KindInjectable
)

func (k Kind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindDirective:
		return "directive"
	case KindModule:
		return "module"
	case KindInjectable:
		return "injectable"
	default:
		return "plain"
	}
}

// kindByDecorator maps decorator names (without '@') to kinds.
var kindByDecorator = map[string]Kind{
	"Component":  KindComponent,
	"Directive":  KindDirective,
	"NgModule":   KindModule,
	"Injectable": KindInjectable,
}

// Parameter is one constructor parameter.
type Parameter struct {
	Name string
	// Source is the full parameter text including decorators, modifiers and type.
	Source string
}

// Descriptor describes the exported class chosen from a file.
type Descriptor struct {
	ClassName string
	// Decorator is the decorator that determined Kind, or the first decorator of a plain class.
	Decorator string
	// Decorators lists every decorator attached to the class, in source order.
	Decorators []string
	Kind       Kind
	Standalone bool
	Selector   string
	// HasConstructor is false when the class declares no constructor.
	HasConstructor    bool
	ConstructorParams []Parameter
	// Source is the text of the class declaration including its decorators.
	Source   string
	Warnings []string
}

// HasDecorator reports whether name (with or without a leading '@') decorates the class.
func (d *Descriptor) HasDecorator(name string) bool {
	name = strings.TrimPrefix(name, "@")
	for _, dec := range d.Decorators {
		if dec == name {
			return true
		}
	}
	return false
}

// ParamNames returns the constructor parameter names in declaration order.
func (d *Descriptor) ParamNames() []string {
	names := make([]string, len(d.ConstructorParams))
	for i, p := range d.ConstructorParams {
		names[i] = p.Name
	}
	return names
}

// Classifier describes the exported class of a source file. It returns a nil descriptor
// and no error when the file exports no class.
type Classifier interface {
	Classify(ctx context.Context, path string, source []byte) (*Descriptor, error)
}

// Strategy names accepted by New.
const (
	StrategyTree = "tree"
	StrategyText = "text"
)

// New returns the classifier for a strategy name. An empty name selects the syntax tree.
func New(strategy string) (Classifier, error) {
	switch strategy {
	case "", StrategyTree:
		return TreeClassifier{}, nil
	case StrategyText:
		return TextClassifier{}, nil
	default:
		return nil, errors.Newf("unknown classifier %q (valid: %s, %s)", strategy, StrategyTree, StrategyText)
	}
}

var (
	standalonePattern = regexp.MustCompile(`\bstandalone\s*:\s*true\b`)
	selectorPattern   = regexp.MustCompile(`(?i)\bselector\s*:\s*['"]([^'"]*)['"]`)
)

// finish derives kind, standalone flag and selector from the decorators' text.
func finish(d *Descriptor, decoratorSource string) {
	for _, dec := range d.Decorators {
		if k, ok := kindByDecorator[dec]; ok {
			d.Kind = k
			d.Decorator = dec
			break
		}
	}
	if d.Decorator == "" && len(d.Decorators) > 0 {
		d.Decorator = d.Decorators[0]
	}
	d.Standalone = standalonePattern.MatchString(decoratorSource)
	if m := selectorPattern.FindStringSubmatch(decoratorSource); m != nil {
		d.Selector = m[1]
	}
}

// choose picks the class whose name matches the file name, else the first one, and
// warns when the file exports several classes.
func choose(path string, classes []Descriptor) *Descriptor {
	if len(classes) == 0 {
		return nil
	}
	base := filepath.Base(path)
	stem := normalize(strings.TrimSuffix(base, filepath.Ext(base)))

	chosen := -1
	for i := range classes {
		if normalize(classes[i].ClassName) == stem {
			chosen = i
			break
		}
	}
	matched := chosen >= 0
	if !matched {
		chosen = 0
	}

	d := classes[chosen]
	if len(classes) > 1 {
		if matched {
			d.Warnings = append(d.Warnings, fmt.Sprintf(
				"Multiple classes were found in %s. Only the one matching the file name (%s) will have a test generated for it.", base, d.ClassName))
		} else {
			d.Warnings = append(d.Warnings, fmt.Sprintf(
				"Multiple classes were found in %s. Only the first one (%s) will have a test generated for it.", base, d.ClassName))
		}
	}
	return &d
}

// normalize lower-cases s and drops the separators used in file names.
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '.', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
