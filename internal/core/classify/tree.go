package classify

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// TreeClassifier reads exported class declarations from a TypeScript syntax tree.
type TreeClassifier struct{}

// Classify implements Classifier.
func (TreeClassifier) Classify(ctx context.Context, path string, source []byte) (*Descriptor, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(typescript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	var classes []Descriptor
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != "export_statement" {
			continue
		}
		decl := stmt.ChildByFieldName("declaration")
		if decl == nil || !isClassDeclaration(decl) {
			continue
		}
		name := decl.ChildByFieldName("name")
		if name == nil {
			continue
		}

		d := Descriptor{
			ClassName: name.Content(source),
			Source:    stmt.Content(source),
		}
		// Decorators before "export" belong to the statement, the rest to the class.
		var decoratorSource strings.Builder
		for _, n := range append(decoratorNodes(stmt), decoratorNodes(decl)...) {
			d.Decorators = append(d.Decorators, decoratorName(n, source))
			decoratorSource.WriteString(n.Content(source))
			decoratorSource.WriteByte('\n')
		}
		if body := decl.ChildByFieldName("body"); body != nil {
			d.HasConstructor, d.ConstructorParams = treeConstructorParams(body, source)
		}
		finish(&d, decoratorSource.String())
		classes = append(classes, d)
	}
	return choose(path, classes), nil
}

func isClassDeclaration(n *sitter.Node) bool {
	return n.Type() == "class_declaration" || n.Type() == "abstract_class_declaration"
}

func decoratorNodes(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == "decorator" {
			out = append(out, c)
		}
	}
	return out
}

// decoratorName returns "Component" for @Component(...), @Component and @ng.Component.
func decoratorName(n *sitter.Node, source []byte) string {
	if n.NamedChildCount() == 0 {
		return strings.TrimPrefix(n.Content(source), "@")
	}
	expr := n.NamedChild(0)
	if expr.Type() == "call_expression" {
		if fn := expr.ChildByFieldName("function"); fn != nil {
			expr = fn
		}
	}
	if expr.Type() == "member_expression" {
		if prop := expr.ChildByFieldName("property"); prop != nil {
			return prop.Content(source)
		}
	}
	return expr.Content(source)
}

func treeConstructorParams(body *sitter.Node, source []byte) (bool, []Parameter) {
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		if member.Type() != "method_definition" {
			continue
		}
		name := member.ChildByFieldName("name")
		if name == nil || name.Content(source) != "constructor" {
			continue
		}
		var params []Parameter
		list := member.ChildByFieldName("parameters")
		if list == nil {
			return true, nil
		}
		for j := 0; j < int(list.NamedChildCount()); j++ {
			p := list.NamedChild(j)
			if p.Type() != "required_parameter" && p.Type() != "optional_parameter" {
				continue
			}
			param := Parameter{Source: p.Content(source)}
			if pattern := p.ChildByFieldName("pattern"); pattern != nil {
				param.Name = strings.TrimPrefix(pattern.Content(source), "...")
			} else {
				param.Name = paramName(param.Source)
			}
			params = append(params, param)
		}
		return true, params
	}
	return false, nil
}
