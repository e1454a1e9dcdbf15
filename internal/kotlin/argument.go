package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

// ValueArgument is one argument in a call suffix, optionally named
// ("timeout = 5").
type ValueArgument struct {
	Name       string
	Expression Expression
}

func newValueArgument(node *sitter.Node, content []byte) (ValueArgument, error) {
	var arg ValueArgument
	var haveExpression bool
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch {
		case child.Type() == "=":
		case child.Type() == "simple_identifier" && child.NextSibling() != nil:
			// An identifier followed by "=" names the argument; a bare
			// identifier is the argument expression itself.
			arg.Name = span.Text(child, content)
		case isExpressionKind(child.Type()):
			expr, err := NewExpression(child, content)
			if err != nil {
				return ValueArgument{}, err
			}
			arg.Expression = expr
			haveExpression = true
		default:
			return ValueArgument{}, unsupported("ValueArgument", child, content)
		}
	}

	if !haveExpression {
		return ValueArgument{}, missing("ValueArgument", "expression", node)
	}
	return arg, nil
}

func getValueArguments(node *sitter.Node, content []byte) ([]ValueArgument, error) {
	arguments := make([]ValueArgument, 0, int(node.ChildCount()))
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "(", ")", ",":
		case "value_argument":
			arg, err := newValueArgument(child, content)
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)
		default:
			return nil, unsupported("ValueArguments", child, content)
		}
	}
	return arguments, nil
}

// getTypeArguments reads the single type-argument list of a call suffix
// ("listOf<Int>"), one type per projection.
func getTypeArguments(node *sitter.Node, content []byte) ([]Type, error) {
	var types []Type
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "<", ">", ",":
		case "type_projection":
			typeNode := child.Child(0)
			if typeNode == nil {
				return nil, missing("TypeArguments", "projected type", child)
			}
			t, err := NewType(typeNode, content)
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		default:
			return nil, unsupported("TypeArguments", child, content)
		}
	}
	return types, nil
}
