package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

// VariableDeclaration is a single "name" or "name: Type" binding, as found
// in properties, lambda parameters, and for-loop parameters.
type VariableDeclaration struct {
	Name string
	Type *Type
}

func newVariableDeclaration(node *sitter.Node, content []byte) (VariableDeclaration, error) {
	var v VariableDeclaration
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch {
		case child.Type() == ":":
		case child.Type() == "simple_identifier":
			v.Name = span.Text(child, content)
		case isTypeKind(child.Type()):
			t, err := NewType(child, content)
			if err != nil {
				return VariableDeclaration{}, err
			}
			v.Type = &t
		default:
			return VariableDeclaration{}, unsupported("VariableDeclaration", child, content)
		}
	}

	if v.Name == "" {
		return VariableDeclaration{}, missing("VariableDeclaration", "identifier", node)
	}
	return v, nil
}

// newMultiVariableDeclaration reads the destructuring form "(a, b, c)".
func newMultiVariableDeclaration(node *sitter.Node, content []byte) ([]VariableDeclaration, error) {
	var vars []VariableDeclaration
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "(", ",", ")":
		case "variable_declaration":
			v, err := newVariableDeclaration(child, content)
			if err != nil {
				return nil, err
			}
			vars = append(vars, v)
		default:
			return nil, unsupported("MultiVariableDeclaration", child, content)
		}
	}
	return vars, nil
}
