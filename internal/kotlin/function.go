package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

// Parameter is one declared function parameter. Parameters always carry a
// type in this grammar.
type Parameter struct {
	Name string
	Type Type
}

// newParameter reads name at child 0 and type at child 2, skipping a
// type_modifiers node when one sits between colon and type.
func newParameter(node *sitter.Node, content []byte) (Parameter, error) {
	nameNode := node.Child(0)
	if nameNode == nil {
		return Parameter{}, missing("Parameter", "name", node)
	}

	typeNode := node.Child(2)
	if typeNode != nil && typeNode.Type() == "type_modifiers" {
		typeNode = node.Child(3)
	}
	if typeNode == nil {
		return Parameter{}, missing("Parameter", "type", node)
	}

	t, err := NewType(typeNode, content)
	if err != nil {
		return Parameter{}, err
	}

	return Parameter{Name: span.Text(nameNode, content), Type: t}, nil
}

type FunctionBodyKind int

const (
	BodyBlock FunctionBodyKind = iota
	BodyExpression
)

// FunctionBody is either a braced block of statements or a single
// expression introduced by "=".
type FunctionBody struct {
	Kind       FunctionBodyKind
	Statements []Statement
	Expression *Expression
}

// newFunctionBody dispatches on the first token: "=" introduces an
// expression body, anything else a block.
func newFunctionBody(node *sitter.Node, content []byte) (FunctionBody, error) {
	first := node.Child(0)
	if first == nil {
		return FunctionBody{}, missing("FunctionBody", "body", node)
	}
	second := node.Child(1)
	if second == nil {
		return FunctionBody{}, missing("FunctionBody", "body", node)
	}

	if first.Type() == "=" {
		expr, err := NewExpression(second, content)
		if err != nil {
			return FunctionBody{}, err
		}
		return FunctionBody{Kind: BodyExpression, Expression: &expr}, nil
	}

	if second.Type() != "statements" {
		// Empty block.
		return FunctionBody{Kind: BodyBlock}, nil
	}
	statements, err := getStatements(second, content)
	if err != nil {
		return FunctionBody{}, err
	}
	return FunctionBody{Kind: BodyBlock, Statements: statements}, nil
}

// Function is a function or method declaration. A nil ReturnType means
// inferred, not unknown; a nil Body is an abstract or interface member.
type Function struct {
	Modifiers  []Modifier
	Receiver   *Type
	Name       string
	Parameters []Parameter
	ReturnType *Type
	Body       *FunctionBody
}

func newFunction(node *sitter.Node, content []byte) (Function, error) {
	function := Function{}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch {
		case child.Type() == "modifiers":
			modifiers, err := collectModifiers(child, content)
			if err != nil {
				return Function{}, err
			}
			function.Modifiers = modifiers
		case child.Type() == "simple_identifier":
			function.Name = span.Text(child, content)
		case child.Type() == "function_value_parameters":
			parameters, err := functionValueParameters(child, content)
			if err != nil {
				return Function{}, err
			}
			function.Parameters = parameters
		case isTypeKind(child.Type()):
			t, err := NewType(child, content)
			if err != nil {
				return Function{}, err
			}
			// A type before the name is the extension receiver; after
			// the parameter list it is the return type.
			if function.Name == "" {
				function.Receiver = &t
			} else {
				function.ReturnType = &t
			}
		case child.Type() == "function_body":
			body, err := newFunctionBody(child, content)
			if err != nil {
				return Function{}, err
			}
			function.Body = &body
		}
	}

	if function.Name == "" {
		return Function{}, missing("Function", "name", node)
	}
	return function, nil
}

func functionValueParameters(node *sitter.Node, content []byte) ([]Parameter, error) {
	var parameters []Parameter
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "parameter" {
			continue
		}
		parameter, err := newParameter(child, content)
		if err != nil {
			return nil, err
		}
		parameters = append(parameters, parameter)
	}
	return parameters, nil
}
