package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

// LambdaLiteral is the body of a lambda expression. Parameters are the
// declared lambda parameters, if any; Statements is the body.
type LambdaLiteral struct {
	Parameters []VariableDeclaration
	Statements []Statement
}

// NewLambdaLiteral builds a LambdaLiteral from a lambda_literal node.
func NewLambdaLiteral(node *sitter.Node, content []byte) (LambdaLiteral, error) {
	var lambda LambdaLiteral
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "{", "}", "->":
		case "lambda_parameters":
			params, err := lambdaParameters(child, content)
			if err != nil {
				return LambdaLiteral{}, err
			}
			lambda.Parameters = params
		case "statements":
			statements, err := getStatements(child, content)
			if err != nil {
				return LambdaLiteral{}, err
			}
			lambda.Statements = statements
		default:
			return LambdaLiteral{}, unsupported("LambdaLiteral", child, content)
		}
	}
	return lambda, nil
}

func lambdaParameters(node *sitter.Node, content []byte) ([]VariableDeclaration, error) {
	var params []VariableDeclaration
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case ",":
		case "variable_declaration":
			v, err := newVariableDeclaration(child, content)
			if err != nil {
				return nil, err
			}
			params = append(params, v)
		case "simple_identifier":
			params = append(params, VariableDeclaration{Name: span.Text(child, content)})
		default:
			return nil, unsupported("LambdaLiteral.Parameters", child, content)
		}
	}
	return params, nil
}

// AnnotatedLambda is a trailing lambda attached to a call suffix.
type AnnotatedLambda struct {
	Lambda LambdaLiteral
}

func newAnnotatedLambda(node *sitter.Node, content []byte) (AnnotatedLambda, error) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "lambda_literal" {
			return AnnotatedLambda{}, unsupported("AnnotatedLambda", child, content)
		}
		lambda, err := NewLambdaLiteral(child, content)
		if err != nil {
			return AnnotatedLambda{}, err
		}
		return AnnotatedLambda{Lambda: lambda}, nil
	}
	return AnnotatedLambda{}, missing("AnnotatedLambda", "lambda_literal", node)
}
