package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

// LiteralKind tags a constant value by its grammar production.
type LiteralKind int

const (
	LiteralBoolean LiteralKind = iota
	LiteralString
	LiteralInteger
	LiteralCharacter
	LiteralLong
	LiteralReal
	LiteralHex
	LiteralBin
	LiteralUnsigned
	LiteralNull
	LiteralObject
	LiteralLambda
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralBoolean:
		return "boolean"
	case LiteralString:
		return "string"
	case LiteralInteger:
		return "integer"
	case LiteralCharacter:
		return "character"
	case LiteralLong:
		return "long"
	case LiteralReal:
		return "real"
	case LiteralHex:
		return "hex"
	case LiteralBin:
		return "bin"
	case LiteralUnsigned:
		return "unsigned"
	case LiteralNull:
		return "null"
	case LiteralObject:
		return "object"
	case LiteralLambda:
		return "lambda"
	default:
		return "unknown"
	}
}

// Literal is a constant value. Text is stored verbatim; no numeric or
// locale interpretation is performed. Object and lambda literals carry a
// nested payload instead of text.
type Literal struct {
	Kind LiteralKind
	Text string

	Object *ClassBody     // object literal body
	Lambda *LambdaLiteral // lambda literal body
}

// NewLiteral builds a Literal from a CST literal node.
func NewLiteral(node *sitter.Node, content []byte) (Literal, error) {
	switch node.Type() {
	case "boolean_literal":
		return Literal{Kind: LiteralBoolean, Text: span.Text(node, content)}, nil
	case "string_literal":
		return Literal{Kind: LiteralString, Text: span.Text(node, content)}, nil
	case "integer_literal":
		return Literal{Kind: LiteralInteger, Text: span.Text(node, content)}, nil
	case "character_literal":
		return Literal{Kind: LiteralCharacter, Text: span.Text(node, content)}, nil
	case "long_literal":
		return Literal{Kind: LiteralLong, Text: span.Text(node, content)}, nil
	case "real_literal":
		return Literal{Kind: LiteralReal, Text: span.Text(node, content)}, nil
	case "hex_literal":
		return Literal{Kind: LiteralHex, Text: span.Text(node, content)}, nil
	case "bin_literal":
		return Literal{Kind: LiteralBin, Text: span.Text(node, content)}, nil
	case "unsigned_literal":
		return Literal{Kind: LiteralUnsigned, Text: span.Text(node, content)}, nil
	case "null":
		return Literal{Kind: LiteralNull, Text: span.Text(node, content)}, nil
	case "object_literal":
		return newObjectLiteral(node, content)
	case "lambda_literal":
		lambda, err := NewLambdaLiteral(node, content)
		if err != nil {
			return Literal{}, err
		}
		return Literal{Kind: LiteralLambda, Lambda: &lambda}, nil
	default:
		return Literal{}, unsupported("Literal", node, content)
	}
}

func newObjectLiteral(node *sitter.Node, content []byte) (Literal, error) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "class_body" {
			continue
		}
		body, err := newClassBody(child, content)
		if err != nil {
			return Literal{}, err
		}
		return Literal{Kind: LiteralObject, Object: &body}, nil
	}
	return Literal{Kind: LiteralObject, Object: &ClassBody{}}, nil
}
