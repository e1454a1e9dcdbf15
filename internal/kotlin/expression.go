package kotlin

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

// ExprKind tags the expression union. The CST already nests expressions by
// precedence level, so translation is a direct structural mapping from CST
// shape to Expression shape; precedence is never recomputed here.
type ExprKind int

const (
	ExprCall ExprKind = iota
	ExprNavigation
	ExprIf
	ExprEquality
	ExprComparison
	ExprMultiplicative
	ExprAdditive
	ExprDisjunction
	ExprConjunction
	ExprIdentifier
	ExprInfix
	ExprAs
	ExprLiteral
	ExprWhen
	ExprCheckIn
	ExprCheckNotIn
	ExprCheckIs
	ExprCheckNotIs
	ExprElvis
	ExprRange
	ExprType
	ExprThrow
	ExprReturn
	ExprContinue
	ExprBreak
	ExprDirectlyAssignable
	ExprCallableReference
	ExprPrefix
	ExprPostfix
	ExprTry
	ExprParenthesized
	ExprIndexing
	ExprThis
	ExprSuper
)

// Expression is any evaluable construct. Exactly the fields implied by
// Kind are populated; every child is exclusively owned by its parent.
type Expression struct {
	Kind ExprKind

	// Binary shapes: left/right operands.
	Left  *Expression
	Right *Expression

	// Unary and wrapped shapes: the single operand (prefix, postfix,
	// parenthesized, throw, return value, call/navigation/indexing base).
	Inner *Expression

	// Operator text for equality, comparison, multiplicative, additive,
	// prefix and postfix shapes; the function name for infix shapes.
	Operator string

	Identifier string // identifier text, this@label target, callable-reference member
	Qualifier  string // callable-reference receiver
	Label      string // jump or prefix label
	Annotation string // prefix annotation

	Literal    *Literal
	Type       *Type // is-check right side, bare type expression
	Call       *CallSuffix
	Navigation *NavigationSuffix
	Index      []Expression // indexing suffix expressions

	If   *IfExpression
	When *WhenExpression
	Try  *TryExpression
}

// expressionKinds is the closed set of CST productions this core treats as
// expressions; statement construction consults it before dispatching.
var expressionKinds = map[string]bool{
	// unary
	"postfix_expression":    true,
	"call_expression":       true,
	"indexing_expression":   true,
	"navigation_expression": true,
	"prefix_expression":     true,
	"as_expression":         true,
	"spread_expression":     true,
	// binary
	"multiplicative_expression": true,
	"additive_expression":       true,
	"range_expression":          true,
	"infix_expression":          true,
	"elvis_expression":          true,
	"check_expression":          true,
	"comparison_expression":     true,
	"equality_expression":       true,
	"conjunction_expression":    true,
	"disjunction_expression":    true,
	// primary
	"parenthesized_expression": true,
	"simple_identifier":        true,
	"boolean_literal":          true,
	"integer_literal":          true,
	"hex_literal":              true,
	"bin_literal":              true,
	"character_literal":        true,
	"real_literal":             true,
	"null":                     true,
	"long_literal":             true,
	"unsigned_literal":         true,
	"string_literal":           true,
	"callable_reference":       true,
	"lambda_literal":           true,
	"anonymous_function":       true,
	"object_literal":           true,
	"collection_literal":       true,
	"this_expression":          true,
	"super_expression":         true,
	"if_expression":            true,
	"when_expression":          true,
	"try_expression":           true,
	"jump_expression":          true,
}

func isExpressionKind(kind string) bool {
	return expressionKinds[kind]
}

// NewExpression builds an Expression from a CST expression node. Any node
// kind outside the recognized set is a hard construction failure: a missing
// case skipped silently would corrupt the model.
func NewExpression(node *sitter.Node, content []byte) (Expression, error) {
	switch node.Type() {
	case "call_expression":
		return callExpression(node, content)
	case "navigation_expression":
		return navigationExpression(node, content)
	case "if_expression":
		return ifExpression(node, content)
	case "disjunction_expression":
		return binaryExpression(ExprDisjunction, "Expression.Disjunction", node, content, nil)
	case "conjunction_expression":
		return binaryExpression(ExprConjunction, "Expression.Conjunction", node, content, nil)
	case "additive_expression":
		return binaryExpression(ExprAdditive, "Expression.Additive", node, content, additiveOperators)
	case "equality_expression":
		return binaryExpression(ExprEquality, "Expression.Equality", node, content, equalityOperators)
	case "multiplicative_expression":
		return binaryExpression(ExprMultiplicative, "Expression.Multiplicative", node, content, multiplicativeOperators)
	case "comparison_expression":
		return binaryExpression(ExprComparison, "Expression.Comparison", node, content, comparisonOperators)
	case "elvis_expression":
		return binaryExpression(ExprElvis, "Expression.Elvis", node, content, nil)
	case "range_expression":
		return binaryExpression(ExprRange, "Expression.Range", node, content, nil)
	case "infix_expression":
		return infixExpression(node, content)
	case "as_expression":
		return binaryExpression(ExprAs, "Expression.As", node, content, nil)
	case "check_expression":
		return checkExpression(node, content)
	case "prefix_expression":
		return prefixExpression(node, content)
	case "postfix_expression":
		return postfixExpression(node, content)
	case "simple_identifier":
		return Expression{Kind: ExprIdentifier, Identifier: span.Text(node, content)}, nil
	case "boolean_literal", "string_literal", "integer_literal", "object_literal",
		"character_literal", "lambda_literal", "long_literal", "real_literal",
		"hex_literal", "bin_literal", "unsigned_literal", "null":
		literal, err := NewLiteral(node, content)
		if err != nil {
			return Expression{}, err
		}
		return Expression{Kind: ExprLiteral, Literal: &literal}, nil
	case "when_expression":
		return whenExpression(node, content)
	case "try_expression":
		return tryExpression(node, content)
	case "jump_expression":
		return jumpExpression(node, content)
	case "callable_reference":
		return callableReference(node, content)
	case "user_type":
		t, err := NewType(node, content)
		if err != nil {
			return Expression{}, err
		}
		return Expression{Kind: ExprType, Type: &t}, nil
	case "directly_assignable_expression":
		inner, err := childExpression("Expression.DirectlyAssignable", node, 0, content)
		if err != nil {
			return Expression{}, err
		}
		return Expression{Kind: ExprDirectlyAssignable, Inner: inner}, nil
	case "parenthesized_expression":
		inner, err := childExpression("Expression.Parenthesized", node, 1, content)
		if err != nil {
			return Expression{}, err
		}
		return Expression{Kind: ExprParenthesized, Inner: inner}, nil
	case "indexing_expression":
		return indexingExpression(node, content)
	case "this_expression":
		return thisExpression(node, content)
	case "super_expression":
		return Expression{Kind: ExprSuper}, nil
	default:
		return Expression{}, unsupported("Expression", node, content)
	}
}

func childExpression(construct string, node *sitter.Node, index int, content []byte) (*Expression, error) {
	child := node.Child(index)
	if child == nil {
		return nil, missing(construct, "expression", node)
	}
	expr, err := NewExpression(child, content)
	if err != nil {
		return nil, err
	}
	return &expr, nil
}

var (
	equalityOperators       = map[string]bool{"==": true, "!=": true, "===": true, "!==": true}
	comparisonOperators     = map[string]bool{"<": true, ">": true, "<=": true, ">=": true}
	multiplicativeOperators = map[string]bool{"*": true, "/": true, "%": true}
	additiveOperators       = map[string]bool{"+": true, "-": true}
)

// binaryExpression reads the fixed child layout shared by every binary
// production: left = child(0), operator = child(1), right = child(2).
func binaryExpression(kind ExprKind, construct string, node *sitter.Node, content []byte, operators map[string]bool) (Expression, error) {
	left, err := childExpression(construct, node, 0, content)
	if err != nil {
		return Expression{}, err
	}

	operatorNode := node.Child(1)
	if operatorNode == nil {
		return Expression{}, missing(construct, "operator", node)
	}
	operator := span.Text(operatorNode, content)
	if operators != nil && !operators[operator] {
		return Expression{}, unsupported(construct, operatorNode, content)
	}

	right, err := childExpression(construct, node, 2, content)
	if err != nil {
		return Expression{}, err
	}

	return Expression{Kind: kind, Left: left, Operator: operator, Right: right}, nil
}

func infixExpression(node *sitter.Node, content []byte) (Expression, error) {
	left, err := childExpression("Expression.Infix", node, 0, content)
	if err != nil {
		return Expression{}, err
	}
	nameNode := node.Child(1)
	if nameNode == nil {
		return Expression{}, missing("Expression.Infix", "function name", node)
	}
	right, err := childExpression("Expression.Infix", node, 2, content)
	if err != nil {
		return Expression{}, err
	}
	return Expression{
		Kind:     ExprInfix,
		Left:     left,
		Operator: span.Text(nameNode, content),
		Right:    right,
	}, nil
}

// checkExpression covers "in"/"!in" (both sides expressions) and
// "is"/"!is" (right side a type).
func checkExpression(node *sitter.Node, content []byte) (Expression, error) {
	operatorNode := node.Child(1)
	if operatorNode == nil {
		return Expression{}, missing("Expression.Check", "operator", node)
	}

	left, err := childExpression("Expression.Check", node, 0, content)
	if err != nil {
		return Expression{}, err
	}

	switch operatorNode.Type() {
	case "in", "!in":
		right, err := childExpression("Expression.Check", node, 2, content)
		if err != nil {
			return Expression{}, err
		}
		kind := ExprCheckIn
		if operatorNode.Type() == "!in" {
			kind = ExprCheckNotIn
		}
		return Expression{Kind: kind, Left: left, Right: right}, nil
	case "is", "!is":
		typeNode := node.Child(2)
		if typeNode == nil {
			return Expression{}, missing("Expression.Check", "type", node)
		}
		t, err := NewType(typeNode, content)
		if err != nil {
			return Expression{}, err
		}
		kind := ExprCheckIs
		if operatorNode.Type() == "!is" {
			kind = ExprCheckNotIs
		}
		return Expression{Kind: kind, Left: left, Type: &t}, nil
	default:
		return Expression{}, unsupported("Expression.Check", operatorNode, content)
	}
}

var (
	prefixOperators  = map[string]bool{"++": true, "--": true, "-": true, "+": true, "!": true}
	postfixOperators = map[string]bool{"++": true, "--": true, "!!": true}
)

func prefixExpression(node *sitter.Node, content []byte) (Expression, error) {
	first := node.Child(0)
	if first == nil {
		return Expression{}, missing("Expression.Prefix", "prefix", node)
	}

	expr := Expression{Kind: ExprPrefix}
	switch {
	case first.Type() == "annotation":
		expr.Annotation = span.Text(first, content)
	case first.Type() == "label":
		expr.Label = span.Text(first, content)
	case prefixOperators[first.Type()]:
		expr.Operator = first.Type()
	default:
		return Expression{}, unsupported("Expression.Prefix", first, content)
	}

	inner, err := childExpression("Expression.Prefix", node, 1, content)
	if err != nil {
		return Expression{}, err
	}
	expr.Inner = inner
	return expr, nil
}

func postfixExpression(node *sitter.Node, content []byte) (Expression, error) {
	operatorNode := node.Child(1)
	if operatorNode == nil {
		return Expression{}, missing("Expression.Postfix", "operator", node)
	}
	if !postfixOperators[operatorNode.Type()] {
		return Expression{}, unsupported("Expression.Postfix", operatorNode, content)
	}

	inner, err := childExpression("Expression.Postfix", node, 0, content)
	if err != nil {
		return Expression{}, err
	}
	return Expression{Kind: ExprPostfix, Operator: operatorNode.Type(), Inner: inner}, nil
}

// CallSuffix carries either value arguments or a single type-argument
// list, never both, plus an optional trailing lambda.
type CallSuffix struct {
	Arguments     []ValueArgument
	TypeArguments []Type
	Lambda        *AnnotatedLambda
}

func newCallSuffix(node *sitter.Node, content []byte) (CallSuffix, error) {
	var suffix CallSuffix
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "value_arguments":
			arguments, err := getValueArguments(child, content)
			if err != nil {
				return CallSuffix{}, err
			}
			suffix.Arguments = arguments
		case "type_arguments":
			types, err := getTypeArguments(child, content)
			if err != nil {
				return CallSuffix{}, err
			}
			suffix.TypeArguments = types
		case "annotated_lambda":
			lambda, err := newAnnotatedLambda(child, content)
			if err != nil {
				return CallSuffix{}, err
			}
			suffix.Lambda = &lambda
		default:
			return CallSuffix{}, unsupported("CallSuffix", child, content)
		}
	}
	return suffix, nil
}

func callExpression(node *sitter.Node, content []byte) (Expression, error) {
	inner, err := childExpression("Expression.Call", node, 0, content)
	if err != nil {
		return Expression{}, err
	}

	suffixNode := node.Child(1)
	if suffixNode == nil {
		return Expression{}, missing("Expression.Call", "call suffix", node)
	}
	suffix, err := newCallSuffix(suffixNode, content)
	if err != nil {
		return Expression{}, err
	}

	return Expression{Kind: ExprCall, Inner: inner, Call: &suffix}, nil
}

// NavigationSuffix is the ".member" part of a chained access.
type NavigationSuffix struct {
	Identifier string
}

func newNavigationSuffix(node *sitter.Node, content []byte) (NavigationSuffix, error) {
	child := node.Child(1)
	if child == nil {
		return NavigationSuffix{}, missing("NavigationSuffix", "identifier", node)
	}
	if child.Type() != "simple_identifier" {
		return NavigationSuffix{}, unsupported("NavigationSuffix", child, content)
	}
	return NavigationSuffix{Identifier: span.Text(child, content)}, nil
}

func navigationExpression(node *sitter.Node, content []byte) (Expression, error) {
	inner, err := childExpression("Expression.Navigation", node, 0, content)
	if err != nil {
		return Expression{}, err
	}

	suffixNode := node.Child(1)
	if suffixNode == nil {
		return Expression{}, missing("Expression.Navigation", "navigation suffix", node)
	}
	suffix, err := newNavigationSuffix(suffixNode, content)
	if err != nil {
		return Expression{}, err
	}

	return Expression{Kind: ExprNavigation, Inner: inner, Navigation: &suffix}, nil
}

func indexingExpression(node *sitter.Node, content []byte) (Expression, error) {
	inner, err := childExpression("Expression.Indexing", node, 0, content)
	if err != nil {
		return Expression{}, err
	}

	suffixNode := node.Child(1)
	if suffixNode == nil {
		return Expression{}, missing("Expression.Indexing", "indexing suffix", node)
	}

	var indexes []Expression
	for i := 0; i < int(suffixNode.ChildCount()); i++ {
		child := suffixNode.Child(i)
		switch child.Type() {
		case "[", ",", "]":
		default:
			expr, err := NewExpression(child, content)
			if err != nil {
				return Expression{}, err
			}
			indexes = append(indexes, expr)
		}
	}

	return Expression{Kind: ExprIndexing, Inner: inner, Index: indexes}, nil
}

func callableReference(node *sitter.Node, content []byte) (Expression, error) {
	member := node.Child(int(node.ChildCount()) - 1)
	if member == nil {
		return Expression{}, missing("Expression.CallableReference", "member", node)
	}

	expr := Expression{Kind: ExprCallableReference, Identifier: span.Text(member, content)}
	if first := node.Child(0); first != nil && first.Type() != "::" {
		expr.Qualifier = span.Text(first, content)
	}
	return expr, nil
}

// thisExpression handles both the bare "this" token and labeled
// "this@outer" forms; the grammar exposes them as leaf text.
func thisExpression(node *sitter.Node, content []byte) (Expression, error) {
	text := span.Text(node, content)
	expr := Expression{Kind: ExprThis}
	if rest, ok := strings.CutPrefix(text, "this@"); ok {
		expr.Identifier = rest
	}
	return expr, nil
}
