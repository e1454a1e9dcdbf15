package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kls-dev/kls/internal/span"
)

// ControlStructureBody is either a braced block or a single statement;
// both normalize to a statement list.
type ControlStructureBody struct {
	Statements []Statement
}

func newControlStructureBody(node *sitter.Node, content []byte) (ControlStructureBody, error) {
	first := node.Child(0)
	if first == nil {
		return ControlStructureBody{}, nil
	}

	if first.Type() == "{" {
		statementsNode := node.Child(1)
		if statementsNode == nil || statementsNode.Type() != "statements" {
			return ControlStructureBody{}, nil
		}
		statements, err := getStatements(statementsNode, content)
		if err != nil {
			return ControlStructureBody{}, err
		}
		return ControlStructureBody{Statements: statements}, nil
	}

	statement, err := newStatement(first, content)
	if err != nil {
		return ControlStructureBody{}, err
	}
	return ControlStructureBody{Statements: []Statement{statement}}, nil
}

// IfExpression keeps both branches as bodies; a missing else stays nil so
// expression-position ifs and statement-position ifs share one shape.
type IfExpression struct {
	Condition Expression
	Then      ControlStructureBody
	Else      *ControlStructureBody
}

func ifExpression(node *sitter.Node, content []byte) (Expression, error) {
	conditionNode := node.Child(2)
	if conditionNode == nil {
		return Expression{}, missing("Expression.If", "condition", node)
	}
	condition, err := NewExpression(conditionNode, content)
	if err != nil {
		return Expression{}, err
	}

	result := IfExpression{Condition: condition}
	sawThen := false
	for i := 3; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "control_structure_body" {
			continue
		}
		body, err := newControlStructureBody(child, content)
		if err != nil {
			return Expression{}, err
		}
		if !sawThen {
			result.Then = body
			sawThen = true
		} else {
			result.Else = &body
		}
	}

	return Expression{Kind: ExprIf, If: &result}, nil
}

// WhenExpression models both subject and subjectless forms. An entry with
// a nil Condition is the else arm.
type WhenExpression struct {
	Subject *Expression
	Entries []WhenEntry
}

type WhenEntry struct {
	Condition *WhenCondition
	Body      ControlStructureBody
}

type WhenConditionKind int

const (
	WhenConditionExpression WhenConditionKind = iota
	WhenConditionRange
	WhenConditionType
)

// WhenCondition is one arm test: a plain expression, an "in" range test,
// or an "is" type test. Negated tests keep their negation flag.
type WhenCondition struct {
	Kind       WhenConditionKind
	Negated    bool
	Expression *Expression
	Type       *Type
}

func whenExpression(node *sitter.Node, content []byte) (Expression, error) {
	result := WhenExpression{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "when_subject":
			subject, err := whenSubject(child, content)
			if err != nil {
				return Expression{}, err
			}
			result.Subject = subject
		case "when_entry":
			entry, err := newWhenEntry(child, content)
			if err != nil {
				return Expression{}, err
			}
			result.Entries = append(result.Entries, entry)
		}
	}
	return Expression{Kind: ExprWhen, When: &result}, nil
}

// whenSubject reads the parenthesized subject; the expression sits just
// before the closing parenthesis.
func whenSubject(node *sitter.Node, content []byte) (*Expression, error) {
	count := int(node.ChildCount())
	if count < 2 {
		return nil, missing("WhenSubject", "expression", node)
	}
	expr, err := NewExpression(node.Child(count-2), content)
	if err != nil {
		return nil, err
	}
	return &expr, nil
}

func newWhenEntry(node *sitter.Node, content []byte) (WhenEntry, error) {
	var entry WhenEntry
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "when_condition":
			condition, err := newWhenCondition(child, content)
			if err != nil {
				return WhenEntry{}, err
			}
			entry.Condition = &condition
		case "control_structure_body":
			body, err := newControlStructureBody(child, content)
			if err != nil {
				return WhenEntry{}, err
			}
			entry.Body = body
		}
	}
	return entry, nil
}

func newWhenCondition(node *sitter.Node, content []byte) (WhenCondition, error) {
	child := node.Child(0)
	if child == nil {
		return WhenCondition{}, missing("WhenCondition", "condition", node)
	}

	switch child.Type() {
	case "range_test":
		operator := child.Child(0)
		target := child.Child(1)
		if target == nil {
			return WhenCondition{}, missing("WhenCondition", "range expression", child)
		}
		expr, err := NewExpression(target, content)
		if err != nil {
			return WhenCondition{}, err
		}
		return WhenCondition{
			Kind:       WhenConditionRange,
			Negated:    operator != nil && operator.Type() == "!in",
			Expression: &expr,
		}, nil
	case "type_test":
		operator := child.Child(0)
		target := child.Child(1)
		if target == nil {
			return WhenCondition{}, missing("WhenCondition", "type", child)
		}
		t, err := NewType(target, content)
		if err != nil {
			return WhenCondition{}, err
		}
		return WhenCondition{
			Kind:    WhenConditionType,
			Negated: operator != nil && operator.Type() == "!is",
			Type:    &t,
		}, nil
	default:
		expr, err := NewExpression(child, content)
		if err != nil {
			return WhenCondition{}, err
		}
		return WhenCondition{Kind: WhenConditionExpression, Expression: &expr}, nil
	}
}

// TryExpression keeps the protected block plus any catch and finally
// clauses.
type TryExpression struct {
	Block   []Statement
	Catches []CatchBlock
	Finally []Statement
}

type CatchBlock struct {
	Identifier string
	Type       Type
	Block      []Statement
}

func tryExpression(node *sitter.Node, content []byte) (Expression, error) {
	result := TryExpression{}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "statements":
			statements, err := getStatements(child, content)
			if err != nil {
				return Expression{}, err
			}
			result.Block = statements
		case "catch_block":
			catch, err := newCatchBlock(child, content)
			if err != nil {
				return Expression{}, err
			}
			result.Catches = append(result.Catches, catch)
		case "finally_block":
			statements, err := finallyBlock(child, content)
			if err != nil {
				return Expression{}, err
			}
			result.Finally = statements
		}
	}
	return Expression{Kind: ExprTry, Try: &result}, nil
}

// newCatchBlock scans by kind because the clause mixes fixed tokens with
// an identifier, a type and statements.
func newCatchBlock(node *sitter.Node, content []byte) (CatchBlock, error) {
	var catch CatchBlock
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch {
		case child.Type() == "simple_identifier":
			catch.Identifier = span.Text(child, content)
		case isTypeKind(child.Type()):
			t, err := NewType(child, content)
			if err != nil {
				return CatchBlock{}, err
			}
			catch.Type = t
		case child.Type() == "statements":
			statements, err := getStatements(child, content)
			if err != nil {
				return CatchBlock{}, err
			}
			catch.Block = statements
		}
	}
	return catch, nil
}

func finallyBlock(node *sitter.Node, content []byte) ([]Statement, error) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "statements" {
			return getStatements(child, content)
		}
	}
	return nil, nil
}

// jumpExpression covers throw, return (plain and labeled, with an
// optional value), continue and break (plain and labeled).
func jumpExpression(node *sitter.Node, content []byte) (Expression, error) {
	first := node.Child(0)
	if first == nil {
		return Expression{}, missing("Expression.Jump", "keyword", node)
	}

	switch first.Type() {
	case "throw":
		value, err := childExpression("Expression.Jump", node, 1, content)
		if err != nil {
			return Expression{}, err
		}
		return Expression{Kind: ExprThrow, Inner: value}, nil
	case "return":
		expr := Expression{Kind: ExprReturn}
		if value := node.Child(1); value != nil {
			inner, err := NewExpression(value, content)
			if err != nil {
				return Expression{}, err
			}
			expr.Inner = &inner
		}
		return expr, nil
	case "return@":
		expr := Expression{Kind: ExprReturn}
		label := node.Child(1)
		if label == nil {
			return Expression{}, missing("Expression.Jump", "label", node)
		}
		expr.Label = span.Text(label, content)
		if value := node.Child(2); value != nil {
			inner, err := NewExpression(value, content)
			if err != nil {
				return Expression{}, err
			}
			expr.Inner = &inner
		}
		return expr, nil
	case "continue":
		return Expression{Kind: ExprContinue}, nil
	case "continue@":
		label := node.Child(1)
		if label == nil {
			return Expression{}, missing("Expression.Jump", "label", node)
		}
		return Expression{Kind: ExprContinue, Label: span.Text(label, content)}, nil
	case "break":
		return Expression{Kind: ExprBreak}, nil
	case "break@":
		label := node.Child(1)
		if label == nil {
			return Expression{}, missing("Expression.Jump", "label", node)
		}
		return Expression{Kind: ExprBreak, Label: span.Text(label, content)}, nil
	default:
		return Expression{}, unsupported("Expression.Jump", first, content)
	}
}
