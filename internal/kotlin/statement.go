package kotlin

import (
	sitter "github.com/smacker/go-tree-sitter"
)

type StmtKind int

const (
	StmtExpression StmtKind = iota
	StmtDeclaration
	StmtAssignment
	StmtWhile
	StmtDoWhile
	StmtFor
)

// Statement is anything that can appear in a body: an expression, a local
// declaration, an assignment or a loop.
type Statement struct {
	Kind        StmtKind
	Expression  *Expression
	Declaration *Declaration
	Assignment  *Assignment
	While       *WhileStatement
	For         *ForStatement
}

var assignmentOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
}

// Assignment is target, operator, value; augmented operators keep their
// text rather than desugaring.
type Assignment struct {
	Target   Expression
	Operator string
	Value    Expression
}

// WhileStatement covers both while and do-while loops.
type WhileStatement struct {
	Condition Expression
	Body      ControlStructureBody
}

type ForStatement struct {
	Variables []VariableDeclaration
	Iterable  Expression
	Body      ControlStructureBody
}

// getStatements translates the children of a "statements" node, skipping
// comments and separators.
func getStatements(node *sitter.Node, content []byte) ([]Statement, error) {
	var statements []Statement
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "comment", "line_comment", "multiline_comment", ";":
			continue
		}
		statement, err := newStatement(child, content)
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}
	return statements, nil
}

func newStatement(node *sitter.Node, content []byte) (Statement, error) {
	switch {
	case isExpressionKind(node.Type()):
		expr, err := NewExpression(node, content)
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: StmtExpression, Expression: &expr}, nil
	case node.Type() == "assignment":
		assignment, err := newAssignment(node, content)
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: StmtAssignment, Assignment: &assignment}, nil
	case node.Type() == "while_statement":
		loop, err := whileStatement(node, content)
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: StmtWhile, While: &loop}, nil
	case node.Type() == "do_while_statement":
		loop, err := doWhileStatement(node, content)
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: StmtDoWhile, While: &loop}, nil
	case node.Type() == "for_statement":
		loop, err := forStatement(node, content)
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: StmtFor, For: &loop}, nil
	case isDeclarationKind(node.Type()):
		declaration, err := NewDeclaration(node, content)
		if err != nil {
			return Statement{}, err
		}
		return Statement{Kind: StmtDeclaration, Declaration: &declaration}, nil
	default:
		return Statement{}, unsupported("Statement", node, content)
	}
}

func newAssignment(node *sitter.Node, content []byte) (Assignment, error) {
	target, err := childExpression("Assignment", node, 0, content)
	if err != nil {
		return Assignment{}, err
	}

	operatorNode := node.Child(1)
	if operatorNode == nil {
		return Assignment{}, missing("Assignment", "operator", node)
	}
	if !assignmentOperators[operatorNode.Type()] {
		return Assignment{}, unsupported("Assignment", operatorNode, content)
	}

	value, err := childExpression("Assignment", node, 2, content)
	if err != nil {
		return Assignment{}, err
	}

	return Assignment{Target: *target, Operator: operatorNode.Type(), Value: *value}, nil
}

// whileStatement reads the parenthesized condition at a fixed offset and
// the body, if any, from the trailing child. A body of ";" is an empty
// loop.
func whileStatement(node *sitter.Node, content []byte) (WhileStatement, error) {
	conditionNode := node.Child(2)
	if conditionNode == nil {
		return WhileStatement{}, missing("Statement.While", "condition", node)
	}
	condition, err := NewExpression(conditionNode, content)
	if err != nil {
		return WhileStatement{}, err
	}

	loop := WhileStatement{Condition: condition}
	last := node.Child(int(node.ChildCount()) - 1)
	if last != nil && last.Type() == "control_structure_body" {
		body, err := newControlStructureBody(last, content)
		if err != nil {
			return WhileStatement{}, err
		}
		loop.Body = body
	}
	return loop, nil
}

func doWhileStatement(node *sitter.Node, content []byte) (WhileStatement, error) {
	bodyNode := node.Child(1)
	if bodyNode == nil || bodyNode.Type() != "control_structure_body" {
		return WhileStatement{}, missing("Statement.DoWhile", "body", node)
	}
	body, err := newControlStructureBody(bodyNode, content)
	if err != nil {
		return WhileStatement{}, err
	}

	count := int(node.ChildCount())
	if count < 2 {
		return WhileStatement{}, missing("Statement.DoWhile", "condition", node)
	}
	condition, err := NewExpression(node.Child(count-2), content)
	if err != nil {
		return WhileStatement{}, err
	}

	return WhileStatement{Condition: condition, Body: body}, nil
}

// forStatement scans children by kind: the loop variable, the single
// iterable expression and the optional body all appear at positions that
// shift with annotations.
func forStatement(node *sitter.Node, content []byte) (ForStatement, error) {
	var loop ForStatement
	sawVariables := false
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch {
		case child.Type() == "variable_declaration":
			variable, err := newVariableDeclaration(child, content)
			if err != nil {
				return ForStatement{}, err
			}
			loop.Variables = []VariableDeclaration{variable}
			sawVariables = true
		case child.Type() == "multi_variable_declaration":
			variables, err := newMultiVariableDeclaration(child, content)
			if err != nil {
				return ForStatement{}, err
			}
			loop.Variables = variables
			sawVariables = true
		case isExpressionKind(child.Type()):
			iterable, err := NewExpression(child, content)
			if err != nil {
				return ForStatement{}, err
			}
			loop.Iterable = iterable
		case child.Type() == "control_structure_body":
			body, err := newControlStructureBody(child, content)
			if err != nil {
				return ForStatement{}, err
			}
			loop.Body = body
		}
	}
	if !sawVariables {
		return ForStatement{}, missing("Statement.For", "loop variable", node)
	}
	return loop, nil
}
