package kotlin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initializerOf(t *testing.T, source string) *Expression {
	t.Helper()
	file := parseFile(t, source)
	require.Len(t, file.Declarations, 1, "warnings: %v", file.Warnings)
	require.Equal(t, DeclProperty, file.Declarations[0].Kind)
	init := file.Declarations[0].Property.Initializer
	require.NotNil(t, init)
	return init
}

func TestDisjunctionNestsConjunction(t *testing.T) {
	expr := initializerOf(t, "val x = a || b && c\n")

	// The grammar nests by precedence; the model must mirror it, never
	// re-associate.
	require.Equal(t, ExprDisjunction, expr.Kind)
	require.Equal(t, ExprIdentifier, expr.Left.Kind)
	assert.Equal(t, "a", expr.Left.Identifier)
	require.Equal(t, ExprConjunction, expr.Right.Kind)
	assert.Equal(t, "b", expr.Right.Left.Identifier)
	assert.Equal(t, "c", expr.Right.Right.Identifier)
}

func TestAdditiveKeepsOperator(t *testing.T) {
	expr := initializerOf(t, "val x = a - b\n")

	require.Equal(t, ExprAdditive, expr.Kind)
	assert.Equal(t, "-", expr.Operator)
	assert.Equal(t, "a - b", expr.String())
}

func TestCallWithArgumentsAndTrailingLambda(t *testing.T) {
	expr := initializerOf(t, "val x = run(1, named = 2) { done() }\n")

	// A trailing lambda parses as an outer call wrapping the argument
	// call.
	require.Equal(t, ExprCall, expr.Kind)
	require.NotNil(t, expr.Call.Lambda)

	inner := expr.Inner
	require.Equal(t, ExprCall, inner.Kind)
	assert.Equal(t, "run", inner.Inner.Identifier)
	require.Len(t, inner.Call.Arguments, 2)
	assert.Empty(t, inner.Call.Arguments[0].Name)
	assert.Equal(t, "named", inner.Call.Arguments[1].Name)
}

func TestNavigationChain(t *testing.T) {
	expr := initializerOf(t, "val x = user.name\n")

	require.Equal(t, ExprNavigation, expr.Kind)
	assert.Equal(t, "user", expr.Inner.Identifier)
	assert.Equal(t, "name", expr.Navigation.Identifier)
	assert.Equal(t, "user.name", expr.String())
}

func TestElvisAndRange(t *testing.T) {
	elvis := initializerOf(t, "val x = a ?: b\n")
	require.Equal(t, ExprElvis, elvis.Kind)

	rng := initializerOf(t, "val x = 1..10\n")
	require.Equal(t, ExprRange, rng.Kind)
	assert.Equal(t, ExprLiteral, rng.Left.Kind)
}

func TestCheckExpressions(t *testing.T) {
	in := initializerOf(t, "val x = a in b\n")
	require.Equal(t, ExprCheckIn, in.Kind)

	is := initializerOf(t, "val x = a is String\n")
	require.Equal(t, ExprCheckIs, is.Kind)
	require.NotNil(t, is.Type)
	assert.Equal(t, "String", is.Type.Name)
}

func TestIfExpressionBranches(t *testing.T) {
	expr := initializerOf(t, "val x = if (flag) 1 else 2\n")

	require.Equal(t, ExprIf, expr.Kind)
	require.NotNil(t, expr.If)
	assert.Equal(t, ExprIdentifier, expr.If.Condition.Kind)
	require.Len(t, expr.If.Then.Statements, 1)
	require.NotNil(t, expr.If.Else)
	require.Len(t, expr.If.Else.Statements, 1)
}

func TestWhenWithSubjectAndElse(t *testing.T) {
	// Braced arm bodies keep each entry unambiguous for the parser.
	expr := initializerOf(t, `val x = when (code) {
    1 -> { "one" }
    in 2..3 -> { "few" }
    is String -> { "str" }
    else -> { "many" }
}
`)

	require.Equal(t, ExprWhen, expr.Kind)
	when := expr.When
	require.NotNil(t, when.Subject)
	assert.Equal(t, "code", when.Subject.Identifier)
	require.Len(t, when.Entries, 4)
	require.NotNil(t, when.Entries[0].Condition)
	assert.Equal(t, WhenConditionExpression, when.Entries[0].Condition.Kind)
	assert.Equal(t, WhenConditionRange, when.Entries[1].Condition.Kind)
	assert.Equal(t, WhenConditionType, when.Entries[2].Condition.Kind)
	assert.Nil(t, when.Entries[3].Condition, "else arm carries no condition")
}

func TestTryCatchFinally(t *testing.T) {
	expr := initializerOf(t, `val x = try {
    risky()
} catch (e: Exception) {
    fallback()
} finally {
    cleanup()
}
`)

	require.Equal(t, ExprTry, expr.Kind)
	try := expr.Try
	require.Len(t, try.Block, 1)
	require.Len(t, try.Catches, 1)
	assert.Equal(t, "e", try.Catches[0].Identifier)
	assert.Equal(t, "Exception", try.Catches[0].Type.Name)
	require.Len(t, try.Finally, 1)
}

func TestPrefixAndPostfix(t *testing.T) {
	prefix := initializerOf(t, "val x = !flag\n")
	require.Equal(t, ExprPrefix, prefix.Kind)
	assert.Equal(t, "!", prefix.Operator)

	postfix := initializerOf(t, "val x = count!!\n")
	require.Equal(t, ExprPostfix, postfix.Kind)
	assert.Equal(t, "!!", postfix.Operator)
}

func TestIndexingAndParenthesized(t *testing.T) {
	indexing := initializerOf(t, "val x = items[0]\n")
	require.Equal(t, ExprIndexing, indexing.Kind)
	require.Len(t, indexing.Index, 1)
	assert.Equal(t, "items[0]", indexing.String())

	paren := initializerOf(t, "val x = (a)\n")
	require.Equal(t, ExprParenthesized, paren.Kind)
	assert.Equal(t, "a", paren.Inner.Identifier)
}
