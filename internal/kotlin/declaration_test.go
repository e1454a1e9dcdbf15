package kotlin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionModifiersParametersAndBody(t *testing.T) {
	file := parseFile(t, `package p

class Foo {
    private suspend fun concatenate(str1: String, str2: String): String {
        return str1 + str2
    }
}
`)

	fn := file.FindFunction("concatenate")
	require.NotNil(t, fn)

	require.Len(t, fn.Modifiers, 2)
	assert.Equal(t, ModifierVisibility, fn.Modifiers[0].Kind)
	assert.Equal(t, "private", fn.Modifiers[0].Text)
	assert.Equal(t, ModifierFunction, fn.Modifiers[1].Kind)
	assert.Equal(t, "suspend", fn.Modifiers[1].Text)

	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "str1", fn.Parameters[0].Name)
	assert.Equal(t, "String", fn.Parameters[0].Type.Name)

	require.NotNil(t, fn.ReturnType)
	assert.Equal(t, "String", fn.ReturnType.Name)

	require.NotNil(t, fn.Body)
	assert.Equal(t, BodyBlock, fn.Body.Kind)
	require.Len(t, fn.Body.Statements, 1)

	assert.Equal(t,
		"private suspend fun concatenate(str1: String, str2: String): String",
		fn.Signature())
}

func TestFunctionExpressionBody(t *testing.T) {
	file := parseFile(t, "fun twice(n: Int): Int = n * 2\n")

	fn := file.FindFunction("twice")
	require.NotNil(t, fn)
	require.NotNil(t, fn.Body)
	assert.Equal(t, BodyExpression, fn.Body.Kind)
	require.NotNil(t, fn.Body.Expression)
	assert.Equal(t, ExprMultiplicative, fn.Body.Expression.Kind)
}

func TestAbstractFunctionHasNoBody(t *testing.T) {
	file := parseFile(t, `interface Clickable {
    fun onLongClick(view: View)
}
`)

	require.Len(t, file.Declarations, 1)
	class := file.Declarations[0].Class
	assert.Equal(t, KindInterface, class.Kind)

	fn := file.FindFunction("onLongClick")
	require.NotNil(t, fn)
	assert.Nil(t, fn.Body)
	assert.Nil(t, fn.ReturnType)
	assert.Equal(t, "fun onLongClick(view: View)", fn.Signature())
}

func TestClassPrimaryConstructorAndDelegations(t *testing.T) {
	file := parseFile(t, `open class Base(n: Int)

class Person(val name: String, age: Int) : Base(1), Comparable {
}
`)

	require.Len(t, file.Declarations, 2)
	person := file.Declarations[1].Class
	require.NotNil(t, person)
	assert.Equal(t, "Person", person.Name)

	require.NotNil(t, person.Constructor)
	require.Len(t, person.Constructor.Parameters, 2)
	assert.Equal(t, ParameterVal, person.Constructor.Parameters[0].Mutability)
	assert.Equal(t, "name", person.Constructor.Parameters[0].Name)
	assert.Equal(t, ParameterPlain, person.Constructor.Parameters[1].Mutability)

	require.Len(t, person.Delegations, 2)
	assert.Equal(t, DelegationConstructor, person.Delegations[0].Kind)
	assert.Equal(t, "Base", person.Delegations[0].Constructor.Type.Name)
	assert.Equal(t, DelegationType, person.Delegations[1].Kind)
	assert.Equal(t, "Comparable", person.Delegations[1].Type.Name)
}

func TestEnumClassEntries(t *testing.T) {
	file := parseFile(t, `enum class Direction {
    NORTH,
    SOUTH,
    EAST,
    WEST
}
`)

	require.Len(t, file.Declarations, 1)
	enum := file.Declarations[0].Class
	assert.Equal(t, KindEnum, enum.Kind)
	require.NotNil(t, enum.Body)
	require.Len(t, enum.Body.Entries, 4)
	assert.Equal(t, "NORTH", enum.Body.Entries[0].Name)
	assert.Equal(t, "WEST", enum.Body.Entries[3].Name)
}

func TestEnumEntryArguments(t *testing.T) {
	file := parseFile(t, `enum class Planet(mass: Int) {
    MERCURY(3)
}
`)

	require.Len(t, file.Declarations, 1, "warnings: %v", file.Warnings)
	enum := file.Declarations[0].Class
	require.NotNil(t, enum.Body)
	require.Len(t, enum.Body.Entries, 1)
	entry := enum.Body.Entries[0]
	assert.Equal(t, "MERCURY", entry.Name)
	require.Len(t, entry.Arguments, 1)
}

func TestObjectAndCompanion(t *testing.T) {
	file := parseFile(t, `object Registry {
    fun lookup(id: Int): String {
        return ""
    }
}

class Widget {
    companion object {
        fun create(): Widget {
            return Widget()
        }
    }
}
`)

	require.Len(t, file.Declarations, 2)
	registry := file.Declarations[0].Object
	require.NotNil(t, registry)
	assert.Equal(t, "Registry", registry.Name)
	require.NotNil(t, registry.Body)
	require.Len(t, registry.Body.Functions, 1)

	widget := file.Declarations[1].Class
	require.NotNil(t, widget.Body)
	require.Len(t, widget.Body.Companions, 1)
	assert.Empty(t, widget.Body.Companions[0].Name)
	require.NotNil(t, widget.Body.Companions[0].Body.FindFunction("create"))
}

func TestSecondaryConstructor(t *testing.T) {
	file := parseFile(t, `class Point(val x: Int, val y: Int) {
    constructor(v: Int) : this(v, v) {
        log(v)
    }
}
`)

	require.Len(t, file.Declarations, 1, "warnings: %v", file.Warnings)
	point := file.Declarations[0].Class
	require.NotNil(t, point.Body)
	require.Len(t, point.Body.Constructors, 1)

	ctor := point.Body.Constructors[0]
	require.Len(t, ctor.Parameters, 1)
	assert.Equal(t, "v", ctor.Parameters[0].Name)
	require.NotNil(t, ctor.Delegation)
	assert.Equal(t, DelegateThis, ctor.Delegation.Kind)
	require.Len(t, ctor.Delegation.Arguments, 2)
	require.Len(t, ctor.Body, 1)
}

func TestTypeAlias(t *testing.T) {
	file := parseFile(t, "typealias Handler = String\n")

	require.Len(t, file.Declarations, 1)
	require.Equal(t, DeclTypeAlias, file.Declarations[0].Kind)
	alias := file.Declarations[0].TypeAlias
	assert.Equal(t, "Handler", alias.Name)
	assert.Equal(t, "String", alias.Type.Name)
}

func TestStatementsInsideBody(t *testing.T) {
	file := parseFile(t, `fun loop(items: List) {
    var total: Int = 0
    for (item in items) {
        total += 1
    }
    while (total > 0) {
        total -= 1
    }
}
`)

	fn := file.FindFunction("loop")
	require.NotNil(t, fn)
	require.NotNil(t, fn.Body)
	statements := fn.Body.Statements
	require.Len(t, statements, 3)

	assert.Equal(t, StmtDeclaration, statements[0].Kind)

	require.Equal(t, StmtFor, statements[1].Kind)
	loop := statements[1].For
	require.Len(t, loop.Variables, 1)
	assert.Equal(t, "item", loop.Variables[0].Name)
	assert.Equal(t, "items", loop.Iterable.Identifier)
	require.Len(t, loop.Body.Statements, 1)
	assert.Equal(t, StmtAssignment, loop.Body.Statements[0].Kind)
	assert.Equal(t, "+=", loop.Body.Statements[0].Assignment.Operator)

	require.Equal(t, StmtWhile, statements[2].Kind)
	while := statements[2].While
	assert.Equal(t, ExprComparison, while.Condition.Kind)
	require.Len(t, while.Body.Statements, 1)
}
