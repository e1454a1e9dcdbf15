package kotlin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func propertyOf(t *testing.T, source string) *Property {
	t.Helper()
	file := parseFile(t, source)
	require.Len(t, file.Declarations, 1)
	require.Equal(t, DeclProperty, file.Declarations[0].Kind)
	return file.Declarations[0].Property
}

func TestPropertyDeclaredTypeAndInitializer(t *testing.T) {
	property := propertyOf(t, "val count: Int = 0\n")

	assert.Equal(t, MutabilityVal, property.Mutability)
	assert.Equal(t, "count", property.Name())
	require.NotNil(t, property.DeclaredType())
	assert.Equal(t, "Int", property.DeclaredType().Name)
	require.NotNil(t, property.Initializer)
	assert.Equal(t, ExprLiteral, property.Initializer.Kind)
	assert.Equal(t, "val count: Int", property.Signature())
}

func TestPropertyInferredType(t *testing.T) {
	property := propertyOf(t, "val f = Foo()\n")

	assert.Nil(t, property.DeclaredType())
	require.NotNil(t, property.Initializer)
	assert.Equal(t, ExprCall, property.Initializer.Kind)
	assert.Equal(t, "f = Foo()", property.Signature())
}

func TestPropertyDelegate(t *testing.T) {
	property := propertyOf(t, "val lazyValue: String by lazy { compute() }\n")

	assert.Nil(t, property.Initializer)
	require.NotNil(t, property.Delegate)
	assert.Equal(t, ExprCall, property.Delegate.Kind)
	assert.Equal(t, "val lazyValue: String", property.Signature())
}

func TestPropertyDestructuring(t *testing.T) {
	property := propertyOf(t, "val (first, second) = pair\n")

	require.Len(t, property.Variables, 2)
	assert.Equal(t, "first", property.Variables[0].Name)
	assert.Equal(t, "second", property.Variables[1].Name)
	assert.Equal(t, "first", property.Name())
}

func TestPropertyAccessorsInsideDeclaration(t *testing.T) {
	file := parseFile(t, `class Box {
    var size: Int = 0
        get() = field + 1
        set(value) {
            field = value
        }
}
`)

	property := file.FindProperty("size")
	require.NotNil(t, property)
	assert.Equal(t, MutabilityVar, property.Mutability)

	require.NotNil(t, property.Getter)
	require.NotNil(t, property.Getter.Body)
	assert.Equal(t, BodyExpression, property.Getter.Body.Kind)

	require.NotNil(t, property.Setter)
	require.NotNil(t, property.Setter.Parameter)
	assert.Equal(t, "value", property.Setter.Parameter.Name)
	require.NotNil(t, property.Setter.Body)
	assert.Equal(t, BodyBlock, property.Setter.Body.Kind)
}

func TestPropertyModifiersInSignature(t *testing.T) {
	file := parseFile(t, `class Config {
    private val retries: Int = 3
}
`)

	property := file.FindProperty("retries")
	require.NotNil(t, property)
	assert.Equal(t, "private val retries: Int", property.Signature())
}

func TestPropertyNullableType(t *testing.T) {
	property := propertyOf(t, "var parent: Node? = null\n")

	declared := property.DeclaredType()
	require.NotNil(t, declared)
	assert.Equal(t, TypeNullable, declared.Kind)
	assert.Equal(t, "var parent: Node?", property.Signature())
}
