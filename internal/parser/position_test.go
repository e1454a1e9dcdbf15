package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kls-dev/kls/internal/span"
)

func TestNodeAtReturnsInnermostNode(t *testing.T) {
	content := []byte("fun main() {\n    foo(bar(1))\n}\n")

	tree, err := New().Parse(context.Background(), content)
	require.NoError(t, err)

	// The cursor sits on "bar", which is nested inside the call to foo.
	node := NodeAt(tree.RootNode(), span.Position{Line: 1, Column: 9})
	require.NotNil(t, node)
	assert.Equal(t, "simple_identifier", node.Type())
	assert.Equal(t, "bar", span.Text(node, content))

	node = NodeAt(tree.RootNode(), span.Position{Line: 1, Column: 5})
	require.NotNil(t, node)
	assert.Equal(t, "simple_identifier", node.Type())
	assert.Equal(t, "foo", span.Text(node, content))
}

func TestNodeAtOutsideTree(t *testing.T) {
	content := []byte("val x = 1\n")

	tree, err := New().Parse(context.Background(), content)
	require.NoError(t, err)

	node := NodeAt(tree.RootNode(), span.Position{Line: 40, Column: 0})
	assert.Nil(t, node)
}
