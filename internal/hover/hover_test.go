package hover

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kls-dev/kls/internal/index"
	"github.com/kls-dev/kls/internal/span"
)

const fooSource = `class Foo {
    private suspend fun concatenate(str1: String, str2: String): String {
        return str1 + str2
    }

    fun bar(): Int {
        return 1
    }

    fun use(): Int {
        return bar()
    }
}
`

const barSource = `class Bar {
    val f = Foo()

    fun call(): Int {
        return f.bar()
    }

    val g = Unknown()

    fun broken(): Int {
        return g.baz()
    }

    fun chained(): Int {
        return f.bar().hashCode()
    }
}
`

func buildResolver(t *testing.T) (*Resolver, string, string) {
	t.Helper()
	root := t.TempDir()

	fooPath := filepath.Join(root, "Foo.kt")
	require.NoError(t, os.WriteFile(fooPath, []byte(fooSource), 0o644))
	barPath := filepath.Join(root, "Bar.kt")
	require.NoError(t, os.WriteFile(barPath, []byte(barSource), 0o644))

	ix, err := index.Build(context.Background(), root)
	require.NoError(t, err)
	require.Equal(t, 2, ix.Len())

	return New(ix), fooPath, barPath
}

func TestHoverParameterInFunctionBody(t *testing.T) {
	resolver, fooPath, _ := buildResolver(t)

	contents, err := resolver.Hover(fooPath, span.Position{Line: 2, Column: 16})
	require.NoError(t, err)
	assert.Equal(t, "```kotlin\nstr1: String\n```", contents)
}

func TestHoverFunctionCall(t *testing.T) {
	resolver, fooPath, _ := buildResolver(t)

	contents, err := resolver.Hover(fooPath, span.Position{Line: 10, Column: 16})
	require.NoError(t, err)
	assert.Equal(t, "```kotlin\nfun bar(): Int\n```", contents)
}

func TestHoverNavigationReceiver(t *testing.T) {
	resolver, _, barPath := buildResolver(t)

	contents, err := resolver.Hover(barPath, span.Position{Line: 4, Column: 15})
	require.NoError(t, err)
	assert.Equal(t, "```kotlin\nf = Foo()\n```", contents)
}

func TestHoverMemberAcrossFiles(t *testing.T) {
	resolver, _, barPath := buildResolver(t)

	contents, err := resolver.Hover(barPath, span.Position{Line: 4, Column: 18})
	require.NoError(t, err)
	assert.Equal(t, "```kotlin\nfun bar(): Int\n```", contents)
}

func TestHoverUnresolvableTypeReportsResolutionError(t *testing.T) {
	resolver, _, barPath := buildResolver(t)

	contents, err := resolver.Hover(barPath, span.Position{Line: 10, Column: 18})
	assert.Empty(t, contents)

	var resolutionErr *ResolutionError
	require.ErrorAs(t, err, &resolutionErr)
	assert.Equal(t, "Unknown", resolutionErr.Name)
}

func TestHoverChainedReceiverIsEmpty(t *testing.T) {
	resolver, _, barPath := buildResolver(t)

	// Only a bare identifier receiver carries a declared type to follow;
	// a chained receiver resolves to nothing rather than an error.
	contents, err := resolver.Hover(barPath, span.Position{Line: 14, Column: 24})
	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestHoverOnKeywordIsEmpty(t *testing.T) {
	resolver, fooPath, _ := buildResolver(t)

	contents, err := resolver.Hover(fooPath, span.Position{Line: 0, Column: 0})
	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestHoverUnknownFileIsEmpty(t *testing.T) {
	resolver, _, _ := buildResolver(t)

	contents, err := resolver.Hover("/nowhere/Missing.kt", span.Position{Line: 0, Column: 0})
	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestHoverFallbackForUnknownConstructIsEmpty(t *testing.T) {
	resolver, fooPath, _ := buildResolver(t)

	// A position on whitespace resolves to the surrounding block, which
	// has no hover rendering.
	contents, err := resolver.Hover(fooPath, span.Position{Line: 2, Column: 0})
	require.NoError(t, err)
	assert.Empty(t, contents)
}
