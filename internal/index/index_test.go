package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kls-dev/kls/internal/fileutil"
)

func writeFile(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildIndexesKotlinFiles(t *testing.T) {
	root := t.TempDir()
	fooPath := writeFile(t, root, "Foo.kt", `package demo

class Foo {
    fun bar(): Int {
        return 1
    }
}
`)
	barPath := writeFile(t, root, "nested/Bar.kt", `package demo.nested

val answer: Int = 42
`)
	writeFile(t, root, "notes.txt", "not kotlin\n")

	ix, err := Build(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 2, ix.Len())
	assert.Equal(t, []string{fooPath, barPath}, ix.Paths())

	entry, ok := ix.Entry(fooPath)
	require.True(t, ok)
	require.NoError(t, entry.Err)
	require.NotNil(t, entry.File)
	assert.Equal(t, "demo", entry.File.Package)
	assert.Equal(t, fileutil.HashBytes(entry.Content), entry.Hash)
	require.NotNil(t, entry.File.FindFunction("bar"))
}

func TestBuildKeepsFileWithUnrecognizedDeclarations(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "Mixed.kt", `package demo

foo()

val ok: Int = 1
`)

	ix, err := Build(context.Background(), root)
	require.NoError(t, err)

	entry, ok := ix.Entry(path)
	require.True(t, ok)
	require.NoError(t, entry.Err)
	require.NotNil(t, entry.File)
	assert.NotEmpty(t, entry.File.Warnings)
	require.NotNil(t, entry.File.FindProperty("ok"))
}

func TestBuildHonorsIgnoreRules(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".klsignore", "generated/\n")
	kept := writeFile(t, root, "Keep.kt", "val keep: Int = 1\n")
	writeFile(t, root, "generated/Skip.kt", "val skip: Int = 2\n")
	writeFile(t, root, "build/Out.kt", "val out: Int = 3\n")

	ix, err := Build(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 1, ix.Len())
	assert.Equal(t, []string{kept}, ix.Paths())
}

func TestFindFileByStem(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/Foo.kt", "val a: Int = 1\n")
	first := writeFile(t, root, "Foo.kt", "val b: Int = 2\n")

	ix, err := Build(context.Background(), root)
	require.NoError(t, err)

	entry := ix.FindFileByStem("Foo")
	require.NotNil(t, entry)
	assert.Equal(t, first, entry.Path)

	assert.Nil(t, ix.FindFileByStem("Missing"))
}

func TestBuildEmptyRoot(t *testing.T) {
	ix, err := Build(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, ix.Len())
}
