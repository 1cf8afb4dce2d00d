package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the scanner:
// - Include patterns select files anywhere in the tree, including the root
// - Ignore patterns prune files and whole directories
// - Binary files are skipped
// - Contents and slash-separated relative paths come back in walk order
// - Invalid glob patterns fail construction

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScan_IncludeAndIgnore(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "src/app.ts", "export {}\n")
	writeFile(t, root, "node_modules/dep/index.js", "module.exports = {}\n")
	writeFile(t, root, "README.md", "# readme\n")

	s, err := New(root,
		[]string{"**/*.go", "**/*.ts", "**/*.js"},
		[]string{"node_modules/**"},
	)
	require.NoError(t, err)

	files, err := s.Scan()
	require.NoError(t, err)

	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"main.go", "src/app.ts"}, paths)
	assert.Equal(t, "package main\n", files[0].Content)
}

func TestScan_SkipsBinaryFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "ok.go", "package ok\n")
	writeFile(t, root, "blob.go", "package blob\x00\x01\x02")

	s, err := New(root, []string{"**/*.go"}, nil)
	require.NoError(t, err)

	files, err := s.Scan()
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "ok.go", files[0].Path)
}

func TestScan_IgnorePrunesDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "keep/a.go", "package a\n")
	writeFile(t, root, "vendor/lib/b.go", "package b\n")

	s, err := New(root, []string{"**/*.go"}, []string{"vendor/**"})
	require.NoError(t, err)

	files, err := s.Scan()
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "keep/a.go", files[0].Path)
}

func TestNew_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := New(t.TempDir(), []string{"[broken"}, nil)
	assert.Error(t, err)
}
