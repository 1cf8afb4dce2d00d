package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/sigpress/internal/compress"
)

// Test Plan for document assembly:
// - Style parsing accepts the three styles case-insensitively and rejects
//   anything else
// - Markdown output carries the tree block and fenced file sections
// - XML output escapes path and content
// - Plain output separates files with rulers
// - The directory tree nests and sorts directories before files

func testDocument() *Document {
	return &Document{
		RootDir: "/work/demo",
		Files: []compress.Result{
			{Path: "src/app.ts", Content: "const x = 1;\n", Language: "typescript", Outcome: compress.OutcomeCompressed},
			{Path: "main.go", Content: "package main\n", Language: "go", Outcome: compress.OutcomeCompressed},
		},
	}
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"markdown", "XML", "Plain"} {
		_, err := ParseStyle(name)
		assert.NoError(t, err, name)
	}

	_, err := ParseStyle("html")
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestRender_Markdown(t *testing.T) {
	t.Parallel()

	got, err := Render(testDocument(), StyleMarkdown)
	require.NoError(t, err)

	assert.Contains(t, got, "# Repository: /work/demo")
	assert.Contains(t, got, "## Directory Structure")
	assert.Contains(t, got, "### src/app.ts")
	assert.Contains(t, got, "```typescript\nconst x = 1;\n```")
	assert.Contains(t, got, "```go\npackage main\n```")
}

func TestRender_XMLEscapes(t *testing.T) {
	t.Parallel()

	doc := &Document{
		RootDir: "/work/demo",
		Files: []compress.Result{
			{Path: "a.ts", Content: "if (a < b && c > d) {}\n", Language: "typescript"},
		},
	}

	got, err := Render(doc, StyleXML)
	require.NoError(t, err)

	assert.Contains(t, got, `<file path="a.ts">`)
	assert.Contains(t, got, "a &lt; b &amp;&amp; c &gt; d")
	assert.NotContains(t, got, "a < b && c > d")
}

func TestRender_Plain(t *testing.T) {
	t.Parallel()

	got, err := Render(testDocument(), StylePlain)
	require.NoError(t, err)

	assert.Contains(t, got, "File: src/app.ts")
	assert.Contains(t, got, "File: main.go")
	assert.Contains(t, got, "================")
}

func TestBuildTree(t *testing.T) {
	t.Parallel()

	tree := buildTree([]string{
		"src/app.ts",
		"src/util/strings.ts",
		"main.go",
	})

	lines := strings.Split(strings.TrimRight(tree, "\n"), "\n")
	assert.Equal(t, []string{
		"src/",
		"  util/",
		"    strings.ts",
		"  app.ts",
		"main.go",
	}, lines)
}
