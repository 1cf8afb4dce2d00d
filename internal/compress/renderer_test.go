package compress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for the renderer:
// - Keep ranges are spliced byte-for-byte
// - Each elide range becomes exactly one placeholder line
// - A placeholder after a partial kept line gets its own line, with the
//   kept line's trailing blanks dropped
// - A custom placeholder marker is honored
// - Empty range set renders the empty string

func TestRender_KeepOnly(t *testing.T) {
	t.Parallel()

	source := []byte("line one\nline two\n")
	ranges := []Range{{StartByte: 0, EndByte: uint(len(source)), Keep: true}}

	assert.Equal(t, string(source), render(source, ranges, DefaultPlaceholder))
}

func TestRender_ElideBecomesOneLine(t *testing.T) {
	t.Parallel()

	source := []byte("keep\nelide a\nelide b\nelide c\ntail\n")
	ranges := []Range{
		{StartByte: 0, EndByte: 5, Keep: true},
		{StartByte: 5, EndByte: 29, Keep: false},
		{StartByte: 29, EndByte: uint(len(source)), Keep: true},
	}

	got := render(source, ranges, DefaultPlaceholder)
	assert.Equal(t, "keep\n"+DefaultPlaceholder+"\ntail\n", got)
	assert.Equal(t, 1, strings.Count(got, DefaultPlaceholder))
}

func TestRender_PlaceholderAfterPartialLine(t *testing.T) {
	t.Parallel()

	// The kept head ends mid-line with trailing blanks, as a signature cut
	// at its body's start does.
	source := []byte("def f():   pass\n")
	ranges := []Range{
		{StartByte: 0, EndByte: 11, Keep: true},
		{StartByte: 11, EndByte: uint(len(source)), Keep: false},
	}

	got := render(source, ranges, DefaultPlaceholder)
	assert.Equal(t, "def f():\n"+DefaultPlaceholder+"\n", got)
}

func TestRender_ElideAtStart(t *testing.T) {
	t.Parallel()

	source := []byte("gone\nkept\n")
	ranges := []Range{
		{StartByte: 0, EndByte: 5, Keep: false},
		{StartByte: 5, EndByte: uint(len(source)), Keep: true},
	}

	got := render(source, ranges, DefaultPlaceholder)
	assert.Equal(t, DefaultPlaceholder+"\nkept\n", got)
}

func TestRender_CustomPlaceholder(t *testing.T) {
	t.Parallel()

	source := []byte("a\nb\n")
	ranges := []Range{
		{StartByte: 0, EndByte: 2, Keep: true},
		{StartByte: 2, EndByte: 4, Keep: false},
	}

	assert.Equal(t, "a\n// ...\n", render(source, ranges, "// ..."))
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", render(nil, nil, DefaultPlaceholder))
}
