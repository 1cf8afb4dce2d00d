package output

import (
	"sort"
	"strings"
)

// treeNode is one level of the rendered directory tree.
type treeNode struct {
	children map[string]*treeNode
	isFile   bool
}

// buildTree renders slash-separated relative paths as an indented tree,
// directories first, each level sorted. The result ends with a newline.
func buildTree(paths []string) string {
	root := &treeNode{children: map[string]*treeNode{}}
	for _, p := range paths {
		node := root
		parts := strings.Split(p, "/")
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{children: map[string]*treeNode{}}
				node.children[part] = child
			}
			if i == len(parts)-1 {
				child.isFile = true
			}
			node = child
		}
	}

	var b strings.Builder
	writeTree(&b, root, 0)
	return b.String()
}

func writeTree(b *strings.Builder, node *treeNode, depth int) {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, c := node.children[names[i]], node.children[names[j]]
		if a.isFile != c.isFile {
			return !a.isFile
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		child := node.children[name]
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(name)
		if !child.isFile {
			b.WriteString("/")
		}
		b.WriteString("\n")
		writeTree(b, child, depth+1)
	}
}
