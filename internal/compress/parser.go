package compress

import (
	"errors"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ErrParseFailed reports that a grammar could not produce a usable tree for
// an input. Partial errors inside an otherwise valid tree do not trigger it.
var ErrParseFailed = errors.New("parse failed")

// parse runs the grammar over the source and returns the tree. The caller
// must Close the returned tree. A nil tree or a root that is nothing but an
// error node counts as total failure; trees with localized error nodes are
// returned as-is and treated as ordinary content downstream.
func parse(language *sitter.Language, source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(language); err != nil {
		return nil, ErrParseFailed
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, ErrParseFailed
	}

	root := tree.RootNode()
	if root == nil || root.IsError() {
		tree.Close()
		return nil, ErrParseFailed
	}

	return tree, nil
}
