package compress

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mvp-joe/sigpress/internal/compress/languages"
)

// collectMatches runs every compiled rule against the tree and returns the
// raw capture matches. The same tree can be queried repeatedly with
// different rule sets without re-parsing. Order is not significant; the
// resolver imposes its own.
func collectMatches(rules []languages.CompiledRule, root *sitter.Node, source []byte) []Match {
	var out []Match

	for _, rule := range rules {
		qc := sitter.NewQueryCursor()

		matches := qc.Matches(rule.Query, root, source)
		for m := matches.Next(); m != nil; m = matches.Next() {
			var definition, body *sitter.Node
			for i := range m.Captures {
				capture := &m.Captures[i]
				switch {
				case uint32(capture.Index) == rule.DefinitionIndex:
					definition = &capture.Node
				case rule.BodyIndex >= 0 && int(capture.Index) == rule.BodyIndex:
					body = &capture.Node
				}
			}
			if definition == nil {
				continue
			}
			out = append(out, expandMatch(rule, definition, body)...)
		}

		qc.Close()
	}

	return out
}

// expandMatch turns one query match into claim matches. A body capture
// splits the definition at the body's start byte: the head is kept at the
// rule's priority, the tail elided at the rule's body priority. Without a
// body capture the whole definition is kept.
func expandMatch(rule languages.CompiledRule, definition, body *sitter.Node) []Match {
	defStart := definition.StartByte()
	defEnd := definition.EndByte()
	if defEnd <= defStart {
		return nil
	}

	if body == nil || body.StartByte() <= defStart || body.StartByte() >= defEnd {
		return []Match{{
			StartByte: defStart,
			EndByte:   defEnd,
			Role:      rule.Role,
			Priority:  rule.Priority,
			NodeKind:  definition.Kind(),
		}}
	}

	return []Match{
		{
			StartByte: defStart,
			EndByte:   body.StartByte(),
			Role:      rule.Role,
			Priority:  rule.Priority,
			NodeKind:  definition.Kind(),
		},
		{
			StartByte: body.StartByte(),
			EndByte:   defEnd,
			Role:      languages.Body,
			Priority:  rule.BodyPriority,
			NodeKind:  body.Kind(),
		},
	}
}
