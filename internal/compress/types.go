// Package compress implements the source-to-signature compression engine:
// it parses a source file with the grammar matching its extension, runs the
// language's capture queries over the tree, resolves the matches into a
// keep/elide partition of the file, and splices the kept bytes back together
// with one placeholder line per elided run.
package compress

import "github.com/mvp-joe/sigpress/internal/compress/languages"

// SourceFile is one input to the engine. The caller owns it; the engine
// reads it for the duration of a single call.
type SourceFile struct {
	Path    string
	Content string
}

// Outcome records why a file's content was or was not rewritten. Callers
// that only want the text can ignore it; tests assert on it.
type Outcome int

const (
	// OutcomeCompressed means the content was rewritten from resolved ranges.
	OutcomeCompressed Outcome = iota

	// OutcomeUnsupported means no language profile matched the extension.
	OutcomeUnsupported

	// OutcomeParseFailed means the grammar produced no usable tree.
	OutcomeParseFailed

	// OutcomeNoRules means the profile had no compilable capture rules.
	OutcomeNoRules

	// OutcomeDisabled means compression was switched off.
	OutcomeDisabled

	// OutcomeSkipped means the file was still queued when the context was
	// canceled.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompressed:
		return "compressed"
	case OutcomeUnsupported:
		return "unsupported"
	case OutcomeParseFailed:
		return "parse-failed"
	case OutcomeNoRules:
		return "no-rules"
	case OutcomeDisabled:
		return "disabled"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result pairs a path with its (possibly unchanged) content. Content equals
// the input byte-for-byte whenever Outcome is not OutcomeCompressed.
type Result struct {
	Path     string
	Content  string
	Outcome  Outcome
	Language string
}

// Match is one capture produced by running a rule's query against a tree:
// a byte span, the rule's role and priority, and the matched node's kind.
// Matches whose role is languages.Body claim their span for elision; all
// other roles claim it for retention.
type Match struct {
	StartByte uint
	EndByte   uint
	Role      languages.Role
	Priority  int
	NodeKind  string
}

// Range is one entry of the resolved keep/elide partition. The resolver
// guarantees the sequence is sorted, contiguous, non-overlapping, and covers
// the whole file.
type Range struct {
	StartByte uint
	EndByte   uint
	Keep      bool
}
