package compress

import (
	"runtime"

	"github.com/mvp-joe/sigpress/internal/compress/languages"
)

// Options configures a Compressor.
type Options struct {
	// Enabled switches compression on. When false every file passes
	// through unchanged.
	Enabled bool

	// Placeholder is the marker line substituted for elided runs.
	// Empty selects DefaultPlaceholder.
	Placeholder string

	// Workers bounds the pool used by All. Zero or negative selects the
	// number of CPUs.
	Workers int

	// Progress, when set, is called after each file All finishes, with the
	// number completed so far and the total. Calls may come from any
	// worker goroutine.
	Progress func(done, total int)
}

// Compressor is the per-file entry point. It holds only the read-only
// language registry and options, so one instance is safe for concurrent use
// across files.
type Compressor struct {
	registry    *languages.Registry
	placeholder string
	enabled     bool
	workers     int
	progress    func(done, total int)
}

// New creates a Compressor over the given registry. A nil registry selects
// the shared default.
func New(registry *languages.Registry, opts Options) *Compressor {
	if registry == nil {
		registry = languages.Default()
	}
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Compressor{
		registry:    registry,
		placeholder: placeholder,
		enabled:     opts.Enabled,
		workers:     workers,
		progress:    opts.Progress,
	}
}

// File compresses one source file. It never fails: an unsupported extension,
// a grammar that rejects the content outright, or a profile without usable
// rules all degrade to returning the content unchanged, with the reason
// recorded in the Result's Outcome.
func (c *Compressor) File(src SourceFile) Result {
	unchanged := func(outcome Outcome, language string) Result {
		return Result{Path: src.Path, Content: src.Content, Outcome: outcome, Language: language}
	}

	if !c.enabled {
		return unchanged(OutcomeDisabled, "")
	}

	profile := c.registry.Resolve(src.Path)
	if profile == nil {
		return unchanged(OutcomeUnsupported, "")
	}

	rules := profile.CompiledRules()
	if len(rules) == 0 {
		return unchanged(OutcomeNoRules, profile.ID)
	}

	source := []byte(src.Content)
	tree, err := parse(profile.Language(), source)
	if err != nil {
		return unchanged(OutcomeParseFailed, profile.ID)
	}
	defer tree.Close()

	matches := collectMatches(rules, tree.RootNode(), source)
	ranges := resolve(source, matches)

	return Result{
		Path:     src.Path,
		Content:  render(source, ranges, c.placeholder),
		Outcome:  OutcomeCompressed,
		Language: profile.ID,
	}
}
