// Package languages holds the static grammar and query configuration for
// every language the compressor understands. Adding a language is a data
// change: one file declaring a Profile with its grammar and capture rules.
package languages

import (
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Role classifies what a capture rule retains from a matched construct.
type Role int

const (
	// FullDefinition keeps the entire matched node verbatim (interfaces,
	// type aliases, enums).
	FullDefinition Role = iota

	// SignatureOnly keeps the construct's header up to the start of its
	// body sub-node, captured as @body in the rule's query.
	SignatureOnly

	// NameAnchor keeps a bare name node so an otherwise elided construct
	// stays discoverable.
	NameAnchor

	// Body marks a span claimed for elision. Rules never carry this role
	// directly; the query engine derives Body matches from @body captures.
	Body
)

func (r Role) String() string {
	switch r {
	case FullDefinition:
		return "full-definition"
	case SignatureOnly:
		return "signature-only"
	case NameAnchor:
		return "name-anchor"
	case Body:
		return "body"
	default:
		return "unknown"
	}
}

// Priority bands for capture rules. Higher wins where claims overlap; equal
// priority resolves to keep. Function bodies sit above everything so nested
// declarations inside an elided body stay elided, while members of a
// class-like container (band 20/30) punch through the container-body band.
const (
	PriorityContainerBody  = 10
	PrioritySignature      = 20
	PriorityFullDefinition = 30
	PriorityFunctionBody   = 120
)

// Rule declares one capture query for a grammar.
//
// The query must bind "@definition" to the construct of interest. A rule
// whose role is SignatureOnly additionally binds "@body" to the named
// sub-node holding the implementation; the span from the body's start to the
// definition's end is claimed for elision at BodyPriority.
type Rule struct {
	Query        string
	Role         Role
	Priority     int
	BodyPriority int
}

// Profile describes one supported language: its identifier, the file
// extensions that select it, the compiled grammar, and its capture rules.
// Profiles are immutable after construction and safe for concurrent use.
type Profile struct {
	ID         string
	Extensions []string
	Rules      []Rule

	language *sitter.Language

	compileOnce sync.Once
	compiled    []CompiledRule
}

// CompiledRule pairs a Rule with its compiled tree-sitter query and the
// capture indexes the query engine needs.
type CompiledRule struct {
	Rule
	Query           *sitter.Query
	DefinitionIndex uint32
	BodyIndex       int // -1 when the rule has no @body capture
}

// Language returns the profile's compiled grammar handle.
func (p *Profile) Language() *sitter.Language {
	return p.language
}

// CompiledRules compiles the profile's queries on first use and returns the
// ones that compiled cleanly. A rule referencing a node shape the grammar
// does not produce is dropped here instead of failing file compression; the
// package test suite asserts no shipped rule is ever dropped.
func (p *Profile) CompiledRules() []CompiledRule {
	p.compileOnce.Do(func() {
		for _, rule := range p.Rules {
			query, qerr := sitter.NewQuery(p.language, rule.Query)
			if qerr != nil {
				continue
			}

			cr := CompiledRule{Rule: rule, Query: query, BodyIndex: -1}
			found := false
			for i, name := range query.CaptureNames() {
				switch name {
				case "definition":
					cr.DefinitionIndex = uint32(i)
					found = true
				case "body":
					cr.BodyIndex = i
				}
			}
			if !found {
				query.Close()
				continue
			}
			p.compiled = append(p.compiled, cr)
		}
	})
	return p.compiled
}

// Registry maps file extensions to language profiles. It is read-only after
// construction and safe to share across concurrent file processing.
type Registry struct {
	byExt    map[string]*Profile
	profiles []*Profile
}

// NewRegistry builds a registry over all bundled language profiles.
func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]*Profile)}
	for _, p := range []*Profile{
		cProfile(),
		cppProfile(),
		goProfile(),
		javaProfile(),
		javascriptProfile(),
		phpProfile(),
		pythonProfile(),
		rubyProfile(),
		rustProfile(),
		typescriptProfile(),
		tsxProfile(),
	} {
		r.profiles = append(r.profiles, p)
		for _, ext := range p.Extensions {
			// First profile claiming an extension wins; ambiguous
			// extensions (".h" → C, not C++) are ordered accordingly.
			if _, taken := r.byExt[ext]; !taken {
				r.byExt[ext] = p
			}
		}
	}
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the shared process-wide registry.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Resolve returns the profile for a file path's extension, or nil when the
// extension is not recognized. Matching is case-insensitive.
func (r *Registry) Resolve(path string) *Profile {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil
	}
	return r.byExt[ext]
}

// Profiles returns all registered profiles in registration order.
func (r *Registry) Profiles() []*Profile {
	return r.profiles
}
