package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
)

// rubyProfile covers Ruby. Methods without a body_statement (empty def/end
// pairs) match no rule and fall through to the default-keep policy.
func rubyProfile() *Profile {
	return &Profile{
		ID:         "ruby",
		Extensions: []string{".rb"},
		language:   sitter.NewLanguage(ruby.Language()),
		Rules: []Rule{
			{
				Query:        `(method (body_statement) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:        `(singleton_method (body_statement) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:        `(class (body_statement) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityContainerBody,
			},
			{
				Query:        `(module (body_statement) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityContainerBody,
			},
			{
				Query:    `(assignment left: (constant)) @definition`,
				Role:     FullDefinition,
				Priority: PrioritySignature,
			},
		},
	}
}
