package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

func pythonProfile() *Profile {
	return &Profile{
		ID:         "python",
		Extensions: []string{".py", ".pyi"},
		language:   sitter.NewLanguage(python.Language()),
		Rules: []Rule{
			{
				Query:        `(function_definition body: (block) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:        `(class_definition body: (block) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityContainerBody,
			},
			// Decorators and class-level assignments sit inside container
			// bodies and would otherwise be swallowed by the class band.
			{
				Query:    `(decorator) @definition`,
				Role:     NameAnchor,
				Priority: PrioritySignature,
			},
			{
				Query:    `(expression_statement (assignment)) @definition`,
				Role:     FullDefinition,
				Priority: PrioritySignature,
			},
		},
	}
}
