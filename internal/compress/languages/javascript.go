package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

func javascriptProfile() *Profile {
	return &Profile{
		ID:         "javascript",
		Extensions: []string{".js", ".jsx", ".mjs", ".cjs"},
		language:   sitter.NewLanguage(javascript.Language()),
		Rules: []Rule{
			{
				Query:        `(function_declaration body: (statement_block) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:        `(generator_function_declaration body: (statement_block) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:        `(function_expression body: (statement_block) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:        `(method_definition body: (statement_block) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			// Arrow bodies may be a block or a bare expression; both elide.
			{
				Query:        `(arrow_function body: (_) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:        `(class_declaration body: (class_body) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityContainerBody,
			},
			{
				Query:    `(field_definition) @definition`,
				Role:     FullDefinition,
				Priority: PrioritySignature,
			},
		},
	}
}
