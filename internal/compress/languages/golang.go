package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	golang "github.com/tree-sitter/tree-sitter-go/bindings/go"
)

func goProfile() *Profile {
	return &Profile{
		ID:         "go",
		Extensions: []string{".go"},
		language:   sitter.NewLanguage(golang.Language()),
		Rules: []Rule{
			{
				Query:        `(function_declaration body: (block) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:        `(method_declaration body: (block) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			// Function literals assigned to vars or fields still lose
			// their bodies.
			{
				Query:        `(func_literal body: (block) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:    `(type_declaration) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
			{
				Query:    `(const_declaration) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
			{
				Query:    `(var_declaration) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
		},
	}
}
