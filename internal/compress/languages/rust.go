package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

func rustProfile() *Profile {
	return &Profile{
		ID:         "rust",
		Extensions: []string{".rs"},
		language:   sitter.NewLanguage(rust.Language()),
		Rules: []Rule{
			{
				Query:        `(function_item body: (block) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:        `(impl_item body: (declaration_list) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityContainerBody,
			},
			{
				Query:        `(trait_item body: (declaration_list) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityContainerBody,
			},
			// Trait method signatures have no block and need their own claim
			// to survive the trait-body band.
			{
				Query:    `(function_signature_item) @definition`,
				Role:     FullDefinition,
				Priority: PrioritySignature,
			},
			{
				Query:    `(struct_item) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
			{
				Query:    `(enum_item) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
			{
				Query:    `(union_item) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
			{
				Query:    `(type_item) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
			{
				Query:    `(const_item) @definition`,
				Role:     FullDefinition,
				Priority: PrioritySignature,
			},
			{
				Query:    `(static_item) @definition`,
				Role:     FullDefinition,
				Priority: PrioritySignature,
			},
		},
	}
}
