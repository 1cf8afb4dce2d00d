package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

// cProfile covers C. The ".h" extension is claimed here by convention;
// C++ headers use ".hpp"/".hh".
func cProfile() *Profile {
	return &Profile{
		ID:         "c",
		Extensions: []string{".c", ".h"},
		language:   sitter.NewLanguage(c.Language()),
		Rules: []Rule{
			{
				Query:        `(function_definition body: (compound_statement) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:    `(struct_specifier body: (field_declaration_list)) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
			{
				Query:    `(union_specifier body: (field_declaration_list)) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
			{
				Query:    `(enum_specifier body: (enumerator_list)) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
			{
				Query:    `(type_definition) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
		},
	}
}
