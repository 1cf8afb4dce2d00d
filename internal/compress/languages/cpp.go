package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
)

// cppProfile covers C++. Classes and structs are containers: the body is
// elided at the container band so member declarations and inline method
// signatures, which sit in higher bands, remain visible.
func cppProfile() *Profile {
	return &Profile{
		ID:         "cpp",
		Extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"},
		language:   sitter.NewLanguage(cpp.Language()),
		Rules: []Rule{
			{
				Query:        `(function_definition body: (compound_statement) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:        `(class_specifier body: (field_declaration_list) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityContainerBody,
			},
			{
				Query:        `(struct_specifier body: (field_declaration_list) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityContainerBody,
			},
			{
				Query:    `(field_declaration) @definition`,
				Role:     FullDefinition,
				Priority: PrioritySignature,
			},
			{
				Query:    `(enum_specifier body: (enumerator_list)) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
			{
				Query:    `(alias_declaration) @definition`,
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
