package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

func javaProfile() *Profile {
	return &Profile{
		ID:         "java",
		Extensions: []string{".java"},
		language:   sitter.NewLanguage(java.Language()),
		Rules: []Rule{
			{
				Query:        `(class_declaration body: (class_body) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityContainerBody,
			},
			{
				Query:        `(record_declaration body: (class_body) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityContainerBody,
			},
			{
				Query:        `(method_declaration body: (block) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:        `(constructor_declaration body: (constructor_body) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:    `(field_declaration) @definition`,
				Role:     FullDefinition,
				Priority: PrioritySignature,
			},
			// Interfaces, enums, and annotation types are retained whole;
			// default-method bodies inside them are still clipped by the
			// method rule's higher elide band.
			{
				Query:    `(interface_declaration) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
			{
				Query:    `(enum_declaration) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
			{
				Query:    `(annotation_type_declaration) @definition`,
				Role:     FullDefinition,
				Priority: PriorityFullDefinition,
			},
		},
	}
}
