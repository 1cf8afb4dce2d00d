package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
)

func phpProfile() *Profile {
	return &Profile{
		ID:         "php",
		Extensions: []string{".php"},
		language:   sitter.NewLanguage(php.LanguagePHP()),
		Rules: []Rule{
			{
				Query:        `(function_definition body: (compound_statement) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:        `(method_declaration body: (compound_statement) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityFunctionBody,
			},
			{
				Query:        `(class_declaration body: (declaration_list) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityContainerBody,
			},
			{
				Query:        `(trait_declaration body: (declaration_list) @body) @definition`,
				Role:         SignatureOnly,
				Priority:     PrioritySignature,
				BodyPriority: PriorityContainerBody,
			},
			{
				Query:    `(property_declaration) @definition`,
				Role:     FullDefinition,
				Priority: PrioritySignature,
			},
			{
				Query:    `(const_declaration) @definition`,
				Role:     FullDefinition,
				Priority: PrioritySignature,
			},
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
		},
	}
}
