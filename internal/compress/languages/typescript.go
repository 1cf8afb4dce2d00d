package languages

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

func typescriptProfile() *Profile {
	return &Profile{
		ID:         "typescript",
		Extensions: []string{".ts", ".mts", ".cts"},
		language:   sitter.NewLanguage(typescript.LanguageTypescript()),
		Rules:      typescriptRules(),
	}
}

// tsxProfile shares the TypeScript rule set; only the grammar differs.
func tsxProfile() *Profile {
	return &Profile{
		ID:         "tsx",
		Extensions: []string{".tsx"},
		language:   sitter.NewLanguage(typescript.LanguageTSX()),
		Rules:      typescriptRules(),
	}
}

func typescriptRules() []Rule {
	return []Rule{
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
			Query:        `(abstract_class_declaration body: (class_body) @body) @definition`,
			Role:         SignatureOnly,
			Priority:     PrioritySignature,
			BodyPriority: PriorityContainerBody,
		},
		{
			Query:    `(public_field_definition) @definition`,
			Role:     FullDefinition,
			Priority: PrioritySignature,
		},
		{
			Query:    `(method_signature) @definition`,
			Role:     FullDefinition,
			Priority: PrioritySignature,
		},
		{
			Query:    `(abstract_method_signature) @definition`,
			Role:     FullDefinition,
			Priority: PrioritySignature,
		},
		// Interfaces, type aliases, and enums carry no implementation and
		// are kept whole.
		{
			Query:    `(interface_declaration) @definition`,
			Role:     FullDefinition,
			Priority: PriorityFullDefinition,
		},
		{
			Query:    `(type_alias_declaration) @definition`,
			Role:     FullDefinition,
			Priority: PriorityFullDefinition,
		},
		{
			Query:    `(enum_declaration) @definition`,
			Role:     FullDefinition,
			Priority: PriorityFullDefinition,
		},
		{
			Query:    `(function_signature) @definition`,
			Role:     FullDefinition,
			Priority: PriorityFullDefinition,
		},
	}
}
