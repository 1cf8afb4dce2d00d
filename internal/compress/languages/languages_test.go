package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the language registry:
// - Every shipped rule compiles against its grammar (a rule referencing a
//   node shape the grammar does not produce must be caught here, not in
//   production)
// - Every rule's query binds @definition
// - Extension resolution is case-insensitive
// - Ambiguous ".h" resolves to C
// - Unknown extensions resolve to nil
// - Profiles report stable identifiers

func TestCompiledRules_AllRulesCompile(t *testing.T) {
	t.Parallel()

	for _, profile := range NewRegistry().Profiles() {
		compiled := profile.CompiledRules()
		require.Len(t, compiled, len(profile.Rules),
			"%s: a capture rule failed to compile or lacks @definition", profile.ID)

		for _, cr := range compiled {
			assert.NotNil(t, cr.Query, "%s: missing compiled query", profile.ID)
			if cr.Role == SignatureOnly {
				// Containers and function-like rules both need the body
				// sub-node to find the signature boundary.
				assert.GreaterOrEqual(t, cr.BodyIndex, 0,
					"%s: signature-only rule %q has no @body capture", profile.ID, cr.Rule.Query)
			}
		}
	}
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	tests := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"src/app.ts", "typescript"},
		{"src/App.tsx", "tsx"},
		{"lib/util.js", "javascript"},
		{"script.py", "python"},
		{"app/models/user.rb", "ruby"},
		{"src/lib.rs", "rust"},
		{"kernel.c", "c"},
		{"kernel.h", "c"}, // shared header extension resolves to C
		{"engine.cpp", "cpp"},
		{"engine.hpp", "cpp"},
		{"Main.java", "java"},
		{"index.php", "php"},
	}

	for _, tt := range tests {
		profile := registry.Resolve(tt.path)
		require.NotNil(t, profile, "no profile for %s", tt.path)
		assert.Equal(t, tt.want, profile.ID, "wrong profile for %s", tt.path)
	}
}

func TestRegistry_ResolveCaseInsensitive(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	profile := registry.Resolve("LEGACY.C")
	require.NotNil(t, profile)
	assert.Equal(t, "c", profile.ID)

	profile = registry.Resolve("Component.TSX")
	require.NotNil(t, profile)
	assert.Equal(t, "tsx", profile.ID)
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	assert.Nil(t, registry.Resolve("README.md"))
	assert.Nil(t, registry.Resolve("data.json"))
	assert.Nil(t, registry.Resolve("Makefile"))
	assert.Nil(t, registry.Resolve(""))
}

func TestDefault_SharedInstance(t *testing.T) {
	t.Parallel()

	assert.Same(t, Default(), Default())
}
