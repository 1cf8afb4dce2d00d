package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for configuration:
// - Defaults are valid and compression is on by default
// - Validation rejects bad styles, negative workers, blank placeholders,
//   and empty include lists
// - The loader falls back to defaults with no config file present
// - A partial config file overrides only the keys it names
// - Environment variables override the config file

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, Validate(cfg))

	assert.True(t, cfg.Compression.Enabled)
	assert.Equal(t, "markdown", cfg.Output.Style)
	assert.NotEmpty(t, cfg.Paths.Include)
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "bad style",
			mutate:  func(c *Config) { c.Output.Style = "html" },
			wantErr: ErrInvalidStyle,
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Compression.Workers = -1 },
			wantErr: ErrInvalidWorkers,
		},
		{
			name:    "blank placeholder",
			mutate:  func(c *Config) { c.Compression.Placeholder = "" },
			wantErr: ErrEmptyPlaceholder,
		},
		{
			name:    "no includes",
			mutate:  func(c *Config) { c.Paths.Include = nil },
			wantErr: ErrNoIncludePatterns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, Validate(cfg), tt.wantErr)
		})
	}
}

func TestLoader_NoConfigFile(t *testing.T) {
	t.Parallel()

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, Default().Output.Style, cfg.Output.Style)
	assert.Equal(t, Default().Compression.Placeholder, cfg.Compression.Placeholder)
}

func TestLoader_PartialConfigFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	configDir := filepath.Join(root, ".sigpress")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "config.yml"),
		[]byte("output:\n  style: xml\n"),
		0o644,
	))

	cfg, err := NewLoader(root).Load()
	require.NoError(t, err)

	assert.Equal(t, "xml", cfg.Output.Style)
	// Untouched keys keep their defaults.
	assert.True(t, cfg.Compression.Enabled)
	assert.NotEmpty(t, cfg.Paths.Include)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	root := t.TempDir()
	configDir := filepath.Join(root, ".sigpress")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "config.yml"),
		[]byte("output:\n  style: xml\n"),
		0o644,
	))

	t.Setenv("SIGPRESS_OUTPUT_STYLE", "plain")

	cfg, err := NewLoader(root).Load()
	require.NoError(t, err)

	assert.Equal(t, "plain", cfg.Output.Style)
}

func TestLoader_InvalidConfigRejected(t *testing.T) {
	root := t.TempDir()
	configDir := filepath.Join(root, ".sigpress")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "config.yml"),
		[]byte("output:\n  style: html\n"),
		0o644,
	))

	_, err := NewLoader(root).Load()
	assert.ErrorIs(t, err, ErrInvalidStyle)
}
