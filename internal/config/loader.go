package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (SIGPRESS_*)
// 2. Config file (.sigpress/config.yml or .sigpress/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".sigpress")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("SIGPRESS")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., SIGPRESS_OUTPUT_STYLE)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("output.style")
	v.BindEnv("output.file")
	v.BindEnv("compression.enabled")
	v.BindEnv("compression.placeholder")
	v.BindEnv("compression.workers")

	setDefaults(v)

	// Missing config file is fine; defaults plus env carry the run.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults mirrors Default() into viper so partial config files only
// override the keys they name.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("output.style", defaults.Output.Style)
	v.SetDefault("output.file", defaults.Output.File)
	v.SetDefault("compression.enabled", defaults.Compression.Enabled)
	v.SetDefault("compression.placeholder", defaults.Compression.Placeholder)
	v.SetDefault("compression.workers", defaults.Compression.Workers)
	v.SetDefault("paths.include", defaults.Paths.Include)
	v.SetDefault("paths.ignore", defaults.Paths.Ignore)
}
