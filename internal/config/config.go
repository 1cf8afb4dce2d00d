// Package config defines the sigpress configuration and its loader.
package config

// Config represents the complete sigpress configuration.
// It can be loaded from .sigpress/config.yml with environment variable
// overrides.
type Config struct {
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Compression CompressionConfig `yaml:"compression" mapstructure:"compression"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
}

// OutputConfig controls the assembled document.
type OutputConfig struct {
	Style string `yaml:"style" mapstructure:"style"` // "markdown", "xml", or "plain"
	File  string `yaml:"file" mapstructure:"file"`   // output path; empty writes to stdout
}

// CompressionConfig controls the engine.
type CompressionConfig struct {
	Enabled     bool   `yaml:"enabled" mapstructure:"enabled"`
	Placeholder string `yaml:"placeholder" mapstructure:"placeholder"` // elision marker line
	Workers     int    `yaml:"workers" mapstructure:"workers"`         // 0 = number of CPUs
}

// PathsConfig defines which files to pack and which to ignore.
type PathsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns to pack
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to skip
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Style: "markdown",
			File:  "",
		},
		Compression: CompressionConfig{
			Enabled:     true,
			Placeholder: "⋮----",
			Workers:     0,
		},
		Paths: PathsConfig{
			Include: []string{
				"**/*.c",
				"**/*.h",
				"**/*.cpp",
				"**/*.cc",
				"**/*.cxx",
				"**/*.hpp",
				"**/*.hh",
				"**/*.go",
				"**/*.java",
				"**/*.js",
				"**/*.jsx",
				"**/*.mjs",
				"**/*.cjs",
				"**/*.php",
				"**/*.py",
				"**/*.pyi",
				"**/*.rb",
				"**/*.rs",
				"**/*.ts",
				"**/*.tsx",
				"**/*.mts",
				"**/*.cts",
				"**/*.md",
			},
			Ignore: []string{
				"node_modules/**",
				"vendor/**",
				".git/**",
				"dist/**",
				"build/**",
				"target/**",
				"__pycache__/**",
				"*.min.js",
				"*.test",
				"*.pyc",
			},
		},
	}
}
