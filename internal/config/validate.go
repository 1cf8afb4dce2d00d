package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStyle indicates an unsupported output style
	ErrInvalidStyle = errors.New("invalid output style")

	// ErrInvalidWorkers indicates a negative worker count
	ErrInvalidWorkers = errors.New("invalid worker count")

	// ErrEmptyPlaceholder indicates a blank elision marker
	ErrEmptyPlaceholder = errors.New("empty placeholder")

	// ErrNoIncludePatterns indicates an empty include pattern list
	ErrNoIncludePatterns = errors.New("no include patterns")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	switch cfg.Output.Style {
	case "markdown", "xml", "plain":
	default:
		return fmt.Errorf("%w: %q (must be markdown, xml, or plain)", ErrInvalidStyle, cfg.Output.Style)
	}

	if cfg.Compression.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, cfg.Compression.Workers)
	}

	if cfg.Compression.Placeholder == "" {
		return ErrEmptyPlaceholder
	}

	if len(cfg.Paths.Include) == 0 {
		return ErrNoIncludePatterns
	}

	return nil
}
