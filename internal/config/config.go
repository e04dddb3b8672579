// Package config resolves runtime defaults from .env files and SWATCH_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Environment variable names.
const (
	EnvColours = "SWATCH_COLOURS"
	EnvFormat  = "SWATCH_FORMAT"
	EnvPreview = "SWATCH_PREVIEW"
)

// Preview modes.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// Config holds the defaults used by the CLI when flags are not given.
type Config struct {
	// Colours is the maximum number of colours to extract.
	Colours int

	// Format is the output format (hex, rgb, json, table).
	Format string

	// Preview controls ANSI swatch previews (auto, always, never).
	Preview string
}

// ValidFormats returns the supported output formats.
func ValidFormats() []string {
	return []string{"hex", "rgb", "json", "table"}
}

// ValidPreviewModes returns the supported preview modes.
func ValidPreviewModes() []string {
	return []string{PreviewAuto, PreviewAlways, PreviewNever}
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Colours: colour.DefaultColourCount,
		Format:  "hex",
		Preview: PreviewAuto,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Colours < 1 || c.Colours > colour.MaxColourCount {
		return fmt.Errorf("%w: colours must be between 1 and %d, got %d", colour.ErrInvalidArgument, colour.MaxColourCount, c.Colours)
	}
	if !slices.Contains(ValidFormats(), c.Format) {
		return fmt.Errorf("%w: unsupported format: %s (supported: %s)", colour.ErrInvalidArgument, c.Format, strings.Join(ValidFormats(), ", "))
	}
	if !slices.Contains(ValidPreviewModes(), c.Preview) {
		return fmt.Errorf("%w: unsupported preview mode: %s (supported: %s)", colour.ErrInvalidArgument, c.Preview, strings.Join(ValidPreviewModes(), ", "))
	}
	return nil
}

// Builder provides a fluent interface for constructing a Config.
type Builder struct {
	config   Config
	dotEnv   []string
	useEnv   bool
	warnings []string
}

// NewBuilder creates a new Config builder starting from Default().
func NewBuilder() *Builder {
	return &Builder{config: Default()}
}

// WithDotEnv loads the given .env files before reading the environment.
// With no paths it loads ".env" from the working directory. Missing files are ignored.
func (b *Builder) WithDotEnv(paths ...string) *Builder {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	b.dotEnv = append(b.dotEnv, paths...)
	return b
}

// WithEnvConfig reads SWATCH_COLOURS, SWATCH_FORMAT and SWATCH_PREVIEW.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// Build constructs the Config. Invalid environment values are ignored and
// reported through Warnings.
func (b *Builder) Build() Config {
	for _, path := range b.dotEnv {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		// Load never overrides variables already set in the environment.
		if err := godotenv.Load(path); err != nil {
			b.warnings = append(b.warnings, fmt.Sprintf("failed to load %s: %v", path, err))
		}
	}

	if !b.useEnv {
		return b.config
	}

	cfg := b.config
	if v := os.Getenv(EnvColours); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 || n > colour.MaxColourCount {
			b.warnings = append(b.warnings, fmt.Sprintf("ignoring %s=%q: want an integer between 1 and %d", EnvColours, v, colour.MaxColourCount))
		} else {
			cfg.Colours = n
		}
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvFormat))); v != "" {
		if slices.Contains(ValidFormats(), v) {
			cfg.Format = v
		} else {
			b.warnings = append(b.warnings, fmt.Sprintf("ignoring %s=%q: want one of %s", EnvFormat, v, strings.Join(ValidFormats(), ", ")))
		}
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvPreview))); v != "" {
		if slices.Contains(ValidPreviewModes(), v) {
			cfg.Preview = v
		} else {
			b.warnings = append(b.warnings, fmt.Sprintf("ignoring %s=%q: want one of %s", EnvPreview, v, strings.Join(ValidPreviewModes(), ", ")))
		}
	}

	return cfg
}

// Warnings returns problems found by the last Build.
func (b *Builder) Warnings() []string {
	return b.warnings
}
