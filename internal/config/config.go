// Package config loads and validates the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"tex2png/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidDPI     = errors.New("config: dpi must be positive")
)

// Default values applied when the config file or CLI leave a field unset.
const (
	DefaultDPI            = 300
	DefaultCommand        = "pdflatex"
	DefaultOutputDir      = "output_images"
	DefaultOutputFilename = "output_equation.png"
)

// Config holds all configuration for equation rendering.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Render  RenderConfig  `yaml:"render"`
	Extract ExtractConfig `yaml:"extract"`
}

// OutputConfig defines output destinations.
type OutputConfig struct {
	Dir      string `yaml:"dir"`      // file-mode image directory
	Filename string `yaml:"filename"` // manual-mode output file
}

// RenderConfig defines typesetting options.
type RenderConfig struct {
	DPI     int    `yaml:"dpi"`     // raster resolution
	Command string `yaml:"command"` // LaTeX binary to invoke
}

// ExtractConfig defines extraction options.
type ExtractConfig struct {
	Strict  bool `yaml:"strict"`  // fail on dangling math delimiters
	Replace bool `yaml:"replace"` // write a .tex copy with spans replaced
}

// DefaultConfig returns a config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:      DefaultOutputDir,
			Filename: DefaultOutputFilename,
		},
		Render: RenderConfig{
			DPI:     DefaultDPI,
			Command: DefaultCommand,
		},
	}
}

// LoadConfig reads a YAML config file and merges it over the defaults.
// Unknown fields are rejected to catch typos early.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values after loading and flag merging.
func (c *Config) Validate() error {
	if c.Render.DPI <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDPI, c.Render.DPI)
	}
	return nil
}
