// Package config loads the optional YAML configuration for webembed.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-webembed/internal/emit"
	"github.com/alnah/go-webembed/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config file exceeds maximum size")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// MaxFileSize limits config input to prevent memory exhaustion (1MB).
const MaxFileSize = 1 << 20

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxNamespaceLength = 256  // "company::product::web"
	MaxIncludeLength   = 1024 // header name as written in #include
)

// Bounds for BytesPerLine.
const (
	MinBytesPerLine = 1
	MaxBytesPerLine = 4096
)

// DefaultBytesPerLine matches the layout of hand-reviewed generated code.
const DefaultBytesPerLine = 16

// Config holds all configuration for one generation run.
type Config struct {
	Input        InputConfig  `yaml:"input"`
	Output       OutputConfig `yaml:"output"`
	Namespace    string       `yaml:"namespace"`    // C++ namespace (default: web_assets)
	Include      string       `yaml:"include"`      // #include name (default: base name of output.header)
	BytesPerLine int          `yaml:"bytesPerLine"` // initializer values per line (default: 16)
}

// InputConfig defines the asset source.
type InputConfig struct {
	Dir string `yaml:"dir"` // Directory of static assets to embed
}

// OutputConfig defines where generated artifacts go.
type OutputConfig struct {
	Header string `yaml:"header"` // Declaration artifact (.h)
	Source string `yaml:"source"` // Definition artifact (.cpp)
}

// DefaultConfig returns a configuration with no paths and default formatting.
func DefaultConfig() *Config {
	return &Config{
		Input:        InputConfig{Dir: ""},
		Output:       OutputConfig{Header: "", Source: ""},
		Namespace:    emit.DefaultNamespace,
		Include:      "",
		BytesPerLine: DefaultBytesPerLine,
	}
}

// Validate checks field lengths and value syntax.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually or merge CLI flags into it.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.dir", c.Input.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.header", c.Output.Header, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.source", c.Output.Source, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("namespace", c.Namespace, MaxNamespaceLength); err != nil {
		return err
	}
	if err := validateFieldLength("include", c.Include, MaxIncludeLength); err != nil {
		return err
	}

	if c.Namespace != "" {
		if err := emit.ValidateNamespace(c.Namespace); err != nil {
			return fmt.Errorf("%w: namespace: %w", ErrInvalidValue, err)
		}
	}
	if c.Include != "" {
		if err := emit.ValidateInclude(c.Include); err != nil {
			return fmt.Errorf("%w: include: %w", ErrInvalidValue, err)
		}
	}

	if c.BytesPerLine != 0 && (c.BytesPerLine < MinBytesPerLine || c.BytesPerLine > MaxBytesPerLine) {
		return fmt.Errorf("%w: bytesPerLine: must be between %d and %d, got %d",
			ErrInvalidValue, MinBytesPerLine, MaxBytesPerLine, c.BytesPerLine)
	}

	if c.Output.Header != "" && c.Output.Header == c.Output.Source {
		return fmt.Errorf("%w: output.header and output.source are the same file: %s", ErrInvalidValue, c.Output.Header)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Fields left out of the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// Parse decodes YAML into a Config seeded with defaults, rejecting unknown
// fields, then validates it.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxFileSize)
	}

	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists, in order, where a config name is looked up:
// NAME.yaml and NAME.yml in the working directory, then under the user
// config directory in webembed/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "webembed", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing entry of SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
