package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/mdprint/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxThemeLength = 64   // chroma style names are short
	MaxStyleLength = 4096 // style name or path
	MaxMarginPx    = 384  // 4in; larger leaves no printable width on Letter
	MaxWorkers     = 32
	MaxTimeout     = time.Hour
)

// Config holds all configuration for document generation.
// Zero values mean "use the built-in default".
type Config struct {
	Page      PageConfig      `yaml:"page"`
	Output    OutputConfig    `yaml:"output"`
	Style     string          `yaml:"style"` // Style name or CSS file path
	CSS       string          `yaml:"css"`   // Extra CSS file appended after the style
	Assets    AssetsConfig    `yaml:"assets"`
	Highlight HighlightConfig `yaml:"highlight"`
	Render    RenderConfig    `yaml:"render"`
	Workers   int             `yaml:"workers"` // 0 = auto
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Margin *int `yaml:"margin"` // CSS pixels on all sides (nil = 50)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = same directory as source
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// HighlightConfig defines code block styling.
type HighlightConfig struct {
	Theme string `yaml:"theme"` // chroma style name (empty = monokai)
}

// RenderConfig defines rendering engine options.
type RenderConfig struct {
	Settle     *yamlutil.Duration `yaml:"settle"`     // Pause after load (nil = 2s)
	Timeout    yamlutil.Duration  `yaml:"timeout"`    // Per-file deadline (0 = none)
	BrowserBin string             `yaml:"browserBin"` // Chromium binary (empty = ROD_BROWSER_BIN or download)
}

// Validate checks ranges and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Page.Margin != nil && (*c.Page.Margin < 0 || *c.Page.Margin > MaxMarginPx) {
		return fmt.Errorf("%w: page.margin must be between 0 and %d px, got %d", ErrInvalidValue, MaxMarginPx, *c.Page.Margin)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	if c.Render.Settle != nil && c.Render.Settle.Std() < 0 {
		return fmt.Errorf("%w: render.settle must not be negative", ErrInvalidValue)
	}
	if t := c.Render.Timeout.Std(); t < 0 || t > MaxTimeout {
		return fmt.Errorf("%w: render.timeout must be between 0 and %v, got %v", ErrInvalidValue, MaxTimeout, t)
	}

	if err := validateFieldLength("highlight.theme", c.Highlight.Theme, MaxThemeLength); err != nil {
		return err
	}
	if c.Highlight.Theme != "" && !slices.Contains(styles.Names(), c.Highlight.Theme) {
		return fmt.Errorf("%w: highlight.theme %q is not a known chroma style", ErrInvalidValue, c.Highlight.Theme)
	}

	paths := []struct {
		field, value string
		max          int
	}{
		{"style", c.Style, MaxStyleLength},
		{"css", c.CSS, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"render.browserBin", c.Render.BrowserBin, MaxPathLength},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, p.max); err != nil {
			return err
		}
	}

	return nil
}

// MarginPx returns the configured margin or fallback when unset.
func (c *Config) MarginPx(fallback int) int {
	if c.Page.Margin == nil {
		return fallback
	}
	return *c.Page.Margin
}

// SettleDelay returns the configured settle delay or fallback when unset.
func (c *Config) SettleDelay(fallback time.Duration) time.Duration {
	if c.Render.Settle == nil {
		return fallback
	}
	return c.Render.Settle.Std()
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration where every field takes its built-in default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
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

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\") || strings.HasSuffix(s, ".yaml") || strings.HasSuffix(s, ".yml")
}

// SearchPaths lists the candidate files for a config name, in lookup order:
// ./<name>.yaml, ./<name>.yml, then the same under <user config dir>/mdprint/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "mdprint", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
