package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/mdprint/internal/config"
	"github.com/alnah/mdprint/internal/yamlutil"
)

// envPrefix is the prefix shared by all recognized environment variables.
const envPrefix = "MDPRINT_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // MDPRINT_CONFIG: config file name or path
	Style      string        // MDPRINT_STYLE: CSS style name or path
	Theme      string        // MDPRINT_THEME: code highlighting theme
	OutputDir  string        // MDPRINT_OUTPUT_DIR: default output directory
	AssetPath  string        // MDPRINT_ASSET_PATH: asset override directory
	Timeout    time.Duration // MDPRINT_TIMEOUT: per-file deadline
	Workers    int           // MDPRINT_WORKERS: parallel conversions
}

// knownEnvVars lists valid MDPRINT_* environment variables.
var knownEnvVars = map[string]bool{
	"MDPRINT_CONFIG":     true,
	"MDPRINT_STYLE":      true,
	"MDPRINT_THEME":      true,
	"MDPRINT_OUTPUT_DIR": true,
	"MDPRINT_ASSET_PATH": true,
	"MDPRINT_TIMEOUT":    true,
	"MDPRINT_WORKERS":    true,
}

// loadEnvConfig reads the MDPRINT_* variables through getenv.
// Unparseable or non-positive numbers are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MDPRINT_CONFIG"),
		Style:      getenv("MDPRINT_STYLE"),
		Theme:      getenv("MDPRINT_THEME"),
		OutputDir:  getenv("MDPRINT_OUTPUT_DIR"),
		AssetPath:  getenv("MDPRINT_ASSET_PATH"),
	}

	if timeout := getenv("MDPRINT_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := getenv("MDPRINT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars warns about unrecognized MDPRINT_* variables,
// which are usually typos.
func warnUnknownEnvVars(environ []string, w io.Writer) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overlays set environment values onto cfg.
// Precedence: CLI flags > env vars > config file > defaults
// (flags are applied later by mergeSettings).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.Style = env.Style
	}
	if env.Theme != "" {
		cfg.Highlight.Theme = env.Theme
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Timeout > 0 {
		cfg.Render.Timeout = yamlutil.Duration(env.Timeout)
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
