package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alnah/mdprint/internal/config"
)

// fakeGetenv returns a getenv backed by vars.
func fakeGetenv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("all values", func(t *testing.T) {
		t.Parallel()

		env := loadEnvConfig(fakeGetenv(map[string]string{
			"MDPRINT_CONFIG":     "work",
			"MDPRINT_STYLE":      "plain",
			"MDPRINT_THEME":      "dracula",
			"MDPRINT_OUTPUT_DIR": "build",
			"MDPRINT_ASSET_PATH": "assets",
			"MDPRINT_TIMEOUT":    "90s",
			"MDPRINT_WORKERS":    "3",
		}))

		want := envConfig{
			ConfigPath: "work",
			Style:      "plain",
			Theme:      "dracula",
			OutputDir:  "build",
			AssetPath:  "assets",
			Timeout:    90 * time.Second,
			Workers:    3,
		}
		if *env != want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", *env, want)
		}
	})

	t.Run("invalid numbers ignored", func(t *testing.T) {
		t.Parallel()

		env := loadEnvConfig(fakeGetenv(map[string]string{
			"MDPRINT_TIMEOUT": "soon",
			"MDPRINT_WORKERS": "-2",
		}))
		if env.Timeout != 0 || env.Workers != 0 {
			t.Errorf("Timeout = %v, Workers = %d, want zero values", env.Timeout, env.Workers)
		}
	})
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env overrides config file values
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Style: "default", Workers: 2}
	cfg.Output.DefaultDir = "from-file"

	applyEnvConfig(&envConfig{Style: "plain", OutputDir: "from-env", Timeout: time.Minute}, cfg)

	if cfg.Style != "plain" || cfg.Output.DefaultDir != "from-env" {
		t.Errorf("cfg = %+v, want env values", cfg)
	}
	if cfg.Render.Timeout.Std() != time.Minute {
		t.Errorf("Render.Timeout = %v, want 1m", cfg.Render.Timeout.Std())
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, unset env must keep the file value", cfg.Workers)
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars([]string{
		"HOME=/root",
		"MDPRINT_STYLE=plain",
		"MDPRINT_STYEL=plain",
	}, &buf)

	out := buf.String()
	if !strings.Contains(out, "MDPRINT_STYEL") {
		t.Errorf("output = %q, want a warning for the typo", out)
	}
	if strings.Contains(out, "MDPRINT_STYLE ") || strings.Contains(out, "HOME") {
		t.Errorf("output = %q, want no warning for known or foreign variables", out)
	}
}
