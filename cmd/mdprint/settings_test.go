package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alnah/mdprint"
	"github.com/alnah/mdprint/internal/config"
	"github.com/alnah/mdprint/internal/yamlutil"
)

func intPtr(v int) *int { return &v }

func mustParse(t *testing.T, args ...string) *cliFlags {
	t.Helper()

	f, _, err := parseFlags(args)
	if err != nil {
		t.Fatalf("parseFlags(%v) error = %v", args, err)
	}
	return f
}

// ---------------------------------------------------------------------------
// TestMergeSettings - Config values and flag precedence
// ---------------------------------------------------------------------------

func TestMergeSettings_Defaults(t *testing.T) {
	t.Parallel()

	s, err := mergeSettings(mustParse(t), config.DefaultConfig())
	if err != nil {
		t.Fatalf("mergeSettings() error = %v", err)
	}
	if s.marginPx != mdprint.DefaultMarginPx {
		t.Errorf("marginPx = %d, want %d", s.marginPx, mdprint.DefaultMarginPx)
	}
	if s.settle != mdprint.DefaultSettleDelay {
		t.Errorf("settle = %v, want %v", s.settle, mdprint.DefaultSettleDelay)
	}
	if s.timeout != 0 || s.workers != 0 {
		t.Errorf("timeout = %v, workers = %d, want zero values", s.timeout, s.workers)
	}
}

func TestMergeSettings_ConfigApplies(t *testing.T) {
	t.Parallel()

	settle := yamlutil.Duration(time.Second)
	cfg := &config.Config{
		Page:      config.PageConfig{Margin: intPtr(20)},
		Output:    config.OutputConfig{DefaultDir: "out"},
		Style:     "plain",
		Highlight: config.HighlightConfig{Theme: "github"},
		Render: config.RenderConfig{
			Settle:     &settle,
			Timeout:    yamlutil.Duration(time.Minute),
			BrowserBin: "/opt/chrome",
		},
		Workers: 4,
	}

	s, err := mergeSettings(mustParse(t), cfg)
	if err != nil {
		t.Fatalf("mergeSettings() error = %v", err)
	}

	if s.marginPx != 20 || s.outputDir != "out" || s.style != "plain" || s.theme != "github" {
		t.Errorf("settings = %+v, want config values", s)
	}
	if s.settle != time.Second || s.timeout != time.Minute || s.browserBin != "/opt/chrome" || s.workers != 4 {
		t.Errorf("render settings = %+v, want config values", s)
	}
}

func TestMergeSettings_FlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Page:      config.PageConfig{Margin: intPtr(20)},
		Style:     "plain",
		Highlight: config.HighlightConfig{Theme: "github"},
		Workers:   4,
	}
	f := mustParse(t, "--margin", "0", "--style", "default", "--theme", "dracula", "-w", "1", "--settle", "0s")

	s, err := mergeSettings(f, cfg)
	if err != nil {
		t.Fatalf("mergeSettings() error = %v", err)
	}

	if s.marginPx != 0 {
		t.Errorf("marginPx = %d, want explicit 0", s.marginPx)
	}
	if s.style != "default" || s.theme != "dracula" || s.workers != 1 || s.settle != 0 {
		t.Errorf("settings = %+v, want flag values", s)
	}
}

func TestMergeSettings_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"negative workers", []string{"-w", "-1"}, ErrInvalidWorkerCount},
		{"too many workers", []string{"-w", "1000"}, ErrInvalidWorkerCount},
		{"negative settle", []string{"--settle", "-1s"}, ErrInvalidDuration},
		{"negative timeout", []string{"--timeout", "-5s"}, ErrInvalidDuration},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := mergeSettings(mustParse(t, tt.args...), config.DefaultConfig())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("mergeSettings() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConverterOptions
// ---------------------------------------------------------------------------

func TestConverterOptions(t *testing.T) {
	t.Parallel()

	base := &settings{settle: time.Second}
	if got := len(base.converterOptions()); got != 4 {
		t.Errorf("len(options) = %d, want 4 without timeout and asset path", got)
	}

	full := &settings{settle: time.Second, timeout: time.Minute, assetPath: "assets"}
	if got := len(full.converterOptions()); got != 6 {
		t.Errorf("len(options) = %d, want 6 with timeout and asset path", got)
	}
}

// ---------------------------------------------------------------------------
// TestReadCSS
// ---------------------------------------------------------------------------

func TestReadCSS(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "extra.css")
	if err := os.WriteFile(path, []byte("h1 { color: red; }"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("none configured", func(t *testing.T) {
		t.Parallel()

		css, err := (&settings{}).readCSS()
		if err != nil || css != "" {
			t.Errorf("readCSS() = %q, %v, want empty, nil", css, err)
		}
	})

	t.Run("file content", func(t *testing.T) {
		t.Parallel()

		css, err := (&settings{cssPath: path}).readCSS()
		if err != nil {
			t.Fatalf("readCSS() error = %v", err)
		}
		if css != "h1 { color: red; }" {
			t.Errorf("readCSS() = %q", css)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := (&settings{cssPath: filepath.Join(dir, "missing.css")}).readCSS()
		if !errors.Is(err, ErrReadCSS) {
			t.Errorf("readCSS() error = %v, want ErrReadCSS", err)
		}
	})
}
