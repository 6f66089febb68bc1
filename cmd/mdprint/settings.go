package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alnah/mdprint"
	"github.com/alnah/mdprint/internal/config"
)

// Sentinel errors for flag and config resolution.
var (
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidDuration    = errors.New("invalid duration")
	ErrReadCSS            = errors.New("failed to read CSS file")
)

// settings is the merged result of config and flags. Flags win.
type settings struct {
	marginPx   int
	outputDir  string
	style      string
	cssPath    string
	assetPath  string
	theme      string
	settle     time.Duration
	timeout    time.Duration
	browserBin string
	workers    int
	html       bool
	htmlOnly   bool
}

// loadConfig returns the named config, or defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeSettings combines cfg with explicitly set flags and validates the
// values the converter would otherwise panic on.
func mergeSettings(f *cliFlags, cfg *config.Config) (*settings, error) {
	s := &settings{
		marginPx:   cfg.MarginPx(mdprint.DefaultMarginPx),
		outputDir:  cfg.Output.DefaultDir,
		style:      cfg.Style,
		cssPath:    cfg.CSS,
		assetPath:  cfg.Assets.BasePath,
		theme:      cfg.Highlight.Theme,
		settle:     cfg.SettleDelay(mdprint.DefaultSettleDelay),
		timeout:    cfg.Render.Timeout.Std(),
		browserBin: cfg.Render.BrowserBin,
		workers:    cfg.Workers,
		html:       f.outputMode.html,
		htmlOnly:   f.outputMode.htmlOnly,
	}

	if f.isSet("margin") {
		s.marginPx = f.margin
	}
	if f.isSet("style") {
		s.style = f.style.style
	}
	if f.isSet("css") {
		s.cssPath = f.style.css
	}
	if f.isSet("asset-path") {
		s.assetPath = f.style.assetPath
	}
	if f.isSet("theme") {
		s.theme = f.style.theme
	}
	if f.isSet("settle") {
		s.settle = f.render.settle
	}
	if f.isSet("timeout") {
		s.timeout = f.render.timeout
	}
	if f.isSet("browser-bin") {
		s.browserBin = f.render.browserBin
	}
	if f.isSet("workers") {
		s.workers = f.workers
	}

	if s.workers < 0 || s.workers > config.MaxWorkers {
		return nil, fmt.Errorf("%w: %d (must be 0 to %d)", ErrInvalidWorkerCount, s.workers, config.MaxWorkers)
	}
	if s.settle < 0 {
		return nil, fmt.Errorf("%w: --settle %v must not be negative", ErrInvalidDuration, s.settle)
	}
	if s.timeout < 0 {
		return nil, fmt.Errorf("%w: --timeout %v must not be negative", ErrInvalidDuration, s.timeout)
	}

	return s, nil
}

// converterOptions translates settings into library options.
func (s *settings) converterOptions() []mdprint.Option {
	opts := []mdprint.Option{
		mdprint.WithSettleDelay(s.settle),
		mdprint.WithTheme(s.theme),
		mdprint.WithStyle(s.style),
		mdprint.WithBrowserBin(s.browserBin),
	}
	if s.assetPath != "" {
		opts = append(opts, mdprint.WithAssetPath(s.assetPath))
	}
	if s.timeout > 0 {
		opts = append(opts, mdprint.WithTimeout(s.timeout))
	}
	return opts
}

// readCSS returns the extra CSS file content, or "" when none is configured.
func (s *settings) readCSS() (string, error) {
	if s.cssPath == "" {
		return "", nil
	}
	content, err := os.ReadFile(s.cssPath) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(content), nil
}
