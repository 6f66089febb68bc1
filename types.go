package mdprint

import (
	"fmt"
	"time"
)

// Conversion defaults.
const (
	DefaultMarginPx    = 50
	DefaultSettleDelay = 2 * time.Second
)

// Input is a single conversion request.
type Input struct {
	Markdown string

	// OutputPath is where the PDF belongs. The intermediate page is written
	// beside it with an .html extension while the engine renders.
	OutputPath string

	// MarginPx is applied to all four sides at 96 px per inch.
	MarginPx int

	// CSS is appended after the converter style.
	CSS string

	// HTMLOnly skips the engine; Result.PDF stays nil.
	HTMLOnly bool
}

// validate checks the fields Convert depends on.
func (in Input) validate() error {
	if in.MarginPx < 0 {
		return fmt.Errorf("%w: %d px (must be >= 0)", ErrInvalidMargin, in.MarginPx)
	}
	if !in.HTMLOnly && in.OutputPath == "" {
		return ErrNoOutputPath
	}
	return nil
}

// Result holds the outputs of a conversion.
type Result struct {
	HTML []byte // styled page handed to the engine
	PDF  []byte // nil when Input.HTMLOnly is set
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds settings applied at construction.
type converterConfig struct {
	settle     time.Duration
	timeout    time.Duration // zero means no deadline
	theme      string
	assetPath  string
	styleInput string
	browserBin string
}

// WithSettleDelay sets the pause between page load and capture.
// Zero disables it. Panics if d < 0 (programmer error).
func WithSettleDelay(d time.Duration) Option {
	if d < 0 {
		panic("mdprint: WithSettleDelay duration must not be negative")
	}
	return func(c *Converter) {
		c.cfg.settle = d
	}
}

// WithTimeout bounds each conversion. Without it conversions have no deadline.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdprint: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithTheme selects the chroma style for code blocks (default "monokai").
func WithTheme(name string) Option {
	return func(c *Converter) {
		c.cfg.theme = name
	}
}

// WithAssetPath overrides embedded styles and templates with files from dir.
// Missing files fall back to the embedded ones.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithStyle selects the page CSS by name ("default", "plain") or file path.
func WithStyle(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = nameOrPath
	}
}

// WithBrowserBin points the engine at a specific Chromium binary.
// ROD_BROWSER_BIN is used when unset.
func WithBrowserBin(path string) Option {
	return func(c *Converter) {
		c.cfg.browserBin = path
	}
}
