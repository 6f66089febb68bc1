package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/mdprint"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds output verbosity and config selection.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// styleFlags holds page styling flags.
type styleFlags struct {
	style     string // style name or CSS file path
	css       string // extra CSS file appended after the style
	assetPath string // override asset directory
	theme     string // chroma style for code blocks
}

// renderFlags holds rendering engine flags.
type renderFlags struct {
	settle     time.Duration
	timeout    time.Duration
	browserBin string
}

// outputFlags holds output mode flags.
type outputFlags struct {
	html     bool // keep an HTML copy beside the PDF
	htmlOnly bool // write HTML only, skip the engine
}

// cliFlags holds every flag accepted by mdprint.
type cliFlags struct {
	common     commonFlags
	inputs     []string
	output     string
	margin     int
	workers    int
	style      styleFlags
	render     renderFlags
	outputMode outputFlags
	version    bool
	help       bool

	// changed records flags set explicitly, so they win over config values.
	changed map[string]bool
}

// isSet reports whether the named flag was given on the command line.
func (f *cliFlags) isSet(name string) bool {
	return f.changed[name]
}

// parseFlags parses args (without the program name) and returns the flags
// and the positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{changed: make(map[string]bool)}

	fs := flag.NewFlagSet("mdprint", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.StringArrayVarP(&f.inputs, "input", "i", nil, "markdown file or glob (repeatable)")
	fs.StringVarP(&f.output, "output", "o", "", "output PDF path (single input only)")
	fs.IntVarP(&f.margin, "margin", "m", mdprint.DefaultMarginPx, "page margin in CSS pixels")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel conversions (0 = auto)")

	fs.StringVarP(&f.common.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.common.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.common.verbose, "verbose", "v", false, "show timings and worker count")

	fs.StringVar(&f.style.style, "style", "", "style name or CSS file path")
	fs.StringVar(&f.style.css, "css", "", "extra CSS file")
	fs.StringVar(&f.style.assetPath, "asset-path", "", "directory overriding embedded assets")
	fs.StringVar(&f.style.theme, "theme", "", "code highlighting theme")

	fs.DurationVar(&f.render.settle, "settle", mdprint.DefaultSettleDelay, "wait after page load before capture")
	fs.DurationVar(&f.render.timeout, "timeout", 0, "per-file deadline (0 = none)")
	fs.StringVar(&f.render.browserBin, "browser-bin", "", "Chromium binary")

	fs.BoolVar(&f.outputMode.html, "html", false, "also write the HTML page")
	fs.BoolVar(&f.outputMode.htmlOnly, "html-only", false, "write HTML only, skip PDF")

	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	fs.Visit(func(fl *flag.Flag) {
		f.changed[fl.Name] = true
	})

	return f, fs.Args(), nil
}
