package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdprint [flags] <input>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to PDF with headless Chromium.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or glob pattern (e.g. 'docs/**/*.md')")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path>        Markdown file or glob (repeatable)")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF (single input only)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel conversions (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -m, --margin <px>         Margin in CSS pixels on all sides (default 50)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   Style name (default, plain) or CSS file")
	fmt.Fprintln(w, "      --css <path>          Extra CSS appended after the style")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory overriding embedded assets")
	fmt.Fprintln(w, "      --theme <name>        Code highlighting theme (default monokai)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --settle <d>          Wait after page load (default 2s)")
	fmt.Fprintln(w, "      --timeout <d>         Per-file deadline (default none)")
	fmt.Fprintln(w, "      --browser-bin <path>  Chromium binary (or ROD_BROWSER_BIN)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --html                Also write the HTML page beside the PDF")
	fmt.Fprintln(w, "      --html-only           Write HTML only, skip PDF")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timings and worker count")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment (flags > env > config file):")
	fmt.Fprintln(w, "  MDPRINT_CONFIG, MDPRINT_STYLE, MDPRINT_THEME, MDPRINT_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MDPRINT_ASSET_PATH, MDPRINT_TIMEOUT, MDPRINT_WORKERS, ROD_BROWSER_BIN")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general, 2 usage/config, 3 I/O, 4 browser, 5 highlighting")
}
