// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/mdprint/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForEngineLaunch returns hints for browser launch and connection errors.
func ForEngineLaunch(browserBin string) string {
	var hints []string

	switch {
	case browserBin != "":
		if !fileutil.FileExists(browserBin) {
			hints = append(hints, "browser binary "+browserBin+" does not exist")
		}
	case os.Getenv("ROD_BROWSER_BIN") != "":
		if !fileutil.FileExists(os.Getenv("ROD_BROWSER_BIN")) {
			hints = append(hints, "ROD_BROWSER_BIN points to a missing file")
		}
	default:
		hints = append(hints, "use --browser-bin or ROD_BROWSER_BIN to select an installed Chromium")
	}

	if IsInContainer() {
		hints = append(hints, "containers need Chromium's shared libraries and fonts installed")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about raising the per-file deadline.
func ForTimeout() string {
	return format("for large documents, raise --timeout or lower --settle")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	sep := string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, sep+"mdprint"+sep) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputPath returns hints for artifact and output write errors.
func ForOutputPath() string {
	return format("check the output directory is writable and the output does not end in .html")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForHighlight returns a hint for code highlighting failures.
func ForHighlight() string {
	return format("remove or change the language tag on the failing code block")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
