package hints

// Notes:
// - ForEngineLaunch tests cannot use t.Parallel() because they use t.Setenv
//   and swap the package-level IsInContainer variable.

import (
	"path/filepath"
	"strings"
	"testing"
)

func stubContainer(t *testing.T, in bool) {
	t.Helper()
	orig := IsInContainer
	t.Cleanup(func() { IsInContainer = orig })
	IsInContainer = func() bool { return in }
}

// ---------------------------------------------------------------------------
// TestForEngineLaunch
// ---------------------------------------------------------------------------

func TestForEngineLaunch_NoBinaryConfigured(t *testing.T) {
	stubContainer(t, false)
	t.Setenv("ROD_BROWSER_BIN", "")

	hint := ForEngineLaunch("")
	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint = %q, want hint prefix", hint)
	}
	if !strings.Contains(hint, "--browser-bin") {
		t.Errorf("hint = %q, want --browser-bin suggestion", hint)
	}
}

func TestForEngineLaunch_MissingFlagBinary(t *testing.T) {
	stubContainer(t, false)

	bin := filepath.Join(t.TempDir(), "chromium")
	hint := ForEngineLaunch(bin)
	if !strings.Contains(hint, bin) {
		t.Errorf("hint = %q, want the missing path", hint)
	}
}

func TestForEngineLaunch_MissingEnvBinary(t *testing.T) {
	stubContainer(t, false)
	t.Setenv("ROD_BROWSER_BIN", filepath.Join(t.TempDir(), "nope"))

	hint := ForEngineLaunch("")
	if !strings.Contains(hint, "ROD_BROWSER_BIN") {
		t.Errorf("hint = %q, want ROD_BROWSER_BIN mention", hint)
	}
}

func TestForEngineLaunch_Container(t *testing.T) {
	stubContainer(t, true)
	t.Setenv("ROD_BROWSER_BIN", "")

	hint := ForEngineLaunch("")
	if !strings.Contains(hint, "containers") {
		t.Errorf("hint = %q, want container advice", hint)
	}
	if strings.Count(hint, "hint:") != 1 {
		t.Errorf("hints should be joined on one line: %q", hint)
	}
}

// ---------------------------------------------------------------------------
// Static hints
// ---------------------------------------------------------------------------

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"timeout", ForTimeout(), "--timeout"},
		{"output path", ForOutputPath(), ".html"},
		{"highlight", ForHighlight(), "language tag"},
		{"style list", ForStyleNotFound([]string{"default", "plain"}), "default, plain"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.got, "\n  hint: ") {
				t.Errorf("hint = %q, want hint prefix", tt.got)
			}
			if !strings.Contains(tt.got, tt.want) {
				t.Errorf("hint = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestForStyleNotFound_Empty(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	userPath := filepath.Join("home", "u", ".config", "mdprint", "work.yaml")
	hint := ForConfigNotFound([]string{"work.yaml", userPath})
	if !strings.Contains(hint, "--config") {
		t.Errorf("hint = %q, want --config", hint)
	}
	if !strings.Contains(hint, userPath) {
		t.Errorf("hint = %q, want suggestion to create %s", hint, userPath)
	}

	if hint := ForConfigNotFound(nil); strings.Contains(hint, "create") {
		t.Errorf("no user path, hint = %q", hint)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if format("") != "" {
		t.Error("empty hint should format to empty string")
	}
	if formatHints(nil) != "" {
		t.Error("no hints should format to empty string")
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints() = %q", got)
	}
}
