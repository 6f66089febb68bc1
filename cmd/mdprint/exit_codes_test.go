package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/alnah/mdprint"
	"github.com/alnah/mdprint/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Highlight (exit 5)
		{"highlight", mdprint.ErrHighlight, ExitHighlight},
		{"wrapped highlight", fmt.Errorf("%w: tokenise", mdprint.ErrHighlight), ExitHighlight},

		// Engine (exit 4)
		{"engine launch", mdprint.ErrEngineLaunch, ExitEngine},
		{"navigation", mdprint.ErrNavigation, ExitEngine},
		{"capture", mdprint.ErrCapture, ExitEngine},
		{"wrapped capture", fmt.Errorf("doc.md: %w", mdprint.ErrCapture), ExitEngine},

		// I/O (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"source read", mdprint.ErrSourceRead, ExitIO},
		{"artifact io", mdprint.ErrArtifactIO, ExitIO},
		{"read css", ErrReadCSS, ExitIO},
		{"no match", ErrNoMatch, ExitIO},

		// Usage/config (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"no input", ErrNoInput, ExitUsage},
		{"invalid pattern", ErrInvalidPattern, ExitUsage},
		{"output multiple", ErrOutputMultiple, ExitUsage},
		{"output conflict", ErrOutputConflict, ExitUsage},
		{"worker count", ErrInvalidWorkerCount, ExitUsage},
		{"duration", ErrInvalidDuration, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"config value", config.ErrInvalidValue, ExitUsage},
		{"invalid margin", mdprint.ErrInvalidMargin, ExitUsage},
		{"no output path", mdprint.ErrNoOutputPath, ExitUsage},
		{"style not found", mdprint.ErrStyleNotFound, ExitUsage},
		{"template not found", mdprint.ErrTemplateNotFound, ExitUsage},
		{"invalid asset path", mdprint.ErrInvalidAssetPath, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},

		// General (exit 1)
		{"canceled", context.Canceled, ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_BelowReservedRange(t *testing.T) {
	t.Parallel()

	for _, code := range []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitEngine, ExitHighlight} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", code)
		}
	}
}
