package main

import (
	"errors"
	"os"

	"github.com/alnah/mdprint"
	"github.com/alnah/mdprint/internal/config"
)

// Exit codes for the mdprint CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful conversion
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or input
	ExitIO        = 3 // Source read, artifact or output write
	ExitEngine    = 4 // Browser launch, navigation or capture
	ExitHighlight = 5 // Code block highlighting
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, mdprint.ErrHighlight) {
		return ExitHighlight
	}

	if errors.Is(err, mdprint.ErrEngineLaunch) ||
		errors.Is(err, mdprint.ErrNavigation) ||
		errors.Is(err, mdprint.ErrCapture) {
		return ExitEngine
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdprint.ErrSourceRead) ||
		errors.Is(err, mdprint.ErrArtifactIO) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrNoMatch) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidPattern) ||
		errors.Is(err, ErrOutputMultiple) ||
		errors.Is(err, ErrOutputConflict) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdprint.ErrInvalidMargin) ||
		errors.Is(err, mdprint.ErrNoOutputPath) ||
		errors.Is(err, mdprint.ErrStyleNotFound) ||
		errors.Is(err, mdprint.ErrTemplateNotFound) ||
		errors.Is(err, mdprint.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
