package mdprint

import (
	"errors"

	"github.com/alnah/mdprint/internal/markup"
)

// Sentinel errors for library operations. Each names the stage that failed.
var (
	ErrSourceRead   = errors.New("failed to read markdown source")
	ErrEngineLaunch = errors.New("failed to launch rendering engine")
	ErrNavigation   = errors.New("failed to load page in rendering engine")
	ErrCapture      = errors.New("PDF capture failed")
	ErrArtifactIO   = errors.New("failed to write conversion artifact")

	// ErrHighlight is returned when a fenced code block cannot be highlighted.
	ErrHighlight = markup.ErrHighlight

	// Input validation errors.
	ErrInvalidMargin = errors.New("invalid margin")
	ErrNoOutputPath  = errors.New("output path is required unless HTMLOnly is set")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("page template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
