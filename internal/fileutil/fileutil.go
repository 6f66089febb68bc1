// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ArtifactExt is the extension of the intermediate page written for the engine.
const ArtifactExt = ".html"

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrArtifactIsOutput       = errors.New("artifact path collides with output path")
)

// ReplaceExt swaps the final extension of path for ext (".pdf", "html", ...).
// A path without an extension gets ext appended.
func ReplaceExt(path, ext string) (string, error) {
	ext = strings.TrimPrefix(ext, ".")
	if err := ValidateExtension(ext); err != nil {
		return "", err
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext, nil
}

// ArtifactPath returns the sibling of output that holds the intermediate page.
// It refuses an output that already ends in ArtifactExt, since writing the
// artifact would clobber it.
func ArtifactPath(output string) (string, error) {
	if strings.EqualFold(filepath.Ext(output), ArtifactExt) {
		return "", fmt.Errorf("%w: %s", ErrArtifactIsOutput, output)
	}
	return ReplaceExt(output, ArtifactExt)
}

// WriteArtifact writes content to path and returns a cleanup that removes it.
// Cleanup is safe to call more than once and ignores a missing file.
func WriteArtifact(path, content string) (cleanup func(), err error) {
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return nil, fmt.Errorf("creating artifact directory: %w", err)
	}

	cleanup = func() { _ = os.Remove(path) }

	// #nosec G306 -- the engine runs as the same user and only reads the file
	if err := os.WriteFile(path, []byte(content), FilePermissions); err != nil {
		cleanup()
		return nil, fmt.Errorf("writing artifact: %w", err)
	}
	return cleanup, nil
}

// WriteOutput writes data to path, creating parent directories as needed.
func WriteOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	// #nosec G306 -- output documents are meant to be shared
	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// ValidateExtension checks that the extension is safe to append to a file name.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (embedded style name)
//   - "./custom.css" -> true (relative path)
//   - "/absolute/path.css" -> true (absolute)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
