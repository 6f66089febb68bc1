package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/mdprint"
)

// Sentinel errors for input discovery.
var (
	ErrNoInput        = errors.New("no input specified")
	ErrNoMatch        = errors.New("pattern matched no files")
	ErrInvalidPattern = errors.New("invalid glob pattern")
	ErrOutputMultiple = errors.New("--output requires exactly one input")
	ErrOutputConflict = errors.New("two inputs map to the same output")
)

// FileToConvert is one markdown file and the PDF it produces.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// hasMeta reports whether p contains glob syntax.
func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// expandInputs resolves plain paths and glob patterns ("docs/**/*.md") into
// a de-duplicated list of files, in argument order. Plain paths are kept even
// if they do not exist so the read error is reported per file.
func expandInputs(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, ErrNoInput
	}

	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, p := range patterns {
		if !hasMeta(p) {
			add(p)
			continue
		}

		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPattern, p)
		}
		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, p)
		}
		for _, m := range matches {
			add(m)
		}
	}

	return files, nil
}

// planOutputs pairs each input with its PDF path. An explicit output applies
// only to a single input; otherwise the PDF goes beside the input, or into
// outputDir when set.
func planOutputs(inputs []string, output, outputDir string) ([]FileToConvert, error) {
	if output != "" && len(inputs) != 1 {
		return nil, fmt.Errorf("%w: got %d inputs", ErrOutputMultiple, len(inputs))
	}

	files := make([]FileToConvert, 0, len(inputs))
	owners := make(map[string]string, len(inputs))
	for _, in := range inputs {
		out := output
		if out == "" {
			var err error
			out, err = mdprint.OutputPathFor(in)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", in, err)
			}
			if outputDir != "" {
				out = filepath.Join(outputDir, filepath.Base(out))
			}
		}
		if prev, ok := owners[out]; ok {
			return nil, fmt.Errorf("%w: %s and %s -> %s", ErrOutputConflict, prev, in, out)
		}
		owners[out] = in
		files = append(files, FileToConvert{InputPath: in, OutputPath: out})
	}
	return files, nil
}
