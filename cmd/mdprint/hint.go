package main

import (
	"context"
	"errors"
	"strings"

	"github.com/alnah/mdprint"
	"github.com/alnah/mdprint/internal/assets"
	"github.com/alnah/mdprint/internal/config"
	"github.com/alnah/mdprint/internal/fileutil"
	"github.com/alnah/mdprint/internal/hints"
)

// hintFor returns an actionable hint for a conversion error, or "".
// s may be nil when settings were never resolved.
func hintFor(err error, s *settings) string {
	switch {
	case errors.Is(err, mdprint.ErrEngineLaunch):
		bin := ""
		if s != nil {
			bin = s.browserBin
		}
		return hints.ForEngineLaunch(bin)
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, mdprint.ErrHighlight):
		return hints.ForHighlight()
	case errors.Is(err, mdprint.ErrArtifactIO):
		return hints.ForOutputPath()
	case errors.Is(err, mdprint.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	}
	return ""
}

// configHint returns the hint for a config lookup failure. Search paths are
// listed only for names; an explicit path was the only candidate.
func configHint(err error, name string) string {
	if !errors.Is(err, config.ErrConfigNotFound) || name == "" {
		return ""
	}
	if fileutil.IsFilePath(name) || strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return hints.ForConfigNotFound(nil)
	}
	return hints.ForConfigNotFound(config.SearchPaths(name))
}
