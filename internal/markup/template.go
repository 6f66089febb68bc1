package markup

import (
	"errors"
	"strings"
)

// ContentMarker separates the page template prefix from its suffix.
const ContentMarker = "{{content}}"

// ErrTemplateMarker indicates a page template lacks the content marker.
var ErrTemplateMarker = errors.New("page template missing " + ContentMarker + " marker")

// Template is the opaque wrapper placed around rendered markup.
type Template struct {
	Prefix string
	Suffix string
}

// NewTemplate splits page at ContentMarker and injects css as a <style> block.
// CSS goes before </head> when present, otherwise right after <body>, otherwise
// at the very start of the prefix.
func NewTemplate(page, css string) (Template, error) {
	prefix, suffix, ok := strings.Cut(page, ContentMarker)
	if !ok {
		return Template{}, ErrTemplateMarker
	}
	return Template{Prefix: injectCSS(prefix, css), Suffix: suffix}, nil
}

func injectCSS(htmlContent, css string) string {
	if css == "" {
		return htmlContent
	}

	styleBlock := "<style>\n" + sanitizeCSS(css) + "\n</style>\n"
	lower := strings.ToLower(htmlContent)

	if idx := strings.Index(lower, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lower, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			pos := idx + closeIdx + 1
			return htmlContent[:pos] + styleBlock + htmlContent[pos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so user CSS cannot close the <style> element early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
