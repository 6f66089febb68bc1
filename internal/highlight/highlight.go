package highlight

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/mdprint/internal/markup"
)

// DefaultTheme is the chroma style used when none is configured.
const DefaultTheme = "monokai"

// ErrTokenise indicates chroma could not tokenise the code.
var ErrTokenise = errors.New("tokenising code failed")

// Highlighter renders code with a fixed chroma style. It is immutable after
// New and safe for concurrent use.
type Highlighter struct {
	style *chroma.Style
}

// New returns a Highlighter for theme. An empty theme selects DefaultTheme;
// an unknown one selects chroma's fallback style.
func New(theme string) *Highlighter {
	if theme == "" {
		theme = DefaultTheme
	}
	return &Highlighter{style: styles.Get(theme)}
}

// Theme returns the name of the resolved style.
func (h *Highlighter) Theme() string {
	return h.style.Name
}

// Resolve finds a lexer for lang by name or alias, then by file extension,
// then falls back to plain text. It never returns nil.
func Resolve(lang string) chroma.Lexer {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return lexers.Fallback
	}
	if l := lexers.Get(lang); l != nil {
		return l
	}
	if l := lexers.Match("file." + lang); l != nil {
		return l
	}
	return lexers.Fallback
}

// Lines tokenises code and returns one styled fragment per source line.
// Each fragment keeps its line terminator.
func (h *Highlighter) Lines(code, lang string) ([]string, error) {
	lexer := chroma.Coalesce(Resolve(lang))

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTokenise, lexer.Config().Name, err)
	}

	lines := chroma.SplitTokensIntoLines(it.Tokens())
	out := make([]string, 0, len(lines))
	var b strings.Builder
	for _, line := range lines {
		b.Reset()
		for _, tok := range line {
			h.writeToken(&b, tok)
		}
		out = append(out, b.String())
	}
	return out, nil
}

// Highlight returns the styled fragments of code concatenated in order.
// It matches markup.HighlightFunc.
func (h *Highlighter) Highlight(code, lang string) (string, error) {
	lines, err := h.Lines(code, lang)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, ""), nil
}

func (h *Highlighter) writeToken(b *strings.Builder, tok chroma.Token) {
	if tok.Value == "" {
		return
	}

	css := inlineStyle(h.style.Get(tok.Type))
	if css == "" {
		b.WriteString(markup.Escape(tok.Value))
		return
	}
	b.WriteString(`<span style="`)
	b.WriteString(css)
	b.WriteString(`">`)
	b.WriteString(markup.Escape(tok.Value))
	b.WriteString("</span>")
}

// inlineStyle converts a style entry to CSS declarations, without background.
func inlineStyle(e chroma.StyleEntry) string {
	var decls []string
	if e.Colour.IsSet() {
		decls = append(decls, "color:"+e.Colour.String())
	}
	if e.Bold == chroma.Yes {
		decls = append(decls, "font-weight:bold")
	}
	if e.Italic == chroma.Yes {
		decls = append(decls, "font-style:italic")
	}
	if e.Underline == chroma.Yes {
		decls = append(decls, "text-decoration:underline")
	}
	return strings.Join(decls, ";")
}

var _ markup.HighlightFunc = (*Highlighter)(nil).Highlight
