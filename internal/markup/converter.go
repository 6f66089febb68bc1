package markup

import "context"

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// Renderer converts Markdown into a complete page using a fixed template
// and highlighter.
type Renderer struct {
	tpl Template
	hl  HighlightFunc
}

// NewRenderer creates a Renderer. A nil hl escapes code blocks without styling.
func NewRenderer(tpl Template, hl HighlightFunc) *Renderer {
	if hl == nil {
		hl = plainHighlight
	}
	return &Renderer{tpl: tpl, hl: hl}
}

// ToHTML tokenizes content and renders it into the template.
// Rendering is synchronous, so the context is only checked before starting.
func (r *Renderer) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return Render(Tokenize([]byte(content)), r.tpl, r.hl)
}

func plainHighlight(code, _ string) (string, error) {
	return Escape(code), nil
}
