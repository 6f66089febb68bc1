package mdprint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/mdprint/internal/assets"
	"github.com/alnah/mdprint/internal/fileutil"
	"github.com/alnah/mdprint/internal/highlight"
	"github.com/alnah/mdprint/internal/markup"
)

// Converter turns markdown into PDF: tokenize, render styled HTML, write the
// page beside the output, print it with headless Chromium, remove the page.
// Create with NewConverter. A Converter is safe for concurrent use; each
// Convert call launches its own browser.
type Converter struct {
	cfg      converterConfig
	loader   assets.AssetLoader
	page     string // page template with the content marker
	style    string // resolved converter CSS
	tpl      markup.Template
	hl       markup.HighlightFunc
	renderer pageRenderer
}

// NewConverter creates a Converter. The page template and style are loaded
// once here; an unknown style name or unreadable asset path is an error.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:    converterConfig{settle: DefaultSettleDelay},
		loader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.loader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	page, err := c.loader.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		if errors.Is(err, assets.ErrTemplateNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
		}
		return nil, fmt.Errorf("loading page template: %w", err)
	}
	c.page = page

	c.tpl, err = markup.NewTemplate(c.page, c.style)
	if err != nil {
		return nil, fmt.Errorf("preparing page template: %w", err)
	}

	// Test options may have injected these.
	if c.hl == nil {
		c.hl = highlight.New(c.cfg.theme).Highlight
	}
	if c.renderer == nil {
		c.renderer = newRodRenderer(c.cfg.settle, c.cfg.browserBin)
	}

	return c, nil
}

// Convert renders input to HTML and, unless input.HTMLOnly is set, prints it
// to PDF. The intermediate page is written beside input.OutputPath and is
// removed before Convert returns, on every path. Convert never writes the PDF
// itself; see ConvertFile.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := input.validate(); err != nil {
		return nil, err
	}

	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	htmlContent, err := c.toHTML(ctx, input)
	if err != nil {
		return nil, err
	}

	res := &Result{HTML: []byte(htmlContent)}
	if input.HTMLOnly {
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artifact, err := fileutil.ArtifactPath(input.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactIO, err)
	}
	cleanup, err := fileutil.WriteArtifact(artifact, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactIO, err)
	}
	defer cleanup()

	pdf, err := c.renderer.RenderFromFile(ctx, artifact, &pdfOptions{MarginPx: input.MarginPx})
	if err != nil {
		return nil, err
	}

	res.PDF = pdf
	return res, nil
}

// ConvertFile converts the markdown file at inputPath and writes the PDF to
// outputPath, or to inputPath with a .pdf extension when outputPath is empty.
// The PDF is written only after a successful capture.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string, marginPx int) (*Result, error) {
	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceRead, err)
	}

	if outputPath == "" {
		outputPath, err = OutputPathFor(inputPath)
		if err != nil {
			return nil, err
		}
	}

	res, err := c.Convert(ctx, Input{
		Markdown:   string(content),
		OutputPath: outputPath,
		MarginPx:   marginPx,
	})
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteOutput(outputPath, res.PDF); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactIO, err)
	}
	return res, nil
}

// OutputPathFor returns input with its extension replaced by .pdf.
func OutputPathFor(input string) (string, error) {
	return fileutil.ReplaceExt(input, ".pdf")
}

// Close releases converter resources. Browsers live only for the duration of
// a conversion, so there is nothing to release today.
func (c *Converter) Close() error {
	return nil
}

// toHTML renders the styled page. Per-input CSS gets its own template so the
// shared one is never modified.
func (c *Converter) toHTML(ctx context.Context, input Input) (string, error) {
	tpl := c.tpl
	if input.CSS != "" {
		var err error
		tpl, err = markup.NewTemplate(c.page, c.style+"\n"+input.CSS)
		if err != nil {
			return "", fmt.Errorf("preparing page template: %w", err)
		}
	}
	return markup.NewRenderer(tpl, c.hl).ToHTML(ctx, input.Markdown)
}

// resolveStyle turns the configured style (name or path) into CSS. An empty
// input selects the default style.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.style = string(content)
		return nil
	}

	css, err := c.loader.LoadStyle(input)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return fmt.Errorf("%w: %q", ErrStyleNotFound, input)
		}
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.style = css
	return nil
}
