// Package mdprint converts Markdown documents to PDF using headless Chromium.
//
// # Quick Start
//
// Convert a file next to its source:
//
//	conv, err := mdprint.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	if _, err := conv.ConvertFile(ctx, "notes.md", "", mdprint.DefaultMarginPx); err != nil {
//	    log.Fatal(err)
//	}
//
// ConvertFile writes notes.pdf. Convert works on in-memory markdown and
// returns the PDF bytes without writing them; it still needs an OutputPath
// because the intermediate page is written beside it.
//
// # Conversion Pipeline
//
//  1. Tokenize the markdown with goldmark into a flat event stream
//  2. Render events to HTML; fenced code is styled with chroma
//  3. Wrap the HTML in the page template with the selected CSS
//  4. Write the page as <output>.html, print it with Chromium (go-rod), remove it
//
// Each conversion launches its own browser, waits for the load event, then
// waits a fixed settle delay (2s by default) before capture. The PDF is
// US Letter, portrait, with backgrounds, and CSS @page sizes win over it.
// Margins are given in CSS pixels and converted at 96 px per inch.
//
// # Configuration
//
//	conv, err := mdprint.NewConverter(
//	    mdprint.WithStyle("plain"),
//	    mdprint.WithTheme("github"),
//	    mdprint.WithSettleDelay(500*time.Millisecond),
//	    mdprint.WithTimeout(time.Minute),
//	)
//
// # Errors
//
// Failures wrap one of ErrSourceRead, ErrHighlight, ErrEngineLaunch,
// ErrNavigation, ErrCapture or ErrArtifactIO, naming the stage that failed.
// Use errors.Is to test for them. On any failure no PDF is written and the
// intermediate page is removed.
package mdprint
