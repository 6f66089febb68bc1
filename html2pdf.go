package mdprint

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/mdprint/internal/process"
)

// pageRenderer prints a local HTML file to PDF. It exists so tests can run
// the converter without a browser.
type pageRenderer interface {
	RenderFromFile(ctx context.Context, path string, opts *pdfOptions) ([]byte, error)
}

// Compile-time interface check
var _ pageRenderer = (*rodRenderer)(nil)

// pdfOptions holds per-capture settings.
type pdfOptions struct {
	MarginPx int
}

// PDF page dimensions in inches (US Letter, portrait).
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	pixelsPerInch     = 96
)

// rodRenderer implements pageRenderer with go-rod. Every call launches its
// own Chromium and tears it down before returning; nothing is pooled.
// Rod downloads Chromium on first run if no binary is found.
type rodRenderer struct {
	settle     time.Duration
	browserBin string
}

func newRodRenderer(settle time.Duration, browserBin string) *rodRenderer {
	return &rodRenderer{settle: settle, browserBin: browserBin}
}

// RenderFromFile loads path in a fresh headless browser, waits for the load
// event plus the settle delay, and captures the page as PDF.
func (r *rodRenderer) RenderFromFile(ctx context.Context, path string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target, err := fileURL(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNavigation, err)
	}

	browser, teardown, err := r.launch()
	if err != nil {
		return nil, err
	}
	defer teardown()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("%w: creating page: %v", ErrNavigation, err)
	}
	page = page.Context(ctx)

	if err := page.Navigate(target); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNavigation, target, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: waiting for load: %v", ErrNavigation, err)
	}

	if err := settle(ctx, r.settle); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPDFOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrCapture, err)
	}

	return pdfBuf, nil
}

// launch starts a headless, sandbox-free, GPU-free browser and connects to it.
// The returned teardown closes the browser and kills its whole process tree.
func (r *rodRenderer) launch() (*rod.Browser, func(), error) {
	l := launcher.New().
		Headless(true).
		NoSandbox(true).
		Set("disable-gpu")

	bin := r.browserBin
	if bin == "" {
		bin = os.Getenv("ROD_BROWSER_BIN")
	}
	if bin != "" {
		l = l.Bin(bin)
	}

	u, err := l.Launch()
	if err != nil {
		killLauncher(l)
		return nil, nil, fmt.Errorf("%w: %v", ErrEngineLaunch, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		killLauncher(l)
		return nil, nil, fmt.Errorf("%w: %v", ErrEngineLaunch, err)
	}

	teardown := func() {
		_ = browser.Close()
		killLauncher(l)
	}
	return browser, teardown, nil
}

// killLauncher stops the browser process. Killing the group as well catches
// renderer and GPU helpers that outlive the parent. A launcher that never
// started a process has pid 0 and is left alone.
func killLauncher(l *launcher.Launcher) {
	pid := l.PID()
	if pid <= 0 {
		return
	}
	l.Kill()
	process.KillProcessGroup(pid)
}

// settle blocks for d or until ctx is done. It does not inspect the page.
func settle(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// fileURL builds a file:// URL for path with unsafe characters percent-encoded.
func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", path, err)
	}

	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // Windows drive letter
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String(), nil
}

// marginInches converts CSS pixels to inches.
func marginInches(px int) float64 {
	return float64(px) / pixelsPerInch
}

// buildPDFOptions constructs the capture request: US Letter portrait with
// backgrounds, CSS @page size taking precedence, and a uniform margin.
func buildPDFOptions(opts *pdfOptions) *proto.PagePrintToPDF {
	px := 0
	if opts != nil {
		px = opts.MarginPx
	}
	margin := marginInches(px)

	return &proto.PagePrintToPDF{
		Landscape:         false,
		PrintBackground:   true,
		PreferCSSPageSize: true,
		PaperWidth:        floatPtr(paperWidthInches),
		PaperHeight:       floatPtr(paperHeightInches),
		MarginTop:         floatPtr(margin),
		MarginBottom:      floatPtr(margin),
		MarginLeft:        floatPtr(margin),
		MarginRight:       floatPtr(margin),
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
