//go:build integration

package mdprint

// Notes:
// - These tests launch a real Chromium. Rod downloads one on first run unless
//   ROD_BROWSER_BIN points at an installed binary.
// - The settle delay is shortened to keep the suite fast; the production
//   default is covered by TestNewConverter_Defaults.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testTimeout = 60 * time.Second

func assertValidPDF(t *testing.T, data []byte) {
	t.Helper()

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("data does not have PDF magic bytes, got prefix: %q", data[:min(10, len(data))])
	}
	if len(data) < 100 {
		t.Errorf("PDF data suspiciously small: %d bytes", len(data))
	}
}

func TestRodRenderer_RenderFromFile_Integration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	page := filepath.Join(dir, "with space.html")
	if err := os.WriteFile(page, []byte("<!DOCTYPE html><html><body><h1>Hello</h1></body></html>"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	data, err := newRodRenderer(100*time.Millisecond, "").RenderFromFile(ctx, page, &pdfOptions{MarginPx: 72})
	if err != nil {
		t.Fatalf("RenderFromFile() error = %v", err)
	}
	assertValidPDF(t, data)
}

func TestConverter_ConvertFile_Integration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "doc.md")
	md := "# Title\n\nHello *world*.\n\n```python\nx = 1 < 2\n```\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"
	if err := os.WriteFile(in, []byte(md), 0o600); err != nil {
		t.Fatal(err)
	}

	conv, err := NewConverter(WithSettleDelay(100*time.Millisecond), WithTimeout(testTimeout))
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	defer conv.Close()

	res, err := conv.ConvertFile(context.Background(), in, "", DefaultMarginPx)
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	assertValidPDF(t, res.PDF)

	written, err := os.ReadFile(filepath.Join(dir, "doc.pdf")) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.Equal(written, res.PDF) {
		t.Error("written PDF differs from result")
	}
	if _, err := os.Stat(filepath.Join(dir, "doc.html")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("artifact should be removed, stat err = %v", err)
	}
}

func TestRodRenderer_ContextCancelledDuringSettle(t *testing.T) {
	t.Parallel()

	page := filepath.Join(t.TempDir(), "doc.html")
	if err := os.WriteFile(page, []byte("<html><body>x</body></html>"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := newRodRenderer(time.Hour, "").RenderFromFile(ctx, page, &pdfOptions{})
	if err == nil {
		t.Fatal("expected error from cancelled settle")
	}
}
