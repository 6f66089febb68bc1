package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alnah/mdprint"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Mock converter and environment
// ---------------------------------------------------------------------------

// mockConverter records inputs and returns canned results.
type mockConverter struct {
	mu      sync.Mutex
	inputs  []mdprint.Input
	closed  bool
	convert func(mdprint.Input) (*mdprint.Result, error)
}

func (m *mockConverter) Convert(ctx context.Context, in mdprint.Input) (*mdprint.Result, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.convert != nil {
		return m.convert(in)
	}
	res := &mdprint.Result{HTML: []byte("<p>" + in.Markdown + "</p>")}
	if !in.HTMLOnly {
		res.PDF = []byte("%PDF-1.4 mock")
	}
	return res, nil
}

func (m *mockConverter) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockConverter) calls() []mdprint.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mdprint.Input(nil), m.inputs...)
}

// testEnv returns an environment with captured output, an empty process
// environment, and a converter factory that hands out conv.
func testEnv(conv *mockConverter) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:     func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdout:  &stdout,
		Stderr:  &stderr,
		Getenv:  func(string) string { return "" },
		Environ: func() []string { return nil },
		NewConverter: func(...mdprint.Option) (CLIConverter, error) {
			return conv, nil
		},
	}
	return env, &stdout, &stderr
}

// writeMarkdown writes content to dir/name and returns the path.
func writeMarkdown(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}
