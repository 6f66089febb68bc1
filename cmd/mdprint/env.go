package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/mdprint"
)

// converterFactory builds the converter shared by all workers of a batch.
type converterFactory func(opts ...mdprint.Option) (CLIConverter, error)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	Getenv       func(string) string
	Environ      func() []string
	NewConverter converterFactory
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		NewConverter: func(opts ...mdprint.Option) (CLIConverter, error) {
			return mdprint.NewConverter(opts...)
		},
	}
}
