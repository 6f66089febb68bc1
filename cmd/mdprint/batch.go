package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/alnah/mdprint"
	"github.com/alnah/mdprint/internal/fileutil"
)

// CLIConverter is the part of mdprint.Converter the CLI depends on.
type CLIConverter interface {
	Convert(ctx context.Context, input mdprint.Input) (*mdprint.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ CLIConverter = (*mdprint.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	HTMLOnly   bool
	Err        error
	Duration   time.Duration
}

// batchParams groups the per-batch values every file shares.
type batchParams struct {
	marginPx int
	css      string
	html     bool
	htmlOnly bool
}

// convertBatch converts files with up to workers conversions in flight.
// The converter is shared; each conversion launches its own browser.
// Results keep the order of files.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, workers int, params *batchParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: err}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile converts one file and writes its outputs. The PDF is written
// only after a successful capture.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *batchParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
		HTMLOnly:   params.htmlOnly,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", mdprint.ErrSourceRead, err))
	}

	res, err := conv.Convert(ctx, mdprint.Input{
		Markdown:   string(content),
		OutputPath: f.OutputPath,
		MarginPx:   params.marginPx,
		CSS:        params.css,
		HTMLOnly:   params.htmlOnly,
	})
	if err != nil {
		return fail(err)
	}

	// The HTML copy shares the artifact path, which Convert has removed by now.
	if params.html || params.htmlOnly {
		htmlPath, err := fileutil.ArtifactPath(f.OutputPath)
		if err != nil {
			return fail(fmt.Errorf("%w: %v", mdprint.ErrArtifactIO, err))
		}
		if err := fileutil.WriteOutput(htmlPath, res.HTML); err != nil {
			return fail(fmt.Errorf("%w: %v", mdprint.ErrArtifactIO, err))
		}
		if params.htmlOnly {
			result.OutputPath = htmlPath
			result.Duration = time.Since(start)
			return result
		}
	}

	if err := fileutil.WriteOutput(f.OutputPath, res.PDF); err != nil {
		return fail(fmt.Errorf("%w: %v", mdprint.ErrArtifactIO, err))
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults reports each result and returns the exit code of the first
// failure, or ExitSuccess.
func printResults(results []ConversionResult, s *settings, quiet, verbose bool, env *Environment) int {
	code := ExitSuccess

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err, s))
			if code == ExitSuccess {
				code = exitCodeFor(r.Err)
			}
			continue
		}

		if quiet {
			continue
		}

		kind := "PDF"
		if r.HTMLOnly {
			kind = "HTML"
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s generated successfully: %s (%s, %v)\n",
				kind, r.OutputPath, r.InputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "%s generated successfully: %s\n", kind, r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		summary := countResults(results)
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return code
}
