package main

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	md2docx "github.com/alnah/go-md2docx"
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// validateWorkers rejects negative worker counts early.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, n)
	}
	return nil
}

// resolveWorkers returns the effective worker count. Zero means auto:
// one pandoc process per CPU, never more than there are files.
func resolveWorkers(n, fileCount int) int {
	if n < 1 {
		n = runtime.NumCPU()
	}
	if n > fileCount {
		n = fileCount
	}
	return n
}

// convertAll converts the files with a bounded worker pool and reports
// per-file results. Each conversion stays an independent, synchronous
// pandoc invocation; only the fan-out is parallel.
func convertAll(ctx context.Context, svc Converter, files []FileToConvert, params *conversionParams, workers int, env *Environment) error {
	start := env.Now()
	results := convertBatch(ctx, svc, files, params, resolveWorkers(workers, len(files)))

	failed := 0
	var firstErr error
	for _, r := range results {
		if r.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
			fmt.Fprintf(env.Stderr, "Error: %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if !params.quiet {
			if params.verbose {
				fmt.Fprintf(env.Stdout, "Converted %s -> %s (%s)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "Converted %s -> %s\n", r.InputPath, r.OutputPath)
			}
		}
	}

	if !params.quiet {
		fmt.Fprintf(env.Stdout, "Converted %d of %d files in %s\n",
			len(files)-failed, len(files), env.Now().Sub(start).Round(time.Millisecond))
	}

	if firstErr != nil {
		return fmt.Errorf("%d of %d conversions failed: %w", failed, len(files), firstErr)
	}
	return nil
}

// convertBatch processes files concurrently with the given worker count.
func convertBatch(ctx context.Context, svc Converter, files []FileToConvert, params *conversionParams, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = convertFile(ctx, svc, files[idx], params)
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

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, svc Converter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	outPath, err := svc.Convert(ctx, md2docx.Input{
		SourcePath:     f.InputPath,
		OutputPath:     f.OutputPath,
		TemplatePath:   params.template,
		TOC:            params.toc,
		ValidateOutput: params.validate,
	})
	if err != nil {
		result.Err = err
	} else {
		result.OutputPath = outPath
	}

	result.Duration = time.Since(start)
	return result
}
