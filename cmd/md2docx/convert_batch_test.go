package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	md2docx "github.com/alnah/go-md2docx"
)

// ---------------------------------------------------------------------------
// TestResolveWorkers - Worker count resolution
// ---------------------------------------------------------------------------

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		n         int
		fileCount int
		want      int
	}{
		{"explicit count", 4, 100, 4},
		{"capped at file count", 8, 2, 2},
		{"zero means one per CPU", 0, 1000, runtime.NumCPU()},
		{"auto capped at file count", 0, 1, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveWorkers(tt.n, tt.fileCount); got != tt.want {
				t.Errorf("resolveWorkers(%d, %d) = %d, want %d", tt.n, tt.fileCount, got, tt.want)
			}
		})
	}
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	if err := validateWorkers(0); err != nil {
		t.Errorf("validateWorkers(0) = %v, want nil", err)
	}
	if err := validateWorkers(4); err != nil {
		t.Errorf("validateWorkers(4) = %v, want nil", err)
	}
	if err := validateWorkers(-1); !errors.Is(err, ErrInvalidWorkerCount) {
		t.Errorf("validateWorkers(-1) = %v, want ErrInvalidWorkerCount", err)
	}
}

// ---------------------------------------------------------------------------
// TestConvertBatch - Parallel fan-out
// ---------------------------------------------------------------------------

func TestConvertBatch_AllSucceed(t *testing.T) {
	t.Parallel()

	files := make([]FileToConvert, 10)
	for i := range files {
		files[i] = FileToConvert{InputPath: fmt.Sprintf("doc%d.md", i)}
	}
	svc := &fakeConverter{}

	results := convertBatch(context.Background(), svc, files, &conversionParams{}, 3)

	if len(results) != len(files) {
		t.Fatalf("results = %d, want %d", len(results), len(files))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("results[%d].Err = %v", i, r.Err)
		}
		// Results keep input order regardless of worker scheduling.
		if r.InputPath != files[i].InputPath {
			t.Errorf("results[%d].InputPath = %q, want %q", i, r.InputPath, files[i].InputPath)
		}
	}
	if len(svc.inputs) != len(files) {
		t.Errorf("conversions = %d, want %d", len(svc.inputs), len(files))
	}
}

func TestConvertBatch_Empty(t *testing.T) {
	t.Parallel()

	results := convertBatch(context.Background(), &fakeConverter{}, nil, &conversionParams{}, 2)
	if results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}

func TestConvertBatch_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files := []FileToConvert{{InputPath: "a.md"}, {InputPath: "b.md"}}
	svc := &fakeConverter{}

	results := convertBatch(ctx, svc, files, &conversionParams{}, 2)

	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, r.Err)
		}
	}
	if len(svc.inputs) != 0 {
		t.Errorf("conversions = %d, want none after cancellation", len(svc.inputs))
	}
}

// ---------------------------------------------------------------------------
// TestConvertAll - Reporting and failure summary
// ---------------------------------------------------------------------------

func TestConvertAll_Summary(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	files := []FileToConvert{{InputPath: "a.md"}, {InputPath: "b.md"}}
	svc := &fakeConverter{}

	err := convertAll(context.Background(), svc, files, &conversionParams{}, 2, env)
	if err != nil {
		t.Fatalf("convertAll() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "Converted 2 of 2 files") {
		t.Errorf("stdout = %q, want summary line", stdout.String())
	}
}

func TestConvertAll_ReportsFailures(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	files := []FileToConvert{{InputPath: "a.md"}, {InputPath: "b.md"}}
	svc := &fakeConverter{err: md2docx.ErrConversion}

	err := convertAll(context.Background(), svc, files, &conversionParams{}, 2, env)
	if !errors.Is(err, md2docx.ErrConversion) {
		t.Fatalf("convertAll() = %v, want wrapped ErrConversion", err)
	}
	if !strings.Contains(err.Error(), "2 of 2 conversions failed") {
		t.Errorf("error = %q, want failure count", err)
	}
	if !strings.Contains(stderr.String(), "a.md") || !strings.Contains(stderr.String(), "b.md") {
		t.Errorf("stderr = %q, want per-file errors", stderr.String())
	}
}
