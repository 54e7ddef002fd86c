package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates files (with trivial content) under dir.
func writeTree(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("# x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Input discovery
// ---------------------------------------------------------------------------

func TestDiscoverFiles_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "doc.md")

	files, err := discoverFiles(filepath.Join(dir, "doc.md"), "")
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("files = %v, want one entry", files)
	}
	if files[0].OutputPath != filepath.Join(dir, "doc.docx") {
		t.Errorf("OutputPath = %q", files[0].OutputPath)
	}
}

func TestDiscoverFiles_WrongExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "doc.txt")

	_, err := discoverFiles(filepath.Join(dir, "doc.txt"), "")
	if !errors.Is(err, ErrInvalidExtension) {
		t.Fatalf("discoverFiles() = %v, want ErrInvalidExtension", err)
	}
}

func TestDiscoverFiles_Missing(t *testing.T) {
	t.Parallel()

	_, err := discoverFiles(filepath.Join(t.TempDir(), "missing.md"), "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("discoverFiles() = %v, want os.ErrNotExist", err)
	}
}

func TestDiscoverFiles_DirectoryRecursive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "a.md", "sub/b.markdown", "sub/deep/c.md", "skip.txt", "also.docx")

	files, err := discoverFiles(dir, "")
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("files = %v, want 3 markdown entries", files)
	}
	for _, f := range files {
		if filepath.Ext(f.OutputPath) != ".docx" {
			t.Errorf("OutputPath = %q, want .docx", f.OutputPath)
		}
	}
}

func TestDiscoverFiles_DirectoryMirrorsLayout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeTree(t, dir, "sub/deep/c.md")

	files, err := discoverFiles(dir, out)
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	want := filepath.Join(out, "sub", "deep", "c.docx")
	if len(files) != 1 || files[0].OutputPath != want {
		t.Errorf("files = %v, want output %q", files, want)
	}
}

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Destination mapping
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		output  string
		baseDir string
		want    string
	}{
		{"derive next to source", "/docs/report.md", "", "", "/docs/report.docx"},
		{"explicit docx file", "/docs/report.md", "/out/final.docx", "", "/out/final.docx"},
		{"output directory", "/docs/report.md", "/out", "", "/out/report.docx"},
		{"directory with base mirrors layout", "/docs/sub/report.md", "/out", "/docs", "/out/sub/report.docx"},
		{"markdown extension", "/docs/report.markdown", "", "", "/docs/report.docx"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveOutputPath(tt.input, tt.output, tt.baseDir)
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
