package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "exists.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"regular file", file, true},
		{"missing file", filepath.Join(dir, "missing.txt"), false},
		{"directory", dir, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %t, want %t", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"defaults", false},
		{"./custom.yaml", true},
		{"/etc/md2docx.yaml", true},
		{`C:\docs\config.yaml`, true},
		{"name.yaml", false},
	}

	for _, tt := range tests {
		tt := tt
		if got := IsFilePath(tt.in); got != tt.want {
			t.Errorf("IsFilePath(%q) = %t, want %t", tt.in, got, tt.want)
		}
	}
}

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		ext  string
		want string
	}{
		{"doc.md", ".docx", "doc.docx"},
		{"doc.markdown", ".docx", "doc.docx"},
		{"/a/b/doc.md", ".docx", "/a/b/doc.docx"},
		{"noext", ".docx", "noext.docx"},
		{"dir.v2/doc.md", ".docx", "dir.v2/doc.docx"},
	}

	for _, tt := range tests {
		tt := tt
		if got := ReplaceExt(tt.path, tt.ext); got != tt.want {
			t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"doc.md", true},
		{"doc.markdown", true},
		{"doc.txt", false},
		{"doc.docx", false},
		{"doc", false},
	}

	for _, tt := range tests {
		tt := tt
		if got := IsMarkdown(tt.path); got != tt.want {
			t.Errorf("IsMarkdown(%q) = %t, want %t", tt.path, got, tt.want)
		}
	}
}
