package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to convert. A file input yields a
// single entry; a directory is walked recursively for .md/.markdown files,
// mirroring its layout under the output directory.
func discoverFiles(inputPath, output string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdown(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath := resolveOutputPath(inputPath, output, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, output, inputPath),
		})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the DOCX output path for a markdown file.
// output may be empty (derive next to the source), an explicit .docx file
// path, or a directory.
func resolveOutputPath(inputPath, output, baseInputDir string) string {
	base := filepath.Base(fileutil.ReplaceExt(inputPath, ".docx"))

	if output == "" {
		return fileutil.ReplaceExt(inputPath, ".docx")
	}

	if strings.HasSuffix(output, ".docx") {
		return output
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(output, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(output, base)
}
