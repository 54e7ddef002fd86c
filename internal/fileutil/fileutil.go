// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name. A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "defaults" -> false (name)
//   - "./custom.yaml" -> true (relative path)
//   - "/etc/md2docx.yaml" -> true (absolute)
//   - "C:\docs\config.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ReplaceExt returns path with its extension replaced by newExt.
// newExt must include the leading dot.
func ReplaceExt(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}

// IsMarkdown returns true for files with a .md or .markdown extension.
func IsMarkdown(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}
