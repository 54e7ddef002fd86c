package md2docx

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Invocation describes a single pandoc subprocess call: executable,
// ordered argument list, and working directory. It is built once per
// request and never reused or cached.
type Invocation struct {
	Path string   // Executable name or path
	Args []string // Ordered arguments, excluding the executable itself
	Dir  string   // Working directory ("" = inherit)
}

// String renders the invocation as a shell-like command line for
// diagnostics. Not meant to be re-parsed.
func (inv Invocation) String() string {
	return inv.Path + " " + strings.Join(inv.Args, " ")
}

// buildInvocation constructs the pandoc argument list from validated,
// resolved inputs. Pure transformation: no filesystem access, no side
// effects. templatePath must already be resolved and validated ("" means
// no reference document).
func buildInvocation(cfg serviceConfig, sourcePath, outputPath, templatePath string, toc *TOC) Invocation {
	args := []string{
		sourcePath,
		"-f", cfg.readerFormat,
		"-t", cfg.writerFormat,
		"-o", outputPath,
	}

	if templatePath != "" {
		args = append(args, "--reference-doc="+templatePath)
	}

	if toc != nil {
		args = append(args, "--toc", "--toc-depth", strconv.Itoa(toc.depth()))
	}

	return Invocation{Path: cfg.pandocPath, Args: args}
}

// resolveOutputPath derives the absolute destination path. An empty output
// defaults to the source path with its extension replaced by .docx; a
// relative output resolves against the current working directory.
func resolveOutputPath(sourcePath, outputPath string) (string, error) {
	if outputPath == "" {
		ext := filepath.Ext(sourcePath)
		outputPath = strings.TrimSuffix(sourcePath, ext) + ".docx"
	}

	abs, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("resolving output path: %w", err)
	}
	return abs, nil
}
