package md2docx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// dirPermissions is used when creating output directories.
const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// Service orchestrates the markdown-to-DOCX pipeline. It holds no mutable
// state: a single Service is safe to share across concurrent conversions,
// each of which builds its own invocation and spawns its own process.
type Service struct {
	cfg    serviceConfig
	runner CommandRunner
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithPandocPath).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			pandocPath:   defaultPandocPath,
			readerFormat: DefaultReaderFormat,
			writerFormat: DefaultWriterFormat,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.runner == nil {
		s.runner = execRunner{}
	}

	return s
}

// Convert runs the full pipeline and returns the absolute path of the
// produced DOCX. The context is passed to the pandoc subprocess for
// caller-imposed cancellation; no internal timeout or retry is applied.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	sourcePath, err := s.validateSource(input.SourcePath)
	if err != nil {
		return "", err
	}

	if err := input.TOC.Validate(); err != nil {
		return "", err
	}

	outputPath, err := resolveOutputPath(sourcePath, input.OutputPath)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), dirPermissions); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	templatePath, err := ResolveTemplate(input.TemplatePath)
	if err != nil {
		return "", err
	}

	inv := buildInvocation(s.cfg, sourcePath, outputPath, templatePath, input.TOC)

	if err := s.runPandoc(ctx, inv); err != nil {
		return "", err
	}

	// Pandoc exiting 0 does not guarantee the file landed; double-check.
	if _, err := os.Stat(outputPath); err != nil {
		return "", fmt.Errorf("%w: %s", ErrOutputMissing, outputPath)
	}

	if input.ValidateOutput {
		if err := ValidateDocx(outputPath); err != nil {
			return "", err
		}
	}

	return outputPath, nil
}

// runPandoc executes the invocation and normalizes failures into the
// package error taxonomy.
func (s *Service) runPandoc(ctx context.Context, inv Invocation) error {
	_, stderr, err := s.runner.Run(ctx, inv)
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if isNotFound(err) {
		return fmt.Errorf("%w: %q", ErrPandocNotFound, inv.Path)
	}

	diag := strings.TrimSpace(stderr)
	if diag == "" {
		diag = err.Error()
	}
	return fmt.Errorf("%w: %s", ErrConversion, diag)
}

// validateSource checks the source file and returns its absolute path.
// Violations are reported before any subprocess is spawned.
func (s *Service) validateSource(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: no source path given", ErrSourceNotFound)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrSourceIsDir, path)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("%w: %s", ErrSourceEmpty, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving source path: %w", err)
	}
	return abs, nil
}
