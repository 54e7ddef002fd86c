package md2docx

import (
	"fmt"
)

// TOC depth bounds, matching the heading levels Markdown can produce.
const (
	MinTOCDepth     = 1
	MaxTOCDepth     = 6
	DefaultTOCDepth = 3
)

// Input contains conversion parameters for a single request.
type Input struct {
	SourcePath     string // Markdown file to convert (required)
	OutputPath     string // Destination DOCX ("" = source with .docx extension)
	TemplatePath   string // Reference DOCX for styling ("" = pandoc defaults)
	TOC            *TOC   // Table of contents config (nil = no TOC)
	ValidateOutput bool   // Open the produced DOCX after conversion
}

// TOC configures table of contents generation.
type TOC struct {
	Depth int // Maximum heading level included (1-6, 0 = DefaultTOCDepth)
}

// Validate checks that TOC settings are valid.
// Returns nil if t is nil (nil means no table of contents).
func (t *TOC) Validate() error {
	if t == nil {
		return nil
	}
	if t.Depth == 0 {
		return nil
	}
	if t.Depth < MinTOCDepth || t.Depth > MaxTOCDepth {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidTOCDepth, t.Depth, MinTOCDepth, MaxTOCDepth)
	}
	return nil
}

// depth returns the effective TOC depth.
func (t *TOC) depth() int {
	if t == nil || t.Depth == 0 {
		return DefaultTOCDepth
	}
	return t.Depth
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	pandocPath   string
	readerFormat string
	writerFormat string
}

// Pandoc format defaults. GFM with the extensions technical documents
// need; docx+styles keeps custom paragraph styles addressable from
// fenced divs and bracketed spans.
const (
	defaultPandocPath   = "pandoc"
	DefaultReaderFormat = "gfm+footnotes+tex_math_dollars+fenced_divs+bracketed_spans"
	DefaultWriterFormat = "docx+styles"
)

// WithPandocPath overrides the pandoc executable name or path.
// Panics if path is empty (programmer error, similar to time.NewTicker).
func WithPandocPath(path string) Option {
	if path == "" {
		panic("md2docx: WithPandocPath path must not be empty")
	}
	return func(s *Service) {
		s.cfg.pandocPath = path
	}
}

// WithFormats overrides the pandoc reader and writer formats.
// Empty strings keep the corresponding default.
func WithFormats(reader, writer string) Option {
	return func(s *Service) {
		if reader != "" {
			s.cfg.readerFormat = reader
		}
		if writer != "" {
			s.cfg.writerFormat = writer
		}
	}
}

// WithRunner injects a custom command runner (e.g., a fake in tests).
func WithRunner(r CommandRunner) Option {
	return func(s *Service) {
		s.runner = r
	}
}
