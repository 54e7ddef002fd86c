package md2docx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/alnah/go-md2docx/internal/refdoc"
)

// Page size constants for generated templates.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
)

// Template style defaults, chosen for modern Office compatibility.
const (
	DefaultMarginCm   = 2.54 // ≈1 inch
	DefaultBodyFont   = "Calibri"
	DefaultBodySizePt = 11
	DefaultCodeFont   = "Consolas"
	DefaultCodeSizePt = 9
)

// TemplateSpec configures reference template generation.
// The zero value is not usable; start from DefaultTemplateSpec.
type TemplateSpec struct {
	PageSize    string  // "a4" or "letter"
	MarginCm    float64 // uniform page margin in centimeters
	BodyFont    string  // Normal style font
	BodySizePt  int     // Normal style size in points
	HeadingFont string  // Heading 1..6 font
	CodeFont    string  // Code Block style font
	CodeSizePt  int     // Code Block style size in points
	AddSample   bool    // include sample content to preview styles
}

// DefaultTemplateSpec returns the standard modern template configuration.
func DefaultTemplateSpec() *TemplateSpec {
	return &TemplateSpec{
		PageSize:    PageSizeA4,
		MarginCm:    DefaultMarginCm,
		BodyFont:    DefaultBodyFont,
		BodySizePt:  DefaultBodySizePt,
		HeadingFont: DefaultBodyFont,
		CodeFont:    DefaultCodeFont,
		CodeSizePt:  DefaultCodeSizePt,
		AddSample:   true,
	}
}

// Validate checks that template spec settings are valid.
// Returns nil if t is nil (nil means use defaults).
func (t *TemplateSpec) Validate() error {
	if t == nil {
		return nil
	}
	switch strings.ToLower(t.PageSize) {
	case PageSizeA4, PageSizeLetter:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be a4 or letter)", ErrInvalidPageSize, t.PageSize)
	}
}

// ResolveTemplate validates an optional reference template path and returns
// it in absolute form. An empty path means no reference document: the
// conversion proceeds with pandoc's default styling. A non-empty path must
// exist and open as a DOCX; failures are reported before pandoc is spawned.
func ResolveTemplate(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrTemplateInvalid, path)
	}

	if err := openDocx(path); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateInvalid, path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving template path: %w", err)
	}
	return abs, nil
}

// CreateTemplate generates a reference DOCX with a pre-defined style set
// (Normal, Heading 1..6, Code Block) at the given path, overwriting any
// existing file, and returns the absolute path. A nil spec uses
// DefaultTemplateSpec. The operation is independent of any Markdown
// content; the result is meant to be passed as Input.TemplatePath.
func CreateTemplate(path string, spec *TemplateSpec) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: no template path given", ErrTemplateWrite)
	}
	if err := spec.Validate(); err != nil {
		return "", err
	}
	if spec == nil {
		spec = DefaultTemplateSpec()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return "", fmt.Errorf("%w: %v", ErrTemplateWrite, err)
		}
	}

	if err := refdoc.Write(path, toRefdocSpec(spec)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateWrite, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving template path: %w", err)
	}
	return abs, nil
}

// ValidateDocx opens the file as a DOCX and checks that it carries a
// document body. Content-level checks beyond that belong to Word and
// pandoc, not this adapter.
func ValidateDocx(path string) error {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputInvalid, path, err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	if !strings.Contains(content, "<w:body") {
		return fmt.Errorf("%w: %s: document has no body", ErrOutputInvalid, path)
	}
	return nil
}

// openDocx checks that the file opens as a DOCX archive.
func openDocx(path string) error {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return err
	}
	return doc.Close()
}

// toRefdocSpec maps the public spec to the generator's internal one.
func toRefdocSpec(spec *TemplateSpec) refdoc.Spec {
	return refdoc.Spec{
		PageSize:    strings.ToLower(spec.PageSize),
		MarginCm:    spec.MarginCm,
		BodyFont:    spec.BodyFont,
		BodySizePt:  spec.BodySizePt,
		HeadingFont: spec.HeadingFont,
		CodeFont:    spec.CodeFont,
		CodeSizePt:  spec.CodeSizePt,
		AddSample:   spec.AddSample,
	}
}
