// Package refdoc generates reference DOCX files for use as pandoc
// reference documents. A DOCX is a ZIP archive of OOXML parts; the parts
// here are the minimal set Word and pandoc need: document, styles,
// settings, content types, and relationships. Styles use the built-in
// Word names (Normal, heading 1..6) so TOC fields and document outlines
// work everywhere, plus a stable "Code Block" paragraph style.
package refdoc

import (
	"archive/zip"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"math"
	"os"
	"text/template"
)

//go:embed parts
var parts embed.FS

// Sentinel errors for template generation.
var (
	ErrInvalidSpec = errors.New("refdoc: invalid template spec")
)

// Spec configures the generated document. Sizes are in points, the margin
// in centimeters; conversion to OOXML units (half-points, twips) happens
// here.
type Spec struct {
	PageSize    string // "a4" or "letter"
	MarginCm    float64
	BodyFont    string
	BodySizePt  int
	HeadingFont string
	CodeFont    string
	CodeSizePt  int
	AddSample   bool
}

// OOXML unit conversions.
const (
	twipsPerCm    = 567 // 1 cm = 566.93 twips, rounded as Word does
	twipsPerPoint = 20
)

// Page dimensions in twips.
const (
	a4Width      = 11906
	a4Height     = 16838
	letterWidth  = 12240
	letterHeight = 15840
)

// headingSpec describes one built-in heading style.
// Sizes in points; spacing in points before/after.
type headingSpec struct {
	sizePt   int
	bold     bool
	beforePt int
	afterPt  int
}

// headingSpecs covers Heading 1..6, descending in visual weight.
var headingSpecs = [6]headingSpec{
	{18, true, 12, 6},
	{16, true, 10, 4},
	{14, true, 8, 3},
	{12, true, 6, 3},
	{11, false, 6, 3},
	{11, false, 6, 3},
}

var (
	stylesTmpl   = template.Must(template.ParseFS(parts, "parts/styles.xml.tmpl"))
	documentTmpl = template.Must(template.ParseFS(parts, "parts/document.xml.tmpl"))
)

// stylesData feeds the styles.xml template. Sizes are half-points,
// spacing twentieths of a point.
type stylesData struct {
	BodyFont    string
	BodySize    int
	HeadingFont string
	CodeFont    string
	CodeSize    int
	Headings    []headingData
}

type headingData struct {
	ID         string
	Name       string
	OutlineLvl int
	Size       int
	Bold       bool
	Before     int
	After      int
}

// documentData feeds the document.xml template. Dimensions are twips.
type documentData struct {
	AddSample bool
	PageW     int
	PageH     int
	Margin    int
}

// Write generates the reference DOCX at path, overwriting any existing
// file. The operation is deterministic: the same spec always produces the
// same part contents.
func Write(path string, spec Spec) error {
	if err := validate(spec); err != nil {
		return err
	}

	stylesXML, err := render(stylesTmpl, buildStylesData(spec))
	if err != nil {
		return fmt.Errorf("rendering styles: %w", err)
	}
	documentXML, err := render(documentTmpl, buildDocumentData(spec))
	if err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}

	archive := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", mustPart("parts/content_types.xml")},
		{"_rels/.rels", mustPart("parts/rels.xml")},
		{"word/document.xml", documentXML},
		{"word/styles.xml", stylesXML},
		{"word/settings.xml", mustPart("parts/settings.xml")},
		{"word/_rels/document.xml.rels", mustPart("parts/document_rels.xml")},
	}

	f, err := os.Create(path) // #nosec G304 -- destination is caller-chosen by design
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	zw := zip.NewWriter(f)
	for _, entry := range archive {
		w, err := zw.Create(entry.name)
		if err != nil {
			_ = zw.Close()
			_ = f.Close()
			return fmt.Errorf("adding %s: %w", entry.name, err)
		}
		if _, err := w.Write(entry.data); err != nil {
			_ = zw.Close()
			_ = f.Close()
			return fmt.Errorf("writing %s: %w", entry.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return f.Close()
}

// validate rejects specs that would render an unusable document.
func validate(spec Spec) error {
	if spec.PageSize != "a4" && spec.PageSize != "letter" {
		return fmt.Errorf("%w: page size %q", ErrInvalidSpec, spec.PageSize)
	}
	if spec.MarginCm <= 0 {
		return fmt.Errorf("%w: margin %.2f cm", ErrInvalidSpec, spec.MarginCm)
	}
	if spec.BodyFont == "" || spec.HeadingFont == "" || spec.CodeFont == "" {
		return fmt.Errorf("%w: fonts must not be empty", ErrInvalidSpec)
	}
	if spec.BodySizePt <= 0 || spec.CodeSizePt <= 0 {
		return fmt.Errorf("%w: font sizes must be positive", ErrInvalidSpec)
	}
	return nil
}

func buildStylesData(spec Spec) stylesData {
	data := stylesData{
		BodyFont:    spec.BodyFont,
		BodySize:    spec.BodySizePt * 2,
		HeadingFont: spec.HeadingFont,
		CodeFont:    spec.CodeFont,
		CodeSize:    spec.CodeSizePt * 2,
	}
	for i, h := range headingSpecs {
		data.Headings = append(data.Headings, headingData{
			ID:         fmt.Sprintf("Heading%d", i+1),
			Name:       fmt.Sprintf("heading %d", i+1),
			OutlineLvl: i,
			Size:       h.sizePt * 2,
			Bold:       h.bold,
			Before:     h.beforePt * twipsPerPoint,
			After:      h.afterPt * twipsPerPoint,
		})
	}
	return data
}

func buildDocumentData(spec Spec) documentData {
	data := documentData{
		AddSample: spec.AddSample,
		Margin:    int(math.Round(spec.MarginCm * twipsPerCm)),
	}
	switch spec.PageSize {
	case "letter":
		data.PageW, data.PageH = letterWidth, letterHeight
	default:
		data.PageW, data.PageH = a4Width, a4Height
	}
	return data
}

func render(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// mustPart reads an embedded static part. Panics only on a broken build
// (missing embed), never at runtime for user input.
func mustPart(name string) []byte {
	data, err := parts.ReadFile(name)
	if err != nil {
		panic("refdoc: missing embedded part " + name)
	}
	return data
}
