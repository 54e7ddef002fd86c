// Package md2docx converts Markdown documents to DOCX by invoking pandoc.
//
// # Quick Start
//
// Create a service and convert a file:
//
//	svc := md2docx.New()
//	outPath, err := svc.Convert(ctx, md2docx.Input{
//	    SourcePath: "report.md",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", outPath)
//
// The output path defaults to the source path with a .docx extension. All
// returned paths are absolute.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Input validation (source exists and is non-empty, TOC depth in range)
//  2. Template resolution (optional reference DOCX checked before use)
//  3. Invocation building (pandoc argument list, pure transformation)
//  4. Subprocess execution (pandoc, synchronous, stderr captured)
//  5. Output verification (destination must exist; optional DOCX validation)
//
// All Markdown parsing and DOCX emission belongs to pandoc. This package
// only marshals options, runs the process, and normalizes its outcome into
// typed errors: input problems (ErrSourceNotFound, ErrInvalidTOCDepth, ...),
// a missing pandoc binary (ErrPandocNotFound), and conversion failures
// carrying pandoc's own diagnostics (ErrConversion, ErrOutputMissing).
//
// # Reference Templates
//
// Output styling is controlled by a pandoc reference document. Point
// Input.TemplatePath at an existing DOCX, or generate one with a clean,
// modern style set (Heading 1..6, Normal, Code Block):
//
//	path, err := md2docx.CreateTemplate("reference.docx", nil)
//
// The generated file is a plain DOCX; conversions never parse or mutate it,
// it is only handed to pandoc by path.
//
// # Concurrency
//
// A Service holds no mutable state and may be shared; each Convert call
// builds its own invocation and spawns its own pandoc process. Conversions
// targeting the same destination path race (last writer wins). There is no
// internal timeout: pass a cancellable context to bound a hung pandoc.
//
// # Requirements
//
// pandoc must be installed and discoverable on PATH. TOC generation and
// the docx+styles writer need pandoc 2.19 or newer; run "md2docx doctor"
// to check an environment.
package md2docx
