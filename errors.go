package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	// Input validation errors. These are caught before pandoc is spawned.
	ErrSourceNotFound  = errors.New("source file not found")
	ErrSourceEmpty     = errors.New("source file is empty")
	ErrSourceIsDir     = errors.New("source path is a directory")
	ErrInvalidTOCDepth = errors.New("invalid TOC depth")

	// Template errors. Also input-class: a bad template never reaches pandoc.
	ErrTemplateNotFound = errors.New("template file not found")
	ErrTemplateInvalid  = errors.New("template is not a readable DOCX file")
	ErrTemplateWrite    = errors.New("failed to write template")
	ErrInvalidPageSize  = errors.New("invalid page size")

	// Environment errors.
	ErrPandocNotFound = errors.New("pandoc executable not found in PATH")

	// Conversion errors. Pandoc ran but the conversion did not succeed.
	ErrConversion    = errors.New("pandoc conversion failed")
	ErrOutputMissing = errors.New("pandoc reported success but output file is missing")
	ErrOutputInvalid = errors.New("output is not a valid DOCX file")
)
