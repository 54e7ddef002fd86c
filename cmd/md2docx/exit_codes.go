package main

import (
	"errors"
	"os"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// Exit codes for the md2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes
// below 126. Input problems, a missing pandoc, and conversion failures get
// distinct codes so scripts can branch without parsing stderr.
const (
	ExitSuccess    = 0 // Successful conversion
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, or validation
	ExitIO         = 3 // File not found, permission denied
	ExitPandoc     = 4 // Pandoc executable missing from PATH
	ExitConversion = 5 // Pandoc ran but the conversion failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Pandoc missing (exit 4)
	if errors.Is(err, md2docx.ErrPandocNotFound) {
		return ExitPandoc
	}

	// Conversion errors (exit 5)
	if errors.Is(err, md2docx.ErrConversion) ||
		errors.Is(err, md2docx.ErrOutputMissing) ||
		errors.Is(err, md2docx.ErrOutputInvalid) {
		return ExitConversion
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2docx.ErrSourceNotFound) ||
		errors.Is(err, md2docx.ErrSourceEmpty) ||
		errors.Is(err, md2docx.ErrSourceIsDir) ||
		errors.Is(err, md2docx.ErrTemplateNotFound) ||
		errors.Is(err, md2docx.ErrTemplateWrite) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, md2docx.ErrInvalidTOCDepth) ||
		errors.Is(err, md2docx.ErrTemplateInvalid) ||
		errors.Is(err, md2docx.ErrInvalidPageSize) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}
