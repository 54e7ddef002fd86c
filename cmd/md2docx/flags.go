package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// tocFlags holds table of contents flags. The toc flag is tri-state
// (on, off, unset) so config defaults apply only when the user is silent.
type tocFlags struct {
	enabled  bool
	disabled bool
	depth    int
	depthSet bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	template   string
	toc        tocFlags
	validate   bool
	noValidate bool
	workers    int
}

// templateFlags holds all flags for the template command.
type templateFlags struct {
	common   commonFlags
	pageSize string
	noSample bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed output")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output DOCX file or directory")
	fs.StringVar(&f.template, "template", "", "reference DOCX template for styling")
	fs.BoolVar(&f.toc.enabled, "toc", false, "include table of contents")
	fs.BoolVar(&f.toc.disabled, "no-toc", false, "disable table of contents")
	fs.IntVar(&f.toc.depth, "toc-depth", 0, "table of contents depth (1-6)")
	fs.BoolVar(&f.validate, "validate", false, "validate output DOCX after conversion")
	fs.BoolVar(&f.noValidate, "no-validate", false, "skip output validation")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for directory input (0 = auto)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.toc.depthSet = fs.Changed("toc-depth")

	return f, fs.Args(), nil
}

// parseTemplateFlags parses template command flags and returns positional args.
func parseTemplateFlags(args []string) (*templateFlags, []string, error) {
	fs := flag.NewFlagSet("template", flag.ContinueOnError)
	f := &templateFlags{}

	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: a4, letter")
	fs.BoolVar(&f.noSample, "no-sample", false, "omit sample content")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printTemplateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
