package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input md2docx.Input) (string, error)
}

// Compile-time interface implementation check.
var _ Converter = (*md2docx.Service)(nil)

// conversionParams groups the per-request options resolved from flags,
// environment, and config (in that precedence order, flags winning).
type conversionParams struct {
	template string
	toc      *md2docx.TOC
	validate bool
	quiet    bool
	verbose  bool
}

// runConvertCmd parses flags and executes the convert command.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if err := runConvert(context.Background(), positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, "Error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Depth bounds apply even when no TOC was requested, so a typo like
	// --toc-depth 9 never passes silently. An explicit 0 is rejected too:
	// zero means "default" only when the flag is absent.
	if flags.toc.depthSet {
		if d := flags.toc.depth; d < md2docx.MinTOCDepth || d > md2docx.MaxTOCDepth {
			return fmt.Errorf("%w: %d (must be between %d and %d)",
				md2docx.ErrInvalidTOCDepth, d, md2docx.MinTOCDepth, md2docx.MaxTOCDepth)
		}
	}

	warnw := io.Writer(env.Stderr)
	if flags.common.quiet {
		warnw = io.Discard
	}
	ec := loadEnvConfig(env.Environ(), warnw)

	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = ec.ConfigPath
	}
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	ec.applyTo(cfg)

	params := resolveParams(flags, ec, cfg)

	if len(positionalArgs) == 0 {
		return fmt.Errorf("%w: pass a markdown file or directory", ErrNoInput)
	}
	inputPath := positionalArgs[0]

	files, err := discoverFiles(inputPath, resolveOutputTarget(flags.output, cfg))
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files in %s", ErrNoInput, inputPath)
	}

	svc := newService(cfg)

	if len(files) == 1 {
		return convertOne(ctx, svc, files[0], params, env)
	}

	workers := flags.workers
	if workers == 0 {
		workers = ec.Workers
	}
	return convertAll(ctx, svc, files, params, workers, env)
}

// newService builds the conversion service from config.
func newService(cfg *config.Config) *md2docx.Service {
	opts := []md2docx.Option{
		md2docx.WithFormats(cfg.Pandoc.ReaderFormat, cfg.Pandoc.WriterFormat),
	}
	if cfg.Pandoc.Path != "" {
		opts = append(opts, md2docx.WithPandocPath(cfg.Pandoc.Path))
	}
	return md2docx.New(opts...)
}

// resolveParams merges flags, environment, and config into per-request
// conversion parameters. Flags win; the environment beats the config file.
func resolveParams(flags *convertFlags, ec *envConfig, cfg *config.Config) *conversionParams {
	p := &conversionParams{
		template: flags.template,
		validate: cfg.Conversion.ValidateOutput,
		quiet:    flags.common.quiet,
		verbose:  flags.common.verbose,
	}

	if p.template == "" {
		p.template = ec.Template
	}

	tocEnabled := cfg.Conversion.DefaultTOC
	if flags.toc.enabled {
		tocEnabled = true
	}
	if flags.toc.disabled {
		tocEnabled = false
	}
	if tocEnabled {
		depth := cfg.Conversion.DefaultTOCDepth
		if flags.toc.depthSet {
			depth = flags.toc.depth
		}
		p.toc = &md2docx.TOC{Depth: depth}
	}

	if flags.validate {
		p.validate = true
	}
	if flags.noValidate {
		p.validate = false
	}

	return p
}

// resolveOutputTarget picks the output flag over the configured default dir.
func resolveOutputTarget(output string, cfg *config.Config) string {
	if output != "" {
		return output
	}
	return cfg.Output.DefaultDir
}

// convertOne converts a single file, with verbose outline reporting.
func convertOne(ctx context.Context, svc Converter, f FileToConvert, params *conversionParams, env *Environment) error {
	if params.verbose || params.toc != nil {
		reportOutline(f.InputPath, params, env)
	}

	outPath, err := svc.Convert(ctx, md2docx.Input{
		SourcePath:     f.InputPath,
		OutputPath:     f.OutputPath,
		TemplatePath:   params.template,
		TOC:            params.toc,
		ValidateOutput: params.validate,
	})
	if err != nil {
		return err
	}

	if !params.quiet {
		fmt.Fprintf(env.Stdout, "Converted %s -> %s\n", f.InputPath, outPath)
	}
	if params.verbose {
		if params.template != "" {
			fmt.Fprintf(env.Stdout, "  Template: %s\n", params.template)
		}
		if version, err := md2docx.PandocVersion(ctx, ""); err == nil {
			fmt.Fprintf(env.Stdout, "  Pandoc version: %s\n", version)
		}
	}
	return nil
}

// reportOutline scans the source outline and reports what a TOC would
// contain. A TOC request on a heading-less document gets a warning: the
// conversion still runs, pandoc just emits an empty TOC.
func reportOutline(inputPath string, params *conversionParams, env *Environment) {
	source, err := os.ReadFile(inputPath) // #nosec G304 -- user-chosen input path
	if err != nil {
		return // the conversion itself will surface the real error
	}
	headings, err := md2docx.Outline(source)
	if err != nil {
		return
	}

	if params.toc != nil {
		depth := params.toc.Depth
		if depth == 0 {
			depth = md2docx.DefaultTOCDepth
		}
		entries := md2docx.CountTOCEntries(headings, depth)
		if entries == 0 && !params.quiet {
			fmt.Fprintf(env.Stderr, "Warning: %s has no headings; the table of contents will be empty\n", inputPath)
		}
		if params.verbose {
			fmt.Fprintf(env.Stdout, "  Table of contents: %d entries (depth <= %d)\n", entries, depth)
		}
	} else if params.verbose {
		fmt.Fprintf(env.Stdout, "  Outline: %d headings\n", len(headings))
	}
}
