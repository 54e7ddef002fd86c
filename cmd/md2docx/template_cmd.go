package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// runTemplateCmd parses flags and executes the template command.
func runTemplateCmd(args []string, env *Environment) int {
	flags, positional, err := parseTemplateFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if err := runTemplate(positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, "Error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runTemplate creates a reference DOCX template and exits without
// performing any conversion.
func runTemplate(positionalArgs []string, flags *templateFlags, env *Environment) error {
	if len(positionalArgs) == 0 {
		return fmt.Errorf("%w: pass a destination path for the template", ErrNoInput)
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

	spec := &md2docx.TemplateSpec{
		PageSize:    cfg.Template.PageSize,
		MarginCm:    cfg.Template.MarginCm,
		BodyFont:    cfg.Template.BodyFont,
		BodySizePt:  cfg.Template.BodySizePt,
		HeadingFont: cfg.Template.BodyFont,
		CodeFont:    cfg.Template.CodeFont,
		CodeSizePt:  cfg.Template.CodeSizePt,
		AddSample:   !flags.noSample,
	}
	if flags.pageSize != "" {
		spec.PageSize = flags.pageSize
	}

	path, err := md2docx.CreateTemplate(positionalArgs[0], spec)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created reference template %s\n", path)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "  Page: %s, margin %.2f cm\n", spec.PageSize, spec.MarginCm)
		fmt.Fprintf(env.Stdout, "  Body: %s %dpt, code: %s %dpt\n", spec.BodyFont, spec.BodySizePt, spec.CodeFont, spec.CodeSizePt)
		if spec.AddSample {
			fmt.Fprintln(env.Stdout, "  Sample content included for style preview")
		}
	}
	return nil
}
