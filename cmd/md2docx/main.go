package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS for container CPU limits; batch conversion
	// fans out one pandoc process per worker.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// run dispatches to the requested subcommand and returns the exit code.
// A leading argument that is not a known command is treated as input for
// convert, so `md2docx document.md` works without naming the command.
func run(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "convert":
		return runConvertCmd(args[1:], env)
	case "template":
		return runTemplateCmd(args[1:], env)
	case "doctor":
		return runDoctorCmd(args[1:], env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2docx %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(args[1:], env)
		return ExitSuccess
	default:
		return runConvertCmd(args, env)
	}
}

// hasVerboseFlag reports whether the verbose flag appears in args.
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}
