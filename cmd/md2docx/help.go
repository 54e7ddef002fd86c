package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to DOCX (default)")
	fmt.Fprintln(w, "  template   Create a reference DOCX template")
	fmt.Fprintln(w, "  doctor     Check pandoc installation and environment")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Running 'md2docx document.md' is shorthand for 'md2docx convert document.md'.")
	fmt.Fprintln(w, "Run 'md2docx help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to DOCX using pandoc.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, or a directory to convert recursively")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>     Output DOCX file or directory")
	fmt.Fprintln(w, "      --template <path>   Reference DOCX template for styling")
	fmt.Fprintln(w, "      --toc               Include table of contents")
	fmt.Fprintln(w, "      --no-toc            Disable table of contents")
	fmt.Fprintln(w, "      --toc-depth <n>     TOC depth (1-6, default 3)")
	fmt.Fprintln(w, "      --validate          Validate output DOCX after conversion")
	fmt.Fprintln(w, "      --no-validate       Skip output validation")
	fmt.Fprintln(w, "  -w, --workers <n>       Parallel workers for directory input (0 = auto)")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2DOCX_CONFIG, MD2DOCX_PANDOC_PATH, MD2DOCX_TEMPLATE,")
	fmt.Fprintln(w, "  MD2DOCX_OUTPUT_DIR, MD2DOCX_TOC, MD2DOCX_TOC_DEPTH,")
	fmt.Fprintln(w, "  MD2DOCX_VALIDATE, MD2DOCX_WORKERS")
}

// printTemplateUsage prints usage for the template command.
func printTemplateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx template <path> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create a reference DOCX template with a modern style set")
	fmt.Fprintln(w, "(Normal, Heading 1-6, Code Block) for use with --template.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  path    Destination DOCX path (overwritten if present)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -p, --page-size <s>     Page size: a4, letter")
	fmt.Fprintln(w, "      --no-sample         Omit sample content")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed output")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that pandoc is installed and the environment can convert.")
}

// runHelp shows help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "template":
		printTemplateUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2docx version")
	case "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stdout, "Unknown command %q\n\n", args[0])
		printUsage(env.Stdout)
	}
}
