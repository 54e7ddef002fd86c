package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2docx/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
// Precedence: defaults < config file < environment < flags.
type envConfig struct {
	ConfigPath string // MD2DOCX_CONFIG: config file name or path
	PandocPath string // MD2DOCX_PANDOC_PATH: pandoc executable
	Template   string // MD2DOCX_TEMPLATE: reference DOCX path
	OutputDir  string // MD2DOCX_OUTPUT_DIR: default output directory
	TOC        *bool  // MD2DOCX_TOC: include table of contents
	TOCDepth   int    // MD2DOCX_TOC_DEPTH: TOC depth (0 = unset)
	Validate   *bool  // MD2DOCX_VALIDATE: validate output DOCX
	Workers    int    // MD2DOCX_WORKERS: parallel workers (0 = unset)
}

// envPrefix namespaces all environment variables of this tool.
const envPrefix = "MD2DOCX_"

// knownEnvVars lists valid MD2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2DOCX_CONFIG":      true,
	"MD2DOCX_PANDOC_PATH": true,
	"MD2DOCX_TEMPLATE":    true,
	"MD2DOCX_OUTPUT_DIR":  true,
	"MD2DOCX_TOC":         true,
	"MD2DOCX_TOC_DEPTH":   true,
	"MD2DOCX_VALIDATE":    true,
	"MD2DOCX_WORKERS":     true,
}

// loadEnvConfig reads MD2DOCX_* variables from the given environment slice
// (os.Environ format). Unknown MD2DOCX_* variables and unparseable values
// are reported on warnw, never fatal.
func loadEnvConfig(environ []string, warnw io.Writer) *envConfig {
	ec := &envConfig{}

	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) {
			continue
		}
		if !knownEnvVars[key] {
			fmt.Fprintf(warnw, "Warning: unknown environment variable %s (typo?)\n", key)
			continue
		}

		switch key {
		case "MD2DOCX_CONFIG":
			ec.ConfigPath = value
		case "MD2DOCX_PANDOC_PATH":
			ec.PandocPath = value
		case "MD2DOCX_TEMPLATE":
			ec.Template = value
		case "MD2DOCX_OUTPUT_DIR":
			ec.OutputDir = value
		case "MD2DOCX_TOC":
			ec.TOC = parseEnvBool(key, value, warnw)
		case "MD2DOCX_TOC_DEPTH":
			ec.TOCDepth = parseEnvInt(key, value, warnw)
		case "MD2DOCX_VALIDATE":
			ec.Validate = parseEnvBool(key, value, warnw)
		case "MD2DOCX_WORKERS":
			ec.Workers = parseEnvInt(key, value, warnw)
		}
	}

	return ec
}

// applyTo merges environment values into the config. Flags are merged
// later and win over both.
func (ec *envConfig) applyTo(cfg *config.Config) {
	if ec.PandocPath != "" {
		cfg.Pandoc.Path = ec.PandocPath
	}
	if ec.OutputDir != "" {
		cfg.Output.DefaultDir = ec.OutputDir
	}
	if ec.TOC != nil {
		cfg.Conversion.DefaultTOC = *ec.TOC
	}
	if ec.TOCDepth != 0 {
		cfg.Conversion.DefaultTOCDepth = ec.TOCDepth
	}
	if ec.Validate != nil {
		cfg.Conversion.ValidateOutput = *ec.Validate
	}
}

// parseEnvBool parses truthy/falsy values the way the config file does.
func parseEnvBool(key, value string, warnw io.Writer) *bool {
	switch strings.ToLower(value) {
	case "true", "yes", "1", "on":
		v := true
		return &v
	case "false", "no", "0", "off":
		v := false
		return &v
	default:
		fmt.Fprintf(warnw, "Warning: %s=%q is not a boolean, ignoring\n", key, value)
		return nil
	}
}

// parseEnvInt parses an integer value, warning on garbage.
func parseEnvInt(key, value string, warnw io.Writer) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		fmt.Fprintf(warnw, "Warning: %s=%q is not an integer, ignoring\n", key, value)
		return 0
	}
	return n
}
