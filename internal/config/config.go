// Package config provides configuration loading for md2docx.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for document conversion.
type Config struct {
	Pandoc     PandocConfig     `yaml:"pandoc"`
	Template   TemplateConfig   `yaml:"template"`
	Conversion ConversionConfig `yaml:"conversion"`
	Output     OutputConfig     `yaml:"output"`
}

// PandocConfig defines pandoc invocation options.
type PandocConfig struct {
	Path         string `yaml:"path"`         // Executable name or path (empty = "pandoc")
	ReaderFormat string `yaml:"readerFormat"` // Markdown reader format with extensions
	WriterFormat string `yaml:"writerFormat"` // DOCX writer format
	MinVersion   string `yaml:"minVersion"`   // Minimum version checked by doctor
}

// TemplateConfig defines generated reference template options.
type TemplateConfig struct {
	PageSize   string  `yaml:"pageSize"`   // "a4" or "letter"
	MarginCm   float64 `yaml:"marginCm"`   // uniform margin in centimeters
	BodyFont   string  `yaml:"bodyFont"`   // Normal style font
	BodySizePt int     `yaml:"bodySizePt"` // Normal style size in points
	CodeFont   string  `yaml:"codeFont"`   // Code Block style font
	CodeSizePt int     `yaml:"codeSizePt"` // Code Block style size in points
}

// ConversionConfig defines conversion defaults.
type ConversionConfig struct {
	DefaultTOC      bool `yaml:"defaultToc"`      // Include a TOC when flags are silent
	DefaultTOCDepth int  `yaml:"defaultTocDepth"` // TOC depth when not given (1-6)
	ValidateOutput  bool `yaml:"validateOutput"`  // Open the produced DOCX after conversion
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	return &Config{
		Pandoc: PandocConfig{
			Path:         "pandoc",
			ReaderFormat: "gfm+footnotes+tex_math_dollars+fenced_divs+bracketed_spans",
			WriterFormat: "docx+styles",
			MinVersion:   "2.19",
		},
		Template: TemplateConfig{
			PageSize:   "a4",
			MarginCm:   2.54,
			BodyFont:   "Calibri",
			BodySizePt: 11,
			CodeFont:   "Consolas",
			CodeSizePt: 9,
		},
		Conversion: ConversionConfig{
			DefaultTOC:      false,
			DefaultTOCDepth: 3,
			ValidateOutput:  false,
		},
		Output: OutputConfig{DefaultDir: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
// Fields absent from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/md2docx/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "md2docx", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
