package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-md2docx/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable parsing
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	var warnings bytes.Buffer
	ec := loadEnvConfig([]string{
		"MD2DOCX_CONFIG=team",
		"MD2DOCX_PANDOC_PATH=/opt/pandoc",
		"MD2DOCX_TEMPLATE=/tpl/ref.docx",
		"MD2DOCX_OUTPUT_DIR=/out",
		"MD2DOCX_TOC=true",
		"MD2DOCX_TOC_DEPTH=2",
		"MD2DOCX_VALIDATE=false",
		"MD2DOCX_WORKERS=4",
		"PATH=/usr/bin",
		"HOME=/home/user",
	}, &warnings)

	if ec.ConfigPath != "team" {
		t.Errorf("ConfigPath = %q", ec.ConfigPath)
	}
	if ec.PandocPath != "/opt/pandoc" {
		t.Errorf("PandocPath = %q", ec.PandocPath)
	}
	if ec.Template != "/tpl/ref.docx" {
		t.Errorf("Template = %q", ec.Template)
	}
	if ec.OutputDir != "/out" {
		t.Errorf("OutputDir = %q", ec.OutputDir)
	}
	if ec.TOC == nil || !*ec.TOC {
		t.Errorf("TOC = %v, want true", ec.TOC)
	}
	if ec.TOCDepth != 2 {
		t.Errorf("TOCDepth = %d", ec.TOCDepth)
	}
	if ec.Validate == nil || *ec.Validate {
		t.Errorf("Validate = %v, want false", ec.Validate)
	}
	if ec.Workers != 4 {
		t.Errorf("Workers = %d", ec.Workers)
	}
	if warnings.Len() != 0 {
		t.Errorf("unexpected warnings: %s", warnings.String())
	}
}

func TestLoadEnvConfig_UnknownVariableWarns(t *testing.T) {
	t.Parallel()

	var warnings bytes.Buffer
	loadEnvConfig([]string{"MD2DOCX_TOC_DETPH=3"}, &warnings)

	if !strings.Contains(warnings.String(), "MD2DOCX_TOC_DETPH") {
		t.Errorf("warnings = %q, want typo notice", warnings.String())
	}
}

func TestLoadEnvConfig_BadValuesWarnAndIgnore(t *testing.T) {
	t.Parallel()

	var warnings bytes.Buffer
	ec := loadEnvConfig([]string{
		"MD2DOCX_TOC=maybe",
		"MD2DOCX_WORKERS=many",
	}, &warnings)

	if ec.TOC != nil {
		t.Errorf("TOC = %v, want nil for unparseable value", ec.TOC)
	}
	if ec.Workers != 0 {
		t.Errorf("Workers = %d, want 0 for unparseable value", ec.Workers)
	}
	if got := warnings.String(); !strings.Contains(got, "MD2DOCX_TOC") || !strings.Contains(got, "MD2DOCX_WORKERS") {
		t.Errorf("warnings = %q, want both values reported", got)
	}
}

func TestParseEnvBool_Spellings(t *testing.T) {
	t.Parallel()

	truthy := []string{"true", "yes", "1", "on", "TRUE", "Yes"}
	falsy := []string{"false", "no", "0", "off", "FALSE"}

	for _, v := range truthy {
		got := parseEnvBool("MD2DOCX_TOC", v, &bytes.Buffer{})
		if got == nil || !*got {
			t.Errorf("parseEnvBool(%q) = %v, want true", v, got)
		}
	}
	for _, v := range falsy {
		got := parseEnvBool("MD2DOCX_TOC", v, &bytes.Buffer{})
		if got == nil || *got {
			t.Errorf("parseEnvBool(%q) = %v, want false", v, got)
		}
	}
}

// ---------------------------------------------------------------------------
// TestEnvConfig_ApplyTo - Merging into config
// ---------------------------------------------------------------------------

func TestEnvConfig_ApplyTo(t *testing.T) {
	t.Parallel()

	on := true
	ec := &envConfig{
		PandocPath: "/opt/pandoc",
		OutputDir:  "/out",
		TOC:        &on,
		TOCDepth:   2,
	}

	cfg := config.DefaultConfig()
	ec.applyTo(cfg)

	if cfg.Pandoc.Path != "/opt/pandoc" {
		t.Errorf("Pandoc.Path = %q", cfg.Pandoc.Path)
	}
	if cfg.Output.DefaultDir != "/out" {
		t.Errorf("Output.DefaultDir = %q", cfg.Output.DefaultDir)
	}
	if !cfg.Conversion.DefaultTOC || cfg.Conversion.DefaultTOCDepth != 2 {
		t.Errorf("Conversion = %+v", cfg.Conversion)
	}
}

func TestEnvConfig_ApplyTo_EmptyKeepsConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	want := *cfg

	(&envConfig{}).applyTo(cfg)

	if *cfg != want {
		t.Errorf("empty env must not change config: %+v", cfg)
	}
}
