package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Pandoc   pandocInfo `json:"pandoc"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// pandocInfo holds pandoc detection results.
type pandocInfo struct {
	Found      bool   `json:"found"`
	Path       string `json:"path,omitempty"`
	Version    string `json:"version,omitempty"`
	MinVersion string `json:"min_version"`
	VersionOK  bool   `json:"version_ok"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), nonzero = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	ec := loadEnvConfig(env.Environ(), env.Stderr)
	cfg := config.DefaultConfig()
	ec.applyTo(cfg)

	result := runDoctor(cfg)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitPandoc
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(cfg *config.Config) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Pandoc: pandocInfo{MinVersion: cfg.Pandoc.MinVersion},
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
			CI:   os.Getenv("CI") != "",
		},
	}

	detectContainer(&result.Env)
	checkPandoc(cfg, result)
	checkTempDir(result)

	switch {
	case len(result.Errors) > 0:
		result.Status = "errors"
	case len(result.Warnings) > 0:
		result.Status = "warnings"
	}
	return result
}

// checkPandoc locates pandoc and probes its version against the minimum.
func checkPandoc(cfg *config.Config, result *doctorResult) {
	pandocPath := cfg.Pandoc.Path
	if pandocPath == "" {
		pandocPath = "pandoc"
	}

	resolved, err := exec.LookPath(pandocPath)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("pandoc not found in PATH (looked for %q); install it from https://pandoc.org/installing.html", pandocPath))
		return
	}
	result.Pandoc.Found = true
	result.Pandoc.Path = resolved

	version, err := md2docx.PandocVersion(context.Background(), pandocPath)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not determine pandoc version: %v", err))
		return
	}
	result.Pandoc.Version = version

	if compareVersions(version, cfg.Pandoc.MinVersion) < 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("pandoc %s is older than the recommended minimum %s; TOC and docx+styles behavior may differ", version, cfg.Pandoc.MinVersion))
		return
	}
	result.Pandoc.VersionOK = true
}

// checkTempDir verifies the temp directory is writable.
func checkTempDir(result *doctorResult) {
	f, err := os.CreateTemp("", "md2docx-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("temp directory not writable: %v", err))
		return
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	result.System.TempWritable = true
}

// detectContainer looks for common container markers.
func detectContainer(env *envInfo) {
	markers := map[string]string{
		"/.dockerenv":                    "docker",
		"/run/.containerenv":             "podman",
		"/var/run/secrets/kubernetes.io": "kubernetes",
	}
	for path, hint := range markers {
		if _, err := os.Stat(path); err == nil {
			env.Container = true
			env.ContainerHint = hint
			return
		}
	}
}

// compareVersions compares dotted numeric versions: -1, 0, or 1.
// Non-numeric segments compare as zero.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// printDoctorResult renders the human-readable report.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintf(w, "md2docx doctor\n\n")

	if result.Pandoc.Found {
		fmt.Fprintf(w, "  pandoc:     %s\n", result.Pandoc.Path)
		if result.Pandoc.Version != "" {
			ok := "OK"
			if !result.Pandoc.VersionOK {
				ok = fmt.Sprintf("below minimum %s", result.Pandoc.MinVersion)
			}
			fmt.Fprintf(w, "  version:    %s (%s)\n", result.Pandoc.Version, ok)
		}
	} else {
		fmt.Fprintf(w, "  pandoc:     not found\n")
	}

	fmt.Fprintf(w, "  system:     %s/%s", result.Env.OS, result.Env.Arch)
	if result.Env.Container {
		fmt.Fprintf(w, " (container: %s)", result.Env.ContainerHint)
	}
	if result.Env.CI {
		fmt.Fprintf(w, " (CI)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  temp dir:   writable=%t\n", result.System.TempWritable)

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "\nWarning: %s\n", warning)
	}
	for _, errMsg := range result.Errors {
		fmt.Fprintf(w, "\nError: %s\n", errMsg)
	}

	fmt.Fprintf(w, "\nStatus: %s\n", result.Status)
}
