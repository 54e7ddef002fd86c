package md2docx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner abstracts subprocess execution to enable testing without
// spawning real pandoc processes.
type CommandRunner interface {
	Run(ctx context.Context, inv Invocation) (stdout string, stderr string, err error)
}

// execRunner implements CommandRunner using os/exec.
type execRunner struct{}

// Run executes the invocation synchronously, capturing stdout and stderr.
// The returned error is the raw exec error; callers classify it.
func (execRunner) Run(ctx context.Context, inv Invocation) (string, string, error) {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...) // #nosec G204 -- argument list is built by buildInvocation, not from raw user strings
	cmd.Dir = inv.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// isNotFound reports whether err means the executable could not be located.
func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}

// PandocVersion runs "pandoc --version" and returns the version token from
// its first output line (e.g., "3.1.9"). Returns ErrPandocNotFound when the
// binary is absent from PATH.
func PandocVersion(ctx context.Context, pandocPath string) (string, error) {
	if pandocPath == "" {
		pandocPath = defaultPandocPath
	}

	stdout, stderr, err := execRunner{}.Run(ctx, Invocation{Path: pandocPath, Args: []string{"--version"}})
	if err != nil {
		if isNotFound(err) {
			return "", fmt.Errorf("%w: %q", ErrPandocNotFound, pandocPath)
		}
		return "", fmt.Errorf("querying pandoc version: %s: %w", strings.TrimSpace(stderr), err)
	}

	return parseVersionOutput(stdout)
}

// parseVersionOutput extracts the version from "pandoc X.Y.Z" banner output.
func parseVersionOutput(out string) (string, error) {
	line, _, _ := strings.Cut(out, "\n")
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", fmt.Errorf("unexpected pandoc version output: %q", line)
	}
	return fields[len(fields)-1], nil
}
