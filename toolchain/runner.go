package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
)

// ExecRunner runs external tools with os/exec.
type ExecRunner struct {
	// Stdin is attached to the child when set, so tools such as sudo can
	// prompt for a password.
	Stdin io.Reader

	log *slog.Logger
}

// NewExecRunner creates a runner that logs every invocation at debug level.
func NewExecRunner(log *slog.Logger) *ExecRunner {
	return &ExecRunner{log: log}
}

// WithStdin returns a copy of the runner attaching r to child processes.
func (e *ExecRunner) WithStdin(r io.Reader) *ExecRunner {
	clone := *e
	clone.Stdin = r
	return &clone
}

// Run executes name with args and returns combined stdout and stderr.
func (e *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = e.Stdin

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if e.log != nil {
		e.log.Debug("Running command", "cmd", name, "args", strings.Join(args, " "))
	}

	if err := cmd.Run(); err != nil {
		out := strings.TrimSpace(output.String())
		if out == "" {
			return output.Bytes(), fmt.Errorf("%s: %w", name, err)
		}
		return output.Bytes(), fmt.Errorf("%s: %w: %s", name, err, out)
	}

	return output.Bytes(), nil
}
