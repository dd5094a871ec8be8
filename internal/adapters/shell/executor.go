// Package shell provides the shell runner adapters.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/zerr"
)

// SystemRunner implements ports.ShellRunner by handing each command line to the host shell.
type SystemRunner struct {
	shell []string
}

// NewSystemRunner creates a runner using "sh -c" (or "cmd /C" on Windows).
func NewSystemRunner() *SystemRunner {
	shell := []string{"sh", "-c"}
	if runtime.GOOS == "windows" {
		shell = []string{"cmd", "/C"}
	}
	return &SystemRunner{shell: shell}
}

// Run executes command in the current working directory.
func (r *SystemRunner) Run(ctx context.Context, command string, stdout, stderr io.Writer) error {
	args := append(append([]string(nil), r.shell[1:]...), command)
	cmd := exec.CommandContext(ctx, r.shell[0], args...) //nolint:gosec // command comes from the build script

	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return commandError(command, err)
	}

	return nil
}

// commandError converts a process failure into a typed ExecutionError carrying the exit code.
func commandError(command string, err error) error {
	exitCode := -1 // Unknown, signal or start failure
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	execErr := &domain.ExecutionError{Command: command, ExitCode: exitCode}
	if exitCode < 0 {
		execErr.Err = err
	}
	return zerr.With(zerr.With(execErr, "command", command), "exit_code", exitCode)
}

var _ ports.ShellRunner = (*SystemRunner)(nil)
