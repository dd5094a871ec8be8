package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRunner implements ports.ShellRunner with the embedded POSIX shell
// interpreter, so build scripts behave the same on hosts without sh.
type VirtualRunner struct {
	parser *syntax.Parser
}

// NewVirtualRunner creates a runner backed by mvdan.cc/sh.
func NewVirtualRunner() *VirtualRunner {
	return &VirtualRunner{parser: syntax.NewParser()}
}

// Run interprets command in the current working directory.
func (r *VirtualRunner) Run(ctx context.Context, command string, stdout, stderr io.Writer) error {
	prog, err := r.parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return zerr.With(&domain.ExecutionError{Command: command, ExitCode: -1, Err: err}, "command", command)
	}

	dir, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to resolve working directory")
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(os.Stdin, stdout, stderr),
	)
	if err != nil {
		return zerr.Wrap(err, "failed to create interpreter")
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return zerr.With(
				zerr.With(&domain.ExecutionError{Command: command, ExitCode: int(status)}, "command", command),
				"exit_code", int(status),
			)
		}
		return zerr.With(&domain.ExecutionError{Command: command, ExitCode: -1, Err: err}, "command", command)
	}

	return nil
}

var _ ports.ShellRunner = (*VirtualRunner)(nil)

// New returns the runner for the given kind ("system" or "virtual").
func New(kind string) (ports.ShellRunner, error) {
	switch kind {
	case "", domain.ShellSystem:
		return NewSystemRunner(), nil
	case domain.ShellVirtual:
		return NewVirtualRunner(), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownShell, "failed to select shell"), "shell", kind)
	}
}
