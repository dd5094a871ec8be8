// Package execution runs commands on behalf of tasks.
package execution

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements domain.CommandRunner.
// Shell output is written straight to the process stdout and stderr.
type Executor struct {
	shell   ports.ShellRunner
	workdir ports.WorkingDir
	log     *slog.Logger
	stdout  io.Writer
	stderr  io.Writer
}

// New creates an Executor running shell commands through shell and scoping
// directories through workdir.
func New(shell ports.ShellRunner, workdir ports.WorkingDir, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Executor{
		shell:   shell,
		workdir: workdir,
		log:     log,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// WithShell returns a copy of e that runs shell commands through shell.
func (e *Executor) WithShell(shell ports.ShellRunner) *Executor {
	c := *e
	c.shell = shell
	return &c
}

// WithOutput returns a copy of e writing shell output to stdout and stderr.
func (e *Executor) WithOutput(stdout, stderr io.Writer) *Executor {
	c := *e
	c.stdout = stdout
	c.stderr = stderr
	return &c
}

// Exec runs cmd. A non-empty dir is entered for the duration of the call
// and the previous directory is restored afterwards, even on failure.
func (e *Executor) Exec(ctx context.Context, cmd domain.Command, dir string) error {
	return e.workdir.Scope(dir, func() error {
		return e.run(ctx, cmd)
	})
}

func (e *Executor) run(ctx context.Context, cmd domain.Command) error {
	if cmd != nil {
		e.log.Log(ctx, domain.LogLevelTrace.Slog(), "exec", "command", cmd.String(), "type", fmt.Sprintf("%T", cmd))
	}

	switch c := cmd.(type) {
	case domain.Func:
		if c == nil {
			return zerr.With(zerr.Wrap(domain.ErrUnknownCommand, "cannot execute"), "type", "nil func")
		}
		return c(ctx)
	case domain.Shell:
		return e.runShell(ctx, string(c))
	case domain.Sequence:
		for _, line := range c {
			if err := e.runShell(ctx, line); err != nil {
				return err
			}
		}
		return nil
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownCommand, "cannot execute"), "type", fmt.Sprintf("%T", cmd))
	}
}

func (e *Executor) runShell(ctx context.Context, line string) error {
	e.log.Debug("running command", "command", line)
	if err := e.shell.Run(ctx, line, e.stdout, e.stderr); err != nil {
		e.log.Error("command failed", "command", line, "error", err)
		return err
	}
	return nil
}

var _ domain.CommandRunner = (*Executor)(nil)
