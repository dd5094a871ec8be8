// Package app implements the application layer for tasker.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/tasker/internal/engine/builtin"
	"go.trai.ch/tasker/internal/engine/dispatcher"
	"go.trai.ch/tasker/internal/engine/execution"
	"go.trai.ch/zerr"
)

// ShellFactory returns the shell runner for a RunOptions.Shell kind.
type ShellFactory func(kind string) (ports.ShellRunner, error)

// App represents the main application logic.
type App struct {
	parser   ports.ArgsParser
	logger   ports.Logger
	workdir  ports.WorkingDir
	executor *execution.Executor
	shells   ShellFactory
	out      io.Writer
	observer dispatcher.Observer
}

// New creates a new App instance.
func New(
	parser ports.ArgsParser,
	logger ports.Logger,
	workdir ports.WorkingDir,
	executor *execution.Executor,
	shells ShellFactory,
) *App {
	return &App{
		parser:   parser,
		logger:   logger,
		workdir:  workdir,
		executor: executor,
		shells:   shells,
		out:      os.Stdout,
	}
}

// WithOutput sets the writer used by the help task.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithObserver sets a hook that sees every dispatch state transition.
func (a *App) WithObserver(o dispatcher.Observer) *App {
	a.observer = o
	return a
}

// Executor returns the command runner used outside of a task context.
func (a *App) Executor() *execution.Executor {
	return a.executor
}

// Run parses argv, moves into the base directory and runs the requested tasks.
// The working directory is restored before Run returns, whatever the outcome.
func (a *App) Run(ctx context.Context, userTasks domain.TaskTable, opts domain.RunOptions, argv []string) error {
	inv, err := a.parser.Parse(argv)
	if err != nil {
		return zerr.Wrap(err, "failed to parse command line")
	}

	if err := a.applyLogLevel(opts, inv); err != nil {
		return err
	}

	runner, err := a.shells(opts.ShellKind())
	if err != nil {
		return err
	}

	d := dispatcher.New(dispatcher.Config{
		User:        userTasks,
		Builtin:     builtin.New(userTasks, opts, a.out),
		Runner:      a.executor.WithShell(runner),
		Logger:      a.logger,
		DefaultTask: opts.DefaultTask(),
		Observer:    a.observer,
	})

	return a.workdir.Preserve(func() error {
		if _, err := a.workdir.SetWorkingDir(opts.RunDir(), opts.EntryVariable()); err != nil {
			return err
		}
		return d.Run(ctx, inv.Tasks, inv.Args)
	})
}

// applyLogLevel sets the verbosity. RunOptions.LogLevel wins over --log,
// which wins over the info default.
func (a *App) applyLogLevel(opts domain.RunOptions, inv domain.Invocation) error {
	raw := opts.LogLevel
	source := "options"
	if raw == "" {
		flag, err := inv.LogLevelFlag()
		if err != nil {
			return err
		}
		raw = flag
		source = "--" + domain.LogFlag
	}

	level := domain.LogLevelInfo
	if raw != "" {
		parsed, err := domain.ParseLogLevel(raw)
		if err != nil {
			return zerr.With(err, "source", source)
		}
		level = parsed
	} else {
		source = "default"
	}

	a.logger.SetLevel(level)
	a.logger.Named("app").Debug("log level set", "level", level.String(), "source", source)
	return nil
}
