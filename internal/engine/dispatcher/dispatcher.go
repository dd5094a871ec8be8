// Package dispatcher resolves requested task names and runs them one after another.
package dispatcher

import (
	"context"
	"log/slog"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/zerr"
)

// Observer is notified of every state change of a run list entry.
type Observer func(task string, state domain.DispatchState)

// Config holds everything a Dispatcher needs for one run.
type Config struct {
	// User holds the build script's tasks. They shadow builtins.
	User domain.TaskTable
	// Builtin holds the tasks provided by the dispatcher itself.
	Builtin domain.TaskTable
	// Runner is bound to every TaskContext.
	Runner domain.CommandRunner
	// Logger provides the dispatcher and per-task loggers.
	Logger ports.Logger
	// DefaultTask runs when no task names are requested. Empty means the help task.
	DefaultTask string
	// Observer, when set, sees every state transition.
	Observer Observer
}

// Dispatcher runs a list of tasks in order and stops at the first failure.
type Dispatcher struct {
	cfg Config
	log *slog.Logger
}

// New creates a Dispatcher.
func New(cfg Config) *Dispatcher {
	if cfg.DefaultTask == "" {
		cfg.DefaultTask = domain.HelpTaskName
	}
	return &Dispatcher{
		cfg: cfg,
		log: cfg.Logger.Named("dispatcher"),
	}
}

// Run resolves and invokes each name in order; duplicates run once per occurrence.
// A completed entry returns the dispatcher to StateIdle before the next one.
// Every task receives its own copy of args.
// The first unresolved name or failing task aborts the rest of the list.
func (d *Dispatcher) Run(ctx context.Context, names []string, args map[string]any) error {
	if len(names) == 0 {
		names = []string{d.cfg.DefaultTask}
	}

	d.log.Debug("dispatching tasks", "tasks", names)

	for _, name := range names {
		if err := d.runOne(ctx, name, args); err != nil {
			d.notify(name, domain.StateAborted)
			return err
		}
		d.notify(name, domain.StateCompleted)
		d.notify(name, domain.StateIdle)
	}

	return nil
}

func (d *Dispatcher) runOne(ctx context.Context, name string, args map[string]any) error {
	d.notify(name, domain.StateResolving)

	task, source, err := resolve(name, d.cfg.User, d.cfg.Builtin)
	if err != nil {
		d.log.Error("task not found", "task", name, "error", err)
		return zerr.With(err, "task", name)
	}
	d.log.Log(ctx, domain.LogLevelTrace.Slog(), "found task", "task", name, "source", source)

	d.log.Debug("running task", "task", name)
	tc := domain.NewTaskContext(args, d.cfg.Logger.Named("task."+name), d.cfg.Runner)

	d.notify(name, domain.StateInvoking)
	if err := invoke(ctx, task, tc); err != nil {
		d.log.Error("task failed", "task", name, "error", err)
		return zerr.With(&domain.TaskExecutionError{Name: name, Err: err}, "task", name)
	}

	return nil
}

// invoke runs the task body, turning a panic into an error.
func invoke(ctx context.Context, task domain.Task, tc *domain.TaskContext) (err error) {
	defer zerr.Defer(func(panicErr error) {
		err = panicErr
	})
	return task.Run(ctx, tc)
}

func (d *Dispatcher) notify(task string, state domain.DispatchState) {
	if state.IsTerminal() {
		d.log.Debug("task finished", "task", task, "state", state)
	}
	if d.cfg.Observer != nil {
		d.cfg.Observer(task, state)
	}
}
