package domain

import (
	"context"
	"log/slog"
)

// TaskContext is built fresh for every task invocation.
type TaskContext struct {
	// Args holds the parsed command-line flags. Each task receives its own copy.
	Args map[string]any
	// Log is scoped to "task.<name>".
	Log *slog.Logger

	runner CommandRunner
}

// NewTaskContext copies args so that one task cannot alter what another sees.
func NewTaskContext(args map[string]any, log *slog.Logger, runner CommandRunner) *TaskContext {
	copied := make(map[string]any, len(args))
	for k, v := range args {
		if list, ok := v.([]any); ok {
			v = append([]any(nil), list...)
		}
		copied[k] = v
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &TaskContext{
		Args:   copied,
		Log:    log,
		runner: runner,
	}
}

// Exec runs cmd, optionally inside dir, through the runner bound to this context.
func (c *TaskContext) Exec(ctx context.Context, cmd Command, dir string) error {
	if c.runner == nil {
		return ErrNoRunner
	}
	return c.runner.Exec(ctx, cmd, dir)
}

// String returns the flag value for name when it was given as text.
func (c *TaskContext) String(name string) (string, bool) {
	s, ok := c.Args[name].(string)
	return s, ok
}

// Bool reports whether the flag name was set to true.
func (c *TaskContext) Bool(name string) bool {
	b, ok := c.Args[name].(bool)
	return ok && b
}
