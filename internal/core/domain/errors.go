package domain

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrTaskAlreadyExists is returned when attempting to add a task with a name that already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrEmptyTaskName is returned when a task is registered without a name.
	ErrEmptyTaskName = zerr.New("task name must not be empty")

	// ErrTaskHasNoAction is returned when a task is registered without a Run function.
	ErrTaskHasNoAction = zerr.New("task has no action")

	// ErrConfiguration is matched by every ConfigurationError.
	ErrConfiguration = zerr.New("missing required configuration")

	// ErrTaskNotFound is matched by every TaskNotFoundError.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrTaskExecutionFailed is matched by every TaskExecutionError.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrCommandFailed is matched by every ExecutionError.
	ErrCommandFailed = zerr.New("command failed")

	// ErrUnknownCommand is returned by the executor for a Command shape it does not handle.
	ErrUnknownCommand = zerr.New("unknown command type")

	// ErrNoRunner is returned when a TaskContext is asked to execute a command without a runner.
	ErrNoRunner = zerr.New("no command runner bound to task context")

	// ErrInvalidLogLevel is returned when a log level string cannot be parsed.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected trace, debug, info, warn or error")

	// ErrInvalidFlag is returned for a flag without a name, such as "--=x".
	ErrInvalidFlag = zerr.New("invalid flag")

	// ErrUnknownShell is returned when RunOptions.Shell names an unsupported runner.
	ErrUnknownShell = zerr.New("unknown shell, expected 'system' or 'virtual'")
)

// ConfigurationError reports a missing required environment input.
// It is fatal: the run aborts before any task executes.
type ConfigurationError struct {
	Variable string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"environment variable %q is not set; it must point at the entry script so relative paths can be resolved",
		e.Variable,
	)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// TaskNotFoundError reports a requested task name that no table resolves.
type TaskNotFoundError struct {
	Name string
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("could not find task %q; run '_help' to show available tasks", e.Name)
}

// Is reports whether target is ErrTaskNotFound.
func (e *TaskNotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound
}

// TaskExecutionError wraps the failure returned (or panicked) by a task body.
type TaskExecutionError struct {
	Name string
	Err  error
}

func (e *TaskExecutionError) Error() string {
	return fmt.Sprintf("task %q failed: %v", e.Name, e.Err)
}

// Unwrap returns the underlying task failure.
func (e *TaskExecutionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTaskExecutionFailed.
func (e *TaskExecutionError) Is(target error) bool {
	return target == ErrTaskExecutionFailed
}

// ExecutionError reports a shell command that exited non-zero or could not be started.
// ExitCode is -1 when the command never produced an exit status.
type ExecutionError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *ExecutionError) Error() string {
	if e.ExitCode < 0 && e.Err != nil {
		return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
}

// Unwrap returns the underlying process error, if any.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCommandFailed.
func (e *ExecutionError) Is(target error) bool {
	return target == ErrCommandFailed
}

// FailedTaskName returns the name of the task that caused err, if any.
func FailedTaskName(err error) (string, bool) {
	var execErr *TaskExecutionError
	if errors.As(err, &execErr) {
		return execErr.Name, true
	}
	var notFound *TaskNotFoundError
	if errors.As(err, &notFound) {
		return notFound.Name, true
	}
	return "", false
}
