// Package tasker runs the tasks of a Go build script in the order they are
// named on the command line.
//
// A build script declares its tasks and hands them to Main:
//
//	func main() {
//		tasker.Main([]tasker.Task{
//			tasker.NewTask("build", "Build the binaries", func(ctx context.Context, tc *tasker.TaskContext) error {
//				return tc.Exec(ctx, tasker.Shell("go build ./..."), "")
//			}),
//		}, tasker.RunOptions{Default: "build"})
//	}
//
// Positional arguments name the tasks to run; every flag is passed to each
// task through TaskContext.Args. The first failure stops the run.
package tasker

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/tasker/internal/adapters/config"
	"go.trai.ch/tasker/internal/app"
	"go.trai.ch/tasker/internal/cli"
	"go.trai.ch/tasker/internal/core/domain"
	_ "go.trai.ch/tasker/internal/wiring" // Register Graft nodes.
	"go.trai.ch/zerr"
)

type (
	// Task is a named unit of work with a description shown by the help task.
	Task = domain.Task
	// TaskFunc is the body of a task.
	TaskFunc = domain.TaskFunc
	// TaskContext carries the flags, logger and command runner of one invocation.
	TaskContext = domain.TaskContext
	// RunOptions configures a run.
	RunOptions = domain.RunOptions

	// Command is one of Func, Shell or Sequence.
	Command = domain.Command
	// Func is an in-process command.
	Func = domain.Func
	// Shell is a single shell command line.
	Shell = domain.Shell
	// Sequence is a list of shell command lines run until the first failure.
	Sequence = domain.Sequence

	// ConfigurationError reports a missing entry script variable.
	ConfigurationError = domain.ConfigurationError
	// TaskNotFoundError reports a task name that resolves to nothing.
	TaskNotFoundError = domain.TaskNotFoundError
	// TaskExecutionError wraps the failure of a task body.
	TaskExecutionError = domain.TaskExecutionError
	// ExecutionError reports a shell command that failed.
	ExecutionError = domain.ExecutionError
)

var (
	// ErrConfiguration matches every ConfigurationError.
	ErrConfiguration = domain.ErrConfiguration
	// ErrTaskNotFound matches every TaskNotFoundError.
	ErrTaskNotFound = domain.ErrTaskNotFound
	// ErrTaskExecutionFailed matches every TaskExecutionError.
	ErrTaskExecutionFailed = domain.ErrTaskExecutionFailed
	// ErrCommandFailed matches every ExecutionError.
	ErrCommandFailed = domain.ErrCommandFailed
)

// EntryEnv is the environment variable that must hold the path of the build script.
const EntryEnv = domain.DefaultEntryEnv

// NewTask creates a task.
func NewTask(name, description string, fn TaskFunc) Task {
	return domain.NewTask(name, description, fn)
}

// Plain adapts a function that needs no task context.
func Plain(fn func() error) TaskFunc {
	return domain.Plain(fn)
}

// LoadOptions reads RunOptions from a YAML file.
func LoadOptions(path string) (RunOptions, error) {
	return config.LoadOptions(path)
}

// Run runs the tasks named in argv (the command line without the program name).
func Run(ctx context.Context, tasks []Task, opts RunOptions, argv []string) error {
	table, err := domain.NewTaskTable(tasks...)
	if err != nil {
		return err
	}

	components, err := initComponents(ctx)
	if err != nil {
		return err
	}

	return components.App.Run(ctx, table, opts, argv)
}

// Main runs the tasks named on the process command line and exits.
// The exit code is 1 when any task fails and 0 otherwise.
func Main(tasks []Task, opts RunOptions) {
	os.Exit(run(os.Args[1:], tasks, opts))
}

// Exec runs cmd outside of any task, optionally inside dir.
// Shell commands go through the host shell.
func Exec(ctx context.Context, cmd Command, dir string) error {
	components, err := initComponents(ctx)
	if err != nil {
		return err
	}
	return components.App.Executor().Exec(ctx, cmd, dir)
}

func run(argv []string, tasks []Task, opts RunOptions) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if argv == nil {
		argv = []string{}
	}

	// 1. Initialize application components
	components, err := initComponents(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	table, err := domain.NewTaskTable(tasks...)
	if err != nil {
		components.Logger.Error(err)
		return 1
	}

	// 2. Interface - CLI
	c := cli.New(components.App, table, opts, filepath.Base(os.Args[0]))
	c.SetArgs(argv)

	// 3. Execution
	if err := c.Execute(ctx); err != nil {
		// Task failures were already reported by the dispatcher.
		if _, ok := domain.FailedTaskName(err); !ok {
			components.Logger.Error(err)
		}
		return 1
	}
	return 0
}

func initComponents(ctx context.Context) (*app.Components, error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to initialize tasker")
	}
	return c, nil
}
