package domain

import (
	"context"
	"strings"
)

// Command is something the executor can run: an in-process function,
// a single shell command or an ordered sequence of shell commands.
type Command interface {
	// String describes the command for logs and errors.
	String() string

	command()
}

// Func is an in-process command. Its error is the command's result.
type Func func(ctx context.Context) error

func (Func) command() {}

func (Func) String() string { return "<func>" }

// Shell is a single command line handed to the shell.
type Shell string

func (Shell) command() {}

func (s Shell) String() string { return string(s) }

// Sequence is an ordered list of command lines.
// Execution stops at the first command that fails.
type Sequence []string

func (Sequence) command() {}

func (s Sequence) String() string { return strings.Join(s, " && ") }

// CommandRunner executes commands on behalf of a task.
// An empty dir runs the command in the current working directory.
type CommandRunner interface {
	Exec(ctx context.Context, cmd Command, dir string) error
}
