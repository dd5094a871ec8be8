// Package cli implements the command line surface of a tasker build script.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tasker/internal/app"
	"go.trai.ch/tasker/internal/build"
	"go.trai.ch/tasker/internal/core/domain"
)

// CLI represents the command line interface of a build script.
type CLI struct {
	app     *app.App
	tasks   domain.TaskTable
	opts    domain.RunOptions
	rootCmd *cobra.Command
}

// New creates a CLI that dispatches to tasks. Every argument is handed to the
// task dispatcher untouched; only a leading --version, --help or -h is handled here.
func New(a *app.App, tasks domain.TaskTable, opts domain.RunOptions, name string) *CLI {
	c := &CLI{
		app:   a,
		tasks: tasks,
		opts:  opts,
	}

	c.rootCmd = &cobra.Command{
		Use:                name + " [tasks...] [--flags]",
		Short:              "Run build script tasks in order",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				switch args[0] {
				case "--version":
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", name, build.Version)
					return nil
				case "--help", "-h":
					args = append([]string{domain.HelpTaskName}, args[1:]...)
				}
			}
			return c.app.Run(cmd.Context(), c.tasks, c.opts, args)
		},
	}

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the command's own output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
