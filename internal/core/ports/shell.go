// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
)

// ShellRunner runs a single command line through a shell.
//
//go:generate mockgen -source=shell.go -destination=mocks/mock_shell.go -package=mocks
type ShellRunner interface {
	// Run executes command in the current working directory, streaming its output
	// to stdout and stderr.
	//
	// A non-zero exit is reported as a *domain.ExecutionError.
	Run(ctx context.Context, command string, stdout, stderr io.Writer) error
}
