// Package main is the build script for tasker itself.
//
//	go run ./cmd/tasker test lint
package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/tasker/internal/adapters/config"
	"go.trai.ch/tasker/pkg/tasker"
)

func main() {
	entry := entryScript()
	opts, err := options(entry)
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
	tasker.Main(tasks(), opts)
}

// entryScript returns the path of this script, exporting it for the
// dispatcher when the launcher did not.
func entryScript() string {
	if entry := os.Getenv(tasker.EntryEnv); entry != "" {
		return entry
	}
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	_ = os.Setenv(tasker.EntryEnv, file)
	return file
}

// options reads the optional options file next to the script.
// The root of the repository is the default base directory.
func options(entry string) (tasker.RunOptions, error) {
	defaults := tasker.RunOptions{Dir: "../..", Default: "build"}
	if entry == "" {
		return defaults, nil
	}

	loaded, err := tasker.LoadOptions(filepath.Join(filepath.Dir(entry), config.DefaultOptionsFile))
	if errors.Is(err, os.ErrNotExist) {
		return defaults, nil
	}
	if err != nil {
		return tasker.RunOptions{}, err
	}
	return defaults.Merge(loaded), nil
}

func tasks() []tasker.Task {
	return []tasker.Task{
		tasker.NewTask("build", "Compile every package", func(ctx context.Context, tc *tasker.TaskContext) error {
			return tc.Exec(ctx, tasker.Shell("go build ./..."), "")
		}),
		tasker.NewTask("test", "Run the unit tests (--race enables the race detector)", func(ctx context.Context, tc *tasker.TaskContext) error {
			cmd := "go test ./..."
			if tc.Bool("race") {
				cmd = "go test -race ./..."
			}
			return tc.Exec(ctx, tasker.Shell(cmd), "")
		}),
		tasker.NewTask("lint", "Run go vet and golangci-lint", func(ctx context.Context, tc *tasker.TaskContext) error {
			return tc.Exec(ctx, tasker.Sequence{"go vet ./...", "golangci-lint run"}, "")
		}),
		tasker.NewTask("generate", "Regenerate the port mocks", func(ctx context.Context, tc *tasker.TaskContext) error {
			return tc.Exec(ctx, tasker.Shell("go generate ./..."), "internal/core/ports")
		}),
		tasker.NewTask("tidy", "Tidy go.mod", func(ctx context.Context, tc *tasker.TaskContext) error {
			tc.Log.Info("tidying modules")
			return tc.Exec(ctx, tasker.Shell("go mod tidy"), "")
		}),
	}
}
