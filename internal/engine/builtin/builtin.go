// Package builtin provides the tasks every build script gets for free.
package builtin

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// CacheDirName is the directory under the user cache directory owned by tasker.
const CacheDirName = "tasker"

const nameWidth = 25

// New returns the builtin tasks. The help task lists userTasks and the
// builtins themselves, and prints opts; it writes to out.
func New(userTasks domain.TaskTable, opts domain.RunOptions, out io.Writer) domain.TaskTable {
	builtins := domain.TaskTable{}

	builtins[domain.ClearCacheTaskName] = domain.NewTask(
		domain.ClearCacheTaskName,
		"Clear the tasker cache directory",
		func(_ context.Context, tc *domain.TaskContext) error {
			return clearCache(tc, opts)
		},
	)

	builtins[domain.HelpTaskName] = domain.NewTask(
		domain.HelpTaskName,
		"Print this help",
		func(context.Context, *domain.TaskContext) error {
			writeHelp(out, userTasks, builtins, opts)
			return nil
		},
	)

	return builtins
}

// CacheDir returns the directory removed by the clear-cache task.
func CacheDir(opts domain.RunOptions) (string, error) {
	if opts.CacheDir != "" {
		return opts.CacheDir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to locate user cache directory")
	}
	return filepath.Join(base, CacheDirName), nil
}

func clearCache(tc *domain.TaskContext, opts domain.RunOptions) error {
	dir, err := CacheDir(opts)
	if err != nil {
		return err
	}

	// RemoveAll treats a missing path as success.
	if _, err := os.Stat(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear cache"), "dir", dir)
	}

	tc.Log.Info("deleting cache dir", "dir", dir)
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear cache"), "dir", dir)
	}
	return nil
}

// writeHelp never fails; write errors are dropped.
func writeHelp(out io.Writer, userTasks, builtins domain.TaskTable, opts domain.RunOptions) {
	var b strings.Builder

	b.WriteString("Help:\n")
	b.WriteString("  User Tasks:\n")
	for _, key := range userTasks.Names() {
		name := strings.TrimPrefix(key, domain.BuiltinPrefix)
		writeEntry(&b, name, userTasks[key].Description)
	}

	b.WriteString("  Builtin Tasks:\n")
	for _, key := range builtins.Names() {
		writeEntry(&b, key, builtins[key].Description)
	}

	b.WriteString("  User supplied options:\n")
	b.WriteString(indent(renderOptions(opts), "      "))

	_, _ = io.WriteString(out, b.String())
}

func writeEntry(b *strings.Builder, name, description string) {
	fmt.Fprintf(b, "     %-*s : %s\n", nameWidth, name, firstLine(description))
}

func renderOptions(opts domain.RunOptions) string {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(opts); err != nil {
		return fmt.Sprintf("%+v\n", opts)
	}
	_ = enc.Close()
	return buf.String()
}

func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		b.WriteString(prefix + line)
	}
	return b.String()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
