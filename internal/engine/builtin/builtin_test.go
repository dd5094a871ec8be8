package builtin_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/engine/builtin"
)

func noop(context.Context, *domain.TaskContext) error { return nil }

func run(t *testing.T, table domain.TaskTable, name string) error {
	t.Helper()
	task, ok := table.Lookup(name)
	require.True(t, ok, "builtin %q missing", name)
	return task.Run(context.Background(), domain.NewTaskContext(nil, nil, nil))
}

func TestNew_ProvidesBuiltins(t *testing.T) {
	table := builtin.New(nil, domain.RunOptions{}, &bytes.Buffer{})
	assert.Equal(t, []string{domain.ClearCacheTaskName, domain.HelpTaskName}, table.Names())
	for _, name := range table.Names() {
		assert.NotEmpty(t, table[name].Description)
	}
}

func TestHelp(t *testing.T) {
	user := domain.TaskTable{
		"task_build": domain.NewTask("task_build", "Build the binaries\nand more", noop),
		"lint":       domain.NewTask("lint", "", noop),
	}
	opts := domain.RunOptions{Dir: "..", Default: "build", LogLevel: "debug"}

	var out bytes.Buffer
	table := builtin.New(user, opts, &out)
	require.NoError(t, run(t, table, domain.HelpTaskName))

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, "Help:", lines[0])
	assert.Equal(t, "  User Tasks:", lines[1])
	assert.Equal(t, "     lint                      : ", lines[2])
	assert.Equal(t, "     build                     : Build the binaries", lines[3])
	assert.Equal(t, "  Builtin Tasks:", lines[4])
	assert.Equal(t, "     _clear_cache              : Clear the tasker cache directory", lines[5])
	assert.Equal(t, "     _help                     : Print this help", lines[6])

	output := out.String()
	assert.Contains(t, output, "  User supplied options:\n")
	assert.Contains(t, output, "      dir: ..\n")
	assert.Contains(t, output, "      default: build\n")
	assert.Contains(t, output, "      logLevel: debug\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestHelp_IgnoresWriteErrors(t *testing.T) {
	table := builtin.New(nil, domain.RunOptions{}, failingWriter{})
	assert.NoError(t, run(t, table, domain.HelpTaskName))
}

func TestClearCache(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.MkdirAll(filepath.Join(cacheDir, "nested"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "nested", "blob"), []byte("x"), 0o600))

	table := builtin.New(nil, domain.RunOptions{CacheDir: cacheDir}, &bytes.Buffer{})
	require.NoError(t, run(t, table, domain.ClearCacheTaskName))

	_, err := os.Stat(cacheDir)
	assert.True(t, os.IsNotExist(err))
}

func TestClearCache_MissingDirFails(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "never-created")

	table := builtin.New(nil, domain.RunOptions{CacheDir: cacheDir}, &bytes.Buffer{})
	err := run(t, table, domain.ClearCacheTaskName)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to clear cache")
}

func TestCacheDir(t *testing.T) {
	dir, err := builtin.CacheDir(domain.RunOptions{CacheDir: "/tmp/custom"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom", dir)

	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	dir, err = builtin.CacheDir(domain.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, builtin.CacheDirName, filepath.Base(dir))
}
