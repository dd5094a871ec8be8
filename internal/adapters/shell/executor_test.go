package shell_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tasker/internal/adapters/shell"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/zerr"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell required")
	}
}

// chdir moves into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if errChdir := os.Chdir(cwd); errChdir != nil {
			t.Fatalf("Failed to restore working directory: %v", errChdir)
		}
	})
}

func runners() map[string]interface {
	Run(ctx context.Context, command string, stdout, stderr io.Writer) error
} {
	return map[string]interface {
		Run(ctx context.Context, command string, stdout, stderr io.Writer) error
	}{
		"system":  shell.NewSystemRunner(),
		"virtual": shell.NewVirtualRunner(),
	}
}

func TestRunner_MultiLineOutput(t *testing.T) {
	skipOnWindows(t)

	for name, runner := range runners() {
		t.Run(name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := runner.Run(context.Background(), "echo line1; echo line2", &stdout, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, "line1\nline2\n", stdout.String())
		})
	}
}

func TestRunner_Stderr(t *testing.T) {
	skipOnWindows(t)

	for name, runner := range runners() {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := runner.Run(context.Background(), "echo hello to stdout; echo hello to stderr >&2", &stdout, &stderr)
			require.NoError(t, err)
			assert.Contains(t, stdout.String(), "hello to stdout")
			assert.Contains(t, stderr.String(), "hello to stderr")
		})
	}
}

func TestRunner_UsesWorkingDirectory(t *testing.T) {
	skipOnWindows(t)

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "marker.txt"), []byte("here"), 0o600))
	chdir(t, tmpDir)

	for name, runner := range runners() {
		t.Run(name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := runner.Run(context.Background(), "cat marker.txt", &stdout, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, "here", stdout.String())
		})
	}
}

func TestRunner_EnvironmentVariables(t *testing.T) {
	skipOnWindows(t)
	t.Setenv("MY_TEST_VAR", "test-value-123")

	for name, runner := range runners() {
		t.Run(name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := runner.Run(context.Background(), "echo $MY_TEST_VAR", &stdout, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, "test-value-123\n", stdout.String())
		})
	}
}

func TestRunner_CommandFailure(t *testing.T) {
	skipOnWindows(t)

	for name, runner := range runners() {
		t.Run(name, func(t *testing.T) {
			err := runner.Run(context.Background(), "exit 42", io.Discard, io.Discard)
			require.Error(t, err)
			require.ErrorIs(t, err, domain.ErrCommandFailed)

			var execErr *domain.ExecutionError
			require.ErrorAs(t, err, &execErr)
			assert.Equal(t, "exit 42", execErr.Command)
			assert.Equal(t, 42, execErr.ExitCode)

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Equal(t, "exit 42", zErr.Metadata()["command"])
		})
	}
}

func TestSystemRunner_InvalidCommand(t *testing.T) {
	skipOnWindows(t)

	runner := shell.NewSystemRunner()
	err := runner.Run(context.Background(), "nonexistent-command-xyz123", io.Discard, io.Discard)
	require.Error(t, err)

	var execErr *domain.ExecutionError
	require.ErrorAs(t, err, &execErr)
	// sh reports "command not found" with status 127
	assert.Equal(t, 127, execErr.ExitCode)
}

func TestSystemRunner_Cancelled(t *testing.T) {
	skipOnWindows(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := shell.NewSystemRunner().Run(ctx, "echo never", io.Discard, io.Discard)
	require.Error(t, err)

	var execErr *domain.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, -1, execErr.ExitCode)
	assert.NotNil(t, execErr.Err)
}

func TestVirtualRunner_SyntaxError(t *testing.T) {
	runner := shell.NewVirtualRunner()

	err := runner.Run(context.Background(), "echo 'unterminated", io.Discard, io.Discard)
	var execErr *domain.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, -1, execErr.ExitCode)
	assert.Equal(t, "echo 'unterminated", execErr.Command)
}

func TestNew(t *testing.T) {
	r, err := shell.New("")
	require.NoError(t, err)
	assert.IsType(t, &shell.SystemRunner{}, r)

	r, err = shell.New(domain.ShellVirtual)
	require.NoError(t, err)
	assert.IsType(t, &shell.VirtualRunner{}, r)

	_, err = shell.New("fish")
	require.ErrorIs(t, err, domain.ErrUnknownShell)
	assert.Contains(t, err.Error(), "unknown shell")
}
