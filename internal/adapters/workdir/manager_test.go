package workdir_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tasker/internal/adapters/workdir"
	"go.trai.ch/tasker/internal/core/domain"
)

// tempDir returns a symlink-free temporary directory so that it compares
// equal to what os.Getwd reports.
func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

// keepCwd restores the working directory when the test ends.
func keepCwd(t *testing.T) string {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		if errChdir := os.Chdir(cwd); errChdir != nil {
			t.Fatalf("Failed to restore working directory: %v", errChdir)
		}
	})
	return cwd
}

func getwd(t *testing.T) string {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	return cwd
}

func TestSetWorkingDir(t *testing.T) {
	keepCwd(t)
	root := tempDir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o750))
	t.Setenv(domain.DefaultEntryEnv, filepath.Join(root, "build.go"))

	m := workdir.NewManager(nil)

	tests := []struct {
		name string
		rel  string
		want string
	}{
		{"Dot", ".", root},
		{"Empty", "", root},
		{"Subdirectory", "sub", filepath.Join(root, "sub")},
		{"Parent", "sub/..", root},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseDir, err := m.SetWorkingDir(tt.rel, domain.DefaultEntryEnv)
			require.NoError(t, err)
			assert.Equal(t, tt.want, baseDir)
			assert.Equal(t, tt.want, getwd(t))
		})
	}
}

func TestSetWorkingDir_MissingVariable(t *testing.T) {
	cwd := keepCwd(t)

	m := workdir.NewManager(nil)
	m.SetLookupEnv(func(string) (string, bool) { return "", false })

	_, err := m.SetWorkingDir(".", "SOME_ENTRY")
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrConfiguration)

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "SOME_ENTRY", cfgErr.Variable)
	assert.Equal(t, cwd, getwd(t))
}

func TestSetWorkingDir_MissingDirectory(t *testing.T) {
	cwd := keepCwd(t)
	root := tempDir(t)

	m := workdir.NewManager(nil)
	m.SetLookupEnv(func(string) (string, bool) { return filepath.Join(root, "build.go"), true })

	_, err := m.SetWorkingDir("does-not-exist", "ANY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to change working directory")
	assert.Equal(t, cwd, getwd(t))
}

func TestScope(t *testing.T) {
	cwd := keepCwd(t)
	dir := tempDir(t)
	m := workdir.NewManager(nil)

	t.Run("Success", func(t *testing.T) {
		var inside string
		err := m.Scope(dir, func() error {
			inside = getwd(t)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, dir, inside)
		assert.Equal(t, cwd, getwd(t))
	})

	t.Run("Failure", func(t *testing.T) {
		boom := errors.New("boom")
		err := m.Scope(dir, func() error { return boom })
		require.ErrorIs(t, err, boom)
		assert.Equal(t, cwd, getwd(t))
	})

	t.Run("Panic", func(t *testing.T) {
		assert.PanicsWithValue(t, "boom", func() {
			_ = m.Scope(dir, func() error { panic("boom") })
		})
		assert.Equal(t, cwd, getwd(t))
	})

	t.Run("EmptyDirRunsInPlace", func(t *testing.T) {
		var inside string
		err := m.Scope("", func() error {
			inside = getwd(t)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, cwd, inside)
	})

	t.Run("MissingDir", func(t *testing.T) {
		called := false
		err := m.Scope(filepath.Join(dir, "missing"), func() error {
			called = true
			return nil
		})
		require.Error(t, err)
		assert.False(t, called)
		assert.Equal(t, cwd, getwd(t))
	})
}

func TestScope_Nested(t *testing.T) {
	cwd := keepCwd(t)
	outer := tempDir(t)
	inner := filepath.Join(outer, "inner")
	require.NoError(t, os.Mkdir(inner, 0o750))

	m := workdir.NewManager(nil)

	var seen []string
	err := m.Scope(outer, func() error {
		seen = append(seen, getwd(t))
		errInner := m.Scope("inner", func() error {
			seen = append(seen, getwd(t))
			return errors.New("inner failed")
		})
		seen = append(seen, getwd(t))
		return errInner
	})

	require.Error(t, err)
	assert.Equal(t, []string{outer, inner, outer}, seen)
	assert.Equal(t, cwd, getwd(t))
}

func TestPreserve(t *testing.T) {
	cwd := keepCwd(t)
	dir := tempDir(t)
	m := workdir.NewManager(nil)
	t.Setenv(domain.DefaultEntryEnv, filepath.Join(dir, "build.go"))

	err := m.Preserve(func() error {
		_, errSet := m.SetWorkingDir(".", domain.DefaultEntryEnv)
		require.NoError(t, errSet)
		assert.Equal(t, dir, getwd(t))
		return errors.New("task failed")
	})

	require.EqualError(t, err, "task failed")
	assert.Equal(t, cwd, getwd(t))
}
