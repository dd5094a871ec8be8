package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tasker/internal/adapters/logger"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected []string
	}{
		{
			name:     "standard error",
			err:      errors.New("plain failure"),
			expected: []string{"plain failure"},
		},
		{
			name:     "zerr chain",
			err:      zerr.Wrap(zerr.Wrap(errors.New("exit status 1"), "command failed"), "run failed"),
			expected: []string{"run failed", "command failed", "exit status 1"},
		},
		{
			name: "typed error ends the walk",
			err: zerr.Wrap(
				&domain.TaskExecutionError{Name: "build", Err: errors.New("boom")},
				"dispatch aborted",
			),
			expected: []string{"dispatch aborted", `task "build" failed: boom`},
		},
		{
			name:     "metadata-only wrapper is skipped",
			err:      zerr.With(errors.New("inner"), "task", "lint"),
			expected: []string{"inner"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, logger.CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	got := logger.FormatErrorEntries([]string{"run failed", "task \"build\" failed\nsecond line"})

	expected := "Error: run failed\n" +
		"\n" +
		"  Caused by:\n" +
		"    → task \"build\" failed\n" +
		"      second line"
	assert.Equal(t, expected, got)
}

func TestFormatErrorEntries_Single(t *testing.T) {
	assert.Equal(t, "Error: one\n       two", logger.FormatErrorEntries([]string{"one\ntwo"}))
}
