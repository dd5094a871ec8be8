package dispatcher_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/engine/dispatcher"
)

func named(name, description string) domain.Task {
	return domain.NewTask(name, description, func(context.Context, *domain.TaskContext) error { return nil })
}

func TestResolve(t *testing.T) {
	user := domain.TaskTable{
		"x":     named("x", "user x"),
		"build": named("build", "user build"),
	}
	builtin := domain.TaskTable{
		"x":      named("x", "builtin x"),
		"_help":  named("_help", "builtin help"),
		"task_y": named("task_y", "builtin task_y"),
	}

	tests := []struct {
		name     string
		request  string
		wantDesc string
	}{
		{"UserShadowsBuiltin", "x", "user x"},
		{"UserOnly", "build", "user build"},
		{"BuiltinExact", "_help", "builtin help"},
		{"BuiltinPrefixFallback", "y", "builtin task_y"},
		{"BuiltinPrefixExact", "task_y", "builtin task_y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := dispatcher.Resolve(tt.request, user, builtin)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDesc, task.Description)
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	_, err := dispatcher.Resolve("deploy", domain.TaskTable{}, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	var notFound *domain.TaskNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "deploy", notFound.Name)
	assert.Contains(t, err.Error(), "_help")
}

func TestResolve_PrefixOnlyAppliesToBuiltins(t *testing.T) {
	user := domain.TaskTable{"task_z": named("task_z", "user task_z")}

	_, err := dispatcher.Resolve("z", user, domain.TaskTable{})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
