package dispatcher

import (
	"go.trai.ch/tasker/internal/core/domain"
)

// Where a task was found during resolution.
const (
	sourceUser          = "user"
	sourceBuiltin       = "builtin"
	sourceBuiltinPrefix = "builtin-prefixed"
)

// Resolve finds the task called name. User tasks shadow builtins, and a
// builtin registered only under its "task_" name is found by its bare name.
func Resolve(name string, user, builtin domain.TaskTable) (domain.Task, error) {
	task, _, err := resolve(name, user, builtin)
	return task, err
}

func resolve(name string, user, builtin domain.TaskTable) (domain.Task, string, error) {
	if task, ok := user.Lookup(name); ok {
		return task, sourceUser, nil
	}
	if task, ok := builtin.Lookup(name); ok {
		return task, sourceBuiltin, nil
	}
	if task, ok := builtin.Lookup(domain.BuiltinPrefix + name); ok {
		return task, sourceBuiltinPrefix, nil
	}
	return domain.Task{}, "", &domain.TaskNotFoundError{Name: name}
}
