package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// TaskTable maps task names to tasks. Names are unique within a table.
type TaskTable map[string]Task

// NewTaskTable builds a table from the given tasks.
// It rejects tasks with an empty name, no action, or a name that was already added.
func NewTaskTable(tasks ...Task) (TaskTable, error) {
	table := make(TaskTable, len(tasks))
	for _, t := range tasks {
		if err := table.Add(t); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// Add registers a task in the table.
func (t TaskTable) Add(task Task) error {
	if task.Name == "" {
		return ErrEmptyTaskName
	}
	if task.Run == nil {
		return zerr.With(zerr.Wrap(ErrTaskHasNoAction, "failed to add task"), "task_name", task.Name)
	}
	if _, exists := t[task.Name]; exists {
		return zerr.With(zerr.Wrap(ErrTaskAlreadyExists, "failed to add task"), "task_name", task.Name)
	}
	t[task.Name] = task
	return nil
}

// Lookup returns the task registered under name.
func (t TaskTable) Lookup(name string) (Task, bool) {
	task, ok := t[name]
	return task, ok
}

// Names returns the registered names in lexical order.
func (t TaskTable) Names() []string {
	return slices.Sorted(maps.Keys(t))
}
