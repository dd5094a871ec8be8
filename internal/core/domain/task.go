// Package domain holds the task model shared by every layer.
package domain

import "context"

// TaskFunc is the body of a task.
type TaskFunc func(ctx context.Context, tc *TaskContext) error

// Task describes a named unit of work registered for dispatch.
// Description is shown by the help task.
type Task struct {
	Name        string
	Description string
	Run         TaskFunc
}

// NewTask creates a task from a function that needs the task context.
func NewTask(name, description string, fn TaskFunc) Task {
	return Task{Name: name, Description: description, Run: fn}
}

// Plain adapts a zero-argument function to a TaskFunc.
func Plain(fn func() error) TaskFunc {
	return func(context.Context, *TaskContext) error {
		return fn()
	}
}
