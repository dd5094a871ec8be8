// Package workdir manages the process working directory as a scoped resource.
package workdir

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager implements ports.WorkingDir on top of the process working directory.
type Manager struct {
	log       *slog.Logger
	lookupEnv func(string) (string, bool)
}

// NewManager creates a Manager reading the entry script from the process environment.
func NewManager(log *slog.Logger) *Manager {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Manager{log: log, lookupEnv: os.LookupEnv}
}

// SetWorkingDir changes into rel, resolved against the directory of the entry script.
func (m *Manager) SetWorkingDir(rel, envVar string) (string, error) {
	entryScript, ok := m.lookupEnv(envVar)
	if !ok || entryScript == "" {
		return "", zerr.With(&domain.ConfigurationError{Variable: envVar}, "variable", envVar)
	}

	entryScriptDir := filepath.Dir(entryScript)
	baseDir := filepath.Join(entryScriptDir, rel)

	trace := domain.LogLevelTrace.Slog()
	m.log.Log(context.Background(), trace, "resolved entry script", "entryScript", entryScript)
	m.log.Log(context.Background(), trace, "resolved entry script directory", "entryScriptDir", entryScriptDir)
	m.log.Log(context.Background(), trace, "changing to base directory", "baseDir", baseDir)

	if err := chdir(baseDir); err != nil {
		return "", err
	}
	return baseDir, nil
}

// Preserve runs fn and restores the working directory it found on entry.
// A failed restore is joined to fn's error.
func (m *Manager) Preserve(fn func() error) (err error) {
	prev, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to read working directory")
	}

	defer func() {
		if restoreErr := chdir(prev); restoreErr != nil {
			m.log.Warn("failed to restore working directory", "dir", prev)
			err = errors.Join(err, restoreErr)
		}
	}()

	return fn()
}

// Scope runs fn inside dir. Scopes nest: each one restores the directory
// that was current when it was entered.
func (m *Manager) Scope(dir string, fn func() error) error {
	if dir == "" {
		return fn()
	}
	return m.Preserve(func() error {
		if err := chdir(dir); err != nil {
			return err
		}
		return fn()
	})
}

func chdir(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to change working directory"), "dir", dir)
	}
	return nil
}

var _ ports.WorkingDir = (*Manager)(nil)
