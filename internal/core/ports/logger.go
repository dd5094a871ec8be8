package ports

import (
	"log/slog"

	"go.trai.ch/tasker/internal/core/domain"
)

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetLevel changes the verbosity of this logger and every logger derived from it.
	SetLevel(level domain.LogLevel)

	// Named returns a structured logger scoped under the given dotted name.
	Named(name string) *slog.Logger
}
