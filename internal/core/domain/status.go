package domain

import (
	"log/slog"
	"strings"

	"go.trai.ch/zerr"
)

// DispatchState is the lifecycle state of one entry of the run list.
type DispatchState string

const (
	// StateIdle indicates the dispatcher is between tasks.
	StateIdle DispatchState = "idle"
	// StateResolving indicates the dispatcher is looking the task name up.
	StateResolving DispatchState = "resolving"
	// StateInvoking indicates the task body is running.
	StateInvoking DispatchState = "invoking"
	// StateCompleted indicates the task body returned without error.
	StateCompleted DispatchState = "completed"
	// StateAborted indicates the run stopped at this task.
	StateAborted DispatchState = "aborted"
)

// IsTerminal checks if a state ends the processing of a run list entry.
func (s DispatchState) IsTerminal() bool {
	switch s {
	case StateCompleted, StateAborted:
		return true
	default:
		return false
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelTrace is below debug and shows resolution details.
	LogLevelTrace LogLevel = -8
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelTrace:
		return "TRACE"
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Slog converts the level to its slog equivalent.
func (l LogLevel) Slog() slog.Level {
	return slog.Level(l)
}

// ParseLogLevel converts a case-insensitive level name to a LogLevel.
// "warning" is accepted as an alias of "warn".
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LogLevelTrace, nil
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, zerr.With(zerr.Wrap(ErrInvalidLogLevel, "failed to parse log level"), "level", s)
	}
}
