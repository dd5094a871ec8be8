package dispatcher_test

import (
	"context"
	"log/slog"

	"go.trai.ch/tasker/internal/core/domain"
)

type recordingRunner struct {
	calls []string
}

func (r *recordingRunner) Exec(_ context.Context, cmd domain.Command, dir string) error {
	r.calls = append(r.calls, cmd.String()+"@"+dir)
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
