package audit

import (
	"context"
	"log/slog"
)

// Worker consumes audit events from a Recorder and writes them to the
// structured log. It runs until its context is canceled.
type Worker struct {
	events <-chan Event
	logger *slog.Logger
}

func NewWorker(recorder *Recorder, logger *slog.Logger) *Worker {
	return &Worker{events: recorder.Events(), logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.events:
			w.logger.Info("audit",
				"action", event.Action,
				"subject", event.Subject,
				"outcome", event.Outcome,
				"reason", event.Reason,
				"at", event.Timestamp,
			)
		}
	}
}
