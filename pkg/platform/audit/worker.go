package audit

import (
	"context"
	"log/slog"

	dErrors "idverify/pkg/domain-errors"
)

// Worker consumes audit events from a channel and appends them to a sink,
// decoupling request latency from slow exporters.
type Worker struct {
	sink   Appender
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(sink Appender, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

// Run drains the inbox until the context is cancelled. Append failures are
// logged and skipped; a flaky sink must not stall the pipeline.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.sink.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "audit append failed",
					"action", event.Action,
					"request_id", event.RequestID,
					"error", err,
				)
			}
		}
	}
}

// Enqueue returns an Appender that hands events to a Worker inbox without
// blocking. Events are dropped with an error when the inbox is full.
func Enqueue(inbox chan<- Event) Appender {
	return chanAppender(inbox)
}

type chanAppender chan<- Event

func (c chanAppender) Append(_ context.Context, event Event) error {
	select {
	case c <- event:
		return nil
	default:
		return dErrors.New(dErrors.CodeUnavailable, "audit inbox full, event dropped")
	}
}
