package audit

import (
	"context"
	"time"
)

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

// Emit stamps and persists an event. Category is always derived from the
// action so callers cannot misroute events.
func (p *Publisher) Emit(ctx context.Context, base Event) error {
	if base.Timestamp.IsZero() {
		base.Timestamp = time.Now()
	}
	base.Category = AuditEvent(base.Action).Category()
	return p.store.Append(ctx, base)
}

// List returns events recorded for one API client.
func (p *Publisher) List(ctx context.Context, clientID string) ([]Event, error) {
	return p.store.ListByClient(ctx, clientID)
}
