package audit

import "context"

// Appender is a write-only event sink, for brokers and exporters that never
// serve reads.
type Appender interface {
	Append(ctx context.Context, event Event) error
}

// Store is an append-only event store that also serves queries.
// Implementations live under store/.
type Store interface {
	Appender
	ListByClient(ctx context.Context, clientID string) ([]Event, error)
}

// Fanout returns a Store that appends to the primary and every sink, reading
// from the primary only. Sink failures are returned but do not prevent the
// remaining sinks from receiving the event.
func Fanout(primary Store, sinks ...Appender) Store {
	return &fanoutStore{primary: primary, sinks: sinks}
}

type fanoutStore struct {
	primary Store
	sinks   []Appender
}

func (f *fanoutStore) Append(ctx context.Context, event Event) error {
	err := f.primary.Append(ctx, event)
	for _, sink := range f.sinks {
		if sErr := sink.Append(ctx, event); sErr != nil && err == nil {
			err = sErr
		}
	}
	return err
}

func (f *fanoutStore) ListByClient(ctx context.Context, clientID string) ([]Event, error) {
	return f.primary.ListByClient(ctx, clientID)
}
