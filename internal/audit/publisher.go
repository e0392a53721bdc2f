package audit

import (
	"context"
	"time"
)

// Publisher records submission audit events through a pluggable Store.
// Events are append-only; the portal never edits or removes them.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

// Emit appends one event. The caller normally stamps Timestamp from the
// request clock; a zero value falls back to wall time.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	return p.store.Append(ctx, event)
}
