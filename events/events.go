// Package events provides the in-process publish/subscribe channel that
// workflow machines use to announce document lifecycle transitions.
// Subscribers (logging, cache invalidation, notifications) react to
// transitions without the engine depending on them; publishers are never
// blocked by slow subscribers.
package events

import (
	"context"
	"time"
)

// TransitionEvent is published on every successful workflow transition.
type TransitionEvent struct {
	DocumentType string
	DocumentID   string
	From         string
	To           string
	Event        string
	At           time.Time
}

// Publisher is the outbound side of the event channel. Workflow machines
// receive a Publisher by injection rather than reaching for a package-level
// singleton, so independent machine sets (per test, per tenant) can carry
// independent channels.
type Publisher interface {
	PublishTransition(ctx context.Context, event TransitionEvent)
}

// NopPublisher discards all events. It is the default publisher for machines
// constructed without one.
type NopPublisher struct{}

func (NopPublisher) PublishTransition(_ context.Context, _ TransitionEvent) {}
