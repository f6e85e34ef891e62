package events

import (
	"context"
	"sync"
)

// Bus is an in-process fan-out implementation of Publisher. Each subscriber
// owns an unbounded queue between the publish side and its receive channel,
// so a slow subscriber delays only itself.
//
// Note: the queue grows without bound if a subscriber stops receiving while
// events keep flowing. Subscribers in long-running processes should drain
// their channel or unsubscribe.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]chan<- TransitionEvent
	nextID int
	closed bool
}

// NewBus creates an empty bus with no subscribers.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[int]chan<- TransitionEvent),
	}
}

// Subscribe registers a new subscriber and returns its receive channel along
// with an unsubscribe function. The channel is closed on unsubscribe or when
// the bus is closed. Unsubscribing twice is safe.
func (b *Bus) Subscribe() (<-chan TransitionEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	in, out := infiniteChan()

	if b.closed {
		close(in)

		return out, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = in

	var once sync.Once

	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			if ch, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(ch)
			}
		})
	}

	return out, unsubscribe
}

// PublishTransition delivers the event to every current subscriber. It never
// blocks: delivery goes into each subscriber's queue. Publishing on a closed
// bus is a no-op.
func (b *Bus) PublishTransition(_ context.Context, event TransitionEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	for _, ch := range b.subs {
		ch <- event
	}
}

// Close closes every subscriber channel and marks the bus closed. Further
// publishes are dropped and further subscriptions receive an already-closed
// channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

// infiniteChan links a send channel to a receive channel through an unbounded
// in-memory queue managed by a goroutine. Sends never block; receives observe
// events in publish order. Closing the send side drains the queue and then
// closes the receive side.
func infiniteChan() (chan TransitionEvent, <-chan TransitionEvent) {
	in := make(chan TransitionEvent)
	out := make(chan TransitionEvent)

	go func() {
		var queue []TransitionEvent

		// outCh disables the send case while the queue is empty.
		outCh := func() chan TransitionEvent {
			if len(queue) == 0 {
				return nil
			}

			return out
		}

		head := func() TransitionEvent {
			if len(queue) == 0 {
				return TransitionEvent{}
			}

			return queue[0]
		}

		src := in
		for len(queue) > 0 || src != nil {
			select {
			case ev, ok := <-src:
				if !ok {
					src = nil
				} else {
					queue = append(queue, ev)
				}
			case outCh() <- head():
				queue = queue[1:]
			}
		}

		close(out)
	}()

	return in, out
}
