package realtime

import (
	"sync"
)

type Handler func(Event)

// Feed is the change-feed contract: subscribe by scope, receive matching
// events eventually, at least once, while subscribed. No ordering guarantee.
type Feed interface {
	Subscribe(scope Scope, fn Handler) (unsubscribe func())
}

// Publisher is the write side of a feed. Repositories publish after
// successful store writes.
type Publisher interface {
	Publish(e Event)
}

const defaultBuffer = 64

type subscriber struct {
	scope  Scope
	events chan Event
	done   chan struct{}
	once   sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.done) })
}

// MemoryFeed is an in-process feed hub. Each subscriber gets a buffered
// channel drained by its own goroutine; a full buffer drops the event, the
// subscriber's refetch path covers the loss.
type MemoryFeed struct {
	mu     sync.RWMutex
	buffer int
	subs   map[*subscriber]struct{}
}

func NewMemoryFeed(buffer int) *MemoryFeed {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &MemoryFeed{
		buffer: buffer,
		subs:   map[*subscriber]struct{}{},
	}
}

func (f *MemoryFeed) Subscribe(scope Scope, fn Handler) func() {
	sub := &subscriber{
		scope:  scope,
		events: make(chan Event, f.buffer),
		done:   make(chan struct{}),
	}

	f.mu.Lock()
	f.subs[sub] = struct{}{}
	f.mu.Unlock()

	go func() {
		for {
			select {
			case <-sub.done:
				return
			case ev := <-sub.events:
				fn(ev)
			}
		}
	}()

	return func() {
		sub.close()
		f.mu.Lock()
		delete(f.subs, sub)
		f.mu.Unlock()
	}
}

func (f *MemoryFeed) Publish(e Event) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for sub := range f.subs {
		if !sub.scope.Matches(e) {
			continue
		}
		select {
		case sub.events <- e:
		default:
			// drop; subscriber refetches on reconnect
		}
	}
}
