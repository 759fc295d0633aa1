package realtime

import (
	"context"
	"sort"
	"sync"

	"belay/internal/chat/model"

	"github.com/google/uuid"
)

// RefetchFunc loads the full authoritative message set for the bridge's
// scope. Every subscription is paired with one: the feed is a freshness
// optimization, the refetch is the source of truth.
type RefetchFunc func(ctx context.Context) ([]*model.Message, error)

// Bridge merges change-feed events into a local, ordered copy of a
// conversation. It tolerates duplicate inserts (dedupe by id), updates
// arriving before their insert (dropped; reconciled on the next refetch) and
// stale status updates (forward-only merge). Display ordering is always by
// created_at, never arrival order.
type Bridge struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*model.Message
	ordered []*model.Message
	refetch RefetchFunc
}

func NewBridge(refetch RefetchFunc) *Bridge {
	return &Bridge{
		byID:    map[uuid.UUID]*model.Message{},
		refetch: refetch,
	}
}

// Attach subscribes the bridge to a feed. The returned func unsubscribes.
func (b *Bridge) Attach(feed Feed, scope Scope) func() {
	return feed.Subscribe(scope, b.Apply)
}

func (b *Bridge) Apply(e Event) {
	switch e.Type {
	case EventInsert:
		if e.New != nil {
			b.applyInsert(e.New)
		}
	case EventUpdate:
		if e.New != nil {
			b.applyUpdate(e.New)
		}
	case EventDelete:
		if msg := e.message(); msg != nil {
			b.applyDelete(msg.ID)
		}
	}
}

func (b *Bridge) applyInsert(msg *model.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.byID[msg.ID]; ok {
		return
	}
	cp := *msg
	cp.Status = model.ParseStatus(string(msg.Status))
	b.byID[cp.ID] = &cp
	b.insertOrdered(&cp)
}

func (b *Bridge) applyUpdate(msg *model.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing, ok := b.byID[msg.ID]
	if !ok {
		// update before insert: drop, the next refetch reconciles
		return
	}
	existing.Status = model.MaxStatus(existing.Status, msg.Status)
}

func (b *Bridge) applyDelete(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.byID[id]; !ok {
		return
	}
	delete(b.byID, id)
	for i, m := range b.ordered {
		if m.ID == id {
			b.ordered = append(b.ordered[:i], b.ordered[i+1:]...)
			break
		}
	}
}

// insertOrdered places msg at its created_at position, ties broken by id so
// the order is total and stable across clients.
func (b *Bridge) insertOrdered(msg *model.Message) {
	i := sort.Search(len(b.ordered), func(i int) bool {
		m := b.ordered[i]
		if !m.CreatedAt.Equal(msg.CreatedAt) {
			return m.CreatedAt.After(msg.CreatedAt)
		}
		return m.ID.String() > msg.ID.String()
	})
	b.ordered = append(b.ordered, nil)
	copy(b.ordered[i+1:], b.ordered[i:])
	b.ordered[i] = msg
}

// Refetch replaces local state with the authoritative store view. Idempotent;
// called after (re)connecting a subscription and whenever the client suspects
// it missed events.
func (b *Bridge) Refetch(ctx context.Context) error {
	if b.refetch == nil {
		return nil
	}
	msgs, err := b.refetch(ctx)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.byID = make(map[uuid.UUID]*model.Message, len(msgs))
	b.ordered = b.ordered[:0]
	for _, msg := range msgs {
		if _, ok := b.byID[msg.ID]; ok {
			continue
		}
		cp := *msg
		cp.Status = model.ParseStatus(string(msg.Status))
		b.byID[cp.ID] = &cp
		b.insertOrdered(&cp)
	}
	return nil
}

// Messages returns a copy of the local state in display order.
func (b *Bridge) Messages() []*model.Message {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*model.Message, len(b.ordered))
	for i, m := range b.ordered {
		cp := *m
		out[i] = &cp
	}
	return out
}

func (b *Bridge) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.ordered)
}

// Get returns the local copy of one message, or nil.
func (b *Bridge) Get(id uuid.UUID) *model.Message {
	b.mu.RLock()
	defer b.mu.RUnlock()

	m, ok := b.byID[id]
	if !ok {
		return nil
	}
	cp := *m
	return &cp
}
