package realtime

import (
	"context"
	"testing"
	"time"

	"belay/internal/chat/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Scope_Matches(t *testing.T) {
	threadID := uuid.New()
	userID := uuid.New()

	msg := &model.Message{
		ID:         uuid.New(),
		ThreadID:   threadID,
		SenderID:   userID,
		ReceiverID: uuid.New(),
	}
	ev := Event{Type: EventInsert, New: msg}

	assert.True(t, ThreadScope(threadID).Matches(ev))
	assert.False(t, ThreadScope(uuid.New()).Matches(ev))

	assert.True(t, UserScope(userID).Matches(ev))
	assert.True(t, UserScope(msg.ReceiverID).Matches(ev))
	assert.False(t, UserScope(uuid.New()).Matches(ev))

	assert.False(t, ThreadScope(threadID).Matches(Event{Type: EventInsert}))
}

func Test_MemoryFeed_DeliversToMatchingScope(t *testing.T) {
	feed := NewMemoryFeed(8)
	threadID := uuid.New()

	got := make(chan Event, 4)
	unsub := feed.Subscribe(ThreadScope(threadID), func(e Event) { got <- e })
	defer unsub()

	otherUnsub := feed.Subscribe(ThreadScope(uuid.New()), func(e Event) {
		t.Error("event leaked into an unrelated scope")
	})
	defer otherUnsub()

	msg := &model.Message{ID: uuid.New(), ThreadID: threadID, SenderID: uuid.New(), ReceiverID: uuid.New()}
	feed.Publish(Event{Type: EventInsert, New: msg})

	select {
	case ev := <-got:
		assert.Equal(t, EventInsert, ev.Type)
		assert.Equal(t, msg.ID, ev.New.ID)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func Test_MemoryFeed_UnsubscribeStopsDelivery(t *testing.T) {
	feed := NewMemoryFeed(8)
	threadID := uuid.New()

	got := make(chan Event, 4)
	unsub := feed.Subscribe(ThreadScope(threadID), func(e Event) { got <- e })
	unsub()
	unsub() // double unsubscribe is safe

	msg := &model.Message{ID: uuid.New(), ThreadID: threadID}
	feed.Publish(Event{Type: EventInsert, New: msg})

	select {
	case <-got:
		t.Fatal("received event after unsubscribe")
	case <-time.After(100 * time.Millisecond):
	}
}

func Test_MemoryFeed_BridgeEndToEnd(t *testing.T) {
	feed := NewMemoryFeed(8)
	threadID := uuid.New()

	store := []*model.Message{}
	b := NewBridge(func(ctx context.Context) ([]*model.Message, error) {
		return store, nil
	})
	unsub := b.Attach(feed, ThreadScope(threadID))
	defer unsub()

	msg := &model.Message{
		ID:        uuid.New(),
		ThreadID:  threadID,
		SenderID:  uuid.New(),
		Status:    model.StatusSent,
		CreatedAt: time.Now(),
	}
	msg.ReceiverID = msg.SenderID
	store = append(store, msg)

	feed.Publish(Event{Type: EventInsert, New: msg})

	require.Eventually(t, func() bool { return b.Len() == 1 }, time.Second, 5*time.Millisecond)

	read := *msg
	read.Status = model.StatusRead
	feed.Publish(Event{Type: EventUpdate, New: &read})

	require.Eventually(t, func() bool {
		got := b.Get(msg.ID)
		return got != nil && got.Status == model.StatusRead
	}, time.Second, 5*time.Millisecond)
}
