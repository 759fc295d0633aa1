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

func makeMessage(threadID uuid.UUID, at time.Time, status model.MessageStatus) *model.Message {
	return &model.Message{
		ID:         uuid.New(),
		ThreadID:   threadID,
		SenderID:   uuid.New(),
		ReceiverID: uuid.New(),
		Body:       "beta flash",
		Status:     status,
		CreatedAt:  at,
	}
}

func Test_Bridge_InsertDedupe(t *testing.T) {
	threadID := uuid.New()
	b := NewBridge(nil)

	msg := makeMessage(threadID, time.Now(), model.StatusSent)

	b.Apply(Event{Type: EventInsert, New: msg})
	b.Apply(Event{Type: EventInsert, New: msg}) // at-least-once duplicate

	assert.Equal(t, 1, b.Len())
}

func Test_Bridge_OrderingByCreatedAt(t *testing.T) {
	threadID := uuid.New()
	b := NewBridge(nil)

	base := time.Now()
	first := makeMessage(threadID, base, model.StatusSent)
	second := makeMessage(threadID, base.Add(time.Second), model.StatusSent)
	third := makeMessage(threadID, base.Add(2*time.Second), model.StatusSent)

	// arrival order is scrambled; display order must not be
	b.Apply(Event{Type: EventInsert, New: third})
	b.Apply(Event{Type: EventInsert, New: first})
	b.Apply(Event{Type: EventInsert, New: second})

	got := b.Messages()
	require.Len(t, got, 3)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
	assert.Equal(t, third.ID, got[2].ID)
}

func Test_Bridge_StatusMergeForwardOnly(t *testing.T) {
	threadID := uuid.New()
	b := NewBridge(nil)

	msg := makeMessage(threadID, time.Now(), model.StatusSent)
	b.Apply(Event{Type: EventInsert, New: msg})

	read := *msg
	read.Status = model.StatusRead
	b.Apply(Event{Type: EventUpdate, New: &read})

	// stale update delivered late must not downgrade
	delivered := *msg
	delivered.Status = model.StatusDelivered
	b.Apply(Event{Type: EventUpdate, New: &delivered})

	got := b.Get(msg.ID)
	require.NotNil(t, got)
	assert.Equal(t, model.StatusRead, got.Status)
}

func Test_Bridge_UpdateBeforeInsert(t *testing.T) {
	threadID := uuid.New()
	msg := makeMessage(threadID, time.Now(), model.StatusRead)

	refetched := false
	b := NewBridge(func(ctx context.Context) ([]*model.Message, error) {
		refetched = true
		return []*model.Message{msg}, nil
	})

	// the update for an unknown id arrives first; must not panic, is dropped
	b.Apply(Event{Type: EventUpdate, New: msg})
	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.Get(msg.ID))

	// the full refetch reconciles
	require.NoError(t, b.Refetch(context.Background()))
	assert.True(t, refetched)

	got := b.Get(msg.ID)
	require.NotNil(t, got)
	assert.Equal(t, model.StatusRead, got.Status)
}

func Test_Bridge_RefetchIdempotent(t *testing.T) {
	threadID := uuid.New()
	base := time.Now()
	msgs := []*model.Message{
		makeMessage(threadID, base, model.StatusRead),
		makeMessage(threadID, base.Add(time.Second), model.StatusSent),
	}

	b := NewBridge(func(ctx context.Context) ([]*model.Message, error) {
		return msgs, nil
	})

	require.NoError(t, b.Refetch(context.Background()))
	require.NoError(t, b.Refetch(context.Background()))

	assert.Equal(t, 2, b.Len())
	got := b.Messages()
	assert.Equal(t, msgs[0].ID, got[0].ID)
	assert.Equal(t, msgs[1].ID, got[1].ID)
}

func Test_Bridge_Delete(t *testing.T) {
	threadID := uuid.New()
	b := NewBridge(nil)

	msg := makeMessage(threadID, time.Now(), model.StatusSent)
	b.Apply(Event{Type: EventInsert, New: msg})
	require.Equal(t, 1, b.Len())

	b.Apply(Event{Type: EventDelete, Old: msg})
	assert.Equal(t, 0, b.Len())

	// deleting twice is harmless
	b.Apply(Event{Type: EventDelete, Old: msg})
	assert.Equal(t, 0, b.Len())
}

func Test_Bridge_NormalizesStatusCase(t *testing.T) {
	threadID := uuid.New()
	b := NewBridge(nil)

	msg := makeMessage(threadID, time.Now(), model.MessageStatus("SENT"))
	b.Apply(Event{Type: EventInsert, New: msg})

	got := b.Get(msg.ID)
	require.NotNil(t, got)
	assert.Equal(t, model.StatusSent, got.Status)
}
