package chat

import (
	"testing"

	"belay/internal/chat/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_IsMessageUnread(t *testing.T) {
	viewer := uuid.New()
	sender := uuid.New()

	t.Run("direct: incoming sent message is unread", func(t *testing.T) {
		msg := &model.Message{SenderID: sender, ReceiverID: viewer, Status: model.StatusSent}
		assert.True(t, IsMessageUnread(msg, viewer, true))
	})

	t.Run("direct: own message is never unread", func(t *testing.T) {
		msg := &model.Message{SenderID: viewer, ReceiverID: sender, Status: model.StatusSent}
		assert.False(t, IsMessageUnread(msg, viewer, true))
	})

	t.Run("direct: message addressed elsewhere is not unread", func(t *testing.T) {
		msg := &model.Message{SenderID: sender, ReceiverID: uuid.New(), Status: model.StatusSent}
		assert.False(t, IsMessageUnread(msg, viewer, true))
	})

	t.Run("direct: read message is not unread", func(t *testing.T) {
		msg := &model.Message{SenderID: sender, ReceiverID: viewer, Status: model.StatusRead}
		assert.False(t, IsMessageUnread(msg, viewer, true))
	})

	t.Run("group: receiver field is ignored", func(t *testing.T) {
		// fan-out placeholder: receiver equals the sender
		msg := &model.Message{SenderID: sender, ReceiverID: sender, Status: model.StatusSent}
		assert.True(t, IsMessageUnread(msg, viewer, false))
	})

	t.Run("status comparison is case-insensitive", func(t *testing.T) {
		msg := &model.Message{SenderID: sender, ReceiverID: viewer, Status: model.MessageStatus("READ")}
		assert.False(t, IsMessageUnread(msg, viewer, true))

		msg.Status = model.MessageStatus("Sent")
		assert.True(t, IsMessageUnread(msg, viewer, true))
	})

	t.Run("nil message is not unread", func(t *testing.T) {
		assert.False(t, IsMessageUnread(nil, viewer, true))
	})
}

func Test_IsThreadUnread(t *testing.T) {
	viewer := uuid.New()
	other := uuid.New()

	t.Run("empty direct thread surfaces as unread", func(t *testing.T) {
		// deliberate nudge so fresh matches are visible
		assert.True(t, IsThreadUnread(nil, viewer, true, false))
	})

	t.Run("empty group thread is not unread", func(t *testing.T) {
		assert.False(t, IsThreadUnread(nil, viewer, false, false))
	})

	t.Run("latest message from viewer clears the flag", func(t *testing.T) {
		latest := &model.Message{SenderID: viewer, ReceiverID: other, Status: model.StatusSent}
		assert.False(t, IsThreadUnread(latest, viewer, true, true))
	})

	t.Run("latest sent message to viewer sets the flag", func(t *testing.T) {
		latest := &model.Message{SenderID: other, ReceiverID: viewer, Status: model.StatusSent}
		assert.True(t, IsThreadUnread(latest, viewer, true, true))
	})

	t.Run("latest read message clears the flag", func(t *testing.T) {
		latest := &model.Message{SenderID: other, ReceiverID: viewer, Status: model.StatusRead}
		assert.False(t, IsThreadUnread(latest, viewer, true, true))
	})
}

// Three participants in a gym thread; C sends. A and B see the message as
// unread, C does not.
func Test_GroupUnread_FanOut(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	userC := uuid.New()

	msg := &model.Message{
		SenderID:   userC,
		ReceiverID: userC, // placeholder, no semantic weight in groups
		Status:     model.StatusSent,
	}

	assert.True(t, IsMessageUnread(msg, userA, false))
	assert.True(t, IsMessageUnread(msg, userB, false))
	assert.False(t, IsMessageUnread(msg, userC, false))

	assert.True(t, IsThreadUnread(msg, userA, false, true))
	assert.False(t, IsThreadUnread(msg, userC, false, true))
}
