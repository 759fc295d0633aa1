package chat

import (
	"belay/internal/chat/model"

	"github.com/google/uuid"
)

// IsMessageUnread reports whether msg counts as unread for viewerID.
//
// Direct threads require the viewer to be the addressed receiver; group
// threads ignore the receiver field entirely (it is a fan-out placeholder)
// and treat every message from another sender as incoming.
func IsMessageUnread(msg *model.Message, viewerID uuid.UUID, isDirect bool) bool {
	if msg == nil {
		return false
	}
	if msg.SenderID == viewerID {
		return false
	}
	if isDirect && msg.ReceiverID != viewerID {
		return false
	}
	return !msg.Status.IsRead()
}

// IsThreadUnread approximates thread-level unread from the newest message
// only, never an exhaustive scan. An older unread message behind a newer one
// from the viewer is deliberately not counted; badge counts elsewhere depend
// on this.
//
// A direct thread with no messages at all reports unread so that fresh
// matches are visually surfaced.
func IsThreadUnread(latest *model.Message, viewerID uuid.UUID, isDirect, hasAnyMessages bool) bool {
	if isDirect && !hasAnyMessages {
		return true
	}
	if latest == nil {
		return false
	}
	return IsMessageUnread(latest, viewerID, isDirect)
}
