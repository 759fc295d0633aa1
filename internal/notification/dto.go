package notification

import (
	"time"

	"github.com/google/uuid"
)

type FeedItemKind string

const (
	FeedMessage FeedItemKind = "message"
	FeedInvite  FeedItemKind = "invite"
	FeedLike    FeedItemKind = "like"
)

// FeedItem is one entry of the unified notification feed, newest first.
type FeedItem struct {
	Kind      FeedItemKind
	CreatedAt time.Time

	// message items
	ThreadID  uuid.UUID
	MessageID uuid.UUID
	Preview   string

	// invite + like items
	FromUserID uuid.UUID
	InviteID   uuid.UUID
}

type InviteCommand struct {
	InviterID uuid.UUID
	InviteeID uuid.UUID
	ThreadID  uuid.UUID
}

type InviteDTO struct {
	ID        uuid.UUID
	InviterID uuid.UUID
	InviteeID uuid.UUID
	ThreadID  uuid.UUID
	Status    string
	CreatedAt time.Time
}
