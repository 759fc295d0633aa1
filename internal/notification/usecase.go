package notification

import (
	"context"

	"github.com/google/uuid"
)

type NotificationUsecase interface {
	// BuildFeed reduces unread messages, pending invites and "liked you"
	// swipes into one list ordered by recency. Read-only.
	BuildFeed(ctx context.Context, userID uuid.UUID) ([]*FeedItem, error)

	Invite(ctx context.Context, cmd InviteCommand) (*InviteDTO, error)

	// AcceptInvite enrolls the invitee and settles every pending duplicate of
	// the invite's triple; DeclineInvite settles them without enrolling.
	// Both are idempotent: answering an already-answered invite is a no-op.
	AcceptInvite(ctx context.Context, inviteID, userID uuid.UUID) error
	DeclineInvite(ctx context.Context, inviteID, userID uuid.UUID) error
}
