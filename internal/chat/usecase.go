package chat

import (
	"context"

	"github.com/google/uuid"
)

type ChatUsecase interface {
	// ListThreads returns the user's conversation list with per-thread unread
	// flags, newest activity first.
	ListThreads(ctx context.Context, userID uuid.UUID) ([]*ThreadDTO, error)

	// ListMessages returns the full thread ordered by created_at. The viewer
	// must be a member; group viewers are auto-enrolled on first read.
	ListMessages(ctx context.Context, threadID, viewerID uuid.UUID) ([]*MessageDTO, error)

	SendMessage(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error)

	// MarkDelivered advances every still-sent incoming message in the thread;
	// MarkRead advances every not-yet-read one. Both are batch operations the
	// viewer's client re-runs on each view event, so a failed batch needs no
	// retry bookkeeping.
	MarkDelivered(ctx context.Context, threadID, viewerID uuid.UUID) ([]*MessageDTO, error)
	MarkRead(ctx context.Context, threadID, viewerID uuid.UUID) ([]*MessageDTO, error)

	// OpenDirectThread lazily creates (or finds) the direct thread for a pair,
	// e.g. on first contact after a match.
	OpenDirectThread(ctx context.Context, userID, otherID uuid.UUID) (*ThreadDTO, error)

	// OpenCatalogThread lazily creates (or finds) the gym/event/crew thread and
	// enrolls the user.
	OpenCatalogThread(ctx context.Context, cmd OpenCatalogThreadCommand) (*ThreadDTO, error)

	// LeaveThread hard-deletes a direct thread for both endpoints; for group
	// threads it removes only the caller's membership.
	LeaveThread(ctx context.Context, threadID, userID uuid.UUID) error
}
