package chat

import (
	"context"
	"time"

	"belay/internal/chat/model"

	"github.com/google/uuid"
)

type ThreadRepository interface {
	CreateThread(ctx context.Context, thread *model.Thread) error
	GetThread(ctx context.Context, id uuid.UUID) (*model.Thread, error)
	// FindDirectThread looks the pair up in either endpoint order.
	FindDirectThread(ctx context.Context, a, b uuid.UUID) (*model.Thread, error)
	FindCatalogThread(ctx context.Context, kind model.ThreadKind, catalogID uuid.UUID) (*model.Thread, error)
	// ListThreads returns every thread the user can see: direct threads where
	// they are an endpoint plus group threads where they hold a participant
	// row, newest activity first.
	ListThreads(ctx context.Context, userID uuid.UUID) ([]*model.Thread, error)
	// DeleteThread hard-deletes a thread and its messages (direct threads only;
	// leaving a group thread removes the participant row instead).
	DeleteThread(ctx context.Context, id uuid.UUID) error
	UpdateThreadLastMessage(ctx context.Context, threadID uuid.UUID, body string, at time.Time) error
	// SetThreadEndpointA backfills the legacy single-endpoint field on group
	// threads created before any participant existed. Compatibility shim only.
	SetThreadEndpointA(ctx context.Context, threadID, userID uuid.UUID) error

	// Membership: IsParticipant is a pure read, Enroll an explicit idempotent
	// upsert keyed on (thread_id, user_id).
	IsParticipant(ctx context.Context, threadID, userID uuid.UUID) (bool, error)
	Enroll(ctx context.Context, p *model.ThreadParticipant) error
	RemoveParticipant(ctx context.Context, threadID, userID uuid.UUID) error
	CountParticipants(ctx context.Context, threadID uuid.UUID) (int, error)

	InsertMessage(ctx context.Context, msg *model.Message) error
	// ListMessages returns the full thread ordered by created_at; also the
	// idempotent refetch backstop for realtime subscribers.
	ListMessages(ctx context.Context, threadID uuid.UUID) ([]*model.Message, error)
	// LatestMessage returns nil without error when the thread is empty.
	LatestMessage(ctx context.Context, threadID uuid.UUID) (*model.Message, error)
	CountMessages(ctx context.Context, threadID uuid.UUID) (int, error)

	// Guarded batch transitions. Only rows still behind the target status and
	// not authored by viewerID move; the store therefore enforces the
	// forward-only rule even when two recipients race. Updated rows are
	// returned so callers can publish change events.
	MarkDelivered(ctx context.Context, ids []uuid.UUID, viewerID uuid.UUID) ([]*model.Message, error)
	MarkRead(ctx context.Context, ids []uuid.UUID, viewerID uuid.UUID) ([]*model.Message, error)
}
