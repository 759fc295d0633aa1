package chat

import (
	"context"

	"belay/internal/chat/model"

	"github.com/google/uuid"
)

// LegacyEndpointAdapter backfills the single-endpoint field that old readers
// still consult on group threads. A group thread created before any
// participant existed has both endpoints unset; on first enrollment the
// adapter writes the enrolling user into user_a_id. This is a compatibility
// shim, not a correctness requirement; a nil adapter disables it.
type LegacyEndpointAdapter struct {
	repo ThreadRepository
}

func NewLegacyEndpointAdapter(repo ThreadRepository) *LegacyEndpointAdapter {
	return &LegacyEndpointAdapter{repo: repo}
}

func (a *LegacyEndpointAdapter) Backfill(ctx context.Context, thread *model.Thread, userID uuid.UUID) error {
	if a == nil || a.repo == nil {
		return nil
	}
	if thread.Kind.IsDirect() {
		return nil
	}
	if thread.UserAID != uuid.Nil || thread.UserBID != uuid.Nil {
		return nil
	}
	if err := a.repo.SetThreadEndpointA(ctx, thread.ID, userID); err != nil {
		return err
	}
	thread.UserAID = userID
	return nil
}
