package notification

import (
	"context"

	"belay/internal/notification/model"

	"github.com/google/uuid"
)

type InviteRepository interface {
	InsertInvite(ctx context.Context, inv *model.GroupInvite) error
	GetInvite(ctx context.Context, id uuid.UUID) (*model.GroupInvite, error)
	ListPendingInvites(ctx context.Context, inviteeID uuid.UUID) ([]*model.GroupInvite, error)
	// UpdateStatusForTriple moves every still-pending invite for the
	// (inviter, invitee, thread) triple to the given status in one statement
	// and reports how many rows moved. Answering any one duplicate answers
	// them all.
	UpdateStatusForTriple(ctx context.Context, inviterID, inviteeID, threadID uuid.UUID, to model.InviteStatus) (int64, error)
}
