package repository

import (
	"context"
	"database/sql"

	"belay/internal/notification/model"
	"belay/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type InviteRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrInviteNotFound = errors.New("invite not found")
)

func NewInviteRepository(db *bun.DB, logger logger.Logger) *InviteRepository {
	return &InviteRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *InviteRepository) InsertInvite(ctx context.Context, inv *model.GroupInvite) error {
	_, err := r.db.NewInsert().Model(inv).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "inviteRepo.InsertInvite.Insert: ")
	}
	return nil
}

func (r *InviteRepository) GetInvite(ctx context.Context, id uuid.UUID) (*model.GroupInvite, error) {
	inv := new(model.GroupInvite)
	err := r.db.NewSelect().Model(inv).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInviteNotFound
		}
		return nil, errors.Wrap(err, "inviteRepo.GetInvite.Scan: ")
	}
	return inv, nil
}

func (r *InviteRepository) ListPendingInvites(ctx context.Context, inviteeID uuid.UUID) ([]*model.GroupInvite, error) {
	var invites []*model.GroupInvite
	err := r.db.NewSelect().
		Model(&invites).
		Where("invitee_id = ?", inviteeID).
		Where("status = ?", model.InvitePending).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "inviteRepo.ListPendingInvites.Scan: ")
	}
	return invites, nil
}

// UpdateStatusForTriple settles every pending duplicate at once; the status
// guard keeps the statement idempotent across repeated answers.
func (r *InviteRepository) UpdateStatusForTriple(ctx context.Context, inviterID, inviteeID, threadID uuid.UUID, to model.InviteStatus) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*model.GroupInvite)(nil)).
		Set("status = ?", to).
		Where("inviter_id = ?", inviterID).
		Where("invitee_id = ?", inviteeID).
		Where("thread_id = ?", threadID).
		Where("status = ?", model.InvitePending).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "inviteRepo.UpdateStatusForTriple.Update: ")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "inviteRepo.UpdateStatusForTriple.RowsAffected: ")
	}
	return affected, nil
}
