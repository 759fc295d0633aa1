package usecase

import (
	"context"
	stderrors "errors"
	"sort"
	"time"

	"belay/config"
	"belay/internal/chat"
	chatmodel "belay/internal/chat/model"
	"belay/internal/match"
	"belay/internal/notification"
	"belay/internal/notification/model"
	"belay/internal/notification/repository"
	"belay/pkg/errors"
	"belay/pkg/logger"

	"github.com/google/uuid"
)

// NotificationUsecase reduces the other subsystems' outputs into one feed.
// It owns no state of its own beyond the invite rows.
type NotificationUsecase struct {
	invites notification.InviteRepository
	threads chat.ThreadRepository
	matches match.MatchRepository
	logger  logger.Logger
	config  config.Config
}

func NewNotificationUsecase(
	invites notification.InviteRepository,
	threads chat.ThreadRepository,
	matches match.MatchRepository,
	logger logger.Logger,
	config config.Config,
) *NotificationUsecase {
	return &NotificationUsecase{
		invites: invites,
		threads: threads,
		matches: matches,
		logger:  logger,
		config:  config,
	}
}

func (uc *NotificationUsecase) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.config.Realtime.OpTimeoutSeconds > 0 {
		return context.WithTimeout(ctx, time.Duration(uc.config.Realtime.OpTimeoutSeconds)*time.Second)
	}
	return ctx, func() {}
}

func (uc *NotificationUsecase) BuildFeed(ctx context.Context, userID uuid.UUID) ([]*notification.FeedItem, error) {
	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	var items []*notification.FeedItem

	threads, err := uc.threads.ListThreads(ctx, userID)
	if err != nil {
		uc.logger.Error("feed: listing threads failed", "user_id", userID, "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}
	for _, t := range threads {
		latest, err := uc.threads.LatestMessage(ctx, t.ID)
		if err != nil {
			return nil, errors.ErrStoreUnavailable(err)
		}
		// the empty-direct-thread nudge is a thread badge, not a feed item
		if latest == nil {
			continue
		}
		if !chat.IsThreadUnread(latest, userID, t.Kind.IsDirect(), true) {
			continue
		}
		items = append(items, &notification.FeedItem{
			Kind:       notification.FeedMessage,
			CreatedAt:  latest.CreatedAt,
			ThreadID:   t.ID,
			MessageID:  latest.ID,
			Preview:    latest.Body,
			FromUserID: latest.SenderID,
		})
	}

	invites, err := uc.invites.ListPendingInvites(ctx, userID)
	if err != nil {
		uc.logger.Error("feed: listing invites failed", "user_id", userID, "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}
	for _, inv := range invites {
		items = append(items, &notification.FeedItem{
			Kind:       notification.FeedInvite,
			CreatedAt:  inv.CreatedAt,
			ThreadID:   inv.ThreadID,
			FromUserID: inv.InviterID,
			InviteID:   inv.ID,
		})
	}

	likes, err := uc.matches.ListLikesReceived(ctx, userID)
	if err != nil {
		uc.logger.Error("feed: listing likes failed", "user_id", userID, "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}
	for _, s := range likes {
		items = append(items, &notification.FeedItem{
			Kind:       notification.FeedLike,
			CreatedAt:  s.CreatedAt,
			FromUserID: s.SwiperID,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (uc *NotificationUsecase) Invite(ctx context.Context, cmd notification.InviteCommand) (*notification.InviteDTO, error) {
	if cmd.InviterID == cmd.InviteeID {
		return nil, errors.InvalidArg("cannot invite yourself")
	}

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	thread, err := uc.threads.GetThread(ctx, cmd.ThreadID)
	if err != nil {
		return nil, errors.ErrThreadNotFound
	}
	if thread.Kind.IsDirect() {
		return nil, errors.InvalidArg("direct threads take no invites")
	}

	inv := &model.GroupInvite{
		InviterID: cmd.InviterID,
		InviteeID: cmd.InviteeID,
		ThreadID:  cmd.ThreadID,
		Status:    model.InvitePending,
	}
	if err := uc.invites.InsertInvite(ctx, inv); err != nil {
		uc.logger.Error("failed to create invite", "thread_id", cmd.ThreadID, "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}

	return &notification.InviteDTO{
		ID:        inv.ID,
		InviterID: inv.InviterID,
		InviteeID: inv.InviteeID,
		ThreadID:  inv.ThreadID,
		Status:    string(inv.Status),
		CreatedAt: inv.CreatedAt,
	}, nil
}

func (uc *NotificationUsecase) AcceptInvite(ctx context.Context, inviteID, userID uuid.UUID) error {
	return uc.answerInvite(ctx, inviteID, userID, model.InviteAccepted)
}

func (uc *NotificationUsecase) DeclineInvite(ctx context.Context, inviteID, userID uuid.UUID) error {
	return uc.answerInvite(ctx, inviteID, userID, model.InviteDeclined)
}

// answerInvite enrolls on accept, then settles every pending duplicate of
// the (inviter, invitee, thread) triple in one sweep. If the sweep fails the
// rows stay pending and the item stays visible; re-answering is safe.
func (uc *NotificationUsecase) answerInvite(ctx context.Context, inviteID, userID uuid.UUID, to model.InviteStatus) error {
	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	inv, err := uc.invites.GetInvite(ctx, inviteID)
	if err != nil {
		if stderrors.Is(err, repository.ErrInviteNotFound) {
			return errors.ErrInviteNotFound
		}
		return errors.ErrStoreUnavailable(err)
	}
	if inv.InviteeID != userID {
		return errors.ErrNotInvitee
	}
	if inv.Status != model.InvitePending {
		// already answered, possibly through a duplicate row
		return nil
	}

	if to == model.InviteAccepted {
		err := uc.threads.Enroll(ctx, &chatmodel.ThreadParticipant{
			ThreadID: inv.ThreadID,
			UserID:   userID,
			Role:     chatmodel.RoleMember,
		})
		if err != nil {
			uc.logger.Error("invite accept: enroll failed", "invite_id", inviteID, "err", err)
			return errors.ErrStoreUnavailable(err)
		}
	}

	swept, err := uc.invites.UpdateStatusForTriple(ctx, inv.InviterID, inv.InviteeID, inv.ThreadID, to)
	if err != nil {
		uc.logger.Error("invite sweep failed", "invite_id", inviteID, "err", err)
		return errors.ErrStoreUnavailable(err)
	}
	if swept > 1 {
		uc.logger.Infof("settled %d duplicate invites for thread %s", swept, inv.ThreadID)
	}
	return nil
}
