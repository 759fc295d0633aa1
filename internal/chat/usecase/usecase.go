package usecase

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"belay/config"
	"belay/internal/chat"
	"belay/internal/chat/model"
	"belay/internal/chat/repository"
	"belay/pkg/errors"
	"belay/pkg/logger"

	"github.com/google/uuid"
)

type ChatUsecase struct {
	repo   chat.ThreadRepository
	legacy *chat.LegacyEndpointAdapter
	logger logger.Logger
	config config.Config
}

func NewChatUsecase(repo chat.ThreadRepository, logger logger.Logger, config config.Config) *ChatUsecase {
	return &ChatUsecase{
		repo:   repo,
		legacy: chat.NewLegacyEndpointAdapter(repo),
		logger: logger,
		config: config,
	}
}

// opCtx bounds a single store operation when an op timeout is configured.
func (uc *ChatUsecase) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.config.Realtime.OpTimeoutSeconds > 0 {
		return context.WithTimeout(ctx, time.Duration(uc.config.Realtime.OpTimeoutSeconds)*time.Second)
	}
	return ctx, func() {}
}

// EnsureMember gates every read and write on a thread. Direct threads check
// structurally against the two endpoints and never write; group threads
// check the participant set and auto-enroll the user on first interaction.
func (uc *ChatUsecase) EnsureMember(ctx context.Context, threadID, userID uuid.UUID) (*model.Thread, error) {
	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	thread, err := uc.repo.GetThread(ctx, threadID)
	if err != nil {
		if stderrors.Is(err, repository.ErrThreadNotFound) {
			return nil, errors.ErrThreadNotFound
		}
		uc.logger.Error("failed to load thread", "thread_id", threadID, "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}

	if thread.Kind.IsDirect() {
		if !thread.HasEndpoint(userID) {
			return nil, errors.ErrNotAParticipant
		}
		return thread, nil
	}

	isMember, err := uc.repo.IsParticipant(ctx, threadID, userID)
	if err != nil {
		uc.logger.Error("membership check failed", "thread_id", threadID, "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}
	if !isMember {
		err = uc.repo.Enroll(ctx, &model.ThreadParticipant{
			ThreadID: threadID,
			UserID:   userID,
			Role:     model.RoleMember,
		})
		if err != nil {
			uc.logger.Error("auto-enroll failed", "thread_id", threadID, "user_id", userID, "err", err)
			return nil, errors.ErrStoreUnavailable(err)
		}
		if err := uc.legacy.Backfill(ctx, thread, userID); err != nil {
			// shim only, old readers tolerate the missing endpoint
			uc.logger.Warn("legacy endpoint backfill failed", "thread_id", threadID, "err", err)
		}
	}
	return thread, nil
}

func (uc *ChatUsecase) ListThreads(ctx context.Context, userID uuid.UUID) ([]*chat.ThreadDTO, error) {
	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	threads, err := uc.repo.ListThreads(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to list threads", "user_id", userID, "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}

	out := make([]*chat.ThreadDTO, 0, len(threads))
	for _, t := range threads {
		latest, err := uc.repo.LatestMessage(ctx, t.ID)
		if err != nil {
			uc.logger.Error("failed to load latest message", "thread_id", t.ID, "err", err)
			return nil, errors.ErrStoreUnavailable(err)
		}
		unread := chat.IsThreadUnread(latest, userID, t.Kind.IsDirect(), latest != nil)
		out = append(out, chat.ToThreadDTO(t, userID, unread))
	}
	return out, nil
}

func (uc *ChatUsecase) ListMessages(ctx context.Context, threadID, viewerID uuid.UUID) ([]*chat.MessageDTO, error) {
	thread, err := uc.EnsureMember(ctx, threadID, viewerID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	msgs, err := uc.repo.ListMessages(ctx, threadID)
	if err != nil {
		uc.logger.Error("failed to list messages", "thread_id", threadID, "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}

	out := make([]*chat.MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, chat.ToMessageDTO(m, viewerID, thread.Kind.IsDirect()))
	}
	return out, nil
}

func (uc *ChatUsecase) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (*chat.MessageDTO, error) {
	if strings.TrimSpace(cmd.Body) == "" {
		return nil, errors.ErrEmptyBody
	}

	thread, err := uc.EnsureMember(ctx, cmd.ThreadID, cmd.SenderID)
	if err != nil {
		return nil, err
	}

	// Direct delivery is point-to-point; group delivery is fan-out, the
	// receiver column holds the sender as a placeholder there.
	receiverID := cmd.SenderID
	if thread.Kind.IsDirect() {
		receiverID = thread.Endpoint(cmd.SenderID)
	}

	msg := &model.Message{
		ThreadID:   cmd.ThreadID,
		SenderID:   cmd.SenderID,
		ReceiverID: receiverID,
		Body:       cmd.Body,
		Status:     model.StatusSent,
	}

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	if err := uc.repo.InsertMessage(ctx, msg); err != nil {
		uc.logger.Error("failed to insert message", "thread_id", cmd.ThreadID, "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}

	// Independent second write, not a transaction. The summary is a cache;
	// on failure the next send heals it.
	if err := uc.repo.UpdateThreadLastMessage(ctx, cmd.ThreadID, msg.Body, msg.CreatedAt); err != nil {
		uc.logger.Warn("failed to refresh thread summary", "thread_id", cmd.ThreadID, "err", err)
	}

	return chat.ToMessageDTO(msg, cmd.SenderID, thread.Kind.IsDirect()), nil
}

func (uc *ChatUsecase) MarkDelivered(ctx context.Context, threadID, viewerID uuid.UUID) ([]*chat.MessageDTO, error) {
	return uc.advanceStatus(ctx, threadID, viewerID, false)
}

func (uc *ChatUsecase) MarkRead(ctx context.Context, threadID, viewerID uuid.UUID) ([]*chat.MessageDTO, error) {
	return uc.advanceStatus(ctx, threadID, viewerID, true)
}

// advanceStatus recomputes the candidate batch from the current thread state
// on every call, so a previously failed batch is retried wholesale by the
// next view event without any client-side bookkeeping.
func (uc *ChatUsecase) advanceStatus(ctx context.Context, threadID, viewerID uuid.UUID, toRead bool) ([]*chat.MessageDTO, error) {
	thread, err := uc.EnsureMember(ctx, threadID, viewerID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	msgs, err := uc.repo.ListMessages(ctx, threadID)
	if err != nil {
		uc.logger.Error("failed to list messages", "thread_id", threadID, "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}

	isDirect := thread.Kind.IsDirect()
	var ids []uuid.UUID
	for _, m := range msgs {
		if m.SenderID == viewerID {
			continue
		}
		if isDirect && m.ReceiverID != viewerID {
			continue
		}
		status := model.ParseStatus(string(m.Status))
		if toRead && status != model.StatusRead {
			ids = append(ids, m.ID)
		} else if !toRead && status == model.StatusSent {
			ids = append(ids, m.ID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var updated []*model.Message
	if toRead {
		updated, err = uc.repo.MarkRead(ctx, ids, viewerID)
	} else {
		updated, err = uc.repo.MarkDelivered(ctx, ids, viewerID)
	}
	if err != nil {
		uc.logger.Error("status batch failed", "thread_id", threadID, "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}

	out := make([]*chat.MessageDTO, 0, len(updated))
	for _, m := range updated {
		out = append(out, chat.ToMessageDTO(m, viewerID, isDirect))
	}
	return out, nil
}

// OpenDirectThread finds or lazily creates the direct thread for a pair.
// A concurrent open from the other endpoint loses the insert race on the
// canonical-pair index and adopts the winner's row.
func (uc *ChatUsecase) OpenDirectThread(ctx context.Context, userID, otherID uuid.UUID) (*chat.ThreadDTO, error) {
	if userID == otherID || userID == uuid.Nil || otherID == uuid.Nil {
		return nil, errors.ErrDirectEndpoints
	}

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	thread, err := uc.repo.FindDirectThread(ctx, userID, otherID)
	if err != nil {
		uc.logger.Error("direct thread lookup failed", "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}
	if thread == nil {
		thread = &model.Thread{
			Kind:    model.ThreadDirect,
			UserAID: userID,
			UserBID: otherID,
		}
		if err := uc.repo.CreateThread(ctx, thread); err != nil {
			if !errors.IsUniqueViolation(err) {
				uc.logger.Error("direct thread create failed", "err", err)
				return nil, errors.ErrStoreUnavailable(err)
			}
			thread, err = uc.repo.FindDirectThread(ctx, userID, otherID)
			if err != nil || thread == nil {
				return nil, errors.ErrStoreUnavailable(err)
			}
		}
	}

	latest, err := uc.repo.LatestMessage(ctx, thread.ID)
	if err != nil {
		return nil, errors.ErrStoreUnavailable(err)
	}
	unread := chat.IsThreadUnread(latest, userID, true, latest != nil)
	return chat.ToThreadDTO(thread, userID, unread), nil
}

// OpenCatalogThread finds or lazily creates the gym/event/crew thread and
// enrolls the caller.
func (uc *ChatUsecase) OpenCatalogThread(ctx context.Context, cmd chat.OpenCatalogThreadCommand) (*chat.ThreadDTO, error) {
	if cmd.Kind.IsDirect() {
		return nil, errors.InvalidArg("catalog threads cannot be direct")
	}

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	thread, err := uc.repo.FindCatalogThread(ctx, cmd.Kind, cmd.CatalogID)
	if err != nil {
		uc.logger.Error("catalog thread lookup failed", "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}
	if thread == nil {
		catalogID := cmd.CatalogID
		thread = &model.Thread{
			Kind:      cmd.Kind,
			CatalogID: &catalogID,
			Title:     cmd.Title,
		}
		if err := uc.repo.CreateThread(ctx, thread); err != nil {
			if !errors.IsUniqueViolation(err) {
				uc.logger.Error("catalog thread create failed", "err", err)
				return nil, errors.ErrStoreUnavailable(err)
			}
			thread, err = uc.repo.FindCatalogThread(ctx, cmd.Kind, cmd.CatalogID)
			if err != nil || thread == nil {
				return nil, errors.ErrStoreUnavailable(err)
			}
		}
	}

	if _, err := uc.EnsureMember(ctx, thread.ID, cmd.UserID); err != nil {
		return nil, err
	}

	latest, err := uc.repo.LatestMessage(ctx, thread.ID)
	if err != nil {
		return nil, errors.ErrStoreUnavailable(err)
	}
	unread := chat.IsThreadUnread(latest, cmd.UserID, false, latest != nil)
	return chat.ToThreadDTO(thread, cmd.UserID, unread), nil
}

// LeaveThread destroys a direct thread outright (either endpoint can); for
// group threads it only drops the caller's membership, the thread survives.
func (uc *ChatUsecase) LeaveThread(ctx context.Context, threadID, userID uuid.UUID) error {
	thread, err := uc.EnsureMember(ctx, threadID, userID)
	if err != nil {
		return err
	}

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	if thread.Kind.IsDirect() {
		if err := uc.repo.DeleteThread(ctx, threadID); err != nil {
			uc.logger.Error("failed to delete direct thread", "thread_id", threadID, "err", err)
			return errors.ErrStoreUnavailable(err)
		}
		return nil
	}

	if err := uc.repo.RemoveParticipant(ctx, threadID, userID); err != nil {
		uc.logger.Error("failed to leave thread", "thread_id", threadID, "err", err)
		return errors.ErrStoreUnavailable(err)
	}
	return nil
}
