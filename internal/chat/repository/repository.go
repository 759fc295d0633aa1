package repository

import (
	"context"
	"database/sql"
	"time"

	"belay/internal/chat/model"
	"belay/internal/realtime"
	"belay/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type ThreadRepository struct {
	db     *bun.DB
	logger *logger.Logger
	feed   realtime.Publisher
}

var (
	ErrThreadNotFound = errors.New("thread not found")
)

// NewThreadRepository builds the Postgres-backed thread store. feed may be
// nil; when set, message inserts, status transitions and deletes are
// published to it after the store write succeeds.
func NewThreadRepository(db *bun.DB, logger logger.Logger, feed realtime.Publisher) *ThreadRepository {
	return &ThreadRepository{
		db:     db,
		logger: &logger,
		feed:   feed,
	}
}

func (r *ThreadRepository) CreateThread(ctx context.Context, thread *model.Thread) error {
	_, err := r.db.NewInsert().Model(thread).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "threadRepo.CreateThread.Insert: ")
	}
	return nil
}

func (r *ThreadRepository) GetThread(ctx context.Context, id uuid.UUID) (*model.Thread, error) {
	thread := new(model.Thread)
	err := r.db.NewSelect().Model(thread).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrThreadNotFound
		}
		return nil, errors.Wrap(err, "threadRepo.GetThread.Scan: ")
	}
	return thread, nil
}

func (r *ThreadRepository) FindDirectThread(ctx context.Context, a, b uuid.UUID) (*model.Thread, error) {
	thread := new(model.Thread)
	err := r.db.NewSelect().
		Model(thread).
		Where("kind = ?", model.ThreadDirect).
		Where("(user_a_id = ? AND user_b_id = ?) OR (user_a_id = ? AND user_b_id = ?)", a, b, b, a).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "threadRepo.FindDirectThread.Scan: ")
	}
	return thread, nil
}

func (r *ThreadRepository) FindCatalogThread(ctx context.Context, kind model.ThreadKind, catalogID uuid.UUID) (*model.Thread, error) {
	thread := new(model.Thread)
	err := r.db.NewSelect().
		Model(thread).
		Where("kind = ?", kind).
		Where("catalog_id = ?", catalogID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "threadRepo.FindCatalogThread.Scan: ")
	}
	return thread, nil
}

func (r *ThreadRepository) ListThreads(ctx context.Context, userID uuid.UUID) ([]*model.Thread, error) {
	var threads []*model.Thread
	err := r.db.NewSelect().
		Model(&threads).
		Where("user_a_id = ? OR user_b_id = ? OR id IN (SELECT thread_id FROM thread_participants WHERE user_id = ?)",
			userID, userID, userID).
		OrderExpr("last_message_at DESC NULLS LAST, created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "threadRepo.ListThreads.Scan: ")
	}
	return threads, nil
}

// DeleteThread removes the thread's messages first, then the thread row and
// its participant rows. Each statement stands alone; a crash in between
// leaves orphan rows the next delete pass clears, never a dangling thread.
func (r *ThreadRepository) DeleteThread(ctx context.Context, id uuid.UUID) error {
	var victims []*model.Message
	if r.feed != nil {
		if err := r.db.NewSelect().Model(&victims).Where("thread_id = ?", id).Scan(ctx); err != nil {
			return errors.Wrap(err, "threadRepo.DeleteThread.SelectMessages: ")
		}
	}

	if _, err := r.db.NewDelete().Model((*model.Message)(nil)).Where("thread_id = ?", id).Exec(ctx); err != nil {
		return errors.Wrap(err, "threadRepo.DeleteThread.DeleteMessages: ")
	}
	if _, err := r.db.NewDelete().Model((*model.ThreadParticipant)(nil)).Where("thread_id = ?", id).Exec(ctx); err != nil {
		return errors.Wrap(err, "threadRepo.DeleteThread.DeleteParticipants: ")
	}
	if _, err := r.db.NewDelete().Model((*model.Thread)(nil)).Where("id = ?", id).Exec(ctx); err != nil {
		return errors.Wrap(err, "threadRepo.DeleteThread.DeleteThread: ")
	}

	for _, msg := range victims {
		r.feed.Publish(realtime.Event{Type: realtime.EventDelete, Old: msg})
	}
	return nil
}

func (r *ThreadRepository) UpdateThreadLastMessage(ctx context.Context, threadID uuid.UUID, body string, at time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*model.Thread)(nil)).
		Set("last_message_body = ?", body).
		Set("last_message_at = ?", at).
		Where("id = ?", threadID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "threadRepo.UpdateThreadLastMessage.Update: ")
	}
	return nil
}

// SetThreadEndpointA only fills an empty slot; it never overwrites an
// endpoint that is already set.
func (r *ThreadRepository) SetThreadEndpointA(ctx context.Context, threadID, userID uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*model.Thread)(nil)).
		Set("user_a_id = ?", userID).
		Where("id = ?", threadID).
		Where("user_a_id IS NULL").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "threadRepo.SetThreadEndpointA.Update: ")
	}
	return nil
}

func (r *ThreadRepository) IsParticipant(ctx context.Context, threadID, userID uuid.UUID) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*model.ThreadParticipant)(nil)).
		Where("thread_id = ? AND user_id = ?", threadID, userID).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "threadRepo.IsParticipant.Exists: ")
	}
	return exists, nil
}

// Enroll is an idempotent upsert on the (thread_id, user_id) key; a second
// enrollment is a no-op, never an error.
func (r *ThreadRepository) Enroll(ctx context.Context, p *model.ThreadParticipant) error {
	_, err := r.db.NewInsert().
		Model(p).
		On("CONFLICT (thread_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "threadRepo.Enroll.Insert: ")
	}
	return nil
}

func (r *ThreadRepository) RemoveParticipant(ctx context.Context, threadID, userID uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*model.ThreadParticipant)(nil)).
		Where("thread_id = ? AND user_id = ?", threadID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "threadRepo.RemoveParticipant.Delete: ")
	}
	return nil
}

func (r *ThreadRepository) CountParticipants(ctx context.Context, threadID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*model.ThreadParticipant)(nil)).
		Where("thread_id = ?", threadID).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "threadRepo.CountParticipants.Count: ")
	}
	return count, nil
}

func (r *ThreadRepository) InsertMessage(ctx context.Context, msg *model.Message) error {
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "threadRepo.InsertMessage.Insert: ")
	}
	if r.feed != nil {
		r.feed.Publish(realtime.Event{Type: realtime.EventInsert, New: msg})
	}
	return nil
}

func (r *ThreadRepository) ListMessages(ctx context.Context, threadID uuid.UUID) ([]*model.Message, error) {
	var msgs []*model.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "threadRepo.ListMessages.Scan: ")
	}
	return msgs, nil
}

func (r *ThreadRepository) LatestMessage(ctx context.Context, threadID uuid.UUID) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().
		Model(msg).
		Where("thread_id = ?", threadID).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "threadRepo.LatestMessage.Scan: ")
	}
	return msg, nil
}

func (r *ThreadRepository) CountMessages(ctx context.Context, threadID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*model.Message)(nil)).
		Where("thread_id = ?", threadID).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "threadRepo.CountMessages.Count: ")
	}
	return count, nil
}

// MarkDelivered advances still-sent messages not authored by viewerID. The
// status guard in the WHERE clause is what makes the transition forward-only
// under concurrent recipients; rows already past 'sent' are simply skipped.
func (r *ThreadRepository) MarkDelivered(ctx context.Context, ids []uuid.UUID, viewerID uuid.UUID) ([]*model.Message, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var updated []*model.Message
	_, err := r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set("status = ?", model.StatusDelivered).
		Where("id IN (?)", bun.In(ids)).
		Where("sender_id != ?", viewerID).
		Where("lower(status) = ?", model.StatusSent).
		Returning("*").
		Exec(ctx, &updated)
	if err != nil {
		return nil, errors.Wrap(err, "threadRepo.MarkDelivered.Update: ")
	}
	r.publishStatusUpdates(updated)
	return updated, nil
}

// MarkRead advances every not-yet-read message from another sender.
func (r *ThreadRepository) MarkRead(ctx context.Context, ids []uuid.UUID, viewerID uuid.UUID) ([]*model.Message, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var updated []*model.Message
	_, err := r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set("status = ?", model.StatusRead).
		Where("id IN (?)", bun.In(ids)).
		Where("sender_id != ?", viewerID).
		Where("lower(status) != ?", model.StatusRead).
		Returning("*").
		Exec(ctx, &updated)
	if err != nil {
		return nil, errors.Wrap(err, "threadRepo.MarkRead.Update: ")
	}
	r.publishStatusUpdates(updated)
	return updated, nil
}

func (r *ThreadRepository) publishStatusUpdates(msgs []*model.Message) {
	if r.feed == nil {
		return
	}
	for _, msg := range msgs {
		r.feed.Publish(realtime.Event{Type: realtime.EventUpdate, New: msg})
	}
}
