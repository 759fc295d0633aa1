package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"belay/config"
	"belay/internal/chat"
	"belay/internal/chat/mocks"
	models "belay/internal/chat/model"
	"belay/internal/chat/repository"
	appErrors "belay/pkg/errors"
	"belay/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsecase(t *testing.T) (*ChatUsecase, *mocks.MockThreadRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockThreadRepository(ctrl)
	uc := NewChatUsecase(mockRepo, logger.Logger{}, config.Config{})
	return uc, mockRepo
}

func directThread(a, b uuid.UUID) *models.Thread {
	return &models.Thread{
		ID:      uuid.New(),
		Kind:    models.ThreadDirect,
		UserAID: a,
		UserBID: b,
	}
}

func gymThread() *models.Thread {
	catalogID := uuid.New()
	return &models.Thread{
		ID:        uuid.New(),
		Kind:      models.ThreadGym,
		CatalogID: &catalogID,
		Title:     "Boulder Barn",
	}
}

func TestChatUsecase_EnsureMember(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	t.Run("direct endpoint passes", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := directThread(alice, bob)

		mockRepo.EXPECT().GetThread(gomock.Any(), thread.ID).Return(thread, nil)

		got, err := uc.EnsureMember(context.Background(), thread.ID, bob)
		require.NoError(t, err)
		assert.Equal(t, thread.ID, got.ID)
	})

	t.Run("direct outsider rejected without writes", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := directThread(alice, bob)

		mockRepo.EXPECT().GetThread(gomock.Any(), thread.ID).Return(thread, nil)

		_, err := uc.EnsureMember(context.Background(), thread.ID, carol)
		assert.ErrorIs(t, err, appErrors.ErrNotAParticipant)
	})

	t.Run("group member passes without enroll", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := gymThread()

		g := mockRepo.EXPECT()
		g.GetThread(gomock.Any(), thread.ID).Return(thread, nil)
		g.IsParticipant(gomock.Any(), thread.ID, alice).Return(true, nil)

		_, err := uc.EnsureMember(context.Background(), thread.ID, alice)
		require.NoError(t, err)
	})

	t.Run("group non-member auto-enrolls", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := gymThread()

		g := mockRepo.EXPECT()
		g.GetThread(gomock.Any(), thread.ID).Return(thread, nil)
		g.IsParticipant(gomock.Any(), thread.ID, alice).Return(false, nil)
		g.Enroll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *models.ThreadParticipant) error {
				assert.Equal(t, thread.ID, p.ThreadID)
				assert.Equal(t, alice, p.UserID)
				assert.Equal(t, models.RoleMember, p.Role)
				return nil
			})
		// legacy endpoint backfill kicks in for a thread without endpoints
		g.SetThreadEndpointA(gomock.Any(), thread.ID, alice).Return(nil)

		_, err := uc.EnsureMember(context.Background(), thread.ID, alice)
		require.NoError(t, err)
	})

	t.Run("backfill failure is tolerated", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := gymThread()

		g := mockRepo.EXPECT()
		g.GetThread(gomock.Any(), thread.ID).Return(thread, nil)
		g.IsParticipant(gomock.Any(), thread.ID, alice).Return(false, nil)
		g.Enroll(gomock.Any(), gomock.Any()).Return(nil)
		g.SetThreadEndpointA(gomock.Any(), thread.ID, alice).Return(errors.New("boom"))

		_, err := uc.EnsureMember(context.Background(), thread.ID, alice)
		require.NoError(t, err)
	})

	t.Run("missing thread", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		threadID := uuid.New()

		mockRepo.EXPECT().GetThread(gomock.Any(), threadID).Return(nil, repository.ErrThreadNotFound)

		_, err := uc.EnsureMember(context.Background(), threadID, alice)
		assert.ErrorIs(t, err, appErrors.ErrThreadNotFound)
	})
}

func TestChatUsecase_SendMessage(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	t.Run("direct message targets the other endpoint", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := directThread(alice, bob)

		g := mockRepo.EXPECT()
		g.GetThread(gomock.Any(), thread.ID).Return(thread, nil)
		g.InsertMessage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *models.Message) error {
				assert.Equal(t, bob, m.ReceiverID)
				assert.Equal(t, models.StatusSent, m.Status)
				m.ID = uuid.New()
				m.CreatedAt = time.Now()
				return nil
			})
		g.UpdateThreadLastMessage(gomock.Any(), thread.ID, "on for tonight?", gomock.Any()).Return(nil)

		dto, err := uc.SendMessage(context.Background(), chat.SendMessageCommand{
			ThreadID: thread.ID,
			SenderID: alice,
			Body:     "on for tonight?",
		})
		require.NoError(t, err)
		assert.Equal(t, bob, dto.ReceiverID)
		assert.False(t, dto.Unread) // own message is never unread to its sender
	})

	t.Run("group message carries sender as receiver placeholder", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := gymThread()

		g := mockRepo.EXPECT()
		g.GetThread(gomock.Any(), thread.ID).Return(thread, nil)
		g.IsParticipant(gomock.Any(), thread.ID, alice).Return(true, nil)
		g.InsertMessage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *models.Message) error {
				assert.Equal(t, alice, m.ReceiverID)
				return nil
			})
		g.UpdateThreadLastMessage(gomock.Any(), thread.ID, gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.SendMessage(context.Background(), chat.SendMessageCommand{
			ThreadID: thread.ID,
			SenderID: alice,
			Body:     "session at 6",
		})
		require.NoError(t, err)
	})

	t.Run("blank body rejected before any store call", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		_, err := uc.SendMessage(context.Background(), chat.SendMessageCommand{
			ThreadID: uuid.New(),
			SenderID: alice,
			Body:     "   \t\n",
		})
		assert.ErrorIs(t, err, appErrors.ErrEmptyBody)
	})

	t.Run("summary refresh failure does not fail the send", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := directThread(alice, bob)

		g := mockRepo.EXPECT()
		g.GetThread(gomock.Any(), thread.ID).Return(thread, nil)
		g.InsertMessage(gomock.Any(), gomock.Any()).Return(nil)
		g.UpdateThreadLastMessage(gomock.Any(), thread.ID, gomock.Any(), gomock.Any()).Return(errors.New("boom"))

		_, err := uc.SendMessage(context.Background(), chat.SendMessageCommand{
			ThreadID: thread.ID,
			SenderID: alice,
			Body:     "hi",
		})
		require.NoError(t, err)
	})
}

func TestChatUsecase_AdvanceStatus(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	msg := func(thread *models.Thread, sender, receiver uuid.UUID, status models.MessageStatus) *models.Message {
		return &models.Message{
			ID:         uuid.New(),
			ThreadID:   thread.ID,
			SenderID:   sender,
			ReceiverID: receiver,
			Status:     status,
		}
	}

	t.Run("mark delivered picks only incoming sent messages", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := directThread(alice, bob)

		incoming := msg(thread, alice, bob, models.StatusSent)
		own := msg(thread, bob, alice, models.StatusSent)
		alreadyRead := msg(thread, alice, bob, models.StatusRead)

		g := mockRepo.EXPECT()
		g.GetThread(gomock.Any(), thread.ID).Return(thread, nil)
		g.ListMessages(gomock.Any(), thread.ID).Return([]*models.Message{incoming, own, alreadyRead}, nil)
		g.MarkDelivered(gomock.Any(), []uuid.UUID{incoming.ID}, bob).
			Return([]*models.Message{msg(thread, alice, bob, models.StatusDelivered)}, nil)

		updated, err := uc.MarkDelivered(context.Background(), thread.ID, bob)
		require.NoError(t, err)
		require.Len(t, updated, 1)
		assert.Equal(t, models.StatusDelivered, updated[0].Status)
	})

	t.Run("mark read includes delivered messages", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := directThread(alice, bob)

		sent := msg(thread, alice, bob, models.StatusSent)
		delivered := msg(thread, alice, bob, models.StatusDelivered)

		g := mockRepo.EXPECT()
		g.GetThread(gomock.Any(), thread.ID).Return(thread, nil)
		g.ListMessages(gomock.Any(), thread.ID).Return([]*models.Message{sent, delivered}, nil)
		g.MarkRead(gomock.Any(), []uuid.UUID{sent.ID, delivered.ID}, bob).
			Return([]*models.Message{
				msg(thread, alice, bob, models.StatusRead),
				msg(thread, alice, bob, models.StatusRead),
			}, nil)

		updated, err := uc.MarkRead(context.Background(), thread.ID, bob)
		require.NoError(t, err)
		assert.Len(t, updated, 2)
	})

	t.Run("nothing to advance skips the store write", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := directThread(alice, bob)

		own := msg(thread, bob, alice, models.StatusSent)
		read := msg(thread, alice, bob, models.StatusRead)

		g := mockRepo.EXPECT()
		g.GetThread(gomock.Any(), thread.ID).Return(thread, nil)
		g.ListMessages(gomock.Any(), thread.ID).Return([]*models.Message{own, read}, nil)

		updated, err := uc.MarkRead(context.Background(), thread.ID, bob)
		require.NoError(t, err)
		assert.Empty(t, updated)
	})

	t.Run("group viewer advances messages from any other sender", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := gymThread()
		carol := uuid.New()

		// group fan-out: receiver is a placeholder, membership decided elsewhere
		fromAlice := msg(thread, alice, alice, models.StatusSent)
		fromCarol := msg(thread, carol, carol, models.StatusSent)
		ownMsg := msg(thread, bob, bob, models.StatusSent)

		g := mockRepo.EXPECT()
		g.GetThread(gomock.Any(), thread.ID).Return(thread, nil)
		g.IsParticipant(gomock.Any(), thread.ID, bob).Return(true, nil)
		g.ListMessages(gomock.Any(), thread.ID).Return([]*models.Message{fromAlice, fromCarol, ownMsg}, nil)
		g.MarkDelivered(gomock.Any(), []uuid.UUID{fromAlice.ID, fromCarol.ID}, bob).
			Return([]*models.Message{fromAlice, fromCarol}, nil)

		_, err := uc.MarkDelivered(context.Background(), thread.ID, bob)
		require.NoError(t, err)
	})
}

func TestChatUsecase_OpenDirectThread(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	t.Run("existing thread is reused", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := directThread(alice, bob)

		g := mockRepo.EXPECT()
		g.FindDirectThread(gomock.Any(), alice, bob).Return(thread, nil)
		g.LatestMessage(gomock.Any(), thread.ID).Return(nil, nil)

		dto, err := uc.OpenDirectThread(context.Background(), alice, bob)
		require.NoError(t, err)
		assert.Equal(t, thread.ID, dto.ID)
		assert.Equal(t, bob, dto.OtherUserID)
		// no exchange yet, the thread view should still nudge the viewer
		assert.True(t, dto.Unread)
	})

	t.Run("missing thread is created", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.FindDirectThread(gomock.Any(), alice, bob).Return(nil, nil)
		g.CreateThread(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, th *models.Thread) error {
				assert.True(t, th.Kind.IsDirect())
				assert.Equal(t, alice, th.UserAID)
				assert.Equal(t, bob, th.UserBID)
				th.ID = uuid.New()
				return nil
			})
		g.LatestMessage(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := uc.OpenDirectThread(context.Background(), alice, bob)
		require.NoError(t, err)
	})

	t.Run("insert race adopts the winner's row", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		winner := directThread(bob, alice)

		g := mockRepo.EXPECT()
		g.FindDirectThread(gomock.Any(), alice, bob).Return(nil, nil)
		g.CreateThread(gomock.Any(), gomock.Any()).Return(fakeUniqueViolation{})
		g.FindDirectThread(gomock.Any(), alice, bob).Return(winner, nil)
		g.LatestMessage(gomock.Any(), winner.ID).Return(nil, nil)

		dto, err := uc.OpenDirectThread(context.Background(), alice, bob)
		require.NoError(t, err)
		assert.Equal(t, winner.ID, dto.ID)
	})

	t.Run("self and nil endpoints rejected", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		_, err := uc.OpenDirectThread(context.Background(), alice, alice)
		assert.ErrorIs(t, err, appErrors.ErrDirectEndpoints)

		_, err = uc.OpenDirectThread(context.Background(), alice, uuid.Nil)
		assert.ErrorIs(t, err, appErrors.ErrDirectEndpoints)
	})
}

func TestChatUsecase_LeaveThread(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	t.Run("direct thread is destroyed", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := directThread(alice, bob)

		g := mockRepo.EXPECT()
		g.GetThread(gomock.Any(), thread.ID).Return(thread, nil)
		g.DeleteThread(gomock.Any(), thread.ID).Return(nil)

		require.NoError(t, uc.LeaveThread(context.Background(), thread.ID, alice))
	})

	t.Run("group thread only drops the membership", func(t *testing.T) {
		uc, mockRepo := newTestUsecase(t)
		thread := gymThread()

		g := mockRepo.EXPECT()
		g.GetThread(gomock.Any(), thread.ID).Return(thread, nil)
		g.IsParticipant(gomock.Any(), thread.ID, alice).Return(true, nil)
		g.RemoveParticipant(gomock.Any(), thread.ID, alice).Return(nil)

		require.NoError(t, uc.LeaveThread(context.Background(), thread.ID, alice))
	})
}

// fakeUniqueViolation mimics the driver error the store surfaces when the
// canonical-pair index rejects a duplicate insert.
type fakeUniqueViolation struct{}

func (fakeUniqueViolation) Error() string {
	return `ERROR: duplicate key value violates unique constraint "idx_direct_pair" (SQLSTATE=23505)`
}
