package chat

import (
	"time"

	"belay/internal/chat/model"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
type SendMessageCommand struct {
	ThreadID uuid.UUID
	SenderID uuid.UUID
	Body     string
}

type OpenCatalogThreadCommand struct {
	Kind      model.ThreadKind
	CatalogID uuid.UUID
	Title     string
	UserID    uuid.UUID
}

type ThreadDTO struct {
	ID              uuid.UUID
	Kind            model.ThreadKind
	Title           string
	OtherUserID     uuid.UUID // direct threads only
	LastMessageBody string
	LastMessageAt   *time.Time
	Unread          bool
	CreatedAt       time.Time
}

type MessageDTO struct {
	ID         uuid.UUID
	ThreadID   uuid.UUID
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Body       string
	Status     model.MessageStatus
	Unread     bool
	CreatedAt  time.Time
}

func ToThreadDTO(t *model.Thread, viewerID uuid.UUID, unread bool) *ThreadDTO {
	return &ThreadDTO{
		ID:              t.ID,
		Kind:            t.Kind,
		Title:           t.Title,
		OtherUserID:     t.Endpoint(viewerID),
		LastMessageBody: t.LastMessageBody,
		LastMessageAt:   t.LastMessageAt,
		Unread:          unread,
		CreatedAt:       t.CreatedAt,
	}
}

func ToMessageDTO(m *model.Message, viewerID uuid.UUID, isDirect bool) *MessageDTO {
	return &MessageDTO{
		ID:         m.ID,
		ThreadID:   m.ThreadID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Body:       m.Body,
		Status:     model.ParseStatus(string(m.Status)),
		Unread:     IsMessageUnread(m, viewerID, isDirect),
		CreatedAt:  m.CreatedAt,
	}
}
