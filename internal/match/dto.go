package match

import (
	"time"

	"belay/internal/match/model"

	"github.com/google/uuid"
)

type SwipeCommand struct {
	SwiperID uuid.UUID
	SwipeeID uuid.UUID
	Action   model.SwipeAction
}

type SwipeDTO struct {
	ID        uuid.UUID
	SwiperID  uuid.UUID
	SwipeeID  uuid.UUID
	Action    model.SwipeAction
	CreatedAt time.Time
}

type MatchDTO struct {
	ID          uuid.UUID
	UserLoID    uuid.UUID
	UserHiID    uuid.UUID
	OtherUserID uuid.UUID // counterpart of the viewer, when known
	CreatedAt   time.Time
}

func ToSwipeDTO(s *model.Swipe) *SwipeDTO {
	return &SwipeDTO{
		ID:        s.ID,
		SwiperID:  s.SwiperID,
		SwipeeID:  s.SwipeeID,
		Action:    s.Action,
		CreatedAt: s.CreatedAt,
	}
}

func ToMatchDTO(m *model.Match, viewerID uuid.UUID) *MatchDTO {
	return &MatchDTO{
		ID:          m.ID,
		UserLoID:    m.UserLoID,
		UserHiID:    m.UserHiID,
		OtherUserID: m.Other(viewerID),
		CreatedAt:   m.CreatedAt,
	}
}
