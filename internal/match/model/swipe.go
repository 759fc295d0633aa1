package model

import (
	"time"

	user "belay/internal/user/model"

	"github.com/google/uuid"
)

type SwipeAction string

const (
	ActionLike SwipeAction = "like"
	ActionPass SwipeAction = "pass"
)

func (a SwipeAction) Valid() bool {
	return a == ActionLike || a == ActionPass
}

// Swipe is append-only: rows are never mutated or deleted, a later swipe for
// the same (swiper, swipee) direction supersedes earlier ones.
type Swipe struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	SwiperID uuid.UUID  `bun:",notnull,type:uuid"`
	Swiper   *user.User `bun:"rel:belongs-to,join:swiper_id=id"`

	SwipeeID uuid.UUID  `bun:",notnull,type:uuid"`
	Swipee   *user.User `bun:"rel:belongs-to,join:swipee_id=id"`

	Action SwipeAction `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
