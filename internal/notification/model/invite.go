package model

import (
	"time"

	chat "belay/internal/chat/model"
	user "belay/internal/user/model"

	"github.com/google/uuid"
)

type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteDeclined InviteStatus = "declined"
)

// GroupInvite asks a user into a gym/event/crew thread. Deliberately no
// unique constraint on (inviter, invitee, thread): duplicate rows exist in
// the wild, and answering one must sweep all pending duplicates of the
// triple so a stale row cannot resurface the invite.
type GroupInvite struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	InviterID uuid.UUID  `bun:",notnull,type:uuid"`
	Inviter   *user.User `bun:"rel:belongs-to,join:inviter_id=id"`

	InviteeID uuid.UUID  `bun:",notnull,type:uuid"`
	Invitee   *user.User `bun:"rel:belongs-to,join:invitee_id=id"`

	ThreadID uuid.UUID    `bun:",notnull,type:uuid"`
	Thread   *chat.Thread `bun:"rel:belongs-to,join:thread_id=id"`

	Status InviteStatus `bun:",notnull,default:'pending'"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
