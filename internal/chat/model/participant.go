package model

import (
	"time"

	user "belay/internal/user/model"

	"github.com/google/uuid"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type ThreadParticipant struct {
	ThreadID uuid.UUID `bun:",pk,type:uuid"`
	Thread   *Thread   `bun:"rel:belongs-to,join:thread_id=id"`

	UserID uuid.UUID  `bun:",pk,type:uuid"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	Role string `bun:",notnull,default:'member'"`

	JoinedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
