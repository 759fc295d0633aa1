package model

import (
	"time"

	user "belay/internal/user/model"

	"github.com/google/uuid"
)

type Message struct {
	ID       uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	ThreadID uuid.UUID `bun:",notnull,type:uuid"`
	Thread   *Thread   `bun:"rel:belongs-to,join:thread_id=id"`

	SenderID uuid.UUID  `bun:",notnull,type:uuid"`
	Sender   *user.User `bun:"rel:belongs-to,join:sender_id=id"`

	// For direct threads the other endpoint; for group threads a placeholder
	// equal to the sender. Group delivery is fan-out, not point-to-point, so
	// the field carries no meaning there.
	ReceiverID uuid.UUID `bun:",notnull,type:uuid"`

	Body   string        `bun:",notnull"`
	Status MessageStatus `bun:",notnull,default:'sent'"`

	// Immutable; defines display ordering within a thread regardless of
	// network arrival order.
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
