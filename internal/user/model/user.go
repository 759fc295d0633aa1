package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the minimal reference shape the messaging core needs for relations.
// Account management, sessions and profile data live outside this module.
type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Username = unique @handle (used for identity)
	Username string `bun:",unique,notnull"`

	// Name = display name shown in chats (can be changed freely)
	Name string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
