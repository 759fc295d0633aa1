package model

import (
	"time"

	"github.com/google/uuid"
)

type ThreadKind string

const (
	ThreadDirect ThreadKind = "direct"
	ThreadGym    ThreadKind = "gym"
	ThreadEvent  ThreadKind = "event"
	ThreadCrew   ThreadKind = "crew"
)

func (k ThreadKind) IsDirect() bool { return k == ThreadDirect }

type Thread struct {
	ID   uuid.UUID  `bun:",pk,type:uuid,default:gen_random_uuid()"`
	Kind ThreadKind `bun:",notnull"`

	// Direct threads only: the two fixed endpoints. Group threads leave both
	// unset and track membership through ThreadParticipant rows instead.
	UserAID uuid.UUID `bun:",nullzero,type:uuid"`
	UserBID uuid.UUID `bun:",nullzero,type:uuid"`

	// Group threads only: the owning catalog entity (gym/event/crew) and a
	// display title.
	CatalogID *uuid.UUID `bun:",type:uuid"`
	Title     string     `bun:",null"`

	// Denormalized cache of the newest message, refreshed on every send.
	// Not a source of truth; a crash between message insert and this update
	// is an accepted, self-healing inconsistency.
	LastMessageBody string     `bun:",null"`
	LastMessageAt   *time.Time `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Unique index in migration:
	// CREATE UNIQUE INDEX idx_direct_pair ON threads(least(user_a_id,user_b_id), greatest(user_a_id,user_b_id)) WHERE kind = 'direct';
}

// Endpoint returns the other endpoint of a direct thread, or uuid.Nil when
// userID is not an endpoint or the thread is not direct.
func (t *Thread) Endpoint(userID uuid.UUID) uuid.UUID {
	if !t.Kind.IsDirect() {
		return uuid.Nil
	}
	switch userID {
	case t.UserAID:
		return t.UserBID
	case t.UserBID:
		return t.UserAID
	}
	return uuid.Nil
}

func (t *Thread) HasEndpoint(userID uuid.UUID) bool {
	return t.Kind.IsDirect() && (t.UserAID == userID || t.UserBID == userID)
}
