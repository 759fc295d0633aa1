package model

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// Match records a reciprocal like. The pair is stored in canonical order so
// that (A,B) and (B,A) collide to the same row.
type Match struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	UserLoID uuid.UUID `bun:",notnull,type:uuid"`
	UserHiID uuid.UUID `bun:",notnull,type:uuid"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Unique index in migration:
	// CREATE UNIQUE INDEX idx_match_pair ON matches(user_lo_id, user_hi_id);
}

// SortPair returns the two ids in canonical order, the lexicographically
// smaller one first. Symmetric: SortPair(a,b) == SortPair(b,a).
func SortPair(a, b uuid.UUID) (lo, hi uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}
	return b, a
}

// Other returns the counterpart of userID in the match, or uuid.Nil when
// userID is not part of it.
func (m *Match) Other(userID uuid.UUID) uuid.UUID {
	switch userID {
	case m.UserLoID:
		return m.UserHiID
	case m.UserHiID:
		return m.UserLoID
	}
	return uuid.Nil
}
