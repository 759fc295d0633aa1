package realtime

import (
	"belay/internal/chat/model"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
)

// Event is a single change-feed payload for the messages table. Delivery is
// at-least-once and unordered; consumers must dedupe by id and merge status
// forward-only.
type Event struct {
	Type EventType
	Old  *model.Message
	New  *model.Message
}

func (e Event) message() *model.Message {
	if e.New != nil {
		return e.New
	}
	return e.Old
}

type ScopeKind int

const (
	scopeThread ScopeKind = iota
	scopeUser
)

// Scope selects which message events a subscription receives: a single
// thread, or all messages involving one user.
type Scope struct {
	kind ScopeKind
	id   uuid.UUID
}

func ThreadScope(threadID uuid.UUID) Scope { return Scope{kind: scopeThread, id: threadID} }

func UserScope(userID uuid.UUID) Scope { return Scope{kind: scopeUser, id: userID} }

func (s Scope) Matches(e Event) bool {
	msg := e.message()
	if msg == nil {
		return false
	}
	switch s.kind {
	case scopeThread:
		return msg.ThreadID == s.id
	case scopeUser:
		return msg.SenderID == s.id || msg.ReceiverID == s.id
	}
	return false
}
