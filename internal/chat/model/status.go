package model

import "strings"

// MessageStatus is the per-message delivery state. The order
// sent < delivered < read is total and transitions are forward-only: a
// message never moves backward, and clients merge observed values with
// MaxStatus instead of overwriting.
type MessageStatus string

const (
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusRead      MessageStatus = "read"
)

// ParseStatus folds case before matching; external writers have historically
// stored status strings in either case. Unknown values parse as StatusSent.
func ParseStatus(s string) MessageStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(StatusRead):
		return StatusRead
	case string(StatusDelivered):
		return StatusDelivered
	default:
		return StatusSent
	}
}

func (s MessageStatus) Rank() int {
	switch ParseStatus(string(s)) {
	case StatusRead:
		return 2
	case StatusDelivered:
		return 1
	default:
		return 0
	}
}

func (s MessageStatus) IsRead() bool { return ParseStatus(string(s)) == StatusRead }

// MaxStatus returns the later of two statuses under the delivery order.
func MaxStatus(a, b MessageStatus) MessageStatus {
	if b.Rank() > a.Rank() {
		return ParseStatus(string(b))
	}
	return ParseStatus(string(a))
}
