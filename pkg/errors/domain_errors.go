package errors

var (
	// Thread / membership errors
	ErrNotAParticipant = Forbidden("user is not a participant of this thread")
	ErrThreadNotFound  = NotFound("thread not found")
	ErrMessageNotFound = NotFound("message not found")
	ErrEmptyBody       = InvalidArg("message body cannot be empty")
	ErrDirectEndpoints = InvalidArg("direct thread requires exactly two distinct endpoints")

	// Swipe / match errors
	ErrSelfSwipe     = InvalidArg("cannot swipe on yourself")
	ErrInvalidAction = InvalidArg("swipe action must be like or pass")
	ErrMatchNotFound = NotFound("match not found")

	// Notification errors
	ErrInviteNotFound = NotFound("invite not found")
	ErrNotInvitee     = Forbidden("only the invited user can answer this invite")
)

func ErrStoreUnavailable(cause error) error {
	return Wrap(CodeUnavailable, "store unavailable", cause)
}
