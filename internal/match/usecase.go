package match

import (
	"context"

	"github.com/google/uuid"
)

type MatchUsecase interface {
	// Swipe records the preference and, for a like, closes the reciprocal
	// pair when one exists. The returned MatchDTO is nil when no match
	// resulted. Idempotent and race-safe: concurrent likes from both sides
	// yield exactly one Match row for the pair.
	Swipe(ctx context.Context, cmd SwipeCommand) (*SwipeDTO, *MatchDTO, error)

	ListMatches(ctx context.Context, userID uuid.UUID) ([]*MatchDTO, error)
}
