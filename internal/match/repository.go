package match

import (
	"context"

	"belay/internal/match/model"

	"github.com/google/uuid"
)

type MatchRepository interface {
	// InsertSwipe appends; swipes are never updated or removed.
	InsertSwipe(ctx context.Context, s *model.Swipe) error
	// LatestSwipe returns the most recent swipe in the given direction, or
	// nil when that direction has never swiped. Later rows supersede earlier
	// ones, so a pass after a like withdraws the like.
	LatestSwipe(ctx context.Context, swiperID, swipeeID uuid.UUID) (*model.Swipe, error)

	// CreateMatch inserts the canonical pair row. A unique violation means a
	// concurrent attempt from the other side won the race; callers treat it
	// as success and fetch the existing row.
	CreateMatch(ctx context.Context, m *model.Match) error
	GetMatchByPair(ctx context.Context, lo, hi uuid.UUID) (*model.Match, error)
	ListMatches(ctx context.Context, userID uuid.UUID) ([]*model.Match, error)

	// ListLikesReceived returns the latest like-swipes aimed at userID whose
	// pair has no Match row yet ("liked you" feed input).
	ListLikesReceived(ctx context.Context, userID uuid.UUID) ([]*model.Swipe, error)
}
