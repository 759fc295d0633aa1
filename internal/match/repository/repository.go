package repository

import (
	"context"
	"database/sql"

	"belay/internal/match/model"
	"belay/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type MatchRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrMatchNotFound = errors.New("match not found")
)

func NewMatchRepository(db *bun.DB, logger logger.Logger) *MatchRepository {
	return &MatchRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *MatchRepository) InsertSwipe(ctx context.Context, s *model.Swipe) error {
	_, err := r.db.NewInsert().Model(s).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "matchRepo.InsertSwipe.Insert: ")
	}
	return nil
}

func (r *MatchRepository) LatestSwipe(ctx context.Context, swiperID, swipeeID uuid.UUID) (*model.Swipe, error) {
	s := new(model.Swipe)
	err := r.db.NewSelect().
		Model(s).
		Where("swiper_id = ? AND swipee_id = ?", swiperID, swipeeID).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "matchRepo.LatestSwipe.Scan: ")
	}
	return s, nil
}

// CreateMatch lets a unique violation escape unwrapped enough for the caller
// to classify it; the conflict is part of the matching protocol.
func (r *MatchRepository) CreateMatch(ctx context.Context, m *model.Match) error {
	_, err := r.db.NewInsert().Model(m).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "matchRepo.CreateMatch.Insert: ")
	}
	return nil
}

func (r *MatchRepository) GetMatchByPair(ctx context.Context, lo, hi uuid.UUID) (*model.Match, error) {
	m := new(model.Match)
	err := r.db.NewSelect().
		Model(m).
		Where("user_lo_id = ? AND user_hi_id = ?", lo, hi).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, errors.Wrap(err, "matchRepo.GetMatchByPair.Scan: ")
	}
	return m, nil
}

func (r *MatchRepository) ListMatches(ctx context.Context, userID uuid.UUID) ([]*model.Match, error) {
	var matches []*model.Match
	err := r.db.NewSelect().
		Model(&matches).
		Where("user_lo_id = ? OR user_hi_id = ?", userID, userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "matchRepo.ListMatches.Scan: ")
	}
	return matches, nil
}

// ListLikesReceived keeps only each swiper's latest swipe toward userID (the
// append-only log means earlier rows are superseded) and filters out pairs
// that already matched.
func (r *MatchRepository) ListLikesReceived(ctx context.Context, userID uuid.UUID) ([]*model.Swipe, error) {
	var swipes []*model.Swipe
	err := r.db.NewSelect().
		Model(&swipes).
		Where("id IN (SELECT DISTINCT ON (swiper_id) id FROM swipes WHERE swipee_id = ? ORDER BY swiper_id, created_at DESC)", userID).
		Where("action = ?", model.ActionLike).
		Where("NOT EXISTS (SELECT 1 FROM matches WHERE user_lo_id = least(swipe.swiper_id, swipe.swipee_id) AND user_hi_id = greatest(swipe.swiper_id, swipe.swipee_id))").
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "matchRepo.ListLikesReceived.Scan: ")
	}
	return swipes, nil
}
