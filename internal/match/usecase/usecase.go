package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"belay/config"
	"belay/internal/match"
	"belay/internal/match/model"
	"belay/internal/match/repository"
	"belay/pkg/errors"
	"belay/pkg/logger"

	"github.com/google/uuid"
)

type MatchUsecase struct {
	repo   match.MatchRepository
	logger logger.Logger
	config config.Config
}

func NewMatchUsecase(repo match.MatchRepository, logger logger.Logger, config config.Config) *MatchUsecase {
	return &MatchUsecase{repo: repo, logger: logger, config: config}
}

func (uc *MatchUsecase) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.config.Realtime.OpTimeoutSeconds > 0 {
		return context.WithTimeout(ctx, time.Duration(uc.config.Realtime.OpTimeoutSeconds)*time.Second)
	}
	return ctx, func() {}
}

// Swipe appends the swipe and, when it is a like, tries to close the
// reciprocal pair. tryCreateMatch semantics: exactly one Match row may ever
// exist per unordered pair, regardless of how many times or how concurrently
// either side swipes.
func (uc *MatchUsecase) Swipe(ctx context.Context, cmd match.SwipeCommand) (*match.SwipeDTO, *match.MatchDTO, error) {
	if !cmd.Action.Valid() {
		return nil, nil, errors.ErrInvalidAction
	}
	if cmd.SwiperID == cmd.SwipeeID {
		return nil, nil, errors.ErrSelfSwipe
	}

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	swipe := &model.Swipe{
		SwiperID: cmd.SwiperID,
		SwipeeID: cmd.SwipeeID,
		Action:   cmd.Action,
	}
	if err := uc.repo.InsertSwipe(ctx, swipe); err != nil {
		uc.logger.Error("failed to record swipe", "swiper_id", cmd.SwiperID, "err", err)
		return nil, nil, errors.ErrStoreUnavailable(err)
	}

	if cmd.Action != model.ActionLike {
		return match.ToSwipeDTO(swipe), nil, nil
	}

	m, err := uc.tryCreateMatch(ctx, cmd.SwiperID, cmd.SwipeeID)
	if err != nil {
		return nil, nil, err
	}
	if m == nil {
		return match.ToSwipeDTO(swipe), nil, nil
	}
	return match.ToSwipeDTO(swipe), match.ToMatchDTO(m, cmd.SwiperID), nil
}

// tryCreateMatch returns nil when no reciprocal like exists yet. When the
// insert loses the uniqueness race against the other side's concurrent
// attempt, the existing row is fetched and returned as a success.
func (uc *MatchUsecase) tryCreateMatch(ctx context.Context, swiperID, swipeeID uuid.UUID) (*model.Match, error) {
	reverse, err := uc.repo.LatestSwipe(ctx, swipeeID, swiperID)
	if err != nil {
		uc.logger.Error("reciprocal swipe lookup failed", "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}
	if reverse == nil || reverse.Action != model.ActionLike {
		return nil, nil
	}

	lo, hi := model.SortPair(swiperID, swipeeID)
	m := &model.Match{UserLoID: lo, UserHiID: hi}
	err = uc.repo.CreateMatch(ctx, m)
	if err == nil {
		return m, nil
	}
	if !errors.IsUniqueViolation(err) {
		uc.logger.Error("match create failed", "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}

	existing, err := uc.repo.GetMatchByPair(ctx, lo, hi)
	if err != nil {
		if stderrors.Is(err, repository.ErrMatchNotFound) {
			// conflict said the row exists; a miss here is a real store fault
			return nil, errors.Internal("match row vanished after conflict")
		}
		return nil, errors.ErrStoreUnavailable(err)
	}
	return existing, nil
}

func (uc *MatchUsecase) ListMatches(ctx context.Context, userID uuid.UUID) ([]*match.MatchDTO, error) {
	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	matches, err := uc.repo.ListMatches(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to list matches", "user_id", userID, "err", err)
		return nil, errors.ErrStoreUnavailable(err)
	}

	out := make([]*match.MatchDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, match.ToMatchDTO(m, userID))
	}
	return out, nil
}
