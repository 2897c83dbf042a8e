package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"watchhive/internal/common"
	"watchhive/internal/dbmysql"
)

// MediaChecker is the slice of the catalog the review path needs.
type MediaChecker interface {
	MediaExists(ctx context.Context, mediaID uint64) (bool, error)
}

// WatchedMarker marks a title watched without failing when it already is.
type WatchedMarker interface {
	MarkWatched(ctx context.Context, userID, mediaID uint64) error
}

type ReviewService interface {
	CreateReview(ctx context.Context, mediaID, userID uint64, score int) (*dbmysql.Review, error)
	DeleteReview(ctx context.Context, reviewID, currentUserID uint64) error
}

type reviewService struct {
	repo    ReviewRepository
	media   MediaChecker
	watched WatchedMarker
}

func NewReviewService(repo ReviewRepository, media MediaChecker, watched WatchedMarker) ReviewService {
	return &reviewService{repo: repo, media: media, watched: watched}
}

// CreateReview keeps the one-review-per-(user,media) invariant: a repeat
// review updates the existing row's score in place, a first-time review
// inserts a row and marks the title watched as a side effect.
func (s *reviewService) CreateReview(ctx context.Context, mediaID, userID uint64, score int) (*dbmysql.Review, error) {
	exists, err := s.media.MediaExists(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NewNotFound("title not found on WatchHive")
	}

	if err := checkScoreValue(score); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUserAndMedia(ctx, userID, mediaID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.repo.UpdateScore(ctx, existing.ID, score); err != nil {
			return nil, err
		}
		existing.Score = score
		return existing, nil
	}

	created := &dbmysql.Review{
		UserID:  userID,
		MediaID: mediaID,
		Score:   score,
	}
	err = s.repo.Create(ctx, created)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the race against a concurrent first-time review for the same
		// (user, media). The unique index caught it; recover as an update.
		existing, err = s.repo.FindByUserAndMedia(ctx, userID, mediaID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, errors.New("review vanished during upsert recovery")
		}
		if err := s.repo.UpdateScore(ctx, existing.ID, score); err != nil {
			return nil, err
		}
		existing.Score = score
		return existing, nil
	}
	if err != nil {
		return nil, err
	}

	// First review of this title always marks it watched. The marker
	// swallows the already-present conflict, so a pre-existing membership
	// cannot fail the review creation.
	if err := s.watched.MarkWatched(ctx, userID, mediaID); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID, currentUserID uint64) error {
	review, err := s.repo.GetByID(ctx, reviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NewNotFound("review not found")
	}
	if err != nil {
		return err
	}

	if review.UserID != currentUserID {
		return common.NewPermissionError("you cannot delete another user's review")
	}

	return s.repo.Delete(ctx, reviewID)
}

func checkScoreValue(score int) error {
	if score < 1 || score > 5 {
		return common.NewBusinessError("score must be between 1 and 5")
	}
	return nil
}
