package media

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"watchhive/internal/common"
	"watchhive/internal/dbmysql"
)

const defaultLimit = 50

// ListChecker is the slice of the list subsystem the catalog needs: a
// membership probe for the viewer-aware read path.
type ListChecker interface {
	Contains(ctx context.Context, userID, mediaID uint64, listName string) (bool, error)
}

type MediaService interface {
	GetMedia(ctx context.Context, mediaID uint64, viewerID *uint64) (*MediaDetail, error)
	BestRated(ctx context.Context, limit int) ([]RankedMedia, error)
	Recommended(ctx context.Context, userID uint64, limit int) ([]RankedMedia, error)
	SearchByTitle(ctx context.Context, term string, offset, limit int) ([]dbmysql.Media, error)
	RandomByGenre(ctx context.Context, genreID uint64, mediaType string) ([]dbmysql.Media, error)
	ByGenrePage(ctx context.Context, genreID uint64, mediaType string, offset, limit int) ([]dbmysql.Media, error)
	CreateComment(ctx context.Context, mediaID, userID uint64, content string) (*dbmysql.MediaComment, error)
	DeleteComment(ctx context.Context, mediaID, commentID, currentUserID uint64) error
}

type mediaService struct {
	repo  MediaRepository
	lists ListChecker
}

func NewMediaService(repo MediaRepository, lists ListChecker) MediaService {
	return &mediaService{repo: repo, lists: lists}
}

// GetMedia is the single read path every media-facing operation funnels
// through: it loads the row with its associations and attaches the derived
// fields, so callers always see a consistently assembled MediaDetail.
func (s *mediaService) GetMedia(ctx context.Context, mediaID uint64, viewerID *uint64) (*MediaDetail, error) {
	m, err := s.repo.GetMedia(ctx, mediaID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewNotFound("title not found on WatchHive")
	}
	if err != nil {
		return nil, err
	}

	avg, err := s.repo.AverageScore(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	votes, err := s.repo.VotesCount(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	detail := &MediaDetail{
		Media:        *m,
		AverageScore: avg,
		VoteCount:    votes,
	}

	if viewerID != nil {
		score, err := s.repo.UserScore(ctx, *viewerID, mediaID)
		if err != nil {
			return nil, err
		}
		detail.UserReview = score

		onList, err := s.lists.Contains(ctx, *viewerID, mediaID, dbmysql.ListToWatch)
		if err != nil {
			return nil, err
		}
		detail.OnToWatchList = &onList
	}

	return detail, nil
}

func (s *mediaService) BestRated(ctx context.Context, limit int) ([]RankedMedia, error) {
	return s.repo.BestRated(ctx, normalizeLimit(limit))
}

func (s *mediaService) Recommended(ctx context.Context, userID uint64, limit int) ([]RankedMedia, error) {
	return s.repo.Recommended(ctx, userID, normalizeLimit(limit))
}

func (s *mediaService) SearchByTitle(ctx context.Context, term string, offset, limit int) ([]dbmysql.Media, error) {
	return s.repo.SearchByTitle(ctx, term, normalizeOffset(offset), normalizeLimit(limit))
}

func (s *mediaService) RandomByGenre(ctx context.Context, genreID uint64, mediaType string) ([]dbmysql.Media, error) {
	return s.repo.RandomByGenre(ctx, genreID, mediaType)
}

func (s *mediaService) ByGenrePage(ctx context.Context, genreID uint64, mediaType string, offset, limit int) ([]dbmysql.Media, error) {
	return s.repo.ByGenrePage(ctx, genreID, mediaType, normalizeOffset(offset), normalizeLimit(limit))
}

func (s *mediaService) CreateComment(ctx context.Context, mediaID, userID uint64, content string) (*dbmysql.MediaComment, error) {
	exists, err := s.repo.MediaExists(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NewNotFound("title not found on WatchHive")
	}

	if content == "" {
		return nil, common.NewBusinessError("comment content cannot be empty")
	}

	comment := &dbmysql.MediaComment{
		MediaID: mediaID,
		UserID:  userID,
		Content: content,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// DeleteComment is author-only.
func (s *mediaService) DeleteComment(ctx context.Context, mediaID, commentID, currentUserID uint64) error {
	comment, err := s.repo.GetComment(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NewNotFound("comment not found")
	}
	if err != nil {
		return err
	}

	if comment.MediaID != mediaID {
		return common.NewNotFound("comment not found")
	}
	if comment.UserID != currentUserID {
		return common.NewPermissionError("you cannot delete another user's comment")
	}

	return s.repo.DeleteComment(ctx, commentID)
}

func normalizeLimit(limit int) int {
	if limit < 1 {
		return defaultLimit
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
