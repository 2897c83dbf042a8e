package userlist

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"watchhive/internal/common"
	"watchhive/internal/dbmysql"
)

// MediaChecker is the slice of the catalog the list subsystem needs.
type MediaChecker interface {
	MediaExists(ctx context.Context, mediaID uint64) (bool, error)
}

type ListService interface {
	AddToList(ctx context.Context, userID, mediaID uint64, listName string) error
	// MarkWatched adds to the WATCHED list but suppresses the duplicate
	// conflict, so the review path can call it idempotently.
	MarkWatched(ctx context.Context, userID, mediaID uint64) error
	RemoveFromList(ctx context.Context, userID, mediaID uint64, listName string) error
	Contains(ctx context.Context, userID, mediaID uint64, listName string) (bool, error)
	ListMedia(ctx context.Context, userID uint64, listName string) ([]dbmysql.Media, error)
}

type listService struct {
	repo  ListRepository
	media MediaChecker
}

func NewListService(repo ListRepository, media MediaChecker) ListService {
	return &listService{repo: repo, media: media}
}

func (s *listService) AddToList(ctx context.Context, userID, mediaID uint64, listName string) error {
	exists, err := s.media.MediaExists(ctx, mediaID)
	if err != nil {
		return err
	}
	if !exists {
		return common.NewNotFound("title not found on WatchHive")
	}

	list, err := s.repo.GetList(ctx, userID, listName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NewNotFound("user list not found")
	}
	if err != nil {
		return err
	}

	err = s.repo.AddMedia(ctx, list.ID, mediaID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.NewBusinessError("title already added to the list")
	}
	return err
}

func (s *listService) MarkWatched(ctx context.Context, userID, mediaID uint64) error {
	err := s.AddToList(ctx, userID, mediaID, dbmysql.ListWatched)
	if common.IsBusinessError(err) {
		return nil
	}
	return err
}

func (s *listService) RemoveFromList(ctx context.Context, userID, mediaID uint64, listName string) error {
	exists, err := s.media.MediaExists(ctx, mediaID)
	if err != nil {
		return err
	}
	if !exists {
		return common.NewNotFound("title not found on WatchHive")
	}

	list, err := s.repo.GetList(ctx, userID, listName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NewNotFound("user list not found")
	}
	if err != nil {
		return err
	}

	removed, err := s.repo.RemoveMedia(ctx, list.ID, mediaID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return common.NewNotFound("title not found on your list")
	}
	return nil
}

func (s *listService) Contains(ctx context.Context, userID, mediaID uint64, listName string) (bool, error) {
	return s.repo.Contains(ctx, userID, mediaID, listName)
}

func (s *listService) ListMedia(ctx context.Context, userID uint64, listName string) ([]dbmysql.Media, error) {
	list, err := s.repo.GetList(ctx, userID, listName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewNotFound("user list not found")
	}
	if err != nil {
		return nil, err
	}

	return s.repo.ListMedia(ctx, list.ID)
}
