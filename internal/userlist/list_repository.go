package userlist

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"watchhive/internal/dbmysql"
)

type ListRepository interface {
	// CreateDefaultLists makes the WATCHED and TO_WATCH lists for a new user.
	CreateDefaultLists(ctx context.Context, userID uint64) error
	GetList(ctx context.Context, userID uint64, listName string) (*dbmysql.UserList, error)
	AddMedia(ctx context.Context, listID, mediaID uint64) error
	RemoveMedia(ctx context.Context, listID, mediaID uint64) (int64, error)
	Contains(ctx context.Context, userID, mediaID uint64, listName string) (bool, error)
	ListMedia(ctx context.Context, listID uint64) ([]dbmysql.Media, error)
}

type listRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepository{db: db}
}

func (r *listRepository) CreateDefaultLists(ctx context.Context, userID uint64) error {
	lists := []dbmysql.UserList{
		{UserID: userID, Name: dbmysql.ListWatched},
		{UserID: userID, Name: dbmysql.ListToWatch},
	}
	return r.db.WithContext(ctx).Create(&lists).Error
}

func (r *listRepository) GetList(ctx context.Context, userID uint64, listName string) (*dbmysql.UserList, error) {
	var list dbmysql.UserList
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, listName).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// AddMedia inserts a membership row. The composite primary key turns a
// duplicate insertion into gorm.ErrDuplicatedKey for the caller to interpret.
func (r *listRepository) AddMedia(ctx context.Context, listID, mediaID uint64) error {
	entry := dbmysql.UserListMedia{
		UserListID: listID,
		MediaID:    mediaID,
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *listRepository) RemoveMedia(ctx context.Context, listID, mediaID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_list_id = ? AND media_id = ?", listID, mediaID).
		Delete(&dbmysql.UserListMedia{})
	return result.RowsAffected, result.Error
}

func (r *listRepository) Contains(ctx context.Context, userID, mediaID uint64, listName string) (bool, error) {
	var entry dbmysql.UserListMedia
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN user_lists ul ON ul.id = user_list_media.user_list_id").
		Where("ul.user_id = ? AND ul.name = ? AND user_list_media.media_id = ?", userID, listName, mediaID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *listRepository) ListMedia(ctx context.Context, listID uint64) ([]dbmysql.Media, error) {
	var medias []dbmysql.Media
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN user_list_media ulm ON ulm.media_id = media.id").
		Where("ulm.user_list_id = ?", listID).
		Order("ulm.added_at DESC").
		Find(&medias).Error
	return medias, err
}
