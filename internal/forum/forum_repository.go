package forum

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"watchhive/internal/dbmysql"
)

type ForumRepository interface {
	// CreateGroup stores a group and its initial participant set atomically.
	CreateGroup(ctx context.Context, group *dbmysql.ForumGroup, participantIDs []uint64) error
	GetGroup(ctx context.Context, groupID uint64) (*dbmysql.ForumGroup, error)
	UpdateGroup(ctx context.Context, group *dbmysql.ForumGroup) error
	DeleteGroup(ctx context.Context, groupID uint64) error
	GroupsCreatedBy(ctx context.Context, userID uint64) ([]dbmysql.ForumGroup, error)
	GroupsParticipatedBy(ctx context.Context, userID uint64) ([]dbmysql.ForumGroup, error)

	AddParticipant(ctx context.Context, participant *dbmysql.ForumParticipant) error
	RemoveParticipant(ctx context.Context, groupID, userID uint64) (int64, error)
	IsParticipant(ctx context.Context, groupID, userID uint64) (bool, error)

	CreateMessage(ctx context.Context, message *dbmysql.ForumMessage) error
	GetMessage(ctx context.Context, messageID uint64) (*dbmysql.ForumMessage, error)
	DeleteMessage(ctx context.Context, messageID uint64) error
	ListMessages(ctx context.Context, groupID uint64) ([]dbmysql.ForumMessage, error)

	CreatePost(ctx context.Context, post *dbmysql.ForumPost) error
	GetPost(ctx context.Context, postID uint64) (*dbmysql.ForumPost, error)
	UpdatePost(ctx context.Context, post *dbmysql.ForumPost) error
	DeletePost(ctx context.Context, postID uint64) error
	ListPosts(ctx context.Context, offset, limit int) ([]dbmysql.ForumPost, error)
}

type forumRepository struct {
	db *gorm.DB
}

func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

func (r *forumRepository) CreateGroup(ctx context.Context, group *dbmysql.ForumGroup, participantIDs []uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}

		participants := make([]dbmysql.ForumParticipant, 0, len(participantIDs))
		for _, id := range participantIDs {
			participants = append(participants, dbmysql.ForumParticipant{
				ForumGroupID: group.ID,
				UserID:       id,
			})
		}
		return tx.Create(&participants).Error
	})
}

func (r *forumRepository) GetGroup(ctx context.Context, groupID uint64) (*dbmysql.ForumGroup, error) {
	var group dbmysql.ForumGroup
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("forum_messages.created_at ASC")
		}).
		First(&group, "id = ?", groupID).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *forumRepository) UpdateGroup(ctx context.Context, group *dbmysql.ForumGroup) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.ForumGroup{}).
		Where("id = ?", group.ID).
		Updates(map[string]interface{}{"title": group.Title, "content": group.Content}).Error
}

func (r *forumRepository) DeleteGroup(ctx context.Context, groupID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&dbmysql.ForumMessage{}, "forum_group_id = ?", groupID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&dbmysql.ForumParticipant{}, "forum_group_id = ?", groupID).Error; err != nil {
			return err
		}
		return tx.Delete(&dbmysql.ForumGroup{}, "id = ?", groupID).Error
	})
}

func (r *forumRepository) GroupsCreatedBy(ctx context.Context, userID uint64) ([]dbmysql.ForumGroup, error) {
	var groups []dbmysql.ForumGroup
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&groups).Error
	return groups, err
}

func (r *forumRepository) GroupsParticipatedBy(ctx context.Context, userID uint64) ([]dbmysql.ForumGroup, error) {
	var groups []dbmysql.ForumGroup
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN forum_participants fp ON fp.forum_group_id = forum_groups.id").
		Where("fp.user_id = ?", userID).
		Order("forum_groups.created_at DESC").
		Find(&groups).Error
	return groups, err
}

func (r *forumRepository) AddParticipant(ctx context.Context, participant *dbmysql.ForumParticipant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *forumRepository) RemoveParticipant(ctx context.Context, groupID, userID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("forum_group_id = ? AND user_id = ?", groupID, userID).
		Delete(&dbmysql.ForumParticipant{})
	return result.RowsAffected, result.Error
}

func (r *forumRepository) IsParticipant(ctx context.Context, groupID, userID uint64) (bool, error) {
	var participant dbmysql.ForumParticipant
	err := r.db.WithContext(ctx).
		Where("forum_group_id = ? AND user_id = ?", groupID, userID).
		First(&participant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *forumRepository) CreateMessage(ctx context.Context, message *dbmysql.ForumMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *forumRepository) GetMessage(ctx context.Context, messageID uint64) (*dbmysql.ForumMessage, error) {
	var message dbmysql.ForumMessage
	err := r.db.WithContext(ctx).First(&message, "id = ?", messageID).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *forumRepository) DeleteMessage(ctx context.Context, messageID uint64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.ForumMessage{}, "id = ?", messageID).Error
}

func (r *forumRepository) ListMessages(ctx context.Context, groupID uint64) ([]dbmysql.ForumMessage, error) {
	var messages []dbmysql.ForumMessage
	err := r.db.WithContext(ctx).
		Where("forum_group_id = ?", groupID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *forumRepository) CreatePost(ctx context.Context, post *dbmysql.ForumPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *forumRepository) GetPost(ctx context.Context, postID uint64) (*dbmysql.ForumPost, error) {
	var post dbmysql.ForumPost
	err := r.db.WithContext(ctx).First(&post, "id = ?", postID).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *forumRepository) UpdatePost(ctx context.Context, post *dbmysql.ForumPost) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.ForumPost{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{"title": post.Title, "content": post.Content}).Error
}

func (r *forumRepository) DeletePost(ctx context.Context, postID uint64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.ForumPost{}, "id = ?", postID).Error
}

func (r *forumRepository) ListPosts(ctx context.Context, offset, limit int) ([]dbmysql.ForumPost, error) {
	var posts []dbmysql.ForumPost
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, err
}
