package user

import (
	"context"

	"gorm.io/gorm"

	"watchhive/internal/dbmysql"
)

// FollowedActivity is a flattened projection of a followed user's latest
// review or comment, joined with the media it targets.
type FollowedActivity struct {
	UserID    uint64 `gorm:"column:user_id" json:"user_id"`
	Username  string `gorm:"column:username" json:"username"`
	MediaID   uint64 `gorm:"column:media_id" json:"media_id"`
	Title     string `gorm:"column:title" json:"title"`
	PosterURL string `gorm:"column:poster_url" json:"poster_url"`
	Score     int    `gorm:"column:score" json:"score,omitempty"`
	Content   string `gorm:"column:content" json:"content,omitempty"`
}

type FollowRepository interface {
	Create(ctx context.Context, follow *dbmysql.Follow) error
	Delete(ctx context.Context, followerID, followedID uint64) (int64, error)
	Followed(ctx context.Context, followerID uint64) ([]dbmysql.User, error)
	Followers(ctx context.Context, followedID uint64) ([]dbmysql.User, error)
	LatestFollowedReviews(ctx context.Context, followerID uint64, limit int) ([]FollowedActivity, error)
	LatestFollowedComments(ctx context.Context, followerID uint64, limit int) ([]FollowedActivity, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *dbmysql.Follow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followedID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&dbmysql.Follow{})
	return result.RowsAffected, result.Error
}

func (r *followRepository) Followed(ctx context.Context, followerID uint64) ([]dbmysql.User, error) {
	var users []dbmysql.User
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN follows ON follows.followed_id = users.user_id").
		Where("follows.follower_id = ?", followerID).
		Order("users.username ASC").
		Find(&users).Error
	return users, err
}

func (r *followRepository) Followers(ctx context.Context, followedID uint64) ([]dbmysql.User, error) {
	var users []dbmysql.User
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN follows ON follows.follower_id = users.user_id").
		Where("follows.followed_id = ?", followedID).
		Order("users.username ASC").
		Find(&users).Error
	return users, err
}

func (r *followRepository) LatestFollowedReviews(ctx context.Context, followerID uint64, limit int) ([]FollowedActivity, error) {
	var activity []FollowedActivity
	err := r.db.WithContext(ctx).Raw(`
		SELECT users.user_id, users.username, media.id AS media_id, media.title,
		       media.poster_url, reviews.score
		FROM reviews
		INNER JOIN follows ON follows.followed_id = reviews.user_id
		INNER JOIN users ON users.user_id = reviews.user_id
		INNER JOIN media ON media.id = reviews.media_id
		WHERE follows.follower_id = ?
		ORDER BY reviews.created_at DESC
		LIMIT ?`, followerID, limit).Scan(&activity).Error
	if activity == nil {
		activity = []FollowedActivity{}
	}
	return activity, err
}

func (r *followRepository) LatestFollowedComments(ctx context.Context, followerID uint64, limit int) ([]FollowedActivity, error) {
	var activity []FollowedActivity
	err := r.db.WithContext(ctx).Raw(`
		SELECT users.user_id, users.username, media.id AS media_id, media.title,
		       media.poster_url, media_comments.content
		FROM media_comments
		INNER JOIN follows ON follows.followed_id = media_comments.user_id
		INNER JOIN users ON users.user_id = media_comments.user_id
		INNER JOIN media ON media.id = media_comments.media_id
		WHERE follows.follower_id = ?
		ORDER BY media_comments.created_at DESC
		LIMIT ?`, followerID, limit).Scan(&activity).Error
	if activity == nil {
		activity = []FollowedActivity{}
	}
	return activity, err
}
