package dbmysql

import (
	"time"
)

// Review is the one 1-5 rating a user assigns to a media. The unique
// (user, media) index backs the upsert recovery path under concurrent
// first-time submissions.
type Review struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_media,unique" json:"user_id"`
	MediaID   uint64    `gorm:"column:media_id;not null;index:idx_user_media,unique" json:"media_id"`
	Score     int       `gorm:"column:score;not null" json:"score"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
