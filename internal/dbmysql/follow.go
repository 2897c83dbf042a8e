package dbmysql

import (
	"time"
)

type Follow struct {
	FollowerID uint64    `gorm:"primaryKey;column:follower_id" json:"follower_id"`
	FollowedID uint64    `gorm:"primaryKey;column:followed_id" json:"followed_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
