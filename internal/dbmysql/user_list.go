package dbmysql

import (
	"time"
)

// Well-known list kinds. Both are created when the user account is created.
const (
	ListWatched = "watched"
	ListToWatch = "to_watch"
)

type UserList struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint64 `gorm:"column:user_id;not null;index:idx_user_list,unique" json:"user_id"`
	Name   string `gorm:"column:name;size:20;not null;index:idx_user_list,unique" json:"name"`
}

type UserListMedia struct {
	UserListID uint64    `gorm:"primaryKey;column:user_list_id" json:"user_list_id"`
	MediaID    uint64    `gorm:"primaryKey;column:media_id" json:"media_id"`
	AddedAt    time.Time `gorm:"column:added_at;autoCreateTime" json:"added_at"`
}

func (UserListMedia) TableName() string {
	return "user_list_media"
}
