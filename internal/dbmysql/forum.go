package dbmysql

import (
	"time"
)

type ForumGroup struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;size:255;not null" json:"title"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	UserID    uint64    `gorm:"column:user_id;index;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Messages []ForumMessage `gorm:"foreignKey:ForumGroupID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}

type ForumParticipant struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ForumGroupID uint64    `gorm:"column:forum_group_id;not null;index:idx_group_user,unique" json:"forum_group_id"`
	UserID       uint64    `gorm:"column:user_id;not null;index:idx_group_user,unique" json:"user_id"`
	JoinedAt     time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
}

type ForumMessage struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ForumGroupID uint64    `gorm:"column:forum_group_id;index;not null" json:"forum_group_id"`
	UserID       uint64    `gorm:"column:user_id;index;not null" json:"user_id"`
	Content      string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

type ForumPost struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;size:255;not null" json:"title"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	UserID    uint64    `gorm:"column:user_id;index;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
