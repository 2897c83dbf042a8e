package dbmysql

import (
	"time"
)

// PosterRef links a catalog row to its poster file stored in GridFS.
type PosterRef struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	MediaID     uint64    `gorm:"column:media_id;uniqueIndex;not null" json:"media_id"`
	FileID      string    `gorm:"column:file_id;size:24;uniqueIndex" json:"file_id"` // MongoDB ObjectID hex
	Filename    string    `gorm:"column:filename;size:255" json:"filename"`
	ContentType string    `gorm:"column:content_type;size:100" json:"content_type"`
	Size        int64     `gorm:"column:size" json:"size"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PosterRef) TableName() string {
	return "poster_refs"
}
