package dbmysql

import (
	"time"
)

const (
	MediaTypeMovie  = "movie"
	MediaTypeSeries = "series"
)

// Media rows are seeded from an external catalog source, so ids come with the
// data instead of being generated here.
type Media struct {
	ID               uint64     `gorm:"primaryKey;column:id" json:"id"`
	ImdbID           string     `gorm:"column:imdb_id;uniqueIndex;size:20" json:"imdb_id"`
	Title            string     `gorm:"column:title;index;size:255;not null" json:"title"`
	OriginalTitle    string     `gorm:"column:original_title;size:255" json:"original_title"`
	Description      string     `gorm:"column:description;type:text" json:"description"`
	LaunchDate       *time.Time `gorm:"column:launch_date" json:"launch_date"`
	OriginalLanguage string     `gorm:"column:original_language;size:10" json:"original_language"`
	MediaType        string     `gorm:"column:media_type;type:enum('movie','series');not null" json:"media_type"`
	PosterURL        string     `gorm:"column:poster_url;size:500" json:"poster_url"`
	Popularity       float64    `gorm:"column:popularity" json:"popularity"`
	VoteAverage      float64    `gorm:"column:vote_average" json:"vote_average"`
	VoteCount        int64      `gorm:"column:vote_count" json:"vote_count"`
	Adult            bool       `gorm:"column:adult;default:false" json:"adult"`

	Genres   []Genre        `gorm:"many2many:media_genres" json:"genres"`
	Comments []MediaComment `gorm:"foreignKey:MediaID" json:"comments"`
}

func (Media) TableName() string {
	return "media"
}

type Genre struct {
	ID   uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"column:name;uniqueIndex;size:100;not null" json:"name"`
}

type MediaComment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	MediaID   uint64    `gorm:"column:media_id;index;not null" json:"media_id"`
	UserID    uint64    `gorm:"column:user_id;index;not null" json:"user_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
