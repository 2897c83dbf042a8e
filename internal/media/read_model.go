package media

import (
	"watchhive/internal/dbmysql"
)

// MediaDetail is the read model returned by the single media read path.
// The derived fields are computed per fetch and never persisted.
type MediaDetail struct {
	dbmysql.Media

	AverageScore float64 `json:"average_score"`
	VoteCount    int64   `json:"vote_count"`

	// Populated only when the fetch is viewer-aware.
	UserReview    *int  `json:"user_review,omitempty"`
	OnToWatchList *bool `json:"to_watch_list,omitempty"`
}

// RankedMedia is the lightweight projection used by ranking endpoints.
// Loading genres and comments for every row of a ranking list is not worth it.
type RankedMedia struct {
	ID           uint64  `gorm:"column:id" json:"id"`
	Title        string  `gorm:"column:title" json:"title"`
	PosterURL    string  `gorm:"column:poster_url" json:"poster_url"`
	AverageScore float64 `gorm:"column:average_score" json:"average_score"`
}
