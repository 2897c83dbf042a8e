package media

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"watchhive/internal/dbmysql"
)

// MediaRepository covers the read side of the catalog: single fetches,
// searches, and the aggregation queries the derived fields come from.
type MediaRepository interface {
	GetMedia(ctx context.Context, mediaID uint64) (*dbmysql.Media, error)
	MediaExists(ctx context.Context, mediaID uint64) (bool, error)

	AverageScore(ctx context.Context, mediaID uint64) (float64, error)
	VotesCount(ctx context.Context, mediaID uint64) (int64, error)
	UserScore(ctx context.Context, userID, mediaID uint64) (*int, error)

	BestRated(ctx context.Context, limit int) ([]RankedMedia, error)
	Recommended(ctx context.Context, userID uint64, limit int) ([]RankedMedia, error)
	SearchByTitle(ctx context.Context, term string, offset, limit int) ([]dbmysql.Media, error)
	RandomByGenre(ctx context.Context, genreID uint64, mediaType string) ([]dbmysql.Media, error)
	ByGenrePage(ctx context.Context, genreID uint64, mediaType string, offset, limit int) ([]dbmysql.Media, error)

	CreateComment(ctx context.Context, comment *dbmysql.MediaComment) error
	GetComment(ctx context.Context, commentID uint64) (*dbmysql.MediaComment, error)
	DeleteComment(ctx context.Context, commentID uint64) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) GetMedia(ctx context.Context, mediaID uint64) (*dbmysql.Media, error) {
	var media dbmysql.Media
	err := r.db.WithContext(ctx).
		Preload("Genres").
		Preload("Comments").
		First(&media, "id = ?", mediaID).Error
	if err != nil {
		return nil, err
	}

	return &media, nil
}

func (r *mediaRepository) MediaExists(ctx context.Context, mediaID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.Media{}).Where("id = ?", mediaID).Count(&count).Error
	return count > 0, err
}

// AverageScore returns the mean of all review scores for one media,
// 0 when no reviews exist.
func (r *mediaRepository) AverageScore(ctx context.Context, mediaID uint64) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(AVG(score), 0) FROM reviews WHERE media_id = ?", mediaID).
		Scan(&avg).Error
	return avg, err
}

func (r *mediaRepository) VotesCount(ctx context.Context, mediaID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.Review{}).Where("media_id = ?", mediaID).Count(&count).Error
	return count, err
}

// UserScore returns the viewer's own review score for a media, nil when the
// viewer never reviewed it.
func (r *mediaRepository) UserScore(ctx context.Context, userID, mediaID uint64) (*int, error) {
	var review dbmysql.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND media_id = ?", userID, mediaID).
		First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &review.Score, nil
}

// BestRated ranks media by mean review score. The inner join keeps media with
// zero reviews out of the ranking no matter how popular they are.
func (r *mediaRepository) BestRated(ctx context.Context, limit int) ([]RankedMedia, error) {
	var ranked []RankedMedia
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.id, m.title, m.poster_url, AVG(r.score) AS average_score
		FROM media m
		INNER JOIN reviews r ON r.media_id = m.id
		GROUP BY m.id, m.title, m.poster_url
		ORDER BY average_score DESC
		LIMIT ?`, limit).
		Scan(&ranked).Error
	if ranked == nil {
		ranked = []RankedMedia{}
	}
	return ranked, err
}

// Recommended chains four derivation stages: the user's most recent review,
// the genres of that title, candidate titles sharing a genre (minus the title
// itself and everything already watched), ranked by the community-wide
// average score.
func (r *mediaRepository) Recommended(ctx context.Context, userID uint64, limit int) ([]RankedMedia, error) {
	lastMediaID, found, err := r.lastReviewedMedia(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		// Nothing to anchor the recommendation on. Not an error.
		return []RankedMedia{}, nil
	}

	genreIDs, err := r.genreIDsOf(ctx, lastMediaID)
	if err != nil {
		return nil, err
	}
	if len(genreIDs) == 0 {
		return []RankedMedia{}, nil
	}

	return r.rankCandidates(ctx, userID, lastMediaID, genreIDs, limit)
}

// lastReviewedMedia is stage one: the media of the user's most recently
// created review. Ties on created_at break toward the newer row.
func (r *mediaRepository) lastReviewedMedia(ctx context.Context, userID uint64) (uint64, bool, error) {
	var review dbmysql.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return review.MediaID, true, nil
}

// genreIDsOf is stage two: the genre set of one media.
func (r *mediaRepository) genreIDsOf(ctx context.Context, mediaID uint64) ([]uint64, error) {
	var genreIDs []uint64
	err := r.db.WithContext(ctx).
		Raw("SELECT genre_id FROM media_genres WHERE media_id = ?", mediaID).
		Scan(&genreIDs).Error
	return genreIDs, err
}

// rankCandidates is stages three and four: candidates sharing at least one
// genre, excluding the anchor title and the user's WATCHED list, ranked by
// the average score across all reviewers. Candidates nobody has reviewed
// cannot be ranked and are excluded, same policy as BestRated.
func (r *mediaRepository) rankCandidates(ctx context.Context, userID, excludeMediaID uint64, genreIDs []uint64, limit int) ([]RankedMedia, error) {
	var ranked []RankedMedia
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.id, m.title, m.poster_url, AVG(r.score) AS average_score
		FROM media m
		INNER JOIN media_genres mg ON mg.media_id = m.id
		INNER JOIN reviews r ON r.media_id = m.id
		WHERE mg.genre_id IN ?
		  AND m.id <> ?
		  AND m.id NOT IN (
			SELECT ulm.media_id
			FROM user_list_media ulm
			INNER JOIN user_lists ul ON ul.id = ulm.user_list_id
			WHERE ul.user_id = ? AND ul.name = ?
		  )
		GROUP BY m.id, m.title, m.poster_url
		ORDER BY average_score DESC
		LIMIT ?`,
		genreIDs, excludeMediaID, userID, dbmysql.ListWatched, limit).
		Scan(&ranked).Error
	if ranked == nil {
		ranked = []RankedMedia{}
	}
	return ranked, err
}

// SearchByTitle is a case-insensitive substring match. An empty term matches
// everything.
func (r *mediaRepository) SearchByTitle(ctx context.Context, term string, offset, limit int) ([]dbmysql.Media, error) {
	var medias []dbmysql.Media
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("title ASC").
		Offset(offset).
		Limit(limit).
		Find(&medias).Error
	if medias == nil {
		medias = []dbmysql.Media{}
	}
	return medias, err
}

func (r *mediaRepository) RandomByGenre(ctx context.Context, genreID uint64, mediaType string) ([]dbmysql.Media, error) {
	var medias []dbmysql.Media
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN media_genres mg ON mg.media_id = media.id").
		Where("mg.genre_id = ? AND media.media_type = ?", genreID, mediaType).
		Order("RAND()").
		Limit(20).
		Find(&medias).Error
	if medias == nil {
		medias = []dbmysql.Media{}
	}
	return medias, err
}

func (r *mediaRepository) ByGenrePage(ctx context.Context, genreID uint64, mediaType string, offset, limit int) ([]dbmysql.Media, error) {
	var medias []dbmysql.Media
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN media_genres mg ON mg.media_id = media.id").
		Where("mg.genre_id = ? AND media.media_type = ?", genreID, mediaType).
		Order("media.popularity DESC").
		Offset(offset).
		Limit(limit).
		Find(&medias).Error
	if medias == nil {
		medias = []dbmysql.Media{}
	}
	return medias, err
}

func (r *mediaRepository) CreateComment(ctx context.Context, comment *dbmysql.MediaComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *mediaRepository) GetComment(ctx context.Context, commentID uint64) (*dbmysql.MediaComment, error) {
	var comment dbmysql.MediaComment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", commentID).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *mediaRepository) DeleteComment(ctx context.Context, commentID uint64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.MediaComment{}, "id = ?", commentID).Error
}
