package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"watchhive/internal/dbmysql"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *dbmysql.Review) error
	// FindByUserAndMedia returns nil without error when no review exists.
	FindByUserAndMedia(ctx context.Context, userID, mediaID uint64) (*dbmysql.Review, error)
	GetByID(ctx context.Context, reviewID uint64) (*dbmysql.Review, error)
	UpdateScore(ctx context.Context, reviewID uint64, score int) error
	Delete(ctx context.Context, reviewID uint64) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *dbmysql.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByUserAndMedia(ctx context.Context, userID, mediaID uint64) (*dbmysql.Review, error) {
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
	return &review, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, reviewID uint64) (*dbmysql.Review, error) {
	var review dbmysql.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", reviewID).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) UpdateScore(ctx context.Context, reviewID uint64, score int) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Review{}).
		Where("id = ?", reviewID).
		Update("score", score).Error
}

func (r *reviewRepository) Delete(ctx context.Context, reviewID uint64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Review{}, "id = ?", reviewID).Error
}
