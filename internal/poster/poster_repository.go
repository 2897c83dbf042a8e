package poster

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"watchhive/internal/dbmysql"
)

type PosterRepository interface {
	Upsert(ctx context.Context, ref *dbmysql.PosterRef) error
	GetByMediaID(ctx context.Context, mediaID uint64) (*dbmysql.PosterRef, error)
	DeleteByMediaID(ctx context.Context, mediaID uint64) (int64, error)
}

type posterRepository struct {
	db *gorm.DB
}

func NewPosterRepository(db *gorm.DB) PosterRepository {
	return &posterRepository{db: db}
}

// Upsert replaces any existing ref for the media so each catalog row
// keeps at most one poster.
func (r *posterRepository) Upsert(ctx context.Context, ref *dbmysql.PosterRef) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing dbmysql.PosterRef
		err := tx.First(&existing, "media_id = ?", ref.MediaID).Error
		switch {
		case err == nil:
			ref.ID = existing.ID
			ref.CreatedAt = existing.CreatedAt
			return tx.Save(ref).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(ref).Error
		default:
			return err
		}
	})
}

func (r *posterRepository) GetByMediaID(ctx context.Context, mediaID uint64) (*dbmysql.PosterRef, error) {
	var ref dbmysql.PosterRef
	if err := r.db.WithContext(ctx).First(&ref, "media_id = ?", mediaID).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *posterRepository) DeleteByMediaID(ctx context.Context, mediaID uint64) (int64, error) {
	result := r.db.WithContext(ctx).Where("media_id = ?", mediaID).Delete(&dbmysql.PosterRef{})
	return result.RowsAffected, result.Error
}
