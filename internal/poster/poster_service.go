package poster

import (
	"context"
	"errors"
	"io"

	"gorm.io/gorm"

	"watchhive/internal/common"
	"watchhive/internal/dbmongo"
	"watchhive/internal/dbmysql"
)

// MediaChecker guards uploads against posters for unknown catalog rows.
type MediaChecker interface {
	MediaExists(ctx context.Context, mediaID uint64) (bool, error)
}

type PosterService interface {
	Upload(ctx context.Context, mediaID uint64, filename, contentType string, content io.Reader) (*dbmysql.PosterRef, error)
	Download(ctx context.Context, mediaID uint64) (io.Reader, *dbmysql.PosterRef, error)
	Delete(ctx context.Context, mediaID uint64) error
}

type posterService struct {
	refs    PosterRepository
	storage *dbmongo.PosterStorage
	medias  MediaChecker
}

func NewPosterService(refs PosterRepository, storage *dbmongo.PosterStorage, medias MediaChecker) PosterService {
	return &posterService{refs: refs, storage: storage, medias: medias}
}

func (s *posterService) Upload(ctx context.Context, mediaID uint64, filename, contentType string, content io.Reader) (*dbmysql.PosterRef, error) {
	exists, err := s.medias.MediaExists(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, common.NewNotFound("media not found")
	}

	file, err := s.storage.UploadPoster(ctx, filename, contentType, mediaID, content)
	if err != nil {
		return nil, err
	}

	ref := &dbmysql.PosterRef{
		MediaID:     mediaID,
		FileID:      file.ID,
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Size:        file.Size,
	}
	if err := s.refs.Upsert(ctx, ref); err != nil {
		// The GridFS file is orphaned without its ref row, drop it.
		_ = s.storage.DeletePoster(ctx, file.ID)
		return nil, err
	}
	return ref, nil
}

func (s *posterService) Download(ctx context.Context, mediaID uint64) (io.Reader, *dbmysql.PosterRef, error) {
	ref, err := s.refs.GetByMediaID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, common.NewNotFound("poster not found")
		}
		return nil, nil, err
	}

	reader, _, err := s.storage.DownloadPoster(ctx, ref.FileID)
	if err != nil {
		return nil, nil, common.NewNotFound("poster not found")
	}
	return reader, ref, nil
}

func (s *posterService) Delete(ctx context.Context, mediaID uint64) error {
	ref, err := s.refs.GetByMediaID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFound("poster not found")
		}
		return err
	}

	if err := s.storage.DeletePoster(ctx, ref.FileID); err != nil {
		return err
	}
	_, err = s.refs.DeleteByMediaID(ctx, mediaID)
	return err
}
