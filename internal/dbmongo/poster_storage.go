package dbmongo

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PosterStorage struct {
	gridFS *gridfs.Bucket
}

func NewPosterStorage(mongoClient *MongoClient) *PosterStorage {
	return &PosterStorage{
		gridFS: mongoClient.GridFS,
	}
}

type PosterFile struct {
	ID          string    `json:"id"`       // GridFS ObjectID
	Filename    string    `json:"filename"` // Original filename
	Size        int64     `json:"size"`     // File size in bytes
	ContentType string    `json:"content_type"`
	MediaID     uint64    `json:"media_id"` // Catalog row this poster belongs to
	UploadedAt  time.Time `json:"uploaded_at"`
}

func (ps *PosterStorage) UploadPoster(ctx context.Context, filename, contentType string, mediaID uint64, content io.Reader) (*PosterFile, error) {
	metadata := bson.M{
		"content_type": contentType,
		"media_id":     mediaID,
		"uploaded_at":  time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ps.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	size, err := io.Copy(stream, content)
	if err != nil {
		return nil, fmt.Errorf("file copy failed: %w", err)
	}

	return &PosterFile{
		ID:          stream.FileID.(primitive.ObjectID).Hex(),
		Filename:    filename,
		Size:        size,
		ContentType: contentType,
		MediaID:     mediaID,
		UploadedAt:  time.Now(),
	}, nil
}

func (ps *PosterStorage) DownloadPoster(ctx context.Context, fileID string) (io.Reader, *PosterFile, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid file ID: %w", err)
	}

	stream, err := ps.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	posterFile := &PosterFile{
		ID:          fileID,
		Filename:    fileInfo.Name,
		Size:        fileInfo.Length,
		ContentType: getStringFromMap(metadata, "content_type"),
		MediaID:     getUint64FromMap(metadata, "media_id"),
		UploadedAt:  fileInfo.UploadDate,
	}

	return stream, posterFile, nil
}

func (ps *PosterStorage) DeletePoster(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return fmt.Errorf("invalid file ID: %w", err)
	}
	return ps.gridFS.Delete(objectID)
}

func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getUint64FromMap(m bson.M, key string) uint64 {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case int64:
		return uint64(v)
	case int32:
		return uint64(v)
	case float64:
		return uint64(v)
	default:
		return 0
	}
}
