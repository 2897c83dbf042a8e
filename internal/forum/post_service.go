package forum

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"watchhive/internal/common"
	"watchhive/internal/dbmysql"
)

type PostService interface {
	CreatePost(ctx context.Context, title, content string, userID uint64) (*dbmysql.ForumPost, error)
	GetPost(ctx context.Context, postID uint64) (*dbmysql.ForumPost, error)
	UpdatePost(ctx context.Context, postID uint64, title, content string, currentUserID uint64) (*dbmysql.ForumPost, error)
	DeletePost(ctx context.Context, postID, currentUserID uint64) error
	ListPosts(ctx context.Context, offset, limit int) ([]dbmysql.ForumPost, error)
}

type postService struct {
	repo ForumRepository
}

func NewPostService(repo ForumRepository) PostService {
	return &postService{repo: repo}
}

func (s *postService) CreatePost(ctx context.Context, title, content string, userID uint64) (*dbmysql.ForumPost, error) {
	if title == "" {
		return nil, common.NewBusinessError("post title cannot be empty")
	}

	post := &dbmysql.ForumPost{
		Title:   title,
		Content: content,
		UserID:  userID,
	}
	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) GetPost(ctx context.Context, postID uint64) (*dbmysql.ForumPost, error) {
	post, err := s.repo.GetPost(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewNotFound("post not found on the WatchHive forum")
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) UpdatePost(ctx context.Context, postID uint64, title, content string, currentUserID uint64) (*dbmysql.ForumPost, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.UserID != currentUserID {
		return nil, common.NewPermissionError("you cannot edit another user's post")
	}

	post.Title = title
	post.Content = content
	if err := s.repo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, postID, currentUserID uint64) error {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != currentUserID {
		return common.NewPermissionError("you cannot delete another user's post")
	}

	return s.repo.DeletePost(ctx, postID)
}

func (s *postService) ListPosts(ctx context.Context, offset, limit int) ([]dbmysql.ForumPost, error) {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = 50
	}
	return s.repo.ListPosts(ctx, offset, limit)
}
