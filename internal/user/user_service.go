package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"watchhive/internal/common"
	"watchhive/internal/dbmysql"
)

// feedLimit caps the followed-activity feeds at the latest entries.
const feedLimit = 7

// ListProvisioner creates the default lists a fresh account starts with.
type ListProvisioner interface {
	CreateDefaultLists(ctx context.Context, userID uint64) error
}

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*dbmysql.User, string, error)
	Login(ctx context.Context, username, password string) (*dbmysql.User, string, error)
	GetUser(ctx context.Context, userID uint64) (*dbmysql.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]dbmysql.User, error)
	UpdateUser(ctx context.Context, userID uint64, email string, currentUserID uint64) (*dbmysql.User, error)
	DeleteUser(ctx context.Context, userID, currentUserID uint64) error
	Follow(ctx context.Context, followerID, followedID uint64) error
	Unfollow(ctx context.Context, followerID, followedID uint64) error
	Followed(ctx context.Context, userID uint64) ([]dbmysql.User, error)
	Followers(ctx context.Context, userID uint64) ([]dbmysql.User, error)
	FollowedReviews(ctx context.Context, userID uint64) ([]FollowedActivity, error)
	FollowedComments(ctx context.Context, userID uint64) ([]FollowedActivity, error)
}

type userService struct {
	users   UserRepository
	follows FollowRepository
	lists   ListProvisioner
}

func NewUserService(users UserRepository, follows FollowRepository, lists ListProvisioner) UserService {
	return &userService{users: users, follows: follows, lists: lists}
}

func (s *userService) Register(ctx context.Context, username, email, password string) (*dbmysql.User, string, error) {
	if err := common.ValidateUsername(username); err != nil {
		return nil, "", common.NewBusinessError(err.Error())
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", common.NewBusinessError(err.Error())
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", common.NewBusinessError(err.Error())
	}

	hash, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", common.NewBusinessError("username or email already taken")
		}
		return nil, "", err
	}

	// Every account starts with its watched and to-watch lists.
	if err := s.lists.CreateDefaultLists(ctx, user.UserID); err != nil {
		return nil, "", err
	}

	token, err := common.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (*dbmysql.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", common.NewPermissionError("invalid credentials")
		}
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", common.NewPermissionError("invalid credentials")
	}

	token, err := common.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetUser(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, offset, limit int) ([]dbmysql.User, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.users.List(ctx, offset, limit)
}

func (s *userService) UpdateUser(ctx context.Context, userID uint64, email string, currentUserID uint64) (*dbmysql.User, error) {
	if userID != currentUserID {
		return nil, common.NewPermissionError("cannot update another user's account")
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := common.ValidateEmail(email); err != nil {
		return nil, common.NewBusinessError(err.Error())
	}
	user.Email = email

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.NewBusinessError("email already taken")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID, currentUserID uint64) error {
	if userID != currentUserID {
		return common.NewPermissionError("cannot delete another user's account")
	}
	if _, err := s.GetUser(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}

func (s *userService) Follow(ctx context.Context, followerID, followedID uint64) error {
	if followerID == followedID {
		return common.NewBusinessError("cannot follow yourself")
	}

	exists, err := s.users.UserExists(ctx, followedID)
	if err != nil {
		return err
	}
	if !exists {
		return common.NewNotFound("user not found")
	}

	err = s.follows.Create(ctx, &dbmysql.Follow{FollowerID: followerID, FollowedID: followedID})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.NewBusinessError("already following this user")
	}
	return err
}

func (s *userService) Unfollow(ctx context.Context, followerID, followedID uint64) error {
	rows, err := s.follows.Delete(ctx, followerID, followedID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return common.NewBusinessError("not following this user")
	}
	return nil
}

func (s *userService) Followed(ctx context.Context, userID uint64) ([]dbmysql.User, error) {
	return s.follows.Followed(ctx, userID)
}

func (s *userService) Followers(ctx context.Context, userID uint64) ([]dbmysql.User, error) {
	return s.follows.Followers(ctx, userID)
}

func (s *userService) FollowedReviews(ctx context.Context, userID uint64) ([]FollowedActivity, error) {
	return s.follows.LatestFollowedReviews(ctx, userID, feedLimit)
}

func (s *userService) FollowedComments(ctx context.Context, userID uint64) ([]FollowedActivity, error) {
	return s.follows.LatestFollowedComments(ctx, userID, feedLimit)
}
