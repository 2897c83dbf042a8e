package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"watchhive/internal/dbmysql"
)

type UserRepository interface {
	Create(ctx context.Context, user *dbmysql.User) error
	GetByID(ctx context.Context, userID uint64) (*dbmysql.User, error)
	GetByUsername(ctx context.Context, username string) (*dbmysql.User, error)
	List(ctx context.Context, offset, limit int) ([]dbmysql.User, error)
	Update(ctx context.Context, user *dbmysql.User) error
	Delete(ctx context.Context, userID uint64) error
	UserExists(ctx context.Context, userID uint64) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	var user dbmysql.User
	if err := r.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*dbmysql.User, error) {
	var user dbmysql.User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, offset, limit int) ([]dbmysql.User, error) {
	var users []dbmysql.User
	err := r.db.WithContext(ctx).
		Order("user_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *userRepository) Update(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, userID uint64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.User{}, "user_id = ?", userID).Error
}

func (r *userRepository) UserExists(ctx context.Context, userID uint64) (bool, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Select("user_id").First(&user, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
