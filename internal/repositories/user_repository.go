package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "mealplanner/internal/models/db_models"
)

// UserRepository lookups return (nil, nil) when no user matches.
type UserRepository interface {
	Create(ctx context.Context, user *dbm.User) error
	FindByID(ctx context.Context, id uint) (*dbm.User, error)
	FindByEmail(ctx context.Context, email string) (*dbm.User, error)
	FindByUsername(ctx context.Context, username string) (*dbm.User, error)
	UpdatePasswordHash(ctx context.Context, id uint, hash string) error
	List(ctx context.Context, cursor *uint, limit int) ([]dbm.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) Create(ctx context.Context, user *dbm.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) FindByID(ctx context.Context, id uint) (*dbm.User, error) {
	return u.findOne(ctx, "id = ?", id)
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*dbm.User, error) {
	return u.findOne(ctx, "email = ?", email)
}

func (u *userRepository) FindByUsername(ctx context.Context, username string) (*dbm.User, error) {
	return u.findOne(ctx, "username = ?", username)
}

func (u *userRepository) findOne(ctx context.Context, cond string, arg interface{}) (*dbm.User, error) {
	var user dbm.User
	err := u.db.WithContext(ctx).Where(cond, arg).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	return u.db.WithContext(ctx).
		Model(&dbm.User{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

func (u *userRepository) List(ctx context.Context, cursor *uint, limit int) ([]dbm.User, error) {
	users := make([]dbm.User, 0)
	if err := u.db.WithContext(ctx).Scopes(cursorPage("id", cursor, limit)).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
