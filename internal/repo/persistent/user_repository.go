package persistent

import (
	"errors"

	"ripple/internal/entity"
	"ripple/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	UpdateAvatar(userID, avatarURL string) error
	Exists(id string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := &model.UserModel{
		Email:    user.Email,
		Username: user.Username,
		Password: user.Password,
		Bio:      user.Bio,
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return toUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return toUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return toUserEntity(&userModel), nil
}

func (r *userRepository) UpdateAvatar(userID, avatarURL string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", userID).Update("avatar_url", avatarURL).Error
}

func (r *userRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
