package usecase

import (
	"fmt"
	"io"
	"path/filepath"

	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
	"ripple/pkg/jwt"
	"ripple/pkg/logger"
	"ripple/pkg/s3"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(email, username, password, bio string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	GetProfile(userID string) (*entity.Profile, error)
	UploadAvatar(userID string, file io.Reader, filename, contentType string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	followRepo persistent.FollowRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	followRepo persistent.FollowRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(email, username, password, bio string) (*entity.User, string, error) {
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", entity.ErrEmailTaken
	}
	if _, err := uc.userRepo.GetByUsername(username); err == nil {
		return nil, "", entity.ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
		Bio:      bio,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, "user")
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, "user")
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) GetProfile(userID string) (*entity.Profile, error) {
	user, err := uc.GetUser(userID)
	if err != nil {
		return nil, err
	}

	followers, err := uc.followRepo.CountFollowers(userID)
	if err != nil {
		return nil, err
	}
	following, err := uc.followRepo.CountFollowing(userID)
	if err != nil {
		return nil, err
	}

	return &entity.Profile{User: *user, Followers: followers, Following: following}, nil
}

func (uc *authUseCase) UploadAvatar(userID string, file io.Reader, filename, contentType string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if uc.s3Client == nil {
		return nil, fmt.Errorf("avatar storage is not configured")
	}

	key := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.New().String(), filepath.Ext(filename))
	url, err := uc.s3Client.Upload(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to upload avatar")
	}

	if err := uc.userRepo.UpdateAvatar(userID, url); err != nil {
		return nil, err
	}

	user.AvatarURL = url
	user.Password = ""
	return user, nil
}
