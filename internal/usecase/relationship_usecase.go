package usecase

import (
	"context"
	"fmt"

	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
	"ripple/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type RelationshipUseCase interface {
	Follow(actorID, targetID string) error
	Unfollow(actorID, targetID string) error
	IsFollowing(actorID, targetID string) (bool, error)
	ListFollowing(userID string) ([]string, error)
	ListFollowers(userID string) ([]string, error)
}

type relationshipUseCase struct {
	followRepo  persistent.FollowRepository
	userRepo    persistent.UserRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewRelationshipUseCase(
	followRepo persistent.FollowRepository,
	userRepo persistent.UserRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) RelationshipUseCase {
	return &relationshipUseCase{
		followRepo:  followRepo,
		userRepo:    userRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Follow adds target to the actor's following set. Repeating the call is a
// no-op success. Self-follow is rejected.
func (uc *relationshipUseCase) Follow(actorID, targetID string) error {
	if actorID == targetID {
		return entity.ErrSelfFollow
	}

	exists, err := uc.userRepo.Exists(targetID)
	if err != nil {
		return err
	}
	if !exists {
		return entity.ErrUserNotFound
	}

	if err := uc.followRepo.Create(actorID, targetID); err != nil {
		uc.logger.Error("Failed to create follow %s -> %s: %v", actorID, targetID, err)
		return err
	}

	uc.invalidateFeed(actorID)
	return nil
}

// Unfollow removes target from the actor's following set; removing an
// absent edge is a no-op success.
func (uc *relationshipUseCase) Unfollow(actorID, targetID string) error {
	exists, err := uc.userRepo.Exists(targetID)
	if err != nil {
		return err
	}
	if !exists {
		return entity.ErrUserNotFound
	}

	if err := uc.followRepo.Delete(actorID, targetID); err != nil {
		uc.logger.Error("Failed to delete follow %s -> %s: %v", actorID, targetID, err)
		return err
	}

	uc.invalidateFeed(actorID)
	return nil
}

func (uc *relationshipUseCase) IsFollowing(actorID, targetID string) (bool, error) {
	return uc.followRepo.Exists(actorID, targetID)
}

func (uc *relationshipUseCase) ListFollowing(userID string) ([]string, error) {
	return uc.followRepo.ListFolloweeIDs(userID)
}

func (uc *relationshipUseCase) ListFollowers(userID string) ([]string, error) {
	return uc.followRepo.ListFollowerIDs(userID)
}

func (uc *relationshipUseCase) invalidateFeed(userID string) {
	if uc.redisClient == nil {
		return
	}
	key := fmt.Sprintf("feed:user:%s", userID)
	if err := uc.redisClient.Del(context.Background(), key).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate feed cache for user %s: %v", userID, err)
	}
}
