package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
	"ripple/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// likeCountTTL bounds how long a re-primed counter can outlive a failed
// invalidation.
const likeCountTTL = 10 * time.Minute

type InteractionUseCase interface {
	LikePost(userID, postID string) error
	UnlikePost(userID, postID string) error
	GetLikeCount(postID string) (int64, error)
	IsLiked(userID, postID string) (bool, error)
	GetLikedPosts(userID string, limit, offset int) ([]*entity.Post, error)
}

type interactionUseCase struct {
	likeRepo    persistent.LikeRepository
	postRepo    persistent.PostRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewInteractionUseCase(
	likeRepo persistent.LikeRepository,
	postRepo persistent.PostRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// LikePost moves the (user, post) pair from NotLiked to Liked. A repeat call
// surfaces ErrAlreadyLiked and has no side effects; the winning call writes
// the notification inside the same transaction as the like row.
func (uc *interactionUseCase) LikePost(userID, postID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return err
	}

	if err := uc.likeRepo.Like(userID, postID, post.AuthorID); err != nil {
		return err
	}

	uc.invalidateLikeCount(postID)
	uc.invalidateFeed(userID)
	return nil
}

// UnlikePost moves the pair back to NotLiked. Unliking a post that was never
// liked surfaces ErrNotLiked. The like's notification is history and stays.
func (uc *interactionUseCase) UnlikePost(userID, postID string) error {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return err
	}
	if !exists {
		return entity.ErrPostNotFound
	}

	if err := uc.likeRepo.Unlike(userID, postID); err != nil {
		return err
	}

	uc.invalidateLikeCount(postID)
	uc.invalidateFeed(userID)
	return nil
}

func (uc *interactionUseCase) GetLikeCount(postID string) (int64, error) {
	ctx := context.Background()
	redisKey := fmt.Sprintf("post:likes:%s", postID)

	if uc.redisClient != nil {
		if countStr, err := uc.redisClient.Get(ctx, redisKey).Result(); err == nil {
			count, _ := strconv.ParseInt(countStr, 10, 64)
			return count, nil
		}
	}

	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, entity.ErrPostNotFound
	}

	count, err := uc.likeRepo.CountByPost(postID)
	if err != nil {
		return 0, err
	}

	if uc.redisClient != nil {
		uc.redisClient.Set(ctx, redisKey, count, likeCountTTL)
	}
	return count, nil
}

func (uc *interactionUseCase) IsLiked(userID, postID string) (bool, error) {
	return uc.likeRepo.IsLiked(userID, postID)
}

func (uc *interactionUseCase) GetLikedPosts(userID string, limit, offset int) ([]*entity.Post, error) {
	return uc.likeRepo.ListLikedPosts(userID, limit, offset)
}

// invalidateLikeCount drops the cached counter; the next read re-primes it
// from the ledger. Safer than blind INCR/DECR on a key that may be missing.
func (uc *interactionUseCase) invalidateLikeCount(postID string) {
	if uc.redisClient == nil {
		return
	}
	key := fmt.Sprintf("post:likes:%s", postID)
	if err := uc.redisClient.Del(context.Background(), key).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate like count for post %s: %v", postID, err)
	}
}

// invalidateFeed drops the actor's cached feed so their next read reflects
// the new like state.
func (uc *interactionUseCase) invalidateFeed(userID string) {
	if uc.redisClient == nil {
		return
	}
	key := fmt.Sprintf("feed:user:%s", userID)
	if err := uc.redisClient.Del(context.Background(), key).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate feed cache for user %s: %v", userID, err)
	}
}
