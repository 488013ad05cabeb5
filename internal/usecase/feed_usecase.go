package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
	"ripple/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type FeedUseCase interface {
	GetFeed(userID string, limit, offset int) ([]*entity.FeedItem, error)
}

type feedUseCase struct {
	followRepo  persistent.FollowRepository
	postRepo    persistent.PostRepository
	likeRepo    persistent.LikeRepository
	userRepo    persistent.UserRepository
	redisClient *redis.Client
	logger      *logger.Logger
	cacheTTL    time.Duration
}

func NewFeedUseCase(
	followRepo persistent.FollowRepository,
	postRepo persistent.PostRepository,
	likeRepo persistent.LikeRepository,
	userRepo persistent.UserRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
	cacheTTL time.Duration,
) FeedUseCase {
	return &feedUseCase{
		followRepo:  followRepo,
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
		redisClient: redisClient,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// GetFeed returns posts authored by the caller's followees, newest first
// (created_at desc, id desc). Users the caller does not follow never appear,
// and an empty following set yields an empty feed.
func (uc *feedUseCase) GetFeed(userID string, limit, offset int) ([]*entity.FeedItem, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("feed:user:%s", userID)

	if uc.redisClient != nil {
		if cachedFeed, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var cachedItems []*entity.FeedItem
			if err := json.Unmarshal([]byte(cachedFeed), &cachedItems); err == nil {
				return paginate(cachedItems, limit, offset), nil
			}
		}
	}

	followeeIDs, err := uc.followRepo.ListFolloweeIDs(userID)
	if err != nil {
		uc.logger.Error("Failed to resolve followees for user %s: %v", userID, err)
		return nil, err
	}

	posts, err := uc.postRepo.ListByAuthorIDs(followeeIDs, 0, 0)
	if err != nil {
		uc.logger.Error("Failed to load feed posts for user %s: %v", userID, err)
		return nil, err
	}

	authors := make(map[string]*entity.User)
	items := make([]*entity.FeedItem, 0, len(posts))
	for _, post := range posts {
		author, ok := authors[post.AuthorID]
		if !ok {
			author, err = uc.userRepo.GetByID(post.AuthorID)
			if err != nil {
				uc.logger.Warn("Failed to load author %s: %v", post.AuthorID, err)
				author = &entity.User{ID: post.AuthorID}
			}
			authors[post.AuthorID] = author
		}

		likeCount, err := uc.likeRepo.CountByPost(post.ID)
		if err != nil {
			uc.logger.Warn("Failed to count likes for post %s: %v", post.ID, err)
		}
		isLiked, err := uc.likeRepo.IsLiked(userID, post.ID)
		if err != nil {
			uc.logger.Warn("Failed to check like status for post %s: %v", post.ID, err)
		}

		items = append(items, &entity.FeedItem{
			Post:           *post,
			AuthorUsername: author.Username,
			AuthorAvatar:   author.AvatarURL,
			LikesCount:     likeCount,
			IsLiked:        isLiked,
		})
	}

	if uc.redisClient != nil && len(items) > 0 {
		if feedJSON, err := json.Marshal(items); err == nil {
			uc.redisClient.Set(ctx, cacheKey, feedJSON, uc.cacheTTL)
		}
	}

	return paginate(items, limit, offset), nil
}

func paginate(items []*entity.FeedItem, limit, offset int) []*entity.FeedItem {
	if offset >= len(items) {
		return []*entity.FeedItem{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
