package usecase

import (
	"testing"
	"time"

	"ripple/internal/model"
	"ripple/internal/repo/persistent"
	"ripple/pkg/database"
	"ripple/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db    *gorm.DB
	redis *redis.Client

	users         persistent.UserRepository
	follows       persistent.FollowRepository
	posts         persistent.PostRepository
	comments      persistent.CommentRepository
	likes         persistent.LikeRepository
	notifications persistent.NotificationRepository

	log *logger.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.PostModel{},
		&model.CommentModel{},
		&model.LikeModel{},
		&model.FollowModel{},
		&model.NotificationModel{},
	))

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return &testEnv{
		db:            db,
		redis:         redisClient,
		users:         persistent.NewUserRepository(db),
		follows:       persistent.NewFollowRepository(db),
		posts:         persistent.NewPostRepository(db),
		comments:      persistent.NewCommentRepository(db),
		likes:         persistent.NewLikeRepository(db),
		notifications: persistent.NewNotificationRepository(db),
		log:           logger.New(),
	}
}

func (e *testEnv) createUser(t *testing.T, username string) string {
	t.Helper()
	user := &model.UserModel{
		Email:    username + "@example.com",
		Username: username,
		Password: "hash",
	}
	require.NoError(t, e.db.Create(user).Error)
	return user.ID
}

func (e *testEnv) createPost(t *testing.T, authorID, title string) string {
	t.Helper()
	post := &model.PostModel{AuthorID: authorID, Title: title, Content: "content of " + title}
	require.NoError(t, e.db.Create(post).Error)
	return post.ID
}

func (e *testEnv) createPostAt(t *testing.T, id, authorID, title string, createdAt time.Time) string {
	t.Helper()
	post := &model.PostModel{ID: id, AuthorID: authorID, Title: title, CreatedAt: createdAt, UpdatedAt: createdAt}
	require.NoError(t, e.db.Create(post).Error)
	return post.ID
}
