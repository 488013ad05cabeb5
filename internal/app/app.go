package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appHTTP "ripple/internal/controller/http"
	"ripple/internal/repo/persistent"
	"ripple/internal/usecase"
	"ripple/pkg/config"
	"ripple/pkg/jwt"
	"ripple/pkg/logger"
	"ripple/pkg/middleware"
	"ripple/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, s3Client *s3.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Repositories
	userRepo := persistent.NewUserRepository(db)
	followRepo := persistent.NewFollowRepository(db)
	postRepo := persistent.NewPostRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	notificationRepo := persistent.NewNotificationRepository(db)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, followRepo, jwtService, s3Client, log)
	relationshipUseCase := usecase.NewRelationshipUseCase(followRepo, userRepo, redisClient, log)
	postUseCase := usecase.NewPostUseCase(postRepo, likeRepo, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, log)
	interactionUseCase := usecase.NewInteractionUseCase(likeRepo, postRepo, redisClient, log)
	feedUseCase := usecase.NewFeedUseCase(followRepo, postRepo, likeRepo, userRepo, redisClient, log,
		time.Duration(cfg.FeedCacheTTLMinutes)*time.Minute)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, log)

	// HTTP handlers
	authHandler := appHTTP.NewAuthHandler(authUseCase, log)
	relationshipHandler := appHTTP.NewRelationshipHandler(relationshipUseCase, log)
	postHandler := appHTTP.NewPostHandler(postUseCase, log)
	commentHandler := appHTTP.NewCommentHandler(commentUseCase, log)
	interactionHandler := appHTTP.NewInteractionHandler(interactionUseCase, log)
	feedHandler := appHTTP.NewFeedHandler(feedUseCase, log)
	notificationHandler := appHTTP.NewNotificationHandler(notificationUseCase, log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 200, time.Minute))

	// Public endpoints
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/users/:id", authHandler.GetUser)
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/:id", postHandler.GetPost)
		api.GET("/posts/:id/comments", commentHandler.ListComments)
		api.GET("/posts/:id/likes", interactionHandler.GetLikeCount)
	}

	// Endpoints requiring a resolved caller identity
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(jwtService))
	{
		auth.GET("/users/me", authHandler.Me)
		auth.POST("/users/me/avatar", authHandler.UploadAvatar)
		auth.GET("/users/me/following", relationshipHandler.ListFollowing)
		auth.GET("/users/me/followers", relationshipHandler.ListFollowers)
		auth.POST("/users/:id/follow", relationshipHandler.Follow)
		auth.DELETE("/users/:id/follow", relationshipHandler.Unfollow)

		auth.POST("/posts", postHandler.CreatePost)
		auth.PUT("/posts/:id", postHandler.UpdatePost)
		auth.DELETE("/posts/:id", postHandler.DeletePost)

		auth.POST("/posts/:id/comments", commentHandler.CreateComment)
		auth.PUT("/comments/:id", commentHandler.UpdateComment)
		auth.DELETE("/comments/:id", commentHandler.DeleteComment)

		auth.POST("/posts/:id/like", interactionHandler.LikePost)
		auth.DELETE("/posts/:id/like", interactionHandler.UnlikePost)
		auth.GET("/posts/liked", interactionHandler.GetLikedPosts)

		auth.GET("/feed", feedHandler.GetFeed)
		auth.GET("/notifications", notificationHandler.GetNotifications)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("ripple listening on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing redis: %v", err)
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
