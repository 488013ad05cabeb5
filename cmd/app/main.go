package main

import (
	"ripple/internal/app"
	"ripple/pkg/cache"
	"ripple/pkg/config"
	"ripple/pkg/database"
	"ripple/pkg/logger"
	"ripple/pkg/s3"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Ripple API
// @version         1.0
// @description     Social feed service: posts, comments, follows, likes, notifications

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to set up S3 client: %v (continuing without avatar uploads)", err)
		s3Client = nil
	}

	app.Run(cfg, log, db, redisClient, s3Client)
}
