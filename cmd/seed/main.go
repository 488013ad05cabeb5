package main

import (
	"fmt"

	"ripple/internal/model"
	"ripple/pkg/config"
	"ripple/pkg/database"
	"ripple/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a handful of demo users, a follow graph, and some posts so the feed
// has something to show right after a fresh migration.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	users := []struct {
		email, username, bio string
	}{
		{"alice@example.com", "alice", "Coffee, code, and long walks"},
		{"bob@example.com", "bob", "Posting about synths"},
		{"carol@example.com", "carol", "Amateur photographer"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	ids := make(map[string]string)
	for _, u := range users {
		userModel := &model.UserModel{
			Email:    u.email,
			Username: u.username,
			Password: string(hash),
			Bio:      u.bio,
		}
		if err := db.Where("email = ?", u.email).First(&model.UserModel{}).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(userModel).Error; err != nil {
				log.Error("Failed to seed user %s: %v", u.username, err)
				continue
			}
			log.Info("Seeded user %s", u.username)
		} else {
			var existing model.UserModel
			db.Where("email = ?", u.email).First(&existing)
			userModel = &existing
		}
		ids[u.username] = userModel.ID
	}

	// alice follows bob and carol; bob follows alice
	follows := [][2]string{
		{"alice", "bob"},
		{"alice", "carol"},
		{"bob", "alice"},
	}
	for _, f := range follows {
		follow := &model.FollowModel{FollowerID: ids[f[0]], FolloweeID: ids[f[1]]}
		if err := db.Where("follower_id = ? AND followee_id = ?", follow.FollowerID, follow.FolloweeID).
			First(&model.FollowModel{}).Error; err == gorm.ErrRecordNotFound {
			db.Create(follow)
		}
	}

	posts := []struct {
		author, title, content string
	}{
		{"bob", "New patch day", "Spent the evening with the modular rig."},
		{"carol", "Golden hour", "Shot the harbor at sunset, film scans soon."},
		{"alice", "Hello", "First post here."},
	}
	for _, p := range posts {
		post := &model.PostModel{AuthorID: ids[p.author], Title: p.title, Content: p.content}
		if err := db.Where("author_id = ? AND title = ?", post.AuthorID, p.title).
			First(&model.PostModel{}).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(post).Error; err != nil {
				log.Error("Failed to seed post %q: %v", p.title, err)
			}
		}
	}

	log.Info("Seeding complete")
}
