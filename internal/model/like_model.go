package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel records at most one like per (user, post) pair. The composite
// unique index is the arbiter under concurrent like attempts.
type LikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_like_pair"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_like_pair;index"`
	CreatedAt time.Time ``
}

func (LikeModel) TableName() string { return "likes" }

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
