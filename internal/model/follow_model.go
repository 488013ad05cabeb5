package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowModel is a directed edge: follower follows followee.
// idx_follow_pair = (follower_id, followee_id) keeps the edge unique.
type FollowModel struct {
	ID         string    `gorm:"type:uuid;primary_key"`
	FollowerID string    `gorm:"type:uuid;not null;uniqueIndex:idx_follow_pair;index"`
	FolloweeID string    `gorm:"type:uuid;not null;uniqueIndex:idx_follow_pair;index"`
	CreatedAt  time.Time ``
}

func (FollowModel) TableName() string { return "follows" }

func (f *FollowModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
