package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationModel rows are append-only; nothing updates or deletes them.
type NotificationModel struct {
	ID          string    `gorm:"type:uuid;primary_key"`
	RecipientID string    `gorm:"type:uuid;not null;index"`
	ActorID     string    `gorm:"type:uuid;not null"`
	Verb        string    `gorm:"not null"`
	PostID      string    `gorm:"type:uuid"`
	CreatedAt   time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string { return "notifications" }

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
