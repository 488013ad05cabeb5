package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	AuthorID  string    `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time ``
}

func (PostModel) TableName() string { return "posts" }

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type CommentModel struct {
	ID        string    `gorm:"type:uuid;primary_key"`
	PostID    string    `gorm:"type:uuid;not null;index"`
	AuthorID  string    `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time ``
}

func (CommentModel) TableName() string { return "comments" }

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
