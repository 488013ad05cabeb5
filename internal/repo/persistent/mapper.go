package persistent

import (
	"ripple/internal/entity"
	"ripple/internal/model"
)

func toUserEntity(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Username:  m.Username,
		Password:  m.Password,
		Bio:       m.Bio,
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt,
	}
}

func toPostEntity(m *model.PostModel) *entity.Post {
	return &entity.Post{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toPostEntities(models []*model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, len(models))
	for i, m := range models {
		posts[i] = toPostEntity(m)
	}
	return posts
}

func toCommentEntity(m *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func toNotificationEntity(m *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:          m.ID,
		RecipientID: m.RecipientID,
		ActorID:     m.ActorID,
		Verb:        m.Verb,
		PostID:      m.PostID,
		CreatedAt:   m.CreatedAt,
	}
}
