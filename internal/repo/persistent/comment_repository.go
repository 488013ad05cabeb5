package persistent

import (
	"errors"

	"ripple/internal/entity"
	"ripple/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	ListByPost(postID string, limit, offset int) ([]*entity.Comment, error)
	Update(comment *entity.Comment) error
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := &model.CommentModel{
		PostID:   comment.PostID,
		AuthorID: comment.AuthorID,
		Content:  comment.Content,
	}
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Where("id = ?", id).First(&commentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrCommentNotFound
		}
		return nil, err
	}
	return toCommentEntity(&commentModel), nil
}

func (r *commentRepository) ListByPost(postID string, limit, offset int) ([]*entity.Comment, error) {
	var models []*model.CommentModel
	query := r.db.Where("post_id = ?", postID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(models))
	for i, m := range models {
		comments[i] = toCommentEntity(m)
	}
	return comments, nil
}

func (r *commentRepository) Update(comment *entity.Comment) error {
	return r.db.Model(&model.CommentModel{}).
		Where("id = ?", comment.ID).
		Update("content", comment.Content).Error
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.CommentModel{}).Error
}
