package persistent

import (
	"errors"

	"ripple/internal/entity"
	"ripple/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List(search string, limit, offset int) ([]*entity.Post, error)
	ListByAuthorIDs(authorIDs []string, limit, offset int) ([]*entity.Post, error)
	Update(post *entity.Post) error
	Delete(id string) error
	Exists(id string) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := &model.PostModel{
		AuthorID: post.AuthorID,
		Title:    post.Title,
		Content:  post.Content,
	}
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	post.ID = postModel.ID
	post.CreatedAt = postModel.CreatedAt
	post.UpdatedAt = postModel.UpdatedAt
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, err
	}
	return toPostEntity(&postModel), nil
}

func (r *postRepository) List(search string, limit, offset int) ([]*entity.Post, error) {
	var models []*model.PostModel
	query := r.db.Order("created_at DESC, id DESC")

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return toPostEntities(models), nil
}

// ListByAuthorIDs returns posts by the given authors, newest first. Ties on
// created_at are broken by descending id so the order is deterministic.
func (r *postRepository) ListByAuthorIDs(authorIDs []string, limit, offset int) ([]*entity.Post, error) {
	if len(authorIDs) == 0 {
		return []*entity.Post{}, nil
	}

	var models []*model.PostModel
	query := r.db.
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return toPostEntities(models), nil
}

func (r *postRepository) Update(post *entity.Post) error {
	return r.db.Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
		}).Error
}

func (r *postRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.PostModel{}).Error
}

func (r *postRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
