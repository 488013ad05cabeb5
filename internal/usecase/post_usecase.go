package usecase

import (
	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
	"ripple/pkg/logger"
)

type PostUseCase interface {
	CreatePost(userID, title, content string) (*entity.Post, error)
	GetPost(postID, userID string) (*entity.Post, int64, bool, error)
	ListPosts(search string, limit, offset int) ([]*entity.Post, error)
	UpdatePost(postID, userID string, title, content *string) (*entity.Post, error)
	DeletePost(postID, userID string) error
	IsAuthor(userID, postID string) (bool, error)
}

type postUseCase struct {
	postRepo persistent.PostRepository
	likeRepo persistent.LikeRepository
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, likeRepo persistent.LikeRepository, logger *logger.Logger) PostUseCase {
	return &postUseCase{postRepo: postRepo, likeRepo: likeRepo, logger: logger}
}

// CreatePost stamps the authenticated caller as the author. Any
// client-supplied author value never reaches this layer.
func (uc *postUseCase) CreatePost(userID, title, content string) (*entity.Post, error) {
	post := &entity.Post{
		AuthorID: userID,
		Title:    title,
		Content:  content,
	}
	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, err
	}
	return post, nil
}

func (uc *postUseCase) GetPost(postID, userID string) (*entity.Post, int64, bool, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, 0, false, err
	}

	likeCount, err := uc.likeRepo.CountByPost(postID)
	if err != nil {
		uc.logger.Warn("Failed to count likes for post %s: %v", postID, err)
	}

	isLiked := false
	if userID != "" {
		isLiked, err = uc.likeRepo.IsLiked(userID, postID)
		if err != nil {
			uc.logger.Warn("Failed to check like status: %v", err)
		}
	}

	return post, likeCount, isLiked, nil
}

func (uc *postUseCase) ListPosts(search string, limit, offset int) ([]*entity.Post, error) {
	return uc.postRepo.List(search, limit, offset)
}

func (uc *postUseCase) UpdatePost(postID, userID string, title, content *string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, entity.ErrForbidden
	}

	if title != nil {
		post.Title = *title
	}
	if content != nil {
		post.Content = *content
	}

	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to update post %s: %v", postID, err)
		return nil, err
	}
	return post, nil
}

func (uc *postUseCase) DeletePost(postID, userID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return entity.ErrForbidden
	}
	return uc.postRepo.Delete(postID)
}

// IsAuthor is the authorization predicate consulted before any mutation of
// a post; everyone else gets a read-only view.
func (uc *postUseCase) IsAuthor(userID, postID string) (bool, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return false, err
	}
	return post.AuthorID == userID, nil
}
