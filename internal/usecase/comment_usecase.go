package usecase

import (
	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
	"ripple/pkg/logger"
)

type CommentUseCase interface {
	CreateComment(userID, postID, content string) (*entity.Comment, error)
	ListComments(postID string, limit, offset int) ([]*entity.Comment, error)
	UpdateComment(commentID, userID, content string) (*entity.Comment, error)
	DeleteComment(commentID, userID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	logger      *logger.Logger
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, postRepo persistent.PostRepository, logger *logger.Logger) CommentUseCase {
	return &commentUseCase{commentRepo: commentRepo, postRepo: postRepo, logger: logger}
}

// CreateComment attaches a comment to an existing post, stamping the caller
// as the author.
func (uc *commentUseCase) CreateComment(userID, postID, content string) (*entity.Comment, error) {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, entity.ErrPostNotFound
	}

	comment := &entity.Comment{
		PostID:   postID,
		AuthorID: userID,
		Content:  content,
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment on post %s: %v", postID, err)
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) ListComments(postID string, limit, offset int) ([]*entity.Comment, error) {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, entity.ErrPostNotFound
	}
	return uc.commentRepo.ListByPost(postID, limit, offset)
}

func (uc *commentUseCase) UpdateComment(commentID, userID, content string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, entity.ErrForbidden
	}

	comment.Content = content
	if err := uc.commentRepo.Update(comment); err != nil {
		uc.logger.Error("Failed to update comment %s: %v", commentID, err)
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) DeleteComment(commentID, userID string) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID {
		return entity.ErrForbidden
	}
	return uc.commentRepo.Delete(commentID)
}
