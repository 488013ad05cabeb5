package persistent

import (
	"ripple/internal/entity"
	"ripple/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	Like(userID, postID, postAuthorID string) error
	Unlike(userID, postID string) error
	IsLiked(userID, postID string) (bool, error)
	CountByPost(postID string) (int64, error)
	ListLikedPosts(userID string, limit, offset int) ([]*entity.Post, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Like inserts the like row and, when the liker is not the author, the
// matching notification, in one transaction. The unique index on
// (user_id, post_id) resolves concurrent attempts: whichever transaction
// commits the row first wins, every other one sees zero rows inserted and
// returns ErrAlreadyLiked without touching the notification log.
func (r *likeRepository) Like(userID, postID, postAuthorID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		like := &model.LikeModel{UserID: userID, PostID: postID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrAlreadyLiked
		}

		// Self-likes produce no notification
		if postAuthorID == userID {
			return nil
		}

		notification := &model.NotificationModel{
			RecipientID: postAuthorID,
			ActorID:     userID,
			Verb:        entity.VerbLikedPost,
			PostID:      postID,
		}
		return tx.Create(notification).Error
	})
}

// Unlike removes the like row. Notifications are history and stay untouched.
func (r *likeRepository) Unlike(userID, postID string) error {
	res := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.LikeModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotLiked
	}
	return nil
}

func (r *likeRepository) IsLiked(userID, postID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) CountByPost(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *likeRepository) ListLikedPosts(userID string, limit, offset int) ([]*entity.Post, error) {
	var models []*model.PostModel
	query := r.db.Model(&model.PostModel{}).
		Joins("INNER JOIN likes ON likes.post_id = posts.id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return toPostEntities(models), nil
}
