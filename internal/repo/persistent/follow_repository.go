package persistent

import (
	"ripple/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository interface {
	Create(followerID, followeeID string) error
	Delete(followerID, followeeID string) error
	Exists(followerID, followeeID string) (bool, error)
	ListFolloweeIDs(followerID string) ([]string, error)
	ListFollowerIDs(followeeID string) ([]string, error)
	CountFollowing(followerID string) (int64, error)
	CountFollowers(followeeID string) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create is idempotent: the composite unique index on (follower_id,
// followee_id) plus ON CONFLICT DO NOTHING makes a repeat follow a no-op.
func (r *followRepository) Create(followerID, followeeID string) error {
	follow := &model.FollowModel{FollowerID: followerID, FolloweeID: followeeID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error
}

// Delete is idempotent: removing an absent edge is a no-op success.
func (r *followRepository) Delete(followerID, followeeID string) error {
	return r.db.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.FollowModel{}).Error
}

func (r *followRepository) Exists(followerID, followeeID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.FollowModel{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) ListFolloweeIDs(followerID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.FollowModel{}).
		Where("follower_id = ?", followerID).
		Pluck("followee_id", &ids).Error
	return ids, err
}

func (r *followRepository) ListFollowerIDs(followeeID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.FollowModel{}).
		Where("followee_id = ?", followeeID).
		Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *followRepository) CountFollowing(followerID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.FollowModel{}).Where("follower_id = ?", followerID).Count(&count).Error
	return count, err
}

func (r *followRepository) CountFollowers(followeeID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.FollowModel{}).Where("followee_id = ?", followeeID).Count(&count).Error
	return count, err
}
