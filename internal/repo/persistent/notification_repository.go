package persistent

import (
	"ripple/internal/entity"
	"ripple/internal/model"

	"gorm.io/gorm"
)

// NotificationRepository is read-only by design: notification rows are
// written solely by the like transaction (see LikeRepository.Like).
type NotificationRepository interface {
	ListByRecipient(recipientID string, limit, offset int) ([]*entity.Notification, error)
	CountByRecipient(recipientID string) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) ListByRecipient(recipientID string, limit, offset int) ([]*entity.Notification, error) {
	var models []*model.NotificationModel
	query := r.db.Where("recipient_id = ?", recipientID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	notifications := make([]*entity.Notification, len(models))
	for i, m := range models {
		notifications[i] = toNotificationEntity(m)
	}
	return notifications, nil
}

func (r *notificationRepository) CountByRecipient(recipientID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.NotificationModel{}).
		Where("recipient_id = ?", recipientID).
		Count(&count).Error
	return count, err
}
