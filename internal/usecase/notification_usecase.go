package usecase

import (
	"ripple/internal/entity"
	"ripple/internal/repo/persistent"
	"ripple/pkg/logger"
)

type NotificationUseCase interface {
	GetNotifications(userID string, limit, offset int) ([]*entity.Notification, int64, error)
}

type notificationUseCase struct {
	notificationRepo persistent.NotificationRepository
	logger           *logger.Logger
}

func NewNotificationUseCase(notificationRepo persistent.NotificationRepository, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *notificationUseCase) GetNotifications(userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	notifications, err := uc.notificationRepo.ListByRecipient(userID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list notifications for user %s: %v", userID, err)
		return nil, 0, err
	}

	total, err := uc.notificationRepo.CountByRecipient(userID)
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}
