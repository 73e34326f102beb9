package services

import (
	"context"

	"stakegulf-cms/models"
	"stakegulf-cms/repositories"
)

const defaultInboxLimit = 20

// NotificationService only ever acts on the caller's own notifications.
type NotificationService interface {
	Inbox(ctx context.Context, user *models.User, params models.NotificationListParams) (*models.NotificationInbox, error)
	MarkRead(ctx context.Context, user *models.User, id uint) error
	// MarkAllRead is idempotent and reports how many rows changed.
	MarkAllRead(ctx context.Context, user *models.User) (int64, error)
	Delete(ctx context.Context, user *models.User, id uint) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) Inbox(ctx context.Context, user *models.User, params models.NotificationListParams) (*models.NotificationInbox, error) {
	if params.Limit <= 0 {
		params.Limit = defaultInboxLimit
	}

	notifications, err := s.notificationRepo.ListForUser(ctx, user.ID, params.UnreadOnly, params.Limit)
	if err != nil {
		return nil, err
	}
	unread, err := s.notificationRepo.CountUnread(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.NotificationInbox{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, user *models.User, id uint) error {
	return s.notificationRepo.MarkRead(ctx, id, user.ID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, user *models.User) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, user.ID)
}

func (s *notificationService) Delete(ctx context.Context, user *models.User, id uint) error {
	return s.notificationRepo.Delete(ctx, id, user.ID)
}
