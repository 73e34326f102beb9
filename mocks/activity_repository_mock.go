package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stakegulf-cms/models"
)

type ActivityRepository struct{ mock.Mock }

func (m *ActivityRepository) Create(ctx context.Context, entry *models.ActivityLogEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, userID *uint, limit, offset int) ([]models.ActivityLogEntry, error) {
	args := m.Called(ctx, userID, limit, offset)
	entries, _ := args.Get(0).([]models.ActivityLogEntry)
	return entries, args.Error(1)
}

type NotificationRepository struct{ mock.Mock }

func (m *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *NotificationRepository) ListForUser(ctx context.Context, userID uint, unreadOnly bool, limit int) ([]models.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly, limit)
	notifications, _ := args.Get(0).([]models.Notification)
	return notifications, args.Error(1)
}

func (m *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, id, userID uint) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *NotificationRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) Delete(ctx context.Context, id, userID uint) error {
	return m.Called(ctx, id, userID).Error(0)
}
