package repositories

import (
	"context"

	"gorm.io/gorm"

	"stakegulf-cms/models"
)

type ActivityRepository interface {
	Create(ctx context.Context, entry *models.ActivityLogEntry) error
	// List returns newest first. A nil userID returns every actor's entries.
	List(ctx context.Context, userID *uint, limit, offset int) ([]models.ActivityLogEntry, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, entry *models.ActivityLogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *activityRepository) List(ctx context.Context, userID *uint, limit, offset int) ([]models.ActivityLogEntry, error) {
	entries := []models.ActivityLogEntry{}

	query := r.db.WithContext(ctx)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, err
}
