package repositories

import (
	"context"

	"gorm.io/gorm"

	"stakegulf-cms/models"
)

type PlatformRepository interface {
	Create(ctx context.Context, platform *models.Platform) error
	GetByID(ctx context.Context, id uint) (*models.Platform, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.Platform, error)
	List(ctx context.Context, params models.PlatformListParams) ([]models.Platform, error)
	ListByIDs(ctx context.Context, ids []int64) ([]models.Platform, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.Platform, error)
	Delete(ctx context.Context, id uint) error
}

type platformRepository struct {
	db    *gorm.DB
	store contentStore[models.Platform]
}

func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{
		db: db,
		store: contentStore[models.Platform]{
			db:       db,
			table:    "platforms",
			notFound: "Platform not found",
			conflict: "A platform with this slug already exists",
		},
	}
}

func (r *platformRepository) Create(ctx context.Context, platform *models.Platform) error {
	return r.store.create(ctx, platform)
}

func (r *platformRepository) GetByID(ctx context.Context, id uint) (*models.Platform, error) {
	return r.store.getByID(ctx, id)
}

func (r *platformRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Platform, error) {
	return r.store.getByIdentifier(ctx, identifier)
}

func (r *platformRepository) List(ctx context.Context, params models.PlatformListParams) ([]models.Platform, error) {
	var platforms []models.Platform

	query := r.db.WithContext(ctx).Where("status = ?", params.Status)
	if params.Type != "" {
		query = query.Where("? = ANY(type)", params.Type)
	}

	err := query.Order("rating DESC, updated_at DESC").Find(&platforms).Error
	return platforms, err
}

// ListByIDs ignores the order of ids; callers get rating order.
func (r *platformRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.Platform, error) {
	platforms := []models.Platform{}
	if len(ids) == 0 {
		return platforms, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("rating DESC").Find(&platforms).Error
	return platforms, err
}

func (r *platformRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.Platform, error) {
	return r.store.update(ctx, id, fields, updatedBy)
}

func (r *platformRepository) Delete(ctx context.Context, id uint) error {
	return r.store.delete(ctx, id)
}
