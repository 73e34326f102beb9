package repositories

import (
	"context"

	"gorm.io/gorm"

	"stakegulf-cms/models"
)

type TopListRepository interface {
	Create(ctx context.Context, list *models.TopList) error
	GetByID(ctx context.Context, id uint) (*models.TopList, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.TopList, error)
	List(ctx context.Context, params models.TopListListParams) ([]models.TopList, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.TopList, error)
	Delete(ctx context.Context, id uint) error
}

type topListRepository struct {
	db    *gorm.DB
	store contentStore[models.TopList]
}

func NewTopListRepository(db *gorm.DB) TopListRepository {
	return &topListRepository{
		db: db,
		store: contentStore[models.TopList]{
			db:       db,
			table:    "top_lists",
			notFound: "Top list not found",
			conflict: "A top list with this slug already exists",
		},
	}
}

func (r *topListRepository) Create(ctx context.Context, list *models.TopList) error {
	return r.store.create(ctx, list)
}

func (r *topListRepository) GetByID(ctx context.Context, id uint) (*models.TopList, error) {
	return r.store.getByID(ctx, id)
}

func (r *topListRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.TopList, error) {
	return r.store.getByIdentifier(ctx, identifier)
}

func (r *topListRepository) List(ctx context.Context, params models.TopListListParams) ([]models.TopList, error) {
	var lists []models.TopList
	err := r.db.WithContext(ctx).
		Where("status = ?", params.Status).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

func (r *topListRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.TopList, error) {
	return r.store.update(ctx, id, fields, updatedBy)
}

func (r *topListRepository) Delete(ctx context.Context, id uint) error {
	return r.store.delete(ctx, id)
}
