package repositories

import (
	"context"

	"gorm.io/gorm"

	"stakegulf-cms/models"
)

type GuideRepository interface {
	Create(ctx context.Context, guide *models.Guide) error
	GetByID(ctx context.Context, id uint) (*models.Guide, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.Guide, error)
	List(ctx context.Context, params models.GuideListParams) ([]models.Guide, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.Guide, error)
	Delete(ctx context.Context, id uint) error
}

type guideRepository struct {
	db    *gorm.DB
	store contentStore[models.Guide]
}

func NewGuideRepository(db *gorm.DB) GuideRepository {
	return &guideRepository{
		db: db,
		store: contentStore[models.Guide]{
			db:       db,
			table:    "guides",
			notFound: "Guide not found",
			conflict: "A guide with this slug already exists",
		},
	}
}

func (r *guideRepository) Create(ctx context.Context, guide *models.Guide) error {
	return r.store.create(ctx, guide)
}

func (r *guideRepository) GetByID(ctx context.Context, id uint) (*models.Guide, error) {
	return r.store.getByID(ctx, id)
}

func (r *guideRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Guide, error) {
	return r.store.getByIdentifier(ctx, identifier)
}

func (r *guideRepository) List(ctx context.Context, params models.GuideListParams) ([]models.Guide, error) {
	var guides []models.Guide

	query := r.db.WithContext(ctx).Where("status = ?", params.Status)
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	err := query.Order("created_at DESC").Find(&guides).Error
	return guides, err
}

func (r *guideRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.Guide, error) {
	return r.store.update(ctx, id, fields, updatedBy)
}

func (r *guideRepository) Delete(ctx context.Context, id uint) error {
	return r.store.delete(ctx, id)
}
