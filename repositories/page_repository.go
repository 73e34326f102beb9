package repositories

import (
	"context"

	"gorm.io/gorm"

	"stakegulf-cms/models"
)

type PageRepository interface {
	Create(ctx context.Context, page *models.Page) error
	GetByID(ctx context.Context, id uint) (*models.Page, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.Page, error)
	List(ctx context.Context, params models.PageListParams) ([]models.Page, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.Page, error)
	Delete(ctx context.Context, id uint) error
}

type pageRepository struct {
	db    *gorm.DB
	store contentStore[models.Page]
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{
		db: db,
		store: contentStore[models.Page]{
			db:       db,
			table:    "pages",
			notFound: "Page not found",
			conflict: "A page with this slug already exists",
		},
	}
}

func (r *pageRepository) Create(ctx context.Context, page *models.Page) error {
	return r.store.create(ctx, page)
}

func (r *pageRepository) GetByID(ctx context.Context, id uint) (*models.Page, error) {
	return r.store.getByID(ctx, id)
}

func (r *pageRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Page, error) {
	return r.store.getByIdentifier(ctx, identifier)
}

func (r *pageRepository) List(ctx context.Context, params models.PageListParams) ([]models.Page, error) {
	var pages []models.Page

	query := r.db.WithContext(ctx)
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	err := query.Order("created_at DESC").Find(&pages).Error
	return pages, err
}

func (r *pageRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.Page, error) {
	return r.store.update(ctx, id, fields, updatedBy)
}

func (r *pageRepository) Delete(ctx context.Context, id uint) error {
	return r.store.delete(ctx, id)
}
