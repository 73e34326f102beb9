package repositories

import (
	"context"

	"gorm.io/gorm"

	"stakegulf-cms/models"
)

type NewsRepository interface {
	Create(ctx context.Context, news *models.News) error
	GetByID(ctx context.Context, id uint) (*models.News, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.News, error)
	List(ctx context.Context, params models.NewsListParams) ([]models.News, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.News, error)
	Delete(ctx context.Context, id uint) error
}

type newsRepository struct {
	store contentStore[models.News]
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{
		store: contentStore[models.News]{
			db:       db,
			table:    "news",
			notFound: "News not found",
			conflict: "A news item with this slug already exists",
			scope:    withPlatform,
		},
	}
}

func withPlatform(db *gorm.DB) *gorm.DB {
	return db.Select("news.*, platforms.name AS platform_name, platforms.logo AS platform_logo").
		Joins("LEFT JOIN platforms ON news.platform_id = platforms.id")
}

func (r *newsRepository) Create(ctx context.Context, news *models.News) error {
	return r.store.create(ctx, news)
}

func (r *newsRepository) GetByID(ctx context.Context, id uint) (*models.News, error) {
	return r.store.getByID(ctx, id)
}

func (r *newsRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.News, error) {
	return r.store.getByIdentifier(ctx, identifier)
}

func (r *newsRepository) List(ctx context.Context, params models.NewsListParams) ([]models.News, error) {
	var news []models.News

	query := r.store.read(ctx).Where("news.status = ?", params.Status)
	if params.Type != "" {
		query = query.Where("news.type = ?", params.Type)
	}

	err := query.Order("news.created_at DESC").Find(&news).Error
	return news, err
}

func (r *newsRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*models.News, error) {
	return r.store.update(ctx, id, fields, updatedBy)
}

func (r *newsRepository) Delete(ctx context.Context, id uint) error {
	return r.store.delete(ctx, id)
}
